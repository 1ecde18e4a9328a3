package srs

// Quality is the 0-5 recall-quality scale of the SM-2 algorithm. Values of
// 3 and above count as a successful review. Out-of-range values are clamped
// rather than rejected; the scheduler has no failure modes of its own.
type Quality int

// Recall quality grades, from complete blackout to perfect recall.
const (
	// QualityBlackout: complete failure to recall.
	QualityBlackout Quality = 0
	// QualityIncorrectFamiliar: incorrect, but the answer felt familiar.
	QualityIncorrectFamiliar Quality = 1
	// QualityIncorrectRecalled: incorrect, but easy to recall once seen.
	QualityIncorrectRecalled Quality = 2
	// QualityCorrectDifficult: correct, with significant difficulty.
	QualityCorrectDifficult Quality = 3
	// QualityCorrectHesitant: correct, after some hesitation.
	QualityCorrectHesitant Quality = 4
	// QualityPerfect: perfect recall with no hesitation.
	QualityPerfect Quality = 5
)

// Clamp returns the quality constrained to the valid [0, 5] range.
func (q Quality) Clamp() Quality {
	if q < QualityBlackout {
		return QualityBlackout
	}
	if q > QualityPerfect {
		return QualityPerfect
	}
	return q
}

// Successful reports whether the quality counts as a passing review.
// Quality exactly 3 is a success; the failure branch is quality < 3.
func (q Quality) Successful() bool {
	return q.Clamp() >= QualityCorrectDifficult
}

// Difficulty is the learner's self-reported effort for a correct answer.
type Difficulty string

// Recognized difficulty levels. Anything else falls back to medium.
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// QualityFromOutcome maps a coarse pass/fail result plus self-reported
// difficulty onto the SM-2 quality scale.
//
// An incorrect answer always maps to QualityIncorrectFamiliar regardless of
// difficulty - the surrounding system has no way to signal a total blackout.
// A correct answer maps easy->5, medium->4, hard->3; an unrecognized
// difficulty degrades gracefully to medium rather than failing.
func QualityFromOutcome(correct bool, difficulty Difficulty) Quality {
	if !correct {
		return QualityIncorrectFamiliar
	}

	switch difficulty {
	case DifficultyEasy:
		return QualityPerfect
	case DifficultyHard:
		return QualityCorrectDifficult
	default:
		return QualityCorrectHesitant
	}
}
