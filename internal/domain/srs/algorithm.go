package srs

import (
	"math"

	"github.com/lexivault/lexi-api/internal/domain"
)

// Schedule is the minimal SM-2 state for one word: the confidence
// multiplier, the current review interval and the consecutive-success
// streak. It is a plain value; Advance returns a fresh Schedule and never
// mutates its input.
type Schedule struct {
	EaseFactor   float64
	IntervalDays int
	Repetitions  int
}

// Advance applies one review to the schedule and returns the updated
// schedule. This is the SM-2 core transition.
//
// The quality is clamped to [0, 5] before use. The new ease factor is
// computed first:
//
//	delta = 0.1 - (5-q) * (0.08 + (5-q)*0.02)
//	ease' = max(MinEaseFactor, ease + delta)
//
// and then the branch on quality decides the rest. A failing review
// (quality < 3) resets the repetition streak to zero and forces a
// next-day review regardless of how large the prior interval was; spaced
// intervals are deliberately not preserved across lapses. A passing review
// increments the streak: the first two successes use the fixed
// FirstInterval/SecondInterval schedule, and from the third success onward
// the interval grows by ceil(interval * ease'). Note that the already
// updated ease factor feeds the growth, and that no upper bound is placed
// on the interval.
func Advance(s Schedule, quality Quality, params *Params) Schedule {
	q := quality.Clamp()

	next := Schedule{
		EaseFactor: calculateNewEaseFactor(s.EaseFactor, q, params),
	}

	if !q.Successful() {
		next.Repetitions = 0
		next.IntervalDays = params.LapseInterval
		return next
	}

	next.Repetitions = s.Repetitions + 1

	switch next.Repetitions {
	case 1:
		next.IntervalDays = params.FirstInterval
	case 2:
		next.IntervalDays = params.SecondInterval
	default:
		next.IntervalDays = int(math.Ceil(float64(s.IntervalDays) * next.EaseFactor))
	}

	return next
}

// calculateNewEaseFactor applies the SM-2 ease adjustment for the given
// quality and clamps the result at the configured floor. The adjustment is
// +0.1 at quality 5 and progressively more negative as quality drops.
func calculateNewEaseFactor(easeFactor float64, q Quality, params *Params) float64 {
	delta := 0.1 - float64(QualityPerfect-q)*(0.08+float64(QualityPerfect-q)*0.02)

	newEaseFactor := easeFactor + delta
	if newEaseFactor < params.MinEaseFactor {
		newEaseFactor = params.MinEaseFactor
	}

	return newEaseFactor
}

// ClassifyStatus derives the coarse learning-stage label from the schedule
// parameters. It is a pure function of the three schedule fields: the same
// schedule always yields the same status, independent of review history.
//
// The rules are evaluated in priority order, first match wins:
//  1. no successful streak yet -> new
//  2. interval below the learning threshold -> learning
//  3. long interval, high confidence and an established streak -> mastered
//     (the ease-factor bound is strict: exactly 2.5 is not mastered)
//  4. otherwise -> review
func ClassifyStatus(s Schedule, params *Params) domain.ProgressStatus {
	switch {
	case s.Repetitions == 0:
		return domain.ProgressStatusNew
	case s.IntervalDays < params.LearningMaxInterval:
		return domain.ProgressStatusLearning
	case s.IntervalDays > params.MasteredMinInterval &&
		s.EaseFactor > params.MasteredMinEaseFactor &&
		s.Repetitions >= params.MasteredMinReps:
		return domain.ProgressStatusMastered
	default:
		return domain.ProgressStatusReview
	}
}

// Accuracy returns the percentage of correct reviews. A zero total yields
// 0.0 rather than a division fault.
func Accuracy(correctCount, totalCount int) float64 {
	if totalCount == 0 {
		return 0.0
	}
	return float64(correctCount) / float64(totalCount) * 100
}
