package srs

import "testing"

func TestQualityFromOutcome(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		correct    bool
		difficulty Difficulty
		expected   Quality
	}{
		{
			name:       "incorrect ignores easy difficulty",
			correct:    false,
			difficulty: DifficultyEasy,
			expected:   QualityIncorrectFamiliar,
		},
		{
			name:       "incorrect ignores medium difficulty",
			correct:    false,
			difficulty: DifficultyMedium,
			expected:   QualityIncorrectFamiliar,
		},
		{
			name:       "incorrect ignores hard difficulty",
			correct:    false,
			difficulty: DifficultyHard,
			expected:   QualityIncorrectFamiliar,
		},
		{
			name:       "correct and easy is perfect recall",
			correct:    true,
			difficulty: DifficultyEasy,
			expected:   QualityPerfect,
		},
		{
			name:       "correct and medium is hesitant recall",
			correct:    true,
			difficulty: DifficultyMedium,
			expected:   QualityCorrectHesitant,
		},
		{
			name:       "correct and hard is difficult recall",
			correct:    true,
			difficulty: DifficultyHard,
			expected:   QualityCorrectDifficult,
		},
		{
			name:       "unrecognized difficulty falls back to medium",
			correct:    true,
			difficulty: "brutal",
			expected:   QualityCorrectHesitant,
		},
		{
			name:       "empty difficulty falls back to medium",
			correct:    true,
			difficulty: "",
			expected:   QualityCorrectHesitant,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := QualityFromOutcome(tc.correct, tc.difficulty)
			if got != tc.expected {
				t.Errorf("Expected quality %d, got %d", tc.expected, got)
			}
		})
	}
}

func TestQualityClamp(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input    Quality
		expected Quality
	}{
		{-3, 0},
		{-1, 0},
		{0, 0},
		{3, 3},
		{5, 5},
		{6, 5},
		{42, 5},
	}

	for _, tc := range testCases {
		if got := tc.input.Clamp(); got != tc.expected {
			t.Errorf("Clamp(%d): expected %d, got %d", tc.input, tc.expected, got)
		}
	}
}

func TestQualitySuccessful(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input    Quality
		expected bool
	}{
		{-1, false},
		{0, false},
		{1, false},
		{2, false},
		{3, true}, // The threshold is < 3, so exactly 3 passes
		{4, true},
		{5, true},
		{9, true},
	}

	for _, tc := range testCases {
		if got := tc.input.Successful(); got != tc.expected {
			t.Errorf("Successful(%d): expected %v, got %v", tc.input, tc.expected, got)
		}
	}
}
