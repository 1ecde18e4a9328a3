package srs

import (
	"math"
	"testing"

	"github.com/lexivault/lexi-api/internal/domain"
)

const easeTolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < easeTolerance
}

func TestAdvanceEaseFactorDeltas(t *testing.T) {
	t.Parallel() // Enable parallel execution
	params := NewDefaultParams()

	// Ease deltas follow 0.1 - (5-q)*(0.08 + (5-q)*0.02), starting from 2.5.
	testCases := []struct {
		name     string
		quality  Quality
		expected float64
	}{
		{
			name:     "blackout drops ease by 0.8",
			quality:  0,
			expected: 1.7,
		},
		{
			name:     "incorrect familiar drops ease by 0.54",
			quality:  1,
			expected: 1.96,
		},
		{
			name:     "incorrect recalled drops ease by 0.32",
			quality:  2,
			expected: 2.18,
		},
		{
			name:     "difficult success drops ease by 0.14",
			quality:  3,
			expected: 2.36,
		},
		{
			name:     "hesitant success leaves ease unchanged",
			quality:  4,
			expected: 2.5,
		},
		{
			name:     "perfect recall raises ease by 0.1",
			quality:  5,
			expected: 2.6,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			next := Advance(Schedule{EaseFactor: 2.5, IntervalDays: 10, Repetitions: 3}, tc.quality, params)

			if !almostEqual(next.EaseFactor, tc.expected) {
				t.Errorf("Expected ease factor %v, got %v", tc.expected, next.EaseFactor)
			}
		})
	}
}

func TestAdvanceEaseFactorNeverBelowFloor(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	// Hammer the schedule with every failing quality repeatedly; the ease
	// factor must never dip below 1.3 no matter how long the losing streak.
	s := Schedule{EaseFactor: 2.5, IntervalDays: 40, Repetitions: 7}
	for i := 0; i < 20; i++ {
		for _, q := range []Quality{0, 1, 2} {
			s = Advance(s, q, params)
			if s.EaseFactor < params.MinEaseFactor {
				t.Fatalf("Ease factor %v dropped below floor %v", s.EaseFactor, params.MinEaseFactor)
			}
		}
	}

	if !almostEqual(s.EaseFactor, 1.3) {
		t.Errorf("Expected ease factor pinned at 1.3, got %v", s.EaseFactor)
	}
}

func TestAdvanceSuccessSequenceFromScratch(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	// Three perfect reviews from a fresh schedule. The ease factor grows by
	// 0.1 per review and the new ease feeds interval growth, so the exact
	// sequence is 1, 6, ceil(6*2.8) = 17.
	s := Schedule{EaseFactor: 2.5}

	expected := []struct {
		interval int
		reps     int
		ease     float64
	}{
		{1, 1, 2.6},
		{6, 2, 2.7},
		{17, 3, 2.8},
	}

	for i, want := range expected {
		s = Advance(s, QualityPerfect, params)

		if s.IntervalDays != want.interval {
			t.Errorf("Review %d: expected interval %d, got %d", i+1, want.interval, s.IntervalDays)
		}
		if s.Repetitions != want.reps {
			t.Errorf("Review %d: expected repetitions %d, got %d", i+1, want.reps, s.Repetitions)
		}
		if !almostEqual(s.EaseFactor, want.ease) {
			t.Errorf("Review %d: expected ease factor %v, got %v", i+1, want.ease, s.EaseFactor)
		}
	}
}

func TestAdvanceFailureResetsSchedule(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	// A single lapse discards the spaced interval entirely: next review is
	// tomorrow, streak restarts, regardless of how mature the word was.
	for _, q := range []Quality{0, 1, 2} {
		next := Advance(Schedule{EaseFactor: 2.5, IntervalDays: 100, Repetitions: 10}, q, params)

		if next.IntervalDays != 1 {
			t.Errorf("Quality %d: expected interval 1, got %d", q, next.IntervalDays)
		}
		if next.Repetitions != 0 {
			t.Errorf("Quality %d: expected repetitions 0, got %d", q, next.Repetitions)
		}
	}
}

func TestAdvanceQualityThreeIsSuccess(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	next := Advance(Schedule{EaseFactor: 2.5, IntervalDays: 6, Repetitions: 2}, QualityCorrectDifficult, params)

	if next.Repetitions != 3 {
		t.Errorf("Expected repetitions 3, got %d", next.Repetitions)
	}

	// Ease drops to 2.36 first, then grows the interval: ceil(6*2.36) = 15.
	if next.IntervalDays != 15 {
		t.Errorf("Expected interval 15, got %d", next.IntervalDays)
	}
}

func TestAdvanceClampsOutOfRangeQuality(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()
	start := Schedule{EaseFactor: 2.5, IntervalDays: 10, Repetitions: 4}

	if got, want := Advance(start, 9, params), Advance(start, 5, params); got != want {
		t.Errorf("Expected quality 9 to behave as 5: got %+v, want %+v", got, want)
	}

	if got, want := Advance(start, -2, params), Advance(start, 0, params); got != want {
		t.Errorf("Expected quality -2 to behave as 0: got %+v, want %+v", got, want)
	}
}

func TestAdvanceDoesNotMutateInput(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	input := Schedule{EaseFactor: 2.5, IntervalDays: 10, Repetitions: 4}
	_ = Advance(input, QualityPerfect, params)

	if input.EaseFactor != 2.5 || input.IntervalDays != 10 || input.Repetitions != 4 {
		t.Errorf("Input schedule was mutated: %+v", input)
	}
}

func TestAdvanceIntervalGrowsWithoutCap(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	// No upper bound exists on interval growth. Keep answering perfectly and
	// the interval must increase strictly from the third success onward.
	s := Schedule{EaseFactor: 2.5}
	prev := 0
	for i := 0; i < 15; i++ {
		s = Advance(s, QualityPerfect, params)
		if i >= 2 && s.IntervalDays <= prev {
			t.Fatalf("Review %d: interval %d did not grow past %d", i+1, s.IntervalDays, prev)
		}
		prev = s.IntervalDays
	}

	if s.IntervalDays <= 10000 {
		t.Errorf("Expected unbounded growth to exceed 10000 days, got %d", s.IntervalDays)
	}
}

func TestClassifyStatus(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	testCases := []struct {
		name     string
		schedule Schedule
		expected domain.ProgressStatus
	}{
		{
			name:     "no repetitions is new",
			schedule: Schedule{EaseFactor: 2.5, IntervalDays: 0, Repetitions: 0},
			expected: domain.ProgressStatusNew,
		},
		{
			name:     "lapsed word is new again even with a large interval",
			schedule: Schedule{EaseFactor: 1.3, IntervalDays: 1, Repetitions: 0},
			expected: domain.ProgressStatusNew,
		},
		{
			name:     "short interval is learning",
			schedule: Schedule{EaseFactor: 2.5, IntervalDays: 6, Repetitions: 2},
			expected: domain.ProgressStatusLearning,
		},
		{
			name:     "interval exactly seven leaves learning",
			schedule: Schedule{EaseFactor: 2.5, IntervalDays: 7, Repetitions: 3},
			expected: domain.ProgressStatusReview,
		},
		{
			name:     "long interval with high ease and streak is mastered",
			schedule: Schedule{EaseFactor: 2.6, IntervalDays: 31, Repetitions: 5},
			expected: domain.ProgressStatusMastered,
		},
		{
			name:     "ease factor exactly 2.5 is not mastered",
			schedule: Schedule{EaseFactor: 2.5, IntervalDays: 31, Repetitions: 5},
			expected: domain.ProgressStatusReview,
		},
		{
			name:     "interval exactly 30 is not mastered",
			schedule: Schedule{EaseFactor: 3.0, IntervalDays: 30, Repetitions: 6},
			expected: domain.ProgressStatusReview,
		},
		{
			name:     "four repetitions is not mastered",
			schedule: Schedule{EaseFactor: 3.0, IntervalDays: 45, Repetitions: 4},
			expected: domain.ProgressStatusReview,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyStatus(tc.schedule, params)
			if got != tc.expected {
				t.Errorf("Expected status %q, got %q", tc.expected, got)
			}

			// Classification is idempotent: same inputs, same label.
			if again := ClassifyStatus(tc.schedule, params); again != got {
				t.Errorf("Expected repeated classification %q, got %q", got, again)
			}
		})
	}
}

func TestAccuracy(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		correct  int
		total    int
		expected float64
	}{
		{
			name:     "zero reviews yields zero not a fault",
			correct:  0,
			total:    0,
			expected: 0.0,
		},
		{
			name:     "three of four",
			correct:  3,
			total:    4,
			expected: 75.0,
		},
		{
			name:     "perfect record",
			correct:  5,
			total:    5,
			expected: 100.0,
		},
		{
			name:     "one of three",
			correct:  1,
			total:    3,
			expected: 100.0 / 3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Accuracy(tc.correct, tc.total)
			if !almostEqual(got, tc.expected) {
				t.Errorf("Expected accuracy %v, got %v", tc.expected, got)
			}
		})
	}
}
