package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserStatistics aggregates a user's review activity across all words.
// Totals and streaks are maintained by the review service; the record is
// updated through WithReview, which returns a fresh copy.
type UserStatistics struct {
	UserID         uuid.UUID `json:"user_id"`
	WordsLearned   int       `json:"words_learned"`  // Words ever added to the learning queue
	WordsMastered  int       `json:"words_mastered"` // Words currently classified as mastered
	TotalReviews   int       `json:"total_reviews"`
	CorrectReviews int       `json:"correct_reviews"`
	CurrentStreak  int       `json:"current_streak"` // Consecutive calendar days with at least one review
	LongestStreak  int       `json:"longest_streak"`
	LastReviewDate time.Time `json:"last_review_date"` // Date of the most recent review, zero if never reviewed
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUserStatistics creates an empty statistics record for a user.
func NewUserStatistics(userID uuid.UUID) (*UserStatistics, error) {
	if userID == uuid.Nil {
		return nil, ErrEmptyProgressUserID
	}

	now := time.Now().UTC()
	return &UserStatistics{
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// WithReview returns a copy of the statistics with one review recorded on
// the given day. Streak rules: a second review on the same day leaves the
// streak unchanged, a review on the day after the last one extends it, and
// any longer gap resets it to 1.
func (s *UserStatistics) WithReview(correct bool, now time.Time) *UserStatistics {
	updated := *s

	updated.TotalReviews++
	if correct {
		updated.CorrectReviews++
	}

	today := truncateToDay(now)
	switch {
	case s.LastReviewDate.IsZero():
		updated.CurrentStreak = 1
	case sameDay(s.LastReviewDate, today):
		// Already reviewed today, streak unchanged.
	case sameDay(s.LastReviewDate, today.AddDate(0, 0, -1)):
		updated.CurrentStreak = s.CurrentStreak + 1
	default:
		updated.CurrentStreak = 1
	}

	if updated.CurrentStreak > updated.LongestStreak {
		updated.LongestStreak = updated.CurrentStreak
	}

	updated.LastReviewDate = today
	updated.UpdatedAt = now

	return &updated
}

func truncateToDay(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	return truncateToDay(a).Equal(truncateToDay(b))
}
