package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ProgressStatus is the coarse learning-stage label of a word in a user's
// queue. It is derived from the schedule parameters and recomputed on every
// review transition; it is never mutated independently.
type ProgressStatus string

// Possible progress status values, ordered by learning stage.
const (
	ProgressStatusNew      ProgressStatus = "new"
	ProgressStatusLearning ProgressStatus = "learning"
	ProgressStatusReview   ProgressStatus = "review"
	ProgressStatusMastered ProgressStatus = "mastered"
)

// IsValid reports whether the status is one of the recognized values.
func (s ProgressStatus) IsValid() bool {
	switch s {
	case ProgressStatusNew, ProgressStatusLearning, ProgressStatusReview, ProgressStatusMastered:
		return true
	default:
		return false
	}
}

// Common validation errors for UserWordProgress
var (
	ErrEmptyProgressUserID = errors.New("progress user ID cannot be empty")
	ErrEmptyProgressWordID = errors.New("progress word ID cannot be empty")
	ErrInvalidInterval     = errors.New("interval must be greater than or equal to 0")
	ErrInvalidEaseFactor   = errors.New("ease factor must be at least 1.3")
	ErrInvalidRepetitions  = errors.New("repetitions must be greater than or equal to 0")
)

// DefaultEaseFactor is the starting confidence multiplier for a word that
// just entered a user's learning queue.
const DefaultEaseFactor = 2.5

// UserWordProgress tracks a user's spaced repetition schedule for a single
// word. The schedule fields (EaseFactor, IntervalDays, Repetitions) are
// advanced exclusively through srs.Service, which follows the SM-2
// algorithm; NextReviewAt and Status are derived from them.
type UserWordProgress struct {
	UserID         uuid.UUID      `json:"user_id"`
	WordID         uuid.UUID      `json:"word_id"`
	EaseFactor     float64        `json:"ease_factor"`   // Confidence multiplier, never below 1.3
	IntervalDays   int            `json:"interval_days"` // Days until the next review
	Repetitions    int            `json:"repetitions"`   // Consecutive successful reviews since last lapse
	Status         ProgressStatus `json:"status"`
	LastReviewedAt time.Time      `json:"last_reviewed_at"` // Zero until the first review
	NextReviewAt   time.Time      `json:"next_review_at"`
	ReviewCount    int            `json:"review_count"`  // Total reviews, pass or fail
	CorrectCount   int            `json:"correct_count"` // Total passing reviews
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// NewUserWordProgress creates a progress record for a word entering the
// user's learning queue. The word is due for review immediately.
func NewUserWordProgress(userID, wordID uuid.UUID) (*UserWordProgress, error) {
	now := time.Now().UTC()
	progress := &UserWordProgress{
		UserID:         userID,
		WordID:         wordID,
		EaseFactor:     DefaultEaseFactor,
		IntervalDays:   0,
		Repetitions:    0,
		Status:         ProgressStatusNew,
		LastReviewedAt: time.Time{},
		NextReviewAt:   now,
		ReviewCount:    0,
		CorrectCount:   0,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := progress.Validate(); err != nil {
		return nil, err
	}

	return progress, nil
}

// Validate checks if the UserWordProgress has valid data.
// Returns an error if any field fails validation.
func (p *UserWordProgress) Validate() error {
	if p.UserID == uuid.Nil {
		return ErrEmptyProgressUserID
	}

	if p.WordID == uuid.Nil {
		return ErrEmptyProgressWordID
	}

	if p.IntervalDays < 0 {
		return ErrInvalidInterval
	}

	if p.EaseFactor < 1.3 {
		return ErrInvalidEaseFactor
	}

	if p.Repetitions < 0 {
		return ErrInvalidRepetitions
	}

	if !p.Status.IsValid() {
		return ErrInvalidProgressStatus
	}

	return nil
}

// Clone returns a copy of the progress record. The srs package uses this to
// keep transitions immutable.
func (p *UserWordProgress) Clone() *UserWordProgress {
	clone := *p
	return &clone
}
