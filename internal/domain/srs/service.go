package srs

import (
	"errors"
	"time"

	"github.com/lexivault/lexi-api/internal/domain"
)

// Common errors
var (
	ErrNilProgress = errors.New("user word progress cannot be nil")
	ErrInvalidDays = errors.New("postpone days must be at least 1")
)

// Service defines the interface for scheduler operations on full progress
// records. It is stateless apart from its parameters: every method is a
// pure function over its explicit inputs with no I/O and no locking.
// Serializing concurrent reviews of the same record is the caller's job.
type Service interface {
	// CalculateNextReview computes a fresh progress record from a review of
	// the given quality performed at the given time. The input record is
	// never mutated. Out-of-range quality values are clamped, not rejected.
	CalculateNextReview(
		progress *domain.UserWordProgress,
		quality Quality,
		now time.Time,
	) (*domain.UserWordProgress, error)

	// PostponeReview pushes the next review time forward by a number of days
	// without touching the schedule parameters.
	PostponeReview(
		progress *domain.UserWordProgress,
		days int,
		now time.Time,
	) (*domain.UserWordProgress, error)
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct {
	params *Params
}

// NewDefaultService creates a scheduler service with the canonical SM-2
// parameters.
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a scheduler service with custom parameters.
func NewServiceWithParams(params *Params) Service {
	return &defaultService{
		params: params,
	}
}

// CalculateNextReview implements the Service interface.
func (s *defaultService) CalculateNextReview(
	progress *domain.UserWordProgress,
	quality Quality,
	now time.Time,
) (*domain.UserWordProgress, error) {
	if progress == nil {
		return nil, ErrNilProgress
	}

	next := Advance(Schedule{
		EaseFactor:   progress.EaseFactor,
		IntervalDays: progress.IntervalDays,
		Repetitions:  progress.Repetitions,
	}, quality, s.params)

	updated := progress.Clone()
	updated.EaseFactor = next.EaseFactor
	updated.IntervalDays = next.IntervalDays
	updated.Repetitions = next.Repetitions
	updated.Status = ClassifyStatus(next, s.params)
	updated.LastReviewedAt = now
	updated.NextReviewAt = now.AddDate(0, 0, next.IntervalDays)
	updated.ReviewCount++
	if quality.Successful() {
		updated.CorrectCount++
	}
	updated.UpdatedAt = now

	return updated, nil
}

// PostponeReview implements the Service interface.
func (s *defaultService) PostponeReview(
	progress *domain.UserWordProgress,
	days int,
	now time.Time,
) (*domain.UserWordProgress, error) {
	if progress == nil {
		return nil, ErrNilProgress
	}

	if days < 1 {
		return nil, ErrInvalidDays
	}

	updated := progress.Clone()
	updated.NextReviewAt = progress.NextReviewAt.AddDate(0, 0, days)
	updated.UpdatedAt = now

	return updated, nil
}
