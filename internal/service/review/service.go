// Package review implements the review-submission workflow: it ties the
// scheduler to the persistence layer, serializing concurrent reviews of the
// same word through row-level locks and keeping aggregate user statistics
// consistent with the progress records.
package review

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lexivault/lexi-api/internal/domain"
	"github.com/lexivault/lexi-api/internal/domain/srs"
)

// ReviewSubmission represents a user's answer for a single word review.
type ReviewSubmission struct {
	WordID     uuid.UUID      `json:"word_id"`
	Correct    bool           `json:"correct"`
	Difficulty srs.Difficulty `json:"difficulty"`
}

// ReviewResult is the outcome of a submitted review: the freshly scheduled
// progress record plus the per-word accuracy after this review.
type ReviewResult struct {
	Progress *domain.UserWordProgress `json:"progress"`
	Accuracy float64                  `json:"accuracy"`
}

// DueWord pairs a word with the progress record that made it due.
type DueWord struct {
	Word     *domain.Word             `json:"word"`
	Progress *domain.UserWordProgress `json:"progress"`
}

// StatisticsSummary is the aggregate view returned by GetStatistics.
type StatisticsSummary struct {
	Statistics   *domain.UserStatistics        `json:"statistics"`
	Accuracy     float64                       `json:"accuracy"` // CorrectReviews / TotalReviews, percent
	StatusCounts map[domain.ProgressStatus]int `json:"status_counts"`
}

// ReviewService provides the review workflow over a user's word queue.
type ReviewService interface {
	// SubmitReview processes a user's answer for a word and reschedules it.
	//
	// The read-modify-write runs in a single transaction with the progress
	// row locked, so concurrent submissions for the same word are applied
	// serially. Aggregate statistics (totals, streak, mastered count) are
	// updated in the same transaction.
	//
	// Returns ErrProgressNotFound if the word is not in the user's queue.
	SubmitReview(
		ctx context.Context,
		userID uuid.UUID,
		submission ReviewSubmission,
	) (*ReviewResult, error)

	// GetDueWords retrieves up to limit words due for review at the given
	// time, most overdue first. Mastered words are excluded. An empty slice
	// means nothing is due; that is not an error.
	GetDueWords(
		ctx context.Context,
		userID uuid.UUID,
		now time.Time,
		limit int,
	) ([]*DueWord, error)

	// AddWordToQueue puts a word into the user's learning queue with default
	// scheduling state, due immediately.
	//
	// Returns ErrWordNotFound if the word does not exist and
	// ErrWordAlreadyQueued if the user already has it in their queue.
	AddWordToQueue(
		ctx context.Context,
		userID uuid.UUID,
		wordID uuid.UUID,
	) (*domain.UserWordProgress, error)

	// GetStatistics returns the user's aggregate review statistics together
	// with overall accuracy and per-status word counts. A user who has never
	// reviewed gets a zero-valued record, not an error.
	GetStatistics(ctx context.Context, userID uuid.UUID) (*StatisticsSummary, error)
}

// Common error types for ReviewService
var (
	// ErrProgressNotFound indicates that the word is not in the user's queue.
	ErrProgressNotFound = errors.New("word not in learning queue")

	// ErrWordNotFound indicates that the word does not exist.
	ErrWordNotFound = errors.New("word not found")

	// ErrWordAlreadyQueued indicates that the user already queued the word.
	ErrWordAlreadyQueued = errors.New("word already in learning queue")
)

// ServiceError wraps errors from the review service with additional context.
// This allows consumers to differentiate between different types of service
// errors using errors.As instead of string matching.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "submit_review")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewSubmitReviewError returns a new ServiceError for the submit_review operation.
func NewSubmitReviewError(message string, err error) *ServiceError {
	return &ServiceError{
		Operation: "submit_review",
		Message:   message,
		Err:       err,
	}
}

// NewGetDueWordsError returns a new ServiceError for the get_due_words operation.
func NewGetDueWordsError(message string, err error) *ServiceError {
	return &ServiceError{
		Operation: "get_due_words",
		Message:   message,
		Err:       err,
	}
}

// NewAddWordError returns a new ServiceError for the add_word operation.
func NewAddWordError(message string, err error) *ServiceError {
	return &ServiceError{
		Operation: "add_word",
		Message:   message,
		Err:       err,
	}
}

// NewGetStatisticsError returns a new ServiceError for the get_statistics operation.
func NewGetStatisticsError(message string, err error) *ServiceError {
	return &ServiceError{
		Operation: "get_statistics",
		Message:   message,
		Err:       err,
	}
}
