package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/lexivault/lexi-api/internal/domain"
)

// ProgressStore defines the interface for user word progress persistence.
//
// The scheduler itself offers no ordering guarantee between concurrent
// reviews of the same record; callers that intend to update a record must
// serialize the read-modify-write through GetForUpdate inside a transaction.
type ProgressStore interface {
	// Create saves a new progress record.
	// It handles domain validation internally.
	// Returns ErrProgressExists if the user already has the word in their queue.
	Create(ctx context.Context, progress *domain.UserWordProgress) error

	// Get retrieves a progress record by the combination of user ID and word ID.
	// Returns ErrProgressNotFound if the record does not exist.
	// NOTE: This method does NOT provide any row locking, so it should not be
	// used when you plan to update the row and need concurrency protection.
	Get(ctx context.Context, userID, wordID uuid.UUID) (*domain.UserWordProgress, error)

	// GetForUpdate retrieves a progress record with a row-level lock using
	// SELECT FOR UPDATE. This must be used within a transaction when the row
	// will be updated and concurrent reviews need to be serialized.
	// Returns ErrProgressNotFound if the record does not exist.
	GetForUpdate(ctx context.Context, userID, wordID uuid.UUID) (*domain.UserWordProgress, error)

	// Update modifies an existing progress record.
	// The userID and wordID fields identify the record to update.
	// Returns ErrProgressNotFound if the record does not exist.
	Update(ctx context.Context, progress *domain.UserWordProgress) error

	// Delete removes a progress record, taking the word out of the user's queue.
	// Returns ErrProgressNotFound if the record does not exist.
	Delete(ctx context.Context, userID, wordID uuid.UUID) error

	// ListDue retrieves up to limit progress records whose next review is at
	// or before now and whose status is not mastered, ordered by next review
	// time (most overdue first).
	ListDue(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]*domain.UserWordProgress, error)

	// CountByStatus returns the number of progress records per status for a user.
	CountByStatus(ctx context.Context, userID uuid.UUID) (map[domain.ProgressStatus]int, error)

	// WithTx returns a new ProgressStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) ProgressStore
}
