package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/lexivault/lexi-api/internal/domain"
)

// StatisticsStore defines the interface for aggregate user statistics persistence.
type StatisticsStore interface {
	// Get retrieves the statistics record for a user.
	// Returns ErrStatisticsNotFound if the record does not exist.
	Get(ctx context.Context, userID uuid.UUID) (*domain.UserStatistics, error)

	// GetForUpdate retrieves the statistics record with a row-level lock.
	// Use within a transaction when the record will be updated.
	// Returns ErrStatisticsNotFound if the record does not exist.
	GetForUpdate(ctx context.Context, userID uuid.UUID) (*domain.UserStatistics, error)

	// Upsert creates the statistics record if it does not exist, or replaces
	// the stored values if it does.
	Upsert(ctx context.Context, stats *domain.UserStatistics) error

	// WithTx returns a new StatisticsStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) StatisticsStore
}
