package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lexivault/lexi-api/internal/domain"
	"github.com/lexivault/lexi-api/internal/store"
)

const statisticsColumns = `user_id, words_learned, words_mastered, total_reviews, correct_reviews,
	current_streak, longest_streak, last_review_date, created_at, updated_at`

// PostgresStatisticsStore implements the store.StatisticsStore interface
// using a PostgreSQL database as the storage backend.
type PostgresStatisticsStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresStatisticsStore creates a new PostgreSQL implementation of the StatisticsStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresStatisticsStore(db store.DBTX, logger *slog.Logger) *PostgresStatisticsStore {
	// Validate inputs
	if db == nil {
		panic("db cannot be nil")
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresStatisticsStore{
		db:     db,
		logger: logger.With(slog.String("component", "statistics_store")),
	}
}

// Ensure PostgresStatisticsStore implements store.StatisticsStore interface
var _ store.StatisticsStore = (*PostgresStatisticsStore)(nil)

// WithTx implements store.StatisticsStore.WithTx
func (s *PostgresStatisticsStore) WithTx(tx *sql.Tx) store.StatisticsStore {
	return &PostgresStatisticsStore{
		db:     tx,
		logger: s.logger,
	}
}

// Get implements store.StatisticsStore.Get
// Returns store.ErrStatisticsNotFound if the user has no statistics record yet.
func (s *PostgresStatisticsStore) Get(ctx context.Context, userID uuid.UUID) (*domain.UserStatistics, error) {
	query := `
		SELECT ` + statisticsColumns + `
		FROM user_statistics
		WHERE user_id = $1
	`

	return s.queryOne(ctx, query, userID)
}

// GetForUpdate implements store.StatisticsStore.GetForUpdate
// It locks the row so concurrent review submissions update the counters serially.
// Returns store.ErrStatisticsNotFound if the user has no statistics record yet.
func (s *PostgresStatisticsStore) GetForUpdate(ctx context.Context, userID uuid.UUID) (*domain.UserStatistics, error) {
	query := `
		SELECT ` + statisticsColumns + `
		FROM user_statistics
		WHERE user_id = $1
		FOR UPDATE
	`

	return s.queryOne(ctx, query, userID)
}

// Upsert implements store.StatisticsStore.Upsert
// The user_id primary key makes this a create-or-replace of the whole record.
func (s *PostgresStatisticsStore) Upsert(ctx context.Context, stats *domain.UserStatistics) error {
	query := `
		INSERT INTO user_statistics (` + statisticsColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id) DO UPDATE SET
			words_learned = EXCLUDED.words_learned,
			words_mastered = EXCLUDED.words_mastered,
			total_reviews = EXCLUDED.total_reviews,
			correct_reviews = EXCLUDED.correct_reviews,
			current_streak = EXCLUDED.current_streak,
			longest_streak = EXCLUDED.longest_streak,
			last_review_date = EXCLUDED.last_review_date,
			updated_at = EXCLUDED.updated_at
	`

	_, err := s.db.ExecContext(ctx, query,
		stats.UserID,
		stats.WordsLearned,
		stats.WordsMastered,
		stats.TotalReviews,
		stats.CorrectReviews,
		stats.CurrentStreak,
		stats.LongestStreak,
		nullableTime(stats.LastReviewDate),
		stats.CreatedAt,
		stats.UpdatedAt,
	)
	if err != nil {
		return MapError(err)
	}

	return nil
}

func (s *PostgresStatisticsStore) queryOne(
	ctx context.Context,
	query string,
	userID uuid.UUID,
) (*domain.UserStatistics, error) {
	var stats domain.UserStatistics
	var lastReviewDate sql.NullTime

	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&stats.UserID,
		&stats.WordsLearned,
		&stats.WordsMastered,
		&stats.TotalReviews,
		&stats.CorrectReviews,
		&stats.CurrentStreak,
		&stats.LongestStreak,
		&lastReviewDate,
		&stats.CreatedAt,
		&stats.UpdatedAt,
	)
	if err != nil {
		if IsNotFoundError(MapError(err)) {
			return nil, store.ErrStatisticsNotFound
		}
		return nil, MapError(err)
	}

	if lastReviewDate.Valid {
		stats.LastReviewDate = lastReviewDate.Time.UTC()
	}

	return &stats, nil
}
