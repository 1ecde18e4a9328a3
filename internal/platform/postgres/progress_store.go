package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lexivault/lexi-api/internal/domain"
	"github.com/lexivault/lexi-api/internal/store"
)

// progressColumns is the column list shared by all progress queries, in the
// order scanProgress expects.
const progressColumns = `user_id, word_id, ease_factor, interval_days, repetitions, status,
	last_reviewed_at, next_review_at, review_count, correct_count, created_at, updated_at`

// PostgresProgressStore implements the store.ProgressStore interface
// using a PostgreSQL database as the storage backend.
type PostgresProgressStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresProgressStore creates a new PostgreSQL implementation of the ProgressStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresProgressStore(db store.DBTX, logger *slog.Logger) *PostgresProgressStore {
	// Validate inputs
	if db == nil {
		panic("db cannot be nil")
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresProgressStore{
		db:     db,
		logger: logger.With(slog.String("component", "progress_store")),
	}
}

// Ensure PostgresProgressStore implements store.ProgressStore interface
var _ store.ProgressStore = (*PostgresProgressStore)(nil)

// WithTx implements store.ProgressStore.WithTx
func (s *PostgresProgressStore) WithTx(tx *sql.Tx) store.ProgressStore {
	return &PostgresProgressStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.ProgressStore.Create
// It saves a new progress record after validating it.
// Returns store.ErrProgressExists if the user already queued the word.
func (s *PostgresProgressStore) Create(ctx context.Context, progress *domain.UserWordProgress) error {
	if err := progress.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO user_word_progress (` + progressColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := s.db.ExecContext(ctx, query,
		progress.UserID,
		progress.WordID,
		progress.EaseFactor,
		progress.IntervalDays,
		progress.Repetitions,
		string(progress.Status),
		nullableTime(progress.LastReviewedAt),
		progress.NextReviewAt,
		progress.ReviewCount,
		progress.CorrectCount,
		progress.CreatedAt,
		progress.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return store.ErrProgressExists
		}
		return MapError(err)
	}

	return nil
}

// Get implements store.ProgressStore.Get
// It retrieves a progress record by the combination of user ID and word ID.
// Returns store.ErrProgressNotFound if the record does not exist.
func (s *PostgresProgressStore) Get(ctx context.Context, userID, wordID uuid.UUID) (*domain.UserWordProgress, error) {
	query := `
		SELECT ` + progressColumns + `
		FROM user_word_progress
		WHERE user_id = $1 AND word_id = $2
	`

	return s.queryOne(ctx, query, userID, wordID)
}

// GetForUpdate implements store.ProgressStore.GetForUpdate
// It retrieves a progress record with a row-level lock using SELECT FOR UPDATE,
// serializing concurrent review submissions for the same record.
// Returns store.ErrProgressNotFound if the record does not exist.
func (s *PostgresProgressStore) GetForUpdate(ctx context.Context, userID, wordID uuid.UUID) (*domain.UserWordProgress, error) {
	query := `
		SELECT ` + progressColumns + `
		FROM user_word_progress
		WHERE user_id = $1 AND word_id = $2
		FOR UPDATE
	`

	return s.queryOne(ctx, query, userID, wordID)
}

// Update implements store.ProgressStore.Update
// It replaces the stored schedule fields of an existing record.
// Returns store.ErrProgressNotFound if the record does not exist.
func (s *PostgresProgressStore) Update(ctx context.Context, progress *domain.UserWordProgress) error {
	if err := progress.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE user_word_progress
		SET ease_factor = $3,
			interval_days = $4,
			repetitions = $5,
			status = $6,
			last_reviewed_at = $7,
			next_review_at = $8,
			review_count = $9,
			correct_count = $10,
			updated_at = $11
		WHERE user_id = $1 AND word_id = $2
	`

	result, err := s.db.ExecContext(ctx, query,
		progress.UserID,
		progress.WordID,
		progress.EaseFactor,
		progress.IntervalDays,
		progress.Repetitions,
		string(progress.Status),
		nullableTime(progress.LastReviewedAt),
		progress.NextReviewAt,
		progress.ReviewCount,
		progress.CorrectCount,
		progress.UpdatedAt,
	)
	if err != nil {
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "user word progress"); err != nil {
		return store.ErrProgressNotFound
	}

	return nil
}

// Delete implements store.ProgressStore.Delete
// It removes a progress record, taking the word out of the user's queue.
// Returns store.ErrProgressNotFound if the record does not exist.
func (s *PostgresProgressStore) Delete(ctx context.Context, userID, wordID uuid.UUID) error {
	query := `DELETE FROM user_word_progress WHERE user_id = $1 AND word_id = $2`

	result, err := s.db.ExecContext(ctx, query, userID, wordID)
	if err != nil {
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "user word progress"); err != nil {
		return store.ErrProgressNotFound
	}

	return nil
}

// ListDue implements store.ProgressStore.ListDue
// Mastered words are excluded; the most overdue records come first.
func (s *PostgresProgressStore) ListDue(
	ctx context.Context,
	userID uuid.UUID,
	now time.Time,
	limit int,
) ([]*domain.UserWordProgress, error) {
	query := `
		SELECT ` + progressColumns + `
		FROM user_word_progress
		WHERE user_id = $1
		  AND next_review_at <= $2
		  AND status <> $3
		ORDER BY next_review_at ASC, created_at ASC
		LIMIT $4
	`

	rows, err := s.db.QueryContext(ctx, query, userID, now, string(domain.ProgressStatusMastered), limit)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var due []*domain.UserWordProgress
	for rows.Next() {
		progress, err := scanProgress(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan progress row: %w", err)
		}
		due = append(due, progress)
	}

	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return due, nil
}

// CountByStatus implements store.ProgressStore.CountByStatus
func (s *PostgresProgressStore) CountByStatus(
	ctx context.Context,
	userID uuid.UUID,
) (map[domain.ProgressStatus]int, error) {
	query := `
		SELECT status, COUNT(*)
		FROM user_word_progress
		WHERE user_id = $1
		GROUP BY status
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[domain.ProgressStatus]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[domain.ProgressStatus(status)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return counts, nil
}

// queryOne runs a single-row progress query and maps the not-found case.
func (s *PostgresProgressStore) queryOne(
	ctx context.Context,
	query string,
	userID, wordID uuid.UUID,
) (*domain.UserWordProgress, error) {
	row := s.db.QueryRowContext(ctx, query, userID, wordID)

	progress, err := scanProgress(row)
	if err != nil {
		if IsNotFoundError(MapError(err)) {
			return nil, store.ErrProgressNotFound
		}
		return nil, MapError(err)
	}

	return progress, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProgress(row rowScanner) (*domain.UserWordProgress, error) {
	var progress domain.UserWordProgress
	var status string
	var lastReviewedAt sql.NullTime

	err := row.Scan(
		&progress.UserID,
		&progress.WordID,
		&progress.EaseFactor,
		&progress.IntervalDays,
		&progress.Repetitions,
		&status,
		&lastReviewedAt,
		&progress.NextReviewAt,
		&progress.ReviewCount,
		&progress.CorrectCount,
		&progress.CreatedAt,
		&progress.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	progress.Status = domain.ProgressStatus(status)
	if lastReviewedAt.Valid {
		progress.LastReviewedAt = lastReviewedAt.Time
	}

	return &progress, nil
}

// nullableTime maps the zero time to SQL NULL.
func nullableTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}
