package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lexivault/lexi-api/internal/domain"
	"github.com/lexivault/lexi-api/internal/store"
)

// PostgresWordStore implements the store.WordStore interface
// using a PostgreSQL database as the storage backend.
type PostgresWordStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresWordStore creates a new PostgreSQL implementation of the WordStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresWordStore(db store.DBTX, logger *slog.Logger) *PostgresWordStore {
	// Validate inputs
	if db == nil {
		panic("db cannot be nil")
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresWordStore{
		db:     db,
		logger: logger.With(slog.String("component", "word_store")),
	}
}

// Ensure PostgresWordStore implements store.WordStore interface
var _ store.WordStore = (*PostgresWordStore)(nil)

// WithTx implements store.WordStore.WithTx
func (s *PostgresWordStore) WithTx(tx *sql.Tx) store.WordStore {
	return &PostgresWordStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.WordStore.Create
// It saves the word and its definitions. When called with a bare connection
// the inserts are not atomic; services wrap Create in a transaction.
func (s *PostgresWordStore) Create(ctx context.Context, word *domain.Word) error {
	if err := word.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO words (id, term, language, word_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := s.db.ExecContext(ctx, query,
		word.ID,
		word.Term,
		word.Language,
		word.WordType,
		word.CreatedAt,
		word.UpdatedAt,
	)
	if err != nil {
		return MapError(err)
	}

	for i := range word.Definitions {
		if err := s.insertDefinition(ctx, &word.Definitions[i]); err != nil {
			return err
		}
	}

	return nil
}

func (s *PostgresWordStore) insertDefinition(ctx context.Context, def *domain.Definition) error {
	query := `
		INSERT INTO definitions (id, word_id, language, definition, note)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := s.db.ExecContext(ctx, query,
		def.ID,
		def.WordID,
		def.Language,
		def.Definition,
		def.Note,
	)
	if err != nil {
		return MapError(err)
	}

	return nil
}

// GetByID implements store.WordStore.GetByID
// It retrieves a word by its unique ID, including its definitions.
// Returns store.ErrWordNotFound if the word does not exist.
func (s *PostgresWordStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	query := `
		SELECT id, term, language, word_type, created_at, updated_at
		FROM words
		WHERE id = $1
	`

	var word domain.Word
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&word.ID,
		&word.Term,
		&word.Language,
		&word.WordType,
		&word.CreatedAt,
		&word.UpdatedAt,
	)
	if err != nil {
		if IsNotFoundError(MapError(err)) {
			return nil, store.ErrWordNotFound
		}
		return nil, MapError(err)
	}

	if err := s.loadDefinitions(ctx, &word); err != nil {
		return nil, err
	}

	return &word, nil
}

// ListByLanguage implements store.WordStore.ListByLanguage
func (s *PostgresWordStore) ListByLanguage(
	ctx context.Context,
	language string,
	limit int,
) ([]*domain.Word, error) {
	query := `
		SELECT id, term, language, word_type, created_at, updated_at
		FROM words
		WHERE language = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := s.db.QueryContext(ctx, query, language, limit)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var words []*domain.Word
	for rows.Next() {
		var word domain.Word
		err := rows.Scan(
			&word.ID,
			&word.Term,
			&word.Language,
			&word.WordType,
			&word.CreatedAt,
			&word.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan word row: %w", err)
		}
		words = append(words, &word)
	}

	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	for _, word := range words {
		if err := s.loadDefinitions(ctx, word); err != nil {
			return nil, err
		}
	}

	return words, nil
}

// Delete implements store.WordStore.Delete
// Definitions and progress records go with the word via ON DELETE CASCADE.
// Returns store.ErrWordNotFound if the word does not exist.
func (s *PostgresWordStore) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM words WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "word"); err != nil {
		return store.ErrWordNotFound
	}

	return nil
}

func (s *PostgresWordStore) loadDefinitions(ctx context.Context, word *domain.Word) error {
	query := `
		SELECT id, word_id, language, definition, note
		FROM definitions
		WHERE word_id = $1
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query, word.ID)
	if err != nil {
		return MapError(err)
	}
	defer func() { _ = rows.Close() }()

	word.Definitions = nil
	for rows.Next() {
		var def domain.Definition
		err := rows.Scan(
			&def.ID,
			&def.WordID,
			&def.Language,
			&def.Definition,
			&def.Note,
		)
		if err != nil {
			return fmt.Errorf("failed to scan definition row: %w", err)
		}
		word.Definitions = append(word.Definitions, def)
	}

	return rows.Err()
}
