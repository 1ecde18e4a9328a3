package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/lexivault/lexi-api/internal/domain"
)

// WordStore defines the interface for word and definition persistence.
type WordStore interface {
	// Create saves a new word together with its definitions.
	// It handles domain validation internally.
	// Returns validation errors from the domain Word if data is invalid.
	// Returns ErrDuplicate if the term already exists for the language.
	Create(ctx context.Context, word *domain.Word) error

	// GetByID retrieves a word by its unique ID, including its definitions.
	// Returns ErrWordNotFound if the word does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error)

	// ListByLanguage retrieves up to limit words for a language code,
	// most recently created first. Definitions are included.
	ListByLanguage(ctx context.Context, language string, limit int) ([]*domain.Word, error)

	// Delete removes a word and its definitions.
	// Returns ErrWordNotFound if the word does not exist.
	// This operation is permanent and cannot be undone.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new WordStore instance that uses the provided transaction.
	// This allows for multiple operations to be executed within a single transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) WordStore
}
