package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lexivault/lexi-api/internal/domain"
	"github.com/lexivault/lexi-api/internal/platform/logger"
	"github.com/lexivault/lexi-api/internal/store"
)

// DefinitionInput is the caller-supplied content for one definition of a
// new word.
type DefinitionInput struct {
	Language   string `json:"language"`
	Definition string `json:"definition"`
	Note       string `json:"note,omitempty"`
}

// WordService provides vocabulary management operations.
type WordService interface {
	// CreateWord creates a word together with its definitions atomically.
	// Returns ErrDuplicateWord if the term already exists for the language.
	CreateWord(
		ctx context.Context,
		term, language, wordType string,
		definitions []DefinitionInput,
	) (*domain.Word, error)

	// GetWord retrieves a word by ID, including its definitions.
	// Returns ErrWordNotFound if the word does not exist.
	GetWord(ctx context.Context, wordID uuid.UUID) (*domain.Word, error)

	// ListWords retrieves up to limit words for a language, newest first.
	ListWords(ctx context.Context, language string, limit int) ([]*domain.Word, error)

	// DeleteWord removes a word, its definitions, and any progress records
	// referencing it. Returns ErrWordNotFound if the word does not exist.
	DeleteWord(ctx context.Context, wordID uuid.UUID) error
}

// wordServiceImpl implements the WordService interface.
type wordServiceImpl struct {
	db        *sql.DB
	wordStore store.WordStore
	logger    *slog.Logger

	// runTx defaults to store.RunInTransaction; tests substitute a runner
	// that skips the database.
	runTx func(ctx context.Context, db *sql.DB, fn store.TxFn) error
}

// Verify interface compliance at compile time
var _ WordService = (*wordServiceImpl)(nil)

// NewWordService creates a new WordService.
func NewWordService(db *sql.DB, wordStore store.WordStore, logger *slog.Logger) WordService {
	// Validate inputs
	if db == nil {
		panic("db cannot be nil")
	}
	if wordStore == nil {
		panic("wordStore cannot be nil")
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &wordServiceImpl{
		db:        db,
		wordStore: wordStore,
		logger:    logger.With(slog.String("component", "word_service")),
		runTx:     store.RunInTransaction,
	}
}

// CreateWord implements WordService.CreateWord.
// The word and its definitions are saved in one transaction so a failed
// definition insert never leaves a word without its senses.
func (s *wordServiceImpl) CreateWord(
	ctx context.Context,
	term, language, wordType string,
	definitions []DefinitionInput,
) (*domain.Word, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	word, err := domain.NewWord(term, language, wordType)
	if err != nil {
		return nil, fmt.Errorf("invalid word: %w", err)
	}

	for _, input := range definitions {
		def, err := domain.NewDefinition(word.ID, input.Language, input.Definition, input.Note)
		if err != nil {
			return nil, fmt.Errorf("invalid definition: %w", err)
		}
		word.Definitions = append(word.Definitions, *def)
	}

	err = s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.wordStore.WithTx(tx).Create(ctx, word)
	})
	if err != nil {
		if store.IsDuplicateError(err) {
			log.Debug("duplicate word rejected",
				slog.String("term", term),
				slog.String("language", language))
			return nil, ErrDuplicateWord
		}

		log.Error("failed to create word",
			slog.String("error", err.Error()),
			slog.String("term", term),
			slog.String("language", language))
		return nil, NewWordServiceError("create_word", "failed to save word", err)
	}

	log.Debug("word created",
		slog.String("word_id", word.ID.String()),
		slog.String("term", term),
		slog.String("language", language),
		slog.Int("definitions", len(word.Definitions)))

	return word, nil
}

// GetWord implements WordService.GetWord.
func (s *wordServiceImpl) GetWord(ctx context.Context, wordID uuid.UUID) (*domain.Word, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	word, err := s.wordStore.GetByID(ctx, wordID)
	if err != nil {
		if errors.Is(err, store.ErrWordNotFound) {
			return nil, ErrWordNotFound
		}

		log.Error("failed to get word",
			slog.String("error", err.Error()),
			slog.String("word_id", wordID.String()))
		return nil, NewWordServiceError("get_word", "failed to get word", err)
	}

	return word, nil
}

// ListWords implements WordService.ListWords.
func (s *wordServiceImpl) ListWords(
	ctx context.Context,
	language string,
	limit int,
) ([]*domain.Word, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if language == "" {
		return nil, fmt.Errorf("invalid language: %w", domain.ErrEmptyLanguage)
	}

	words, err := s.wordStore.ListByLanguage(ctx, language, limit)
	if err != nil {
		log.Error("failed to list words",
			slog.String("error", err.Error()),
			slog.String("language", language))
		return nil, NewWordServiceError("list_words", "failed to list words", err)
	}

	return words, nil
}

// DeleteWord implements WordService.DeleteWord.
func (s *wordServiceImpl) DeleteWord(ctx context.Context, wordID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.wordStore.Delete(ctx, wordID)
	if err != nil {
		if errors.Is(err, store.ErrWordNotFound) {
			return ErrWordNotFound
		}

		log.Error("failed to delete word",
			slog.String("error", err.Error()),
			slog.String("word_id", wordID.String()))
		return NewWordServiceError("delete_word", "failed to delete word", err)
	}

	log.Debug("word deleted", slog.String("word_id", wordID.String()))
	return nil
}
