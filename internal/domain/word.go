package domain

import (
	"time"

	"github.com/google/uuid"
)

// Word is a vocabulary entry in a given language. Definitions may be in the
// word's own language or a translation language; a word carries at least one
// definition when created through the word service.
type Word struct {
	ID          uuid.UUID    `json:"id"`
	Term        string       `json:"term"`
	Language    string       `json:"language"`  // ISO 639-1 code, e.g. "en", "nb", "de"
	WordType    string       `json:"word_type"` // e.g. "noun", "verb"; free-form, may be empty
	Definitions []Definition `json:"definitions,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// Definition is a single sense of a word, optionally annotated with a note.
type Definition struct {
	ID         uuid.UUID `json:"id"`
	WordID     uuid.UUID `json:"word_id"`
	Language   string    `json:"language"` // Language the definition is written in
	Definition string    `json:"definition"`
	Note       string    `json:"note,omitempty"`
}

// NewWord creates a new word with the given term, language and word type.
func NewWord(term, language, wordType string) (*Word, error) {
	now := time.Now().UTC()
	word := &Word{
		ID:        uuid.New(),
		Term:      term,
		Language:  language,
		WordType:  wordType,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := word.Validate(); err != nil {
		return nil, err
	}

	return word, nil
}

// Validate checks if the Word has valid data.
func (w *Word) Validate() error {
	if w.ID == uuid.Nil {
		return ErrInvalidID
	}

	if w.Term == "" {
		return ErrEmptyTerm
	}

	if w.Language == "" {
		return ErrEmptyLanguage
	}

	for i := range w.Definitions {
		if err := w.Definitions[i].Validate(); err != nil {
			return err
		}
	}

	return nil
}

// NewDefinition creates a definition attached to the given word.
func NewDefinition(wordID uuid.UUID, language, definition, note string) (*Definition, error) {
	def := &Definition{
		ID:         uuid.New(),
		WordID:     wordID,
		Language:   language,
		Definition: definition,
		Note:       note,
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}

	return def, nil
}

// Validate checks if the Definition has valid data.
func (d *Definition) Validate() error {
	if d.WordID == uuid.Nil {
		return ErrInvalidID
	}

	if d.Language == "" {
		return ErrEmptyLanguage
	}

	if d.Definition == "" {
		return ErrEmptyDefinition
	}

	return nil
}
