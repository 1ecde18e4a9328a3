package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrEmptyTerm is returned when a word is created without a term.
	ErrEmptyTerm = errors.New("word term cannot be empty")

	// ErrEmptyLanguage is returned when a language code is missing.
	ErrEmptyLanguage = errors.New("language code cannot be empty")

	// ErrEmptyDefinition is returned when a definition has no text.
	ErrEmptyDefinition = errors.New("definition cannot be empty")

	// ErrInvalidProgressStatus is returned when a progress status is not
	// one of the recognized values.
	ErrInvalidProgressStatus = errors.New("invalid progress status")
)
