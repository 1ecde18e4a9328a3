package config

import "github.com/lexivault/lexi-api/internal/domain/srs"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging"  validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	SRS      SRSConfig      `mapstructure:"srs"`
}

// LoggingConfig contains all logging-related configuration settings.
type LoggingConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// SRSConfig contains scheduler parameter overrides. All fields are optional;
// zero values keep the canonical SM-2 defaults.
type SRSConfig struct {
	MinEaseFactor float64 `mapstructure:"min_ease_factor" validate:"omitempty,gt=1"`

	FirstInterval  int `mapstructure:"first_interval"  validate:"omitempty,gte=1"`
	SecondInterval int `mapstructure:"second_interval" validate:"omitempty,gte=1"`
	LapseInterval  int `mapstructure:"lapse_interval"  validate:"omitempty,gte=1"`

	LearningMaxInterval   int     `mapstructure:"learning_max_interval"    validate:"omitempty,gte=1"`
	MasteredMinInterval   int     `mapstructure:"mastered_min_interval"    validate:"omitempty,gte=1"`
	MasteredMinEaseFactor float64 `mapstructure:"mastered_min_ease_factor" validate:"omitempty,gt=1"`
	MasteredMinReps       int     `mapstructure:"mastered_min_reps"        validate:"omitempty,gte=1"`
}

// ParamsConfig converts the configured overrides into the srs package's
// override struct. Zero values pass through and keep the defaults.
func (c SRSConfig) ParamsConfig() srs.ParamsConfig {
	return srs.ParamsConfig{
		MinEaseFactor:         c.MinEaseFactor,
		FirstInterval:         c.FirstInterval,
		SecondInterval:        c.SecondInterval,
		LapseInterval:         c.LapseInterval,
		LearningMaxInterval:   c.LearningMaxInterval,
		MasteredMinInterval:   c.MasteredMinInterval,
		MasteredMinEaseFactor: c.MasteredMinEaseFactor,
		MasteredMinReps:       c.MasteredMinReps,
	}
}
