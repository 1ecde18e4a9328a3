package postgres

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewPostgresWordStore(t *testing.T) {
	t.Run("nil_db_panics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewPostgresWordStore(nil, slog.Default())
		})
	})

	t.Run("nil_logger_uses_default", func(t *testing.T) {
		s := NewPostgresWordStore(&sql.DB{}, nil)
		assert.NotNil(t, s)
		assert.NotNil(t, s.logger)
	})
}

func TestNewPostgresProgressStore(t *testing.T) {
	t.Run("nil_db_panics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewPostgresProgressStore(nil, slog.Default())
		})
	})

	t.Run("nil_logger_uses_default", func(t *testing.T) {
		s := NewPostgresProgressStore(&sql.DB{}, nil)
		assert.NotNil(t, s)
		assert.NotNil(t, s.logger)
	})
}

func TestNewPostgresStatisticsStore(t *testing.T) {
	t.Run("nil_db_panics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewPostgresStatisticsStore(nil, slog.Default())
		})
	})

	t.Run("nil_logger_uses_default", func(t *testing.T) {
		s := NewPostgresStatisticsStore(&sql.DB{}, nil)
		assert.NotNil(t, s)
		assert.NotNil(t, s.logger)
	})
}

func TestNullableTime(t *testing.T) {
	t.Run("zero_time_maps_to_null", func(t *testing.T) {
		nt := nullableTime(time.Time{})
		assert.False(t, nt.Valid)
	})

	t.Run("non_zero_time_is_valid", func(t *testing.T) {
		now := time.Now().UTC()
		nt := nullableTime(now)
		assert.True(t, nt.Valid)
		assert.Equal(t, now, nt.Time)
	})
}
