// Command migrate applies the database schema migrations. It is safe to run
// repeatedly; already-applied migrations are skipped.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver

	"github.com/lexivault/lexi-api/internal/config"
	"github.com/lexivault/lexi-api/internal/platform/logger"
	"github.com/lexivault/lexi-api/internal/platform/postgres"
	"github.com/lexivault/lexi-api/internal/redact"
)

func main() {
	if err := run(); err != nil {
		// Driver errors can echo the connection string back.
		slog.Error("migration failed", slog.String("error", redact.Error(err)))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("connecting to database",
		slog.String("url", redact.URL(cfg.Database.URL)))

	db, err := openDatabase(cfg.Database.URL)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("error closing database connection", slog.String("error", err.Error()))
		}
	}()

	ctx := context.Background()

	start := time.Now()
	if err := postgres.RunMigrations(ctx, db); err != nil {
		return err
	}

	log.Info("migrations applied",
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))
	return nil
}

func openDatabase(url string) (*sql.DB, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
