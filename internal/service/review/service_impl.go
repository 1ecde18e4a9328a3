package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lexivault/lexi-api/internal/domain"
	"github.com/lexivault/lexi-api/internal/domain/srs"
	"github.com/lexivault/lexi-api/internal/platform/logger"
	"github.com/lexivault/lexi-api/internal/store"
)

// Verify interface compliance at compile time
var _ ReviewService = (*reviewServiceImpl)(nil)

// reviewServiceImpl implements the ReviewService interface.
type reviewServiceImpl struct {
	db            *sql.DB
	wordStore     store.WordStore
	progressStore store.ProgressStore
	statsStore    store.StatisticsStore
	srsService    srs.Service
	logger        *slog.Logger

	// runTx defaults to store.RunInTransaction; tests substitute a runner
	// that skips the database.
	runTx func(ctx context.Context, db *sql.DB, fn store.TxFn) error
}

// NewReviewService creates a new ReviewService implementation.
func NewReviewService(
	db *sql.DB,
	wordStore store.WordStore,
	progressStore store.ProgressStore,
	statsStore store.StatisticsStore,
	srsService srs.Service,
	logger *slog.Logger,
) ReviewService {
	// Validate inputs
	if db == nil {
		panic("db cannot be nil")
	}
	if wordStore == nil {
		panic("wordStore cannot be nil")
	}
	if progressStore == nil {
		panic("progressStore cannot be nil")
	}
	if statsStore == nil {
		panic("statsStore cannot be nil")
	}
	if srsService == nil {
		panic("srsService cannot be nil")
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &reviewServiceImpl{
		db:            db,
		wordStore:     wordStore,
		progressStore: progressStore,
		statsStore:    statsStore,
		srsService:    srsService,
		logger:        logger.With(slog.String("component", "review_service")),
		runTx:         store.RunInTransaction,
	}
}

// SubmitReview implements ReviewService.SubmitReview.
func (s *reviewServiceImpl) SubmitReview(
	ctx context.Context,
	userID uuid.UUID,
	submission ReviewSubmission,
) (*ReviewResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("processing review submission",
		slog.String("user_id", userID.String()),
		slog.String("word_id", submission.WordID.String()),
		slog.Bool("correct", submission.Correct),
		slog.String("difficulty", string(submission.Difficulty)))

	now := time.Now().UTC()
	var result *ReviewResult

	err := s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		progressStore := s.progressStore.WithTx(tx)
		statsStore := s.statsStore.WithTx(tx)

		// Lock the progress row so concurrent submissions for the same word
		// are applied one at a time.
		progress, err := progressStore.GetForUpdate(ctx, userID, submission.WordID)
		if err != nil {
			if errors.Is(err, store.ErrProgressNotFound) {
				return ErrProgressNotFound
			}
			return fmt.Errorf("failed to get progress: %w", err)
		}

		quality := srs.QualityFromOutcome(submission.Correct, submission.Difficulty)

		updated, err := s.srsService.CalculateNextReview(progress, quality, now)
		if err != nil {
			return fmt.Errorf("failed to calculate next review: %w", err)
		}

		if err := progressStore.Update(ctx, updated); err != nil {
			return fmt.Errorf("failed to update progress: %w", err)
		}

		stats, err := s.statsForUpdate(ctx, statsStore, userID)
		if err != nil {
			return err
		}

		fresh := stats.WithReview(submission.Correct, now)

		// The mastered counter tracks current classification, which can move
		// in both directions, so recount instead of incrementing.
		counts, err := progressStore.CountByStatus(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to count progress by status: %w", err)
		}
		fresh.WordsMastered = counts[domain.ProgressStatusMastered]

		if err := statsStore.Upsert(ctx, fresh); err != nil {
			return fmt.Errorf("failed to upsert statistics: %w", err)
		}

		result = &ReviewResult{
			Progress: updated,
			Accuracy: srs.Accuracy(updated.CorrectCount, updated.ReviewCount),
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrProgressNotFound) {
			log.Warn("word not in learning queue",
				slog.String("user_id", userID.String()),
				slog.String("word_id", submission.WordID.String()))
			return nil, err
		}

		log.Error("failed to submit review",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("word_id", submission.WordID.String()))
		return nil, NewSubmitReviewError("failed to submit review", err)
	}

	log.Debug("successfully processed review",
		slog.String("user_id", userID.String()),
		slog.String("word_id", submission.WordID.String()),
		slog.Float64("ease_factor", result.Progress.EaseFactor),
		slog.Int("interval_days", result.Progress.IntervalDays),
		slog.String("status", string(result.Progress.Status)),
		slog.Time("next_review_at", result.Progress.NextReviewAt))

	return result, nil
}

// GetDueWords implements ReviewService.GetDueWords.
func (s *reviewServiceImpl) GetDueWords(
	ctx context.Context,
	userID uuid.UUID,
	now time.Time,
	limit int,
) ([]*DueWord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	due, err := s.progressStore.ListDue(ctx, userID, now, limit)
	if err != nil {
		log.Error("failed to list due words",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, NewGetDueWordsError("failed to list due words", err)
	}

	words := make([]*DueWord, 0, len(due))
	for _, progress := range due {
		word, err := s.wordStore.GetByID(ctx, progress.WordID)
		if err != nil {
			log.Error("failed to load due word",
				slog.String("error", err.Error()),
				slog.String("user_id", userID.String()),
				slog.String("word_id", progress.WordID.String()))
			return nil, NewGetDueWordsError("failed to load due word", err)
		}
		words = append(words, &DueWord{Word: word, Progress: progress})
	}

	log.Debug("retrieved due words",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(words)))

	return words, nil
}

// AddWordToQueue implements ReviewService.AddWordToQueue.
func (s *reviewServiceImpl) AddWordToQueue(
	ctx context.Context,
	userID uuid.UUID,
	wordID uuid.UUID,
) (*domain.UserWordProgress, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var progress *domain.UserWordProgress

	err := s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		wordStore := s.wordStore.WithTx(tx)
		progressStore := s.progressStore.WithTx(tx)
		statsStore := s.statsStore.WithTx(tx)

		if _, err := wordStore.GetByID(ctx, wordID); err != nil {
			if errors.Is(err, store.ErrWordNotFound) {
				return ErrWordNotFound
			}
			return fmt.Errorf("failed to get word: %w", err)
		}

		created, err := domain.NewUserWordProgress(userID, wordID)
		if err != nil {
			return fmt.Errorf("failed to create progress: %w", err)
		}

		if err := progressStore.Create(ctx, created); err != nil {
			if errors.Is(err, store.ErrProgressExists) {
				return ErrWordAlreadyQueued
			}
			return fmt.Errorf("failed to save progress: %w", err)
		}

		stats, err := s.statsForUpdate(ctx, statsStore, userID)
		if err != nil {
			return err
		}

		fresh := *stats
		fresh.WordsLearned++
		fresh.UpdatedAt = time.Now().UTC()

		if err := statsStore.Upsert(ctx, &fresh); err != nil {
			return fmt.Errorf("failed to upsert statistics: %w", err)
		}

		progress = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrWordNotFound) || errors.Is(err, ErrWordAlreadyQueued) {
			log.Debug("word not added to queue",
				slog.String("reason", err.Error()),
				slog.String("user_id", userID.String()),
				slog.String("word_id", wordID.String()))
			return nil, err
		}

		log.Error("failed to add word to queue",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("word_id", wordID.String()))
		return nil, NewAddWordError("failed to add word to queue", err)
	}

	log.Debug("word added to learning queue",
		slog.String("user_id", userID.String()),
		slog.String("word_id", wordID.String()))

	return progress, nil
}

// GetStatistics implements ReviewService.GetStatistics.
func (s *reviewServiceImpl) GetStatistics(
	ctx context.Context,
	userID uuid.UUID,
) (*StatisticsSummary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	stats, err := s.statsStore.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrStatisticsNotFound) {
			stats, err = domain.NewUserStatistics(userID)
			if err != nil {
				return nil, NewGetStatisticsError("failed to build empty statistics", err)
			}
		} else {
			log.Error("failed to get statistics",
				slog.String("error", err.Error()),
				slog.String("user_id", userID.String()))
			return nil, NewGetStatisticsError("failed to get statistics", err)
		}
	}

	counts, err := s.progressStore.CountByStatus(ctx, userID)
	if err != nil {
		log.Error("failed to count progress by status",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, NewGetStatisticsError("failed to count progress by status", err)
	}

	return &StatisticsSummary{
		Statistics:   stats,
		Accuracy:     srs.Accuracy(stats.CorrectReviews, stats.TotalReviews),
		StatusCounts: counts,
	}, nil
}

// statsForUpdate loads the user's statistics row under lock, creating an
// empty record for first-time users.
func (s *reviewServiceImpl) statsForUpdate(
	ctx context.Context,
	statsStore store.StatisticsStore,
	userID uuid.UUID,
) (*domain.UserStatistics, error) {
	stats, err := statsStore.GetForUpdate(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrStatisticsNotFound) {
			stats, err = domain.NewUserStatistics(userID)
			if err != nil {
				return nil, fmt.Errorf("failed to create statistics: %w", err)
			}
			return stats, nil
		}
		return nil, fmt.Errorf("failed to get statistics: %w", err)
	}
	return stats, nil
}
