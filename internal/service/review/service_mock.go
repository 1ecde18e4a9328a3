package review

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lexivault/lexi-api/internal/domain"
)

// MockReviewService is a mock implementation of the ReviewService interface for testing.
type MockReviewService struct {
	SubmitReviewFunc   func(ctx context.Context, userID uuid.UUID, submission ReviewSubmission) (*ReviewResult, error)
	GetDueWordsFunc    func(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]*DueWord, error)
	AddWordToQueueFunc func(ctx context.Context, userID, wordID uuid.UUID) (*domain.UserWordProgress, error)
	GetStatisticsFunc  func(ctx context.Context, userID uuid.UUID) (*StatisticsSummary, error)
}

var _ ReviewService = (*MockReviewService)(nil)

// SubmitReview delegates to SubmitReviewFunc when set.
func (m *MockReviewService) SubmitReview(
	ctx context.Context,
	userID uuid.UUID,
	submission ReviewSubmission,
) (*ReviewResult, error) {
	if m.SubmitReviewFunc != nil {
		return m.SubmitReviewFunc(ctx, userID, submission)
	}
	return nil, nil
}

// GetDueWords delegates to GetDueWordsFunc when set.
func (m *MockReviewService) GetDueWords(
	ctx context.Context,
	userID uuid.UUID,
	now time.Time,
	limit int,
) ([]*DueWord, error) {
	if m.GetDueWordsFunc != nil {
		return m.GetDueWordsFunc(ctx, userID, now, limit)
	}
	return nil, nil
}

// AddWordToQueue delegates to AddWordToQueueFunc when set.
func (m *MockReviewService) AddWordToQueue(
	ctx context.Context,
	userID, wordID uuid.UUID,
) (*domain.UserWordProgress, error) {
	if m.AddWordToQueueFunc != nil {
		return m.AddWordToQueueFunc(ctx, userID, wordID)
	}
	return nil, nil
}

// GetStatistics delegates to GetStatisticsFunc when set.
func (m *MockReviewService) GetStatistics(
	ctx context.Context,
	userID uuid.UUID,
) (*StatisticsSummary, error) {
	if m.GetStatisticsFunc != nil {
		return m.GetStatisticsFunc(ctx, userID)
	}
	return nil, nil
}
