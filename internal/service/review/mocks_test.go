package review

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/lexivault/lexi-api/internal/domain"
	"github.com/lexivault/lexi-api/internal/store"
)

// passthroughTx runs the transaction function directly, without a database.
// Mock stores ignore the nil transaction because WithTx returns the mock
// itself.
func passthroughTx(ctx context.Context, _ *sql.DB, fn store.TxFn) error {
	return fn(ctx, nil)
}

// mockWordStore implements store.WordStore with overridable functions.
type mockWordStore struct {
	CreateFunc         func(ctx context.Context, word *domain.Word) error
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	ListByLanguageFunc func(ctx context.Context, language string, limit int) ([]*domain.Word, error)
	DeleteFunc         func(ctx context.Context, id uuid.UUID) error
}

var _ store.WordStore = (*mockWordStore)(nil)

func (m *mockWordStore) Create(ctx context.Context, word *domain.Word) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, word)
	}
	return nil
}

func (m *mockWordStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, store.ErrWordNotFound
}

func (m *mockWordStore) ListByLanguage(
	ctx context.Context,
	language string,
	limit int,
) ([]*domain.Word, error) {
	if m.ListByLanguageFunc != nil {
		return m.ListByLanguageFunc(ctx, language, limit)
	}
	return nil, nil
}

func (m *mockWordStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockWordStore) WithTx(tx *sql.Tx) store.WordStore {
	return m
}

// mockProgressStore implements store.ProgressStore with overridable functions.
type mockProgressStore struct {
	CreateFunc        func(ctx context.Context, progress *domain.UserWordProgress) error
	GetFunc           func(ctx context.Context, userID, wordID uuid.UUID) (*domain.UserWordProgress, error)
	GetForUpdateFunc  func(ctx context.Context, userID, wordID uuid.UUID) (*domain.UserWordProgress, error)
	UpdateFunc        func(ctx context.Context, progress *domain.UserWordProgress) error
	DeleteFunc        func(ctx context.Context, userID, wordID uuid.UUID) error
	ListDueFunc       func(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]*domain.UserWordProgress, error)
	CountByStatusFunc func(ctx context.Context, userID uuid.UUID) (map[domain.ProgressStatus]int, error)
}

var _ store.ProgressStore = (*mockProgressStore)(nil)

func (m *mockProgressStore) Create(ctx context.Context, progress *domain.UserWordProgress) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, progress)
	}
	return nil
}

func (m *mockProgressStore) Get(
	ctx context.Context,
	userID, wordID uuid.UUID,
) (*domain.UserWordProgress, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID, wordID)
	}
	return nil, store.ErrProgressNotFound
}

func (m *mockProgressStore) GetForUpdate(
	ctx context.Context,
	userID, wordID uuid.UUID,
) (*domain.UserWordProgress, error) {
	if m.GetForUpdateFunc != nil {
		return m.GetForUpdateFunc(ctx, userID, wordID)
	}
	return nil, store.ErrProgressNotFound
}

func (m *mockProgressStore) Update(ctx context.Context, progress *domain.UserWordProgress) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, progress)
	}
	return nil
}

func (m *mockProgressStore) Delete(ctx context.Context, userID, wordID uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, wordID)
	}
	return nil
}

func (m *mockProgressStore) ListDue(
	ctx context.Context,
	userID uuid.UUID,
	now time.Time,
	limit int,
) ([]*domain.UserWordProgress, error) {
	if m.ListDueFunc != nil {
		return m.ListDueFunc(ctx, userID, now, limit)
	}
	return nil, nil
}

func (m *mockProgressStore) CountByStatus(
	ctx context.Context,
	userID uuid.UUID,
) (map[domain.ProgressStatus]int, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, userID)
	}
	return map[domain.ProgressStatus]int{}, nil
}

func (m *mockProgressStore) WithTx(tx *sql.Tx) store.ProgressStore {
	return m
}

// mockStatsStore implements store.StatisticsStore with overridable functions.
type mockStatsStore struct {
	GetFunc          func(ctx context.Context, userID uuid.UUID) (*domain.UserStatistics, error)
	GetForUpdateFunc func(ctx context.Context, userID uuid.UUID) (*domain.UserStatistics, error)
	UpsertFunc       func(ctx context.Context, stats *domain.UserStatistics) error
}

var _ store.StatisticsStore = (*mockStatsStore)(nil)

func (m *mockStatsStore) Get(ctx context.Context, userID uuid.UUID) (*domain.UserStatistics, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID)
	}
	return nil, store.ErrStatisticsNotFound
}

func (m *mockStatsStore) GetForUpdate(
	ctx context.Context,
	userID uuid.UUID,
) (*domain.UserStatistics, error) {
	if m.GetForUpdateFunc != nil {
		return m.GetForUpdateFunc(ctx, userID)
	}
	return nil, store.ErrStatisticsNotFound
}

func (m *mockStatsStore) Upsert(ctx context.Context, stats *domain.UserStatistics) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, stats)
	}
	return nil
}

func (m *mockStatsStore) WithTx(tx *sql.Tx) store.StatisticsStore {
	return m
}
