package allocation

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Elite747/ValhallaLootList-sub000/internal/domain"
	"github.com/Elite747/ValhallaLootList-sub000/internal/priority"
	"github.com/Elite747/ValhallaLootList-sub000/internal/repository"
)

// MockRepository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetDrop(ctx context.Context, dropID string) (*domain.Drop, error) {
	args := m.Called(ctx, dropID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Drop), args.Error(1)
}

func (m *MockRepository) GetEligibility(ctx context.Context, dropID string) ([]domain.DropEligibility, error) {
	args := m.Called(ctx, dropID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DropEligibility), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.DropTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.DropTx), args.Error(1)
}

// MockTx
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) GetDropForUpdate(ctx context.Context, dropID string) (*domain.Drop, error) {
	args := m.Called(ctx, dropID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Drop), args.Error(1)
}

func (m *MockTx) SetWinner(ctx context.Context, dropID string, winnerID, entryID *string, awardedAt *time.Time, awardedBy *string) error {
	args := m.Called(ctx, dropID, winnerID, entryID, awardedAt, awardedBy)
	return args.Error(0)
}

func (m *MockTx) ReplacePasses(ctx context.Context, dropID string, passes []domain.DropPass) error {
	args := m.Called(ctx, dropID, passes)
	return args.Error(0)
}

func (m *MockTx) LinkEntry(ctx context.Context, entryID, dropID string) error {
	args := m.Called(ctx, entryID, dropID)
	return args.Error(0)
}

func (m *MockTx) UnlinkEntries(ctx context.Context, dropID string) error {
	args := m.Called(ctx, dropID)
	return args.Error(0)
}

// MockScorer
type MockScorer struct {
	mock.Mock
}

func (m *MockScorer) Evaluate(ctx context.Context, e domain.DropEligibility, itemID int) (*priority.Report, error) {
	args := m.Called(ctx, e.Character.ID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*priority.Report), args.Error(1)
}
