package priority

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Elite747/ValhallaLootList-sub000/internal/domain"
)

// MockRepository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetCharacter(ctx context.Context, characterID string) (*domain.Character, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockRepository) CountAttendances(ctx context.Context, characterID string, limit int) (int, error) {
	args := m.Called(ctx, characterID, limit)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) GetDonations(ctx context.Context, characterID string) ([]domain.MonthDonation, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthDonation), args.Error(1)
}

func (m *MockRepository) InsertDonation(ctx context.Context, donation *domain.MonthDonation) error {
	args := m.Called(ctx, donation)
	return args.Error(0)
}

func (m *MockRepository) CountTimesSeen(ctx context.Context, characterID string, itemID int) (int, error) {
	args := m.Called(ctx, characterID, itemID)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) GetEntryForItem(ctx context.Context, characterID string, phase, size, itemID int) (*domain.LootListEntry, error) {
	args := m.Called(ctx, characterID, phase, size, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LootListEntry), args.Error(1)
}
