package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Elite747/ValhallaLootList-sub000/internal/allocation"
	"github.com/Elite747/ValhallaLootList-sub000/internal/domain"
	"github.com/Elite747/ValhallaLootList-sub000/internal/lootlist"
	"github.com/Elite747/ValhallaLootList-sub000/internal/priority"
)

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

type MockLootListService struct {
	mock.Mock
}

func (m *MockLootListService) GetLootList(ctx context.Context, listID string) (*lootlist.ListView, error) {
	args := m.Called(ctx, listID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lootlist.ListView), args.Error(1)
}

func (m *MockLootListService) Transition(ctx context.Context, listID string, action lootlist.Action, timestamp, actor string) (*domain.CharacterLootList, error) {
	args := m.Called(ctx, listID, action, timestamp, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CharacterLootList), args.Error(1)
}

func (m *MockLootListService) SetEntry(ctx context.Context, listID, entryID string, req lootlist.EntryRequest) (*lootlist.EntryResult, error) {
	args := m.Called(ctx, listID, entryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lootlist.EntryResult), args.Error(1)
}

func (m *MockLootListService) CheckEntry(ctx context.Context, listID, entryID string, req lootlist.EntryRequest) (*lootlist.ValidationResult, error) {
	args := m.Called(ctx, listID, entryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lootlist.ValidationResult), args.Error(1)
}

type MockPriorityService struct {
	mock.Mock
}

func (m *MockPriorityService) Bonuses(ctx context.Context, characterID string, phase, size, itemID int) (*priority.Report, error) {
	args := m.Called(ctx, characterID, phase, size, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*priority.Report), args.Error(1)
}

func (m *MockPriorityService) Evaluate(ctx context.Context, e domain.DropEligibility, itemID int) (*priority.Report, error) {
	args := m.Called(ctx, e, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*priority.Report), args.Error(1)
}

func (m *MockPriorityService) RecordDonation(ctx context.Context, d domain.MonthDonation) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockPriorityService) DonationCredit(ctx context.Context, characterID string) (int64, error) {
	args := m.Called(ctx, characterID)
	return args.Get(0).(int64), args.Error(1)
}

type MockDropService struct {
	mock.Mock
}

func (m *MockDropService) Standings(ctx context.Context, dropID string) ([]allocation.Standing, error) {
	args := m.Called(ctx, dropID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]allocation.Standing), args.Error(1)
}

func (m *MockDropService) Award(ctx context.Context, dropID string, winnerID *string, awardedBy string) (*domain.Drop, error) {
	args := m.Called(ctx, dropID, winnerID, awardedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Drop), args.Error(1)
}
