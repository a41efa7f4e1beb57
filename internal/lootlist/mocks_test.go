package lootlist

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Elite747/ValhallaLootList-sub000/internal/domain"
	"github.com/Elite747/ValhallaLootList-sub000/internal/repository"
)

// MockRepository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetLootList(ctx context.Context, listID string) (*domain.CharacterLootList, error) {
	args := m.Called(ctx, listID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CharacterLootList), args.Error(1)
}

func (m *MockRepository) GetEntries(ctx context.Context, listID string) ([]domain.LootListEntry, error) {
	args := m.Called(ctx, listID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LootListEntry), args.Error(1)
}

func (m *MockRepository) GetItems(ctx context.Context, itemIDs []int) (map[int]domain.Item, error) {
	args := m.Called(ctx, itemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]domain.Item), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.LootListTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.LootListTx), args.Error(1)
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

func (m *MockTx) UpdateStatus(ctx context.Context, listID, expectedTimestamp string, status domain.LootListStatus, approvedBy *string, newTimestamp string) error {
	args := m.Called(ctx, listID, expectedTimestamp, status, approvedBy, newTimestamp)
	return args.Error(0)
}

func (m *MockTx) TouchTimestamp(ctx context.Context, listID, expectedTimestamp, newTimestamp string) error {
	args := m.Called(ctx, listID, expectedTimestamp, newTimestamp)
	return args.Error(0)
}

func (m *MockTx) CreateEntries(ctx context.Context, entries []domain.LootListEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockTx) UpdateEntries(ctx context.Context, updates []domain.LootListEntryUpdate) error {
	args := m.Called(ctx, updates)
	return args.Error(0)
}
