package repository

import (
	"context"

	"github.com/Elite747/ValhallaLootList-sub000/internal/domain"
)

// LootList defines the data access required by the loot list service
type LootList interface {
	GetLootList(ctx context.Context, listID string) (*domain.CharacterLootList, error)
	GetEntries(ctx context.Context, listID string) ([]domain.LootListEntry, error)
	// GetItems returns the requested items keyed by ID; unknown IDs are absent from the map
	GetItems(ctx context.Context, itemIDs []int) (map[int]domain.Item, error)

	BeginTx(ctx context.Context) (LootListTx, error)
}

// LootListTx is the transactional half of the loot list repository.
// Every method that takes an expected timestamp returns domain.ErrConcurrencyConflict on mismatch.
type LootListTx interface {
	Tx

	UpdateStatus(ctx context.Context, listID, expectedTimestamp string, status domain.LootListStatus, approvedBy *string, newTimestamp string) error
	TouchTimestamp(ctx context.Context, listID, expectedTimestamp, newTimestamp string) error
	CreateEntries(ctx context.Context, entries []domain.LootListEntry) error
	UpdateEntries(ctx context.Context, updates []domain.LootListEntryUpdate) error
}
