package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Elite747/ValhallaLootList-sub000/internal/domain"
	"github.com/Elite747/ValhallaLootList-sub000/internal/repository"
)

const lootListColumns = `l.loot_list_id, l.character_id, l.phase, l.size, l.main_spec, l.off_spec, l.status, l.approved_by, l.timestamp, l.updated_at`

const entryColumns = `e.entry_id, e.loot_list_id, e.rank, e.heroic, e.item_id, e.justification, e.won, e.drop_id`

// LootListRepository implements the loot list repository for PostgreSQL
type LootListRepository struct {
	db *pgxpool.Pool
}

// NewLootListRepository creates a new LootListRepository
func NewLootListRepository(db *pgxpool.Pool) *LootListRepository {
	return &LootListRepository{db: db}
}

// GetLootList returns the list or nil when it does not exist
func (r *LootListRepository) GetLootList(ctx context.Context, listID string) (*domain.CharacterLootList, error) {
	query := `SELECT ` + lootListColumns + ` FROM loot_lists l WHERE l.loot_list_id = $1`

	list, err := scanLootList(r.db.QueryRow(ctx, query, listID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetLootList, err)
	}
	return list, nil
}

// GetEntries returns the list's entries in priority order, rank 1 first
func (r *LootListRepository) GetEntries(ctx context.Context, listID string) ([]domain.LootListEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM loot_list_entries e
		WHERE e.loot_list_id = $1
		ORDER BY e.rank, e.heroic, e.entry_id
	`

	rows, err := r.db.Query(ctx, query, listID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetEntries, err)
	}
	defer rows.Close()

	var entries []domain.LootListEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanRow, err)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRowIterationError, err)
	}
	return entries, nil
}

// GetItems loads the requested items with their restrictions
func (r *LootListRepository) GetItems(ctx context.Context, itemIDs []int) (map[int]domain.Item, error) {
	items := make(map[int]domain.Item, len(itemIDs))
	if len(itemIDs) == 0 {
		return items, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT item_id, name, phase, item_type, inventory_slot, quest_id, heroic
		FROM items
		WHERE item_id = ANY($1)
	`, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItems, err)
	}
	defer rows.Close()

	for rows.Next() {
		var it domain.Item
		var itemType, slot string
		if err := rows.Scan(&it.ID, &it.Name, &it.Phase, &itemType, &slot, &it.QuestID, &it.Heroic); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanRow, err)
		}
		it.Type = domain.ItemType(itemType)
		it.Slot = domain.InventorySlot(slot)
		items[it.ID] = it
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRowIterationError, err)
	}

	restrictions, err := r.db.Query(ctx, `
		SELECT item_id, specs, restriction_level, reason
		FROM item_restrictions
		WHERE item_id = ANY($1)
		ORDER BY item_restriction_id
	`, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRestrictions, err)
	}
	defer restrictions.Close()

	for restrictions.Next() {
		var itemID int
		var specs int64
		var level string
		var res domain.Restriction
		if err := restrictions.Scan(&itemID, &specs, &level, &res.Reason); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanRow, err)
		}
		res.Specs = domain.Specializations(specs)
		res.Level = domain.RestrictionLevel(level)
		it, ok := items[itemID]
		if !ok {
			continue
		}
		it.Restrictions = append(it.Restrictions, res)
		items[itemID] = it
	}
	if err := restrictions.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRowIterationError, err)
	}
	return items, nil
}

// BeginTx starts a loot list transaction
func (r *LootListRepository) BeginTx(ctx context.Context) (repository.LootListTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &lootListTx{pgTx: pgTx{tx: tx}}, nil
}

type lootListTx struct {
	pgTx
}

// UpdateStatus moves the list to status when its stored timestamp still equals expectedTimestamp
func (t *lootListTx) UpdateStatus(ctx context.Context, listID, expectedTimestamp string, status domain.LootListStatus, approvedBy *string, newTimestamp string) error {
	tag, err := t.tx.Exec(ctx, `
		UPDATE loot_lists
		SET status = $3, approved_by = $4, timestamp = $5, updated_at = NOW()
		WHERE loot_list_id = $1 AND timestamp = $2
	`, listID, expectedTimestamp, string(status), approvedBy, newTimestamp)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateStatus, err)
	}
	if tag.RowsAffected() == 0 {
		return t.staleOrMissing(ctx, listID)
	}
	return nil
}

// TouchTimestamp replaces the concurrency token without changing anything else
func (t *lootListTx) TouchTimestamp(ctx context.Context, listID, expectedTimestamp, newTimestamp string) error {
	tag, err := t.tx.Exec(ctx, `
		UPDATE loot_lists
		SET timestamp = $3, updated_at = NOW()
		WHERE loot_list_id = $1 AND timestamp = $2
	`, listID, expectedTimestamp, newTimestamp)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToTouchTimestamp, err)
	}
	if tag.RowsAffected() == 0 {
		return t.staleOrMissing(ctx, listID)
	}
	return nil
}

// CreateEntries bulk inserts the list's initial slots
func (t *lootListTx) CreateEntries(ctx context.Context, entries []domain.LootListEntry) error {
	if len(entries) == 0 {
		return nil
	}

	_, err := t.tx.CopyFrom(ctx,
		pgx.Identifier{"loot_list_entries"},
		[]string{"entry_id", "loot_list_id", "rank", "heroic", "item_id", "justification"},
		pgx.CopyFromSlice(len(entries), func(i int) ([]any, error) {
			e := entries[i]
			return []any{e.ID, e.LootListID, int16(e.Rank), e.Heroic, e.ItemID, e.Justification}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateEntries, err)
	}
	return nil
}

// UpdateEntries writes item and justification changes. Awarded entries are never touched.
func (t *lootListTx) UpdateEntries(ctx context.Context, updates []domain.LootListEntryUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, u := range updates {
		batch.Queue(`
			UPDATE loot_list_entries
			SET item_id = $2, justification = $3
			WHERE entry_id = $1 AND drop_id IS NULL
		`, u.EntryID, u.ItemID, u.Justification)
	}

	results := t.tx.SendBatch(ctx, batch)
	defer results.Close()

	for _, u := range updates {
		tag, err := results.Exec()
		if err != nil {
			return fmt.Errorf("%s %s: %w", ErrMsgFailedToUpdateEntry, u.EntryID, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: %s %s", domain.ErrEntryNotFound, u.EntryID, ErrMsgEntryAwardedOrMissing)
		}
	}
	return results.Close()
}

// staleOrMissing tells a stale token apart from a deleted list after an update matched no rows
func (t *lootListTx) staleOrMissing(ctx context.Context, listID string) error {
	var exists bool
	err := t.tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM loot_lists WHERE loot_list_id = $1)`, listID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCheckListPresent, err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", domain.ErrLootListNotFound, listID)
	}
	return fmt.Errorf("%w: %s", domain.ErrConcurrencyConflict, listID)
}

func scanLootList(row pgx.Row) (*domain.CharacterLootList, error) {
	var l domain.CharacterLootList
	var mainSpec, offSpec int64
	var status string
	var updatedAt time.Time
	err := row.Scan(&l.ID, &l.CharacterID, &l.Phase, &l.Size, &mainSpec, &offSpec, &status, &l.ApprovedBy, &l.Timestamp, &updatedAt)
	if err != nil {
		return nil, err
	}
	l.MainSpec = domain.Specializations(mainSpec)
	l.OffSpec = domain.Specializations(offSpec)
	l.Status = domain.LootListStatus(status)
	l.UpdatedAt = updatedAt.UTC()
	return &l, nil
}

func scanEntry(row pgx.Row) (*domain.LootListEntry, error) {
	var e domain.LootListEntry
	var rank int16
	err := row.Scan(&e.ID, &e.LootListID, &rank, &e.Heroic, &e.ItemID, &e.Justification, &e.Won, &e.DropID)
	if err != nil {
		return nil, err
	}
	e.Rank = byte(rank)
	return &e, nil
}
