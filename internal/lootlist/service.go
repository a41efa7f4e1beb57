package lootlist

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/Elite747/ValhallaLootList-sub000/internal/bracket"
	"github.com/Elite747/ValhallaLootList-sub000/internal/domain"
	"github.com/Elite747/ValhallaLootList-sub000/internal/logger"
	"github.com/Elite747/ValhallaLootList-sub000/internal/metrics"
	"github.com/Elite747/ValhallaLootList-sub000/internal/repository"
)

// EntryRequest is a requested change to one loot list entry
type EntryRequest struct {
	ItemID          *int    `json:"item_id,omitempty" validate:"omitempty,gt=0"`
	SwapEntryID     *string `json:"swap_entry_id,omitempty" validate:"omitempty,uuid"`
	RemoveIfInvalid bool    `json:"remove_if_invalid"`
	Justification   *string `json:"justification,omitempty"`
	Timestamp       string  `json:"timestamp" validate:"required"`
}

// ListView is a loot list together with its entries
type ListView struct {
	List    domain.CharacterLootList `json:"list"`
	Entries []domain.LootListEntry   `json:"entries"`
}

// EntryResult reports a successful entry edit and the list's new concurrency token
type EntryResult struct {
	Entries   []domain.LootListEntry `json:"entries"`
	Timestamp string                 `json:"timestamp"`
}

// Service defines the interface for loot list operations
type Service interface {
	GetLootList(ctx context.Context, listID string) (*ListView, error)
	Transition(ctx context.Context, listID string, action Action, timestamp, actor string) (*domain.CharacterLootList, error)
	SetEntry(ctx context.Context, listID, entryID string, req EntryRequest) (*EntryResult, error)
	CheckEntry(ctx context.Context, listID, entryID string, req EntryRequest) (*ValidationResult, error)
}

type service struct {
	repo     repository.LootList
	brackets *bracket.Catalog
	newToken func() string
}

// NewService creates a new loot list service
func NewService(repo repository.LootList, brackets *bracket.Catalog) Service {
	return &service{
		repo:     repo,
		brackets: brackets,
		newToken: uuid.NewString,
	}
}

// GetLootList is read-only and echoes the stored timestamp
func (s *service) GetLootList(ctx context.Context, listID string) (*ListView, error) {
	list, err := s.getList(ctx, listID)
	if err != nil {
		return nil, err
	}
	entries, err := s.repo.GetEntries(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetEntries, err)
	}
	return &ListView{List: *list, Entries: entries}, nil
}

// Transition moves the list through its workflow. Submitting a list with no
// entries creates one empty entry per bracket quota slot.
func (s *service) Transition(ctx context.Context, listID string, action Action, timestamp, actor string) (*domain.CharacterLootList, error) {
	log := logger.FromContext(ctx)

	list, err := s.getList(ctx, listID)
	if err != nil {
		return nil, err
	}
	if list.Timestamp != timestamp {
		return nil, domain.ErrConcurrencyConflict
	}

	next, err := Next(list.Status, action)
	if err != nil {
		return nil, err
	}

	var newEntries []domain.LootListEntry
	if action == ActionSubmit {
		newEntries, err = s.initialEntries(ctx, list)
		if err != nil {
			return nil, err
		}
	}

	var approvedBy *string
	if action == ActionApprove {
		approvedBy = &actor
	} else if next != domain.LootListStatusEditing {
		approvedBy = list.ApprovedBy
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	token := s.newToken()
	if err := tx.UpdateStatus(ctx, listID, timestamp, next, approvedBy, token); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToUpdate, err)
	}
	if len(newEntries) > 0 {
		if err := tx.CreateEntries(ctx, newEntries); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToSaveEntries, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}

	metrics.ListTransitions.WithLabelValues(string(next)).Inc()
	if len(newEntries) > 0 {
		log.Info(LogMsgEntriesInitialized, "list_id", listID, "count", len(newEntries))
	}
	log.Info(LogMsgListTransitioned, "list_id", listID, "from", list.Status, "to", next, "actor", actor)

	updated := *list
	updated.Status = next
	updated.ApprovedBy = approvedBy
	updated.Timestamp = token
	return &updated, nil
}

func (s *service) initialEntries(ctx context.Context, list *domain.CharacterLootList) ([]domain.LootListEntry, error) {
	existing, err := s.repo.GetEntries(ctx, list.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetEntries, err)
	}
	if len(existing) > 0 {
		return nil, nil
	}

	set, err := s.brackets.ForPhase(list.Phase)
	if err != nil {
		return nil, err
	}

	slots := set.Slots()
	entries := make([]domain.LootListEntry, 0, len(slots))
	for _, slot := range slots {
		entries = append(entries, domain.LootListEntry{
			ID:         s.newToken(),
			LootListID: list.ID,
			Rank:       slot.Rank,
			Heroic:     slot.Heroic,
		})
	}
	return entries, nil
}

// CheckEntry validates an edit without writing anything
func (s *service) CheckEntry(ctx context.Context, listID, entryID string, req EntryRequest) (*ValidationResult, error) {
	_, result, err := s.prepare(ctx, listID, entryID, req)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// SetEntry validates an edit and persists it with any requested mutations in one transaction.
// A rejection writes nothing.
func (s *service) SetEntry(ctx context.Context, listID, entryID string, req EntryRequest) (*EntryResult, error) {
	log := logger.FromContext(ctx)

	p, result, err := s.prepare(ctx, listID, entryID, req)
	if err != nil {
		return nil, err
	}
	if !result.Allowed {
		metrics.EntryRejections.WithLabelValues(string(result.Kind)).Inc()
		log.Warn(LogMsgEntryRejected, "list_id", listID, "entry_id", entryID, "reason", result.Reason)
		return nil, result.Err()
	}

	updates := p.updates(req, result)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	token := s.newToken()
	if err := tx.TouchTimestamp(ctx, listID, req.Timestamp, token); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToUpdate, err)
	}
	if err := tx.UpdateEntries(ctx, updates); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToSaveEntries, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}

	if p.assignment.Swap != nil {
		log.Info(LogMsgEntriesSwapped, "list_id", listID, "entry_id", entryID, "swap_entry_id", p.assignment.Swap.ID, "mutations", len(result.Mutations))
	} else {
		log.Info(LogMsgEntryUpdated, "list_id", listID, "entry_id", entryID)
	}

	return &EntryResult{Entries: applyUpdates(p.assignment.Entries, updates), Timestamp: token}, nil
}

type prepared struct {
	assignment Assignment
}

// prepare loads everything ValidateAssignment needs and runs it
func (s *service) prepare(ctx context.Context, listID, entryID string, req EntryRequest) (*prepared, ValidationResult, error) {
	justification, err := normalizeJustification(req.Justification)
	if err != nil {
		return nil, ValidationResult{}, err
	}
	req.Justification = justification

	list, err := s.getList(ctx, listID)
	if err != nil {
		return nil, ValidationResult{}, err
	}
	if list.Timestamp != req.Timestamp {
		return nil, ValidationResult{}, domain.ErrConcurrencyConflict
	}

	entries, err := s.repo.GetEntries(ctx, listID)
	if err != nil {
		return nil, ValidationResult{}, fmt.Errorf("%s: %w", ErrContextFailedToGetEntries, err)
	}

	entry, ok := findEntry(entries, entryID)
	if !ok {
		return nil, ValidationResult{}, fmt.Errorf("%w: %s", domain.ErrEntryNotFound, entryID)
	}

	var swap *domain.LootListEntry
	if req.SwapEntryID != nil {
		found, ok := findEntry(entries, *req.SwapEntryID)
		if !ok {
			return nil, ValidationResult{}, fmt.Errorf("%w: %s", domain.ErrEntryNotFound, *req.SwapEntryID)
		}
		swap = &found
	}

	ids := make([]int, 0, len(entries)+1)
	for _, e := range entries {
		if e.ItemID != nil {
			ids = append(ids, *e.ItemID)
		}
	}
	if req.ItemID != nil && swap == nil {
		ids = append(ids, *req.ItemID)
	}

	items, err := s.repo.GetItems(ctx, ids)
	if err != nil {
		return nil, ValidationResult{}, fmt.Errorf("%s: %w", ErrContextFailedToGetItems, err)
	}

	a := Assignment{List: *list, Entry: entry, Swap: swap, Entries: entries, Items: items}
	if req.ItemID != nil && swap == nil {
		item, ok := items[*req.ItemID]
		if !ok {
			return nil, ValidationResult{}, fmt.Errorf("%w: %d", domain.ErrItemNotFound, *req.ItemID)
		}
		a.Item = &item
	}

	set, err := s.brackets.ForPhase(list.Phase)
	if err != nil {
		return nil, ValidationResult{}, err
	}

	return &prepared{assignment: a}, ValidateAssignment(a, set, req.RemoveIfInvalid), nil
}

// updates turns an allowed edit into the rows to write
func (p *prepared) updates(req EntryRequest, result ValidationResult) []domain.LootListEntryUpdate {
	a := p.assignment
	if a.Swap == nil {
		return []domain.LootListEntryUpdate{{EntryID: a.Entry.ID, ItemID: req.ItemID, Justification: req.Justification}}
	}

	toEntry := domain.LootListEntryUpdate{EntryID: a.Entry.ID, ItemID: a.Swap.ItemID, Justification: a.Swap.Justification}
	toSwap := domain.LootListEntryUpdate{EntryID: a.Swap.ID, ItemID: a.Entry.ItemID, Justification: a.Entry.Justification}
	for _, m := range result.Mutations {
		if m.EntryID == a.Swap.ID && m.ClearItem {
			toSwap.ItemID = nil
			toSwap.Justification = nil
		}
	}
	return []domain.LootListEntryUpdate{toEntry, toSwap}
}

func (s *service) getList(ctx context.Context, listID string) (*domain.CharacterLootList, error) {
	list, err := s.repo.GetLootList(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetList, err)
	}
	if list == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrLootListNotFound, listID)
	}
	return list, nil
}

func findEntry(entries []domain.LootListEntry, id string) (domain.LootListEntry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return domain.LootListEntry{}, false
}

func applyUpdates(entries []domain.LootListEntry, updates []domain.LootListEntryUpdate) []domain.LootListEntry {
	out := make([]domain.LootListEntry, len(entries))
	copy(out, entries)
	for _, u := range updates {
		for i := range out {
			if out[i].ID == u.EntryID {
				out[i].ItemID = u.ItemID
				out[i].Justification = u.Justification
			}
		}
	}
	return out
}

// normalizeJustification trims whitespace, maps empty to nil and enforces the length cap
func normalizeJustification(j *string) (*string, error) {
	if j == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*j)
	if trimmed == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(trimmed) > domain.MaxJustificationLength {
		return nil, domain.Reject(fmt.Sprintf(domain.ReasonJustificationTooLong, domain.MaxJustificationLength))
	}
	return &trimmed, nil
}
