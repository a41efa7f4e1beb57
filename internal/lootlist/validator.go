package lootlist

import (
	"github.com/Elite747/ValhallaLootList-sub000/internal/bracket"
	"github.com/Elite747/ValhallaLootList-sub000/internal/domain"
)

// Assignment describes one requested entry edit.
// Without Swap, Item is placed on Entry (nil clears it). With Swap, Entry and
// Swap exchange items and Item is ignored.
type Assignment struct {
	List    domain.CharacterLootList
	Entry   domain.LootListEntry
	Item    *domain.Item
	Swap    *domain.LootListEntry
	Entries []domain.LootListEntry
	// Items holds every item referenced by Entries and Swap
	Items map[int]domain.Item
}

// ValidationResult is the outcome of ValidateAssignment
type ValidationResult struct {
	Allowed   bool                   `json:"allowed"`
	Reason    string                 `json:"reason,omitempty"`
	Kind      domain.RejectionKind   `json:"kind,omitempty"`
	Mutations []domain.EntryMutation `json:"mutations,omitempty"`
}

// Err returns the rejection as an error, or nil when allowed
func (r ValidationResult) Err() error {
	if r.Allowed {
		return nil
	}
	return &domain.Rejection{Kind: r.Kind, Reason: r.Reason}
}

func allow(mutations ...domain.EntryMutation) ValidationResult {
	return ValidationResult{Allowed: true, Mutations: mutations}
}

func reject(reason string) ValidationResult {
	return ValidationResult{Reason: reason, Kind: domain.KindValidation}
}

func violate(reason string) ValidationResult {
	return ValidationResult{Reason: reason, Kind: domain.KindPrecondition}
}

// ValidateAssignment checks an entry edit against the list's bracket rules.
// It never mutates its inputs; the only mutation it can request is clearing the
// swap partner's item when removeIfInvalid is set.
func ValidateAssignment(a Assignment, brackets *bracket.Set, removeIfInvalid bool) ValidationResult {
	if res, ok := checkPreconditions(a); !ok {
		return res
	}

	entryBracket, ok := brackets.BracketForRank(a.Entry.Rank)
	if !ok {
		return reject(domain.ReasonRankNotValid)
	}

	if a.Swap != nil {
		return validateSwap(a, brackets, entryBracket, removeIfInvalid)
	}

	if a.Item == nil {
		return allow()
	}
	item := *a.Item

	if !entryBracket.AllowTypeDuplicates && hasTypeConflict(a, entryBracket, item) {
		return reject(domain.ReasonBracketTypeDuplicate)
	}
	if reason, ok := checkListExclusion(a, item); !ok {
		return reject(reason)
	}
	if item.Phase != a.List.Phase {
		return reject(domain.ReasonWrongPhase)
	}
	if reason, ok := checkFit(a.List, a.Entry, entryBracket, item); !ok {
		return reject(reason)
	}

	return allow()
}

// checkFit reports whether item may sit on target: the difficulty must match the
// entry and the bracket's eligible specs must be able to equip it.
func checkFit(list domain.CharacterLootList, target domain.LootListEntry, b domain.Bracket, item domain.Item) (string, bool) {
	if item.Heroic != target.Heroic {
		return domain.ReasonWrongDifficulty, false
	}
	if restriction, found := item.UnequippableFor(eligibleSpecs(list, b)); found {
		if restriction.Reason == "" {
			return domain.ReasonUnequippable, false
		}
		return restriction.Reason, false
	}
	return "", true
}

func checkPreconditions(a Assignment) (ValidationResult, bool) {
	if a.List.Status != domain.LootListStatusEditing {
		return violate(domain.ReasonListNotEditable), false
	}
	if a.Entry.IsAwarded() {
		return violate(domain.ReasonEntryAlreadyWon), false
	}
	if a.Swap != nil {
		if a.Swap.ID == a.Entry.ID {
			return violate(domain.ReasonSwapSelf), false
		}
		if a.Swap.LootListID != a.Entry.LootListID {
			return violate(domain.ReasonSwapDifferentList), false
		}
		if a.Swap.IsAwarded() {
			return violate(domain.ReasonSwapEntryAlreadyWon), false
		}
	}
	return ValidationResult{}, true
}

func validateSwap(a Assignment, brackets *bracket.Set, entryBracket domain.Bracket, removeIfInvalid bool) ValidationResult {
	swapBracket, ok := brackets.BracketForRank(a.Swap.Rank)
	if !ok {
		return reject(domain.ReasonRankNotValid)
	}
	// Items only change places inside one bracket, so its type mix is unchanged.
	sameBracket := swapBracket.Index == entryBracket.Index

	// The swap partner's item lands on the edited entry.
	if incoming, ok := a.itemOf(*a.Swap); ok {
		if reason, fits := checkFit(a.List, a.Entry, entryBracket, incoming); !fits {
			return reject(reason)
		}
		if !sameBracket && !entryBracket.AllowTypeDuplicates && hasTypeConflict(a, entryBracket, incoming) {
			return reject(domain.ReasonBracketTypeDuplicate)
		}
	}

	// The edited entry's item is displaced onto the swap partner.
	if outgoing, ok := a.itemOf(a.Entry); ok {
		reason, fits := checkFit(a.List, *a.Swap, swapBracket, outgoing)
		if fits && !sameBracket && !swapBracket.AllowTypeDuplicates && hasTypeConflict(a, swapBracket, outgoing) {
			reason, fits = domain.ReasonBracketTypeDuplicate, false
		}
		if !fits {
			if !removeIfInvalid {
				return reject(reason)
			}
			return allow(domain.EntryMutation{EntryID: a.Swap.ID, ClearItem: true})
		}
	}

	return allow()
}

// hasTypeConflict scans the bracket's other entries for an item sharing item's type and slot.
// The edited entry and its swap partner are excluded since their items are moving.
func hasTypeConflict(a Assignment, b domain.Bracket, item domain.Item) bool {
	for _, e := range a.Entries {
		if e.ID == a.Entry.ID || (a.Swap != nil && e.ID == a.Swap.ID) {
			continue
		}
		if !b.Contains(e.Rank) {
			continue
		}
		other, ok := a.itemOf(e)
		if ok && other.SameTypeAs(item) {
			return true
		}
	}
	return false
}

// checkListExclusion enforces per-list item counts and quest reward exclusivity
func checkListExclusion(a Assignment, item domain.Item) (string, bool) {
	count := 0
	for _, e := range a.Entries {
		if e.ID == a.Entry.ID || e.ItemID == nil {
			continue
		}
		if *e.ItemID == item.ID {
			count++
			continue
		}
		if item.QuestID == nil {
			continue
		}
		if other, ok := a.Items[*e.ItemID]; ok && other.QuestID != nil && *other.QuestID == *item.QuestID {
			return domain.ReasonQuestConflict, false
		}
	}

	if limit := item.MaxPerList(); count >= limit {
		if limit > 1 {
			return domain.ReasonItemOnListTwice, false
		}
		return domain.ReasonItemAlreadyOnList, false
	}
	return "", true
}

func eligibleSpecs(list domain.CharacterLootList, b domain.Bracket) domain.Specializations {
	if b.AllowOffspec {
		return list.Specs()
	}
	return list.MainSpec
}

func (a Assignment) itemOf(e domain.LootListEntry) (domain.Item, bool) {
	if e.ItemID == nil {
		return domain.Item{}, false
	}
	item, ok := a.Items[*e.ItemID]
	return item, ok
}
