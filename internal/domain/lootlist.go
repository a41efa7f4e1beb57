package domain

import "time"

// LootListStatus is a position in the loot list approval workflow
type LootListStatus string

const (
	LootListStatusEditing   LootListStatus = "Editing"
	LootListStatusSubmitted LootListStatus = "Submitted"
	LootListStatusApproved  LootListStatus = "Approved"
	LootListStatusRejected  LootListStatus = "Rejected"
	LootListStatusLocked    LootListStatus = "Locked"
)

// CharacterLootList is one character's want list for a content phase and raid size
type CharacterLootList struct {
	ID          string          `json:"id" db:"loot_list_id"`
	CharacterID string          `json:"character_id" db:"character_id"`
	Phase       int             `json:"phase" db:"phase"`
	Size        int             `json:"size" db:"size"`
	MainSpec    Specializations `json:"main_spec" db:"main_spec"`
	OffSpec     Specializations `json:"off_spec" db:"off_spec"`
	Status      LootListStatus  `json:"status" db:"status"`
	ApprovedBy  *string         `json:"approved_by,omitempty" db:"approved_by"`
	Timestamp   string          `json:"timestamp" db:"timestamp"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
}

// Specs is the union of the main and off specializations
func (l CharacterLootList) Specs() Specializations {
	return l.MainSpec | l.OffSpec
}

// IsLocked reports whether entries are frozen for drop competition
func (l CharacterLootList) IsLocked() bool {
	return l.Status == LootListStatusLocked
}

// LootListEntry is one ranked slot on a character's loot list
type LootListEntry struct {
	ID            string  `json:"id" db:"entry_id"`
	LootListID    string  `json:"loot_list_id" db:"loot_list_id"`
	Rank          byte    `json:"rank" db:"rank"`
	Heroic        bool    `json:"heroic" db:"heroic"`
	ItemID        *int    `json:"item_id,omitempty" db:"item_id"`
	Justification *string `json:"justification,omitempty" db:"justification"`
	Won           bool    `json:"won" db:"won"`
	DropID        *string `json:"drop_id,omitempty" db:"drop_id"`
}

// IsAwarded reports whether the entry is linked to a drop and therefore immutable
func (e LootListEntry) IsAwarded() bool {
	return e.DropID != nil
}

// EntryMutation is a change the validator asks the caller to apply to an entry
// other than the one being edited.
type EntryMutation struct {
	EntryID   string `json:"entry_id"`
	ClearItem bool   `json:"clear_item"`
}

// LootListEntryUpdate is a persisted change to one entry
type LootListEntryUpdate struct {
	EntryID       string
	ItemID        *int
	Justification *string
}
