package domain

import "time"

// Drop is one item that dropped from one boss kill
type Drop struct {
	ID           string     `json:"id" db:"drop_id"`
	KillID       string     `json:"kill_id" db:"kill_id"`
	ItemID       int        `json:"item_id" db:"item_id"`
	WinnerID     *string    `json:"winner_id,omitempty" db:"winner_id"`
	WinningEntry *string    `json:"winning_entry_id,omitempty" db:"winning_entry_id"`
	AwardedAtUtc *time.Time `json:"awarded_at_utc,omitempty" db:"awarded_at"`
	AwardedBy    *string    `json:"awarded_by,omitempty" db:"awarded_by"`
	Passes       []DropPass `json:"passes,omitempty"`
}

// DropPass records that a character was eligible for a drop but did not win it
type DropPass struct {
	DropID           string  `json:"drop_id" db:"drop_id"`
	CharacterID      string  `json:"character_id" db:"character_id"`
	EntryID          *string `json:"entry_id,omitempty" db:"entry_id"`
	RelativePriority int     `json:"relative_priority" db:"relative_priority"`
}

// DropEligibility is everything known about one character present at the kill
// for a specific drop: their list state and the entry holding the item, if any.
type DropEligibility struct {
	Character  Character          `json:"character"`
	LootList   *CharacterLootList `json:"loot_list,omitempty"`
	Entry      *LootListEntry     `json:"entry,omitempty"`
	Attendance int                `json:"attendance"`
	TimesSeen  int                `json:"times_seen"`
}
