package domain

// Specializations is a bit set of class specializations.
// The game data layer owns the actual bit assignments; the loot core only intersects them.
type Specializations uint64

// Has reports whether every spec in other is also in s
func (s Specializations) Has(other Specializations) bool {
	return s&other == other
}

// ItemType is the equipment category of an item (Cloth, Plate, Sword, Trinket, ...)
type ItemType string

// InventorySlot is where an item is worn
type InventorySlot string

const (
	SlotTrinket InventorySlot = "Trinket"
	SlotFinger  InventorySlot = "Finger"
	SlotOneHand InventorySlot = "OneHand"
)

// RestrictionLevel grades how strongly an item restriction applies
type RestrictionLevel string

const (
	RestrictionUnequippable RestrictionLevel = "Unequippable"
	RestrictionRestricted   RestrictionLevel = "Restricted"
	RestrictionManualReview RestrictionLevel = "ManualReview"
)

// Restriction limits which specializations may list an item
type Restriction struct {
	Specs  Specializations  `json:"specs" db:"specs"`
	Level  RestrictionLevel `json:"level" db:"restriction_level"`
	Reason string           `json:"reason" db:"reason"`
}

// Item carries only the fields the loot core needs for bracket and type matching
type Item struct {
	ID           int           `json:"item_id" db:"item_id"`
	Name         string        `json:"name" db:"name"`
	Phase        int           `json:"phase" db:"phase"`
	Type         ItemType      `json:"type" db:"item_type"`
	Slot         InventorySlot `json:"slot" db:"inventory_slot"`
	QuestID      *int          `json:"quest_id,omitempty" db:"quest_id"`
	Heroic       bool          `json:"heroic" db:"heroic"`
	Restrictions []Restriction `json:"restrictions,omitempty"`
}

// MaxPerList is how many times the item may appear on one character's list.
// Slots a character can fill twice (two trinkets, two rings, dual wielded one-handers) allow 2.
func (i Item) MaxPerList() int {
	switch i.Slot {
	case SlotTrinket, SlotFinger, SlotOneHand:
		return 2
	}
	return 1
}

// SameTypeAs reports whether two items share the (ItemType, InventorySlot) pair
func (i Item) SameTypeAs(other Item) bool {
	return i.Type == other.Type && i.Slot == other.Slot
}

// UnequippableFor returns the first unequippable restriction covering every spec in specs
func (i Item) UnequippableFor(specs Specializations) (Restriction, bool) {
	if specs == 0 {
		return Restriction{}, false
	}
	for _, r := range i.Restrictions {
		if r.Level == RestrictionUnequippable && r.Specs.Has(specs) {
			return r, true
		}
	}
	return Restriction{}, false
}
