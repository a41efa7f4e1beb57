package domain

// MembershipStatus describes where a character is in the guild's trial process
type MembershipStatus string

const (
	MembershipMember    MembershipStatus = "Member"
	MembershipHalfTrial MembershipStatus = "HalfTrial"
	MembershipFullTrial MembershipStatus = "FullTrial"
)

// IsValid reports whether the status is one of the known values
func (s MembershipStatus) IsValid() bool {
	switch s {
	case MembershipMember, MembershipHalfTrial, MembershipFullTrial:
		return true
	}
	return false
}

// Character is a guild member's in-game character
type Character struct {
	ID               string           `json:"id" db:"character_id"`
	Name             string           `json:"name" db:"name"`
	Class            string           `json:"class" db:"class"`
	Race             string           `json:"race" db:"race"`
	TeamID           *string          `json:"team_id,omitempty" db:"team_id"`
	MembershipStatus MembershipStatus `json:"membership_status" db:"membership_status"`
	Enchanted        bool             `json:"enchanted" db:"enchanted"`
	Prepared         bool             `json:"prepared" db:"prepared"`
}
