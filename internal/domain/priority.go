package domain

// PriorityScope holds the tunable constants of the priority formula
type PriorityScope struct {
	ObservedAttendances    int   `json:"observed_attendances" validate:"min=0"`
	AttendancesPerPoint    int   `json:"attendances_per_point" validate:"gt=0"`
	FullTrialPenalty       int   `json:"full_trial_penalty" validate:"max=0"`
	HalfTrialPenalty       int   `json:"half_trial_penalty" validate:"max=0"`
	RequiredDonationCopper int64 `json:"required_donation_copper" validate:"min=0"`
}

// BonusType tags a priority bonus
type BonusType string

const (
	BonusAttendance BonusType = "Attendance"
	BonusTrial      BonusType = "Trial"
	BonusDonation   BonusType = "Donation"
	BonusEnchanted  BonusType = "Enchanted"
	BonusPrepared   BonusType = "Prepared"
	BonusLoss       BonusType = "Loss"
)

// Bonus is one additive term of a character's priority.
// Detail fields are populated only for the bonus types they describe.
type Bonus struct {
	Type  BonusType `json:"type"`
	Value int       `json:"value"`

	Attended            int              `json:"attended,omitempty"`
	ObservedAttendances int              `json:"observed_attendances,omitempty"`
	Status              MembershipStatus `json:"status,omitempty"`
	DonatedCopper       int64            `json:"donated_copper,omitempty"`
	RequiredCopper      int64            `json:"required_copper,omitempty"`
	TimesSeen           int              `json:"times_seen,omitempty"`
}

// SumBonuses adds up every bonus value
func SumBonuses(bonuses []Bonus) int {
	total := 0
	for _, b := range bonuses {
		total += b.Value
	}
	return total
}
