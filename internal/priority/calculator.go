package priority

import (
	"fmt"

	"github.com/Elite747/ValhallaLootList-sub000/internal/domain"
)

// RankToBaseScore translates a list rank into the base of the priority score.
// It must be monotonically decreasing in rank.
type RankToBaseScore func(rank byte) int

// DefaultRankToBaseScore gives lower rank numbers a higher base
func DefaultRankToBaseScore(rank byte) int {
	return -int(rank)
}

// Input is everything about a character the bonus formulas read
type Input struct {
	Attendances   int
	Status        domain.MembershipStatus
	DonatedCopper int64
	Enchanted     bool
	Prepared      bool
	TimesSeen     int
}

// ValidateScope rejects scopes the formulas cannot evaluate
func ValidateScope(scope domain.PriorityScope) error {
	switch {
	case scope.AttendancesPerPoint <= 0:
		return &domain.ConfigurationError{Reason: fmt.Sprintf("attendances per point must be positive, got %d", scope.AttendancesPerPoint)}
	case scope.ObservedAttendances < 0:
		return &domain.ConfigurationError{Reason: "observed attendances cannot be negative"}
	case scope.FullTrialPenalty > 0 || scope.HalfTrialPenalty > 0:
		return &domain.ConfigurationError{Reason: "trial penalties cannot be positive"}
	case scope.RequiredDonationCopper < 0:
		return &domain.ConfigurationError{Reason: "required donation cannot be negative"}
	}
	return nil
}

// ListBonuses returns the five list-wide bonuses in fixed order:
// Attendance, Trial, Donation, Enchanted, Prepared.
func ListBonuses(scope domain.PriorityScope, attendances int, status domain.MembershipStatus, donatedCopper int64, enchanted, prepared bool) []domain.Bonus {
	return []domain.Bonus{
		attendanceBonus(scope, attendances),
		trialBonus(scope, status),
		donationBonus(scope, donatedCopper),
		flagBonus(domain.BonusEnchanted, enchanted, EnchantedBonusValue),
		flagBonus(domain.BonusPrepared, prepared, PreparedBonusValue),
	}
}

// ItemBonuses returns the single per-item bonus: one point per prior lost roll on the item
func ItemBonuses(timesSeen int) []domain.Bonus {
	return []domain.Bonus{{Type: domain.BonusLoss, Value: timesSeen, TimesSeen: timesSeen}}
}

// AllBonuses is ListBonuses followed by ItemBonuses
func AllBonuses(scope domain.PriorityScope, in Input) []domain.Bonus {
	bonuses := ListBonuses(scope, in.Attendances, in.Status, in.DonatedCopper, in.Enchanted, in.Prepared)
	return append(bonuses, ItemBonuses(in.TimesSeen)...)
}

func attendanceBonus(scope domain.PriorityScope, attendances int) domain.Bonus {
	attended := max(0, min(attendances, scope.ObservedAttendances))
	value := 0
	if scope.AttendancesPerPoint > 0 {
		value = attended / scope.AttendancesPerPoint
	}
	return domain.Bonus{
		Type:                domain.BonusAttendance,
		Value:               value,
		Attended:            attendances,
		ObservedAttendances: scope.ObservedAttendances,
	}
}

func trialBonus(scope domain.PriorityScope, status domain.MembershipStatus) domain.Bonus {
	value := 0
	switch status {
	case domain.MembershipHalfTrial:
		value = scope.HalfTrialPenalty
	case domain.MembershipFullTrial:
		value = scope.FullTrialPenalty
	}
	return domain.Bonus{Type: domain.BonusTrial, Value: value, Status: status}
}

func donationBonus(scope domain.PriorityScope, donated int64) domain.Bonus {
	value := 0
	if donated >= scope.RequiredDonationCopper {
		value = DonationBonusValue
	}
	return domain.Bonus{
		Type:           domain.BonusDonation,
		Value:          value,
		DonatedCopper:  donated,
		RequiredCopper: scope.RequiredDonationCopper,
	}
}

func flagBonus(t domain.BonusType, set bool, points int) domain.Bonus {
	if !set {
		return domain.Bonus{Type: t}
	}
	return domain.Bonus{Type: t, Value: points}
}

// Calculator scores characters against a fixed scope and rank transform.
// It holds no mutable state and may be shared between goroutines.
type Calculator struct {
	scope      domain.PriorityScope
	rankToBase RankToBaseScore
}

// CalculatorOption customizes a Calculator
type CalculatorOption func(*Calculator)

// WithRankToBaseScore replaces the rank transform
func WithRankToBaseScore(f RankToBaseScore) CalculatorOption {
	return func(c *Calculator) {
		if f != nil {
			c.rankToBase = f
		}
	}
}

// NewCalculator validates scope and builds a Calculator
func NewCalculator(scope domain.PriorityScope, opts ...CalculatorOption) (*Calculator, error) {
	if err := ValidateScope(scope); err != nil {
		return nil, err
	}
	c := &Calculator{scope: scope, rankToBase: DefaultRankToBaseScore}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Scope returns the constants the calculator was built with
func (c *Calculator) Scope() domain.PriorityScope {
	return c.scope
}

// Bonuses returns every bonus for in
func (c *Calculator) Bonuses(in Input) []domain.Bonus {
	return AllBonuses(c.scope, in)
}

// Score combines the rank base with the sum of bonuses
func (c *Calculator) Score(rank byte, bonuses []domain.Bonus) int {
	return c.rankToBase(rank) + domain.SumBonuses(bonuses)
}

// Priority is Score over the full bonus list of in
func (c *Calculator) Priority(rank byte, in Input) int {
	return c.Score(rank, c.Bonuses(in))
}
