package domain

// Entry constraints
const (
	MaxJustificationLength = 256
	MaxRank                = 255
)

// Default priority scope used when the environment does not override it
const (
	DefaultObservedAttendances    = 8
	DefaultAttendancesPerPoint    = 4
	DefaultFullTrialPenalty       = -18
	DefaultHalfTrialPenalty       = -9
	DefaultRequiredDonationCopper = 500000
)

// DefaultPriorityScope returns the stock scoring constants
func DefaultPriorityScope() PriorityScope {
	return PriorityScope{
		ObservedAttendances:    DefaultObservedAttendances,
		AttendancesPerPoint:    DefaultAttendancesPerPoint,
		FullTrialPenalty:       DefaultFullTrialPenalty,
		HalfTrialPenalty:       DefaultHalfTrialPenalty,
		RequiredDonationCopper: DefaultRequiredDonationCopper,
	}
}
