package donation

import (
	"github.com/Elite747/ValhallaLootList-sub000/internal/domain"
)

type monthState struct {
	donated  int64
	rollover int64
}

type characterLedger struct {
	start  int
	months []monthState
	// rollover carried into the month after the last simulated one
	carry int64
}

// Ledger is the simulated donation history of a set of characters.
// It is immutable once built and safe for concurrent reads.
type Ledger struct {
	required   int64
	characters map[string]*characterLedger
}

func ordinal(m domain.Month) int {
	return m.Year*12 + int(m.Month) - 1
}

// Build simulates each character's months from their earliest donation through
// the later of current and their latest donation.
func Build(records []domain.MonthDonation, scope domain.PriorityScope, current domain.Month) *Ledger {
	donated := make(map[string]map[int]int64)
	first := make(map[string]int)
	last := make(map[string]int)

	for _, r := range records {
		o := ordinal(r.Period())
		byMonth, ok := donated[r.CharacterID]
		if !ok {
			byMonth = make(map[int]int64)
			donated[r.CharacterID] = byMonth
			first[r.CharacterID] = o
			last[r.CharacterID] = o
		}
		byMonth[o] += r.Amount
		first[r.CharacterID] = min(first[r.CharacterID], o)
		last[r.CharacterID] = max(last[r.CharacterID], o)
	}

	l := &Ledger{
		required:   scope.RequiredDonationCopper,
		characters: make(map[string]*characterLedger, len(donated)),
	}

	end := ordinal(current)
	for id, byMonth := range donated {
		start := first[id]
		stop := max(end, last[id])

		cl := &characterLedger{start: start, months: make([]monthState, 0, stop-start+1)}
		var rollover int64
		for o := start; o <= stop; o++ {
			amount := byMonth[o]
			cl.months = append(cl.months, monthState{donated: amount, rollover: rollover})
			rollover = nextRollover(rollover, amount, l.required)
		}
		cl.carry = rollover
		l.characters[id] = cl
	}

	return l
}

func nextRollover(rollover, donated, required int64) int64 {
	return max(0, rollover+donated-required)
}

func (l *Ledger) state(characterID string, m domain.Month) monthState {
	cl, ok := l.characters[characterID]
	if !ok {
		return monthState{}
	}

	o := ordinal(m)
	if o < cl.start {
		return monthState{}
	}
	if idx := o - cl.start; idx < len(cl.months) {
		return cl.months[idx]
	}

	// Past the simulated range nothing more was donated, so the carry only decays.
	rollover := cl.carry
	for i := cl.start + len(cl.months); i < o && rollover > 0; i++ {
		rollover = nextRollover(rollover, 0, l.required)
	}
	return monthState{rollover: rollover}
}

// CreditForMonth is the donation credit a character has during month m.
// Donations count from the month after they were made.
func (l *Ledger) CreditForMonth(characterID string, m domain.Month) int64 {
	prev := l.state(characterID, m.Prev())
	return max(0, prev.donated+prev.rollover)
}

// DonatedDuringMonth is the total a character donated during month m
func (l *Ledger) DonatedDuringMonth(characterID string, m domain.Month) int64 {
	return l.state(characterID, m).donated
}

// RolloverIntoMonth is the unused credit carried into month m
func (l *Ledger) RolloverIntoMonth(characterID string, m domain.Month) int64 {
	return l.state(characterID, m).rollover
}
