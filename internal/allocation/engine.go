package allocation

import (
	"cmp"
	"slices"

	"github.com/Elite747/ValhallaLootList-sub000/internal/domain"
)

// Candidate is one character eligible for a drop
type Candidate struct {
	CharacterID string  `json:"character_id"`
	EntryID     *string `json:"entry_id,omitempty"`
	// PriorityScore is nil when the character has no entry holding the item
	PriorityScore *int `json:"priority_score,omitempty"`
	IsLockedList  bool `json:"is_locked_list"`
}

// Competing reports whether the candidate takes part in priority competition
func (c Candidate) Competing() bool {
	return c.IsLockedList && c.PriorityScore != nil
}

// AllocationResult is the decision for one drop
type AllocationResult struct {
	WinnerID       *string           `json:"winner_id,omitempty"`
	WinningEntryID *string           `json:"winning_entry_id,omitempty"`
	WinnerScore    int               `json:"winner_score"`
	Passes         []domain.DropPass `json:"passes"`
	Cleared        bool              `json:"cleared"`
}

// Engine picks drop winners and computes the pass records for everyone else.
// It is stateless.
type Engine struct{}

// Assign awards the drop to requestedWinnerID, or clears the award when it is nil.
// Setting a winner while existingWinnerID is set is a precondition violation;
// the caller must clear first. Passes replace any previous set entirely.
// The winner's entry is only claimed when it sits on a locked list.
func (Engine) Assign(existingWinnerID *string, eligible []Candidate, requestedWinnerID *string) (AllocationResult, error) {
	if requestedWinnerID == nil {
		if existingWinnerID == nil {
			return AllocationResult{}, domain.Violate(domain.ReasonNoWinnerToClear)
		}
		return AllocationResult{Cleared: true}, nil
	}

	if existingWinnerID != nil {
		return AllocationResult{}, domain.Violate(domain.ReasonExistingWinner)
	}

	idx := slices.IndexFunc(eligible, func(c Candidate) bool { return c.CharacterID == *requestedWinnerID })
	if idx < 0 {
		return AllocationResult{}, domain.Reject(domain.ReasonWinnerNotEligible)
	}
	winner := eligible[idx]

	winnerScore := 0
	if winner.PriorityScore != nil {
		winnerScore = *winner.PriorityScore
	}

	passes := make([]domain.DropPass, 0, len(eligible))
	for i, c := range eligible {
		if i == idx || !c.Competing() {
			continue
		}
		passes = append(passes, domain.DropPass{
			CharacterID:      c.CharacterID,
			EntryID:          c.EntryID,
			RelativePriority: *c.PriorityScore - winnerScore,
		})
	}

	var winningEntryID *string
	if winner.IsLockedList {
		winningEntryID = winner.EntryID
	}

	winnerID := winner.CharacterID
	return AllocationResult{
		WinnerID:       &winnerID,
		WinningEntryID: winningEntryID,
		WinnerScore:    winnerScore,
		Passes:         passes,
	}, nil
}

// Rank orders candidates by score, highest first. Competing candidates come
// before those on unlocked lists, scoreless candidates sort last, and ties break
// on character ID so the order is stable across calls.
func (Engine) Rank(candidates []Candidate) []Candidate {
	ranked := slices.Clone(candidates)
	slices.SortFunc(ranked, func(a, b Candidate) int {
		switch {
		case a.Competing() != b.Competing():
			if a.Competing() {
				return -1
			}
			return 1
		case a.PriorityScore == nil && b.PriorityScore != nil:
			return 1
		case a.PriorityScore != nil && b.PriorityScore == nil:
			return -1
		case a.PriorityScore != nil && b.PriorityScore != nil && *a.PriorityScore != *b.PriorityScore:
			return cmp.Compare(*b.PriorityScore, *a.PriorityScore)
		}
		return cmp.Compare(a.CharacterID, b.CharacterID)
	})
	return ranked
}
