package bracket

import (
	"fmt"
	"slices"

	"github.com/Elite747/ValhallaLootList-sub000/internal/domain"
)

// Slot is one quota position a list gets an entry for
type Slot struct {
	Rank   byte
	Heroic bool
}

// Set is the validated, index-ordered bracket configuration of one phase
type Set struct {
	phase    int
	brackets []domain.Bracket
}

type options struct {
	requireContiguous bool
}

// Option configures set construction
type Option func(*options)

// WithGapCheck rejects sets whose brackets do not cover every rank from 1 to the highest rank
func WithGapCheck() Option {
	return func(o *options) {
		o.requireContiguous = true
	}
}

// NewSet validates brackets and returns them as a Set ordered by Index.
// Overlapping ranges, inverted ranges and duplicate indexes are configuration errors.
func NewSet(phase int, brackets []domain.Bracket, opts ...Option) (*Set, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if len(brackets) == 0 {
		return nil, &domain.ConfigurationError{Reason: fmt.Sprintf("phase %d has no brackets", phase)}
	}

	sorted := slices.Clone(brackets)
	for i := range sorted {
		sorted[i].Phase = phase
		b := sorted[i]
		if b.MinRank == 0 {
			return nil, &domain.ConfigurationError{Reason: fmt.Sprintf("bracket %d: rank 0 is not a valid rank", b.Index)}
		}
		if b.MinRank > b.MaxRank {
			return nil, &domain.ConfigurationError{Reason: fmt.Sprintf("bracket %d: min rank %d exceeds max rank %d", b.Index, b.MinRank, b.MaxRank)}
		}
		if b.MaxItems < 0 || b.HeroicItems < 0 {
			return nil, &domain.ConfigurationError{Reason: fmt.Sprintf("bracket %d: item quotas cannot be negative", b.Index)}
		}
	}

	slices.SortFunc(sorted, func(a, b domain.Bracket) int { return a.Index - b.Index })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Index == sorted[i-1].Index {
			return nil, &domain.ConfigurationError{Reason: fmt.Sprintf("duplicate bracket index %d", sorted[i].Index)}
		}
	}

	byRank := slices.Clone(sorted)
	slices.SortFunc(byRank, func(a, b domain.Bracket) int { return int(a.MinRank) - int(b.MinRank) })
	for i := 1; i < len(byRank); i++ {
		prev, cur := byRank[i-1], byRank[i]
		if cur.MinRank <= prev.MaxRank {
			return nil, &domain.ConfigurationError{Reason: fmt.Sprintf("brackets %d and %d overlap", prev.Index, cur.Index)}
		}
		if o.requireContiguous && int(cur.MinRank) != int(prev.MaxRank)+1 {
			return nil, &domain.ConfigurationError{Reason: fmt.Sprintf("ranks %d-%d are not covered by any bracket", int(prev.MaxRank)+1, int(cur.MinRank)-1)}
		}
	}
	if o.requireContiguous && byRank[0].MinRank != 1 {
		return nil, &domain.ConfigurationError{Reason: fmt.Sprintf("ranks 1-%d are not covered by any bracket", byRank[0].MinRank-1)}
	}

	return &Set{phase: phase, brackets: sorted}, nil
}

// Phase returns the content phase the set belongs to
func (s *Set) Phase() int {
	return s.phase
}

// BracketForRank returns the bracket whose range contains rank
func (s *Set) BracketForRank(rank byte) (domain.Bracket, bool) {
	for _, b := range s.brackets {
		if b.Contains(rank) {
			return b, true
		}
	}
	return domain.Bracket{}, false
}

// Brackets returns the brackets ordered by Index
func (s *Set) Brackets() []domain.Bracket {
	return slices.Clone(s.brackets)
}

// HighestRank returns the largest rank covered by the set
func (s *Set) HighestRank() byte {
	var highest byte
	for _, b := range s.brackets {
		highest = max(highest, b.MaxRank)
	}
	return highest
}

// Slots enumerates every quota position in priority order: rank 1 first, normal before heroic
func (s *Set) Slots() []Slot {
	var slots []Slot
	for rank := 1; rank <= int(s.HighestRank()); rank++ {
		b, ok := s.BracketForRank(byte(rank))
		if !ok {
			continue
		}
		for i := 0; i < b.MaxItems; i++ {
			slots = append(slots, Slot{Rank: byte(rank)})
		}
		for i := 0; i < b.HeroicItems; i++ {
			slots = append(slots, Slot{Rank: byte(rank), Heroic: true})
		}
	}
	return slots
}
