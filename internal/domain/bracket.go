package domain

// Bracket is a contiguous rank range within a phase with its own item quota
type Bracket struct {
	Phase               int  `json:"phase"`
	Index               int  `json:"index"`
	MinRank             byte `json:"min_rank"`
	MaxRank             byte `json:"max_rank"`
	MaxItems            int  `json:"max_items"`
	HeroicItems         int  `json:"heroic_items"`
	AllowOffspec        bool `json:"allow_offspec"`
	AllowTypeDuplicates bool `json:"allow_type_duplicates"`
}

// Contains reports whether rank falls inside the bracket's inclusive range
func (b Bracket) Contains(rank byte) bool {
	return rank >= b.MinRank && rank <= b.MaxRank
}
