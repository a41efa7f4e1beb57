package bracket

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/Elite747/ValhallaLootList-sub000/internal/domain"
	"github.com/Elite747/ValhallaLootList-sub000/internal/validation"
)

//go:embed schema/brackets.schema.json
var embeddedSchema []byte

const embeddedSchemaName = "brackets.schema.json"

type fileBracket struct {
	Index               int  `json:"index"`
	MinRank             byte `json:"min_rank"`
	MaxRank             byte `json:"max_rank"`
	MaxItems            int  `json:"max_items"`
	HeroicItems         int  `json:"heroic_items"`
	AllowOffspec        bool `json:"allow_offspec"`
	AllowTypeDuplicates bool `json:"allow_type_duplicates"`
}

type file struct {
	RequireContiguous bool                     `json:"require_contiguous"`
	Phases            map[string][]fileBracket `json:"phases"`
}

// Catalog holds one bracket set per content phase
type Catalog struct {
	sets map[int]*Set
}

// NewCatalog builds a catalog from already validated sets
func NewCatalog(sets ...*Set) *Catalog {
	c := &Catalog{sets: make(map[int]*Set, len(sets))}
	for _, s := range sets {
		c.sets[s.Phase()] = s
	}
	return c
}

// ForPhase returns the bracket set of a phase
func (c *Catalog) ForPhase(phase int) (*Set, error) {
	s, ok := c.sets[phase]
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrBracketsNotFound, phase)
	}
	return s, nil
}

// Phases lists configured phases in ascending order
func (c *Catalog) Phases() []int {
	phases := make([]int, 0, len(c.sets))
	for p := range c.sets {
		phases = append(phases, p)
	}
	slices.Sort(phases)
	return phases
}

// LoadFile reads and validates a brackets configuration file.
// An empty schemaPath validates against the schema compiled into the binary.
func LoadFile(path, schemaPath string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read brackets file %s: %w", path, err)
	}
	return Load(data, schemaPath)
}

// Load parses a brackets document
func Load(data []byte, schemaPath string) (*Catalog, error) {
	v := validation.NewSchemaValidator()
	var err error
	if schemaPath == "" {
		err = v.ValidateWithSchema(data, embeddedSchemaName, embeddedSchema)
	} else {
		err = v.ValidateBytes(data, schemaPath)
	}
	if err != nil {
		return nil, &domain.ConfigurationError{Reason: err.Error()}
	}

	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode brackets: %w", err)
	}

	var opts []Option
	if f.RequireContiguous {
		opts = append(opts, WithGapCheck())
	}

	catalog := &Catalog{sets: make(map[int]*Set, len(f.Phases))}
	for key, fbs := range f.Phases {
		phase, err := strconv.Atoi(key)
		if err != nil {
			return nil, &domain.ConfigurationError{Reason: fmt.Sprintf("phase key %q is not a number", key)}
		}

		brackets := make([]domain.Bracket, 0, len(fbs))
		for _, fb := range fbs {
			brackets = append(brackets, domain.Bracket{
				Phase:               phase,
				Index:               fb.Index,
				MinRank:             fb.MinRank,
				MaxRank:             fb.MaxRank,
				MaxItems:            fb.MaxItems,
				HeroicItems:         fb.HeroicItems,
				AllowOffspec:        fb.AllowOffspec,
				AllowTypeDuplicates: fb.AllowTypeDuplicates,
			})
		}

		set, err := NewSet(phase, brackets, opts...)
		if err != nil {
			return nil, fmt.Errorf("phase %d: %w", phase, err)
		}
		catalog.sets[phase] = set
	}

	return catalog, nil
}
