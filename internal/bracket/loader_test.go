package bracket

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Elite747/ValhallaLootList-sub000/internal/domain"
)

func TestLoadFile_RepositoryConfig(t *testing.T) {
	catalog, err := LoadFile(filepath.Join("..", "..", "configs", "brackets.json"), "")
	require.NoError(t, err)

	phases := catalog.Phases()
	require.NotEmpty(t, phases)
	assert.Equal(t, 1, phases[0])

	set, err := catalog.ForPhase(1)
	require.NoError(t, err)
	assert.Equal(t, byte(18), set.HighestRank())

	b, ok := set.BracketForRank(3)
	require.True(t, ok)
	assert.True(t, b.AllowTypeDuplicates)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{
			name: "valid",
			doc:  `{"phases": {"2": [{"index": 0, "min_rank": 1, "max_rank": 4, "max_items": 2}]}}`,
		},
		{
			name:    "schema violation",
			doc:     `{"phases": {"2": [{"index": 0, "min_rank": 1, "max_items": 2}]}}`,
			wantErr: domain.ErrConfiguration,
		},
		{
			name:    "non numeric phase",
			doc:     `{"phases": {"two": [{"index": 0, "min_rank": 1, "max_rank": 4, "max_items": 2}]}}`,
			wantErr: domain.ErrConfiguration,
		},
		{
			name:    "gap when contiguous required",
			doc:     `{"require_contiguous": true, "phases": {"1": [{"index": 0, "min_rank": 2, "max_rank": 4, "max_items": 2}]}}`,
			wantErr: domain.ErrConfiguration,
		},
		{
			name: "gap tolerated",
			doc:  `{"phases": {"1": [{"index": 0, "min_rank": 2, "max_rank": 4, "max_items": 2}]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := Load([]byte(tt.doc), "")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, catalog.Phases(), 1)
		})
	}
}

func TestLoadFile_ExternalSchema(t *testing.T) {
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "brackets.json")
	require.NoError(t, os.WriteFile(dataPath, []byte(`{"phases": {"1": [{"index": 0, "min_rank": 1, "max_rank": 4, "max_items": 1}]}}`), 0644))
	schemaPath := filepath.Join(dir, "brackets.schema.json")
	require.NoError(t, os.WriteFile(schemaPath, embeddedSchema, 0644))

	catalog, err := LoadFile(dataPath, schemaPath)
	require.NoError(t, err)

	_, err = catalog.ForPhase(1)
	assert.NoError(t, err)
}

func TestCatalog_ForPhase_Missing(t *testing.T) {
	set, err := NewSet(1, []domain.Bracket{{Index: 0, MinRank: 1, MaxRank: 2, MaxItems: 1}})
	require.NoError(t, err)

	catalog := NewCatalog(set)
	_, err = catalog.ForPhase(7)
	assert.ErrorIs(t, err, domain.ErrBracketsNotFound)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"), "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read brackets file")
}
