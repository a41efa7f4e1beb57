package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Elite747/ValhallaLootList-sub000/internal/domain"
)

func TestPriorityRepository_GetCharacter(t *testing.T) {
	pool := integrationPool(t)
	repo := NewPriorityRepository(pool)
	ctx := context.Background()

	c, err := repo.GetCharacter(ctx, "bob")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "Bob", c.Name)
	assert.Equal(t, domain.MembershipHalfTrial, c.MembershipStatus)
	assert.Equal(t, "team-1", *c.TeamID)
	assert.True(t, c.Prepared)

	missing, err := repo.GetCharacter(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPriorityRepository_CountAttendances(t *testing.T) {
	pool := integrationPool(t)
	repo := NewPriorityRepository(pool)
	ctx := context.Background()

	tests := []struct {
		name      string
		character string
		limit     int
		want      int
	}{
		{"both raids observed", "alice", 8, 2},
		{"only latest raid observed", "alice", 1, 1},
		{"missed first raid", "bob", 8, 1},
		{"no team", "carol", 8, 0},
		{"unknown character", "nobody", 8, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.CountAttendances(ctx, tt.character, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPriorityRepository_Donations(t *testing.T) {
	pool := integrationPool(t)
	repo := NewPriorityRepository(pool)
	ctx := context.Background()

	require.NoError(t, repo.InsertDonation(ctx, &domain.MonthDonation{CharacterID: "alice", Year: 2021, Month: time.August, Amount: 200000}))
	require.NoError(t, repo.InsertDonation(ctx, &domain.MonthDonation{CharacterID: "alice", Year: 2021, Month: time.July, Amount: 700000}))
	require.NoError(t, repo.InsertDonation(ctx, &domain.MonthDonation{CharacterID: "alice", Year: 2021, Month: time.August, Amount: 100000}))

	donations, err := repo.GetDonations(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, donations, 3)
	assert.Equal(t, time.July, donations[0].Month)
	assert.Equal(t, int64(700000), donations[0].Amount)
	assert.Equal(t, time.August, donations[1].Month)
	assert.Equal(t, int64(200000), donations[1].Amount)

	err = repo.InsertDonation(ctx, &domain.MonthDonation{CharacterID: "nobody", Year: 2021, Month: time.August, Amount: 1})
	assert.ErrorIs(t, err, domain.ErrCharacterNotFound)
}

func TestPriorityRepository_CountTimesSeen(t *testing.T) {
	pool := integrationPool(t)
	repo := NewPriorityRepository(pool)
	ctx := context.Background()

	seed(t, pool,
		`INSERT INTO drops (drop_id, kill_id, item_id) VALUES ('drop-old', 'kill-1', 100), ('drop-other', 'kill-1', 101)`,
		`INSERT INTO drop_passes (drop_id, character_id, entry_id, relative_priority) VALUES
			('drop-old', 'bob', 'eb3', -2), ('drop-other', 'bob', NULL, -1)`,
	)

	seen, err := repo.CountTimesSeen(ctx, "bob", 100)
	require.NoError(t, err)
	assert.Equal(t, 1, seen)

	seen, err = repo.CountTimesSeen(ctx, "alice", 100)
	require.NoError(t, err)
	assert.Equal(t, 0, seen)
}

func TestPriorityRepository_GetEntryForItem(t *testing.T) {
	pool := integrationPool(t)
	repo := NewPriorityRepository(pool)
	ctx := context.Background()

	entry, err := repo.GetEntryForItem(ctx, "alice", 1, 25, 100)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "ea5", entry.ID)
	assert.Equal(t, byte(5), entry.Rank)
	assert.Equal(t, "BiS", *entry.Justification)

	entry, err = repo.GetEntryForItem(ctx, "alice", 2, 25, 100)
	require.NoError(t, err)
	assert.Nil(t, entry)

	entry, err = repo.GetEntryForItem(ctx, "alice", 1, 10, 100)
	require.NoError(t, err)
	assert.Nil(t, entry, "alice has no 10-player list")

	seed(t, pool, `UPDATE loot_list_entries SET won = TRUE, drop_id = 'drop-1' WHERE entry_id = 'ea5'`)
	entry, err = repo.GetEntryForItem(ctx, "alice", 1, 25, 100)
	require.NoError(t, err)
	assert.Nil(t, entry, "awarded entries no longer compete")
}

func TestPriorityRepository_GetEntryForItem_MatchesDropSelection(t *testing.T) {
	pool := integrationPool(t)
	repo := NewPriorityRepository(pool)
	drops := NewDropRepository(pool, 8)
	ctx := context.Background()

	seed(t, pool,
		`INSERT INTO loot_lists (loot_list_id, character_id, phase, size, main_spec, off_spec, status, timestamp) VALUES
			('list-alice-10', 'alice', 1, 10, 1, 2, 'Locked', 'ts-a10')`,
		`INSERT INTO loot_list_entries (entry_id, loot_list_id, rank, heroic, item_id, justification) VALUES
			('ea9', 'list-alice', 9, FALSE, 100, NULL),
			('ea2', 'list-alice', 2, FALSE, 100, NULL),
			('ea10-1', 'list-alice-10', 1, FALSE, 100, NULL)`,
	)

	entry, err := repo.GetEntryForItem(ctx, "alice", 1, 25, 100)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "ea2", entry.ID, "best priority entry on the 25-player list")

	entry, err = repo.GetEntryForItem(ctx, "alice", 1, 10, 100)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "ea10-1", entry.ID)

	eligible, err := drops.GetEligibility(ctx, "drop-1")
	require.NoError(t, err)
	require.NotEmpty(t, eligible)
	require.Equal(t, "alice", eligible[0].Character.ID)
	require.NotNil(t, eligible[0].Entry)
	assert.Equal(t, "ea2", eligible[0].Entry.ID, "drop standings score the same entry")
}
