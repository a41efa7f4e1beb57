package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Elite747/ValhallaLootList-sub000/internal/domain"
)

func intPtr(i int) *int { return &i }

func strPtr(s string) *string { return &s }

func candidates() []Candidate {
	return []Candidate{
		{CharacterID: "alice", EntryID: strPtr("ea"), PriorityScore: intPtr(10), IsLockedList: true},
		{CharacterID: "bob", EntryID: strPtr("eb"), PriorityScore: intPtr(7), IsLockedList: true},
		{CharacterID: "carol", PriorityScore: nil, IsLockedList: true},
		{CharacterID: "dave", EntryID: strPtr("ed"), PriorityScore: intPtr(12), IsLockedList: false},
		{CharacterID: "erin", EntryID: strPtr("ee"), PriorityScore: intPtr(10), IsLockedList: true},
	}
}

func TestAssign_WinnerAndPasses(t *testing.T) {
	var engine Engine

	result, err := engine.Assign(nil, candidates(), strPtr("alice"))

	require.NoError(t, err)
	require.NotNil(t, result.WinnerID)
	assert.Equal(t, "alice", *result.WinnerID)
	assert.Equal(t, "ea", *result.WinningEntryID)
	assert.Equal(t, 10, result.WinnerScore)
	assert.False(t, result.Cleared)

	// carol is scoreless and dave's list is unlocked: no passes for them
	require.Len(t, result.Passes, 2)
	assert.Equal(t, "bob", result.Passes[0].CharacterID)
	assert.Equal(t, -3, result.Passes[0].RelativePriority)
	assert.Equal(t, "eb", *result.Passes[0].EntryID)
	assert.Equal(t, "erin", result.Passes[1].CharacterID)
	assert.Equal(t, 0, result.Passes[1].RelativePriority)
}

func TestAssign_WinnerNeverHasPass(t *testing.T) {
	var engine Engine

	for _, c := range candidates() {
		result, err := engine.Assign(nil, candidates(), strPtr(c.CharacterID))
		require.NoError(t, err)
		assert.Equal(t, c.CharacterID, *result.WinnerID)
		for _, p := range result.Passes {
			assert.NotEqual(t, c.CharacterID, p.CharacterID)
		}
	}
}

func TestAssign_ScorelessWinnerCountsAsZero(t *testing.T) {
	var engine Engine

	result, err := engine.Assign(nil, candidates(), strPtr("carol"))

	require.NoError(t, err)
	assert.Equal(t, 0, result.WinnerScore)
	assert.Nil(t, result.WinningEntryID)
	require.Len(t, result.Passes, 3)
	assert.Equal(t, 10, result.Passes[0].RelativePriority)
}

func TestAssign_UnlockedWinnerIsAllowed(t *testing.T) {
	var engine Engine

	result, err := engine.Assign(nil, candidates(), strPtr("dave"))

	require.NoError(t, err)
	assert.Equal(t, "dave", *result.WinnerID)
	assert.Equal(t, 12, result.WinnerScore)
	assert.Len(t, result.Passes, 3)
	assert.Nil(t, result.WinningEntryID, "entries on unlocked lists stay editable")
}

func TestAssign_WinnerMustBeEligible(t *testing.T) {
	var engine Engine

	_, err := engine.Assign(nil, candidates(), strPtr("mallory"))

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, domain.ReasonWinnerNotEligible, domain.RejectionReason(err))
}

func TestAssign_ExistingWinnerMustBeCleared(t *testing.T) {
	var engine Engine

	_, err := engine.Assign(strPtr("bob"), candidates(), strPtr("alice"))
	assert.ErrorIs(t, err, domain.ErrPrecondition)
	assert.Equal(t, "Existing winner must be cleared before setting a new winner.", domain.RejectionReason(err))

	_, err = engine.Assign(strPtr("alice"), candidates(), strPtr("alice"))
	assert.ErrorIs(t, err, domain.ErrPrecondition)
}

func TestAssign_Clear(t *testing.T) {
	var engine Engine

	result, err := engine.Assign(strPtr("alice"), candidates(), nil)
	require.NoError(t, err)
	assert.True(t, result.Cleared)
	assert.Nil(t, result.WinnerID)
	assert.Empty(t, result.Passes)

	_, err = engine.Assign(nil, candidates(), nil)
	assert.ErrorIs(t, err, domain.ErrPrecondition)
}

func TestAssign_ReassignmentReplacesPasses(t *testing.T) {
	var engine Engine

	first, err := engine.Assign(nil, candidates(), strPtr("alice"))
	require.NoError(t, err)

	cleared, err := engine.Assign(first.WinnerID, candidates(), nil)
	require.NoError(t, err)
	require.True(t, cleared.Cleared)

	second, err := engine.Assign(nil, candidates(), strPtr("bob"))
	require.NoError(t, err)

	require.Len(t, second.Passes, 2)
	assert.Equal(t, "alice", second.Passes[0].CharacterID)
	assert.Equal(t, 3, second.Passes[0].RelativePriority)
}

func TestRank(t *testing.T) {
	var engine Engine

	ranked := engine.Rank(candidates())

	ids := make([]string, len(ranked))
	for i, c := range ranked {
		ids[i] = c.CharacterID
	}
	assert.Equal(t, []string{"alice", "erin", "bob", "dave", "carol"}, ids)
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	var engine Engine
	in := candidates()

	_ = engine.Rank(in)

	assert.Equal(t, "alice", in[0].CharacterID)
	assert.Equal(t, "erin", in[4].CharacterID)
}
