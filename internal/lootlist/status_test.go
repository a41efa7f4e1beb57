package lootlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Elite747/ValhallaLootList-sub000/internal/domain"
)

func TestNext_AllowedTransitions(t *testing.T) {
	tests := []struct {
		from   domain.LootListStatus
		action Action
		to     domain.LootListStatus
	}{
		{domain.LootListStatusEditing, ActionSubmit, domain.LootListStatusSubmitted},
		{domain.LootListStatusSubmitted, ActionRevoke, domain.LootListStatusEditing},
		{domain.LootListStatusSubmitted, ActionApprove, domain.LootListStatusApproved},
		{domain.LootListStatusSubmitted, ActionReject, domain.LootListStatusRejected},
		{domain.LootListStatusRejected, ActionReopen, domain.LootListStatusEditing},
		{domain.LootListStatusApproved, ActionLock, domain.LootListStatusLocked},
		{domain.LootListStatusLocked, ActionUnlock, domain.LootListStatusApproved},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			got, err := Next(tt.from, tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.to, got)
		})
	}
}

func TestNext_InvalidTransitions(t *testing.T) {
	tests := []struct {
		from   domain.LootListStatus
		action Action
	}{
		{domain.LootListStatusEditing, ActionApprove},
		{domain.LootListStatusEditing, ActionLock},
		{domain.LootListStatusLocked, ActionSubmit},
		{domain.LootListStatusApproved, ActionReopen},
		{domain.LootListStatusRejected, ActionUnlock},
	}

	for _, tt := range tests {
		_, err := Next(tt.from, tt.action)
		assert.ErrorIs(t, err, domain.ErrPrecondition, "%s via %s", tt.from, tt.action)
	}
}

func TestParseAction(t *testing.T) {
	a, err := ParseAction("lock")
	require.NoError(t, err)
	assert.Equal(t, ActionLock, a)

	_, err = ParseAction("delete")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = Next(domain.LootListStatusEditing, Action("delete"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
