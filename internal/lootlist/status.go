package lootlist

import (
	"fmt"

	"github.com/Elite747/ValhallaLootList-sub000/internal/domain"
)

// Action is a request to move a loot list through its approval workflow
type Action string

const (
	ActionSubmit  Action = "submit"
	ActionRevoke  Action = "revoke"
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionReopen  Action = "reopen"
	ActionLock    Action = "lock"
	ActionUnlock  Action = "unlock"
)

type transition struct {
	from domain.LootListStatus
	to   domain.LootListStatus
}

var transitions = map[Action]transition{
	ActionSubmit:  {domain.LootListStatusEditing, domain.LootListStatusSubmitted},
	ActionRevoke:  {domain.LootListStatusSubmitted, domain.LootListStatusEditing},
	ActionApprove: {domain.LootListStatusSubmitted, domain.LootListStatusApproved},
	ActionReject:  {domain.LootListStatusSubmitted, domain.LootListStatusRejected},
	ActionReopen:  {domain.LootListStatusRejected, domain.LootListStatusEditing},
	ActionLock:    {domain.LootListStatusApproved, domain.LootListStatusLocked},
	ActionUnlock:  {domain.LootListStatusLocked, domain.LootListStatusApproved},
}

// ParseAction validates an action name
func ParseAction(s string) (Action, error) {
	a := Action(s)
	if _, ok := transitions[a]; !ok {
		return "", fmt.Errorf("%w: unknown action %q", domain.ErrInvalidInput, s)
	}
	return a, nil
}

// Next returns the status the action leads to from current
func Next(current domain.LootListStatus, action Action) (domain.LootListStatus, error) {
	t, ok := transitions[action]
	if !ok {
		return "", fmt.Errorf("%w: unknown action %q", domain.ErrInvalidInput, action)
	}
	if t.from != current {
		return "", domain.Violate(fmt.Sprintf(domain.ReasonInvalidTransition, current, t.to))
	}
	return t.to, nil
}
