package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Lookup errors
	ErrMsgCharacterNotFound = "character not found"
	ErrMsgLootListNotFound  = "loot list not found"
	ErrMsgEntryNotFound     = "loot list entry not found"
	ErrMsgItemNotFound      = "item not found"
	ErrMsgDropNotFound      = "drop not found"
	ErrMsgBracketsNotFound  = "no brackets configured for phase"

	// Category errors
	ErrMsgConfiguration = "invalid configuration"
	ErrMsgValidation    = "validation rejected"
	ErrMsgPrecondition  = "precondition violated"

	// Concurrency errors
	ErrMsgConcurrencyConflict = "loot list was modified by another request"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Database/System errors
	ErrMsgTxClosed = "tx is closed"
)

// User-facing rejection reasons. Returned verbatim to the caller.
const (
	ReasonRankNotValid         = "Rank is not valid."
	ReasonBracketTypeDuplicate = "Bracket already has an item of that type."
	ReasonItemAlreadyOnList    = "Character already has this item on their list."
	ReasonItemOnListTwice      = "Character already has this item on their list twice."
	ReasonQuestConflict        = "Character already has a quest reward from the same quest on their list."
	ReasonWrongPhase           = "Item is not part of this content phase."
	ReasonWrongDifficulty      = "Item difficulty does not match the entry."
	ReasonUnequippable         = "Item cannot be equipped by this specialization."
	ReasonListNotEditable      = "Loot list must be in the editing state to change entries."
	ReasonEntryAlreadyWon      = "Entry has already been awarded and cannot be changed."
	ReasonSwapEntryAlreadyWon  = "Swap entry has already been awarded and cannot be changed."
	ReasonSwapDifferentList    = "Swap entry does not belong to the same loot list."
	ReasonSwapSelf             = "An entry cannot be swapped with itself."
	ReasonWinnerNotEligible    = "Winner was not eligible for this drop."
	ReasonExistingWinner       = "Existing winner must be cleared before setting a new winner."
	ReasonInvalidTransition    = "Loot list cannot move from %s to %s."
	ReasonDonationNotPositive  = "Donation amount must be positive."
	ReasonJustificationTooLong = "Justification must be at most %d characters."
	ReasonNoWinnerToClear      = "Drop has no winner to clear."
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrCharacterNotFound = errors.New(ErrMsgCharacterNotFound)
	ErrLootListNotFound  = errors.New(ErrMsgLootListNotFound)
	ErrEntryNotFound     = errors.New(ErrMsgEntryNotFound)
	ErrItemNotFound      = errors.New(ErrMsgItemNotFound)
	ErrDropNotFound      = errors.New(ErrMsgDropNotFound)
	ErrBracketsNotFound  = errors.New(ErrMsgBracketsNotFound)

	ErrConfiguration = errors.New(ErrMsgConfiguration)
	ErrValidation    = errors.New(ErrMsgValidation)
	ErrPrecondition  = errors.New(ErrMsgPrecondition)

	ErrConcurrencyConflict = errors.New(ErrMsgConcurrencyConflict)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

// ConfigurationError reports a malformed bracket set or priority scope.
// It is fatal at load time and should never surface from a request.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMsgConfiguration, e.Reason)
}

// Is allows errors.Is(err, ErrConfiguration)
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// RejectionKind separates user-correctable input problems from state problems
type RejectionKind string

const (
	KindValidation   RejectionKind = "validation"
	KindPrecondition RejectionKind = "precondition"
)

// Rejection is a refused operation carrying a reason that can be shown to the end user as-is.
type Rejection struct {
	Kind   RejectionKind
	Reason string
}

func (r *Rejection) Error() string {
	return r.Reason
}

// Is allows errors.Is(err, ErrValidation) and errors.Is(err, ErrPrecondition)
func (r *Rejection) Is(target error) bool {
	switch target {
	case ErrValidation:
		return r.Kind == KindValidation
	case ErrPrecondition:
		return r.Kind == KindPrecondition
	}
	return false
}

// Reject builds a validation rejection
func Reject(reason string) *Rejection {
	return &Rejection{Kind: KindValidation, Reason: reason}
}

// Violate builds a precondition violation
func Violate(reason string) *Rejection {
	return &Rejection{Kind: KindPrecondition, Reason: reason}
}

// RejectionReason extracts the user-facing reason from a rejection, or "" when err is not one.
func RejectionReason(err error) string {
	var rej *Rejection
	if errors.As(err, &rej) {
		return rej.Reason
	}
	return ""
}
