package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"

	// Path parameter error messages
	ErrMsgUnknownAction = "Unknown loot list action"
)

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgAuthFailedError     = "Authentication failed. Please check your API key."
	ErrMsgConcurrencyConflict = "The loot list was changed by someone else. Reload and try again."

	ErrMsgCharacterNotFoundError = "Character not found"
	ErrMsgLootListNotFoundError  = "Loot list not found"
	ErrMsgEntryNotFoundError     = "Loot list entry not found"
	ErrMsgItemNotFoundError      = "Item not found"
	ErrMsgDropNotFoundError      = "Drop not found"
	ErrMsgBracketsNotFoundError  = "No brackets are configured for that phase"
)

// Success messages for API responses
const (
	MsgDonationRecordedSuccess = "Donation recorded"
)
