package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeForeignKeyViolation is raised when a referenced row does not exist
	PgErrorCodeForeignKeyViolation = "23503"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Character and Priority Operations
const (
	ErrMsgFailedToGetCharacter     = "failed to get character"
	ErrMsgFailedToCountAttendances = "failed to count attendances"
	ErrMsgFailedToGetDonations     = "failed to get donations"
	ErrMsgFailedToInsertDonation   = "failed to insert donation"
	ErrMsgFailedToCountTimesSeen   = "failed to count times seen"
	ErrMsgFailedToGetEntryForItem  = "failed to get entry for item"
)

// Error Messages - Loot List Operations
const (
	ErrMsgFailedToGetLootList      = "failed to get loot list"
	ErrMsgFailedToGetEntries       = "failed to get loot list entries"
	ErrMsgFailedToGetItems         = "failed to get items"
	ErrMsgFailedToGetRestrictions  = "failed to get item restrictions"
	ErrMsgFailedToUpdateStatus     = "failed to update loot list status"
	ErrMsgFailedToTouchTimestamp   = "failed to update loot list timestamp"
	ErrMsgFailedToCreateEntries    = "failed to create loot list entries"
	ErrMsgFailedToUpdateEntry      = "failed to update loot list entry"
	ErrMsgFailedToScanRow          = "failed to scan row"
	ErrMsgRowIterationError        = "row iteration error"
	ErrMsgEntryAwardedOrMissing    = "entry is awarded or missing"
	ErrMsgFailedToCheckListPresent = "failed to check loot list"
)

// Error Messages - Drop Operations
const (
	ErrMsgFailedToGetDrop        = "failed to get drop"
	ErrMsgFailedToGetPasses      = "failed to get drop passes"
	ErrMsgFailedToGetEligibility = "failed to get drop eligibility"
	ErrMsgFailedToSetWinner      = "failed to set drop winner"
	ErrMsgFailedToDeletePasses   = "failed to delete drop passes"
	ErrMsgFailedToInsertPasses   = "failed to insert drop passes"
	ErrMsgFailedToLinkEntry      = "failed to link winning entry"
	ErrMsgFailedToUnlinkEntries  = "failed to unlink entries"
)
