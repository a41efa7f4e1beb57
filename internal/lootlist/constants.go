package lootlist

// Error context messages
const (
	ErrContextFailedToGetList     = "failed to get loot list"
	ErrContextFailedToGetEntries  = "failed to get loot list entries"
	ErrContextFailedToGetItems    = "failed to get items"
	ErrContextFailedToBeginTx     = "failed to begin loot list transaction"
	ErrContextFailedToCommitTx    = "failed to commit loot list transaction"
	ErrContextFailedToUpdate      = "failed to update loot list"
	ErrContextFailedToSaveEntries = "failed to save loot list entries"
)

// Log messages
const (
	LogMsgEntryRejected      = "Loot list entry edit rejected"
	LogMsgEntryUpdated       = "Loot list entry updated"
	LogMsgEntriesSwapped     = "Loot list entries swapped"
	LogMsgListTransitioned   = "Loot list status changed"
	LogMsgEntriesInitialized = "Loot list entries created"
)
