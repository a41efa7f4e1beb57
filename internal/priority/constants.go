package priority

import "time"

// Fixed bonus values
const (
	DonationBonusValue  = 1
	EnchantedBonusValue = 2
	PreparedBonusValue  = 1
)

// Ledger cache defaults
const (
	DefaultLedgerCacheSize = 512
	DefaultLedgerCacheTTL  = 10 * time.Minute
	LedgerCacheVersion     = "1"
)

// Error context messages
const (
	ErrContextFailedToGetCharacter   = "failed to get character"
	ErrContextFailedToGetDonations   = "failed to get donations"
	ErrContextFailedToCountAttended  = "failed to count attendances"
	ErrContextFailedToCountSeen      = "failed to count times seen"
	ErrContextFailedToGetEntry       = "failed to get loot list entry"
	ErrContextFailedToRecordDonation = "failed to record donation"
)
