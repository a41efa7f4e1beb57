package allocation

// Error context messages
const (
	ErrContextFailedToGetDrop        = "failed to get drop"
	ErrContextFailedToGetEligibility = "failed to get drop eligibility"
	ErrContextFailedToScore          = "failed to score candidate"
	ErrContextFailedToBeginTx        = "failed to begin drop transaction"
	ErrContextFailedToCommitTx       = "failed to commit drop transaction"
	ErrContextFailedToSetWinner      = "failed to set drop winner"
	ErrContextFailedToSavePasses     = "failed to save drop passes"
	ErrContextFailedToLinkEntry      = "failed to link winning entry"
)

// Log messages
const (
	LogMsgDropAwarded  = "Drop awarded"
	LogMsgDropCleared  = "Drop award cleared"
	LogMsgAwardRefused = "Drop award refused"
)
