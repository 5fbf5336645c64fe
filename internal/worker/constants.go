package worker

// ============================================================================
// Log Messages - Daily Reset Worker
// ============================================================================

// Log messages for daily reset worker operations
const (
	LogMsgDailyResetStandby   = "Daily reset worker in standby"
	LogMsgDailyResetApproach  = "Daily reset scheduled"
	LogMsgDailyResetStarting  = "Daily allowance reset starting"
	LogMsgDailyResetCompleted = "Daily allowance reset completed"
	LogMsgDailyResetFailed    = "Daily allowance reset failed"
)
