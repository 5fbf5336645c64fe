package allowance

// DateFormat is the calendar-day key stored with the allowance record
const DateFormat = "2006-01-02"

// Error context messages
const (
	ErrContextLoadAllowance = "failed to load daily allowance"
	ErrContextSaveAllowance = "failed to save daily allowance"
)

// Log messages
const (
	LogMsgAllowanceRolledOver = "Daily allowance rolled over"
	LogMsgAllowanceReset      = "Daily allowance reset"
	LogMsgPublishFailed       = "Failed to publish allowance event"
)
