package inventory

// Error context messages
const (
	ErrContextLoadItems        = "failed to load items"
	ErrContextSaveItems        = "failed to save items"
	ErrContextLoadTotalDigs    = "failed to load total dig count"
	ErrContextSaveTotalDigs    = "failed to save total dig count"
	ErrContextLoadAchievements = "failed to load achievements"
	ErrContextSaveAchievements = "failed to save achievements"
	ErrContextLoadDefinitions  = "failed to load achievement definitions"
)

// Log messages
const (
	LogMsgItemDiscovered = "Item added to collection"
	LogMsgPublishFailed  = "Failed to publish inventory event"
)
