package memory

// Error context messages
const (
	ErrContextLoadMemories = "failed to load memories"
	ErrContextSaveMemories = "failed to save memories"
	ErrContextSeedMemories = "failed to seed memory catalog"
)

// Log messages
const (
	LogMsgMemorySealed  = "Memory sealed"
	LogMsgCatalogSeeded = "Memory catalog seeded"
	LogMsgPublishFailed = "Failed to publish memory event"
)
