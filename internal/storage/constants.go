package storage

// Store keys - one JSON document per key in the save directory
const (
	KeyItems              = "items"
	KeyMemories           = "memories"
	KeyDiscoveredMemories = "discovered_memories"
	KeyDailyAllowance     = "daily_allowance"
	KeyAchievements       = "achievements"
	KeyTotalDigs          = "total_digs"
	KeyProfile            = "profile"
)

// File layout
const (
	FileExtension   = ".json"
	TempFilePattern = ".tmp-*"
)

// Error context messages for wrapped storage errors
const (
	ErrContextCreateDataDir = "failed to create data directory"
	ErrContextReadKey       = "failed to read key"
	ErrContextWriteKey      = "failed to write key"
	ErrContextDeleteKey     = "failed to delete key"
	ErrContextDecodeValue   = "failed to decode value for key"
	ErrContextEncodeValue   = "failed to encode value for key"
	ErrContextPing          = "store ping failed"
)

// Log messages
const (
	LogMsgKeyWritten = "Store key written"
)
