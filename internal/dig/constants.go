package dig

import "time"

// ============================================================================
// Grid geometry
// ============================================================================

const (
	GridWidth  = 16
	GridHeight = 12
)

// ============================================================================
// Resolution odds and pacing
// ============================================================================

const (
	// MissChance is the probability a resolved dig yields nothing.
	MissChance = 0.4
	// MemoryChance is the probability a non-miss yields a memory while
	// undiscovered memories remain.
	MemoryChance = 0.5

	ProgressComplete = 100

	DefaultProgressStep = 2
	DefaultTickInterval = 50 * time.Millisecond
	DefaultRevealDelay  = 1200 * time.Millisecond
	DefaultEffectTTL    = 800 * time.Millisecond
)

// ============================================================================
// Error context messages
// ============================================================================

const (
	ErrContextLoadUndiscovered = "failed to load undiscovered memories"
	ErrContextRecordDig        = "failed to record dig"
	ErrContextRecordDiscovery  = "failed to record discovery"
	ErrContextMarkDiscovered   = "failed to mark memory discovered"
	ErrContextAllowance        = "failed to read allowance"
)

// ============================================================================
// Log messages
// ============================================================================

const (
	LogMsgSessionStarted   = "Dig session started"
	LogMsgThresholdReached = "Click threshold reached, resolving"
	LogMsgDigResolved      = "Dig resolved"
	LogMsgBoostArmed       = "Boost armed"
	LogMsgSessionClosed    = "Dig session closed"
	LogMsgResolveFailed    = "Dig resolution failed"
	LogMsgPublishFailed    = "Failed to publish dig event"
)
