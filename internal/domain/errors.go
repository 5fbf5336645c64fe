package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Dig session errors
	ErrMsgNoActiveSession    = "no active dig session"
	ErrMsgAllowanceExhausted = "daily allowance exhausted"
	ErrMsgInvalidCell        = "cell is outside the grid"

	// Memory errors
	ErrMsgMemoryNotFound      = "memory not found"
	ErrMsgMemoryNotDiscovered = "memory not discovered"

	// Loot errors
	ErrMsgEmptyLootTable = "loot table has no entries"
	ErrMsgInvalidWeight  = "loot entry weight must be positive"

	// Storage/System errors
	ErrMsgStorageError = "storage error"
	ErrMsgKeyNotFound  = "key not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Dig session errors
	ErrNoActiveSession    = errors.New(ErrMsgNoActiveSession)
	ErrAllowanceExhausted = errors.New(ErrMsgAllowanceExhausted)
	ErrInvalidCell        = errors.New(ErrMsgInvalidCell)

	// Memory errors
	ErrMemoryNotFound      = errors.New(ErrMsgMemoryNotFound)
	ErrMemoryNotDiscovered = errors.New(ErrMsgMemoryNotDiscovered)

	// Loot errors
	ErrEmptyLootTable = errors.New(ErrMsgEmptyLootTable)
	ErrInvalidWeight  = errors.New(ErrMsgInvalidWeight)

	// Storage errors
	ErrStorageError = errors.New(ErrMsgStorageError)
	ErrKeyNotFound  = errors.New(ErrMsgKeyNotFound)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
