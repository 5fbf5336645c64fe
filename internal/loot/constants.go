package loot

// Error context messages for wrapped errors during loot table loading
const (
	ErrContextLoadTable = "failed to load loot table"
)
