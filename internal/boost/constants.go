package boost

// Error context messages
const (
	ErrContextLoadBoosts = "failed to load boost table"
)
