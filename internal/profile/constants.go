package profile

// Validation limits, counted in runes so Japanese names get the same
// budget as ASCII ones
const (
	MaxUsernameLength = 20
	MaxBioLength      = 200
)

// Error context messages
const (
	ErrContextLoadProfile     = "failed to load profile"
	ErrContextSaveProfile     = "failed to save profile"
	ErrContextUsernameTooLong = "username too long"
	ErrContextBioTooLong      = "bio too long"
)

// Log messages
const (
	LogMsgProfileUpdated = "Profile updated"
)
