package domain

// DefaultUsername is used until the player names themselves
const DefaultUsername = "ゲスト"

// Profile is the player's public identity
type Profile struct {
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	Bio      string `json:"bio"`
}

// DefaultProfile returns the profile for a fresh save
func DefaultProfile() Profile {
	return Profile{Username: DefaultUsername}
}
