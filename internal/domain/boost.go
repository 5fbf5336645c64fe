package domain

// DefaultRequiredClicks is the number of excavation clicks needed to start
// a dig when no boost is active
const DefaultRequiredClicks = 10

// BoostEffect modifies the next dig attempts after discovering an item.
// RequiredClicks lowers the click threshold; BonusDigs grants extra
// attempts that do not consume the daily allowance.
type BoostEffect struct {
	Rarity         Rarity `json:"rarity"`
	RequiredClicks int    `json:"required_clicks"`
	BonusDigs      int    `json:"bonus_digs"`
	Label          string `json:"label"`
	Description    string `json:"description"`
}

// IsNoop reports whether the effect changes nothing over the defaults.
// Common items map to a no-op effect and must not arm a boost.
func (b BoostEffect) IsNoop() bool {
	return b.RequiredClicks >= DefaultRequiredClicks && b.BonusDigs == 0
}
