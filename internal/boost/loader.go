package boost

import (
	"fmt"

	"github.com/hyoga-dev/PermafrostDig_Go/internal/domain"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/utils"
)

// LoadTable reads the rarity-to-effect lookup from a JSON config file.
// Every rarity in the file gets its Rarity field stamped from its key.
func LoadTable(path string) (map[domain.Rarity]domain.BoostEffect, error) {
	var raw map[domain.Rarity]domain.BoostEffect
	if err := utils.LoadJSON(path, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextLoadBoosts, err)
	}

	table := make(map[domain.Rarity]domain.BoostEffect, len(raw))
	for rarity, effect := range raw {
		if effect.RequiredClicks <= 0 {
			return nil, fmt.Errorf("%s: rarity %q has required_clicks %d", ErrContextLoadBoosts, rarity, effect.RequiredClicks)
		}
		effect.Rarity = rarity
		table[rarity] = effect
	}
	return table, nil
}
