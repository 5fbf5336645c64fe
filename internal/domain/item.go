package domain

import (
	"time"

	"github.com/google/uuid"
)

// ItemType categorizes collectible items buried in the permafrost
type ItemType string

const (
	ItemTypeGem    ItemType = "gem"
	ItemTypeBarrel ItemType = "barrel"
	ItemTypeBottle ItemType = "bottle"
	ItemTypeGlass  ItemType = "glass"
)

// Rarity represents how rare an item is and drives boost effects
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// LootEntry is a catalog entry in the loot table. Weight is relative,
// not normalized; the sampler works with the running total.
type LootEntry struct {
	Type        ItemType `json:"type"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Rarity      Rarity   `json:"rarity"`
	Image       string   `json:"image"`
	Weight      float64  `json:"weight"`
}

// DiscoveredItem is a concrete instance of a loot entry dug up by the player
type DiscoveredItem struct {
	ID           uuid.UUID `json:"id"`
	Type         ItemType  `json:"type"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Rarity       Rarity    `json:"rarity"`
	Image        string    `json:"image"`
	DiscoveredAt time.Time `json:"discovered_at"`
}
