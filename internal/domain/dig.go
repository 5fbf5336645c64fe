package domain

import (
	"time"

	"github.com/google/uuid"
)

// DigState is the lifecycle state of a dig session
type DigState string

const (
	DigStateIdle         DigState = "idle"
	DigStateAccumulating DigState = "accumulating"
	DigStateResolving    DigState = "resolving"
	DigStateRevealing    DigState = "revealing"
	DigStateResolved     DigState = "resolved"
)

// Cell is a coordinate on the reveal grid (0-based, x to the right, y down)
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// SilhouetteKind identifies which pixel pattern is buried under the ice
type SilhouetteKind string

const (
	SilhouetteNothing SilhouetteKind = "nothing"
	SilhouetteMemory  SilhouetteKind = "memory"
	SilhouetteGem     SilhouetteKind = "gem"
	SilhouetteBarrel  SilhouetteKind = "barrel"
	SilhouetteBottle  SilhouetteKind = "bottle"
	SilhouetteGlass   SilhouetteKind = "glass"
)

// ResultKind classifies the outcome of a resolved dig
type ResultKind string

const (
	ResultNothing ResultKind = "nothing"
	ResultItem    ResultKind = "item"
	ResultMemory  ResultKind = "memory"
)

// DigResult is the reward produced by a resolved dig. Exactly one of
// Item or Memory is set when Kind is not ResultNothing.
type DigResult struct {
	Kind   ResultKind      `json:"kind"`
	Item   *DiscoveredItem `json:"item,omitempty"`
	Memory *Memory         `json:"memory,omitempty"`
}

// ClickEffect is a short-lived visual effect token emitted per excavated cell
type ClickEffect struct {
	ID        uuid.UUID `json:"id"`
	Cell      Cell      `json:"cell"`
	CreatedAt time.Time `json:"created_at"`
}

// DigSessionView is the client-facing snapshot of the current dig session
type DigSessionView struct {
	State              DigState       `json:"state"`
	ClickCount         int            `json:"click_count"`
	RequiredClicks     int            `json:"required_clicks"`
	Progress           int            `json:"progress"`
	ExcavatedCells     []Cell         `json:"excavated_cells"`
	Silhouette         SilhouetteKind `json:"silhouette"`
	SilhouetteCells    []Cell         `json:"silhouette_cells"`
	Result             *DigResult     `json:"result,omitempty"`
	Effects            []ClickEffect  `json:"effects,omitempty"`
	AllowanceRemaining int            `json:"allowance_remaining"`
	BonusDigsRemaining int            `json:"bonus_digs_remaining"`
	ActiveBoost        *BoostEffect   `json:"active_boost,omitempty"`
	Exhausted          bool           `json:"exhausted"`
}
