package dig

import (
	"fmt"

	"github.com/hyoga-dev/PermafrostDig_Go/internal/domain"
)

// grid tracks which ice cells have been chipped away this session.
// Excavation order is preserved so the client can replay it.
type grid struct {
	dug   map[domain.Cell]struct{}
	order []domain.Cell
}

func newGrid() *grid {
	return &grid{dug: make(map[domain.Cell]struct{})}
}

func inBounds(c domain.Cell) bool {
	return c.X >= 0 && c.X < GridWidth && c.Y >= 0 && c.Y < GridHeight
}

// excavate marks a cell as dug. Returns false when the cell was already
// dug, so the caller can treat the click as a no-op.
func (g *grid) excavate(c domain.Cell) (bool, error) {
	if !inBounds(c) {
		return false, fmt.Errorf("%w: (%d,%d)", domain.ErrInvalidCell, c.X, c.Y)
	}
	if _, ok := g.dug[c]; ok {
		return false, nil
	}
	g.dug[c] = struct{}{}
	g.order = append(g.order, c)
	return true, nil
}

func (g *grid) cells() []domain.Cell {
	out := make([]domain.Cell, len(g.order))
	copy(out, g.order)
	return out
}
