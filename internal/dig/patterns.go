package dig

import "github.com/hyoga-dev/PermafrostDig_Go/internal/domain"

// pixelPatterns are the silhouette shapes buried under the 16x12 grid,
// one per silhouette kind, centered on the grid. The nothing pattern is
// deliberately empty.
var pixelPatterns = map[domain.SilhouetteKind][]domain.Cell{
	domain.SilhouetteBarrel: cells(
		4, 3, 5, 3, 6, 3, 7, 3, 8, 3, 9, 3, 10, 3, 11, 3,
		3, 4, 4, 4, 5, 4, 6, 4, 7, 4, 8, 4, 9, 4, 10, 4, 11, 4, 12, 4,
		3, 5, 4, 5, 5, 5, 6, 5, 7, 5, 8, 5, 9, 5, 10, 5, 11, 5, 12, 5,
		3, 6, 4, 6, 5, 6, 6, 6, 7, 6, 8, 6, 9, 6, 10, 6, 11, 6, 12, 6,
		3, 7, 4, 7, 5, 7, 6, 7, 7, 7, 8, 7, 9, 7, 10, 7, 11, 7, 12, 7,
		4, 8, 5, 8, 6, 8, 7, 8, 8, 8, 9, 8, 10, 8, 11, 8,
	),
	domain.SilhouetteBottle: cells(
		7, 2, 8, 2,
		7, 3, 8, 3,
		6, 4, 7, 4, 8, 4, 9, 4,
		6, 5, 7, 5, 8, 5, 9, 5,
		6, 6, 7, 6, 8, 6, 9, 6,
		6, 7, 7, 7, 8, 7, 9, 7,
		6, 8, 7, 8, 8, 8, 9, 8,
		6, 9, 7, 9, 8, 9, 9, 9,
	),
	domain.SilhouetteGlass: cells(
		6, 4, 7, 4, 8, 4, 9, 4,
		5, 5, 6, 5, 7, 5, 8, 5, 9, 5, 10, 5,
		5, 6, 6, 6, 7, 6, 8, 6, 9, 6, 10, 6,
		5, 7, 6, 7, 7, 7, 8, 7, 9, 7, 10, 7,
		6, 8, 7, 8, 8, 8, 9, 8,
		6, 9, 7, 9, 8, 9, 9, 9,
	),
	domain.SilhouetteGem: cells(
		7, 3, 8, 3,
		6, 4, 7, 4, 8, 4, 9, 4,
		5, 5, 6, 5, 7, 5, 8, 5, 9, 5, 10, 5,
		5, 6, 6, 6, 7, 6, 8, 6, 9, 6, 10, 6,
		6, 7, 7, 7, 8, 7, 9, 7,
		7, 8, 8, 8,
	),
	domain.SilhouetteMemory: cells(
		4, 3, 5, 3, 6, 3, 7, 3, 8, 3, 9, 3, 10, 3, 11, 3,
		4, 4, 5, 4, 10, 4, 11, 4,
		4, 5, 5, 5, 10, 5, 11, 5,
		4, 6, 5, 6, 10, 6, 11, 6,
		4, 7, 5, 7, 10, 7, 11, 7,
		4, 8, 5, 8, 6, 8, 7, 8, 8, 8, 9, 8, 10, 8, 11, 8,
	),
	domain.SilhouetteNothing: {},
}

func cells(xy ...int) []domain.Cell {
	out := make([]domain.Cell, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, domain.Cell{X: xy[i], Y: xy[i+1]})
	}
	return out
}

// PatternFor returns the silhouette cells for a kind. Unknown kinds map
// to the empty pattern.
func PatternFor(kind domain.SilhouetteKind) []domain.Cell {
	pattern, ok := pixelPatterns[kind]
	if !ok {
		return nil
	}
	out := make([]domain.Cell, len(pattern))
	copy(out, pattern)
	return out
}
