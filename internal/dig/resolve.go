package dig

import (
	"github.com/hyoga-dev/PermafrostDig_Go/internal/domain"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/loot"
)

// outcome is a resolved draw before any ledger is touched.
type outcome struct {
	kind   domain.ResultKind
	entry  domain.LootEntry
	memory domain.Memory
}

// resolveOutcome rolls a dig result. The odds are layered: a flat miss
// chance first, then a coin flip for a memory while any remain
// undiscovered, then the weighted loot walk. An exhausted walk counts
// as a miss.
func resolveOutcome(rnd func() float64, table *loot.Table, undiscovered []domain.Memory) outcome {
	if rnd() < MissChance {
		return outcome{kind: domain.ResultNothing}
	}

	if len(undiscovered) > 0 && rnd() < MemoryChance {
		idx := int(rnd() * float64(len(undiscovered)))
		if idx >= len(undiscovered) {
			idx = len(undiscovered) - 1
		}
		return outcome{kind: domain.ResultMemory, memory: undiscovered[idx]}
	}

	entry, ok := table.Draw(rnd)
	if !ok {
		return outcome{kind: domain.ResultNothing}
	}
	return outcome{kind: domain.ResultItem, entry: entry}
}

// silhouetteFor maps an outcome to the pattern shown under the ice.
func silhouetteFor(o outcome) domain.SilhouetteKind {
	switch o.kind {
	case domain.ResultMemory:
		return domain.SilhouetteMemory
	case domain.ResultItem:
		switch o.entry.Type {
		case domain.ItemTypeGem:
			return domain.SilhouetteGem
		case domain.ItemTypeBarrel:
			return domain.SilhouetteBarrel
		case domain.ItemTypeBottle:
			return domain.SilhouetteBottle
		case domain.ItemTypeGlass:
			return domain.SilhouetteGlass
		}
	}
	return domain.SilhouetteNothing
}
