package loot

import (
	"fmt"

	"github.com/hyoga-dev/PermafrostDig_Go/internal/domain"
)

// Table is an immutable weighted loot catalog. Sampling walks the entries
// in catalog order subtracting weights from the draw until it goes
// non-positive, so entry order is part of the table's identity.
type Table struct {
	entries []domain.LootEntry
	total   float64
}

// NewTable validates the entries and builds a table. An empty table is
// legal and simply never yields an item.
func NewTable(entries []domain.LootEntry) (*Table, error) {
	t := &Table{entries: make([]domain.LootEntry, len(entries))}
	copy(t.entries, entries)

	for _, e := range t.entries {
		if e.Weight <= 0 {
			return nil, fmt.Errorf("%w: %q has weight %v", domain.ErrInvalidWeight, e.Name, e.Weight)
		}
		t.total += e.Weight
	}
	return t, nil
}

// TotalWeight returns the sum of all entry weights.
func (t *Table) TotalWeight() float64 {
	return t.total
}

// Len returns the number of catalog entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the catalog in sampling order.
func (t *Table) Entries() []domain.LootEntry {
	out := make([]domain.LootEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Sample picks the entry for a draw u in [0, TotalWeight()): the first
// entry whose running remainder goes non-positive wins. Returns false
// when the table is empty or the walk exhausts without landing.
func (t *Table) Sample(u float64) (domain.LootEntry, bool) {
	for _, e := range t.entries {
		u -= e.Weight
		if u <= 0 {
			return e, true
		}
	}
	return domain.LootEntry{}, false
}

// Draw samples an entry using a uniform [0,1) source.
func (t *Table) Draw(rnd func() float64) (domain.LootEntry, bool) {
	if t.total <= 0 {
		return domain.LootEntry{}, false
	}
	return t.Sample(rnd() * t.total)
}
