package boost

import (
	"sync"

	"github.com/hyoga-dev/PermafrostDig_Go/internal/domain"
)

// Ledger tracks the active boost and the bonus dig pool. It outlives
// individual dig sessions: a boost armed by one discovery stays in
// effect until a later discovery replaces it.
type Ledger struct {
	mu        sync.Mutex
	table     map[domain.Rarity]domain.BoostEffect
	active    *domain.BoostEffect
	bonusDigs int
}

// NewLedger creates a ledger over a rarity-to-effect lookup table.
func NewLedger(table map[domain.Rarity]domain.BoostEffect) *Ledger {
	return &Ledger{table: table}
}

// EffectFor returns the boost effect a rarity grants. Unknown rarities
// map to the no-op default.
func (l *Ledger) EffectFor(rarity domain.Rarity) domain.BoostEffect {
	if effect, ok := l.table[rarity]; ok {
		return effect
	}
	return domain.BoostEffect{Rarity: rarity, RequiredClicks: domain.DefaultRequiredClicks}
}

// RequiredClicks returns the click threshold for the next dig.
func (l *Ledger) RequiredClicks() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.active != nil {
		return l.active.RequiredClicks
	}
	return domain.DefaultRequiredClicks
}

// BonusDigs returns the number of bonus digs remaining.
func (l *Ledger) BonusDigs() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.bonusDigs
}

// Active returns a copy of the active boost, or nil.
func (l *Ledger) Active() *domain.BoostEffect {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.active == nil {
		return nil
	}
	effect := *l.active
	return &effect
}

// Arm applies the boost for an item rarity. No-op effects (common items)
// arm nothing. Bonus digs accumulate on top of any unspent pool.
func (l *Ledger) Arm(rarity domain.Rarity) (domain.BoostEffect, bool) {
	effect := l.EffectFor(rarity)
	if effect.IsNoop() {
		return effect, false
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.active = &effect
	l.bonusDigs += effect.BonusDigs
	return effect, true
}

// ConsumeBonusDig spends one bonus dig if any remain.
func (l *Ledger) ConsumeBonusDig() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.bonusDigs <= 0 {
		return false
	}
	l.bonusDigs--
	return true
}

// ClearSpent drops the active boost once it no longer changes anything:
// no bonus digs left and a default click threshold.
func (l *Ledger) ClearSpent() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.active != nil && l.bonusDigs == 0 && l.active.RequiredClicks >= domain.DefaultRequiredClicks {
		l.active = nil
	}
}
