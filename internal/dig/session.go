package dig

import (
	"time"

	"github.com/hyoga-dev/PermafrostDig_Go/internal/domain"
)

// session is the server-side state of one dig. It only exists while the
// player has budget to dig; ephemerals (grid, effects, progress) are
// wiped when the session is acknowledged.
type session struct {
	state          domain.DigState
	clicks         int
	requiredClicks int
	progress       int
	grid           *grid
	silhouette     domain.SilhouetteKind
	result         *domain.DigResult
	effects        []domain.ClickEffect
}

func newSession(requiredClicks int, silhouette domain.SilhouetteKind) *session {
	return &session{
		state:          domain.DigStateIdle,
		requiredClicks: requiredClicks,
		grid:           newGrid(),
		silhouette:     silhouette,
	}
}

// pruneEffects drops effect tokens older than the TTL.
func (s *session) pruneEffects(now time.Time, ttl time.Duration) {
	kept := s.effects[:0]
	for _, e := range s.effects {
		if now.Sub(e.CreatedAt) < ttl {
			kept = append(kept, e)
		}
	}
	s.effects = kept
}

// snapshot builds the client-facing view of this session.
func (s *session) snapshot(allowanceRemaining, bonusDigs int, activeBoost *domain.BoostEffect) domain.DigSessionView {
	effects := make([]domain.ClickEffect, len(s.effects))
	copy(effects, s.effects)

	return domain.DigSessionView{
		State:              s.state,
		ClickCount:         s.clicks,
		RequiredClicks:     s.requiredClicks,
		Progress:           s.progress,
		ExcavatedCells:     s.grid.cells(),
		Silhouette:         s.silhouette,
		SilhouetteCells:    PatternFor(s.silhouette),
		Result:             s.result,
		Effects:            effects,
		AllowanceRemaining: allowanceRemaining,
		BonusDigsRemaining: bonusDigs,
		ActiveBoost:        activeBoost,
	}
}
