package dig

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hyoga-dev/PermafrostDig_Go/internal/boost"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/domain"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/event"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/logger"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/loot"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/metrics"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/utils"
)

// MemoryCollection is the slice of the memory service the dig engine needs.
type MemoryCollection interface {
	ListUndiscovered(ctx context.Context) ([]domain.Memory, error)
	MarkDiscovered(ctx context.Context, id uuid.UUID) (domain.Memory, error)
}

// InventoryLedger records resolved digs and discovered items.
type InventoryLedger interface {
	RecordDig(ctx context.Context) (int, error)
	RecordDiscovery(ctx context.Context, entry domain.LootEntry) (domain.DiscoveredItem, error)
}

// AllowanceTracker exposes the daily dig budget.
type AllowanceTracker interface {
	Remaining(ctx context.Context) (int, error)
	Consume(ctx context.Context) (int, error)
}

// Service drives the dig session state machine:
// idle -> accumulating -> resolving -> revealing -> resolved -> idle.
type Service interface {
	StartSession(ctx context.Context) (domain.DigSessionView, error)
	Excavate(ctx context.Context, cell domain.Cell) (domain.DigSessionView, error)
	Session(ctx context.Context) (domain.DigSessionView, error)
	Acknowledge(ctx context.Context) (domain.DigSessionView, error)
	Shutdown()
}

// Config carries the tunables and injected sources for the dig engine.
// Zero values fall back to production defaults.
type Config struct {
	Rand         func() float64
	Now          func() time.Time
	ProgressStep int
	TickInterval time.Duration
	RevealDelay  time.Duration
	EffectTTL    time.Duration
}

func (c Config) withDefaults() Config {
	if c.Rand == nil {
		c.Rand = utils.RandomFloat
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	if c.ProgressStep <= 0 {
		c.ProgressStep = DefaultProgressStep
	}
	if c.TickInterval <= 0 {
		c.TickInterval = DefaultTickInterval
	}
	if c.RevealDelay <= 0 {
		c.RevealDelay = DefaultRevealDelay
	}
	if c.EffectTTL <= 0 {
		c.EffectTTL = DefaultEffectTTL
	}
	return c
}

type service struct {
	mu sync.Mutex

	memories  MemoryCollection
	inventory InventoryLedger
	allowance AllowanceTracker
	boosts    *boost.Ledger
	table     *loot.Table
	bus       event.Bus
	cfg       Config

	sess *session
	// epoch invalidates in-flight timers whenever the session is
	// replaced or torn down.
	epoch uint64
}

// NewService creates a new dig service.
func NewService(memories MemoryCollection, inventory InventoryLedger, allowance AllowanceTracker, boosts *boost.Ledger, table *loot.Table, bus event.Bus, cfg Config) Service {
	return &service{
		memories:  memories,
		inventory: inventory,
		allowance: allowance,
		boosts:    boosts,
		table:     table,
		bus:       bus,
		cfg:       cfg.withDefaults(),
	}
}

// StartSession opens a dig session, seeding the silhouette with an
// independent roll. Starting while a session is open returns that
// session unchanged.
func (s *service) StartSession(ctx context.Context) (domain.DigSessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sess != nil {
		return s.view(ctx)
	}

	remaining, err := s.allowance.Remaining(ctx)
	if err != nil {
		return domain.DigSessionView{}, fmt.Errorf("%s: %w", ErrContextAllowance, err)
	}
	if remaining+s.boosts.BonusDigs() <= 0 {
		metrics.AllowanceExhausted.Inc()
		return domain.DigSessionView{}, domain.ErrAllowanceExhausted
	}

	s.sess = newSession(s.boosts.RequiredClicks(), s.rollSilhouette(ctx))
	metrics.DigSessionsStarted.Inc()
	logger.FromContext(ctx).Info(LogMsgSessionStarted,
		"required_clicks", s.sess.requiredClicks,
		"silhouette", s.sess.silhouette)
	return s.view(ctx)
}

// Excavate registers a click on a grid cell. Only a first-time
// excavation counts toward the threshold; clicking an already-dug cell
// is a no-op, and clicks after the threshold is reached are ignored.
func (s *service) Excavate(ctx context.Context, cell domain.Cell) (domain.DigSessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sess == nil {
		return domain.DigSessionView{}, domain.ErrNoActiveSession
	}
	if s.sess.state != domain.DigStateIdle && s.sess.state != domain.DigStateAccumulating {
		return s.view(ctx)
	}

	added, err := s.sess.grid.excavate(cell)
	if err != nil {
		return domain.DigSessionView{}, err
	}
	if !added {
		return s.view(ctx)
	}

	now := s.cfg.Now()
	s.sess.pruneEffects(now, s.cfg.EffectTTL)
	s.sess.effects = append(s.sess.effects, domain.ClickEffect{
		ID:        uuid.New(),
		Cell:      cell,
		CreatedAt: now,
	})

	s.sess.state = domain.DigStateAccumulating
	s.sess.clicks++
	if s.sess.clicks >= s.sess.requiredClicks {
		s.sess.state = domain.DigStateResolving
		logger.FromContext(ctx).Info(LogMsgThresholdReached, "clicks", s.sess.clicks)
		go s.progressLoop(s.epoch)
	}

	return s.view(ctx)
}

// Session returns the current session snapshot.
func (s *service) Session(ctx context.Context) (domain.DigSessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sess != nil {
		s.sess.pruneEffects(s.cfg.Now(), s.cfg.EffectTTL)
	}
	return s.view(ctx)
}

// Acknowledge settles a resolved dig and resets the board. A non-empty
// result spends a bonus dig first, the daily allowance otherwise, and a
// discovered item arms its rarity boost for the next dig. When no
// budget remains the session is torn down until the next reset.
func (s *service) Acknowledge(ctx context.Context) (domain.DigSessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sess == nil {
		return domain.DigSessionView{}, domain.ErrNoActiveSession
	}

	s.epoch++

	result := s.sess.result
	if result != nil && result.Kind != domain.ResultNothing {
		if s.boosts.ConsumeBonusDig() {
			metrics.BonusDigsConsumed.Inc()
		} else if _, err := s.allowance.Consume(ctx); err != nil {
			return domain.DigSessionView{}, fmt.Errorf("%s: %w", ErrContextAllowance, err)
		}

		if result.Kind == domain.ResultItem && result.Item != nil {
			if effect, armed := s.boosts.Arm(result.Item.Rarity); armed {
				metrics.BoostsArmed.WithLabelValues(string(effect.Rarity)).Inc()
				s.publish(ctx, event.NewBoostArmedEvent(effect))
				logger.FromContext(ctx).Info(LogMsgBoostArmed,
					"rarity", effect.Rarity,
					"required_clicks", effect.RequiredClicks,
					"bonus_digs", effect.BonusDigs)
			}
		}
	}
	s.boosts.ClearSpent()

	remaining, err := s.allowance.Remaining(ctx)
	if err != nil {
		return domain.DigSessionView{}, fmt.Errorf("%s: %w", ErrContextAllowance, err)
	}

	if remaining+s.boosts.BonusDigs() <= 0 {
		s.sess = nil
		metrics.AllowanceExhausted.Inc()
		logger.FromContext(ctx).Info(LogMsgSessionClosed, "reason", "allowance exhausted")
		return s.view(ctx)
	}

	s.sess = newSession(s.boosts.RequiredClicks(), s.rollSilhouette(ctx))
	return s.view(ctx)
}

// Shutdown cancels any in-flight resolution timers.
func (s *service) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch++
}

// progressLoop advances the resolving bar until it fills, then hands
// off to the reveal timer. Runs off the request goroutine.
func (s *service) progressLoop(epoch uint64) {
	ticker := time.NewTicker(s.cfg.TickInterval)
	defer ticker.Stop()
	for range ticker.C {
		if !s.tick(epoch) {
			return
		}
	}
}

// tick advances progress by one step. Returns false when the loop
// should stop, either because the bar filled or the session moved on.
func (s *service) tick(epoch uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.epoch != epoch || s.sess == nil || s.sess.state != domain.DigStateResolving {
		return false
	}

	s.sess.progress += s.cfg.ProgressStep
	if s.sess.progress < ProgressComplete {
		return true
	}

	s.sess.progress = ProgressComplete
	s.sess.state = domain.DigStateRevealing
	time.AfterFunc(s.cfg.RevealDelay, func() { s.reveal(epoch) })
	return false
}

// reveal rolls the dig outcome and applies it to the ledgers. The roll
// is independent of the silhouette seed roll.
func (s *service) reveal(epoch uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.epoch != epoch || s.sess == nil || s.sess.state != domain.DigStateRevealing {
		return
	}

	ctx := context.Background()
	result := s.resolve(ctx)
	s.sess.result = &result
	s.sess.state = domain.DigStateResolved

	metrics.DigOutcomes.WithLabelValues(string(result.Kind)).Inc()
	s.publish(ctx, event.NewDigResolvedEvent(result.Kind))
	logger.FromContext(ctx).Info(LogMsgDigResolved, "kind", result.Kind)
}

// resolve rolls and records the outcome. Ledger failures degrade to an
// empty result so the session never wedges mid-reveal.
func (s *service) resolve(ctx context.Context) domain.DigResult {
	log := logger.FromContext(ctx)

	undiscovered, err := s.memories.ListUndiscovered(ctx)
	if err != nil {
		log.Error(LogMsgResolveFailed, "error", fmt.Errorf("%s: %w", ErrContextLoadUndiscovered, err))
		return domain.DigResult{Kind: domain.ResultNothing}
	}

	o := resolveOutcome(s.cfg.Rand, s.table, undiscovered)
	switch o.kind {
	case domain.ResultMemory:
		found, err := s.memories.MarkDiscovered(ctx, o.memory.ID)
		if err != nil {
			log.Error(LogMsgResolveFailed, "error", fmt.Errorf("%s: %w", ErrContextMarkDiscovered, err))
			return domain.DigResult{Kind: domain.ResultNothing}
		}
		if _, err := s.inventory.RecordDig(ctx); err != nil {
			log.Warn(LogMsgResolveFailed, "error", fmt.Errorf("%s: %w", ErrContextRecordDig, err))
		}
		return domain.DigResult{Kind: domain.ResultMemory, Memory: &found}

	case domain.ResultItem:
		item, err := s.inventory.RecordDiscovery(ctx, o.entry)
		if err != nil {
			log.Error(LogMsgResolveFailed, "error", fmt.Errorf("%s: %w", ErrContextRecordDiscovery, err))
			return domain.DigResult{Kind: domain.ResultNothing}
		}
		if _, err := s.inventory.RecordDig(ctx); err != nil {
			log.Warn(LogMsgResolveFailed, "error", fmt.Errorf("%s: %w", ErrContextRecordDig, err))
		}
		return domain.DigResult{Kind: domain.ResultItem, Item: &item}

	default:
		return domain.DigResult{Kind: domain.ResultNothing}
	}
}

// rollSilhouette seeds the under-ice pattern with its own outcome roll.
// Nothing is recorded; the real reward is rolled at reveal time.
func (s *service) rollSilhouette(ctx context.Context) domain.SilhouetteKind {
	undiscovered, err := s.memories.ListUndiscovered(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgResolveFailed, "error", err)
		undiscovered = nil
	}
	return silhouetteFor(resolveOutcome(s.cfg.Rand, s.table, undiscovered))
}

// view builds the snapshot for the current state. Callers hold the lock.
func (s *service) view(ctx context.Context) (domain.DigSessionView, error) {
	remaining, err := s.allowance.Remaining(ctx)
	if err != nil {
		return domain.DigSessionView{}, fmt.Errorf("%s: %w", ErrContextAllowance, err)
	}
	bonus := s.boosts.BonusDigs()

	if s.sess == nil {
		return domain.DigSessionView{
			State:              domain.DigStateIdle,
			RequiredClicks:     s.boosts.RequiredClicks(),
			Silhouette:         domain.SilhouetteNothing,
			SilhouetteCells:    []domain.Cell{},
			ExcavatedCells:     []domain.Cell{},
			AllowanceRemaining: remaining,
			BonusDigsRemaining: bonus,
			ActiveBoost:        s.boosts.Active(),
			Exhausted:          remaining+bonus <= 0,
		}, nil
	}

	return s.sess.snapshot(remaining, bonus, s.boosts.Active()), nil
}

func (s *service) publish(ctx context.Context, e event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, e); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "error", err)
	}
}
