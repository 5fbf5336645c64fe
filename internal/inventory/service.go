package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hyoga-dev/PermafrostDig_Go/internal/domain"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/event"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/logger"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/metrics"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/storage"
)

// DiscoveredMemories is the slice of the memory service the inventory
// needs for achievement progress.
type DiscoveredMemories interface {
	ListDiscovered(ctx context.Context) ([]domain.Memory, error)
}

// Service is the collection ledger: discovered items, the lifetime dig
// counter and the achievement board derived from both.
type Service interface {
	RecordDig(ctx context.Context) (int, error)
	RecordDiscovery(ctx context.Context, entry domain.LootEntry) (domain.DiscoveredItem, error)
	Items(ctx context.Context) ([]domain.DiscoveredItem, error)
	TotalDigs(ctx context.Context) (int, error)
	Achievements(ctx context.Context) ([]domain.Achievement, error)
}

type service struct {
	store    storage.Store
	bus      event.Bus
	memories DiscoveredMemories
	defs     []domain.Achievement
	now      func() time.Time
}

// NewService creates a new inventory service. Achievement definitions
// are loaded once from config; progress is recomputed on every change.
func NewService(store storage.Store, bus event.Bus, memories DiscoveredMemories, achievementsPath string) (Service, error) {
	defs, err := loadDefinitions(achievementsPath)
	if err != nil {
		return nil, err
	}
	return &service{
		store:    store,
		bus:      bus,
		memories: memories,
		defs:     defs,
		now:      time.Now,
	}, nil
}

// RecordDig bumps the lifetime dig counter. Called once per non-empty
// dig resolution, item and memory alike.
func (s *service) RecordDig(ctx context.Context) (int, error) {
	total, err := s.TotalDigs(ctx)
	if err != nil {
		return 0, err
	}
	total++
	if err := s.store.Put(ctx, storage.KeyTotalDigs, total); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextSaveTotalDigs, err)
	}
	if _, err := s.recompute(ctx); err != nil {
		return 0, err
	}
	return total, nil
}

// RecordDiscovery stamps a loot entry into a concrete discovered item
// and appends it to the collection.
func (s *service) RecordDiscovery(ctx context.Context, entry domain.LootEntry) (domain.DiscoveredItem, error) {
	item := domain.DiscoveredItem{
		ID:           uuid.New(),
		Type:         entry.Type,
		Name:         entry.Name,
		Description:  entry.Description,
		Rarity:       entry.Rarity,
		Image:        entry.Image,
		DiscoveredAt: s.now(),
	}

	items, err := s.Items(ctx)
	if err != nil {
		return domain.DiscoveredItem{}, err
	}
	items = append(items, item)
	if err := s.store.Put(ctx, storage.KeyItems, items); err != nil {
		return domain.DiscoveredItem{}, fmt.Errorf("%s: %w", ErrContextSaveItems, err)
	}

	if _, err := s.recompute(ctx); err != nil {
		return domain.DiscoveredItem{}, err
	}

	metrics.ItemsDiscovered.WithLabelValues(string(item.Type), string(item.Rarity)).Inc()
	if s.bus != nil {
		if err := s.bus.Publish(ctx, event.NewItemDiscoveredEvent(item)); err != nil {
			logger.FromContext(ctx).Warn(LogMsgPublishFailed, "error", err)
		}
	}
	logger.FromContext(ctx).Info(LogMsgItemDiscovered, "name", item.Name, "rarity", item.Rarity)
	return item, nil
}

func (s *service) Items(ctx context.Context) ([]domain.DiscoveredItem, error) {
	var items []domain.DiscoveredItem
	if _, err := s.store.Get(ctx, storage.KeyItems, &items); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextLoadItems, err)
	}
	return items, nil
}

func (s *service) TotalDigs(ctx context.Context) (int, error) {
	var total int
	if _, err := s.store.Get(ctx, storage.KeyTotalDigs, &total); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextLoadTotalDigs, err)
	}
	return total, nil
}

// Achievements returns the persisted board, computing it fresh when
// nothing has been recorded yet.
func (s *service) Achievements(ctx context.Context) ([]domain.Achievement, error) {
	var board []domain.Achievement
	found, err := s.store.Get(ctx, storage.KeyAchievements, &board)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextLoadAchievements, err)
	}
	if !found || len(board) == 0 {
		return s.recompute(ctx)
	}
	return board, nil
}
