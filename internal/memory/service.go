package memory

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

// Service manages the memory catalog: sealing new memories, the
// discovered feed, comments and search. The full catalog and the
// discovered feed are stored as two separate ordered sequences;
// a memory is undiscovered while it only exists in the catalog.
type Service interface {
	Create(ctx context.Context, photo, text, author string) (domain.Memory, error)
	ListDiscovered(ctx context.Context) ([]domain.Memory, error)
	ListUndiscovered(ctx context.Context) ([]domain.Memory, error)
	MarkDiscovered(ctx context.Context, id uuid.UUID) (domain.Memory, error)
	AddComment(ctx context.Context, memoryID uuid.UUID, author, text string) (domain.Comment, error)
	Search(ctx context.Context, query string) ([]domain.Memory, error)
}

type service struct {
	store storage.Store
	bus   event.Bus
	now   func() time.Time
}

// NewService creates a new memory service. When the catalog is empty it
// is seeded from the config file so a fresh save has something to dig up.
func NewService(store storage.Store, bus event.Bus, seedPath string) (Service, error) {
	svc := &service{
		store: store,
		bus:   bus,
		now:   time.Now,
	}

	if err := svc.seedIfEmpty(context.Background(), seedPath); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *service) loadAll(ctx context.Context) ([]domain.Memory, error) {
	var memories []domain.Memory
	if _, err := s.store.Get(ctx, storage.KeyMemories, &memories); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextLoadMemories, err)
	}
	return memories, nil
}

func (s *service) loadDiscovered(ctx context.Context) ([]domain.Memory, error) {
	var discovered []domain.Memory
	if _, err := s.store.Get(ctx, storage.KeyDiscoveredMemories, &discovered); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextLoadMemories, err)
	}
	return discovered, nil
}

// Create seals a new memory. Self-authored memories are discovered
// immediately so they show up on the home feed.
func (s *service) Create(ctx context.Context, photo, text, author string) (domain.Memory, error) {
	memory := domain.Memory{
		ID:         uuid.New(),
		Photo:      photo,
		Text:       text,
		Author:     author,
		CreatedAt:  s.now(),
		Discovered: true,
		Comments:   []domain.Comment{},
	}

	memories, err := s.loadAll(ctx)
	if err != nil {
		return domain.Memory{}, err
	}
	memories = append(memories, memory)
	if err := s.store.Put(ctx, storage.KeyMemories, memories); err != nil {
		return domain.Memory{}, fmt.Errorf("%s: %w", ErrContextSaveMemories, err)
	}

	discovered, err := s.loadDiscovered(ctx)
	if err != nil {
		return domain.Memory{}, err
	}
	discovered = append(discovered, memory)
	if err := s.store.Put(ctx, storage.KeyDiscoveredMemories, discovered); err != nil {
		return domain.Memory{}, fmt.Errorf("%s: %w", ErrContextSaveMemories, err)
	}

	metrics.MemoriesCreated.Inc()
	logger.FromContext(ctx).Info(LogMsgMemorySealed, "memory_id", memory.ID, "author", author)
	return memory, nil
}

func (s *service) ListDiscovered(ctx context.Context) ([]domain.Memory, error) {
	return s.loadDiscovered(ctx)
}

// ListUndiscovered returns catalog memories that have not been dug up yet.
func (s *service) ListUndiscovered(ctx context.Context) ([]domain.Memory, error) {
	memories, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	discovered, err := s.loadDiscovered(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{}, len(discovered))
	for _, m := range discovered {
		seen[m.ID] = struct{}{}
	}

	var undiscovered []domain.Memory
	for _, m := range memories {
		if _, ok := seen[m.ID]; !ok {
			undiscovered = append(undiscovered, m)
		}
	}
	return undiscovered, nil
}

// MarkDiscovered moves a catalog memory onto the discovered feed.
// Already-discovered memories are returned unchanged.
func (s *service) MarkDiscovered(ctx context.Context, id uuid.UUID) (domain.Memory, error) {
	discovered, err := s.loadDiscovered(ctx)
	if err != nil {
		return domain.Memory{}, err
	}
	for _, m := range discovered {
		if m.ID == id {
			return m, nil
		}
	}

	memories, err := s.loadAll(ctx)
	if err != nil {
		return domain.Memory{}, err
	}

	for _, m := range memories {
		if m.ID != id {
			continue
		}

		m.Discovered = true
		discovered = append(discovered, m)
		if err := s.store.Put(ctx, storage.KeyDiscoveredMemories, discovered); err != nil {
			return domain.Memory{}, fmt.Errorf("%s: %w", ErrContextSaveMemories, err)
		}

		metrics.MemoriesDiscovered.Inc()
		if s.bus != nil {
			if err := s.bus.Publish(ctx, event.NewMemoryDiscoveredEvent(m)); err != nil {
				logger.FromContext(ctx).Warn(LogMsgPublishFailed, "error", err)
			}
		}
		return m, nil
	}

	return domain.Memory{}, fmt.Errorf("%w: %s", domain.ErrMemoryNotFound, id)
}

// AddComment appends a comment to a discovered memory.
func (s *service) AddComment(ctx context.Context, memoryID uuid.UUID, author, text string) (domain.Comment, error) {
	discovered, err := s.loadDiscovered(ctx)
	if err != nil {
		return domain.Comment{}, err
	}

	comment := domain.Comment{
		ID:        uuid.New(),
		Author:    author,
		Text:      text,
		CreatedAt: s.now(),
	}

	for i, m := range discovered {
		if m.ID != memoryID {
			continue
		}
		discovered[i].Comments = append(discovered[i].Comments, comment)
		if err := s.store.Put(ctx, storage.KeyDiscoveredMemories, discovered); err != nil {
			return domain.Comment{}, fmt.Errorf("%s: %w", ErrContextSaveMemories, err)
		}
		return comment, nil
	}

	// Distinguish "sealed but not yet dug up" from "does not exist"
	memories, err := s.loadAll(ctx)
	if err != nil {
		return domain.Comment{}, err
	}
	for _, m := range memories {
		if m.ID == memoryID {
			return domain.Comment{}, fmt.Errorf("%w: %s", domain.ErrMemoryNotDiscovered, memoryID)
		}
	}
	return domain.Comment{}, fmt.Errorf("%w: %s", domain.ErrMemoryNotFound, memoryID)
}

// Search matches discovered memories by caption or author, using
// NFKC-normalized case-folded comparison so full-width and half-width
// text match each other.
func (s *service) Search(ctx context.Context, query string) ([]domain.Memory, error) {
	discovered, err := s.loadDiscovered(ctx)
	if err != nil {
		return nil, err
	}

	needle := normalizeText(query)
	if needle == "" {
		return discovered, nil
	}

	var matches []domain.Memory
	for _, m := range discovered {
		if containsNormalized(m.Text, needle) || containsNormalized(m.Author, needle) {
			matches = append(matches, m)
		}
	}
	return matches, nil
}
