package memory

import (
	"context"
	"fmt"

	"github.com/hyoga-dev/PermafrostDig_Go/internal/logger"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/storage"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/utils"

	"github.com/hyoga-dev/PermafrostDig_Go/internal/domain"
)

// seedIfEmpty populates the catalog from the seed config on a fresh save.
func (s *service) seedIfEmpty(ctx context.Context, seedPath string) error {
	var existing []domain.Memory
	found, err := s.store.Get(ctx, storage.KeyMemories, &existing)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextLoadMemories, err)
	}
	if found && len(existing) > 0 {
		return nil
	}

	var seeds []domain.Memory
	if err := utils.LoadJSON(seedPath, &seeds); err != nil {
		return fmt.Errorf("%s: %w", ErrContextSeedMemories, err)
	}

	if err := s.store.Put(ctx, storage.KeyMemories, seeds); err != nil {
		return fmt.Errorf("%s: %w", ErrContextSeedMemories, err)
	}

	logger.FromContext(ctx).Info(LogMsgCatalogSeeded, "count", len(seeds))
	return nil
}
