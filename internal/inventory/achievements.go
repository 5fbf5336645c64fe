package inventory

import (
	"context"
	"fmt"

	"github.com/hyoga-dev/PermafrostDig_Go/internal/domain"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/storage"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/utils"
)

func loadDefinitions(path string) ([]domain.Achievement, error) {
	var defs []domain.Achievement
	if err := utils.LoadJSON(path, &defs); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextLoadDefinitions, err)
	}
	for _, def := range defs {
		if def.Requirement <= 0 {
			return nil, fmt.Errorf("%s: %w: %s", ErrContextLoadDefinitions, domain.ErrInvalidInput, def.ID)
		}
	}
	return defs, nil
}

// recompute rebuilds every achievement's progress from the current
// counters and persists the board.
func (s *service) recompute(ctx context.Context) ([]domain.Achievement, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return nil, err
	}
	totalDigs, err := s.TotalDigs(ctx)
	if err != nil {
		return nil, err
	}

	memoryCount := 0
	if s.memories != nil {
		discovered, err := s.memories.ListDiscovered(ctx)
		if err != nil {
			return nil, err
		}
		memoryCount = len(discovered)
	}

	byType := make(map[domain.ItemType]int)
	legendary := 0
	for _, item := range items {
		byType[item.Type]++
		if item.Rarity == domain.RarityLegendary {
			legendary++
		}
	}

	counters := map[domain.AchievementType]int{
		domain.AchievementDigCount:       totalDigs,
		domain.AchievementGemCount:       byType[domain.ItemTypeGem],
		domain.AchievementBarrelCount:    byType[domain.ItemTypeBarrel],
		domain.AchievementBottleCount:    byType[domain.ItemTypeBottle],
		domain.AchievementGlassCount:     byType[domain.ItemTypeGlass],
		domain.AchievementMemoryCount:    memoryCount,
		domain.AchievementLegendaryCount: legendary,
	}

	board := make([]domain.Achievement, len(s.defs))
	for i, def := range s.defs {
		count := counters[def.Type]
		def.Progress = min(count, def.Requirement)
		def.Completed = count >= def.Requirement
		board[i] = def
	}

	if err := s.store.Put(ctx, storage.KeyAchievements, board); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextSaveAchievements, err)
	}
	return board, nil
}
