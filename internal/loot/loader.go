package loot

import (
	"fmt"

	"github.com/hyoga-dev/PermafrostDig_Go/internal/domain"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/utils"
)

// LoadTable reads the loot catalog from a JSON config file.
func LoadTable(path string) (*Table, error) {
	var entries []domain.LootEntry
	if err := utils.LoadJSON(path, &entries); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextLoadTable, err)
	}

	table, err := NewTable(entries)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextLoadTable, err)
	}
	return table, nil
}
