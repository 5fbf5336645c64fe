package loot

import (
	"math/rand"
	"testing"

	"github.com/hyoga-dev/PermafrostDig_Go/internal/domain"
)

func BenchmarkDraw(b *testing.B) {
	entries := []domain.LootEntry{
		{Type: domain.ItemTypeGem, Name: "a", Weight: 12},
		{Type: domain.ItemTypeGem, Name: "b", Weight: 8},
		{Type: domain.ItemTypeGem, Name: "c", Weight: 5},
		{Type: domain.ItemTypeBarrel, Name: "d", Weight: 3},
		{Type: domain.ItemTypeBarrel, Name: "e", Weight: 1},
		{Type: domain.ItemTypeBottle, Name: "f", Weight: 3},
		{Type: domain.ItemTypeBottle, Name: "g", Weight: 1},
		{Type: domain.ItemTypeGlass, Name: "h", Weight: 2},
		{Type: domain.ItemTypeGlass, Name: "i", Weight: 0.5},
		{Type: domain.ItemTypeGem, Name: "j", Weight: 0.2},
	}
	table, err := NewTable(entries)
	if err != nil {
		b.Fatal(err)
	}

	rng := rand.New(rand.NewSource(42))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := table.Draw(rng.Float64); !ok {
			b.Fatal("draw missed")
		}
	}
}
