package loot

import (
	"math"
	"math/rand"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyoga-dev/PermafrostDig_Go/internal/domain"
)

func testEntries() []domain.LootEntry {
	return []domain.LootEntry{
		{Type: domain.ItemTypeGem, Name: "サファイア", Rarity: domain.RarityCommon, Weight: 3},
		{Type: domain.ItemTypeBarrel, Name: "オーク樽", Rarity: domain.RarityRare, Weight: 1},
	}
}

func TestNewTableRejectsNonPositiveWeight(t *testing.T) {
	_, err := NewTable([]domain.LootEntry{
		{Name: "broken", Weight: 0},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidWeight)
}

func TestNewTableTotalWeight(t *testing.T) {
	table, err := NewTable(testEntries())
	require.NoError(t, err)
	assert.InDelta(t, 4.0, table.TotalWeight(), 1e-9)
	assert.Equal(t, 2, table.Len())
}

func TestSampleEdgeDraws(t *testing.T) {
	table, err := NewTable(testEntries())
	require.NoError(t, err)

	// Smallest possible draw lands on the first entry
	first, ok := table.Sample(0)
	require.True(t, ok)
	assert.Equal(t, "サファイア", first.Name)

	// A draw just under the total lands on the last entry
	last, ok := table.Sample(table.TotalWeight() - 1e-9)
	require.True(t, ok)
	assert.Equal(t, "オーク樽", last.Name)
}

func TestSampleEmptyTable(t *testing.T) {
	table, err := NewTable(nil)
	require.NoError(t, err)

	_, ok := table.Sample(0)
	assert.False(t, ok)

	_, ok = table.Draw(func() float64 { return 0.5 })
	assert.False(t, ok)
}

func TestDrawWeightedSplit(t *testing.T) {
	table, err := NewTable(testEntries())
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	const iterations = 100000

	counts := map[string]int{}
	for i := 0; i < iterations; i++ {
		entry, ok := table.Draw(rng.Float64)
		require.True(t, ok)
		counts[entry.Name]++
	}

	// Weights 3:1 over a total of 4
	gotRatio := float64(counts["サファイア"]) / float64(iterations)
	assert.InDelta(t, 0.75, gotRatio, 0.01)
	assert.Equal(t, iterations, counts["サファイア"]+counts["オーク樽"])
}

func TestDrawCoversWholeCatalog(t *testing.T) {
	table, err := NewTable(testEntries())
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		entry, ok := table.Draw(rng.Float64)
		require.True(t, ok)
		seen[entry.Name] = true
	}
	assert.Len(t, seen, table.Len())
}

func TestLoadTableFromFile(t *testing.T) {
	file, err := os.CreateTemp(t.TempDir(), "loot*.json")
	require.NoError(t, err)

	_, err = file.WriteString(`[
		{"type":"gem","name":"サファイア","description":"凍土に眠る青い宝石","rarity":"common","image":"","weight":12},
		{"type":"barrel","name":"伝説の醸造樽","description":"神々が使った究極の樽","rarity":"legendary","image":"","weight":0.2}
	]`)
	require.NoError(t, err)
	require.NoError(t, file.Close())

	table, err := LoadTable(file.Name())
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
	assert.InDelta(t, 12.2, table.TotalWeight(), 1e-9)

	entry, ok := table.Sample(12.1)
	require.True(t, ok)
	assert.Equal(t, domain.RarityLegendary, entry.Rarity)
	assert.False(t, math.IsNaN(table.TotalWeight()))
}

func TestLoadTableMissingFile(t *testing.T) {
	_, err := LoadTable("does/not/exist.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrContextLoadTable)
}
