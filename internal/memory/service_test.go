package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyoga-dev/PermafrostDig_Go/internal/domain"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/event"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/storage"
)

const testSeedJSON = `[
  {
    "id": "7b6d9a5e-1f7c-4b7e-9a4e-0d3f2c1b5a01",
    "photo": "https://example.com/ice.jpg",
    "text": "凍てつく山頂で見た氷の結晶",
    "author": "氷の旅人",
    "created_at": "2024-01-15T00:00:00Z",
    "discovered": false,
    "comments": []
  },
  {
    "id": "7b6d9a5e-1f7c-4b7e-9a4e-0d3f2c1b5a02",
    "photo": "https://example.com/aurora.jpg",
    "text": "オーロラが輝く夜の記憶",
    "author": "星の観測者",
    "created_at": "2024-02-20T00:00:00Z",
    "discovered": false,
    "comments": []
  }
]`

func writeSeedFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(testSeedJSON), 0o644))
	return path
}

func newTestService(t *testing.T) (*service, event.Bus) {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir(), 16, time.Minute)
	require.NoError(t, err)
	bus := event.NewMemoryBus()

	svc := &service{
		store: store,
		bus:   bus,
		now:   func() time.Time { return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC) },
	}
	require.NoError(t, svc.seedIfEmpty(context.Background(), writeSeedFile(t)))
	return svc, bus
}

func TestSeedPopulatesCatalogAsUndiscovered(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	undiscovered, err := svc.ListUndiscovered(ctx)
	require.NoError(t, err)
	assert.Len(t, undiscovered, 2)

	discovered, err := svc.ListDiscovered(ctx)
	require.NoError(t, err)
	assert.Empty(t, discovered)
}

func TestSeedSkippedWhenCatalogExists(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// Re-seeding with a different file must not clobber the catalog
	require.NoError(t, svc.seedIfEmpty(ctx, "does-not-exist.json"))

	undiscovered, err := svc.ListUndiscovered(ctx)
	require.NoError(t, err)
	assert.Len(t, undiscovered, 2)
}

func TestCreateIsDiscoveredImmediately(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "https://example.com/new.jpg", "雪原の足跡", "ゲスト")
	require.NoError(t, err)
	assert.True(t, created.Discovered)
	assert.NotEqual(t, uuid.Nil, created.ID)

	discovered, err := svc.ListDiscovered(ctx)
	require.NoError(t, err)
	require.Len(t, discovered, 1)
	assert.Equal(t, created.ID, discovered[0].ID)

	// Self-authored memories never sit in the undiscovered pool
	undiscovered, err := svc.ListUndiscovered(ctx)
	require.NoError(t, err)
	assert.Len(t, undiscovered, 2)
}

func TestMarkDiscoveredMovesToFeed(t *testing.T) {
	svc, bus := newTestService(t)
	ctx := context.Background()

	var published []event.MemoryDiscoveredPayloadV1
	bus.Subscribe(event.MemoryDiscovered, func(ctx context.Context, e event.Event) error {
		published = append(published, e.Payload.(event.MemoryDiscoveredPayloadV1))
		return nil
	})

	undiscovered, err := svc.ListUndiscovered(ctx)
	require.NoError(t, err)
	target := undiscovered[0]

	found, err := svc.MarkDiscovered(ctx, target.ID)
	require.NoError(t, err)
	assert.True(t, found.Discovered)
	assert.Equal(t, target.Author, found.Author)

	remaining, err := svc.ListUndiscovered(ctx)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)

	require.Len(t, published, 1)
	assert.Equal(t, target.ID.String(), published[0].MemoryID)
}

func TestMarkDiscoveredIsIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	undiscovered, err := svc.ListUndiscovered(ctx)
	require.NoError(t, err)
	target := undiscovered[0]

	first, err := svc.MarkDiscovered(ctx, target.ID)
	require.NoError(t, err)
	second, err := svc.MarkDiscovered(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	discovered, err := svc.ListDiscovered(ctx)
	require.NoError(t, err)
	assert.Len(t, discovered, 1)
}

func TestMarkDiscoveredUnknownID(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.MarkDiscovered(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrMemoryNotFound)
}

func TestAddComment(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	undiscovered, err := svc.ListUndiscovered(ctx)
	require.NoError(t, err)
	target := undiscovered[0]
	_, err = svc.MarkDiscovered(ctx, target.ID)
	require.NoError(t, err)

	comment, err := svc.AddComment(ctx, target.ID, "ゲスト", "すごい発見！")
	require.NoError(t, err)
	assert.Equal(t, "すごい発見！", comment.Text)

	discovered, err := svc.ListDiscovered(ctx)
	require.NoError(t, err)
	require.Len(t, discovered, 1)
	require.Len(t, discovered[0].Comments, 1)
	assert.Equal(t, comment.ID, discovered[0].Comments[0].ID)
}

func TestAddCommentOnUndiscoveredMemory(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	undiscovered, err := svc.ListUndiscovered(ctx)
	require.NoError(t, err)

	_, err = svc.AddComment(ctx, undiscovered[0].ID, "ゲスト", "早すぎる")
	assert.ErrorIs(t, err, domain.ErrMemoryNotDiscovered)
}

func TestAddCommentUnknownMemory(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AddComment(context.Background(), uuid.New(), "ゲスト", "どこ？")
	assert.ErrorIs(t, err, domain.ErrMemoryNotFound)
}

func TestSearchMatchesTextAndAuthor(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	undiscovered, err := svc.ListUndiscovered(ctx)
	require.NoError(t, err)
	for _, m := range undiscovered {
		_, err := svc.MarkDiscovered(ctx, m.ID)
		require.NoError(t, err)
	}

	byText, err := svc.Search(ctx, "オーロラ")
	require.NoError(t, err)
	require.Len(t, byText, 1)
	assert.Equal(t, "星の観測者", byText[0].Author)

	byAuthor, err := svc.Search(ctx, "旅人")
	require.NoError(t, err)
	require.Len(t, byAuthor, 1)
	assert.Equal(t, "氷の旅人", byAuthor[0].Author)
}

func TestSearchNormalizesWidthAndCase(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "https://example.com/beer.jpg", "Frozen ＢＥＥＲ cellar", "ゲスト")
	require.NoError(t, err)

	// Half-width lowercase query matches the full-width uppercase caption
	matches, err := svc.Search(ctx, "beer")
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	// Half-width katakana matches full-width katakana
	_, err = svc.Create(ctx, "https://example.com/k.jpg", "ｱｲｽﾋﾞｰﾙの記憶", "ゲスト")
	require.NoError(t, err)
	matches, err = svc.Search(ctx, "アイスビール")
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestSearchEmptyQueryReturnsAllDiscovered(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "https://example.com/a.jpg", "ひとつめ", "ゲスト")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "https://example.com/b.jpg", "ふたつめ", "ゲスト")
	require.NoError(t, err)

	matches, err := svc.Search(ctx, "   ")
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}
