package profile

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyoga-dev/PermafrostDig_Go/internal/domain"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/storage"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir(), 16, time.Minute)
	require.NoError(t, err)
	return NewService(store)
}

func TestGetDefaultsToGuest(t *testing.T) {
	svc := newTestService(t)

	p, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultUsername, p.Username)
}

func TestUpdateRoundtrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	saved, err := svc.Update(ctx, domain.Profile{
		Username: "氷の旅人",
		Bio:      "永久凍土を掘り続ける",
	})
	require.NoError(t, err)
	assert.Equal(t, "氷の旅人", saved.Username)

	loaded, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestUpdateEmptyUsernameFallsBackToGuest(t *testing.T) {
	svc := newTestService(t)

	saved, err := svc.Update(context.Background(), domain.Profile{Username: "   "})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultUsername, saved.Username)
}

func TestUpdateRejectsOversizedFields(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, domain.Profile{Username: strings.Repeat("あ", MaxUsernameLength+1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Update(ctx, domain.Profile{Username: "ゲスト", Bio: strings.Repeat("雪", MaxBioLength+1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
