package allowance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyoga-dev/PermafrostDig_Go/internal/domain"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/event"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/storage"
)

func newTestService(t *testing.T, now time.Time) (*service, event.Bus) {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir(), 16, time.Minute)
	require.NoError(t, err)
	bus := event.NewMemoryBus()
	return &service{
		store: store,
		bus:   bus,
		now:   func() time.Time { return now },
	}, bus
}

func TestRemainingFreshSave(t *testing.T) {
	svc, _ := newTestService(t, time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local))

	remaining, err := svc.Remaining(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DailyAllowanceReset, remaining)
}

func TestConsumeDecrementsAndFloorsAtZero(t *testing.T) {
	svc, _ := newTestService(t, time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local))
	ctx := context.Background()

	for want := domain.DailyAllowanceReset - 1; want >= 0; want-- {
		got, err := svc.Consume(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	// Consuming past zero stays at zero
	got, err := svc.Consume(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestDayRolloverRestoresBudget(t *testing.T) {
	day1 := time.Date(2026, 9, 1, 23, 0, 0, 0, time.Local)
	svc, _ := newTestService(t, day1)
	ctx := context.Background()

	_, err := svc.Consume(ctx)
	require.NoError(t, err)
	_, err = svc.Consume(ctx)
	require.NoError(t, err)

	// Next calendar day: the allowance rolls over on first access
	svc.now = func() time.Time { return day1.Add(2 * time.Hour) }

	remaining, err := svc.Remaining(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DailyAllowanceReset, remaining)
}

func TestSameDayLoadDoesNotReset(t *testing.T) {
	svc, _ := newTestService(t, time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local))
	ctx := context.Background()

	_, err := svc.Consume(ctx)
	require.NoError(t, err)

	remaining, err := svc.Remaining(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DailyAllowanceReset-1, remaining)
}

func TestResetIsIdempotent(t *testing.T) {
	svc, bus := newTestService(t, time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local))
	ctx := context.Background()

	var resets []event.AllowanceResetPayloadV1
	bus.Subscribe(event.AllowanceReset, func(ctx context.Context, e event.Event) error {
		resets = append(resets, e.Payload.(event.AllowanceResetPayloadV1))
		return nil
	})

	first, err := svc.Reset(ctx)
	require.NoError(t, err)
	second, err := svc.Reset(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, domain.DailyAllowanceReset, second.Remaining)
	assert.Equal(t, "2026-09-01", second.Date)
	assert.Len(t, resets, 2)
}
