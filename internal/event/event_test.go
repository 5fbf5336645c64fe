package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyoga-dev/PermafrostDig_Go/internal/domain"
)

func TestMemoryBusPublishReachesSubscribers(t *testing.T) {
	bus := NewMemoryBus()

	var received []Event
	bus.Subscribe(DigResolved, func(ctx context.Context, e Event) error {
		received = append(received, e)
		return nil
	})

	err := bus.Publish(context.Background(), NewDigResolvedEvent(domain.ResultItem))
	require.NoError(t, err)
	require.Len(t, received, 1)

	payload, ok := received[0].Payload.(DigResolvedPayloadV1)
	require.True(t, ok)
	assert.Equal(t, domain.ResultItem, payload.Outcome)
	assert.Equal(t, EventSchemaVersion, received[0].Version)
}

func TestMemoryBusPublishNoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	err := bus.Publish(context.Background(), NewAllowanceResetEvent(domain.DailyAllowance{Date: "2026-09-01", Remaining: 3}))
	assert.NoError(t, err)
}

func TestMemoryBusHandlerErrorsAggregated(t *testing.T) {
	bus := NewMemoryBus()

	bus.Subscribe(BoostArmed, func(ctx context.Context, e Event) error {
		return errors.New("handler one failed")
	})
	calls := 0
	bus.Subscribe(BoostArmed, func(ctx context.Context, e Event) error {
		calls++
		return nil
	})

	err := bus.Publish(context.Background(), NewBoostArmedEvent(domain.BoostEffect{Rarity: domain.RarityEpic, RequiredClicks: 6, BonusDigs: 1}))
	assert.Error(t, err)
	// A failing handler must not prevent later handlers from running
	assert.Equal(t, 1, calls)
}
