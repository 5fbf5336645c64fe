package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyoga-dev/PermafrostDig_Go/internal/domain"
)

type stubAllowance struct {
	resets chan struct{}
}

func (s *stubAllowance) Remaining(_ context.Context) (int, error) {
	return domain.DailyAllowanceReset, nil
}

func (s *stubAllowance) Consume(_ context.Context) (int, error) {
	return domain.DailyAllowanceReset, nil
}

func (s *stubAllowance) Reset(_ context.Context) (domain.DailyAllowance, error) {
	s.resets <- struct{}{}
	return domain.DailyAllowance{Date: "2026-09-01", Remaining: domain.DailyAllowanceReset}, nil
}

func TestTimeUntilNextResetIsWithinADay(t *testing.T) {
	d := timeUntilNextReset()
	assert.Greater(t, d, time.Duration(0))
	assert.LessOrEqual(t, d, 24*time.Hour)
}

func TestExecuteResetCallsService(t *testing.T) {
	svc := &stubAllowance{resets: make(chan struct{}, 1)}
	w := NewDailyResetWorker(svc)

	w.executeReset()

	select {
	case <-svc.resets:
	case <-time.After(time.Second):
		t.Fatal("reset was not executed")
	}
	require.NoError(t, w.Shutdown(context.Background()))
}

func TestShutdownIsIdempotent(t *testing.T) {
	w := NewDailyResetWorker(&stubAllowance{resets: make(chan struct{}, 1)})
	w.Start()

	require.NoError(t, w.Shutdown(context.Background()))
	require.NoError(t, w.Shutdown(context.Background()))
}
