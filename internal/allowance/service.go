package allowance

import (
	"context"
	"fmt"
	"time"

	"github.com/hyoga-dev/PermafrostDig_Go/internal/domain"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/event"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/logger"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/storage"
)

// Service tracks the daily dig budget. The allowance rolls over lazily
// on first access of a new calendar day, and proactively when the
// midnight worker calls Reset.
type Service interface {
	// Remaining returns today's unspent allowance.
	Remaining(ctx context.Context) (int, error)
	// Consume spends one unit, flooring at zero, and returns what is left.
	Consume(ctx context.Context) (int, error)
	// Reset restores the full daily budget for the current day.
	Reset(ctx context.Context) (domain.DailyAllowance, error)
}

type service struct {
	store storage.Store
	bus   event.Bus
	now   func() time.Time
}

// NewService creates a new allowance service
func NewService(store storage.Store, bus event.Bus) Service {
	return &service{
		store: store,
		bus:   bus,
		now:   time.Now,
	}
}

func (s *service) today() string {
	return s.now().Format(DateFormat)
}

// load fetches the persisted record, rolling it over if the day changed.
func (s *service) load(ctx context.Context) (domain.DailyAllowance, error) {
	today := s.today()

	var record domain.DailyAllowance
	found, err := s.store.Get(ctx, storage.KeyDailyAllowance, &record)
	if err != nil {
		return domain.DailyAllowance{}, fmt.Errorf("%s: %w", ErrContextLoadAllowance, err)
	}

	if found && record.Date == today {
		return record, nil
	}

	// New day (or fresh save): grant the full budget
	record = domain.DailyAllowance{Date: today, Remaining: domain.DailyAllowanceReset}
	if err := s.store.Put(ctx, storage.KeyDailyAllowance, record); err != nil {
		return domain.DailyAllowance{}, fmt.Errorf("%s: %w", ErrContextSaveAllowance, err)
	}

	logger.FromContext(ctx).Info(LogMsgAllowanceRolledOver, "date", record.Date, "remaining", record.Remaining)
	s.publishReset(ctx, record)
	return record, nil
}

func (s *service) Remaining(ctx context.Context) (int, error) {
	record, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	return record.Remaining, nil
}

func (s *service) Consume(ctx context.Context) (int, error) {
	record, err := s.load(ctx)
	if err != nil {
		return 0, err
	}

	if record.Remaining > 0 {
		record.Remaining--
		if err := s.store.Put(ctx, storage.KeyDailyAllowance, record); err != nil {
			return 0, fmt.Errorf("%s: %w", ErrContextSaveAllowance, err)
		}
	}

	return record.Remaining, nil
}

func (s *service) Reset(ctx context.Context) (domain.DailyAllowance, error) {
	record := domain.DailyAllowance{Date: s.today(), Remaining: domain.DailyAllowanceReset}
	if err := s.store.Put(ctx, storage.KeyDailyAllowance, record); err != nil {
		return domain.DailyAllowance{}, fmt.Errorf("%s: %w", ErrContextSaveAllowance, err)
	}

	logger.FromContext(ctx).Info(LogMsgAllowanceReset, "date", record.Date)
	s.publishReset(ctx, record)
	return record, nil
}

func (s *service) publishReset(ctx context.Context, record domain.DailyAllowance) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, event.NewAllowanceResetEvent(record)); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "error", err)
	}
}
