package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
	"go.uber.org/zap"
)

// CronTrigger submits finance report warm jobs on a cron schedule.
// Each run warms the all-time report and the current month to date.
type CronTrigger struct {
	schedule  string
	scheduler *Scheduler
	location  *time.Location
	clock     func() time.Time
	logger    *zap.Logger

	mu   sync.Mutex
	cron *cron.Cron
}

// NewCronTrigger creates a trigger; schedule accepts an optional seconds field and descriptors like @hourly
func NewCronTrigger(schedule string, scheduler *Scheduler, loc *time.Location, logger *zap.Logger) *CronTrigger {
	if loc == nil {
		loc = time.UTC
	}
	return &CronTrigger{
		schedule:  schedule,
		scheduler: scheduler,
		location:  loc,
		clock:     time.Now,
		logger:    logger,
	}
}

func newParser() cron.Parser {
	return cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
}

// ValidateSchedule reports whether expr is an accepted cron expression
func ValidateSchedule(expr string) error {
	if _, err := newParser().Parse(expr); err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidSchedule, expr, err)
	}
	return nil
}

// Start registers the schedule and starts the cron runner
func (c *CronTrigger) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cron != nil {
		return nil
	}

	runner := cron.New(cron.WithLocation(c.location), cron.WithParser(newParser()))
	if _, err := runner.AddFunc(c.schedule, c.Trigger); err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidSchedule, c.schedule, err)
	}
	runner.Start()
	c.cron = runner

	c.logger.Info("Report cache warmer scheduled",
		zap.String("schedule", c.schedule),
		zap.String("timezone", c.location.String()),
	)
	return nil
}

// Stop stops the cron runner and waits for a running trigger until ctx expires
func (c *CronTrigger) Stop(ctx context.Context) error {
	c.mu.Lock()
	runner := c.cron
	c.cron = nil
	c.mu.Unlock()
	if runner == nil {
		return nil
	}

	select {
	case <-runner.Stop().Done():
		c.logger.Info("Report cache warmer stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Trigger submits warm jobs immediately
func (c *CronTrigger) Trigger() {
	ranges := WarmRanges(c.clock(), c.location)
	if err := c.scheduler.ScheduleFinanceWarm(ranges...); err != nil {
		c.logger.Warn("Failed to schedule finance report warm", zap.Error(err))
		return
	}
	c.logger.Debug("Finance report warm scheduled", zap.Int("jobs", len(ranges)))
}

// WarmRanges returns the windows kept warm: all time, then the month to date in loc
func WarmRanges(now time.Time, loc *time.Location) []*valueobject.DateRange {
	local := now.In(loc)
	monthStart := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	// monthStart is never after local, so the range is always valid
	mtd, _ := valueobject.NewDateRange(monthStart, local)
	return []*valueobject.DateRange{nil, &mtd}
}
