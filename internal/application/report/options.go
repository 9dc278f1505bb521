package report

import (
	"time"

	"go.uber.org/zap"
)

type options struct {
	location *time.Location
	clock    func() time.Time
	logger   *zap.Logger
}

func defaultOptions() options {
	return options{
		location: time.UTC,
		clock:    time.Now,
		logger:   zap.NewNop(),
	}
}

// Option configures a report service
type Option func(*options)

// WithLocation sets the time zone used for calendar buckets
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		if loc != nil {
			o.location = loc
		}
	}
}

// WithClock overrides the source of the current time
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithLogger sets the service logger
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
