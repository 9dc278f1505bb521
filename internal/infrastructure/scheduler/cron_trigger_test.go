package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestValidateSchedule(t *testing.T) {
	tests := []struct {
		expr  string
		valid bool
	}{
		{"0 */15 * * * *", true},
		{"*/5 * * * *", true},
		{"@hourly", true},
		{"@every 10m", true},
		{"not a schedule", false},
		{"61 * * * *", false},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			err := ValidateSchedule(tt.expr)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidSchedule)
			}
		})
	}
}

func TestWarmRanges(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	// 2026-09-30 22:00 UTC is already October in UTC+3
	now := time.Date(2026, 9, 30, 22, 0, 0, 0, time.UTC)

	ranges := WarmRanges(now, loc)
	require.Len(t, ranges, 2)
	assert.Nil(t, ranges[0])
	require.NotNil(t, ranges[1])
	assert.Equal(t, "2026-10-01_2026-10-01", ranges[1].Key())
}

func TestCronTrigger(t *testing.T) {
	t.Run("rejects an invalid schedule", func(t *testing.T) {
		s := NewScheduler(testConfig(), &funcExecutor{}, zap.NewNop())
		trigger := NewCronTrigger("bogus", s, time.UTC, zap.NewNop())

		err := trigger.Start(context.Background())
		assert.ErrorIs(t, err, ErrInvalidSchedule)
		assert.NoError(t, trigger.Stop(context.Background()))
	})

	t.Run("manual trigger submits both warm jobs", func(t *testing.T) {
		var mu sync.Mutex
		keys := map[string]bool{}
		exec := &funcExecutor{fn: func(ctx context.Context, job *Job) error {
			mu.Lock()
			keys[job.RangeKey()] = true
			mu.Unlock()
			return nil
		}}
		s := NewScheduler(testConfig(), exec, zap.NewNop())
		require.NoError(t, s.Start(context.Background()))
		defer s.Stop(context.Background())

		trigger := NewCronTrigger("@every 1h", s, time.UTC, zap.NewNop())
		trigger.clock = func() time.Time { return time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC) }
		trigger.Trigger()

		assert.Eventually(t, func() bool { return exec.count() == 2 }, time.Second, 5*time.Millisecond)
		mu.Lock()
		defer mu.Unlock()
		assert.True(t, keys["all"])
		assert.True(t, keys["2026-10-01_2026-10-17"])
	})

	t.Run("fires on schedule", func(t *testing.T) {
		exec := &funcExecutor{fn: func(ctx context.Context, job *Job) error { return nil }}
		s := NewScheduler(testConfig(), exec, zap.NewNop())
		require.NoError(t, s.Start(context.Background()))
		defer s.Stop(context.Background())

		trigger := NewCronTrigger("@every 1s", s, time.UTC, zap.NewNop())
		require.NoError(t, trigger.Start(context.Background()))
		require.NoError(t, trigger.Start(context.Background()))

		assert.Eventually(t, func() bool { return exec.count() >= 2 }, 3*time.Second, 20*time.Millisecond)
		require.NoError(t, trigger.Stop(context.Background()))
	})

	t.Run("trigger on stopped scheduler only logs", func(t *testing.T) {
		s := NewScheduler(testConfig(), &funcExecutor{}, zap.NewNop())
		trigger := NewCronTrigger("@hourly", s, nil, zap.NewNop())
		assert.NotPanics(t, trigger.Trigger)
	})
}
