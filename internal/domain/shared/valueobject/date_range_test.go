package valueobject

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, time.UTC)
}

func TestNewDateRange(t *testing.T) {
	t.Run("normalizes bounds to whole days", func(t *testing.T) {
		r, err := NewDateRange(date(2026, 3, 1, 15, 30), date(2026, 3, 5, 8, 0))
		require.NoError(t, err)

		start, ok := r.Start()
		require.True(t, ok)
		assert.Equal(t, date(2026, 3, 1, 0, 0), start)

		end, ok := r.End()
		require.True(t, ok)
		assert.Equal(t, time.Date(2026, 3, 5, 23, 59, 59, 999000000, time.UTC), end)
	})

	t.Run("rejects inverted range", func(t *testing.T) {
		_, err := NewDateRange(date(2026, 3, 5, 0, 0), date(2026, 3, 1, 0, 0))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be before start")
	})

	t.Run("same day is valid", func(t *testing.T) {
		r, err := NewDateRange(date(2026, 3, 5, 12, 0), date(2026, 3, 5, 1, 0))
		require.NoError(t, err)
		assert.True(t, r.Contains(date(2026, 3, 5, 18, 0)))
	})
}

func TestDateRange_Contains(t *testing.T) {
	r, err := NewDateRange(date(2026, 1, 10, 0, 0), date(2026, 1, 20, 0, 0))
	require.NoError(t, err)

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"first instant of from day", date(2026, 1, 10, 0, 0), true},
		{"just before from day", date(2026, 1, 10, 0, 0).Add(-time.Millisecond), false},
		{"middle of range", date(2026, 1, 15, 12, 0), true},
		{"last millisecond of to day", time.Date(2026, 1, 20, 23, 59, 59, 999000000, time.UTC), true},
		{"first instant after to day", date(2026, 1, 21, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.at))
		})
	}
}

func TestDateRange_OpenBounds(t *testing.T) {
	t.Run("open upper bound", func(t *testing.T) {
		r := NewDateRangeFrom(date(2026, 1, 10, 9, 0))
		assert.False(t, r.Contains(date(2026, 1, 9, 23, 0)))
		assert.True(t, r.Contains(date(2030, 1, 1, 0, 0)))
		_, ok := r.End()
		assert.False(t, ok)
	})

	t.Run("open lower bound", func(t *testing.T) {
		r := NewDateRangeUntil(date(2026, 1, 10, 9, 0))
		assert.True(t, r.Contains(date(2000, 1, 1, 0, 0)))
		assert.True(t, r.Contains(date(2026, 1, 10, 23, 59)))
		assert.False(t, r.Contains(date(2026, 1, 11, 0, 0)))
	})

	t.Run("nil range includes everything", func(t *testing.T) {
		assert.True(t, InRange(nil, date(1999, 1, 1, 0, 0)))
	})
}

func TestParseDateRange(t *testing.T) {
	t.Run("both empty yields nil", func(t *testing.T) {
		r, err := ParseDateRange("", "", time.UTC)
		require.NoError(t, err)
		assert.Nil(t, r)
	})

	t.Run("parses closed range", func(t *testing.T) {
		r, err := ParseDateRange("2026-02-01", "2026-02-28", nil)
		require.NoError(t, err)
		require.NotNil(t, r)
		assert.Equal(t, "2026-02-01_2026-02-28", r.Key())
	})

	t.Run("parses half-open ranges", func(t *testing.T) {
		r, err := ParseDateRange("2026-02-01", "", time.UTC)
		require.NoError(t, err)
		assert.Equal(t, "2026-02-01_*", r.Key())

		r, err = ParseDateRange("", "2026-02-28", time.UTC)
		require.NoError(t, err)
		assert.Equal(t, "*_2026-02-28", r.Key())
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		_, err := ParseDateRange("2026/02/01", "", time.UTC)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid date_from")
	})

	t.Run("rejects inverted range", func(t *testing.T) {
		_, err := ParseDateRange("2026-03-01", "2026-02-01", time.UTC)
		require.Error(t, err)
	})

	t.Run("interprets dates in the given location", func(t *testing.T) {
		loc := time.FixedZone("UTC+3", 3*60*60)
		r, err := ParseDateRange("2026-02-01", "2026-02-01", loc)
		require.NoError(t, err)

		// 2026-01-31 22:30 UTC is 2026-02-01 01:30 local
		assert.True(t, r.Contains(time.Date(2026, 1, 31, 22, 30, 0, 0, time.UTC)))
		assert.False(t, r.Contains(time.Date(2026, 2, 1, 21, 0, 0, 0, time.UTC)))
	})
}
