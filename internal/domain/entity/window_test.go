package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestResolveBusinessDayWindow(t *testing.T) {
	t.Run("Single day", func(t *testing.T) {
		w, err := ResolveBusinessDayWindow(date(2025, 9, 22), date(2025, 9, 22))
		require.NoError(t, err)

		assert.Equal(t, time.Date(2025, 9, 22, 6, 0, 0, 0, time.Local), w.Start)
		assert.Equal(t, time.Date(2025, 9, 23, 5, 59, 59, 0, time.Local), w.End)
	})

	t.Run("Multi day", func(t *testing.T) {
		w, err := ResolveBusinessDayWindow(date(2025, 9, 20), date(2025, 9, 22))
		require.NoError(t, err)

		assert.Equal(t, time.Date(2025, 9, 20, 6, 0, 0, 0, time.Local), w.Start)
		assert.Equal(t, time.Date(2025, 9, 23, 5, 59, 59, 0, time.Local), w.End)
		assert.False(t, w.Start.After(w.End))
	})

	t.Run("Reversed range rejected", func(t *testing.T) {
		_, err := ResolveBusinessDayWindow(date(2025, 9, 23), date(2025, 9, 22))
		assert.Error(t, err)
	})
}

func TestBusinessDayWindowContains(t *testing.T) {
	w, err := ResolveBusinessDayWindow(date(2025, 9, 22), date(2025, 9, 22))
	require.NoError(t, err)

	cases := []struct {
		timestamp string
		inRange   bool
	}{
		{"2025-09-22T05:30:00", false}, // before 6 AM on the from date
		{"2025-09-22T06:00:00", true},  // start instant is inclusive
		{"2025-09-22T12:00:00", true},
		{"2025-09-22T23:59:00", true},
		{"2025-09-23T00:00:00", true}, // past midnight, same business day
		{"2025-09-23T05:59:59", true}, // end instant is inclusive
		{"2025-09-23T06:00:00", false},
		{"2025-09-23T12:00:00", false},
	}

	for _, tc := range cases {
		ts, err := time.ParseInLocation("2006-01-02T15:04:05", tc.timestamp, time.Local)
		require.NoError(t, err)
		assert.Equal(t, tc.inRange, w.Contains(ts), "timestamp %s", tc.timestamp)
	}
}
