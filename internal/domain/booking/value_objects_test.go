//go:build unit

package booking_test

import (
	"testing"
	"time"

	"room-booking-api/internal/domain/booking"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, s string) booking.Day {
	t.Helper()
	d, err := booking.ParseDay(s)
	require.NoError(t, err)
	return d
}

func TestParseDay(t *testing.T) {
	t.Run("plain calendar date", func(t *testing.T) {
		d, err := booking.ParseDay("2025-07-01")
		require.NoError(t, err)
		assert.Equal(t, "2025-07-01", d.String())
	})

	t.Run("RFC 3339 timestamp is truncated to its day", func(t *testing.T) {
		d, err := booking.ParseDay("2025-07-01T15:04:05Z")
		require.NoError(t, err)
		assert.Equal(t, "2025-07-01", d.String())
	})

	t.Run("time-of-day never affects equality", func(t *testing.T) {
		morning, err := booking.ParseDay("2025-07-01T01:00:00Z")
		require.NoError(t, err)
		evening, err := booking.ParseDay("2025-07-01T23:00:00Z")
		require.NoError(t, err)
		assert.True(t, morning.Equal(evening))
	})

	t.Run("garbage input", func(t *testing.T) {
		_, err := booking.ParseDay("not-a-date")
		assert.ErrorIs(t, err, booking.ErrUnparsableDate)
	})
}

func TestNewDay(t *testing.T) {
	t.Run("normalizes to UTC midnight", func(t *testing.T) {
		loc := time.FixedZone("JST", 9*3600)
		d := booking.NewDay(time.Date(2025, 7, 1, 18, 30, 0, 0, loc))

		got := d.Time()
		assert.Equal(t, time.UTC, got.Location())
		assert.Equal(t, 0, got.Hour())
		assert.Equal(t, 0, got.Minute())
	})
}

func TestExpandDays(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  []string
	}{
		{
			name:  "multi day range includes both endpoints",
			start: "2025-07-01",
			end:   "2025-07-04",
			want:  []string{"2025-07-01", "2025-07-02", "2025-07-03", "2025-07-04"},
		},
		{
			name:  "equal endpoints yield a single day",
			start: "2025-07-01",
			end:   "2025-07-01",
			want:  []string{"2025-07-01"},
		},
		{
			name:  "inverted range yields nothing",
			start: "2025-07-04",
			end:   "2025-07-01",
			want:  nil,
		},
		{
			name:  "crosses a month boundary",
			start: "2025-07-30",
			end:   "2025-08-02",
			want:  []string{"2025-07-30", "2025-07-31", "2025-08-01", "2025-08-02"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := booking.ExpandDays(day(t, tt.start), day(t, tt.end))

			var got []string
			for _, d := range days {
				got = append(got, d.String())
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ExpandDays() mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("deterministic for repeated calls", func(t *testing.T) {
		start, end := day(t, "2025-07-01"), day(t, "2025-07-03")
		first := booking.ExpandDays(start, end)
		second := booking.ExpandDays(start, end)
		assert.Equal(t, first, second)
	})
}

func TestNewDateRange(t *testing.T) {
	t.Run("start before end", func(t *testing.T) {
		rng, err := booking.NewDateRange(day(t, "2025-07-01"), day(t, "2025-07-03"))
		require.NoError(t, err)
		assert.Len(t, rng.Expand(), 3)
	})

	t.Run("equal dates rejected", func(t *testing.T) {
		_, err := booking.NewDateRange(day(t, "2025-07-01"), day(t, "2025-07-01"))
		assert.ErrorIs(t, err, booking.ErrInvalidDateRange)
	})

	t.Run("inverted range rejected", func(t *testing.T) {
		_, err := booking.NewDateRange(day(t, "2025-07-03"), day(t, "2025-07-01"))
		assert.ErrorIs(t, err, booking.ErrInvalidDateRange)
	})
}
