package booking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PlanoriaApp/appointment-scheduler/internal/domain/booking"
)

func TestClockSeconds(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"00:00:00", 0},
		{"09:00", 9 * 3600},
		{"09:00:00", 9 * 3600},
		{"14:30:15", 14*3600 + 30*60 + 15},
		{"23:59:59", 24*3600 - 1},
	}
	for _, tc := range cases {
		got, err := booking.ClockSeconds(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	for _, bad := range []string{"", "25:00", "12:60", "noon", "12", "12:00:00:00"} {
		_, err := booking.ClockSeconds(bad)
		assert.Error(t, err, bad)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00:00", booking.FormatClock(0))
	assert.Equal(t, "09:05:00", booking.FormatClock(9*3600+5*60))
	assert.Equal(t, "23:59:59", booking.FormatClock(24*3600-1))

	// Round-trips through ClockSeconds.
	sec, err := booking.ClockSeconds(booking.FormatClock(13*3600 + 45*60))
	require.NoError(t, err)
	assert.Equal(t, 13*3600+45*60, sec)
}

func TestNewInterval(t *testing.T) {
	got := booking.NewInterval(9*3600, 30)
	assert.Equal(t, booking.Interval{Start: 9 * 3600, End: 9*3600 + 1800}, got)
	assert.True(t, got.Valid())

	assert.False(t, booking.NewInterval(9*3600, 0).Valid())
}

func TestWeekdayName(t *testing.T) {
	// 2025-06-02 is a Monday.
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Monday", booking.WeekdayName(date))
	assert.Equal(t, "Sunday", booking.WeekdayName(date.AddDate(0, 0, 6)))

	assert.True(t, booking.IsWeekdayName("Wednesday"))
	assert.False(t, booking.IsWeekdayName("wednesday"))
	assert.False(t, booking.IsWeekdayName("Someday"))

	assert.Equal(t, 0, booking.WeekdayIndex("Sunday"))
	assert.Equal(t, 6, booking.WeekdayIndex("Saturday"))
	assert.Equal(t, -1, booking.WeekdayIndex("nope"))
}
