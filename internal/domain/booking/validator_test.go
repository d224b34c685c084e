package booking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PlanoriaApp/appointment-scheduler/internal/domain/booking"
)

func iv(start, end string) booking.Interval {
	s, _ := booking.ClockSeconds(start)
	e, _ := booking.ClockSeconds(end)
	return booking.Interval{Start: s, End: e}
}

func TestValidate(t *testing.T) {
	workday := []booking.Interval{iv("09:00", "17:00")}

	t.Run("no windows for the day", func(t *testing.T) {
		reason := booking.Validate(iv("10:00", "10:30"), nil, nil)
		assert.Equal(t, booking.ReasonBusinessNotAvailable, reason)
	})

	t.Run("inside window with no bookings", func(t *testing.T) {
		reason := booking.Validate(iv("10:00", "10:30"), workday, nil)
		assert.Equal(t, booking.ReasonAccepted, reason)
	})

	t.Run("filling the window exactly", func(t *testing.T) {
		reason := booking.Validate(iv("09:00", "17:00"), workday, nil)
		assert.Equal(t, booking.ReasonAccepted, reason)
	})

	t.Run("ends past closing", func(t *testing.T) {
		// 16:45 + 30min runs to 17:15.
		reason := booking.Validate(iv("16:45", "17:15"), workday, nil)
		assert.Equal(t, booking.ReasonOutsideBusinessHours, reason)
	})

	t.Run("starts before opening", func(t *testing.T) {
		reason := booking.Validate(iv("08:30", "09:30"), workday, nil)
		assert.Equal(t, booking.ReasonOutsideBusinessHours, reason)
	})

	t.Run("spanning two adjacent windows", func(t *testing.T) {
		split := []booking.Interval{iv("09:00", "12:00"), iv("12:00", "17:00")}
		reason := booking.Validate(iv("11:30", "12:30"), split, nil)
		assert.Equal(t, booking.ReasonOutsideBusinessHours, reason)
	})

	t.Run("contained by one of several overlapping windows", func(t *testing.T) {
		overlapping := []booking.Interval{iv("09:00", "13:00"), iv("12:00", "17:00")}
		reason := booking.Validate(iv("12:30", "13:30"), overlapping, nil)
		assert.Equal(t, booking.ReasonAccepted, reason)
	})

	t.Run("overlapping an existing appointment", func(t *testing.T) {
		day := []booking.Interval{iv("08:00", "20:00")}
		booked := []booking.Interval{iv("14:00", "15:00")}

		reason := booking.Validate(iv("14:30", "15:00"), day, booked)
		assert.Equal(t, booking.ReasonOverlappingAppointment, reason)

		reason = booking.Validate(iv("13:30", "14:30"), day, booked)
		assert.Equal(t, booking.ReasonOverlappingAppointment, reason)

		// Exactly covering the booked slot.
		reason = booking.Validate(iv("14:00", "15:00"), day, booked)
		assert.Equal(t, booking.ReasonOverlappingAppointment, reason)
	})

	t.Run("back to back bookings", func(t *testing.T) {
		day := []booking.Interval{iv("08:00", "20:00")}
		booked := []booking.Interval{iv("10:00", "10:30")}

		// Touching endpoints in either direction are allowed.
		assert.Equal(t, booking.ReasonAccepted,
			booking.Validate(iv("10:30", "11:00"), day, booked))
		assert.Equal(t, booking.ReasonAccepted,
			booking.Validate(iv("09:30", "10:00"), day, booked))
	})

	t.Run("hours are checked before conflicts", func(t *testing.T) {
		booked := []booking.Interval{iv("18:00", "19:00")}
		reason := booking.Validate(iv("18:00", "19:00"), workday, booked)
		assert.Equal(t, booking.ReasonOutsideBusinessHours, reason)
	})
}

func TestIntervalOverlaps(t *testing.T) {
	a := iv("10:00", "11:00")

	assert.True(t, a.Overlaps(iv("10:30", "11:30")))
	assert.True(t, a.Overlaps(iv("09:30", "10:30")))
	assert.True(t, a.Overlaps(iv("10:15", "10:45")))
	assert.True(t, a.Overlaps(iv("09:00", "12:00")))

	assert.False(t, a.Overlaps(iv("11:00", "12:00")))
	assert.False(t, a.Overlaps(iv("09:00", "10:00")))
}

func TestIntervalContains(t *testing.T) {
	w := iv("09:00", "17:00")

	assert.True(t, w.Contains(iv("09:00", "17:00")))
	assert.True(t, w.Contains(iv("12:00", "12:30")))
	assert.False(t, w.Contains(iv("08:59", "09:30")))
	assert.False(t, w.Contains(iv("16:45", "17:15")))
}
