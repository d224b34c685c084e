package booking

import (
	domain "github.com/PlanoriaApp/appointment-scheduler/internal/domain/booking"
	"github.com/PlanoriaApp/appointment-scheduler/internal/models"
)

func windowIntervals(windows []models.AvailabilityWindow) []domain.Interval {
	out := make([]domain.Interval, 0, len(windows))
	for _, w := range windows {
		start, err := domain.ClockSeconds(w.StartTime)
		if err != nil {
			continue
		}
		end, err := domain.ClockSeconds(w.EndTime)
		if err != nil {
			continue
		}
		out = append(out, domain.Interval{Start: start, End: end})
	}
	return out
}

// bookedIntervals collects the day's occupied spans, skipping excludeID
// so an appointment being moved does not conflict with itself.
func bookedIntervals(aps []models.Appointment, excludeID uint) []domain.Interval {
	out := make([]domain.Interval, 0, len(aps))
	for _, ap := range aps {
		if excludeID != 0 && ap.ID == excludeID {
			continue
		}
		out = append(out, domain.Interval{Start: ap.StartSec, End: ap.EndSec})
	}
	return out
}
