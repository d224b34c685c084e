package booking

import (
	"context"
	"time"

	domain "github.com/PlanoriaApp/appointment-scheduler/internal/domain/booking"
)

type ServiceStats struct {
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type DailyStats struct {
	Date         string                  `json:"date"`
	TotalRevenue float64                 `json:"total_revenue"`
	Services     map[string]ServiceStats `json:"services"`
}

type GetDailyStats struct {
	repo  domain.Repository
	cache StatsCache
}

func NewGetDailyStats(repo domain.Repository, cache StatsCache) *GetDailyStats {
	return &GetDailyStats{repo: repo, cache: cache}
}

// Execute groups the day's appointments by their booking-time title, so
// renamed or deleted services still report under the name they were
// booked as. A day with no appointments yields an empty map, not an
// error.
func (uc *GetDailyStats) Execute(
	ctx context.Context,
	businessID uint,
	date time.Time,
) (*DailyStats, error) {

	day := date.Format("2006-01-02")

	if uc.cache != nil {
		if cached, ok := uc.cache.GetDailyStats(ctx, businessID, day); ok {
			return cached, nil
		}
	}

	aps, err := uc.repo.ListAppointmentsForDate(ctx, businessID, date)
	if err != nil {
		return nil, err
	}

	stats := &DailyStats{
		Date:     day,
		Services: map[string]ServiceStats{},
	}

	for _, ap := range aps {
		entry := stats.Services[ap.Title]
		entry.Count++
		entry.Revenue += ap.Cost
		stats.Services[ap.Title] = entry
		stats.TotalRevenue += ap.Cost
	}

	if uc.cache != nil {
		uc.cache.SetDailyStats(ctx, businessID, day, stats)
	}

	return stats, nil
}
