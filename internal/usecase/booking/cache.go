package booking

import "context"

// StatsCache fronts the daily-stats aggregation. Implementations must be
// safe to skip: a nil cache disables caching entirely.
type StatsCache interface {
	GetDailyStats(ctx context.Context, businessID uint, date string) (*DailyStats, bool)
	SetDailyStats(ctx context.Context, businessID uint, date string, stats *DailyStats)
	InvalidateDay(ctx context.Context, businessID uint, date string)
}
