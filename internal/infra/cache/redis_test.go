package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PlanoriaApp/appointment-scheduler/internal/infra/cache"
	ucbooking "github.com/PlanoriaApp/appointment-scheduler/internal/usecase/booking"
)

func newTestCache(t *testing.T) (*cache.Cache, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewWithClient(client), srv
}

func sampleStats() *ucbooking.DailyStats {
	return &ucbooking.DailyStats{
		Date:         "2025-06-02",
		TotalRevenue: 175,
		Services: map[string]ucbooking.ServiceStats{
			"Haircut":    {Count: 3, Revenue: 150},
			"Beard Trim": {Count: 1, Revenue: 25},
		},
	}
}

func TestDailyStatsCache(t *testing.T) {
	ctx := context.Background()
	c, srv := newTestCache(t)

	t.Run("miss before set", func(t *testing.T) {
		_, ok := c.GetDailyStats(ctx, 1, "2025-06-02")
		assert.False(t, ok)
	})

	t.Run("round trip", func(t *testing.T) {
		c.SetDailyStats(ctx, 1, "2025-06-02", sampleStats())

		got, ok := c.GetDailyStats(ctx, 1, "2025-06-02")
		require.True(t, ok)
		assert.Equal(t, sampleStats(), got)

		// Keyed per business and day.
		_, ok = c.GetDailyStats(ctx, 2, "2025-06-02")
		assert.False(t, ok)
		_, ok = c.GetDailyStats(ctx, 1, "2025-06-03")
		assert.False(t, ok)
	})

	t.Run("invalidate", func(t *testing.T) {
		c.SetDailyStats(ctx, 1, "2025-06-02", sampleStats())
		c.InvalidateDay(ctx, 1, "2025-06-02")

		_, ok := c.GetDailyStats(ctx, 1, "2025-06-02")
		assert.False(t, ok)
	})

	t.Run("entries expire", func(t *testing.T) {
		c.SetDailyStats(ctx, 1, "2025-06-02", sampleStats())
		srv.FastForward(6 * time.Minute)

		_, ok := c.GetDailyStats(ctx, 1, "2025-06-02")
		assert.False(t, ok)
	})

	t.Run("corrupt entry reads as a miss", func(t *testing.T) {
		require.NoError(t, srv.Set("stats:1:2025-06-02", "{not json"))
		_, ok := c.GetDailyStats(ctx, 1, "2025-06-02")
		assert.False(t, ok)
	})
}

func TestUnreadCountCache(t *testing.T) {
	ctx := context.Background()
	c, srv := newTestCache(t)

	_, ok := c.GetUnreadCount(ctx, 1)
	assert.False(t, ok)

	c.SetUnreadCount(ctx, 1, 4)
	n, ok := c.GetUnreadCount(ctx, 1)
	require.True(t, ok)
	assert.Equal(t, int64(4), n)

	c.InvalidateUnreadCount(ctx, 1)
	_, ok = c.GetUnreadCount(ctx, 1)
	assert.False(t, ok)

	c.SetUnreadCount(ctx, 1, 4)
	srv.FastForward(time.Minute)
	_, ok = c.GetUnreadCount(ctx, 1)
	assert.False(t, ok)
}

func TestCacheDegradesWhenRedisIsDown(t *testing.T) {
	ctx := context.Background()
	c, srv := newTestCache(t)
	srv.Close()

	c.SetDailyStats(ctx, 1, "2025-06-02", sampleStats())
	_, ok := c.GetDailyStats(ctx, 1, "2025-06-02")
	assert.False(t, ok)

	c.InvalidateDay(ctx, 1, "2025-06-02")
}

func TestNilCacheIsSafe(t *testing.T) {
	ctx := context.Background()
	var c *cache.Cache

	_, ok := c.GetDailyStats(ctx, 1, "2025-06-02")
	assert.False(t, ok)
	c.SetDailyStats(ctx, 1, "2025-06-02", sampleStats())
	c.InvalidateDay(ctx, 1, "2025-06-02")

	_, ok = c.GetUnreadCount(ctx, 1)
	assert.False(t, ok)
	c.SetUnreadCount(ctx, 1, 3)
	c.InvalidateUnreadCount(ctx, 1)
}
