package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	ucBooking "github.com/PlanoriaApp/appointment-scheduler/internal/usecase/booking"
)

const (
	statsTTL  = 5 * time.Minute
	unreadTTL = 30 * time.Second
)

// Cache is a Redis-backed read cache for daily stats and unread-message
// counts. Every method degrades to a miss on Redis failure; the cache is
// never allowed to fail a request. A nil *Cache is valid and always
// misses, so callers can run without Redis.
type Cache struct {
	client *redis.Client
}

func New(redisURL string) (*Cache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return &Cache{client: redis.NewClient(opts)}, nil
}

func NewWithClient(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// --------------------------------------------------
// Daily stats
// --------------------------------------------------

func statsKey(businessID uint, date string) string {
	return fmt.Sprintf("stats:%d:%s", businessID, date)
}

func (c *Cache) GetDailyStats(
	ctx context.Context,
	businessID uint,
	date string,
) (*ucBooking.DailyStats, bool) {

	if c == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, statsKey(businessID, date)).Result()
	if err != nil {
		return nil, false
	}

	var stats ucBooking.DailyStats
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		return nil, false
	}
	return &stats, true
}

func (c *Cache) SetDailyStats(
	ctx context.Context,
	businessID uint,
	date string,
	stats *ucBooking.DailyStats,
) {
	if c == nil {
		return
	}

	b, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, statsKey(businessID, date), b, statsTTL).Err(); err != nil {
		log.Println("cache set error:", err)
	}
}

func (c *Cache) InvalidateDay(ctx context.Context, businessID uint, date string) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, statsKey(businessID, date)).Err(); err != nil {
		log.Println("cache invalidate error:", err)
	}
}

// --------------------------------------------------
// Unread message counts
// --------------------------------------------------

func unreadKey(businessID uint) string {
	return fmt.Sprintf("unread:%d", businessID)
}

func (c *Cache) GetUnreadCount(ctx context.Context, businessID uint) (int64, bool) {
	if c == nil {
		return 0, false
	}
	n, err := c.client.Get(ctx, unreadKey(businessID)).Int64()
	if err != nil {
		return 0, false
	}
	return n, true
}

func (c *Cache) SetUnreadCount(ctx context.Context, businessID uint, count int64) {
	if c == nil {
		return
	}
	if err := c.client.Set(ctx, unreadKey(businessID), count, unreadTTL).Err(); err != nil {
		log.Println("cache set error:", err)
	}
}

func (c *Cache) InvalidateUnreadCount(ctx context.Context, businessID uint) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, unreadKey(businessID)).Err(); err != nil {
		log.Println("cache invalidate error:", err)
	}
}

var _ ucBooking.StatsCache = (*Cache)(nil)
