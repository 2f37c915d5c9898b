package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// SlotCache keeps computed availability results per (barber, date) for a
// short TTL. It is strictly best-effort: a nil cache, an unreachable
// redis or a decode failure all degrade to a recompute. Booking and
// schedule writes invalidate the affected key.
type SlotCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSlotCache(rdb *redis.Client) *SlotCache {
	return &SlotCache{
		rdb: rdb,
		ttl: time.Minute,
	}
}

func slotKey(barberID uint, date string) string {
	return fmt.Sprintf("slots:%d:%s", barberID, date)
}

func (c *SlotCache) Get(ctx context.Context, barberID uint, date string, dest any) bool {
	if c == nil || c.rdb == nil {
		return false
	}

	raw, err := c.rdb.Get(ctx, slotKey(barberID, date)).Bytes()
	if err != nil {
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false
	}
	return true
}

func (c *SlotCache) Set(ctx context.Context, barberID uint, date string, value any) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, slotKey(barberID, date), raw, c.ttl).Err(); err != nil {
		log.Println("slot cache set error:", err)
	}
}

func (c *SlotCache) Invalidate(ctx context.Context, barberID uint, date string) {
	if c == nil || c.rdb == nil {
		return
	}

	if err := c.rdb.Del(ctx, slotKey(barberID, date)).Err(); err != nil {
		log.Println("slot cache invalidate error:", err)
	}
}

// InvalidateBarber drops every cached date for a barber. Used after
// schedule edits, which affect an unbounded set of dates.
func (c *SlotCache) InvalidateBarber(ctx context.Context, barberID uint) {
	if c == nil || c.rdb == nil {
		return
	}

	pattern := fmt.Sprintf("slots:%d:*", barberID)
	iter := c.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			log.Println("slot cache invalidate error:", err)
		}
	}
}
