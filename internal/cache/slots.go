package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/levelupglow/salon-scheduler/internal/domain/schedule"
	"github.com/levelupglow/salon-scheduler/internal/logger"
)

// SlotCache keeps resolved slot grids in redis for a short TTL so the
// booking page doesn't recompute the grid on every poll. Every key
// embeds a per-stylist generation counter; invalidation is a single
// INCR, after which all of the stylist's cached grids simply miss.
//
// A nil client (redis unreachable at startup) degrades to a
// pass-through: every Get misses, every Set is a no-op.
type SlotCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSlotCache(rdb *redis.Client, ttl time.Duration) *SlotCache {
	return &SlotCache{rdb: rdb, ttl: ttl}
}

// NewRedisClient connects to redis, returning nil when unreachable so
// callers degrade to uncached operation.
func NewRedisClient(addr, password string, db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Get().Warn("redis unavailable, slot cache disabled",
			zap.String("addr", addr),
			zap.Error(err),
		)
		return nil
	}

	return client
}

func (c *SlotCache) Get(
	ctx context.Context,
	stylistID uint,
	date string,
	serviceMinutes int,
) ([]schedule.TimeSlot, bool) {

	if c == nil || c.rdb == nil {
		return nil, false
	}

	key, err := c.slotKey(ctx, stylistID, date, serviceMinutes)
	if err != nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Get().Warn("slot cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var slots []schedule.TimeSlot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (c *SlotCache) Set(
	ctx context.Context,
	stylistID uint,
	date string,
	serviceMinutes int,
	slots []schedule.TimeSlot,
) {

	if c == nil || c.rdb == nil {
		return
	}

	key, err := c.slotKey(ctx, stylistID, date, serviceMinutes)
	if err != nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		logger.Get().Warn("slot cache write failed", zap.Error(err))
	}
}

// Invalidate drops every cached grid for the stylist. Called after
// booking writes and schedule saves.
func (c *SlotCache) Invalidate(ctx context.Context, stylistID uint) {
	if c == nil || c.rdb == nil {
		return
	}

	if err := c.rdb.Incr(ctx, genKey(stylistID)).Err(); err != nil {
		logger.Get().Warn("slot cache invalidation failed", zap.Error(err))
	}
}

func (c *SlotCache) slotKey(
	ctx context.Context,
	stylistID uint,
	date string,
	serviceMinutes int,
) (string, error) {

	gen, err := c.rdb.Get(ctx, genKey(stylistID)).Int64()
	if err != nil && err != redis.Nil {
		return "", err
	}

	return fmt.Sprintf("slots:%d:%d:%s:%d", stylistID, gen, date, serviceMinutes), nil
}

func genKey(stylistID uint) string {
	return fmt.Sprintf("slots:gen:%d", stylistID)
}
