package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/TravelPlannerHQ/travel-planner-gateway/logger"
	"github.com/TravelPlannerHQ/travel-planner-gateway/types"
	"github.com/redis/go-redis/v9"
)

// SnapshotCache keeps short-lived per-user snapshots of the upstream trip and
// expense collections in Redis, so the dashboard and expense views rendered
// within one TTL window share a single upstream fetch.
//
// The cache is strictly an accelerator: every Redis failure is logged and
// treated as a miss, and a nil *SnapshotCache is a valid always-miss cache.
type SnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSnapshotCache creates a snapshot cache with the given TTL. A nil client
// disables caching.
func NewSnapshotCache(client *redis.Client, ttl time.Duration) *SnapshotCache {
	if client == nil {
		return nil
	}
	return &SnapshotCache{client: client, ttl: ttl}
}

func tripsKey(userID string) string {
	return fmt.Sprintf("snapshot:trips:%s", userID)
}

func expensesKey(userID string) string {
	return fmt.Sprintf("snapshot:expenses:%s", userID)
}

// Trips returns the user's trip collection, serving from cache when a fresh
// snapshot exists and falling back to fetch otherwise. Fetched collections are
// written back with the cache TTL; write-back failures are logged and ignored.
func (c *SnapshotCache) Trips(ctx context.Context, userID string,
	fetch func(context.Context, string) ([]types.Trip, error)) ([]types.Trip, error) {

	if c != nil {
		var trips []types.Trip
		if c.lookup(ctx, tripsKey(userID), &trips) {
			return trips, nil
		}
	}

	trips, err := fetch(ctx, userID)
	if err != nil {
		return nil, err
	}
	if c != nil {
		c.store(ctx, tripsKey(userID), trips)
	}
	return trips, nil
}

// Expenses is the expense-collection counterpart of Trips.
func (c *SnapshotCache) Expenses(ctx context.Context, userID string,
	fetch func(context.Context, string) ([]types.Expense, error)) ([]types.Expense, error) {

	if c != nil {
		var expenses []types.Expense
		if c.lookup(ctx, expensesKey(userID), &expenses) {
			return expenses, nil
		}
	}

	expenses, err := fetch(ctx, userID)
	if err != nil {
		return nil, err
	}
	if c != nil {
		c.store(ctx, expensesKey(userID), expenses)
	}
	return expenses, nil
}

// Invalidate drops the user's snapshots. Called after any mutation so the next
// read reflects it immediately instead of after TTL expiry.
func (c *SnapshotCache) Invalidate(ctx context.Context, userID string) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, tripsKey(userID), expensesKey(userID)).Err(); err != nil {
		logger.GetLogger().Warnw("Failed to invalidate snapshot cache",
			"error", err, "userId", userID)
	}
}

// lookup reads and decodes one snapshot. Any failure counts as a miss.
func (c *SnapshotCache) lookup(ctx context.Context, key string, out interface{}) bool {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.GetLogger().Warnw("Snapshot cache read failed", "error", err, "key", key)
		}
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		logger.GetLogger().Warnw("Corrupt snapshot cache entry", "error", err, "key", key)
		return false
	}
	return true
}

func (c *SnapshotCache) store(ctx context.Context, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		logger.GetLogger().Warnw("Failed to encode snapshot", "error", err, "key", key)
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		logger.GetLogger().Warnw("Snapshot cache write failed", "error", err, "key", key)
	}
}
