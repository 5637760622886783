package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"orderdesk/internal/domain"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SnapshotCache holds the last order list read for each restaurant for a
// short TTL, so several boards polling the same restaurant share one query.
type SnapshotCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewSnapshotCache(client *redis.Client, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{Client: client, TTL: ttl}
}

func snapshotKey(restaurantID uuid.UUID) string {
	return "orders:snapshot:" + restaurantID.String()
}

// Get reports false on a cache miss.
func (c *SnapshotCache) Get(ctx context.Context, restaurantID uuid.UUID) ([]domain.Order, bool, error) {
	data, err := c.Client.Get(ctx, snapshotKey(restaurantID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var orders []domain.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, false, err
	}
	return orders, true, nil
}

func (c *SnapshotCache) Set(ctx context.Context, restaurantID uuid.UUID, orders []domain.Order) error {
	if c.TTL <= 0 {
		return nil
	}
	data, err := json.Marshal(orders)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, snapshotKey(restaurantID), data, c.TTL).Err()
}

func (c *SnapshotCache) Invalidate(ctx context.Context, restaurantID uuid.UUID) error {
	return c.Client.Del(ctx, snapshotKey(restaurantID)).Err()
}

// IdempotencyStore remembers Idempotency-Key headers of public order
// placements so a retried checkout does not create a second order.
type IdempotencyStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewIdempotencyStore(client *redis.Client, ttl time.Duration) *IdempotencyStore {
	return &IdempotencyStore{Client: client, TTL: ttl}
}

func (s *IdempotencyStore) OrderMarkerKey(restaurantID uuid.UUID, key string) string {
	return "order:idem:" + restaurantID.String() + ":" + key
}

// Claim returns false when the key was already claimed.
func (s *IdempotencyStore) Claim(ctx context.Context, key string) (bool, error) {
	return s.Client.SetNX(ctx, key, "1", s.TTL).Result()
}

func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	return s.Client.Del(ctx, key).Err()
}

// PopularityStore keeps per-restaurant sorted sets of ordered quantities:
// one per day (expiring after a week) and one for all time.
type PopularityStore struct {
	Client *redis.Client
}

func NewPopularityStore(client *redis.Client) *PopularityStore {
	return &PopularityStore{Client: client}
}

const dailyRetention = 7 * 24 * time.Hour

func dailyKey(restaurantID uuid.UUID, day time.Time) string {
	return "analytics:daily:" + day.UTC().Format("2006-01-02") + ":" + restaurantID.String()
}

func allTimeKey(restaurantID uuid.UUID) string {
	return "analytics:alltime:" + restaurantID.String()
}

func (s *PopularityStore) RecordOrder(ctx context.Context, restaurantID uuid.UUID, items []domain.EventItem, at time.Time) error {
	if len(items) == 0 {
		return nil
	}
	daily := dailyKey(restaurantID, at)
	alltime := allTimeKey(restaurantID)

	pipe := s.Client.TxPipeline()
	for _, item := range items {
		member := item.MenuItemID.String()
		pipe.ZIncrBy(ctx, daily, float64(item.Quantity), member)
		pipe.ZIncrBy(ctx, alltime, float64(item.Quantity), member)
	}
	pipe.Expire(ctx, daily, dailyRetention)
	_, err := pipe.Exec(ctx)
	return err
}

// Top returns up to limit items with their scores, best first. Names are
// left empty for the caller to fill in.
func (s *PopularityStore) Top(ctx context.Context, restaurantID uuid.UUID, period string, at time.Time, limit int) ([]domain.ItemPopularity, error) {
	key := allTimeKey(restaurantID)
	if period == "today" {
		key = dailyKey(restaurantID, at)
	}

	res, err := s.Client.ZRevRangeWithScores(ctx, key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	items := make([]domain.ItemPopularity, 0, len(res))
	for _, z := range res {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}
		id, err := uuid.Parse(member)
		if err != nil {
			continue
		}
		items = append(items, domain.ItemPopularity{MenuItemID: id, Score: z.Score})
	}
	return items, nil
}

// EventStore is the Redis state the order event consumer writes to.
type EventStore struct {
	*SnapshotCache
	*PopularityStore
}

func NewEventStore(cache *SnapshotCache, popularity *PopularityStore) *EventStore {
	return &EventStore{SnapshotCache: cache, PopularityStore: popularity}
}
