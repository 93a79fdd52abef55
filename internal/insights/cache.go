package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tracker-studio-api/internal/logx"
	"tracker-studio-api/internal/redisx"
)

var cacheLogger = logx.GetScope("insights.cache")

// Cache stores computed summaries keyed by tracker and range. Implementations
// are best-effort: a miss or a failed write only costs a recompute.
type Cache interface {
	GetSummary(ctx context.Context, trackerID uuid.UUID, from, to string) (*Summary, bool)
	SetSummary(ctx context.Context, sum *Summary, ttl time.Duration)
	Invalidate(ctx context.Context, trackerIDs ...uuid.UUID)
}

func summaryKey(trackerID uuid.UUID, from, to string) string {
	return fmt.Sprintf("insights:sum:%s:%s:%s", trackerID, from, to)
}

func keySetKey(trackerID uuid.UUID) string {
	return fmt.Sprintf("insights:keys:%s", trackerID)
}

// RedisCache keeps summaries in Redis. Every summary key is also tracked in a
// per-tracker set so invalidation can drop all ranges at once without a scan.
type RedisCache struct {
	rdb *redisx.Client
}

// NewRedisCache wraps an opened Redis client.
func NewRedisCache(rdb *redisx.Client) *RedisCache {
	return &RedisCache{rdb: rdb}
}

func (c *RedisCache) GetSummary(ctx context.Context, trackerID uuid.UUID, from, to string) (*Summary, bool) {
	b, err := c.rdb.Get(ctx, summaryKey(trackerID, from, to)).Bytes()
	if err != nil {
		return nil, false
	}
	var sum Summary
	if err := json.Unmarshal(b, &sum); err != nil {
		return nil, false
	}
	return &sum, true
}

func (c *RedisCache) SetSummary(ctx context.Context, sum *Summary, ttl time.Duration) {
	b, err := json.Marshal(sum)
	if err != nil {
		return
	}
	key := summaryKey(sum.TrackerID, sum.From, sum.To)
	pipe := c.rdb.Pipeline()
	pipe.Set(ctx, key, b, ttl)
	pipe.SAdd(ctx, keySetKey(sum.TrackerID), key)
	// the key set outlives members slightly so stale members are tolerated
	pipe.Expire(ctx, keySetKey(sum.TrackerID), ttl+time.Minute)
	if _, err := pipe.Exec(ctx); err != nil {
		cacheLogger.Warn("cache write failed", zap.Error(err))
	}
}

func (c *RedisCache) Invalidate(ctx context.Context, trackerIDs ...uuid.UUID) {
	for _, id := range trackerIDs {
		setKey := keySetKey(id)
		keys, err := c.rdb.SMembers(ctx, setKey).Result()
		if err != nil {
			cacheLogger.Warn("cache invalidate failed", zap.String("tracker_id", id.String()), zap.Error(err))
			continue
		}
		keys = append(keys, setKey)
		if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
			cacheLogger.Warn("cache invalidate failed", zap.String("tracker_id", id.String()), zap.Error(err))
		}
	}
}

// MemoryCache is the in-process fallback used when Redis is not configured,
// and by tests.
type MemoryCache struct {
	mu   sync.Mutex
	data map[string]memEntry
	keys map[uuid.UUID][]string
}

type memEntry struct {
	sum     *Summary
	expires time.Time
}

// NewMemoryCache builds an empty MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{data: map[string]memEntry{}, keys: map[uuid.UUID][]string{}}
}

func (c *MemoryCache) GetSummary(ctx context.Context, trackerID uuid.UUID, from, to string) (*Summary, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.data[summaryKey(trackerID, from, to)]
	if !ok || time.Now().After(e.expires) {
		return nil, false
	}
	return e.sum, true
}

func (c *MemoryCache) SetSummary(ctx context.Context, sum *Summary, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := summaryKey(sum.TrackerID, sum.From, sum.To)
	c.data[key] = memEntry{sum: sum, expires: time.Now().Add(ttl)}
	c.keys[sum.TrackerID] = append(c.keys[sum.TrackerID], key)
}

func (c *MemoryCache) Invalidate(ctx context.Context, trackerIDs ...uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range trackerIDs {
		for _, key := range c.keys[id] {
			delete(c.data, key)
		}
		delete(c.keys, id)
	}
}
