package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"restaurant_dashboard/internal/models"
	"restaurant_dashboard/pkg/utils"
)

const recordCacheKeyPrefix = "dashboard:records:"

// RedisClient is the subset of *redis.Client used by the cache and token store.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
}

// CachedRecordSource is a read-through Redis cache in front of another RecordSource.
// Cache failures are logged and the request falls through to the wrapped source.
type CachedRecordSource struct {
	next  RecordSource
	cache RedisClient
	ttl   time.Duration
}

// NewCachedRecordSource wraps next with a per-table cache entry that lives for ttl.
func NewCachedRecordSource(next RecordSource, cache RedisClient, ttl time.Duration) *CachedRecordSource {
	return &CachedRecordSource{next: next, cache: cache, ttl: ttl}
}

func recordCacheKey(table string) string {
	return recordCacheKeyPrefix + table
}

// FetchAll serves the table from Redis when cached, otherwise reads and caches it.
func (s *CachedRecordSource) FetchAll(ctx context.Context, table string) ([]models.RawRecord, error) {
	raw, err := s.cache.Get(ctx, recordCacheKey(table)).Bytes()
	switch {
	case err == nil:
		var records []models.RawRecord
		jsonErr := json.Unmarshal(raw, &records)
		if jsonErr == nil {
			utils.LogDebug("Record cache hit", map[string]interface{}{"table": table, "count": len(records)})
			return records, nil
		}
		utils.LogWarn("Discarding unreadable record cache entry", map[string]interface{}{"table": table, "error": jsonErr.Error()})
	case errors.Is(err, redis.Nil):
		utils.LogDebug("Record cache miss", map[string]interface{}{"table": table})
	default:
		utils.LogWarn("Record cache unavailable, reading upstream", map[string]interface{}{"table": table, "error": err.Error()})
	}

	return s.load(ctx, table)
}

// Refresh re-reads one table from the wrapped source and overwrites its cache entry.
func (s *CachedRecordSource) Refresh(ctx context.Context, table string) error {
	_, err := s.load(ctx, table)
	return err
}

func (s *CachedRecordSource) load(ctx context.Context, table string) ([]models.RawRecord, error) {
	records, err := s.next.FetchAll(ctx, table)
	if err != nil {
		return nil, err
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encoding %s for cache: %w", table, err)
	}
	if err := s.cache.Set(ctx, recordCacheKey(table), payload, s.ttl).Err(); err != nil {
		utils.LogWarn("Failed to store records in cache", map[string]interface{}{"table": table, "error": err.Error()})
	}
	return records, nil
}
