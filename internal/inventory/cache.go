package inventory

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/HabitInventory_Go/internal/domain"
	"github.com/osse101/HabitInventory_Go/internal/metrics"
)

// CacheConfig sizes the snapshot cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// DefaultCacheConfig returns the default cache sizing
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{Size: DefaultCacheSize, TTL: DefaultCacheTTL}
}

// CacheStats reports snapshot cache effectiveness
type CacheStats struct {
	Hits    int64   `json:"hits"`
	Misses  int64   `json:"misses"`
	Size    int     `json:"size"`
	HitRate float64 `json:"hit_rate"`
}

type cachedSnapshot struct {
	version  string
	snapshot *domain.ItemSnapshot
}

// snapshotCache is an expiring LRU of item snapshots keyed by user ID.
type snapshotCache struct {
	lru    *expirable.LRU[string, *cachedSnapshot]
	hits   atomic.Int64
	misses atomic.Int64
}

func newSnapshotCache(cfg CacheConfig) *snapshotCache {
	if cfg.Size <= 0 {
		cfg.Size = DefaultCacheSize
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultCacheTTL
	}
	return &snapshotCache{
		lru: expirable.NewLRU[string, *cachedSnapshot](cfg.Size, nil, cfg.TTL),
	}
}

func (c *snapshotCache) Get(userID string) (*domain.ItemSnapshot, bool) {
	entry, found := c.lru.Get(userID)
	if found && entry.version != CacheSchemaVersion {
		c.lru.Remove(userID)
		found = false
	}

	if !found {
		c.misses.Add(1)
		metrics.SnapshotCacheLookups.WithLabelValues(metrics.OutcomeMiss).Inc()
		return nil, false
	}

	c.hits.Add(1)
	metrics.SnapshotCacheLookups.WithLabelValues(metrics.OutcomeHit).Inc()
	return entry.snapshot, true
}

func (c *snapshotCache) Set(snapshot *domain.ItemSnapshot) {
	c.lru.Add(snapshot.UserID, &cachedSnapshot{
		version:  CacheSchemaVersion,
		snapshot: snapshot,
	})
}

func (c *snapshotCache) Invalidate(userID string) {
	c.lru.Remove(userID)
}

func (c *snapshotCache) Stats() CacheStats {
	hits, misses := c.hits.Load(), c.misses.Load()
	stats := CacheStats{
		Hits:   hits,
		Misses: misses,
		Size:   c.lru.Len(),
	}
	if total := hits + misses; total > 0 {
		stats.HitRate = float64(hits) / float64(total)
	}
	return stats
}
