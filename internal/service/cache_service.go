package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vesteevolta/backend/internal/logger"
)

// Cache key prefixes.
const (
	CatalogCachePrefix = "catalog:"
)

// CacheService stores serialized responses with a TTL. With a Redis client
// entries are shared between instances; otherwise they live in process
// memory.
type CacheService struct {
	rdb *redis.Client

	mu    sync.RWMutex
	cache map[string]*cacheEntry
	stop  chan struct{}
	once  sync.Once
}

type cacheEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewCacheService accepts a nil client for the in-memory store.
func NewCacheService(rdb *redis.Client) *CacheService {
	cs := &CacheService{
		rdb:   rdb,
		cache: make(map[string]*cacheEntry),
		stop:  make(chan struct{}),
	}
	if rdb == nil {
		go cs.cleanup(5 * time.Minute)
	}
	return cs
}

// Shared reports whether entries are kept in Redis.
func (cs *CacheService) Shared() bool { return cs.rdb != nil }

func (cs *CacheService) Get(ctx context.Context, key string) ([]byte, bool) {
	if cs.rdb != nil {
		data, err := cs.rdb.Get(ctx, key).Bytes()
		if err != nil {
			if !errors.Is(err, redis.Nil) {
				logger.Log.WithError(err).WithField("key", key).Warn("cache get failed")
			}
			return nil, false
		}
		return data, true
	}

	cs.mu.RLock()
	defer cs.mu.RUnlock()

	entry, ok := cs.cache[key]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.data, true
}

func (cs *CacheService) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if cs.rdb != nil {
		if err := cs.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
			logger.Log.WithError(err).WithField("key", key).Warn("cache set failed")
		}
		return
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.cache[key] = &cacheEntry{data: value, expiresAt: time.Now().Add(ttl)}
}

// InvalidateByPrefix drops every key starting with prefix.
func (cs *CacheService) InvalidateByPrefix(ctx context.Context, prefix string) {
	if cs.rdb != nil {
		iter := cs.rdb.Scan(ctx, 0, prefix+"*", 100).Iterator()
		var keys []string
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			logger.Log.WithError(err).WithField("prefix", prefix).Warn("cache scan failed")
			return
		}
		if len(keys) > 0 {
			if err := cs.rdb.Del(ctx, keys...).Err(); err != nil {
				logger.Log.WithError(err).WithField("prefix", prefix).Warn("cache invalidation failed")
			}
		}
		return
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()
	for key := range cs.cache {
		if strings.HasPrefix(key, prefix) {
			delete(cs.cache, key)
		}
	}
}

// Close stops the in-memory cleanup loop.
func (cs *CacheService) Close() {
	cs.once.Do(func() { close(cs.stop) })
}

func (cs *CacheService) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-cs.stop:
			return
		case <-ticker.C:
			cs.mu.Lock()
			now := time.Now()
			for key, entry := range cs.cache {
				if now.After(entry.expiresAt) {
					delete(cs.cache, key)
				}
			}
			cs.mu.Unlock()
		}
	}
}
