package services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"tripweave/internal/models/response_models"
)

// ItineraryCache memoizes generated itineraries by request content hash.
// Generation is recomputed wholesale on every edit, so identical inputs from
// rapid UI edits hit the cache instead of the scheduler.
type ItineraryCache interface {
	Get(ctx context.Context, key string) (*response_models.ItineraryResponse, bool)
	Set(ctx context.Context, key string, value *response_models.ItineraryResponse, ttl time.Duration)
}

type itineraryCacheEntry struct {
	value     *response_models.ItineraryResponse
	expiresAt time.Time
}

type inMemoryItineraryCache struct {
	mu    sync.RWMutex
	store map[string]itineraryCacheEntry
}

func NewInMemoryItineraryCache() ItineraryCache {
	return &inMemoryItineraryCache{store: make(map[string]itineraryCacheEntry)}
}

func (c *inMemoryItineraryCache) Get(_ context.Context, key string) (*response_models.ItineraryResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, ok := c.store[key]
	if !ok || time.Now().After(it.expiresAt) {
		return nil, false
	}
	return it.value, true
}

func (c *inMemoryItineraryCache) Set(_ context.Context, key string, value *response_models.ItineraryResponse, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[key] = itineraryCacheEntry{value: value, expiresAt: time.Now().Add(ttl)}
}

type redisItineraryCache struct {
	client *redis.Client
}

// NewRedisItineraryCache shares generated itineraries across instances.
// Failures degrade to cache misses; the scheduler never depends on redis.
func NewRedisItineraryCache(client *redis.Client) ItineraryCache {
	return &redisItineraryCache{client: client}
}

func (c *redisItineraryCache) Get(ctx context.Context, key string) (*response_models.ItineraryResponse, bool) {
	raw, err := c.client.Get(ctx, "itinerary:"+key).Bytes()
	if err != nil {
		return nil, false
	}
	var out response_models.ItineraryResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, false
	}
	return &out, true
}

func (c *redisItineraryCache) Set(ctx context.Context, key string, value *response_models.ItineraryResponse, ttl time.Duration) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.client.Set(ctx, "itinerary:"+key, raw, ttl)
}
