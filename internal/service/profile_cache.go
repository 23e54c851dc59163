package service

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"team-fit/internal/domain"
)

// ProfileCache guarda perfiles ya parseados para no golpear el upstream en
// cada analisis. Los fallos de cache degradan a miss, nunca a error.
type ProfileCache interface {
	Get(ctx context.Context, username string) (domain.Profile, bool)
	Set(ctx context.Context, username string, profile domain.Profile)
}

type cachedProfile struct {
	profile   domain.Profile
	expiresAt time.Time
}

type memoryProfileCache struct {
	mu    sync.Mutex
	items map[string]cachedProfile
	ttl   time.Duration
}

// NewMemoryProfileCache crea una cache en memoria para ambientes sin redis.
func NewMemoryProfileCache(ttl time.Duration) ProfileCache {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &memoryProfileCache{
		items: make(map[string]cachedProfile),
		ttl:   ttl,
	}
}

func (c *memoryProfileCache) Get(_ context.Context, username string) (domain.Profile, bool) {
	key := normalizeCacheKey(username)
	if key == "" {
		return domain.Profile{}, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	item, ok := c.items[key]
	if !ok {
		return domain.Profile{}, false
	}
	if time.Now().UTC().After(item.expiresAt) {
		delete(c.items, key)
		return domain.Profile{}, false
	}
	return item.profile, true
}

func (c *memoryProfileCache) Set(_ context.Context, username string, profile domain.Profile) {
	key := normalizeCacheKey(username)
	if key == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = cachedProfile{profile: profile, expiresAt: time.Now().UTC().Add(c.ttl)}
}

type redisProfileCmds interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type redisProfileCache struct {
	client redisProfileCmds
	ttl    time.Duration
	prefix string
}

// NewRedisProfileCache crea una cache respaldada por redis.
func NewRedisProfileCache(client *redis.Client, ttl time.Duration) ProfileCache {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &redisProfileCache{
		client: client,
		ttl:    ttl,
		prefix: "genome:profile:",
	}
}

func (c *redisProfileCache) Get(ctx context.Context, username string) (domain.Profile, bool) {
	key := normalizeCacheKey(username)
	if key == "" {
		return domain.Profile{}, false
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	raw, err := c.client.Get(ctx, c.prefix+key).Result()
	if err != nil {
		return domain.Profile{}, false
	}
	var profile domain.Profile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return domain.Profile{}, false
	}
	return profile, true
}

func (c *redisProfileCache) Set(ctx context.Context, username string, profile domain.Profile) {
	key := normalizeCacheKey(username)
	if key == "" {
		return
	}
	raw, err := json.Marshal(profile)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	_ = c.client.Set(ctx, c.prefix+key, raw, c.ttl).Err()
}

func normalizeCacheKey(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
