package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"team-fit/internal/domain"
)

func TestMemoryProfileCache_RoundTrip(t *testing.T) {
	cache := NewMemoryProfileCache(time.Minute)
	profile := domain.Profile{Username: "alice", Skills: []domain.SkillObservation{{Name: "Go"}}}

	cache.Set(context.Background(), "alice", profile)

	got, ok := cache.Get(context.Background(), "alice")
	if !ok {
		t.Fatalf("expected cache hit")
	}
	if got.Username != "alice" || len(got.Skills) != 1 {
		t.Fatalf("unexpected cached profile: %+v", got)
	}
}

func TestMemoryProfileCache_NormalizesUsername(t *testing.T) {
	cache := NewMemoryProfileCache(time.Minute)
	cache.Set(context.Background(), "  Alice ", domain.Profile{Username: "alice"})

	if _, ok := cache.Get(context.Background(), "alice"); !ok {
		t.Fatalf("expected hit for normalized username")
	}
	if _, ok := cache.Get(context.Background(), ""); ok {
		t.Fatalf("expected miss for empty username")
	}
}

func TestMemoryProfileCache_ExpiresEntries(t *testing.T) {
	cache := &memoryProfileCache{items: make(map[string]cachedProfile), ttl: -time.Minute}
	cache.Set(context.Background(), "alice", domain.Profile{Username: "alice"})

	if _, ok := cache.Get(context.Background(), "alice"); ok {
		t.Fatalf("expected expired entry to miss")
	}
}

type mockRedisCmds struct {
	data   map[string]string
	getErr error
	setKey string
	setTTL time.Duration
}

func (m *mockRedisCmds) Get(ctx context.Context, key string) *redis.StringCmd {
	if m.getErr != nil {
		return redis.NewStringResult("", m.getErr)
	}
	value, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(value, nil)
}

func (m *mockRedisCmds) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	raw, _ := value.([]byte)
	m.data[key] = string(raw)
	m.setKey = key
	m.setTTL = expiration
	return redis.NewStatusResult("OK", nil)
}

func TestRedisProfileCache_RoundTrip(t *testing.T) {
	mock := &mockRedisCmds{data: make(map[string]string)}
	cache := &redisProfileCache{client: mock, ttl: time.Hour, prefix: "genome:profile:"}

	profile := domain.Profile{Username: "alice", Skills: []domain.SkillObservation{{Name: "Go"}}}
	cache.Set(context.Background(), "Alice", profile)

	if mock.setKey != "genome:profile:alice" {
		t.Fatalf("expected normalized prefixed key, got %q", mock.setKey)
	}
	if mock.setTTL != time.Hour {
		t.Fatalf("expected ttl 1h, got %v", mock.setTTL)
	}

	got, ok := cache.Get(context.Background(), "alice")
	if !ok {
		t.Fatalf("expected cache hit")
	}
	if got.Username != "alice" {
		t.Fatalf("unexpected cached profile: %+v", got)
	}
}

func TestRedisProfileCache_DegradesToMissOnErrors(t *testing.T) {
	mock := &mockRedisCmds{data: make(map[string]string), getErr: errors.New("redis down")}
	cache := &redisProfileCache{client: mock, ttl: time.Hour, prefix: "genome:profile:"}

	if _, ok := cache.Get(context.Background(), "alice"); ok {
		t.Fatalf("expected miss when redis errors")
	}

	corrupted := &mockRedisCmds{data: map[string]string{"genome:profile:bob": "{not json"}}
	cache = &redisProfileCache{client: corrupted, ttl: time.Hour, prefix: "genome:profile:"}
	if _, ok := cache.Get(context.Background(), "bob"); ok {
		t.Fatalf("expected miss for corrupted payload")
	}
}

func TestRedisProfileCache_StoresJSON(t *testing.T) {
	mock := &mockRedisCmds{data: make(map[string]string)}
	cache := &redisProfileCache{client: mock, ttl: time.Hour, prefix: "genome:profile:"}

	cache.Set(context.Background(), "alice", domain.Profile{Username: "alice"})

	var stored domain.Profile
	if err := json.Unmarshal([]byte(mock.data["genome:profile:alice"]), &stored); err != nil {
		t.Fatalf("expected stored value to be valid JSON, got %v", err)
	}
	if stored.Username != "alice" {
		t.Fatalf("unexpected stored profile: %+v", stored)
	}
}
