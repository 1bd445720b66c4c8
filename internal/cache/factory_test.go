package cache

import (
	"context"
	"testing"
	"time"
)

func TestNewCache_DefaultsToMemory(t *testing.T) {
	c, err := NewCache(DefaultCacheConfig())
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}
	defer func() { _ = c.Close() }()

	if _, ok := c.(*MemoryCache); !ok {
		t.Errorf("expected *MemoryCache, got %T", c)
	}
}

func TestNewCache_MemoryRoundTrip(t *testing.T) {
	c, err := NewCache(CacheConfig{
		Type:       "memory",
		DefaultTTL: time.Minute,
	})
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}
	defer func() { _ = c.Close() }()

	ctx := context.Background()
	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	val, err := c.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(val) != "v" {
		t.Errorf("got %q, want v", val)
	}
}

func TestNewCache_RedisWithoutURLFallsBackToMemory(t *testing.T) {
	c, err := NewCache(CacheConfig{Type: "redis", DefaultTTL: time.Minute})
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}
	defer func() { _ = c.Close() }()

	if _, ok := c.(*MemoryCache); !ok {
		t.Errorf("expected *MemoryCache fallback, got %T", c)
	}
}
