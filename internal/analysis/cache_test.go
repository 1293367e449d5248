package analysis

import (
	"testing"
	"time"
)

func TestResultCache_Roundtrip(t *testing.T) {
	cache := NewResultCache(time.Minute)

	if _, ok := cache.Get("missing"); ok {
		t.Error("expected miss for unknown key")
	}

	cache.Set("k", 42)
	got, ok := cache.Get("k")
	if !ok {
		t.Fatal("expected hit")
	}
	if got.(int) != 42 {
		t.Errorf("got %v, want 42", got)
	}
}

func TestResultCache_Expiry(t *testing.T) {
	cache := NewResultCache(5 * time.Minute)
	current := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return current }

	cache.Set("k", "v")

	current = current.Add(5*time.Minute - time.Second)
	if _, ok := cache.Get("k"); !ok {
		t.Fatal("entry should survive inside the TTL")
	}

	// the TTL boundary itself counts as expired
	current = current.Add(time.Second)
	if _, ok := cache.Get("k"); ok {
		t.Fatal("entry should expire at the TTL boundary")
	}

	// expired reads evict
	cache.mu.Lock()
	_, still := cache.entries["k"]
	cache.mu.Unlock()
	if still {
		t.Error("expired entry should be evicted on read")
	}
}

func TestResultCache_SetRestartsTTL(t *testing.T) {
	cache := NewResultCache(5 * time.Minute)
	current := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return current }

	cache.Set("k", 1)
	current = current.Add(4 * time.Minute)
	cache.Set("k", 2)
	current = current.Add(4 * time.Minute)

	got, ok := cache.Get("k")
	if !ok {
		t.Fatal("rewritten entry should still be fresh")
	}
	if got.(int) != 2 {
		t.Errorf("got %v, want 2", got)
	}
}

func TestResultCache_Clear(t *testing.T) {
	cache := NewResultCache(time.Minute)
	cache.Set("a", 1)
	cache.Set("b", 2)

	cache.Clear()

	if _, ok := cache.Get("a"); ok {
		t.Error("cleared entry should be gone")
	}
	if _, ok := cache.Get("b"); ok {
		t.Error("cleared entry should be gone")
	}
}

func TestNewResultCache_DefaultTTL(t *testing.T) {
	cache := NewResultCache(0)
	if cache.ttl != DefaultCacheTTL {
		t.Errorf("ttl = %v, want %v", cache.ttl, DefaultCacheTTL)
	}
}
