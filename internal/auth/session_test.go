package auth

import (
	"testing"
	"time"
)

func TestSessionStore_CreateAndGet(t *testing.T) {
	store := NewSessionStore(time.Hour)

	token := store.Create("kakao_123", "피트한 라가불린")
	if token == "" {
		t.Fatal("expected a non-empty token")
	}

	session, ok := store.Get(token)
	if !ok {
		t.Fatal("expected session to exist")
	}
	if session.UserID != "kakao_123" {
		t.Errorf("expected user kakao_123, got %q", session.UserID)
	}
	if session.Nickname != "피트한 라가불린" {
		t.Errorf("unexpected nickname %q", session.Nickname)
	}
}

func TestSessionStore_UnknownToken(t *testing.T) {
	store := NewSessionStore(time.Hour)
	if _, ok := store.Get("no-such-token"); ok {
		t.Error("expected miss for unknown token")
	}
}

func TestSessionStore_Expiry(t *testing.T) {
	store := NewSessionStore(time.Hour)
	current := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	token := store.Create("kakao_123", "nick")

	current = current.Add(59 * time.Minute)
	if _, ok := store.Get(token); !ok {
		t.Fatal("session should still be alive before the TTL")
	}

	current = current.Add(2 * time.Minute)
	if _, ok := store.Get(token); ok {
		t.Fatal("session should have expired")
	}

	// expired sessions are evicted, not just hidden
	store.mu.Lock()
	_, still := store.sessions[token]
	store.mu.Unlock()
	if still {
		t.Error("expired session should be removed from the store")
	}
}

func TestSessionStore_Delete(t *testing.T) {
	store := NewSessionStore(time.Hour)
	token := store.Create("kakao_123", "nick")

	store.Delete(token)
	if _, ok := store.Get(token); ok {
		t.Error("deleted session should be gone")
	}

	// deleting twice is fine
	store.Delete(token)
}
