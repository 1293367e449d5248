package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is one logged-in browser.
type Session struct {
	UserID    string
	Nickname  string
	ExpiresAt time.Time
}

// SessionStore keeps sessions in process memory under a mutex, the
// same flat-map-plus-TTL shape as the analysis cache. Sessions do not
// survive a restart; users just log in again.
type SessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]Session
}

// NewSessionStore creates a session store with the given lifetime.
func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 72 * time.Hour
	}
	return &SessionStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]Session),
	}
}

// Create opens a session and returns its opaque token.
func (s *SessionStore) Create(userID, nickname string) string {
	token := uuid.New().String()
	s.mu.Lock()
	s.sessions[token] = Session{
		UserID:    userID,
		Nickname:  nickname,
		ExpiresAt: s.now().Add(s.ttl),
	}
	s.mu.Unlock()
	return token
}

// Get resolves a token to its session. Expired sessions are evicted
// and reported absent.
func (s *SessionStore) Get(token string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[token]
	if !ok {
		return Session{}, false
	}
	if !s.now().Before(session.ExpiresAt) {
		delete(s.sessions, token)
		return Session{}, false
	}
	return session, true
}

// Delete ends a session; unknown tokens are a no-op.
func (s *SessionStore) Delete(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
