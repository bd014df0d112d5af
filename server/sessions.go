package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/etnz/advisor"
	"github.com/google/uuid"
)

const sessionCookie = "cra_session"

// visitor is what the server remembers about one browser.
type visitor struct {
	session  *advisor.Session
	currency string
	seen     time.Time
}

// sessionStore holds one visitor per session id. Visitors idle for longer than
// ttl are evicted on the next access to the store.
//
// Requests work on a copy and save it whole, so of two concurrent requests on
// the same session the last one to save wins.
type sessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	visitors map[string]*visitor
}

func newSessionStore(ttl time.Duration, now func() time.Time) *sessionStore {
	if now == nil {
		now = time.Now
	}
	return &sessionStore{ttl: ttl, now: now, visitors: make(map[string]*visitor)}
}

// load returns a copy of the visitor id, or a fresh one. Changes to the copy
// are only visible to other requests once saved.
func (s *sessionStore) load(id, currency string) visitor {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evict()
	v, ok := s.visitors[id]
	if !ok {
		return visitor{session: advisor.NewSession(), currency: currency}
	}
	return visitor{session: v.session.Clone(), currency: v.currency}
}

func (s *sessionStore) save(id string, v visitor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v.seen = s.now()
	s.visitors[id] = &v
}

func (s *sessionStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evict()
	return len(s.visitors)
}

// evict removes idle visitors. The caller holds the lock.
func (s *sessionStore) evict() {
	deadline := s.now().Add(-s.ttl)
	for id, v := range s.visitors {
		if v.seen.Before(deadline) {
			delete(s.visitors, id)
		}
	}
}

// sessionID returns the session id of r, issuing a new cookie when r has none.
func sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			return id.String()
		}
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
