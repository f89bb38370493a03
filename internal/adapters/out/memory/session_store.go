// Package memory keeps per-session carts in process memory.
package memory

import (
	"sync"
	"time"

	"canteen/internal/core/domain/model/cart"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
)

type session struct {
	mu       sync.Mutex
	cart     *cart.Cart
	lastSeen time.Time
}

// SessionStore implements ports.SessionStore. The map is guarded by one
// RWMutex; each cart has its own mutex so sessions do not contend.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[kernel.UUID]*session
	now      func() time.Time
}

// NewSessionStore creates an empty store. A nil clock means time.Now.
func NewSessionStore(clock func() time.Time) *SessionStore {
	if clock == nil {
		clock = time.Now
	}
	return &SessionStore{
		sessions: make(map[kernel.UUID]*session),
		now:      clock,
	}
}

func (s *SessionStore) Start() (kernel.UUID, error) {
	id := kernel.NewUUID()
	c, err := cart.NewCart(id)
	if err != nil {
		return kernel.UUID{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = &session{cart: c, lastSeen: s.now()}
	return id, nil
}

func (s *SessionStore) End(id kernel.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

func (s *SessionStore) WithCart(id kernel.UUID, fn func(c *cart.Cart) error) error {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return errs.NewObjectNotFoundError("session", id.String())
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastSeen = s.now()
	return fn(sess.cart)
}

func (s *SessionStore) Sweep(idle time.Duration) int {
	cutoff := s.now().Add(-idle)

	s.mu.Lock()
	defer s.mu.Unlock()

	swept := 0
	for id, sess := range s.sessions {
		sess.mu.Lock()
		expired := sess.lastSeen.Before(cutoff)
		sess.mu.Unlock()

		if expired {
			delete(s.sessions, id)
			swept++
		}
	}
	return swept
}

// Len reports the number of open sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
