// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/danielhkuo/insureai/auth"
	"github.com/danielhkuo/insureai/scenario"
)

var ErrInvalidSession = errors.New("invalid or expired session")

// Session is the state of one login. It lives only in memory and is
// discarded at logout or expiry.
type Session struct {
	ID        string
	Username  string
	CreatedAt time.Time
	ExpiresAt time.Time

	mu       sync.Mutex
	baseline *scenario.Baseline
}

// SetBaseline records the latest prediction for scenarios to start from.
func (s *Session) SetBaseline(b scenario.Baseline) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.baseline = &b
}

// Baseline returns the latest prediction, or false if none was made yet.
func (s *Session) Baseline() (scenario.Baseline, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.baseline == nil {
		return scenario.Baseline{}, false
	}
	return *s.baseline, true
}

// Manager issues and resolves sessions. Tokens are signed JWTs naming the
// session; the session itself stays server side.
type Manager struct {
	secret string
	ttl    time.Duration
	store  *cache.Cache
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret: secret,
		ttl:    ttl,
		store:  cache.New(ttl, ttl/2+time.Minute),
		now:    time.Now,
	}
}

// Create starts a session for username and returns it with its bearer token.
func (m *Manager) Create(username string) (*Session, string, error) {
	id, err := auth.GenerateSessionID()
	if err != nil {
		return nil, "", err
	}

	now := m.now()
	s := &Session{
		ID:        id,
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}

	token, err := auth.SignSessionToken(id, username, m.secret, s.ExpiresAt)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign session token: %w", err)
	}

	m.store.Set(id, s, m.ttl)
	slog.Info("session created", "username", username, "session_id", id)
	return s, token, nil
}

// Resolve verifies token and returns its live session.
func (m *Manager) Resolve(token string) (*Session, error) {
	claims, err := auth.ParseSessionToken(token, m.secret)
	if err != nil {
		return nil, ErrInvalidSession
	}

	v, ok := m.store.Get(claims.SessionID)
	if !ok {
		return nil, ErrInvalidSession
	}
	s := v.(*Session)
	if s.Username != claims.Subject || !m.now().Before(s.ExpiresAt) {
		return nil, ErrInvalidSession
	}
	return s, nil
}

// Destroy ends a session. Unknown IDs are ignored.
func (m *Manager) Destroy(id string) {
	if _, ok := m.store.Get(id); !ok {
		return
	}
	m.store.Delete(id)
	slog.Info("session destroyed", "session_id", id)
}

// Count returns the number of stored sessions, including expired ones not yet
// evicted. Used by tests and for diagnostics.
func (m *Manager) Count() int {
	return m.store.ItemCount()
}
