// Package session holds runtime state for the active control client.
package session

import (
	"crypto/subtle"
	"sync"
	"time"
)

// Snapshot represents a read-only view of the current session state.
type Snapshot struct {
	Authenticated bool       `json:"authenticated"`
	InputEnabled  bool       `json:"inputEnabled"`
	Client        string     `json:"client,omitempty"`
	Actions       int        `json:"actions"`
	LastAction    *time.Time `json:"lastAction,omitempty"`
}

// Session holds runtime state for the active control client.
type Session struct {
	mu            sync.RWMutex
	token         string
	authenticated bool
	inputEnabled  bool
	client        string
	actions       int
	lastAction    time.Time
}

// New returns an initialized session guarded by token.
func New(token string) *Session {
	return &Session{
		token:        token,
		inputEnabled: true,
	}
}

// Authenticate validates the token in constant time and marks the session as authenticated.
func (s *Session) Authenticate(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if Valid(s.token, token) {
		s.authenticated = true
		return true
	}
	s.authenticated = false
	return false
}

// Check reports whether token matches the session token without changing state.
func (s *Session) Check(token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Valid(s.token, token)
}

// Valid compares token against expected in constant time. An empty expected token never matches.
func Valid(expected, token string) bool {
	if expected == "" || token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(expected)) == 1
}

// Logout clears authentication state and the client address.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = false
	s.client = ""
}

// IsAuthenticated reports whether the session is authenticated.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// SetClient records the remote address of the active connection.
func (s *Session) SetClient(addr string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.client = addr
}

// SetInputEnabled toggles whether pointer actions reach the driver.
func (s *Session) SetInputEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputEnabled = enabled
}

// InputEnabled reports whether pointer actions reach the driver.
func (s *Session) InputEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inputEnabled
}

// RecordAction counts an executed pointer action.
func (s *Session) RecordAction(at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actions++
	s.lastAction = at
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := Snapshot{
		Authenticated: s.authenticated,
		InputEnabled:  s.inputEnabled,
		Client:        s.client,
		Actions:       s.actions,
	}
	if s.actions > 0 {
		at := s.lastAction
		snap.LastAction = &at
	}
	return snap
}
