package client

import (
	"errors"
	"strings"
	"sync"
	"time"
)

// ErrLoginRequired is returned by admin calls made without a live session.
// No request is sent in that case.
var ErrLoginRequired = errors.New("admin login required")

// Session holds the admin bearer token and the backend origin file paths resolve against.
type Session struct {
	mu        sync.RWMutex
	origin    string
	token     string
	expiresAt time.Time
	now       func() time.Time
}

// NewSession creates an empty session for the backend at origin
func NewSession(origin string) *Session {
	return &Session{
		origin: strings.TrimRight(origin, "/"),
		now:    time.Now,
	}
}

// WithClock replaces the session's time source
func (s *Session) WithClock(now func() time.Time) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
	return s
}

// Origin returns the backend origin without a trailing slash
func (s *Session) Origin() string {
	return s.origin
}

// Set stores a token issued by login. A zero expiresAt never expires.
func (s *Session) Set(token string, expiresAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.expiresAt = expiresAt
}

// Clear logs the session out
func (s *Session) Clear() {
	s.Set("", time.Time{})
}

// Authorized reports whether a token is present and not yet expired
func (s *Session) Authorized() bool {
	_, err := s.Token()
	return err == nil
}

// Token returns the bearer token, or ErrLoginRequired when absent or expired
func (s *Session) Token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == "" {
		return "", ErrLoginRequired
	}
	if !s.expiresAt.IsZero() && !s.now().Before(s.expiresAt) {
		return "", ErrLoginRequired
	}
	return s.token, nil
}

// ResolveURL joins a server-relative file path to the backend origin.
// Absolute URLs (such as presigned S3 links) are returned unchanged.
func (s *Session) ResolveURL(path string) string {
	if path == "" || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return s.origin + "/" + strings.TrimLeft(path, "/")
}
