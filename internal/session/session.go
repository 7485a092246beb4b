package session

import (
	"fmt"
	"sync"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the identity payload the backend embeds in its tokens.
type Claims struct {
	UserID string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func (c Claims) IsOrganizer() bool {
	return c.Role == "organizer"
}

// Session holds the remote credential for the current process. Issuing and
// revoking tokens is the auth layer's job; the catalog only cares whether a
// credential is present (remote mode) and whose identity it carries.
type Session struct {
	mu     sync.RWMutex
	token  string
	claims Claims
}

func New() *Session {
	return &Session{}
}

// SetToken stores the credential and extracts its identity claims. The
// signature is the backend's to verify; the client only reads the payload.
func (s *Session) SetToken(token string) error {
	const op = "session.SetToken"

	var claims Claims

	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.claims = claims

	return nil
}

func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.claims = Claims{}
}

// Active reports whether a remote credential is present. This is the mode
// selector's single input: token present means remote mode.
func (s *Session) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token != ""
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

func (s *Session) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.claims.UserID
}

func (s *Session) Claims() Claims {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.claims
}
