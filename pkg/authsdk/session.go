package authsdk

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/aussiebroadwan/cognitoauth/pkg/jwtx"
)

// refreshBuffer is how long before expiry the access token is renewed.
const refreshBuffer = 30 * time.Second

// Session holds the tokens of a completed login and renews the access token
// with the refresh-token flow when it is about to expire.
type Session struct {
	client   *Client
	username string

	mu           sync.RWMutex
	accessToken  string
	idToken      string
	refreshToken string
	expiresAt    time.Time
}

// NewSession wraps the result of a completed login for username.
func (c *Client) NewSession(username string, result AuthenticationResult) *Session {
	s := &Session{client: c, username: username}
	s.apply(result)
	return s
}

// apply stores result. Callers hold mu or own s exclusively.
func (s *Session) apply(result AuthenticationResult) {
	s.accessToken = result.AccessToken
	if result.IdToken != "" {
		s.idToken = result.IdToken
	}
	// Refresh responses omit the refresh token; keep the one we have.
	if result.RefreshToken != "" {
		s.refreshToken = result.RefreshToken
	}
	s.expiresAt = s.client.now().Add(time.Duration(result.ExpiresIn)*time.Second - refreshBuffer)
}

// AccessToken returns a current access token, refreshing it first if it is
// within 30 seconds of expiry.
func (s *Session) AccessToken(ctx context.Context) (string, error) {
	s.mu.RLock()
	if s.client.now().Before(s.expiresAt) {
		token := s.accessToken
		s.mu.RUnlock()
		return token, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another goroutine may have refreshed while we waited for the lock.
	if s.client.now().Before(s.expiresAt) {
		return s.accessToken, nil
	}

	if err := s.refreshLocked(ctx); err != nil {
		return "", err
	}
	return s.accessToken, nil
}

// Refresh renews the tokens now regardless of expiry.
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshLocked(ctx)
}

func (s *Session) refreshLocked(ctx context.Context) error {
	if s.refreshToken == "" {
		return ErrNoRefreshToken
	}

	result, err := s.client.Refresh(ctx, s.username, s.refreshToken)
	if err != nil {
		return fmt.Errorf("authsdk: refresh session: %w", err)
	}

	s.apply(*result)
	return nil
}

// Claims verifies the current access token and returns its claims.
func (s *Session) Claims(ctx context.Context) (*jwtx.AccessClaims, error) {
	token, err := s.AccessToken(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, ErrNoAccessToken
	}
	return s.client.VerifyAccessToken(ctx, token)
}

// Username returns the user the session belongs to.
func (s *Session) Username() string { return s.username }

// IDToken returns the current ID token.
func (s *Session) IDToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.idToken
}

// RefreshToken returns the current refresh token.
func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}

// ExpiresAt returns when the session will next refresh.
func (s *Session) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt
}
