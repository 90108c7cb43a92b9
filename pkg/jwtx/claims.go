package jwtx

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenUse is the token_use value carried by access tokens. ID tokens
// carry "id" and are refused by the verifier.
const AccessTokenUse = "access"

// AccessClaims are the claims of a user pool access token.
type AccessClaims struct {
	// iss, sub, exp, iat and jti.
	jwt.RegisteredClaims

	TokenUse  string   `json:"token_use"`
	Username  string   `json:"username,omitempty"`
	ClientID  string   `json:"client_id,omitempty"`
	Scope     string   `json:"scope,omitempty"`
	AuthTime  int64    `json:"auth_time,omitempty"`
	OriginJTI string   `json:"origin_jti,omitempty"`
	EventID   string   `json:"event_id,omitempty"`
	Groups    []string `json:"cognito:groups,omitempty"`
	Version   int      `json:"version,omitempty"`
}

// Scopes splits the space-delimited scope claim.
func (c *AccessClaims) Scopes() []string {
	return strings.Fields(c.Scope)
}

// HasScope reports whether scope was granted.
func (c *AccessClaims) HasScope(scope string) bool {
	for _, s := range c.Scopes() {
		if s == scope {
			return true
		}
	}
	return false
}

// ValidateIssuer checks iss against the pool's issuer URL.
func (c *AccessClaims) ValidateIssuer(expected string) error {
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateTokenUse refuses anything but an access token.
func (c *AccessClaims) ValidateTokenUse() error {
	if c.TokenUse != AccessTokenUse {
		return ErrTokenUse
	}
	return nil
}

// ValidateExpiry fails once exp is strictly before now. A token whose exp
// equals now is still valid. A token without exp is refused outright.
func (c *AccessClaims) ValidateExpiry(now time.Time) error {
	if c.ExpiresAt == nil {
		return ErrMissingExpiry
	}
	if c.ExpiresAt.Unix() < now.Unix() {
		return ErrExpired
	}
	return nil
}
