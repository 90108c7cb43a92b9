package jwtx

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier checks user pool access tokens locally against the pool's
// published keys. The checks run in a fixed order and stop at the first
// failure:
//
//  1. the token parses as a compact JWT
//  2. the pool's key set is obtained from Keys
//  3. an RS256 signature verifies against some key in the set
//  4. iss equals the pool's issuer URL
//  5. token_use is "access"
//  6. exp is not in the past
//
// No clock skew is tolerated.
type Verifier struct {
	Keys *KeyDirectory

	// Now returns the current time. Nil means time.Now.
	Now func() time.Time
}

// NewVerifier returns a Verifier reading keys from dir. A nil dir gets a
// fresh directory fetching from the public endpoints.
func NewVerifier(dir *KeyDirectory) *Verifier {
	if dir == nil {
		dir = NewKeyDirectory(nil)
	}
	return &Verifier{Keys: dir}
}

// Verify validates token and returns its username claim.
func (v *Verifier) Verify(ctx context.Context, token, region, userPoolID string) (string, error) {
	claims, err := v.VerifyClaims(ctx, token, region, userPoolID)
	if err != nil {
		return "", err
	}
	return claims.Username, nil
}

// VerifyClaims validates token and returns all of its claims.
func (v *Verifier) VerifyClaims(ctx context.Context, token, region, userPoolID string) (*AccessClaims, error) {
	if err := checkPool(region, userPoolID); err != nil {
		return nil, err
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	// Structure first, so garbage is refused before any key fetch.
	if _, _, err := parser.ParseUnverified(token, &AccessClaims{}); err != nil {
		return nil, ErrMalformed
	}

	keys, err := v.Keys.Get(ctx, region, userPoolID)
	if err != nil {
		return nil, err
	}

	claims := &AccessClaims{}
	_, err = parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return keys.rsaKeys(), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, ErrMalformed
		}
		return nil, ErrSignature
	}

	if err := claims.ValidateIssuer(IssuerURL(region, userPoolID)); err != nil {
		return nil, err
	}
	if err := claims.ValidateTokenUse(); err != nil {
		return nil, err
	}
	if err := claims.ValidateExpiry(v.now()); err != nil {
		return nil, err
	}

	return claims, nil
}

func (v *Verifier) now() time.Time {
	if v.Now != nil {
		return v.Now()
	}
	return time.Now()
}
