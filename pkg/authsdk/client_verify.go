package authsdk

import (
	"context"

	"github.com/aussiebroadwan/cognitoauth/pkg/jwtx"
)

// VerifyAccessToken checks token against the pool and returns its claims.
func (c *Client) VerifyAccessToken(ctx context.Context, token string) (*jwtx.AccessClaims, error) {
	return c.verifier.VerifyClaims(ctx, token, c.cfg.Region, c.cfg.UserPoolID)
}

// Username verifies token and returns its username claim.
func (c *Client) Username(ctx context.Context, token string) (string, error) {
	return c.verifier.Verify(ctx, token, c.cfg.Region, c.cfg.UserPoolID)
}

// WarmKeys downloads the pool's keys now rather than on the first
// verification.
func (c *Client) WarmKeys(ctx context.Context) error {
	_, err := c.keys.Get(ctx, c.cfg.Region, c.cfg.UserPoolID)
	return err
}

// SetKeySet replaces the pool's keys, for rotation or tests.
func (c *Client) SetKeySet(ks *jwtx.KeySet) {
	c.keys.Set(c.cfg.Region, c.cfg.UserPoolID, ks)
}

// InvalidateKeySet forgets the pool's keys; the next verification downloads
// them again.
func (c *Client) InvalidateKeySet() {
	c.keys.Invalidate(c.cfg.Region, c.cfg.UserPoolID)
}

// KeySetCached reports whether the pool's keys are held.
func (c *Client) KeySetCached() bool {
	return c.keys.Cached(c.cfg.Region, c.cfg.UserPoolID)
}
