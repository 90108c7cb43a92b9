package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/cognitoauth/pkg/jwtx"
)

// PoolVerifier binds a Verifier to the one pool this service guards.
type PoolVerifier struct {
	Verifier   *jwtx.Verifier
	Region     string
	UserPoolID string
}

// NewPoolVerifier builds the key directory and verifier described by cfg.
func NewPoolVerifier(cfg Config) *PoolVerifier {
	dir := jwtx.NewKeyDirectory(&http.Client{})
	dir.BaseURL = cfg.JWKSBaseURL
	if cfg.KeyFetchTimeout > 0 {
		dir.Timeout = cfg.KeyFetchTimeout
	}

	return &PoolVerifier{
		Verifier:   jwtx.NewVerifier(dir),
		Region:     cfg.Region,
		UserPoolID: cfg.UserPoolID,
	}
}

// VerifyAccessToken checks token against the pool.
func (p *PoolVerifier) VerifyAccessToken(ctx context.Context, token string) (*jwtx.AccessClaims, error) {
	return p.Verifier.VerifyClaims(ctx, token, p.Region, p.UserPoolID)
}

// KeysCached reports whether the pool's keys are held.
func (p *PoolVerifier) KeysCached() bool {
	return p.Verifier.Keys.Cached(p.Region, p.UserPoolID)
}

// LoadKeys returns the pool's keys, downloading them if needed.
func (p *PoolVerifier) LoadKeys(ctx context.Context) (*jwtx.KeySet, error) {
	return p.Verifier.Keys.Get(ctx, p.Region, p.UserPoolID)
}

// WarmKeys downloads the pool's keys ahead of the first request. A failure
// is logged and left for the first request to retry.
func WarmKeys(ctx context.Context, p *PoolVerifier, logger *slog.Logger) {
	ks, err := p.LoadKeys(ctx)
	if err != nil {
		logger.Warn("key set warm-up failed",
			"region", p.Region,
			"user_pool_id", p.UserPoolID,
			"error", err,
		)
		return
	}

	kids := make([]string, 0, ks.Len())
	for _, k := range ks.Keys() {
		kids = append(kids, k.KeyID)
	}
	logger.Info("key set loaded",
		"region", p.Region,
		"user_pool_id", p.UserPoolID,
		"kids", kids,
	)
}
