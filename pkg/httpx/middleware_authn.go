package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/cognitoauth/pkg/autherr"
	"github.com/aussiebroadwan/cognitoauth/pkg/cryptox"
	"github.com/aussiebroadwan/cognitoauth/pkg/jwtx"
	"github.com/aussiebroadwan/cognitoauth/pkg/slogx"
)

// AccessTokenVerifier checks a bearer access token. *authsdk.Client
// satisfies it.
type AccessTokenVerifier interface {
	VerifyAccessToken(ctx context.Context, token string) (*jwtx.AccessClaims, error)
}

// AuthnMiddleware admits requests carrying a valid access token and stores
// its claims in the request context.
//
// Expired tokens are refused with error_description "token expired" so
// clients know to refresh. A key download failure is the server's problem
// and answers 503.
func AuthnMiddleware(v AccessTokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.VerifyAccessToken(ctx, raw)
			if err != nil {
				fp := cryptox.ShortFingerprint(raw)
				switch autherr.KindOf(err) {
				case autherr.KindTokenExpiry:
					log.Info("access token expired", "token_fp", fp)
					writeBearerError(w, "token expired")
				case autherr.KindKeyFetch, autherr.KindConfiguration:
					log.Error("access token could not be checked", "token_fp", fp, "err", err)
					WriteError(w, http.StatusServiceUnavailable, "temporarily_unavailable", "verification keys unavailable")
				default:
					log.Warn("jwt verify failed", "token_fp", fp, "err", err)
					writeBearerError(w, "token verification failed")
				}
				return
			}

			// Inject into context for downstream handlers.
			ctx = contextWithAuth(ctx, claims)
			ctx = slogx.WithContext(ctx, log.With("username", claims.Username))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	w.WriteHeader(http.StatusUnauthorized)
}
