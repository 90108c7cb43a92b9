package httpx

import (
	"net/http"
	"strings"
)

// RequireAnyScope admits callers whose access token grants at least one of
// required. It must run after AuthnMiddleware; an unauthenticated request
// is refused with 401.
func RequireAnyScope(required ...string) Middleware {
	return requireScopes(required, func(have map[string]struct{}) bool {
		for _, s := range required {
			if _, ok := have[s]; ok {
				return true
			}
		}
		return false
	})
}

// RequireAllScopes admits callers whose access token grants every scope in
// required.
func RequireAllScopes(required ...string) Middleware {
	return requireScopes(required, func(have map[string]struct{}) bool {
		for _, s := range required {
			if _, ok := have[s]; !ok {
				return false
			}
		}
		return true
	})
}

func requireScopes(required []string, allow func(map[string]struct{}) bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ClaimsFromContext(r.Context()); !ok {
				writeBearerError(w, "missing bearer token")
				return
			}

			scopes := scopesFromCtx(r.Context())
			have := make(map[string]struct{}, len(scopes))
			for _, s := range scopes {
				have[s] = struct{}{}
			}

			if !allow(have) {
				writeBearerScopeError(w, http.StatusForbidden, required...)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RFC 6750-compliant error response for bearer insufficient_scope.
func writeBearerScopeError(w http.ResponseWriter, code int, required ...string) {
	w.Header().
		Set("WWW-Authenticate", `Bearer error="insufficient_scope", scope="`+strings.Join(required, " ")+`"`)
	w.WriteHeader(code)
	_, _ = w.Write([]byte("insufficient_scope"))
}
