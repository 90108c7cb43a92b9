package http

import (
	"net/http"

	"github.com/aussiebroadwan/cognitoauth/pkg/httpx"
	"github.com/aussiebroadwan/cognitoauth/pkg/slogx"
)

// JWKSHandler re-publishes the pool's keys from the local cache, so
// neighbouring services can share one download.
//
//	@Summary		Get JWKS
//	@Description	Returns the user pool's JSON Web Key Set from the local cache.
//	@Tags			well-known
//	@Produce		json
//	@Success		200	{object}	object					"The JSON Web Key Set"
//	@Failure		503	{object}	httpx.ErrorResponse	"keys unavailable"
//	@Router			/.well-known/jwks.json [get].
func JWKSHandler(pool PoolKeys) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ks, err := pool.LoadKeys(r.Context())
		if err != nil {
			slogx.FromContext(r.Context()).Error("key set unavailable", "err", err)
			httpx.WriteError(w, http.StatusServiceUnavailable, "temporarily_unavailable", "verification keys unavailable")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, ks)
	}
}
