package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/cognitoauth/pkg/httpx"
)

// WhoamiResponse describes the caller behind a verified access token.
type WhoamiResponse struct {
	Username  string    `json:"username"`
	Subject   string    `json:"sub"`
	ClientID  string    `json:"client_id,omitempty"`
	Scope     string    `json:"scope,omitempty"`
	Groups    []string  `json:"groups,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

// WhoamiHandler echoes the verified claims. It must sit behind
// httpx.AuthnMiddleware.
//
//	@Summary		Describe the caller
//	@Description	Verifies the bearer access token and returns who it belongs to.
//	@Tags			Tokens
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	WhoamiResponse		"username, sub, client_id, scope, groups, expires_at"
//	@Failure		401	{object}	httpx.ErrorResponse	"missing, invalid or expired access token"
//	@Failure		503	{object}	httpx.ErrorResponse	"keys unavailable"
//	@Router			/v1/whoami [get].
func WhoamiHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := httpx.ClaimsFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_token", "missing claims")
		return
	}

	response := WhoamiResponse{
		Username: claims.Username,
		Subject:  claims.Subject,
		ClientID: claims.ClientID,
		Scope:    claims.Scope,
		Groups:   claims.Groups,
	}
	if claims.ExpiresAt != nil {
		response.ExpiresAt = claims.ExpiresAt.Time.UTC()
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}
