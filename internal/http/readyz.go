package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/cognitoauth/pkg/httpx"
	"github.com/aussiebroadwan/cognitoauth/pkg/slogx"
)

// ReadyzHandler answers 200 once the pool's keys are held or can be loaded
// now, and 503 with status "degraded" otherwise.
//
//	@Summary		Readiness check
//	@Description	Reports whether the user pool's signing keys are cached or can be downloaded now.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	HealthResponse	"keys unavailable"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, pool PoolKeys) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &HealthChecks{Keys: "ok"}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if !pool.KeysCached() {
			if _, err := pool.LoadKeys(r.Context()); err != nil {
				slogx.FromContext(r.Context()).Warn("readiness key load failed", "err", err)
				checks.Keys = "error: " + err.Error()
				overallStatus = "degraded"
				statusCode = http.StatusServiceUnavailable
			}
		}

		response := HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
