package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/cognitoauth/pkg/httpx"
	"github.com/aussiebroadwan/cognitoauth/pkg/jwtx"
	"github.com/aussiebroadwan/cognitoauth/pkg/slogx"

	_ "github.com/aussiebroadwan/cognitoauth/api/verifier" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// PoolKeys is the verification surface of the one user pool the service
// guards.
type PoolKeys interface {
	httpx.AccessTokenVerifier

	// KeysCached reports whether the pool's keys are already held.
	KeysCached() bool
	// LoadKeys returns the pool's keys, downloading them if needed.
	LoadKeys(ctx context.Context) (*jwtx.KeySet, error)
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	pool         PoolKeys
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
}

func NewRouter(pool PoolKeys, buildVersion string, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		pool:         pool,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerSystem()
	r.registerKeys()
	r.registerWhoami()

	r.Mux.Handle("GET /swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Cognito Token Verifier API
//	@version		0.1.0
//	@description	Verifies Cognito user pool access tokens for neighbouring services.
//	@description
//	@description				Tokens are RS256 JWTs checked against the pool's published JWKS.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Cognito access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerSystem() {
	r.Mux.HandleFunc("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.HandleFunc("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.pool))
}

func (r *Router) registerKeys() {
	r.Mux.HandleFunc("GET /.well-known/jwks.json", JWKSHandler(r.pool))
}

func (r *Router) registerWhoami() {
	r.Mux.Handle("GET /v1/whoami", httpx.Chain(
		http.HandlerFunc(WhoamiHandler),
		httpx.AuthnMiddleware(r.pool),
	))
}
