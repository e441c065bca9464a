package server

import (
	"log/slog"
	"net/http"

	"oasis-server/internal/auth"
	authHandlers "oasis-server/internal/auth/handlers"
	"oasis-server/internal/auth/providers"
	"oasis-server/internal/explorer"
	explorerHandlers "oasis-server/internal/explorer/handlers"
	"oasis-server/internal/middleware"
	"oasis-server/internal/planet"
	planetHandlers "oasis-server/internal/planet/handlers"
	serverHandlers "oasis-server/internal/server/handlers"
	"oasis-server/internal/star"
	starHandlers "oasis-server/internal/star/handlers"
	"oasis-server/internal/system"
	systemHandlers "oasis-server/internal/system/handlers"
)

// Deps carries everything the routes are wired to.
type Deps struct {
	DB              serverHandlers.Pinger
	Redis           serverHandlers.Pinger
	StarService     *star.Service
	PlanetService   *planet.Service
	SystemService   *system.Service
	ExplorerService *explorer.Service
	AuthService     *auth.Service
	Providers       []providers.OAuthProvider
	FrontendURL     string
}

type Routes struct {
	deps Deps
}

func NewRoutes(deps Deps) *Routes {
	return &Routes{deps: deps}
}

func (r *Routes) Setup() *http.ServeMux {
	logger := slog.With("component", "routes", "operation", "setup")
	logger.Debug("Setting up application routes")

	d := r.deps
	tokens := d.AuthService.Tokens()
	requireAuth := middleware.JWT(tokens)

	mux := http.NewServeMux()

	starHandler := starHandlers.NewStarHandler(d.StarService)
	planetHandler := planetHandlers.NewPlanetHandler(d.PlanetService)
	systemHandler := systemHandlers.NewSystemHandler(d.SystemService, d.FrontendURL)
	explorersHandler := explorerHandlers.NewExplorersHandler(d.ExplorerService)

	// Public endpoints
	mux.Handle("GET /api/server/health", serverHandlers.NewHealthHandler(d.DB, d.Redis))
	mux.HandleFunc("GET /api/catalog/stars", starHandler.Catalog)
	mux.HandleFunc("GET /api/catalog/planets", planetHandler.Catalog)
	mux.HandleFunc("GET /api/stars/generate", starHandler.Generate)
	mux.HandleFunc("GET /api/planets/generate", planetHandler.Generate)
	mux.HandleFunc("GET /api/systems/generate", systemHandler.Generate)
	mux.HandleFunc("GET /api/systems/search", systemHandler.Search)
	mux.HandleFunc("GET /api/systems/search/stream", systemHandler.Stream)
	mux.HandleFunc("GET /api/systems", systemHandler.List)
	mux.HandleFunc("GET /api/systems/{id}", systemHandler.Get)
	mux.HandleFunc("GET /api/explorers", explorersHandler.List)

	// Authenticated endpoints
	mux.Handle("POST /api/systems", requireAuth(http.HandlerFunc(systemHandler.Discover)))
	mux.Handle("GET /api/explorers/me", requireAuth(http.HandlerFunc(explorersHandler.Me)))

	// Admin-only endpoints
	mux.Handle("DELETE /api/systems/{id}", middleware.RequireAdmin(tokens, http.HandlerFunc(systemHandler.Delete)))

	// OAuth endpoints
	authProviders := make([]string, 0, len(d.Providers))
	for _, p := range d.Providers {
		h := authHandlers.NewOAuthHandler(p, d.ExplorerService, d.AuthService)
		mux.HandleFunc("GET /auth/"+p.Name(), h.HandleAuth)
		mux.HandleFunc("GET /auth/"+p.Name()+"/callback", h.HandleCallback)
		authProviders = append(authProviders, p.Name())
	}
	mux.Handle("POST /auth/logout", authHandlers.NewLogoutHandler())

	logger.Info("Routes configured successfully", "oauth_providers", authProviders)

	return mux
}

// Handler wraps the mux in the middleware chain shared by every route.
func Handler(mux http.Handler, cors *middleware.CORSMiddleware, limiter *middleware.RateLimiter) http.Handler {
	return middleware.RequestID(cors.Middleware(limiter.Middleware(mux)))
}
