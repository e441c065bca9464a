package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"oasis-server/internal/auth"
	"oasis-server/internal/explorer"
	"oasis-server/internal/middleware"
	"oasis-server/internal/planet"
	serverHandlers "oasis-server/internal/server/handlers"
	"oasis-server/internal/shared/config"
	"oasis-server/internal/star"
	"oasis-server/internal/system"
)

func newTestServer(t *testing.T) (http.Handler, *auth.TokenIssuer) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	config.GlobalConfig = &config.Config{Frontend: config.FrontendConfig{URL: "http://localhost:3000"}}

	tokens, err := auth.NewTokenIssuer(strings.Repeat("r", 32), time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	gen := config.GenerationConfig{MinPlanetsPerSystem: 1, MaxPlanetsPerSystem: 3, MaxSearchAttempts: 1000}

	deps := Deps{
		DB:              serverHandlers.PingerFunc(func(context.Context) error { return nil }),
		StarService:     star.NewService(false, logger),
		PlanetService:   planet.NewService(false, logger),
		SystemService:   system.NewService(nil, gen, logger),
		ExplorerService: explorer.NewService(nil, config.AdminConfig{}, logger),
		AuthService:     auth.NewService(nil, tokens, auth.NewMemoryStateStore(time.Minute), logger),
		FrontendURL:     "http://localhost:3000",
	}

	mux := NewRoutes(deps).Setup()
	cors := middleware.NewCORS(config.GlobalConfig.Frontend)
	limiter := middleware.NewRateLimiter(config.RateLimitConfig{Enabled: false})
	return Handler(mux, cors, limiter), tokens
}

func TestRoutes(t *testing.T) {
	h, _ := newTestServer(t)

	tests := []struct {
		method, path string
		status       int
	}{
		{http.MethodGet, "/api/server/health", http.StatusOK},
		{http.MethodGet, "/api/catalog/stars", http.StatusOK},
		{http.MethodGet, "/api/catalog/planets", http.StatusOK},
		{http.MethodGet, "/api/stars/generate?class=O", http.StatusOK},
		{http.MethodGet, "/api/planets/generate?type=WW", http.StatusOK},
		{http.MethodGet, "/api/systems/generate", http.StatusOK},
		{http.MethodGet, "/api/systems/search?type=RKB", http.StatusOK},
		{http.MethodPost, "/api/systems", http.StatusUnauthorized},
		{http.MethodGet, "/api/explorers/me", http.StatusUnauthorized},
		{http.MethodDelete, "/api/systems/0b9c7f8e-6b1e-4a57-9d59-3f0e7b6a1c11", http.StatusUnauthorized},
		{http.MethodPut, "/api/systems/generate", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/nowhere", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.status, rec.Body)
			}
			if rec.Header().Get(middleware.RequestIDHeader) == "" {
				t.Fatal("missing request id")
			}
		})
	}
}

func TestDeleteRequiresAdmin(t *testing.T) {
	h, tokens := newTestServer(t)
	user, _ := tokens.Generate(1, "nova", "nova@oasis.test", "user")

	req := httptest.NewRequest(http.MethodDelete, "/api/systems/0b9c7f8e-6b1e-4a57-9d59-3f0e7b6a1c11", nil)
	req.Header.Set("Authorization", "Bearer "+user)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestGenerateRouteIsSeedStable(t *testing.T) {
	h, _ := newTestServer(t)

	get := func() map[string]any {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/systems/generate?seed=2718", nil))
		var body map[string]any
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatal(err)
		}
		return body
	}
	a, b := get(), get()
	if a["name"] != b["name"] || a["seed"] != float64(2718) {
		t.Fatalf("a = %v, b = %v", a["name"], b["name"])
	}
}
