package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"oasis-server/internal/shared/response"
)

// Pinger is a dependency the health check can probe.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// PingerFunc adapts a function to Pinger.
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Database  string `json:"database"`
	Redis     string `json:"redis"`
}

type HealthHandler struct {
	db    Pinger
	redis Pinger
}

// NewHealthHandler probes db and redis. A nil redis is reported as disabled.
func NewHealthHandler(db, redis Pinger) *HealthHandler {
	return &HealthHandler{db: db, redis: redis}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "health")

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Database:  "connected",
		Redis:     "disabled",
	}

	if err := h.db.PingContext(ctx); err != nil {
		logger.Warn("Database ping failed", "error", err)
		resp.Status = "degraded"
		resp.Database = "disconnected"
	}

	if h.redis != nil {
		resp.Redis = "connected"
		if err := h.redis.PingContext(ctx); err != nil {
			logger.Warn("Redis ping failed", "error", err)
			resp.Status = "degraded"
			resp.Redis = "disconnected"
		}
	}

	status := http.StatusOK
	if resp.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}
	response.Success(w, status, resp)
}
