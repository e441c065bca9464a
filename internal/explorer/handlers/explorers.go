package handlers

import (
	"log/slog"
	"net/http"

	"oasis-server/internal/explorer"
	"oasis-server/internal/middleware"
	"oasis-server/internal/shared/errors"
	"oasis-server/internal/shared/response"
)

type ExplorersHandler struct {
	service *explorer.Service
}

func NewExplorersHandler(service *explorer.Service) *ExplorersHandler {
	return &ExplorersHandler{service: service}
}

// List handles GET /api/explorers with public profiles only.
func (h *ExplorersHandler) List(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "explorers", "remote_addr", r.RemoteAddr)

	explorers, err := h.service.List(r.Context())
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	profiles := make([]explorer.Profile, len(explorers))
	for i := range explorers {
		profiles[i] = explorers[i].Profile()
	}

	logger.Debug("Explorers list completed", "explorer_count", len(profiles))
	response.Success(w, http.StatusOK, profiles)
}

// Me handles GET /api/explorers/me for the signed-in explorer.
func (h *ExplorersHandler) Me(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "me", "remote_addr", r.RemoteAddr)

	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		response.Error(w, r, logger, errors.Unauthorized("authentication required"))
		return
	}

	e, err := h.service.GetByID(r.Context(), claims.ExplorerID)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, e)
}
