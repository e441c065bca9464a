package handlers

import (
	"log/slog"
	"net/http"

	"oasis-server/internal/planet"
	"oasis-server/internal/shared/params"
	"oasis-server/internal/shared/response"
)

type PlanetHandler struct {
	service *planet.Service
}

func NewPlanetHandler(service *planet.Service) *PlanetHandler {
	return &PlanetHandler{service: service}
}

// Generate handles GET /api/planets/generate?type=&name=&seed=&strict=.
func (h *PlanetHandler) Generate(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "generate_planet")

	seed, err := params.Seed(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	strict, err := params.Bool(r, "strict")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	q := r.URL.Query()
	generated, err := h.service.Generate(r.Context(), q.Get("name"), q.Get("type"), strict, seed)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, generated)
}

// Catalog handles GET /api/catalog/planets?rarity=.
func (h *PlanetHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	only, err := params.Rarity(r)
	if err != nil {
		response.Error(w, r, slog.With("handler", "planet_catalog"), err)
		return
	}
	response.Success(w, http.StatusOK, h.service.Catalog(only))
}
