package handlers

import (
	"log/slog"
	"net/http"

	"oasis-server/internal/shared/params"
	"oasis-server/internal/shared/response"
	"oasis-server/internal/star"
)

type StarHandler struct {
	service *star.Service
}

func NewStarHandler(service *star.Service) *StarHandler {
	return &StarHandler{service: service}
}

// Generate handles GET /api/stars/generate?class=&name=&subtype=&seed=&strict=.
func (h *StarHandler) Generate(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "generate_star")

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
	generated, err := h.service.Generate(r.Context(), q.Get("name"), q.Get("class"), q.Get("subtype"), strict, seed)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, generated)
}

func (h *StarHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	only, err := params.Rarity(r)
	if err != nil {
		response.Error(w, r, slog.With("handler", "star_catalog"), err)
		return
	}
	response.Success(w, http.StatusOK, h.service.Catalog(only))
}
