package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"oasis-server/internal/middleware"
	"oasis-server/internal/shared/errors"
	"oasis-server/internal/shared/params"
	"oasis-server/internal/shared/response"
	"oasis-server/internal/system"
)

const maxBodyBytes = 1 << 16

type SystemHandler struct {
	service       *system.Service
	allowedOrigin string
}

// NewSystemHandler builds the system endpoints. allowedOrigin is the only
// browser origin accepted for the search stream.
func NewSystemHandler(service *system.Service, allowedOrigin string) *SystemHandler {
	return &SystemHandler{service: service, allowedOrigin: allowedOrigin}
}

// DiscoverRequest is the body of POST /api/systems. Every field is optional.
type DiscoverRequest struct {
	Class      string  `json:"class"`
	Name       string  `json:"name"`
	MinPlanets int     `json:"min_planets"`
	MaxPlanets int     `json:"max_planets"`
	Seed       *uint64 `json:"seed"`
	Strict     bool    `json:"strict"`
}

func generateRequest(r *http.Request) (system.Request, *uint64, error) {
	q := r.URL.Query()
	req := system.Request{Class: q.Get("class"), Name: q.Get("name")}

	var err error
	if req.MinPlanets, err = params.Int(r, "min_planets", 0); err != nil {
		return req, nil, err
	}
	if req.MaxPlanets, err = params.Int(r, "max_planets", 0); err != nil {
		return req, nil, err
	}
	if req.Strict, err = params.Bool(r, "strict"); err != nil {
		return req, nil, err
	}
	seed, err := params.Seed(r)
	return req, seed, err
}

func searchRequest(r *http.Request) (system.SearchRequest, *uint64, error) {
	q := r.URL.Query()
	req := system.SearchRequest{Class: q.Get("class"), Type: q.Get("type")}

	var err error
	if req.MaxAttempts, err = params.Int(r, "max_attempts", 0); err != nil {
		return req, nil, err
	}
	seed, err := params.Seed(r)
	return req, seed, err
}

// Generate handles GET /api/systems/generate.
func (h *SystemHandler) Generate(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "generate_system")

	req, seed, err := generateRequest(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	sys, err := h.service.Generate(r.Context(), req, seed)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, sys.View())
}

// Search handles GET /api/systems/search.
func (h *SystemHandler) Search(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "search_systems")

	req, seed, err := searchRequest(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	result, err := h.service.Search(r.Context(), req, seed, nil)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, result)
}

// Discover handles POST /api/systems for the signed-in explorer.
func (h *SystemHandler) Discover(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "discover_system")

	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		response.Error(w, r, logger, errors.Unauthorized("authentication required"))
		return
	}

	var body DiscoverRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body); err != nil && err != io.EOF {
		response.Error(w, r, logger, errors.WrapValidation("invalid request body", err))
		return
	}

	req := system.Request{
		Class:      body.Class,
		Name:       body.Name,
		MinPlanets: body.MinPlanets,
		MaxPlanets: body.MaxPlanets,
		Strict:     body.Strict,
	}
	record, err := h.service.Discover(r.Context(), claims.ExplorerID, req, body.Seed)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusCreated, record)
}

// List handles GET /api/systems?limit=&offset=.
func (h *SystemHandler) List(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "list_systems")

	limit, err := params.Int(r, "limit", 0)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	offset, err := params.Int(r, "offset", 0)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	records, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	if records == nil {
		records = []system.Record{}
	}

	response.Success(w, http.StatusOK, records)
}

func (h *SystemHandler) Get(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_system")

	id, err := systemID(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	record, err := h.service.Get(r.Context(), id)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, record)
}

func (h *SystemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "delete_system")

	id, err := systemID(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func systemID(r *http.Request) (uuid.UUID, error) {
	raw := r.PathValue("id")
	if raw == "" {
		return uuid.Nil, errors.Validation("system ID is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.WrapValidation("invalid system ID format", err)
	}
	return id, nil
}
