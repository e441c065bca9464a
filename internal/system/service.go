package system

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"oasis-server/internal/shared/config"
	"oasis-server/internal/shared/errors"
	"oasis-server/internal/shared/random"
)

// Store persists discovered systems.
type Store interface {
	Save(ctx context.Context, explorerID int, view View) (*Record, error)
	List(ctx context.Context, limit, offset int) ([]Record, error)
	Get(ctx context.Context, id uuid.UUID) (*Record, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

type Service struct {
	store    Store
	defaults config.GenerationConfig
	logger   *slog.Logger
}

func NewService(store Store, defaults config.GenerationConfig, logger *slog.Logger) *Service {
	logger.Debug("Initializing system service")

	return &Service{
		store:    store,
		defaults: defaults,
		logger:   logger,
	}
}

// Generate builds a system. Zero planet bounds take the configured defaults.
func (s *Service) Generate(ctx context.Context, req Request, seed *uint64) (*System, error) {
	req = s.withDefaults(req)

	r := random.FromSeed(seed)
	logger := s.logger.With("component", "system_service", "operation", "generate", "class", req.Class, "seed", r.Seed())

	sys, err := Generate(r, req)
	if err != nil {
		return nil, err
	}

	logger.Debug("System generated", "name", sys.Name, "star", sys.Star.Class.Code, "planets", len(sys.Planets))
	return sys, nil
}

// Search looks for a matching star and planet. A zero MaxAttempts takes the
// configured limit and larger values are capped to it.
func (s *Service) Search(ctx context.Context, req SearchRequest, seed *uint64, onAttempt func(Attempt) error) (*SearchResult, error) {
	if req.MaxAttempts <= 0 || req.MaxAttempts > s.defaults.MaxSearchAttempts {
		req.MaxAttempts = s.defaults.MaxSearchAttempts
	}

	r := random.FromSeed(seed)
	logger := s.logger.With(
		"component", "system_service",
		"operation", "search",
		"class", req.Class,
		"type", req.Type,
		"max_attempts", req.MaxAttempts,
		"seed", r.Seed(),
	)
	logger.Debug("Searching for combination")

	result, err := Search(ctx, r, req, onAttempt)
	if err != nil {
		if errors.Is(err, errors.ErrorTypeNotFound) {
			logger.Info("Combination not found")
		}
		return nil, err
	}

	logger.Info("Combination found", "attempts", result.Attempts)
	return result, nil
}

// Discover generates a system and saves it for the explorer.
func (s *Service) Discover(ctx context.Context, explorerID int, req Request, seed *uint64) (*Record, error) {
	sys, err := s.Generate(ctx, req, seed)
	if err != nil {
		return nil, err
	}

	record, err := s.store.Save(ctx, explorerID, sys.View())
	if err != nil {
		return nil, err
	}

	s.logger.Info("System discovered",
		"component", "system_service",
		"explorer_id", explorerID,
		"system_id", record.PublicID,
		"name", record.Name,
	)
	return record, nil
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]Record, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		return nil, errors.Validation("offset must not be negative")
	}
	return s.store.List(ctx, limit, offset)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Record, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("System deleted", "component", "system_service", "system_id", id)
	return nil
}

// withDefaults fills each zero planet bound from config. An explicit max
// below the default min lowers the min with it.
func (s *Service) withDefaults(req Request) Request {
	if req.MaxPlanets == 0 {
		req.MaxPlanets = max(s.defaults.MaxPlanetsPerSystem, req.MinPlanets)
	}
	if req.MinPlanets == 0 {
		req.MinPlanets = min(s.defaults.MinPlanetsPerSystem, req.MaxPlanets)
	}
	req.Strict = req.Strict || s.defaults.StrictCodes
	return req
}
