package planet

import (
	"context"
	"log/slog"

	"oasis-server/internal/naming"
	"oasis-server/internal/rarity"
	"oasis-server/internal/shared/random"
)

// Generated is a sampled planet with the seed that reproduces it.
type Generated struct {
	Seed   uint64 `json:"seed" yaml:"seed"`
	Planet Stats  `json:"planet" yaml:"planet"`
}

type Service struct {
	strict bool
	logger *slog.Logger
}

// NewService builds a planet service. A strict service rejects unknown type
// codes for every request.
func NewService(strict bool, logger *slog.Logger) *Service {
	logger.Debug("Initializing planet service")

	return &Service{
		strict: strict,
		logger: logger,
	}
}

// Generate samples one planet. An empty code picks a rarity-weighted type and
// an empty name is derived from a random star name.
func (s *Service) Generate(ctx context.Context, name, code string, strict bool, seed *uint64) (*Generated, error) {
	if code != "" && (strict || s.strict) {
		if _, err := Lookup(code); err != nil {
			return nil, err
		}
	}

	r := random.FromSeed(seed)
	if code == "" {
		code = string(WeightedCode(r))
	}
	if name == "" {
		name = naming.Planet(naming.Star(r), 1)
	}

	p := New(r, name, code)

	s.logger.Debug("Planet generated",
		"component", "planet_service",
		"operation", "generate",
		"seed", r.Seed(),
		"label", p.Type.Label)

	return &Generated{Seed: r.Seed(), Planet: p.Stats()}, nil
}

// Catalog lists the reference profiles, keeping only the given rarity tier
// when only is set.
func (s *Service) Catalog(only *rarity.Rarity) []Profile {
	all := Profiles()
	if only == nil {
		return all
	}
	out := make([]Profile, 0, len(all))
	for _, p := range all {
		if p.Rarity == *only {
			out = append(out, p)
		}
	}
	return out
}
