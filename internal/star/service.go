package star

import (
	"context"
	"log/slog"

	"oasis-server/internal/naming"
	"oasis-server/internal/rarity"
	"oasis-server/internal/shared/random"
)

// Generated is a sampled star with the seed that reproduces it.
type Generated struct {
	Seed uint64 `json:"seed" yaml:"seed"`
	Star Stats  `json:"star" yaml:"star"`
}

type Service struct {
	strict bool
	logger *slog.Logger
}

func NewService(strict bool, logger *slog.Logger) *Service {
	logger.Debug("Initializing star service")

	return &Service{
		strict: strict,
		logger: logger,
	}
}

// Generate samples one star. An empty class is rarity-weighted, an empty
// name is drawn from the name generator and an empty subtype is derived from
// the class.
func (s *Service) Generate(ctx context.Context, name, class, subtype string, strict bool, seed *uint64) (*Generated, error) {
	if class != "" && (strict || s.strict) {
		if _, err := Lookup(class); err != nil {
			return nil, err
		}
	}

	r := random.FromSeed(seed)
	if class == "" {
		class = string(WeightedCode(r))
	}
	if name == "" {
		name = naming.Star(r)
	}

	st := New(r, name, class, subtype)

	s.logger.Debug("Star generated",
		"component", "star_service",
		"operation", "generate",
		"seed", r.Seed(),
		"class", st.Class.Code)

	return &Generated{Seed: r.Seed(), Star: st.Stats()}, nil
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
