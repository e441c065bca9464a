package system

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"

	"oasis-server/internal/naming"
	"oasis-server/internal/planet"
	"oasis-server/internal/shared/errors"
	"oasis-server/internal/shared/random"
	"oasis-server/internal/star"
)

const (
	// MaxPlanets caps the number of bodies a single system may hold.
	MaxPlanets = 64
	// MaxNameLength matches the star_systems.name column.
	MaxNameLength = 128
)

// Generate builds a system from r. Planet types are weighted by rarity and the
// planets are named after the star in order of distance from arrival.
func Generate(r *random.Rand, req Request) (*System, error) {
	if req.MinPlanets < 0 || req.MaxPlanets < req.MinPlanets {
		return nil, errors.Validationf("invalid planet bounds [%d, %d]", req.MinPlanets, req.MaxPlanets)
	}
	if req.MaxPlanets > MaxPlanets {
		return nil, errors.Validationf("max planets must be at most %d", MaxPlanets)
	}
	if utf8.RuneCountInString(req.Name) > MaxNameLength {
		return nil, errors.Validationf("system name must be at most %d characters", MaxNameLength)
	}

	class := req.Class
	if class == "" {
		class = string(star.WeightedCode(r))
	} else if req.Strict {
		if _, err := star.Lookup(class); err != nil {
			return nil, err
		}
	}

	name := req.Name
	if name == "" {
		name = naming.Star(r)
	}

	s := star.New(r, name, class, "")

	count := r.IntRange(req.MinPlanets, req.MaxPlanets)
	bodies := make([]planet.Properties, count)
	for i := range bodies {
		bodies[i] = planet.Generate(r, string(planet.WeightedCode(r)))
	}
	sort.SliceStable(bodies, func(i, j int) bool {
		return bodies[i].DistanceFromArrival < bodies[j].DistanceFromArrival
	})

	planets := make([]*planet.Planet, count)
	for i, body := range bodies {
		planets[i] = &planet.Planet{
			Name: naming.Planet(name, i+1),
			Type: body,
		}
	}

	return &System{
		Name:    name,
		Seed:    r.Seed(),
		Star:    s,
		Planets: planets,
	}, nil
}

// Search draws random stars and planets until a pairing matches req, reporting
// each attempt to onAttempt when it is set. An error from onAttempt or a
// cancelled ctx stops the search.
func Search(ctx context.Context, r *random.Rand, req SearchRequest, onAttempt func(Attempt) error) (*SearchResult, error) {
	target, err := normalizeSearch(req)
	if err != nil {
		return nil, err
	}

	for n := 1; n <= req.MaxAttempts; n++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		s := star.New(r, naming.Star(r), string(star.RandomCode(r)), "")
		p := planet.New(r, naming.Planet(s.Name, 1), string(planet.RandomCode(r)))

		matched := target.matches(s, p)

		if onAttempt != nil {
			attempt := Attempt{
				Number:  n,
				Star:    s.Stats(),
				Planet:  p.Stats(),
				Matched: matched,
			}
			if err := onAttempt(attempt); err != nil {
				return nil, err
			}
		}

		if matched {
			return &SearchResult{
				Star:     s.Stats(),
				Planet:   p.Stats(),
				Attempts: n,
				Seed:     r.Seed(),
			}, nil
		}
	}

	return nil, errors.NotFoundf("no %s star with a %s planet found in %d attempts",
		orAny(string(target.class)), orAny(target.label()), req.MaxAttempts)
}

// searchTarget is a normalized SearchRequest. A planet label carries its
// ring state, so "CIGG(R)" only matches ringed CIGG and "CIGG" only plain.
type searchTarget struct {
	class  star.ClassCode
	kind   planet.TypeCode
	ringed bool
}

func (t searchTarget) matches(s *star.Star, p *planet.Planet) bool {
	if t.class != "" && s.Class.Code != t.class {
		return false
	}
	if t.kind != "" && (p.Type.Code != t.kind || p.Type.Ringed != t.ringed) {
		return false
	}
	return true
}

func (t searchTarget) label() string {
	if t.kind == "" {
		return ""
	}
	if t.ringed {
		return string(t.kind) + "(R)"
	}
	return string(t.kind)
}

func normalizeSearch(req SearchRequest) (searchTarget, error) {
	var target searchTarget
	if req.Class == "" && req.Type == "" {
		return target, errors.Validation("a star class or a planet type is required")
	}
	if req.MaxAttempts < 1 {
		return target, errors.Validation("max attempts must be positive")
	}

	if req.Class != "" {
		p, err := star.Lookup(req.Class)
		if err != nil {
			return target, err
		}
		target.class = p.Code
	}

	if req.Type != "" {
		code, ringed := splitRinged(req.Type)
		p, err := planet.Lookup(code)
		if err != nil {
			return target, err
		}
		target.kind = p.Code
		target.ringed = ringed
	}

	return target, nil
}

// splitRinged separates a planet label such as "cigg(r)" into its type code
// and ring state.
func splitRinged(label string) (string, bool) {
	code := strings.ToUpper(strings.TrimSpace(label))
	base, ringed := strings.CutSuffix(code, "(R)")
	return base, ringed
}

func orAny(code string) string {
	if code == "" {
		return "any"
	}
	return code
}
