package system

import (
	"time"

	"github.com/google/uuid"

	"oasis-server/internal/planet"
	"oasis-server/internal/star"
)

// System is one generated star with the planets orbiting it, closest first.
type System struct {
	Name    string           `json:"name"`
	Seed    uint64           `json:"seed"`
	Star    *star.Star       `json:"star"`
	Planets []*planet.Planet `json:"planets"`
}

// Request describes a system to generate. Empty fields are randomized.
type Request struct {
	Class      string
	Name       string
	MinPlanets int
	MaxPlanets int
	// Strict rejects unknown class codes instead of picking a random class.
	Strict bool
}

// SearchRequest asks for a random star and planet pairing whose codes match.
// An empty Class or Type matches anything, but not both.
type SearchRequest struct {
	Class       string
	Type        string
	MaxAttempts int
}

// Attempt is one candidate pairing examined by Search.
type Attempt struct {
	Number  int          `json:"attempt" yaml:"attempt"`
	Star    star.Stats   `json:"star" yaml:"star"`
	Planet  planet.Stats `json:"planet" yaml:"planet"`
	Matched bool         `json:"matched" yaml:"matched"`
}

type SearchResult struct {
	Star     star.Stats   `json:"star" yaml:"star"`
	Planet   planet.Stats `json:"planet" yaml:"planet"`
	Attempts int          `json:"attempts" yaml:"attempts"`
	Seed     uint64       `json:"seed" yaml:"seed"`
}

// View is the flattened read model of a system.
type View struct {
	Name    string         `json:"name" yaml:"name"`
	Seed    uint64         `json:"seed" yaml:"seed"`
	Star    star.Stats     `json:"star" yaml:"star"`
	Planets []planet.Stats `json:"planets" yaml:"planets"`
}

// Record is a saved discovery.
type Record struct {
	ID          int            `json:"-"`
	PublicID    uuid.UUID      `json:"id"`
	ExplorerID  int            `json:"explorer_id"`
	Name        string         `json:"name"`
	Seed        uint64         `json:"seed"`
	Star        star.Stats     `json:"star"`
	Planets     []planet.Stats `json:"planets,omitempty"`
	PlanetCount int            `json:"planet_count"`
	CreatedAt   time.Time      `json:"created_at"`
}

func (s *System) View() View {
	planets := make([]planet.Stats, len(s.Planets))
	for i, p := range s.Planets {
		planets[i] = p.Stats()
	}
	return View{
		Name:    s.Name,
		Seed:    s.Seed,
		Star:    s.Star.Stats(),
		Planets: planets,
	}
}
