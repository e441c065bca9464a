package naming

import (
	"regexp"
	"slices"
	"testing"

	"oasis-server/internal/shared/random"
)

func TestStarStyle(t *testing.T) {
	catalogue := regexp.MustCompile(`^[A-Za-z]+ [0-9]{1,5}$`)
	sector := regexp.MustCompile(`^[A-Z][a-z]+ [A-Z]{2}-[A-Z] [a-h][0-9]{1,2}-[0-9]{1,3}$`)

	r := random.New(1)
	for i := 0; i < 200; i++ {
		if name := StarStyle(r, StyleProper); !slices.Contains(properNames, name) {
			t.Fatalf("proper name %q not in list", name)
		}
		if name := StarStyle(r, StyleCatalogue); !catalogue.MatchString(name) {
			t.Fatalf("catalogue name %q", name)
		}
		if name := StarStyle(r, StyleSector); !sector.MatchString(name) {
			t.Fatalf("sector name %q", name)
		}
	}
}

func TestStarIsDeterministic(t *testing.T) {
	a, b := random.New(77), random.New(77)
	for i := 0; i < 10; i++ {
		if x, y := Star(a), Star(b); x != y {
			t.Fatalf("draw %d: %q != %q", i, x, y)
		}
	}
}

func TestPlanet(t *testing.T) {
	if got := Planet("HIP 4821", 3); got != "HIP 4821 3" {
		t.Fatalf("Planet() = %q", got)
	}
}
