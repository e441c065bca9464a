package star

import (
	"math"
	"regexp"
	"strings"
	"testing"

	"oasis-server/internal/shared/errors"
	"oasis-server/internal/shared/random"
)

func TestCatalogue(t *testing.T) {
	if n := len(Codes()); n != 42 {
		t.Fatalf("len(Codes()) = %d, want 42", n)
	}

	seen := make(map[ClassCode]bool)
	for _, p := range Profiles() {
		if seen[p.Code] {
			t.Errorf("duplicate class %s", p.Code)
		}
		seen[p.Code] = true

		if p.Name == "" || p.Description == "" {
			t.Errorf("%s: missing descriptive text", p.Code)
		}
		if !p.Rarity.IsValid() {
			t.Errorf("%s: invalid rarity", p.Code)
		}
		if p.Scoopable && p.Boostable {
			t.Errorf("%s: both scoopable and boostable", p.Code)
		}
	}
}

func TestScoopableAndBoostableClasses(t *testing.T) {
	scoopable := map[ClassCode]bool{
		"O": true, "OG": true, "B": true, "BG": true, "A": true, "AG": true, "F": true,
		"FG": true, "G": true, "GG": true, "K": true, "KG": true, "M": true, "MG": true,
	}
	for _, p := range Profiles() {
		if p.Scoopable != scoopable[p.Code] {
			t.Errorf("%s: scoopable = %v", p.Code, p.Scoopable)
		}
		wantBoost := p.Code == ClassNeutron || strings.HasPrefix(string(p.Code), "D")
		if p.Boostable != wantBoost {
			t.Errorf("%s: boostable = %v", p.Code, p.Boostable)
		}
	}
}

func TestGenerateStaysInRange(t *testing.T) {
	for _, p := range Profiles() {
		t.Run(string(p.Code), func(t *testing.T) {
			for seed := uint64(0); seed < 200; seed++ {
				props := Generate(random.New(seed), string(p.Code))
				if props.Code != p.Code {
					t.Fatalf("code = %s", props.Code)
				}

				checks := []struct {
					name string
					rg   random.Range
					v    float64
				}{
					{"age", p.Age, props.Age},
					{"mass", p.Mass, props.SolarMasses},
					{"radius", p.Radius, props.SolarRadius},
					{"temperature", p.Temperature, props.SurfaceTemp},
					{"orbital", p.Orbital, props.OrbitalPeriod.Days()},
					{"rotational", p.Rotational, props.RotationalPeriod.Days()},
				}
				for _, c := range checks {
					eps := 1e-9 * math.Max(1, math.Abs(c.rg.Max))
					if c.v < c.rg.Min-eps || c.v > c.rg.Max+eps {
						t.Fatalf("seed %d: %s %v outside %+v", seed, c.name, c.v, c.rg)
					}
				}
			}
		})
	}
}

func TestRadiusAndTemperatureFollowMass(t *testing.T) {
	for _, p := range Profiles() {
		for seed := uint64(0); seed < 50; seed++ {
			props := Generate(random.New(seed), string(p.Code))

			massPos := p.Mass.Position(props.SolarMasses)
			if d := math.Abs(p.Radius.Position(props.SolarRadius) - massPos); d > 1e-6 {
				t.Fatalf("%s seed %d: radius drifted %.6f%% from mass", p.Code, seed, d)
			}
			if p.LinkTemperature {
				if d := math.Abs(p.Temperature.Position(props.SurfaceTemp) - massPos); d > 1e-6 {
					t.Fatalf("%s seed %d: temperature drifted %.6f%% from mass", p.Code, seed, d)
				}
			}
		}
	}
}

func TestRingedRoll(t *testing.T) {
	tests := []struct {
		roll int
		want bool
	}{
		{0, true},
		{6, true},
		{7, false},
		{68, false},
		{69, true},
		{420, true},
		{421, false},
		{1336, false},
		{1337, true},
	}
	for _, tt := range tests {
		if got := ringedRoll(tt.roll); got != tt.want {
			t.Errorf("ringedRoll(%d) = %v, want %v", tt.roll, got, tt.want)
		}
	}
}

func TestDecideRingedIsRare(t *testing.T) {
	r := random.New(11)
	ringed := 0
	const draws = 100000
	for i := 0; i < draws; i++ {
		if DecideRinged(r) {
			ringed++
		}
	}
	// 10 winning rolls out of 1338.
	ratio := float64(ringed) / draws
	if ratio < 0.004 || ratio > 0.011 {
		t.Fatalf("ringed ratio = %.4f", ratio)
	}
}

func TestGenerateUnknownCodeFallsBack(t *testing.T) {
	seen := make(map[ClassCode]bool)
	for seed := uint64(0); seed < 1000; seed++ {
		props := Generate(random.New(seed), "surprise me")
		if _, ok := profileIndex[props.Code]; !ok {
			t.Fatalf("fallback produced unknown class %q", props.Code)
		}
		seen[props.Code] = true
	}
	if !seen[ClassBlackHole] {
		t.Fatalf("fallback never produced a black hole")
	}
	if len(seen) < 30 {
		t.Fatalf("fallback covered only %d classes", len(seen))
	}
}

func TestLookup(t *testing.T) {
	p, err := Lookup(" dav")
	if err != nil {
		t.Fatalf("Lookup(dav): %v", err)
	}
	if p.Code != ClassWhiteDwarfDAV {
		t.Fatalf("code = %s", p.Code)
	}

	_, err = Lookup("DAX")
	if !errors.Is(err, errors.ErrorTypeValidation) {
		t.Fatalf("want validation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "did you mean") {
		t.Fatalf("error %q lacks suggestion", err)
	}
}

func TestNewGeneratesSubtype(t *testing.T) {
	pattern := regexp.MustCompile(`^G[0-9] V$`)
	for seed := uint64(0); seed < 20; seed++ {
		s := New(random.New(seed), "Sol", "G", "")
		if !pattern.MatchString(s.Subtype) {
			t.Fatalf("subtype = %q", s.Subtype)
		}
	}

	s := New(random.New(1), "Sol", "G", "G2 V")
	if s.Subtype != "G2 V" {
		t.Fatalf("explicit subtype replaced: %q", s.Subtype)
	}

	bh := New(random.New(1), "Sagittarius A*", "BH", "")
	if bh.Subtype != "" {
		t.Fatalf("black hole subtype = %q", bh.Subtype)
	}
}

func TestNewDropsSubtypeOnFallback(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		s := New(random.New(seed), "Lost", "XX", "G2 V")
		p := profiles[profileIndex[s.Class.Code]]
		if p.Spectral == "" {
			if s.Subtype != "" {
				t.Fatalf("seed %d: %s kept subtype %q", seed, s.Class.Code, s.Subtype)
			}
			continue
		}
		if !strings.HasPrefix(s.Subtype, p.Spectral) {
			t.Fatalf("seed %d: class %s has subtype %q", seed, s.Class.Code, s.Subtype)
		}
	}

	kept := New(random.New(1), "Sol", " g ", "G2 V")
	if kept.Subtype != "G2 V" {
		t.Fatalf("valid class lost its subtype: %q", kept.Subtype)
	}
}

func TestStarStats(t *testing.T) {
	s := New(random.New(5), "Achenar", "B", "")
	stats := s.Stats()

	if stats.Name != "Achenar" || stats.Code != "B" {
		t.Fatalf("stats = %+v", stats)
	}
	if stats.ClassName != "Class B Star" || s.ClassName() != stats.ClassName {
		t.Fatalf("class name = %q", stats.ClassName)
	}
	if stats.Rarity != "Rare" || !stats.Scoopable {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	a := New(random.New(2024), "A", "K", "")
	b := New(random.New(2024), "A", "K", "")
	if *a != *b {
		t.Fatalf("same seed produced different stars:\n%+v\n%+v", a, b)
	}
}
