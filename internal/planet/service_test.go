package planet

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"oasis-server/internal/rarity"
	"oasis-server/internal/shared/errors"
)

func newTestService(strict bool) *Service {
	return NewService(strict, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestServiceGenerateReplaysSeed(t *testing.T) {
	svc := newTestService(false)
	seed := uint64(77)

	a, err := svc.Generate(context.Background(), "", "hmc", false, &seed)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, _ := svc.Generate(context.Background(), "", "HMC", false, &seed)

	if a.Seed != 77 || a.Planet != b.Planet {
		t.Fatalf("seeded generation not reproducible:\n%+v\n%+v", a, b)
	}
	if !strings.HasPrefix(a.Planet.Label, "HMC") || !strings.HasSuffix(a.Planet.Name, " 1") {
		t.Fatalf("planet = %+v", a.Planet)
	}
}

func TestServiceGenerateStrictness(t *testing.T) {
	ctx := context.Background()

	if _, err := newTestService(false).Generate(ctx, "X", "BOGUS", false, nil); err != nil {
		t.Fatalf("lenient service rejected unknown code: %v", err)
	}
	if _, err := newTestService(false).Generate(ctx, "X", "BOGUS", true, nil); !errors.Is(err, errors.ErrorTypeValidation) {
		t.Fatalf("strict request err = %v", err)
	}
	if _, err := newTestService(true).Generate(ctx, "X", "BOGUS", false, nil); !errors.Is(err, errors.ErrorTypeValidation) {
		t.Fatalf("strict service err = %v", err)
	}
	if _, err := newTestService(true).Generate(ctx, "X", "", false, nil); err != nil {
		t.Fatalf("empty code under strict: %v", err)
	}
}

func TestServiceGenerateKeepsName(t *testing.T) {
	g, err := newTestService(false).Generate(context.Background(), "Earth", "ELW", false, nil)
	if err != nil {
		t.Fatal(err)
	}
	if g.Planet.Name != "Earth" {
		t.Fatalf("name = %q", g.Planet.Name)
	}
}

func TestServiceCatalogFiltersByRarity(t *testing.T) {
	svc := newTestService(false)

	if got := len(svc.Catalog(nil)); got != 19 {
		t.Fatalf("unfiltered catalog = %d entries", got)
	}

	total := 0
	for _, tier := range rarity.All() {
		for _, p := range svc.Catalog(&tier) {
			if p.Rarity != tier {
				t.Fatalf("%s rarity %s listed under %s", p.Code, p.Rarity, tier)
			}
			total++
		}
	}
	if total != 19 {
		t.Fatalf("tiers cover %d profiles, want 19", total)
	}
}
