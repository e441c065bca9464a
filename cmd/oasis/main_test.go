package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestStarCommand(t *testing.T) {
	out, _, err := runCLI(t, "star", "-class", "g", "-name", "Sol", "-seed", "42")
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	var got struct {
		Seed uint64 `json:"seed"`
		Star struct {
			Name string `json:"name"`
			Code string `json:"code"`
		} `json:"star"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if got.Seed != 42 || got.Star.Name != "Sol" || got.Star.Code != "G" {
		t.Fatalf("got %+v", got)
	}
}

func TestSeedReplaysOutput(t *testing.T) {
	first, _, err := runCLI(t, "system", "-seed", "7")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	second, _, err := runCLI(t, "system", "-seed", "7")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if first != second {
		t.Fatalf("seed 7 produced different systems")
	}
}

func TestPlanetYAML(t *testing.T) {
	out, _, err := runCLI(t, "planet", "-type", "ELW", "-name", "Earth", "-format", "yaml")
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	var got map[string]any
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	p, ok := got["planet"].(map[string]any)
	if !ok {
		t.Fatalf("missing planet key in %q", out)
	}
	if p["name"] != "Earth" {
		t.Fatalf("name = %v", p["name"])
	}
	if label, _ := p["label"].(string); !strings.HasPrefix(label, "ELW") {
		t.Fatalf("label = %v", p["label"])
	}
	if p["rarity"] != "Extremely Rare" {
		t.Fatalf("rarity = %v", p["rarity"])
	}
}

func TestSearchReportsProgress(t *testing.T) {
	out, stderr, err := runCLI(t, "search", "-class", "M", "-seed", "3", "-every", "1")
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	var got struct {
		Attempts int `json:"attempts"`
		Star     struct {
			Code string `json:"code"`
		} `json:"star"`
		Planet struct {
			Label string `json:"label"`
		} `json:"planet"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if got.Star.Code != "M" || got.Planet.Label == "" {
		t.Fatalf("got %+v", got)
	}
	if lines := strings.Count(stderr, "attempt "); lines != got.Attempts {
		t.Fatalf("progress lines = %d, attempts = %d", lines, got.Attempts)
	}
}

func TestCatalogCommand(t *testing.T) {
	tests := []struct {
		kind          string
		stars, planet int
	}{
		{"stars", 42, 0},
		{"planets", 0, 19},
		{"all", 42, 19},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			out, _, err := runCLI(t, "catalog", "-kind", tt.kind)
			if err != nil {
				t.Fatalf("run: %v", err)
			}

			var entries []map[string]any
			switch tt.kind {
			case "all":
				var both struct {
					Stars   []map[string]any `json:"stars"`
					Planets []map[string]any `json:"planets"`
				}
				if err := json.Unmarshal([]byte(out), &both); err != nil {
					t.Fatalf("decode: %v", err)
				}
				if len(both.Stars) != tt.stars || len(both.Planets) != tt.planet {
					t.Fatalf("stars=%d planets=%d", len(both.Stars), len(both.Planets))
				}
				return
			default:
				if err := json.Unmarshal([]byte(out), &entries); err != nil {
					t.Fatalf("decode: %v", err)
				}
			}
			if want := tt.stars + tt.planet; len(entries) != want {
				t.Fatalf("entries = %d, want %d", len(entries), want)
			}
		})
	}
}

func TestCatalogRarityFlag(t *testing.T) {
	out, _, err := runCLI(t, "catalog", "-kind", "planets", "-rarity", "very rare")
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	var entries []struct {
		Code   string `json:"code"`
		Rarity string `json:"rarity"`
	}
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(entries) == 0 || len(entries) >= 19 {
		t.Fatalf("filtered catalog has %d entries", len(entries))
	}
	for _, e := range entries {
		if e.Rarity != "Very Rare" {
			t.Fatalf("%s has rarity %s", e.Code, e.Rarity)
		}
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no command", nil, "missing command"},
		{"unknown command", []string{"galaxy"}, "unknown command"},
		{"strict class", []string{"star", "-class", "GX", "-strict"}, "unknown star class"},
		{"bad seed", []string{"planet", "-seed", "-1"}, "unsigned integer"},
		{"bad format", []string{"planet", "-format", "toml"}, "unknown format"},
		{"bad bounds", []string{"system", "-min", "9", "-max", "2"}, "planet bounds"},
		{"long name", []string{"system", "-name", strings.Repeat("x", 129)}, "name"},
		{"empty search", []string{"search"}, "star class or a planet type"},
		{"bad catalog", []string{"catalog", "-kind", "moons"}, "unknown catalog kind"},
		{"bad rarity", []string{"catalog", "-rarity", "mythic"}, "unknown rarity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, tt.args...)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}
