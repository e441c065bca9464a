// Command oasis generates stars, planets and systems from the command line
// and prints them as JSON or YAML.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"gopkg.in/yaml.v3"

	"oasis-server/internal/planet"
	"oasis-server/internal/rarity"
	"oasis-server/internal/shared/config"
	"oasis-server/internal/shared/logger"
	"oasis-server/internal/star"
	"oasis-server/internal/system"
)

const usage = `usage: oasis <command> [flags]

commands:
  star      generate a star          (-class -name -subtype -seed -strict)
  planet    generate a planet        (-type -name -seed -strict)
  system    generate a star system   (-class -name -min -max -seed -strict)
  search    find a star and planet   (-class -type -attempts -seed -every)
  catalog   list reference tables    (-kind stars|planets|all -rarity)

every command accepts -format json|yaml
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "oasis:", err)
		os.Exit(1)
	}
}

// seedFlag is an optional uint64 flag.
type seedFlag struct {
	value *uint64
}

func (s *seedFlag) String() string {
	if s.value == nil {
		return ""
	}
	return strconv.FormatUint(*s.value, 10)
}

func (s *seedFlag) Set(raw string) error {
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("seed must be an unsigned integer")
	}
	s.value = &v
	return nil
}

// rarityFlag is an optional rarity tier flag.
type rarityFlag struct {
	value *rarity.Rarity
}

func (f *rarityFlag) String() string {
	if f.value == nil {
		return ""
	}
	return f.value.String()
}

func (f *rarityFlag) Set(raw string) error {
	var tier rarity.Rarity
	if err := tier.UnmarshalText([]byte(raw)); err != nil {
		return err
	}
	f.value = &tier
	return nil
}

type catalog struct {
	Stars   []star.Profile   `json:"stars" yaml:"stars"`
	Planets []planet.Profile `json:"planets" yaml:"planets"`
}

type command struct {
	flags  *flag.FlagSet
	format *string
	seed   *seedFlag
}

func newCommand(name string, stderr io.Writer) *command {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	c := &command{flags: fs, seed: &seedFlag{}}
	c.format = fs.String("format", "json", "output format: json or yaml")
	fs.Var(c.seed, "seed", "replay a previous result")
	return c
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return fmt.Errorf("missing command")
	}

	log := logger.New(stderr, config.GetEnv("LOG_LEVEL", "warn"), false)
	gen := config.LoadGeneration()
	if err := gen.Validate(); err != nil {
		return err
	}

	name, rest := args[0], args[1:]
	cmd := newCommand(name, stderr)
	fs := cmd.flags

	var out any
	switch name {
	case "star":
		class := fs.String("class", "", "star class code, random when empty")
		starName := fs.String("name", "", "star name")
		subtype := fs.String("subtype", "", "spectral subtype such as G2 V")
		strict := fs.Bool("strict", false, "reject unknown class codes")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		g, err := star.NewService(gen.StrictCodes, log).Generate(ctx, *starName, *class, *subtype, *strict, cmd.seed.value)
		if err != nil {
			return err
		}
		out = g

	case "planet":
		kind := fs.String("type", "", "planet type code, random when empty")
		planetName := fs.String("name", "", "planet name")
		strict := fs.Bool("strict", false, "reject unknown type codes")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		g, err := planet.NewService(gen.StrictCodes, log).Generate(ctx, *planetName, *kind, *strict, cmd.seed.value)
		if err != nil {
			return err
		}
		out = g

	case "system":
		class := fs.String("class", "", "star class code, random when empty")
		sysName := fs.String("name", "", "system name")
		minPlanets := fs.Int("min", 0, "fewest planets")
		maxPlanets := fs.Int("max", 0, "most planets")
		strict := fs.Bool("strict", false, "reject unknown class codes")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		req := system.Request{Class: *class, Name: *sysName, MinPlanets: *minPlanets, MaxPlanets: *maxPlanets, Strict: *strict}
		sys, err := system.NewService(nil, gen, log).Generate(ctx, req, cmd.seed.value)
		if err != nil {
			return err
		}
		out = sys.View()

	case "search":
		class := fs.String("class", "", "star class code to find")
		kind := fs.String("type", "", "planet type code to find")
		attempts := fs.Int("attempts", 0, "give up after this many attempts")
		every := fs.Int("every", 0, "print every n-th attempt to stderr")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		var progress func(system.Attempt) error
		if *every > 0 {
			progress = func(a system.Attempt) error {
				if a.Number%*every == 0 {
					fmt.Fprintf(stderr, "attempt %d: %s + %s, %s orbit\n", a.Number, a.Star.Code, a.Planet.Label, a.Planet.OrbitalPeriod)
				}
				return nil
			}
		}
		req := system.SearchRequest{Class: *class, Type: *kind, MaxAttempts: *attempts}
		result, err := system.NewService(nil, gen, log).Search(ctx, req, cmd.seed.value, progress)
		if err != nil {
			return err
		}
		out = result

	case "catalog":
		kind := fs.String("kind", "all", "stars, planets or all")
		only := &rarityFlag{}
		fs.Var(only, "rarity", "keep only this rarity tier, e.g. \"Very Rare\"")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		stars := star.NewService(gen.StrictCodes, log).Catalog(only.value)
		planets := planet.NewService(gen.StrictCodes, log).Catalog(only.value)
		switch *kind {
		case "stars":
			out = stars
		case "planets":
			out = planets
		case "all":
			out = catalog{Stars: stars, Planets: planets}
		default:
			return fmt.Errorf("unknown catalog kind %q", *kind)
		}

	default:
		fmt.Fprint(stderr, usage)
		return fmt.Errorf("unknown command %q", name)
	}

	return write(stdout, *cmd.format, out)
}

func write(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
