package star

import (
	"fmt"
	"strings"

	"oasis-server/internal/shared/errors"
	"oasis-server/internal/shared/random"
	"oasis-server/internal/shared/suggest"
	"oasis-server/internal/shared/units"
)

// ringRollMax bounds the ring roll. A handful of lucky numbers and the
// lowest few values produce a ringed star.
const ringRollMax = 1337

var profileIndex = func() map[ClassCode]int {
	index := make(map[ClassCode]int, len(profiles))
	for i, p := range profiles {
		index[p.Code] = i
	}
	return index
}()

func Profiles() []Profile {
	out := make([]Profile, len(profiles))
	copy(out, profiles)
	return out
}

func Codes() []ClassCode {
	codes := make([]ClassCode, len(profiles))
	for i, p := range profiles {
		codes[i] = p.Code
	}
	return codes
}

// NormalizeCode trims and upper-cases a class identifier.
func NormalizeCode(code string) ClassCode {
	return ClassCode(strings.ToUpper(strings.TrimSpace(code)))
}

// Lookup returns the profile for code, or a validation error naming the
// closest valid class.
func Lookup(code string) (Profile, error) {
	if i, ok := profileIndex[NormalizeCode(code)]; ok {
		return profiles[i], nil
	}

	candidates := make([]string, len(profiles))
	for i, p := range profiles {
		candidates[i] = string(p.Code)
	}
	if best, ok := suggest.Closest(code, candidates); ok {
		return Profile{}, errors.Validationf("unknown star class %q, did you mean %q?", code, best)
	}
	return Profile{}, errors.Validationf("unknown star class %q", code)
}

func RandomCode(r *random.Rand) ClassCode {
	return profiles[r.IntN(len(profiles))].Code
}

// WeightedCode picks a class with odds proportional to its rarity weight.
func WeightedCode(r *random.Rand) ClassCode {
	total := 0
	for _, p := range profiles {
		total += p.Rarity.Weight()
	}

	roll := r.IntN(total)
	for _, p := range profiles {
		roll -= p.Rarity.Weight()
		if roll < 0 {
			return p.Code
		}
	}
	return ClassM
}

// DecideRinged rolls for a ring system around a star.
func DecideRinged(r *random.Rand) bool {
	return ringedRoll(r.IntRange(0, ringRollMax))
}

func ringedRoll(roll int) bool {
	switch roll {
	case 1337, 420, 69:
		return true
	}
	return roll < 7
}

// Generate samples a star of the given class. An unknown code yields a random
// class instead of an error.
func Generate(r *random.Rand, code string) Properties {
	profile, err := Lookup(code)
	if err != nil {
		profile = profiles[profileIndex[RandomCode(r)]]
	}
	return profile.Sample(r)
}

// Sample draws one instance from the profile.
func (p Profile) Sample(r *random.Rand) Properties {
	props := Properties{
		Code:        p.Code,
		ClassName:   p.Name,
		Description: p.Description,
		Rarity:      p.Rarity,
		Luminosity:  p.Luminosity,
		Ringed:      DecideRinged(r),
		Scoopable:   p.Scoopable,
		Boostable:   p.Boostable,
	}

	props.Age = p.Age.Uniform(r)

	massPct := p.Mass.RelativePercentage(r)
	props.SolarMasses = p.Mass.At(massPct)
	props.SolarRadius = p.Radius.At(massPct)
	if p.LinkTemperature {
		props.SurfaceTemp = p.Temperature.At(massPct)
	} else {
		props.SurfaceTemp = p.Temperature.Uniform(r)
	}

	props.OrbitalPeriod = units.Days(p.Orbital.Uniform(r))
	props.RotationalPeriod = units.Days(p.Rotational.Uniform(r))

	return props
}

// Subtype renders a spectral subclass such as "G2 V". Classes without a
// spectral prefix have no subtype.
func (p Profile) Subtype(r *random.Rand) string {
	if p.Spectral == "" {
		return ""
	}
	sub := fmt.Sprintf("%s%d", p.Spectral, r.IntN(10))
	if p.Luminosity == "" {
		return sub
	}
	return sub + " " + p.Luminosity
}

// New samples a named star. An empty subtype is generated from the class, as
// is any subtype given alongside an unknown code that fell back to a random
// class.
func New(r *random.Rand, name, code, subtype string) *Star {
	class := Generate(r, code)
	if subtype == "" || class.Code != NormalizeCode(code) {
		subtype = profiles[profileIndex[class.Code]].Subtype(r)
	}
	return &Star{
		Name:    name,
		Class:   class,
		Subtype: subtype,
	}
}

func (s *Star) ClassName() string {
	return s.Class.ClassName
}

func (s *Star) Stats() Stats {
	c := s.Class
	return Stats{
		Name:             s.Name,
		Code:             string(c.Code),
		ClassName:        c.ClassName,
		Subtype:          s.Subtype,
		Description:      c.Description,
		Rarity:           c.Rarity.String(),
		Ringed:           c.Ringed,
		Scoopable:        c.Scoopable,
		Boostable:        c.Boostable,
		Age:              c.Age,
		SolarMasses:      c.SolarMasses,
		SolarRadius:      c.SolarRadius,
		SurfaceTemp:      c.SurfaceTemp,
		OrbitalPeriod:    c.OrbitalPeriod,
		RotationalPeriod: c.RotationalPeriod,
	}
}
