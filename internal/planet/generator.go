package planet

import (
	"strings"

	"oasis-server/internal/shared/errors"
	"oasis-server/internal/shared/random"
	"oasis-server/internal/shared/suggest"
	"oasis-server/internal/shared/units"
)

// Environment limits for setting a ship down and for leaving it on foot.
const (
	MaxLandablePressure   = 4.20
	MaxLandableTemp       = 666.0
	MaxExplorablePressure = 2.25
	MaxExplorableTemp     = 370.0
	MaxExplorableGravity  = 4.20
)

var profileIndex = func() map[TypeCode]int {
	index := make(map[TypeCode]int, len(profiles))
	for i, p := range profiles {
		index[p.Code] = i
	}
	return index
}()

// Profiles returns a copy of every planet type profile in catalogue order.
func Profiles() []Profile {
	out := make([]Profile, len(profiles))
	copy(out, profiles)
	return out
}

// Codes lists the valid type codes in catalogue order.
func Codes() []TypeCode {
	codes := make([]TypeCode, len(profiles))
	for i, p := range profiles {
		codes[i] = p.Code
	}
	return codes
}

// NormalizeCode trims and upper-cases an identifier. It does not validate.
func NormalizeCode(code string) TypeCode {
	return TypeCode(strings.ToUpper(strings.TrimSpace(code)))
}

// Lookup returns the profile for code, or a validation error naming the
// closest valid code.
func Lookup(code string) (Profile, error) {
	if i, ok := profileIndex[NormalizeCode(code)]; ok {
		return profiles[i], nil
	}

	candidates := make([]string, len(profiles))
	for i, p := range profiles {
		candidates[i] = string(p.Code)
	}
	if best, ok := suggest.Closest(code, candidates); ok {
		return Profile{}, errors.Validationf("unknown planet type %q, did you mean %q?", code, best)
	}
	return Profile{}, errors.Validationf("unknown planet type %q", code)
}

// RandomCode picks a planet type with equal odds.
func RandomCode(r *random.Rand) TypeCode {
	return profiles[r.IntN(len(profiles))].Code
}

// WeightedCode picks a planet type with odds proportional to its rarity weight.
func WeightedCode(r *random.Rand) TypeCode {
	total := 0
	for _, p := range profiles {
		total += p.Rarity.Weight()
	}

	roll := r.IntN(total)
	current := 0
	for _, p := range profiles {
		current += p.Rarity.Weight()
		if roll < current {
			return p.Code
		}
	}

	return TypeRockyBody
}

// Generate samples a planet of the given type. An unknown code yields a
// random type instead of an error.
func Generate(r *random.Rand, code string) Properties {
	profile, err := Lookup(code)
	if err != nil {
		profile = profiles[profileIndex[RandomCode(r)]]
	}
	return profile.Sample(r)
}

// Sample draws one instance from the profile.
func (p Profile) Sample(r *random.Rand) Properties {
	ringed := r.Chance(p.RingOdds)

	props := Properties{
		Code:        p.Code,
		Label:       string(p.Code),
		TypeName:    p.Name,
		Description: p.Description,
		Rarity:      p.Rarity,
		Ringed:      ringed,
	}
	if ringed {
		props.Label = string(p.Code) + "(R)"
		props.TypeName = p.RingedName
		props.Description = p.RingedDescription
	}

	props.DistanceFromArrival = p.Distance.Uniform(r)

	pressurePct := p.Pressure.RelativePercentage(r)
	props.SurfacePressure = p.Pressure.At(pressurePct)
	if p.LinkTemperature {
		props.SurfaceTemp = p.Temperature.At(pressurePct)
	} else {
		props.SurfaceTemp = p.Temperature.Uniform(r)
	}

	massPct := p.Mass.RelativePercentage(r)
	props.EarthMasses = p.Mass.At(massPct)
	if p.LinkRadius {
		props.Radius = p.Radius.At(massPct)
	} else {
		props.Radius = p.Radius.Uniform(r)
	}
	if p.LinkGravity {
		props.Gravity = p.Gravity.At(massPct)
	} else {
		props.Gravity = p.Gravity.Uniform(r)
	}

	props.OrbitalPeriod = units.Days(p.Orbital.Uniform(r))
	props.RotationalPeriod = units.Days(p.Rotational.Uniform(r))

	props.Landable = IsLandable(props.SurfacePressure, props.SurfaceTemp)
	props.Explorable = IsExplorable(props.SurfacePressure, props.SurfaceTemp, props.Gravity)

	return props
}

// IsLandable reports whether a ship can safely set down in these conditions.
func IsLandable(pressure, temp float64) bool {
	return pressure <= MaxLandablePressure && temp <= MaxLandableTemp
}

// IsExplorable reports whether the surface is fit for on-foot exploration.
func IsExplorable(pressure, temp, gravity float64) bool {
	return pressure <= MaxExplorablePressure && temp <= MaxExplorableTemp && gravity <= MaxExplorableGravity
}

// New names a freshly sampled planet. An unknown code yields a random type.
func New(r *random.Rand, name, code string) *Planet {
	return &Planet{
		Name: name,
		Type: Generate(r, code),
	}
}

func (p *Planet) Stats() Stats {
	t := p.Type
	return Stats{
		Name:                p.Name,
		Label:               t.Label,
		TypeName:            t.TypeName,
		Description:         t.Description,
		Rarity:              t.Rarity.String(),
		Ringed:              t.Ringed,
		Landable:            t.Landable,
		Explorable:          t.Explorable,
		DistanceFromArrival: t.DistanceFromArrival,
		SurfaceTemp:         t.SurfaceTemp,
		SurfacePressure:     t.SurfacePressure,
		Radius:              t.Radius,
		EarthMasses:         t.EarthMasses,
		Gravity:             t.Gravity,
		OrbitalPeriod:       t.OrbitalPeriod,
		RotationalPeriod:    t.RotationalPeriod,
	}
}

// TypeName returns the display name of the planet's type.
func (p *Planet) TypeName() string {
	return p.Type.TypeName
}
