package planet

import (
	"oasis-server/internal/rarity"
	"oasis-server/internal/shared/random"
	"oasis-server/internal/shared/units"
)

// TypeCode identifies a planet category, e.g. "ELW" or "HMC".
type TypeCode string

const (
	TypeAmmoniaWorld             TypeCode = "AW"
	TypeWaterWorld               TypeCode = "WW"
	TypeWaterGiant               TypeCode = "WG"
	TypeRockyBody                TypeCode = "RKB"
	TypeIcyBody                  TypeCode = "ICB"
	TypeEarthLikeWorld           TypeCode = "ELW"
	TypeHighMetalContent         TypeCode = "HMC"
	TypeRockyIceWorld            TypeCode = "RIW"
	TypeMetalRichBody            TypeCode = "MRB"
	TypeHeliumGasGiant           TypeCode = "HGG"
	TypeGlowingGreenGasGiant     TypeCode = "GGGG"
	TypeClassIGasGiant           TypeCode = "CIGG"
	TypeClassIIGasGiant          TypeCode = "CIIGG"
	TypeClassIIIGasGiant         TypeCode = "CIIIGG"
	TypeClassIVGasGiant          TypeCode = "CIVGG"
	TypeClassVGasGiant           TypeCode = "CVGG"
	TypeHeliumRichGasGiant       TypeCode = "HRGG"
	TypeGasGiantAmmoniaBasedLife TypeCode = "GGWABL"
	TypeGasGiantWaterBasedLife   TypeCode = "GGWWBL"
)

func (c TypeCode) String() string {
	return string(c)
}

// Profile is the statistical reference table for one planet type.
type Profile struct {
	Code              TypeCode      `json:"code" yaml:"code"`
	Name              string        `json:"name" yaml:"name"`
	RingedName        string        `json:"ringed_name" yaml:"ringed_name"`
	Description       string        `json:"description" yaml:"description"`
	RingedDescription string        `json:"ringed_description" yaml:"ringed_description"`
	Rarity            rarity.Rarity `json:"rarity" yaml:"rarity"`
	// RingOdds is N in a 1-in-N chance of the body carrying rings.
	RingOdds float64 `json:"ring_odds" yaml:"ring_odds"`

	Distance    random.Range `json:"distance_ls" yaml:"distance_ls"`
	Pressure    random.Range `json:"surface_pressure_atm" yaml:"surface_pressure_atm"`
	Temperature random.Range `json:"surface_temp_k" yaml:"surface_temp_k"`
	Mass        random.Range `json:"earth_masses" yaml:"earth_masses"`
	Radius      random.Range `json:"radius_km" yaml:"radius_km"`
	Gravity     random.Range `json:"gravity_g" yaml:"gravity_g"`
	Orbital     random.Range `json:"orbital_period_days" yaml:"orbital_period_days"`
	Rotational  random.Range `json:"rotational_period_days" yaml:"rotational_period_days"`

	// Linked quantities reuse the relative position sampled for their driver:
	// temperature follows pressure, radius and gravity follow mass.
	LinkTemperature bool `json:"link_temperature" yaml:"link_temperature"`
	LinkRadius      bool `json:"link_radius" yaml:"link_radius"`
	LinkGravity     bool `json:"link_gravity" yaml:"link_gravity"`
}

// Properties is one sampled planet type instance.
type Properties struct {
	Code                TypeCode      `json:"code"`
	Label               string        `json:"label"`
	TypeName            string        `json:"type_name"`
	Description         string        `json:"description"`
	Rarity              rarity.Rarity `json:"rarity"`
	Ringed              bool          `json:"ringed"`
	Landable            bool          `json:"landable"`
	Explorable          bool          `json:"explorable"`
	DistanceFromArrival float64       `json:"dist_from_arrival_ls"`
	SurfaceTemp         float64       `json:"surface_temp_k"`
	SurfacePressure     float64       `json:"surface_pressure_atm"`
	Radius              float64       `json:"radius_km"`
	EarthMasses         float64       `json:"earth_masses"`
	Gravity             float64       `json:"gravity_g"`
	OrbitalPeriod       units.Period  `json:"orbital_period_days"`
	RotationalPeriod    units.Period  `json:"rotational_period_days"`
}

// Planet pairs a name with a sampled planet type.
type Planet struct {
	Name string     `json:"name"`
	Type Properties `json:"type"`
}

// Stats is the flattened read view of a planet, with the rarity rendered
// as its label.
type Stats struct {
	Name                string       `json:"name" yaml:"name"`
	Label               string       `json:"label" yaml:"label"`
	TypeName            string       `json:"type_name" yaml:"type_name"`
	Description         string       `json:"description" yaml:"description"`
	Rarity              string       `json:"rarity" yaml:"rarity"`
	Ringed              bool         `json:"ringed" yaml:"ringed"`
	Landable            bool         `json:"landable" yaml:"landable"`
	Explorable          bool         `json:"explorable" yaml:"explorable"`
	DistanceFromArrival float64      `json:"dist_from_arrival_ls" yaml:"dist_from_arrival_ls"`
	SurfaceTemp         float64      `json:"surface_temp_k" yaml:"surface_temp_k"`
	SurfacePressure     float64      `json:"surface_pressure_atm" yaml:"surface_pressure_atm"`
	Radius              float64      `json:"radius_km" yaml:"radius_km"`
	EarthMasses         float64      `json:"earth_masses" yaml:"earth_masses"`
	Gravity             float64      `json:"gravity_g" yaml:"gravity_g"`
	OrbitalPeriod       units.Period `json:"orbital_period_days" yaml:"orbital_period_days"`
	RotationalPeriod    units.Period `json:"rotational_period_days" yaml:"rotational_period_days"`
}
