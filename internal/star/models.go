package star

import (
	"oasis-server/internal/rarity"
	"oasis-server/internal/shared/random"
	"oasis-server/internal/shared/units"
)

// ClassCode identifies a spectral class, e.g. "G" or "DAV".
type ClassCode string

const (
	ClassO             ClassCode = "O"
	ClassOGiant        ClassCode = "OG"
	ClassB             ClassCode = "B"
	ClassBGiant        ClassCode = "BG"
	ClassA             ClassCode = "A"
	ClassAGiant        ClassCode = "AG"
	ClassF             ClassCode = "F"
	ClassFGiant        ClassCode = "FG"
	ClassG             ClassCode = "G"
	ClassGGiant        ClassCode = "GG"
	ClassK             ClassCode = "K"
	ClassKGiant        ClassCode = "KG"
	ClassM             ClassCode = "M"
	ClassMGiant        ClassCode = "MG"
	ClassL             ClassCode = "L"
	ClassT             ClassCode = "T"
	ClassY             ClassCode = "Y"
	ClassHerbigAeBe    ClassCode = "AEBE"
	ClassTTauri        ClassCode = "TTS"
	ClassCarbon        ClassCode = "C"
	ClassCarbonJ       ClassCode = "CJ"
	ClassCarbonN       ClassCode = "CN"
	ClassMS            ClassCode = "MS"
	ClassS             ClassCode = "S"
	ClassWolfRayet     ClassCode = "W"
	ClassWolfRayetC    ClassCode = "WC"
	ClassWolfRayetN    ClassCode = "WN"
	ClassWolfRayetNC   ClassCode = "WNC"
	ClassWolfRayetO    ClassCode = "WO"
	ClassNeutron       ClassCode = "NS"
	ClassWhiteDwarf    ClassCode = "D"
	ClassWhiteDwarfDA  ClassCode = "DA"
	ClassWhiteDwarfDAB ClassCode = "DAB"
	ClassWhiteDwarfDAV ClassCode = "DAV"
	ClassWhiteDwarfDAZ ClassCode = "DAZ"
	ClassWhiteDwarfDB  ClassCode = "DB"
	ClassWhiteDwarfDBV ClassCode = "DBV"
	ClassWhiteDwarfDBZ ClassCode = "DBZ"
	ClassWhiteDwarfDC  ClassCode = "DC"
	ClassWhiteDwarfDCV ClassCode = "DCV"
	ClassWhiteDwarfDQ  ClassCode = "DQ"
	ClassBlackHole     ClassCode = "BH"
)

func (c ClassCode) String() string {
	return string(c)
}

// Profile is the statistical reference table for one star class.
type Profile struct {
	Code        ClassCode     `json:"code" yaml:"code"`
	Name        string        `json:"name" yaml:"name"`
	Description string        `json:"description" yaml:"description"`
	Rarity      rarity.Rarity `json:"rarity" yaml:"rarity"`
	// Spectral prefixes generated subtypes; empty for remnants without one.
	Spectral   string `json:"spectral" yaml:"spectral"`
	Luminosity string `json:"luminosity_class" yaml:"luminosity_class"`
	Scoopable  bool   `json:"scoopable" yaml:"scoopable"`
	Boostable  bool   `json:"boostable" yaml:"boostable"`

	Age         random.Range `json:"age_myr" yaml:"age_myr"`
	Mass        random.Range `json:"solar_masses" yaml:"solar_masses"`
	Radius      random.Range `json:"solar_radius" yaml:"solar_radius"`
	Temperature random.Range `json:"surface_temp_k" yaml:"surface_temp_k"`
	Orbital     random.Range `json:"orbital_period_days" yaml:"orbital_period_days"`
	Rotational  random.Range `json:"rotational_period_days" yaml:"rotational_period_days"`

	// Radius always follows mass. Temperature does too when this is set.
	LinkTemperature bool `json:"link_temperature" yaml:"link_temperature"`
}

// Properties is one sampled star class instance.
type Properties struct {
	Code             ClassCode     `json:"code"`
	ClassName        string        `json:"class_name"`
	Description      string        `json:"description"`
	Rarity           rarity.Rarity `json:"rarity"`
	Luminosity       string        `json:"luminosity_class"`
	Ringed           bool          `json:"ringed"`
	Scoopable        bool          `json:"scoopable"`
	Boostable        bool          `json:"boostable"`
	Age              float64       `json:"age_myr"`
	SolarMasses      float64       `json:"solar_masses"`
	SolarRadius      float64       `json:"solar_radius"`
	SurfaceTemp      float64       `json:"surface_temp_k"`
	OrbitalPeriod    units.Period  `json:"orbital_period_days"`
	RotationalPeriod units.Period  `json:"rotational_period_days"`
}

type Star struct {
	Name    string     `json:"name"`
	Class   Properties `json:"class"`
	Subtype string     `json:"subtype,omitempty"`
}

// Stats is the flattened read view of a star.
type Stats struct {
	Name             string       `json:"name" yaml:"name"`
	Code             string       `json:"code" yaml:"code"`
	ClassName        string       `json:"class_name" yaml:"class_name"`
	Subtype          string       `json:"subtype,omitempty" yaml:"subtype,omitempty"`
	Description      string       `json:"description" yaml:"description"`
	Rarity           string       `json:"rarity" yaml:"rarity"`
	Ringed           bool         `json:"ringed" yaml:"ringed"`
	Scoopable        bool         `json:"scoopable" yaml:"scoopable"`
	Boostable        bool         `json:"boostable" yaml:"boostable"`
	Age              float64      `json:"age_myr" yaml:"age_myr"`
	SolarMasses      float64      `json:"solar_masses" yaml:"solar_masses"`
	SolarRadius      float64      `json:"solar_radius" yaml:"solar_radius"`
	SurfaceTemp      float64      `json:"surface_temp_k" yaml:"surface_temp_k"`
	OrbitalPeriod    units.Period `json:"orbital_period_days" yaml:"orbital_period_days"`
	RotationalPeriod units.Period `json:"rotational_period_days" yaml:"rotational_period_days"`
}
