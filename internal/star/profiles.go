package star

import (
	"oasis-server/internal/rarity"
	"oasis-server/internal/shared/random"
)

// profiles holds the reference ranges for every star class, in catalogue
// order. Age is millions of years, mass is solar masses, radius is solar
// radii, temperature is kelvin and periods are days.
var profiles = []Profile{
	{
		Code:            ClassO,
		Name:            "Class O Star",
		Description:     "A hot, massive blue main-sequence star that burns through its fuel in a few million years.",
		Rarity:          rarity.VeryRare,
		Spectral:        "O",
		Luminosity:      "V",
		Scoopable:       true,
		Age:             random.Range{Min: 1, Max: 10},
		Mass:            random.Range{Min: 16, Max: 90},
		Radius:          random.Range{Min: 6.6, Max: 20},
		Temperature:     random.Range{Min: 30000, Max: 52000},
		Orbital:         random.Range{Min: 0.5, Max: 420000},
		Rotational:      random.Range{Min: 0.8, Max: 9},
		LinkTemperature: true,
	},
	{
		Code:            ClassOGiant,
		Name:            "Class O Giant",
		Description:     "A swollen blue giant of extreme luminosity, already leaving the main sequence.",
		Rarity:          rarity.ExtremelyRare,
		Spectral:        "O",
		Luminosity:      "III",
		Scoopable:       true,
		Age:             random.Range{Min: 2, Max: 12},
		Mass:            random.Range{Min: 20, Max: 120},
		Radius:          random.Range{Min: 12, Max: 35},
		Temperature:     random.Range{Min: 28000, Max: 45000},
		Orbital:         random.Range{Min: 1, Max: 600000},
		Rotational:      random.Range{Min: 2, Max: 20},
		LinkTemperature: true,
	},
	{
		Code:            ClassB,
		Name:            "Class B Star",
		Description:     "A blue-white main-sequence star, bright and short-lived.",
		Rarity:          rarity.Rare,
		Spectral:        "B",
		Luminosity:      "V",
		Scoopable:       true,
		Age:             random.Range{Min: 10, Max: 300},
		Mass:            random.Range{Min: 2.1, Max: 16},
		Radius:          random.Range{Min: 1.8, Max: 6.6},
		Temperature:     random.Range{Min: 10000, Max: 30000},
		Orbital:         random.Range{Min: 0.5, Max: 400000},
		Rotational:      random.Range{Min: 0.5, Max: 5},
		LinkTemperature: true,
	},
	{
		Code:            ClassBGiant,
		Name:            "Class B Giant",
		Description:     "A blue-white giant that has exhausted the hydrogen in its core.",
		Rarity:          rarity.VeryRare,
		Spectral:        "B",
		Luminosity:      "III",
		Scoopable:       true,
		Age:             random.Range{Min: 20, Max: 350},
		Mass:            random.Range{Min: 4, Max: 20},
		Radius:          random.Range{Min: 5, Max: 25},
		Temperature:     random.Range{Min: 9500, Max: 28000},
		Orbital:         random.Range{Min: 1, Max: 500000},
		Rotational:      random.Range{Min: 2, Max: 40},
		LinkTemperature: true,
	},
	{
		Code:            ClassA,
		Name:            "Class A Star",
		Description:     "A white main-sequence star with strong hydrogen lines and a fast spin.",
		Rarity:          rarity.Uncommon,
		Spectral:        "A",
		Luminosity:      "V",
		Scoopable:       true,
		Age:             random.Range{Min: 100, Max: 2000},
		Mass:            random.Range{Min: 1.4, Max: 2.1},
		Radius:          random.Range{Min: 1.4, Max: 1.8},
		Temperature:     random.Range{Min: 7500, Max: 10000},
		Orbital:         random.Range{Min: 0.3, Max: 350000},
		Rotational:      random.Range{Min: 0.3, Max: 3},
		LinkTemperature: true,
	},
	{
		Code:            ClassAGiant,
		Name:            "Class A Giant",
		Description:     "A white giant star, larger and cooler than its main-sequence cousins.",
		Rarity:          rarity.Rare,
		Spectral:        "A",
		Luminosity:      "III",
		Scoopable:       true,
		Age:             random.Range{Min: 300, Max: 2500},
		Mass:            random.Range{Min: 1.6, Max: 4},
		Radius:          random.Range{Min: 3, Max: 12},
		Temperature:     random.Range{Min: 7000, Max: 9800},
		Orbital:         random.Range{Min: 1, Max: 450000},
		Rotational:      random.Range{Min: 1, Max: 30},
		LinkTemperature: true,
	},
	{
		Code:            ClassF,
		Name:            "Class F Star",
		Description:     "A yellow-white main-sequence star, slightly hotter than the Sun.",
		Rarity:          rarity.Uncommon,
		Spectral:        "F",
		Luminosity:      "V",
		Scoopable:       true,
		Age:             random.Range{Min: 1000, Max: 7000},
		Mass:            random.Range{Min: 1.04, Max: 1.4},
		Radius:          random.Range{Min: 1.15, Max: 1.4},
		Temperature:     random.Range{Min: 6000, Max: 7500},
		Orbital:         random.Range{Min: 0.3, Max: 300000},
		Rotational:      random.Range{Min: 1, Max: 8},
		LinkTemperature: true,
	},
	{
		Code:            ClassFGiant,
		Name:            "Class F Giant",
		Description:     "A yellow-white giant crossing from the main sequence toward the red giant branch.",
		Rarity:          rarity.Rare,
		Spectral:        "F",
		Luminosity:      "III",
		Scoopable:       true,
		Age:             random.Range{Min: 1500, Max: 8000},
		Mass:            random.Range{Min: 1.1, Max: 3},
		Radius:          random.Range{Min: 2.5, Max: 15},
		Temperature:     random.Range{Min: 5800, Max: 7200},
		Orbital:         random.Range{Min: 1, Max: 400000},
		Rotational:      random.Range{Min: 5, Max: 60},
		LinkTemperature: true,
	},
	{
		Code:            ClassG,
		Name:            "Class G Star",
		Description:     "A yellow main-sequence star much like the Sun.",
		Rarity:          rarity.Common,
		Spectral:        "G",
		Luminosity:      "V",
		Scoopable:       true,
		Age:             random.Range{Min: 1000, Max: 10000},
		Mass:            random.Range{Min: 0.8, Max: 1.04},
		Radius:          random.Range{Min: 0.96, Max: 1.15},
		Temperature:     random.Range{Min: 5200, Max: 6000},
		Orbital:         random.Range{Min: 0.3, Max: 250000},
		Rotational:      random.Range{Min: 15, Max: 40},
		LinkTemperature: true,
	},
	{
		Code:            ClassGGiant,
		Name:            "Class G Giant",
		Description:     "A yellow giant, a Sun-like star late in its life.",
		Rarity:          rarity.Uncommon,
		Spectral:        "G",
		Luminosity:      "III",
		Scoopable:       true,
		Age:             random.Range{Min: 8000, Max: 12000},
		Mass:            random.Range{Min: 0.9, Max: 4},
		Radius:          random.Range{Min: 5, Max: 25},
		Temperature:     random.Range{Min: 4800, Max: 5800},
		Orbital:         random.Range{Min: 1, Max: 350000},
		Rotational:      random.Range{Min: 30, Max: 400},
		LinkTemperature: true,
	},
	{
		Code:            ClassK,
		Name:            "Class K Star",
		Description:     "An orange main-sequence star, cooler and longer-lived than the Sun.",
		Rarity:          rarity.Common,
		Spectral:        "K",
		Luminosity:      "V",
		Scoopable:       true,
		Age:             random.Range{Min: 1000, Max: 13000},
		Mass:            random.Range{Min: 0.45, Max: 0.8},
		Radius:          random.Range{Min: 0.7, Max: 0.96},
		Temperature:     random.Range{Min: 3700, Max: 5200},
		Orbital:         random.Range{Min: 0.2, Max: 200000},
		Rotational:      random.Range{Min: 20, Max: 50},
		LinkTemperature: true,
	},
	{
		Code:            ClassKGiant,
		Name:            "Class K Giant",
		Description:     "An orange giant whose outer layers have swollen to many times their original size.",
		Rarity:          rarity.Uncommon,
		Spectral:        "K",
		Luminosity:      "III",
		Scoopable:       true,
		Age:             random.Range{Min: 1000, Max: 13000},
		Mass:            random.Range{Min: 0.8, Max: 3},
		Radius:          random.Range{Min: 10, Max: 45},
		Temperature:     random.Range{Min: 3800, Max: 5000},
		Orbital:         random.Range{Min: 1, Max: 300000},
		Rotational:      random.Range{Min: 100, Max: 1200},
		LinkTemperature: true,
	},
	{
		Code:            ClassM,
		Name:            "Class M Star",
		Description:     "A small, cool red dwarf, the most common kind of star in the galaxy.",
		Rarity:          rarity.VeryCommon,
		Spectral:        "M",
		Luminosity:      "V",
		Scoopable:       true,
		Age:             random.Range{Min: 1000, Max: 13500},
		Mass:            random.Range{Min: 0.08, Max: 0.45},
		Radius:          random.Range{Min: 0.1, Max: 0.7},
		Temperature:     random.Range{Min: 2400, Max: 3700},
		Orbital:         random.Range{Min: 0.1, Max: 150000},
		Rotational:      random.Range{Min: 0.5, Max: 150},
		LinkTemperature: true,
	},
	{
		Code:            ClassMGiant,
		Name:            "Class M Giant",
		Description:     "A red giant of vast size and low surface temperature.",
		Rarity:          rarity.Uncommon,
		Spectral:        "M",
		Luminosity:      "III",
		Scoopable:       true,
		Age:             random.Range{Min: 1000, Max: 13500},
		Mass:            random.Range{Min: 0.8, Max: 8},
		Radius:          random.Range{Min: 40, Max: 400},
		Temperature:     random.Range{Min: 2600, Max: 3800},
		Orbital:         random.Range{Min: 5, Max: 500000},
		Rotational:      random.Range{Min: 300, Max: 5000},
		LinkTemperature: true,
	},
	{
		Code:        ClassL,
		Name:        "Class L (Brown Dwarf)",
		Description: "A dim, dark red brown dwarf with clouds of metal hydrides.",
		Rarity:      rarity.Common,
		Spectral:    "L",
		Luminosity:  "V",
		Age:         random.Range{Min: 500, Max: 13000},
		Mass:        random.Range{Min: 0.06, Max: 0.08},
		Radius:      random.Range{Min: 0.08, Max: 0.12},
		Temperature: random.Range{Min: 1300, Max: 2400},
		Orbital:     random.Range{Min: 0.1, Max: 120000},
		Rotational:  random.Range{Min: 0.08, Max: 2},
	},
	{
		Code:        ClassT,
		Name:        "Class T (Brown Dwarf)",
		Description: "A cool methane brown dwarf that glows faintly magenta.",
		Rarity:      rarity.Common,
		Spectral:    "T",
		Luminosity:  "V",
		Age:         random.Range{Min: 500, Max: 13000},
		Mass:        random.Range{Min: 0.02, Max: 0.07},
		Radius:      random.Range{Min: 0.08, Max: 0.12},
		Temperature: random.Range{Min: 550, Max: 1300},
		Orbital:     random.Range{Min: 0.1, Max: 100000},
		Rotational:  random.Range{Min: 0.08, Max: 2},
	},
	{
		Code:        ClassY,
		Name:        "Class Y (Brown Dwarf)",
		Description: "The coldest kind of brown dwarf, barely warmer than a gas giant.",
		Rarity:      rarity.Uncommon,
		Spectral:    "Y",
		Luminosity:  "V",
		Age:         random.Range{Min: 1000, Max: 13000},
		Mass:        random.Range{Min: 0.005, Max: 0.03},
		Radius:      random.Range{Min: 0.08, Max: 0.12},
		Temperature: random.Range{Min: 250, Max: 550},
		Orbital:     random.Range{Min: 0.1, Max: 80000},
		Rotational:  random.Range{Min: 0.1, Max: 2},
	},
	{
		Code:        ClassHerbigAeBe,
		Name:        "Herbig Ae/Be Protostar",
		Description: "A young intermediate-mass star still wrapped in the disc it formed from.",
		Rarity:      rarity.Rare,
		Spectral:    "A",
		Luminosity:  "Ve",
		Age:         random.Range{Min: 0.1, Max: 10},
		Mass:        random.Range{Min: 2, Max: 8},
		Radius:      random.Range{Min: 1.5, Max: 5},
		Temperature: random.Range{Min: 7500, Max: 12000},
		Orbital:     random.Range{Min: 0.5, Max: 300000},
		Rotational:  random.Range{Min: 0.5, Max: 3},
	},
	{
		Code:        ClassTTauri,
		Name:        "T Tauri Protostar",
		Description: "A young variable star still contracting toward the main sequence.",
		Rarity:      rarity.Uncommon,
		Spectral:    "K",
		Luminosity:  "Ve",
		Age:         random.Range{Min: 0.1, Max: 10},
		Mass:        random.Range{Min: 0.3, Max: 2},
		Radius:      random.Range{Min: 1, Max: 4},
		Temperature: random.Range{Min: 3000, Max: 5500},
		Orbital:     random.Range{Min: 0.3, Max: 200000},
		Rotational:  random.Range{Min: 1, Max: 12},
	},
	{
		Code:        ClassCarbon,
		Name:        "Carbon Star",
		Description: "A late red giant whose atmosphere holds more carbon than oxygen.",
		Rarity:      rarity.VeryRare,
		Spectral:    "C",
		Luminosity:  "III",
		Age:         random.Range{Min: 1000, Max: 10000},
		Mass:        random.Range{Min: 1, Max: 5},
		Radius:      random.Range{Min: 150, Max: 450},
		Temperature: random.Range{Min: 2500, Max: 4000},
		Orbital:     random.Range{Min: 10, Max: 600000},
		Rotational:  random.Range{Min: 400, Max: 8000},
	},
	{
		Code:        ClassCarbonJ,
		Name:        "CJ Carbon Star",
		Description: "A carbon star unusually rich in carbon-13.",
		Rarity:      rarity.ExtremelyRare,
		Spectral:    "C",
		Luminosity:  "III",
		Age:         random.Range{Min: 1000, Max: 10000},
		Mass:        random.Range{Min: 1, Max: 4},
		Radius:      random.Range{Min: 150, Max: 400},
		Temperature: random.Range{Min: 2500, Max: 3800},
		Orbital:     random.Range{Min: 10, Max: 600000},
		Rotational:  random.Range{Min: 400, Max: 8000},
	},
	{
		Code:        ClassCarbonN,
		Name:        "CN Carbon Star",
		Description: "An asymptotic giant branch carbon star with strong cyanogen bands.",
		Rarity:      rarity.VeryRare,
		Spectral:    "C",
		Luminosity:  "III",
		Age:         random.Range{Min: 1000, Max: 10000},
		Mass:        random.Range{Min: 1.5, Max: 5},
		Radius:      random.Range{Min: 200, Max: 500},
		Temperature: random.Range{Min: 2400, Max: 3600},
		Orbital:     random.Range{Min: 10, Max: 600000},
		Rotational:  random.Range{Min: 500, Max: 9000},
	},
	{
		Code:        ClassMS,
		Name:        "MS-type Star",
		Description: "A red giant midway between an M-type giant and an S-type star.",
		Rarity:      rarity.VeryRare,
		Spectral:    "MS",
		Luminosity:  "III",
		Age:         random.Range{Min: 1000, Max: 10000},
		Mass:        random.Range{Min: 1, Max: 4},
		Radius:      random.Range{Min: 100, Max: 350},
		Temperature: random.Range{Min: 2700, Max: 3700},
		Orbital:     random.Range{Min: 10, Max: 500000},
		Rotational:  random.Range{Min: 300, Max: 6000},
	},
	{
		Code:        ClassS,
		Name:        "S-type Star",
		Description: "A cool giant with nearly equal carbon and oxygen in its atmosphere.",
		Rarity:      rarity.VeryRare,
		Spectral:    "S",
		Luminosity:  "III",
		Age:         random.Range{Min: 1000, Max: 10000},
		Mass:        random.Range{Min: 1, Max: 4},
		Radius:      random.Range{Min: 100, Max: 400},
		Temperature: random.Range{Min: 2400, Max: 3600},
		Orbital:     random.Range{Min: 10, Max: 500000},
		Rotational:  random.Range{Min: 300, Max: 7000},
	},
	{
		Code:        ClassWolfRayet,
		Name:        "Wolf-Rayet Star",
		Description: "A massive star stripped of its hydrogen envelope, shedding mass in a violent wind.",
		Rarity:      rarity.ExtremelyRare,
		Spectral:    "W",
		Luminosity:  "I",
		Age:         random.Range{Min: 0.5, Max: 8},
		Mass:        random.Range{Min: 10, Max: 80},
		Radius:      random.Range{Min: 0.5, Max: 20},
		Temperature: random.Range{Min: 30000, Max: 210000},
		Orbital:     random.Range{Min: 0.5, Max: 400000},
		Rotational:  random.Range{Min: 0.5, Max: 10},
	},
	{
		Code:        ClassWolfRayetC,
		Name:        "Wolf-Rayet C Star",
		Description: "A Wolf-Rayet star whose spectrum is dominated by ionised carbon.",
		Rarity:      rarity.ExtremelyRare,
		Spectral:    "WC",
		Luminosity:  "I",
		Age:         random.Range{Min: 0.5, Max: 8},
		Mass:        random.Range{Min: 10, Max: 50},
		Radius:      random.Range{Min: 0.5, Max: 10},
		Temperature: random.Range{Min: 40000, Max: 200000},
		Orbital:     random.Range{Min: 0.5, Max: 400000},
		Rotational:  random.Range{Min: 0.5, Max: 10},
	},
	{
		Code:        ClassWolfRayetN,
		Name:        "Wolf-Rayet N Star",
		Description: "A Wolf-Rayet star whose spectrum is dominated by ionised nitrogen.",
		Rarity:      rarity.ExtremelyRare,
		Spectral:    "WN",
		Luminosity:  "I",
		Age:         random.Range{Min: 0.5, Max: 8},
		Mass:        random.Range{Min: 10, Max: 80},
		Radius:      random.Range{Min: 0.8, Max: 20},
		Temperature: random.Range{Min: 30000, Max: 140000},
		Orbital:     random.Range{Min: 0.5, Max: 400000},
		Rotational:  random.Range{Min: 0.5, Max: 10},
	},
	{
		Code:        ClassWolfRayetNC,
		Name:        "Wolf-Rayet NC Star",
		Description: "A Wolf-Rayet star showing both nitrogen and carbon lines.",
		Rarity:      rarity.ExtremelyRare,
		Spectral:    "WN",
		Luminosity:  "I",
		Age:         random.Range{Min: 0.5, Max: 8},
		Mass:        random.Range{Min: 10, Max: 60},
		Radius:      random.Range{Min: 0.6, Max: 15},
		Temperature: random.Range{Min: 35000, Max: 160000},
		Orbital:     random.Range{Min: 0.5, Max: 400000},
		Rotational:  random.Range{Min: 0.5, Max: 10},
	},
	{
		Code:        ClassWolfRayetO,
		Name:        "Wolf-Rayet O Star",
		Description: "The hottest and rarest Wolf-Rayet star, rich in ionised oxygen.",
		Rarity:      rarity.Legendary,
		Spectral:    "WO",
		Luminosity:  "I",
		Age:         random.Range{Min: 0.5, Max: 6},
		Mass:        random.Range{Min: 10, Max: 30},
		Radius:      random.Range{Min: 0.4, Max: 4},
		Temperature: random.Range{Min: 100000, Max: 210000},
		Orbital:     random.Range{Min: 0.5, Max: 400000},
		Rotational:  random.Range{Min: 0.5, Max: 10},
	},
	{
		Code:        ClassNeutron,
		Name:        "Neutron Star",
		Description: "The collapsed core of a massive star, spinning fast with jets that can supercharge a frame shift drive.",
		Rarity:      rarity.VeryRare,
		Spectral:    "",
		Luminosity:  "",
		Boostable:   true,
		Age:         random.Range{Min: 10, Max: 13000},
		Mass:        random.Range{Min: 1.1, Max: 2.3},
		Radius:      random.Range{Min: 0.000011, Max: 0.000022},
		Temperature: random.Range{Min: 100000, Max: 1000000},
		Orbital:     random.Range{Min: 0.1, Max: 500000},
		Rotational:  random.Range{Min: 0.0000116, Max: 0.0001},
	},
	{
		Code:        ClassWhiteDwarf,
		Name:        "White Dwarf (D)",
		Description: "The dense, cooling remnant core of a Sun-like star.",
		Rarity:      rarity.Uncommon,
		Spectral:    "D",
		Luminosity:  "VII",
		Boostable:   true,
		Age:         random.Range{Min: 100, Max: 13000},
		Mass:        random.Range{Min: 0.17, Max: 1.33},
		Radius:      random.Range{Min: 0.008, Max: 0.02},
		Temperature: random.Range{Min: 4000, Max: 40000},
		Orbital:     random.Range{Min: 0.1, Max: 300000},
		Rotational:  random.Range{Min: 0.01, Max: 3},
	},
	{
		Code:        ClassWhiteDwarfDA,
		Name:        "White Dwarf (DA)",
		Description: "A white dwarf with a hydrogen-rich atmosphere.",
		Rarity:      rarity.Uncommon,
		Spectral:    "DA",
		Luminosity:  "VII",
		Boostable:   true,
		Age:         random.Range{Min: 100, Max: 13000},
		Mass:        random.Range{Min: 0.17, Max: 1.33},
		Radius:      random.Range{Min: 0.008, Max: 0.02},
		Temperature: random.Range{Min: 5000, Max: 80000},
		Orbital:     random.Range{Min: 0.1, Max: 300000},
		Rotational:  random.Range{Min: 0.01, Max: 3},
	},
	{
		Code:        ClassWhiteDwarfDAB,
		Name:        "White Dwarf (DAB)",
		Description: "A white dwarf with hydrogen and neutral helium in its atmosphere.",
		Rarity:      rarity.Rare,
		Spectral:    "DAB",
		Luminosity:  "VII",
		Boostable:   true,
		Age:         random.Range{Min: 100, Max: 13000},
		Mass:        random.Range{Min: 0.3, Max: 1.2},
		Radius:      random.Range{Min: 0.008, Max: 0.02},
		Temperature: random.Range{Min: 12000, Max: 30000},
		Orbital:     random.Range{Min: 0.1, Max: 300000},
		Rotational:  random.Range{Min: 0.01, Max: 3},
	},
	{
		Code:        ClassWhiteDwarfDAV,
		Name:        "White Dwarf (DAV)",
		Description: "A pulsating hydrogen-rich white dwarf, also called a ZZ Ceti variable.",
		Rarity:      rarity.Rare,
		Spectral:    "DAV",
		Luminosity:  "VII",
		Boostable:   true,
		Age:         random.Range{Min: 100, Max: 13000},
		Mass:        random.Range{Min: 0.5, Max: 1.1},
		Radius:      random.Range{Min: 0.008, Max: 0.016},
		Temperature: random.Range{Min: 10500, Max: 12500},
		Orbital:     random.Range{Min: 0.1, Max: 300000},
		Rotational:  random.Range{Min: 0.01, Max: 3},
	},
	{
		Code:        ClassWhiteDwarfDAZ,
		Name:        "White Dwarf (DAZ)",
		Description: "A hydrogen-rich white dwarf polluted by metals.",
		Rarity:      rarity.Rare,
		Spectral:    "DAZ",
		Luminosity:  "VII",
		Boostable:   true,
		Age:         random.Range{Min: 100, Max: 13000},
		Mass:        random.Range{Min: 0.4, Max: 1.2},
		Radius:      random.Range{Min: 0.008, Max: 0.018},
		Temperature: random.Range{Min: 5000, Max: 30000},
		Orbital:     random.Range{Min: 0.1, Max: 300000},
		Rotational:  random.Range{Min: 0.01, Max: 3},
	},
	{
		Code:        ClassWhiteDwarfDB,
		Name:        "White Dwarf (DB)",
		Description: "A white dwarf with a helium-rich atmosphere.",
		Rarity:      rarity.Uncommon,
		Spectral:    "DB",
		Luminosity:  "VII",
		Boostable:   true,
		Age:         random.Range{Min: 100, Max: 13000},
		Mass:        random.Range{Min: 0.4, Max: 1.2},
		Radius:      random.Range{Min: 0.008, Max: 0.018},
		Temperature: random.Range{Min: 12000, Max: 30000},
		Orbital:     random.Range{Min: 0.1, Max: 300000},
		Rotational:  random.Range{Min: 0.01, Max: 3},
	},
	{
		Code:        ClassWhiteDwarfDBV,
		Name:        "White Dwarf (DBV)",
		Description: "A pulsating helium-atmosphere white dwarf.",
		Rarity:      rarity.VeryRare,
		Spectral:    "DBV",
		Luminosity:  "VII",
		Boostable:   true,
		Age:         random.Range{Min: 100, Max: 13000},
		Mass:        random.Range{Min: 0.5, Max: 1.1},
		Radius:      random.Range{Min: 0.008, Max: 0.016},
		Temperature: random.Range{Min: 22000, Max: 29000},
		Orbital:     random.Range{Min: 0.1, Max: 300000},
		Rotational:  random.Range{Min: 0.01, Max: 3},
	},
	{
		Code:        ClassWhiteDwarfDBZ,
		Name:        "White Dwarf (DBZ)",
		Description: "A helium-atmosphere white dwarf polluted by metals.",
		Rarity:      rarity.VeryRare,
		Spectral:    "DBZ",
		Luminosity:  "VII",
		Boostable:   true,
		Age:         random.Range{Min: 100, Max: 13000},
		Mass:        random.Range{Min: 0.4, Max: 1.2},
		Radius:      random.Range{Min: 0.008, Max: 0.018},
		Temperature: random.Range{Min: 12000, Max: 30000},
		Orbital:     random.Range{Min: 0.1, Max: 300000},
		Rotational:  random.Range{Min: 0.01, Max: 3},
	},
	{
		Code:        ClassWhiteDwarfDC,
		Name:        "White Dwarf (DC)",
		Description: "A cool white dwarf with a featureless continuous spectrum.",
		Rarity:      rarity.Uncommon,
		Spectral:    "DC",
		Luminosity:  "VII",
		Boostable:   true,
		Age:         random.Range{Min: 1000, Max: 13000},
		Mass:        random.Range{Min: 0.4, Max: 1.2},
		Radius:      random.Range{Min: 0.008, Max: 0.018},
		Temperature: random.Range{Min: 4000, Max: 11000},
		Orbital:     random.Range{Min: 0.1, Max: 300000},
		Rotational:  random.Range{Min: 0.01, Max: 3},
	},
	{
		Code:        ClassWhiteDwarfDCV,
		Name:        "White Dwarf (DCV)",
		Description: "A variable white dwarf with a featureless spectrum.",
		Rarity:      rarity.VeryRare,
		Spectral:    "DCV",
		Luminosity:  "VII",
		Boostable:   true,
		Age:         random.Range{Min: 1000, Max: 13000},
		Mass:        random.Range{Min: 0.4, Max: 1.2},
		Radius:      random.Range{Min: 0.008, Max: 0.018},
		Temperature: random.Range{Min: 4000, Max: 11000},
		Orbital:     random.Range{Min: 0.1, Max: 300000},
		Rotational:  random.Range{Min: 0.01, Max: 3},
	},
	{
		Code:        ClassWhiteDwarfDQ,
		Name:        "White Dwarf (DQ)",
		Description: "A white dwarf with carbon features in its spectrum.",
		Rarity:      rarity.Rare,
		Spectral:    "DQ",
		Luminosity:  "VII",
		Boostable:   true,
		Age:         random.Range{Min: 1000, Max: 13000},
		Mass:        random.Range{Min: 0.5, Max: 1.2},
		Radius:      random.Range{Min: 0.008, Max: 0.016},
		Temperature: random.Range{Min: 5000, Max: 15000},
		Orbital:     random.Range{Min: 0.1, Max: 300000},
		Rotational:  random.Range{Min: 0.01, Max: 3},
	},
	{
		Code:        ClassBlackHole,
		Name:        "Black Hole",
		Description: "A collapsed star whose gravity lets nothing escape, not even light.",
		Rarity:      rarity.Legendary,
		Spectral:    "",
		Luminosity:  "",
		Age:         random.Range{Min: 10, Max: 13000},
		Mass:        random.Range{Min: 3, Max: 100},
		Radius:      random.Range{Min: 0.000012, Max: 0.0004},
		Temperature: random.Range{Min: 0, Max: 0},
		Orbital:     random.Range{Min: 0.1, Max: 800000},
		Rotational:  random.Range{Min: 0.0001, Max: 0.01},
	},
}
