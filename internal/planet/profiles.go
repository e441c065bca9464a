package planet

import (
	"oasis-server/internal/rarity"
	"oasis-server/internal/shared/random"
)

// profiles holds the reference ranges for every planet type, in catalogue
// order. Distances are light seconds, pressure is atmospheres, temperature is
// kelvin, radius is kilometres, gravity is g and periods are days.
var profiles = []Profile{
	{
		Code:              TypeAmmoniaWorld,
		Name:              "Ammonia World",
		RingedName:        "Ringed Ammonia World",
		Description:       "A terrestrial world whose oceans and atmosphere are dominated by liquid and gaseous ammonia.",
		RingedDescription: "An ammonia world circled by a ring system of ice and dust.",
		Rarity:            rarity.VeryRare,
		RingOdds:          42,
		Distance:          random.Range{Min: 7, Max: 817190},
		Pressure:          random.Range{Min: 0, Max: 4983498.11683198},
		Temperature:       random.Range{Min: 27, Max: 409},
		Mass:              random.Range{Min: 0.07346, Max: 1327.610718},
		Radius:            random.Range{Min: 2699.66775, Max: 30741.622},
		Gravity:           random.Range{Min: 0.249672518138, Max: 91.80329702145},
		Orbital:           random.Range{Min: 0.258450279086, Max: 747992.070736713},
		Rotational:        random.Range{Min: 0.211842411736, Max: 4442.4380215662},

		LinkTemperature: true,
		LinkRadius:      true,
		LinkGravity:     true,
	},
	{
		Code:              TypeWaterWorld,
		Name:              "Water World",
		RingedName:        "Ringed Water World",
		Description:       "A terrestrial world covered by a deep global ocean with a dense, water-rich atmosphere.",
		RingedDescription: "A global ocean world surrounded by thin icy rings.",
		Rarity:            rarity.Rare,
		RingOdds:          42,
		Distance:          random.Range{Min: 3, Max: 4217470},
		Pressure:          random.Range{Min: 0.07, Max: 6319180.5},
		Temperature:       random.Range{Min: 150, Max: 902},
		Mass:              random.Range{Min: 0.0687, Max: 741.438171},
		Radius:            random.Range{Min: 2640.894, Max: 29011.342},
		Gravity:           random.Range{Min: 0.250068247718, Max: 46.013426658406},
		Orbital:           random.Range{Min: 0.003370370512, Max: 570992.687407407},
		Rotational:        random.Range{Min: 0.124829452037, Max: 71900.1459814641},

		LinkTemperature: true,
	},
	{
		Code:              TypeWaterGiant,
		Name:              "Water Giant",
		RingedName:        "Ringed Water Giant",
		Description:       "A giant world made mostly of water, too massive to hold a solid surface.",
		RingedDescription: "A water giant wrapped in broad rings of frozen debris.",
		Rarity:            rarity.VeryRare,
		RingOdds:          15,
		Distance:          random.Range{Min: 21, Max: 690129},
		Pressure:          random.Range{Min: 1337.4206969, Max: 29501937664},
		Temperature:       random.Range{Min: 136, Max: 2715},
		Mass:              random.Range{Min: 17.23122, Max: 1961.928589},
		Radius:            random.Range{Min: 15892.973, Max: 30942.572},
		Gravity:           random.Range{Min: 2.298430556431, Max: 193.710734791427},
		Orbital:           random.Range{Min: 0.780787489155, Max: 38728.2255623079},
		Rotational:        random.Range{Min: 0.159246328854, Max: 3489.59481481481},

		LinkTemperature: true,
		LinkRadius:      true,
		LinkGravity:     true,
	},
	{
		Code:              TypeRockyBody,
		Name:              "Rocky Body",
		RingedName:        "Ringed Rocky Body",
		Description:       "A small airless body of silicate rock, pocked by impact craters.",
		RingedDescription: "A rocky body trailing a faint ring of captured debris.",
		Rarity:            rarity.VeryCommon,
		RingOdds:          20,
		Distance:          random.Range{Min: 3, Max: 7492300},
		Pressure:          random.Range{Min: 0, Max: 2516369920},
		Temperature:       random.Range{Min: 20, Max: 51171},
		Mass:              random.Range{Min: 0.0001, Max: 527.839539},
		Radius:            random.Range{Min: 181.887875, Max: 21765.112},
		Gravity:           random.Range{Min: 0.007895669291, Max: 50.039830862644},
		Orbital:           random.Range{Min: 0.001000000046, Max: 12163.6164409143},
		Rotational:        random.Range{Min: 0.100663452148, Max: 166276.93037037},

		LinkTemperature: true,
		LinkRadius:      true,
		LinkGravity:     true,
	},
	{
		Code:              TypeIcyBody,
		Name:              "Icy Body",
		RingedName:        "Ringed Icy Body",
		Description:       "A frozen body of water ice, methane and nitrogen far from its star.",
		RingedDescription: "An icy body girdled by rings of reflective ice.",
		Rarity:            rarity.VeryCommon,
		RingOdds:          20,
		Distance:          random.Range{Min: 1.37026, Max: 15653000},
		Pressure:          random.Range{Min: 0, Max: 204413011.941219},
		Temperature:       random.Range{Min: 1, Max: 4020},
		Mass:              random.Range{Min: 0.0001, Max: 2214.019287},
		Radius:            random.Range{Min: 160, Max: 31232.91},
		Gravity:           random.Range{Min: 0.004758505708, Max: 236.648152852392},
		Orbital:           random.Range{Min: 0.000104166667, Max: 1257206278.81862},
		Rotational:        random.Range{Min: 0.081735393383, Max: 2479320.4190602},

		LinkTemperature: true,
		LinkRadius:      true,
		LinkGravity:     true,
	},
	{
		Code:              TypeEarthLikeWorld,
		Name:              "Earth-like World",
		RingedName:        "Ringed Earth-like World",
		Description:       "A temperate terrestrial world with liquid water and an oxygen-bearing atmosphere.",
		RingedDescription: "An Earth-like world crowned by a rare ring system.",
		Rarity:            rarity.ExtremelyRare,
		RingOdds:          420,
		Distance:          random.Range{Min: 6, Max: 736306},
		Pressure:          random.Range{Min: 0.24206969, Max: 7.291643844066},
		Temperature:       random.Range{Min: 260, Max: 497},
		Mass:              random.Range{Min: 0.026, Max: 7.1},
		Radius:            random.Range{Min: 1944.26225, Max: 11914.006},
		Gravity:           random.Range{Min: 0.279545410512, Max: 2.553103251365},
		Orbital:           random.Range{Min: 0.279575634606, Max: 271840.426666667},
		Rotational:        random.Range{Min: 0.25040603397, Max: 5591.70194340926},

		LinkTemperature: true,
		LinkRadius:      true,
		LinkGravity:     true,
	},
	{
		Code:              TypeHighMetalContent,
		Name:              "High Metal Content Planet",
		RingedName:        "Ringed High Metal Content Planet",
		Description:       "A dense terrestrial world rich in iron and heavy metals.",
		RingedDescription: "A high metal content world wearing a ring of metallic debris.",
		Rarity:            rarity.Common,
		RingOdds:          20,
		Distance:          random.Range{Min: 0.147454, Max: 7488550},
		Pressure:          random.Range{Min: 0, Max: 38894529198.7091},
		Temperature:       random.Range{Min: 20, Max: 46100},
		Mass:              random.Range{Min: 0.0001, Max: 1397.998047},
		Radius:            random.Range{Min: 210.242671875, Max: 72253.984},
		Gravity:           random.Range{Min: 0.028504229273, Max: 228.220131339448},
		Orbital:           random.Range{Min: 0.005607748738, Max: 111160422.502844},
		Rotational:        random.Range{Min: 0.055748183634, Max: 141426.654814815},

		LinkTemperature: true,
		LinkRadius:      true,
		LinkGravity:     true,
	},
	{
		Code:              TypeRockyIceWorld,
		Name:              "Rocky Ice World",
		RingedName:        "Rocky Ice World (Ringed)",
		Description:       "A rocky world with a thick mantle of ice over its stony core.",
		RingedDescription: "A rocky ice world encircled by rings of ice and grit.",
		Rarity:            rarity.Uncommon,
		RingOdds:          25,
		Distance:          random.Range{Min: 5.3542, Max: 5339010},
		Pressure:          random.Range{Min: 0, Max: 253668685.603375},
		Temperature:       random.Range{Min: 20, Max: 15742},
		Mass:              random.Range{Min: 0.000107, Max: 298.62381},
		Radius:            random.Range{Min: 276, Max: 28515.804},
		Gravity:           random.Range{Min: 0.001378452377, Max: 17.259812728912},
		Orbital:           random.Range{Min: 0.167619572396, Max: 58634326.6897731},
		Rotational:        random.Range{Min: 0.147149262604, Max: 47808.7140740741},

		LinkRadius:      true,
		LinkGravity:     true,
	},
	{
		Code:              TypeMetalRichBody,
		Name:              "Metal-Rich Body",
		RingedName:        "Metal-Rich Body (Ringed)",
		Description:       "A world of almost pure metal, likely the exposed core of a shattered planet.",
		RingedDescription: "A metal-rich body surrounded by rings of metallic fragments.",
		Rarity:            rarity.Uncommon,
		RingOdds:          30,
		Distance:          random.Range{Min: 0.087741, Max: 7489630},
		Pressure:          random.Range{Min: 0, Max: 43050307445.3848},
		Temperature:       random.Range{Min: 20, Max: 47991},
		Mass:              random.Range{Min: 0.0001, Max: 715.209778},
		Radius:            random.Range{Min: 137.38325, Max: 20739.046},
		Gravity:           random.Range{Min: 0.029231388904, Max: 199.958389460213},
		Orbital:           random.Range{Min: 0.005403750475, Max: 70018026.7018299},
		Rotational:        random.Range{Min: 0.046768454097, Max: 5578.24185185},

		LinkRadius:      true,
		LinkGravity:     true,
	},
	{
		Code:              TypeHeliumGasGiant,
		Name:              "Helium Gas Giant",
		RingedName:        "Ringed Helium Gas Giant",
		Description:       "A gas giant whose hydrogen has been stripped away, leaving a helium envelope.",
		RingedDescription: "A helium gas giant carrying a wide ring plane.",
		Rarity:            rarity.VeryRare,
		RingOdds:          7,
		Distance:          random.Range{Min: 159.044, Max: 5542.96},
		Pressure:          random.Range{Min: 0, Max: 30887.2179620035},
		Temperature:       random.Range{Min: 53, Max: 1701},
		Mass:              random.Range{Min: 9.003934, Max: 5781.101074},
		Radius:            random.Range{Min: 16762.012, Max: 75900.72},
		Gravity:           random.Range{Min: 1.30247301576, Max: 515.948083392392},
		Orbital:           random.Range{Min: 30.12353209434, Max: 10178.4751922996},
		Rotational:        random.Range{Min: 0.517331237708, Max: 105.243145496817},

		LinkRadius:      true,
		LinkGravity:     true,
	},
	{
		Code:              TypeGlowingGreenGasGiant,
		Name:              "Glowing Green Gas Giant",
		RingedName:        "Glowing Green Gas Giant (Ringed)",
		Description:       "A gas giant glowing green from unexplained chemistry in its upper cloud decks.",
		RingedDescription: "A glowing green gas giant framed by luminous rings.",
		Rarity:            rarity.Legendary,
		RingOdds:          5,
		Distance:          random.Range{Min: 7.77777, Max: 4200069},
		Pressure:          random.Range{Min: 4.20696969, Max: 420.696969},
		Temperature:       random.Range{Min: 100, Max: 150},
		Mass:              random.Range{Min: 1.77777777, Max: 910.69696969},
		Radius:            random.Range{Min: 9010.666, Max: 77777.42},
		Gravity:           random.Range{Min: 0.242042042, Max: 20.4},
		Orbital:           random.Range{Min: 0.01337, Max: 3333420.696969},
		Rotational:        random.Range{Min: 0.17777777777777, Max: 317808.789789789},

		LinkRadius:      true,
		LinkGravity:     true,
	},
	{
		Code:              TypeClassIGasGiant,
		Name:              "Class I Gas Giant",
		RingedName:        "Ringed Class I Gas Giant",
		Description:       "A cold gas giant with upper clouds of ammonia ice.",
		RingedDescription: "A Class I gas giant with bright icy rings.",
		Rarity:            rarity.Common,
		RingOdds:          3,
		Distance:          random.Range{Min: 3, Max: 4404300},
		Pressure:          random.Range{Min: 0, Max: 0.00379244308},
		Temperature:       random.Range{Min: 1, Max: 150},
		Mass:              random.Range{Min: 0.734365, Max: 911.079224},
		Radius:            random.Range{Min: 8079.091, Max: 77787.584},
		Gravity:           random.Range{Min: 0.191422307729, Max: 19.845980443942},
		Orbital:           random.Range{Min: 0.001108796332, Max: 584242168.67597},
		Rotational:        random.Range{Min: 0.001365740741, Max: 7691317.0962963},

		LinkRadius:      true,
		LinkGravity:     true,
	},
	{
		Code:              TypeClassIIGasGiant,
		Name:              "Class II Gas Giant",
		RingedName:        "Ringed Class II Gas Giant",
		Description:       "A gas giant whose cloud tops are made of water vapour, giving it a bright white face.",
		RingedDescription: "A Class II gas giant with broad rings of water ice.",
		Rarity:            rarity.Rare,
		RingOdds:          3,
		Distance:          random.Range{Min: 4.41403, Max: 841899},
		Pressure:          random.Range{Min: 0, Max: 0.243458896875},
		Temperature:       random.Range{Min: 61, Max: 250},
		Mass:              random.Range{Min: 2.641097, Max: 1368.457764},
		Radius:            random.Range{Min: 10222.803, Max: 90000},
		Gravity:           random.Range{Min: 0.252062726485, Max: 24.584892915592},
		Orbital:           random.Range{Min: 0.135475762743, Max: 20275545.7549183},
		Rotational:        random.Range{Min: 0.142548313032, Max: 402652.586939491},

		LinkRadius:      true,
		LinkGravity:     true,
	},
	{
		Code:              TypeClassIIIGasGiant,
		Name:              "Class III Gas Giant",
		RingedName:        "Ringed Class III Gas Giant",
		Description:       "A gas giant too warm for water clouds, with a clear blue atmosphere.",
		RingedDescription: "A Class III gas giant with a dark, rocky ring system.",
		Rarity:            rarity.Common,
		RingOdds:          3,
		Distance:          random.Range{Min: 1.61936, Max: 7492280},
		Pressure:          random.Range{Min: 0, Max: 20305.728515625},
		Temperature:       random.Range{Min: 115, Max: 800},
		Mass:              random.Range{Min: 4.296463, Max: 3457.905762},
		Radius:            random.Range{Min: 12120.956, Max: 77849.944},
		Gravity:           random.Range{Min: 0.274524836901, Max: 199.304829579928},
		Orbital:           random.Range{Min: 0.018557870653, Max: 106016638.240329},
		Rotational:        random.Range{Min: 0.000862268519, Max: 218760.441309931},

		LinkRadius:      true,
		LinkGravity:     true,
	},
	{
		Code:              TypeClassIVGasGiant,
		Name:              "Class IV Gas Giant",
		RingedName:        "Ringed Class IV Gas Giant",
		Description:       "A hot gas giant whose cloud layer is made of alkali metals.",
		RingedDescription: "A Class IV gas giant with rings that glow in its heat.",
		Rarity:            rarity.Uncommon,
		RingOdds:          3,
		Distance:          random.Range{Min: 0.971942, Max: 7492300},
		Pressure:          random.Range{Min: 0.42, Max: 30707.168942},
		Temperature:       random.Range{Min: 800, Max: 1450},
		Mass:              random.Range{Min: 16.754765, Max: 5403.108398},
		Radius:            random.Range{Min: 17305.224, Max: 78291.304},
		Gravity:           random.Range{Min: 0.441846796047, Max: 71.175610458804},
		Orbital:           random.Range{Min: 0.01965354213, Max: 4126230.75555556},
		Rotational:        random.Range{Min: 0.057442621296, Max: 10070851.1288889},

		LinkRadius:      true,
		LinkGravity:     true,
	},
	{
		Code:              TypeClassVGasGiant,
		Name:              "Class V Gas Giant",
		RingedName:        "Ringed Class V Gas Giant",
		Description:       "A very hot gas giant with clouds of silicate and iron.",
		RingedDescription: "A Class V gas giant surrounded by rings of refractory dust.",
		Rarity:            rarity.Rare,
		RingOdds:          3,
		Distance:          random.Range{Min: 0.319073, Max: 697615},
		Pressure:          random.Range{Min: 0.42, Max: 33333.333},
		Temperature:       random.Range{Min: 1400, Max: 13712},
		Mass:              random.Range{Min: 32.504833, Max: 13063.395508},
		Radius:            random.Range{Min: 20016.274, Max: 77806.056},
		Gravity:           random.Range{Min: 0.593483029343, Max: 404.862526550861},
		Orbital:           random.Range{Min: 0.007973187153, Max: 4133050.70941095},
		Rotational:        random.Range{Min: 0.062575856586, Max: 2817.69796296296},

		LinkRadius:      true,
		LinkGravity:     true,
	},
	{
		Code:              TypeHeliumRichGasGiant,
		Name:              "Helium-Rich Gas Giant",
		RingedName:        "Ringed Helium-Rich Gas Giant",
		Description:       "A gas giant whose atmosphere holds far more helium than hydrogen.",
		RingedDescription: "A helium-rich gas giant with a wide ring system.",
		Rarity:            rarity.VeryRare,
		RingOdds:          7,
		Distance:          random.Range{Min: 2.47592, Max: 731999},
		Pressure:          random.Range{Min: 0, Max: 37777.7},
		Temperature:       random.Range{Min: 1, Max: 7787},
		Mass:              random.Range{Min: 1.028593, Max: 4764.864258},
		Radius:            random.Range{Min: 9557.561, Max: 77743.44},
		Gravity:           random.Range{Min: 0.244444247333, Max: 81.245461374845},
		Orbital:           random.Range{Min: 0.16154257787, Max: 2572298.80888889},
		Rotational:        random.Range{Min: 0.063662365671, Max: 2029.4611030485},

		LinkRadius:      true,
		LinkGravity:     true,
	},
	{
		Code:              TypeGasGiantAmmoniaBasedLife,
		Name:              "Gas Giant With Ammonia-Based Life",
		RingedName:        "Gas Giant With Ammonia-Based Life (Ringed)",
		Description:       "A gas giant hosting ammonia-based life drifting in its upper atmosphere.",
		RingedDescription: "A gas giant with ammonia-based life and a ring system.",
		Rarity:            rarity.VeryRare,
		RingOdds:          5,
		Distance:          random.Range{Min: 7.19408, Max: 4217110},
		Pressure:          random.Range{Min: 4.2, Max: 69696.9},
		Temperature:       random.Range{Min: 100, Max: 150},
		Mass:              random.Range{Min: 1.791545, Max: 909.972778},
		Radius:            random.Range{Min: 10265.455, Max: 77844.096},
		Gravity:           random.Range{Min: 0.245295452982, Max: 18.147572568807},
		Orbital:           random.Range{Min: 0.015803241023, Max: 3331479.58196979},
		Rotational:        random.Range{Min: 0.15729662816, Max: 316824.865185185},

		LinkRadius:      true,
		LinkGravity:     true,
	},
	{
		Code:              TypeGasGiantWaterBasedLife,
		Name:              "Gas Giant With Water-Based Life",
		RingedName:        "Gas Giant With Water-Based Life (Ringed)",
		Description:       "A gas giant hosting water-based life in its temperate cloud layers.",
		RingedDescription: "A gas giant with water-based life and a ring system.",
		Rarity:            rarity.Rare,
		RingOdds:          5,
		Distance:          random.Range{Min: 5.81925, Max: 4214690},
		Pressure:          random.Range{Min: 4.2, Max: 69420.420691337},
		Temperature:       random.Range{Min: 150, Max: 250},
		Mass:              random.Range{Min: 2.590262, Max: 1367.778809},
		Radius:            random.Range{Min: 10265.455, Max: 77844.096},
		Gravity:           random.Range{Min: 0.252151647889, Max: 26.734562844827},
		Orbital:           random.Range{Min: 0.002035879559, Max: 16447556.1016134},
		Rotational:        random.Range{Min: 0.114944627546, Max: 458802.441481481},

		LinkRadius:      true,
		LinkGravity:     true,
	},
}
