package naming

import (
	"fmt"

	"oasis-server/internal/shared/random"
)

// Style selects how a star name is built.
type Style int

const (
	StyleProper Style = iota
	StyleCatalogue
	StyleSector
)

var properNames = []string{
	"Altair", "Vega", "Sirius", "Arcturus", "Capella", "Rigel", "Procyon",
	"Betelgeuse", "Aldebaran", "Spica", "Antares", "Pollux", "Fomalhaut",
	"Deneb", "Regulus", "Adhara", "Castor", "Gacrux", "Bellatrix", "Elnath",
	"Miaplacidus", "Alnilam", "Alnair", "Alioth", "Dubhe", "Mirfak", "Wezen",
	"Sargas", "Kaus", "Avior", "Menkalinan", "Atria", "Alhena", "Peacock",
	"Alsephina", "Mirzam", "Polaris", "Alphard", "Hamal", "Algieba", "Diphda",
	"Mizar", "Nunki", "Menkent", "Mirach", "Alpheratz", "Rasalhague", "Kochab",
	"Saiph", "Zubenelgenubi", "Enif", "Schedar", "Markab", "Unukalhai", "Achenar",
}

var catalogues = []string{"HIP", "HD", "Gliese", "LHS", "Wolf", "Ross", "LTT"}

var sectorPrefixes = []string{
	"Synu", "Col", "Praea", "Eol", "Pru", "Hyp", "Blae", "Gria", "Flya",
	"Dry", "Eoch", "Swoi", "Thue", "Phroi", "Wrea", "Oob", "Boe", "Ploi",
}

var sectorSuffixes = []string{
	"efe", "ai", "uth", "prou", "ae", "io", "oe", "aa", "eia", "ooe", "ue",
}

// massCodes are the sector mass letters from lightest to heaviest.
const massCodes = "abcdefgh"

// Star returns a random star name in a random style.
func Star(r *random.Rand) string {
	return StarStyle(r, Style(r.IntN(3)))
}

// StarStyle returns a random star name in the given style.
func StarStyle(r *random.Rand, style Style) string {
	switch style {
	case StyleCatalogue:
		return fmt.Sprintf("%s %d", random.Pick(r, catalogues), r.IntRange(1, 99999))
	case StyleSector:
		return sectorName(r)
	default:
		return random.Pick(r, properNames)
	}
}

func sectorName(r *random.Rand) string {
	region := random.Pick(r, sectorPrefixes) + random.Pick(r, sectorSuffixes)
	letter := func() byte { return byte('A' + r.IntN(26)) }
	return fmt.Sprintf("%s %c%c-%c %c%d-%d",
		region,
		letter(), letter(), letter(),
		massCodes[r.IntN(len(massCodes))],
		r.IntN(30),
		r.IntRange(1, 999),
	)
}

// Planet names the n-th body of a system, counting from 1.
func Planet(star string, n int) string {
	return fmt.Sprintf("%s %d", star, n)
}
