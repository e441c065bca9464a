package rarity

import (
	"fmt"
	"strings"
)

// Rarity is the flavor label attached to a generated body.
type Rarity int

const (
	VeryCommon Rarity = iota
	Common
	Uncommon
	Rare
	VeryRare
	ExtremelyRare
	Legendary
)

// All returns every rarity from most to least common.
func All() []Rarity {
	return []Rarity{VeryCommon, Common, Uncommon, Rare, VeryRare, ExtremelyRare, Legendary}
}

func (r Rarity) String() string {
	switch r {
	case VeryCommon:
		return "Very Common"
	case Common:
		return "Common"
	case Uncommon:
		return "Uncommon"
	case Rare:
		return "Rare"
	case VeryRare:
		return "Very Rare"
	case ExtremelyRare:
		return "Extremely Rare"
	case Legendary:
		return "Legendary"
	default:
		return fmt.Sprintf("Rarity(%d)", int(r))
	}
}

func (r Rarity) IsValid() bool {
	return r >= VeryCommon && r <= Legendary
}

// Weight is the relative draw weight used when picking categories by rarity.
func (r Rarity) Weight() int {
	switch r {
	case VeryCommon:
		return 40
	case Common:
		return 25
	case Uncommon:
		return 15
	case Rare:
		return 10
	case VeryRare:
		return 6
	case ExtremelyRare:
		return 3
	case Legendary:
		return 1
	default:
		return 0
	}
}

// Parse accepts the display label or a compact form ("very_rare", "VeryRare").
func Parse(s string) (Rarity, error) {
	key := strings.NewReplacer(" ", "", "_", "", "-", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	for _, r := range All() {
		if strings.ReplaceAll(strings.ToLower(r.String()), " ", "") == key {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown rarity %q", s)
}

func (r Rarity) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("invalid rarity %d", int(r))
	}
	return []byte(r.String()), nil
}

func (r *Rarity) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
