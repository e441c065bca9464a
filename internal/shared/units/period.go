package units

import "fmt"

// Period is a span measured in Earth days. Orbital periods of distant icy
// bodies run to millions of years, past what time.Duration can hold.
type Period float64

func Days(d float64) Period {
	return Period(d)
}

func (p Period) Days() float64 {
	return float64(p)
}

// String renders the period in the largest sensible unit.
func (p Period) String() string {
	d := float64(p)
	switch {
	case d >= 365.25*1000:
		return fmt.Sprintf("%.1f kyr", d/365.25/1000)
	case d >= 365.25:
		return fmt.Sprintf("%.1f yr", d/365.25)
	case d >= 1:
		return fmt.Sprintf("%.1f d", d)
	default:
		return fmt.Sprintf("%.1f h", d*24)
	}
}
