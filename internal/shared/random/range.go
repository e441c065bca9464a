package random

// Range is an inclusive interval of a sampled quantity.
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Uniform samples the range uniformly.
func (rg Range) Uniform(r *Rand) float64 {
	return r.Between(rg.Min, rg.Max)
}

// RelativePercentage samples a relative position inside the range.
func (rg Range) RelativePercentage(r *Rand) float64 {
	return r.RelativePercentage(rg.Min, rg.Max)
}

// At returns the value at percentage of the range.
func (rg Range) At(percentage float64) float64 {
	return ValueFromRelativePercentage(rg.Min, rg.Max, percentage)
}

// Contains reports whether v lies within the range.
func (rg Range) Contains(v float64) bool {
	return v >= rg.Min && v <= rg.Max
}

// Position is the inverse of At. A degenerate range reports 0.
func (rg Range) Position(v float64) float64 {
	if rg.Max <= rg.Min {
		return 0
	}
	return (v - rg.Min) / (rg.Max - rg.Min) * 100
}
