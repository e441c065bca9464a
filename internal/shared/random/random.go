package random

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// Rand is a seedable source of uniform samples. Every generator in the
// module draws from a Rand so that a seed reproduces a whole body or system.
// A Rand is not safe for concurrent use.
type Rand struct {
	seed uint64
	r    *rand.Rand
}

// New returns a deterministic generator for the given seed.
func New(seed uint64) *Rand {
	// Non-cryptographic PRNG is intentional for reproducible generation.
	// #nosec G404
	return &Rand{
		seed: seed,
		r:    rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b"))),
	}
}

// NewUnseeded picks a fresh seed and returns a generator for it. The chosen
// seed is available through Seed so the result can be replayed.
func NewUnseeded() *Rand {
	var b [8]byte
	if _, err := cryptorand.Read(b[:]); err != nil {
		return New(rand.Uint64())
	}
	return New(binary.LittleEndian.Uint64(b[:]))
}

// FromSeed replays seed when it is set and otherwise picks a fresh one.
func FromSeed(seed *uint64) *Rand {
	if seed != nil {
		return New(*seed)
	}
	return NewUnseeded()
}

func seedWord(seed uint64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// Seed reports the seed this generator was built from.
func (r *Rand) Seed() uint64 {
	return r.seed
}

// Float64 returns a value in [0, 1).
func (r *Rand) Float64() float64 {
	return r.r.Float64()
}

// IntN returns a value in [0, n). It panics if n <= 0.
func (r *Rand) IntN(n int) int {
	return r.r.IntN(n)
}

// IntRange returns a value in [min, max], both inclusive.
func (r *Rand) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.r.IntN(max-min+1)
}

// Between samples uniformly from [min, max], both inclusive.
func (r *Rand) Between(min, max float64) float64 {
	if max <= min {
		return min
	}
	v := min + (max-min)*r.r.Float64()
	if v > max {
		return max
	}
	if v < min {
		return min
	}
	return v
}

// Chance reports true once in n draws on average.
func (r *Rand) Chance(n float64) bool {
	if n <= 1 {
		return true
	}
	return r.r.Float64() < 1/n
}

// RelativePercentage samples a number in [min, max] and returns how far it
// landed between min and max, as a percentage in [0, 100].
func (r *Rand) RelativePercentage(min, max float64) float64 {
	if max <= min {
		return 0
	}
	n := r.Between(min, max)
	return (n - min) / (max - min) * 100
}

// ValueFromRelativePercentage returns the value sitting at percentage of the
// way from min to max. Reusing one percentage over several ranges moves the
// resulting quantities together.
func ValueFromRelativePercentage(min, max, percentage float64) float64 {
	return min + (max-min)*(percentage/100)
}

// Pick returns a uniformly chosen element of items. It panics on an empty slice.
func Pick[T any](r *Rand, items []T) T {
	return items[r.IntN(len(items))]
}
