// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
	"strconv"
)

// BuilderOption adjusts the settings shared by every constructor of one
// BuildGraph call.
type BuilderOption func(*builderConfig)

// Namer turns a zero-based vertex index into a vertex ID. The same index
// must always yield the same ID.
type Namer func(idx int) string

// WeightFn draws the weight of the next edge. rng is nil unless WithSeed or
// WithRand was given; a WeightFn must stay usable in that case.
type WeightFn func(rng *rand.Rand) float64

// UnitWeight is the weight of every edge when no WeightFn is configured.
const UnitWeight = 1.0

// WithIDScheme selects how constructors name vertices. Grid ignores it.
func WithIDScheme(fn Namer) BuilderOption {
	if fn == nil {
		panic("builder: nil Namer")
	}
	return func(c *builderConfig) { c.namer = fn }
}

// WithRand hands the builder a caller-owned RNG.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: nil *rand.Rand")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed seeds a private RNG, making weights and random edges repeatable.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn sets the per-edge weight draw.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: nil WeightFn")
	}
	return func(c *builderConfig) { c.weight = fn }
}

// IndexNamer names vertices "0", "1", "2", ...
func IndexNamer(idx int) string { return strconv.Itoa(idx) }

// LetterNamer names vertices "A" ... "Z", "AA", "AB", ... the way road maps
// label junctions. Panics on a negative index.
func LetterNamer(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("builder: LetterNamer(%d)", idx))
	}
	if idx < 26 {
		return string(rune('A' + idx))
	}
	return LetterNamer(idx/26-1) + string(rune('A'+idx%26))
}

// PrefixNamer names vertices prefix+index, e.g. "city0", "city1".
func PrefixNamer(prefix string) Namer {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}

func unitWeight(*rand.Rand) float64 { return UnitWeight }

// ConstantWeight gives every edge weight w. Panics if w is negative.
func ConstantWeight(w float64) WeightFn {
	if w < 0 {
		panic(fmt.Sprintf("builder: ConstantWeight(%g): negative weight", w))
	}
	return func(*rand.Rand) float64 { return w }
}

// UniformWeight draws from [lo, hi). Without an RNG it returns lo.
// Panics unless 0 <= lo <= hi.
func UniformWeight(lo, hi float64) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("builder: UniformWeight(%g, %g): bad range", lo, hi))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil || lo == hi {
			return lo
		}
		return lo + rng.Float64()*(hi-lo)
	}
}

// IntWeight draws whole numbers from [lo, hi], so path sums stay exact.
// Without an RNG it returns lo. Panics unless 0 <= lo <= hi.
func IntWeight(lo, hi int) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("builder: IntWeight(%d, %d): bad range", lo, hi))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return float64(lo)
		}
		return float64(lo + rng.Intn(hi-lo+1))
	}
}
