// Package traits defines heritable animal traits and their inheritance.
package traits

import (
	"math"
	"math/rand"
)

// Traits is the fixed set of heritable numeric attributes.
// Every value is non-negative; inheritance preserves that invariant.
type Traits struct {
	Speed            float64
	Strength         float64
	Perception       float64
	Metabolism       float64
	ReproductiveUrge float64
	Lifespan         float64
}

// MixStrategy combines one trait from each parent into an offspring value.
type MixStrategy func(a, b, mutationFactor float64, rng *rand.Rand) float64

// MixWeighted blends the parents with a random weight and adds a mutation
// proportional to the larger parent value.
//
//	base     = a·w + b·(1−w),  w ∈ [0,1)
//	mutation = (2r−1)·mutationFactor·max(a,b),  r ∈ [0,1)
//
// The result is floored at zero. There is no upper clamp: offspring may
// exceed both parents, which is what lets traits evolve past ancestral
// maxima.
func MixWeighted(a, b, mutationFactor float64, rng *rand.Rand) float64 {
	w := rng.Float64()
	base := a*w + b*(1-w)

	mutation := (2*rng.Float64() - 1) * mutationFactor * math.Max(a, b)

	v := base + mutation
	if v < 0 {
		return 0
	}
	return v
}

// MixRange draws the offspring value uniformly from the parents' range and
// scales it by a multiplicative mutation in [0.8, 1.2]. The result never
// falls below the smaller parent value. The mutationFactor argument is
// ignored; the multiplicative band is fixed.
func MixRange(a, b, _ float64, rng *rand.Rand) float64 {
	lo := math.Min(a, b)
	hi := math.Max(a, b)

	v := lo + rng.Float64()*(hi-lo)
	v *= 0.8 + rng.Float64()*0.4

	if v < lo {
		return lo
	}
	return v
}

// Blend produces offspring traits from two parents using the given strategy.
func Blend(a, b Traits, mutationFactor float64, mix MixStrategy, rng *rand.Rand) Traits {
	return Traits{
		Speed:            mix(a.Speed, b.Speed, mutationFactor, rng),
		Strength:         mix(a.Strength, b.Strength, mutationFactor, rng),
		Perception:       mix(a.Perception, b.Perception, mutationFactor, rng),
		Metabolism:       mix(a.Metabolism, b.Metabolism, mutationFactor, rng),
		ReproductiveUrge: mix(a.ReproductiveUrge, b.ReproductiveUrge, mutationFactor, rng),
		Lifespan:         mix(a.Lifespan, b.Lifespan, mutationFactor, rng),
	}
}

// Jitter returns a copy of t with each trait scaled by an independent
// factor in [1−spread, 1+spread]. Used to vary founder populations.
func Jitter(t Traits, spread float64, rng *rand.Rand) Traits {
	f := func(v float64) float64 {
		s := v * (1 + (2*rng.Float64()-1)*spread)
		if s < 0 {
			return 0
		}
		return s
	}
	return Traits{
		Speed:            f(t.Speed),
		Strength:         f(t.Strength),
		Perception:       f(t.Perception),
		Metabolism:       f(t.Metabolism),
		ReproductiveUrge: f(t.ReproductiveUrge),
		Lifespan:         f(t.Lifespan),
	}
}

// Normalize maps v into [0,1] relative to [min,max].
// A degenerate range (min == max) yields the neutral midpoint 0.5.
func Normalize(v, min, max float64) float64 {
	if min == max {
		return 0.5
	}
	n := (v - min) / (max - min)
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}
