package generator

import (
	"math"
	"math/rand"
)

func choice(rng *rand.Rand, options []string) string {
	return options[rng.Intn(len(options))]
}

// weightedChoice draws one option proportionally to its weight.
func weightedChoice(rng *rand.Rand, options []string, weights []float64) string {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	r := rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return options[i]
		}
	}
	return options[len(options)-1]
}

// sample picks k distinct options, order randomized.
func sample(rng *rand.Rand, options []string, k int) []string {
	idx := rng.Perm(len(options))
	if k > len(options) {
		k = len(options)
	}
	out := make([]string, 0, k)
	for _, i := range idx[:k] {
		out = append(out, options[i])
	}
	return out
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func gauss(rng *rand.Rand, mean, stddev float64) float64 {
	return rng.NormFloat64()*stddev + mean
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
