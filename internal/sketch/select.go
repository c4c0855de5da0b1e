package sketch

import "github.com/gogpu/regions"

// Option is one weighted choice.
type Option[T any] struct {
	Weight float64
	Value  T
	Label  string
}

// SelectOption draws w uniformly in [0, total weight) and returns the first
// option whose cumulative weight exceeds w. options must not be empty.
func SelectOption[T any](rng regions.Rand, options []Option[T]) Option[T] {
	weights := make([]float64, len(options))
	for i, o := range options {
		weights[i] = o.Weight
	}
	return options[pickWeighted(rng, weights)]
}

// SplitAmount breaks amount into pieces of clamp(floor(r*remaining), lo, hi)
// and hands each piece to a weighted random bucket. The returned bucket
// totals always sum to amount: the last piece is cut short if the lower
// bound would overshoot.
func SplitAmount(rng regions.Rand, amount, lo, hi int, weights []float64) []int {
	var pieces []int
	for remaining := amount; remaining > 0; {
		v := int(rng.Float64() * float64(remaining))
		v = min(max(v, lo), hi, remaining)
		if v <= 0 {
			v = remaining
		}
		pieces = append(pieces, v)
		remaining -= v
	}

	totals := make([]int, len(weights))
	if len(weights) == 0 {
		return totals
	}
	for _, v := range pieces {
		totals[pickWeighted(rng, weights)] += v
	}
	return totals
}

// pickWeighted returns the index selected by one draw from rng. Rounding
// can leave the draw past the last cumulative sum; the last index wins then.
func pickWeighted(rng regions.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	w := rng.Float64() * total
	acc := 0.0
	for i, wi := range weights {
		acc += wi
		if w < acc {
			return i
		}
	}
	return len(weights) - 1
}
