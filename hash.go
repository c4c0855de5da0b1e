package regions

import "math"

// Hash maps any finite real number to a pseudo-uniform value in [0, 1).
//
// It is the fractional part of |sin(100v) * 10000|. The function is not
// cryptographically strong, but nearby inputs land far apart, which is what
// makes neighbouring region signatures pick visibly different outputs.
func Hash(v float64) float64 {
	return math.Mod(math.Abs(math.Sin(100*v)*10000), 1)
}

// floorMod returns n modulo m with the sign of m, so negative offsets wrap
// into [0, m) instead of (-m, 0].
func floorMod(n, m float64) float64 {
	return math.Mod(math.Mod(n, m)+m, m)
}
