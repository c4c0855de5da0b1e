package regions

import "math"

// Offsets mixed into the region signature before hashing, so that colour
// and noise selection are decorrelated from the plain region random number.
const (
	colorOffset = 123
	noiseOffset = 456

	// noiseSpread moves every region to its own patch of noise space.
	noiseSpread = 5000
)

// Regions is the query surface shared by every region set.
//
// All methods are pure functions of state fixed at construction, so a
// Regions value may be queried from any number of goroutines at once.
type Regions interface {
	// NumShapes returns the number of shapes owned directly or through
	// children.
	NumShapes() int

	// IsInsideShape reports whether (x, y) falls inside at least one shape.
	IsInsideShape(x, y float64) bool

	// Region returns the region signature at (x, y).
	Region(x, y float64) float64

	// ApproximatePosition returns a representative position for the region
	// containing (x, y).
	ApproximatePosition(x, y float64) Point
}

// RandomNumber returns the reproducible random number in [0, 1) of the
// region containing (x, y), shifted by offset before hashing.
func RandomNumber(r Regions, x, y, offset float64) float64 {
	return Hash(r.Region(x, y) + offset)
}

// RandomColor picks the colour assigned to the region containing (x, y).
// colors must not be empty; an empty slice is a caller bug and panics.
func RandomColor[C any](r Regions, x, y float64, colors []C) C {
	i := int(math.Floor(float64(len(colors)) * RandomNumber(r, x, y, colorOffset)))
	if i >= len(colors) {
		i = len(colors) - 1
	}
	return colors[i]
}

// RandomNoise samples noise at (x*xRes, y*yRes) displaced by a per-region
// offset, giving each region its own coherent texture.
func RandomNoise(r Regions, noise Noise, x, y, xRes, yRes float64) float64 {
	shift := noiseSpread * RandomNumber(r, x, y, noiseOffset)
	return noise.Eval2(x*xRes+shift, y*yRes+shift)
}
