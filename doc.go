// Package regions assigns a stable pseudo-random region identity to every
// point of the plane.
//
// # Overview
//
// A region set owns a collection of overlapping shapes. Which subset of
// those shapes contains a point determines the point's region signature, a
// real number that is hashed into reproducible outputs: a random number, a
// palette colour, or a per-region offset into coherent noise. The package
// powers a procedural point painter (see cmd/regionart), but it has no
// rendering dependencies of its own.
//
// # Quick Start
//
//	rng := regions.NewRand(42)
//	extent := regions.Extent{Width: 800, Height: 600}
//
//	circles := regions.NewShapeSet([]regions.Shape{
//		regions.NewCircle(regions.Pt(200, 200), 120),
//		regions.NewCircle(regions.Pt(320, 260), 90),
//	}, rng, extent)
//
//	c := regions.RandomColor(circles, 250, 240, palette)
//
// # Shapes
//
// Shape is a closed set of kinds: line (half-plane), circle, ring,
// rectangle, cross, regular polygon, pixel glyph, and grid (a base shape
// tiled periodically inside a bounded window). Every kind answers
// IsInside(x, y); rotated kinds first map the point into their local frame.
//
// # Region Sets
//
//   - ShapeSet: shapes of one kind, one (inside, outside) random pair each
//   - LineSet: lines, with a direction-based position approximation
//   - Composite: several sets merged into one region space
//
// All three implement Regions. The query helpers RandomNumber, RandomColor
// and RandomNoise take any Regions value.
//
// # Concurrency
//
// Shapes and region sets are immutable after construction. Queries touch no
// shared mutable state and may run from any number of goroutines. Only
// construction is order sensitive: random pairs are drawn in shape order, so
// the same seed always rebuilds the same sets.
package regions
