package regions

import (
	"errors"
	"math"
)

// Errors returned by the shape constructors.
var (
	// ErrInvalidSides is returned for polygons with fewer than 3 sides.
	ErrInvalidSides = errors.New("regions: polygon needs at least 3 sides")

	// ErrInvalidSeparation is returned for grids with a non-positive separation.
	ErrInvalidSeparation = errors.New("regions: grid separation must be positive")

	// ErrInvalidGridBase is returned when a grid wraps a line or another grid.
	ErrInvalidGridBase = errors.New("regions: grid base must be a bounded, non-grid shape")
)

// ShapeKind identifies the geometry carried by a Shape.
type ShapeKind uint8

// Shape kinds.
const (
	KindLine ShapeKind = iota
	KindCircle
	KindRing
	KindRectangle
	KindCross
	KindPolygon
	KindGlyph
	KindGrid
)

var kindNames = [...]string{
	KindLine:      "line",
	KindCircle:    "circle",
	KindRing:      "ring",
	KindRectangle: "rectangle",
	KindCross:     "cross",
	KindPolygon:   "polygon",
	KindGlyph:     "glyph",
	KindGrid:      "grid",
}

// String returns the lower-case name of the kind.
func (k ShapeKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// rotation holds the precomputed cosine and sine of a shape angle.
type rotation struct {
	cos, sin float64
}

func newRotation(angle float64) rotation {
	return rotation{cos: math.Cos(angle), sin: math.Sin(angle)}
}

// local maps (x, y) into the frame centred at c and rotated by the inverse
// of the shape angle.
func (r rotation) local(c Point, x, y float64) (float64, float64) {
	dx := x - c.X
	dy := y - c.Y
	return r.cos*dx + r.sin*dy, -r.sin*dx + r.cos*dy
}

type lineParams struct {
	a, b float64 // y = a*x + b
}

type circleParams struct {
	radiusSq float64
}

type ringParams struct {
	innerSq, outerSq float64
}

type rectParams struct {
	halfW, halfH float64
}

type crossParams struct {
	halfSize, halfThickness float64
}

type polygonParams struct {
	verticesAngle float64
	apothem       float64 // radius * cos(verticesAngle/2)
}

type glyphParams struct {
	glyph     Glyph
	pixelSize float64
}

type gridParams struct {
	base         Shape
	separation   float64
	halfW, halfH float64
}

// Shape is an immutable membership predicate over the plane.
//
// A Shape is a closed tagged variant: Kind selects which parameter block is
// meaningful and IsInside dispatches on it. The zero Shape is a horizontal
// line through the origin.
type Shape struct {
	kind   ShapeKind
	center Point
	rot    rotation

	line    lineParams
	circle  circleParams
	ring    ringParams
	rect    rectParams
	cross   crossParams
	polygon polygonParams
	glyph   glyphParams
	grid    *gridParams
}

// NewLine returns the half-plane below the line through center with the
// given angle (in buffer coordinates y grows downwards, so "below" means
// y > a*x + b).
func NewLine(center Point, angle float64) Shape {
	a := math.Tan(angle)
	return Shape{
		kind:   KindLine,
		center: center,
		rot:    newRotation(angle),
		line:   lineParams{a: a, b: center.Y - a*center.X},
	}
}

// NewCircle returns an open disc.
func NewCircle(center Point, radius float64) Shape {
	return Shape{
		kind:   KindCircle,
		center: center,
		rot:    newRotation(0),
		circle: circleParams{radiusSq: radius * radius},
	}
}

// NewRing returns an open annulus. It is empty when outer <= inner.
func NewRing(center Point, inner, outer float64) Shape {
	return Shape{
		kind:   KindRing,
		center: center,
		rot:    newRotation(0),
		ring:   ringParams{innerSq: inner * inner, outerSq: outer * outer},
	}
}

// NewRectangle returns an open rectangle rotated by angle around its center.
func NewRectangle(center Point, width, height, angle float64) Shape {
	return Shape{
		kind:   KindRectangle,
		center: center,
		rot:    newRotation(angle),
		rect:   rectParams{halfW: width / 2, halfH: height / 2},
	}
}

// NewCross returns the union of two perpendicular size x thickness bars.
func NewCross(center Point, size, thickness, angle float64) Shape {
	return Shape{
		kind:   KindCross,
		center: center,
		rot:    newRotation(angle),
		cross:  crossParams{halfSize: size / 2, halfThickness: thickness / 2},
	}
}

// NewPolygon returns a regular polygon with the given circumradius. One
// vertex sits on the local x axis.
func NewPolygon(center Point, sides int, radius, angle float64) (Shape, error) {
	if sides < 3 {
		return Shape{}, ErrInvalidSides
	}
	va := 2 * math.Pi / float64(sides)
	return Shape{
		kind:   KindPolygon,
		center: center,
		rot:    newRotation(angle),
		polygon: polygonParams{
			verticesAngle: va,
			apothem:       radius * math.Cos(va/2),
		},
	}, nil
}

// NewGlyph returns a pixel-block glyph whose overall size spans
// glyphCells pixel cells.
func NewGlyph(center Point, g Glyph, size, angle float64) Shape {
	return Shape{
		kind:   KindGlyph,
		center: center,
		rot:    newRotation(angle),
		glyph:  glyphParams{glyph: g, pixelSize: size / glyphCells},
	}
}

// NewGrid tiles base periodically inside a width x height window rotated by
// angle around the base center.
func NewGrid(base Shape, separation, width, height, angle float64) (Shape, error) {
	if base.kind == KindLine || base.kind == KindGrid {
		return Shape{}, ErrInvalidGridBase
	}
	if !(separation > 0) {
		return Shape{}, ErrInvalidSeparation
	}
	return Shape{
		kind:   KindGrid,
		center: base.center,
		rot:    newRotation(angle),
		grid: &gridParams{
			base:       base,
			separation: separation,
			halfW:      width / 2,
			halfH:      height / 2,
		},
	}, nil
}

// Kind returns the shape kind.
func (s Shape) Kind() ShapeKind { return s.kind }

// Center returns the shape center.
func (s Shape) Center() Point { return s.center }

// IsInside reports whether (x, y) lies in the shape interior. Boundaries are
// excluded for every bounded kind.
func (s Shape) IsInside(x, y float64) bool {
	switch s.kind {
	case KindLine:
		return y > s.line.a*x+s.line.b
	case KindCircle:
		return Pt(x, y).Sub(s.center).LengthSquared() < s.circle.radiusSq
	case KindRing:
		d := Pt(x, y).Sub(s.center).LengthSquared()
		return d > s.ring.innerSq && d < s.ring.outerSq
	case KindRectangle:
		xr, yr := s.rot.local(s.center, x, y)
		return math.Abs(xr) < s.rect.halfW && math.Abs(yr) < s.rect.halfH
	case KindCross:
		xr, yr := s.rot.local(s.center, x, y)
		return s.cross.contains(math.Abs(xr), math.Abs(yr))
	case KindPolygon:
		xr, yr := s.rot.local(s.center, x, y)
		return s.polygon.contains(xr, yr)
	case KindGlyph:
		xr, yr := s.rot.local(s.center, x, y)
		return s.glyph.contains(xr, yr)
	case KindGrid:
		xr, yr := s.rot.local(s.center, x, y)
		return s.grid.contains(s.center, xr, yr)
	}
	return false
}

func (c crossParams) contains(ax, ay float64) bool {
	return (ax < c.halfSize && ay < c.halfThickness) ||
		(ax < c.halfThickness && ay < c.halfSize)
}

// contains tests the local point against the polygon's support function.
// With at least 3 sides the angle below stays within
// [-verticesAngle/2, verticesAngle/2) and its cosine never drops under 0.5.
func (p polygonParams) contains(xr, yr float64) bool {
	a := math.Abs(math.Mod(math.Atan2(yr, xr), p.verticesAngle))
	r := p.apothem / math.Cos(a-p.verticesAngle/2)
	return xr*xr+yr*yr < r*r
}

func (g glyphParams) contains(xr, yr float64) bool {
	half := g.pixelSize / 2
	for _, px := range g.glyph.pixels() {
		if math.Abs(xr-float64(px[0])*g.pixelSize) < half &&
			math.Abs(yr-float64(px[1])*g.pixelSize) < half {
			return true
		}
	}
	return false
}

// contains folds the local offset into one grid cell and re-tests the base
// shape at the folded position.
func (g *gridParams) contains(center Point, xr, yr float64) bool {
	if math.Abs(xr) > g.halfW || math.Abs(yr) > g.halfH {
		return false
	}
	half := g.separation / 2
	xm := floorMod(xr+half, g.separation) - half
	ym := floorMod(yr+half, g.separation) - half
	return g.base.IsInside(xm+center.X, ym+center.Y)
}
