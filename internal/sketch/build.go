package sketch

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/gogpu/regions"
)

// Regions are the two region sets a painting uses.
type Regions struct {
	Main       *regions.Composite
	Background *regions.Composite
}

// Build creates the main and background region sets for a buffer of
// width x height pixels. Both are always built, in that order, from one
// random stream seeded with p.RegionSeed, so the main set does not depend on
// whether background regions are used.
func Build(p Params, width, height int) (Regions, error) {
	b := NewBuilder(p.RegionSeed, width, height, p.Palette.Dark)
	main, err := b.Main(p.Shapes, p.Grids)
	if err != nil {
		return Regions{}, err
	}
	bg, err := b.Background(p.Background)
	if err != nil {
		return Regions{}, err
	}
	regions.Logger().Debug("sketch: regions built",
		"width", width, "height", height,
		"main", main.NumShapes(), "background", bg.NumShapes())
	return Regions{Main: main, Background: bg}, nil
}

// Builder draws random shapes sized relative to a buffer.
//
// Builder is not safe for concurrent use: every shape consumes values from
// one shared random stream.
type Builder struct {
	rng    *rand.Rand
	extent regions.Extent
	size   float64 // sqrt(width * height)
	glyph  regions.Glyph
}

// NewBuilder returns a builder for a width x height buffer. Dark palettes
// use the GN glyph, light ones GM.
func NewBuilder(seed uint64, width, height int, dark bool) *Builder {
	w, h := float64(width), float64(height)
	b := &Builder{
		rng:    regions.NewRand(seed),
		extent: regions.Extent{Width: w, Height: h},
		size:   math.Sqrt(w * h),
		glyph:  regions.GlyphGM,
	}
	if dark {
		b.glyph = regions.GlyphGN
	}
	return b
}

// Main builds the main region set: one set per shape kind followed by one
// set per grid kind.
func (b *Builder) Main(c Counts, g GridCounts) (*regions.Composite, error) {
	lines, err := b.Lines(c.Lines)
	if err != nil {
		return nil, err
	}
	children := []regions.Regions{
		lines,
		b.set(c.Circles, b.circle),
		b.set(c.Rings, b.ring),
		b.set(c.Rectangles, b.rectangle),
		b.set(c.Crosses, b.cross),
		b.set(c.Polygons, b.polygon),
		b.set(c.Glyphs, b.glyphShape),
	}
	for _, grid := range []struct {
		n    int
		draw func() (regions.Shape, error)
	}{
		{g.Lines, b.lineGrid},
		{g.Circles, b.circleGrid},
		{g.Crosses, b.crossGrid},
		{g.Polygons, b.polygonGrid},
		{g.Glyphs, b.glyphGrid},
	} {
		set, err := b.setErr(grid.n, grid.draw)
		if err != nil {
			return nil, err
		}
		children = append(children, set)
	}
	return regions.NewComposite(b.extent, children...), nil
}

// Background builds the background region set from the six non-glyph
// kinds. c.Glyphs is ignored.
func (b *Builder) Background(c Counts) (*regions.Composite, error) {
	lines, err := b.Lines(c.Lines)
	if err != nil {
		return nil, err
	}
	return regions.NewComposite(b.extent,
		lines,
		b.set(c.Circles, b.circle),
		b.set(c.Rings, b.ring),
		b.set(c.Rectangles, b.rectangle),
		b.set(c.Crosses, b.cross),
		b.set(c.Polygons, b.polygon),
	), nil
}

// Lines builds a line set of n random lines.
func (b *Builder) Lines(n int) (*regions.LineSet, error) {
	shapes := make([]regions.Shape, n)
	for i := range shapes {
		shapes[i] = b.line()
	}
	return regions.NewLineSet(shapes, b.rng, b.extent)
}

// set draws n shapes and then their region values, matching the order in
// which shape parameters and region pairs consume the random stream.
func (b *Builder) set(n int, draw func() regions.Shape) *regions.ShapeSet {
	shapes := make([]regions.Shape, n)
	for i := range shapes {
		shapes[i] = draw()
	}
	return regions.NewShapeSet(shapes, b.rng, b.extent)
}

func (b *Builder) setErr(n int, draw func() (regions.Shape, error)) (*regions.ShapeSet, error) {
	shapes := make([]regions.Shape, n)
	for i := range shapes {
		s, err := draw()
		if err != nil {
			return nil, fmt.Errorf("sketch: build grid: %w", err)
		}
		shapes[i] = s
	}
	return regions.NewShapeSet(shapes, b.rng, b.extent), nil
}

// uniform returns a value in [lo, hi).
func (b *Builder) uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*b.rng.Float64()
}

func (b *Builder) point() regions.Point {
	x := b.uniform(0, b.extent.Width)
	y := b.uniform(0, b.extent.Height)
	return regions.Pt(x, y)
}

func (b *Builder) angle() float64 {
	return b.uniform(-math.Pi/2, math.Pi/2)
}

// oddCells returns sep times an odd cell count in [1, 2*n-1], so grids
// always have a cell centred on the base shape.
func (b *Builder) oddCells(sep, n float64) float64 {
	return sep * (1 + 2*math.Floor(b.uniform(0, n)))
}

func (b *Builder) line() regions.Shape {
	p := b.point()
	angle := b.angle()
	center, ok := LineCenter(p, angle, b.extent)
	if !ok {
		center = p
	}
	return regions.NewLine(center, angle)
}

func (b *Builder) circle() regions.Shape {
	c := b.point()
	return regions.NewCircle(c, b.uniform(0.03*b.size, 0.18*b.size))
}

func (b *Builder) ring() regions.Shape {
	c := b.point()
	r := b.uniform(0.03*b.size, 0.18*b.size)
	f := b.uniform(0.05, 0.4)
	return regions.NewRing(c, max(0, r*(1-f)), r*(1+f))
}

func (b *Builder) rectangle() regions.Shape {
	c := b.point()
	w := b.uniform(0.1*b.size, 0.4*b.size)
	h := b.uniform(0.5*w, 0.8*w)
	return regions.NewRectangle(c, w, h, b.angle())
}

func (b *Builder) cross() regions.Shape {
	c := b.point()
	size := b.uniform(0.05*b.size, 0.3*b.size)
	return regions.NewCross(c, size, 0.333*size, b.angle())
}

func (b *Builder) polygon() regions.Shape {
	c := b.point()
	sides := int(b.uniform(3, 8))
	r := b.uniform(0.03*b.size, 0.18*b.size)
	s, err := regions.NewPolygon(c, sides, r, b.angle())
	if err != nil {
		// sides is always in [3, 7].
		panic(err)
	}
	return s
}

func (b *Builder) glyphShape() regions.Shape {
	c := b.point()
	size := b.uniform(0.05*b.size, 0.2*b.size)
	return regions.NewGlyph(c, b.glyph, size, b.uniform(-math.Pi/4, math.Pi/4))
}

func (b *Builder) lineGrid() (regions.Shape, error) {
	c := b.point()
	w := b.uniform(0.2*b.size, b.size)
	h := 0.0025 * b.size
	base := regions.NewRectangle(c, w, h, 0)
	sep := b.uniform(3.5*h, 6*h)
	return regions.NewGrid(base, sep, w, b.oddCells(sep, 20), b.angle())
}

func (b *Builder) circleGrid() (regions.Shape, error) {
	c := b.point()
	r := 0.008 * b.size
	base := regions.NewCircle(c, r)
	sep := b.uniform(4*r, 7*r)
	return regions.NewGrid(base, sep, b.oddCells(sep, 10), b.oddCells(sep, 5), b.angle())
}

func (b *Builder) crossGrid() (regions.Shape, error) {
	c := b.point()
	size := b.uniform(0.015*b.size, 0.025*b.size)
	base := regions.NewCross(c, size, 0.333*size, b.angle())
	sep := b.uniform(2*size, 4*size)
	return regions.NewGrid(base, sep, b.oddCells(sep, 10), b.oddCells(sep, 5), b.angle())
}

func (b *Builder) polygonGrid() (regions.Shape, error) {
	c := b.point()
	sides := int(b.uniform(3, 6))
	r := b.uniform(0.01*b.size, 0.015*b.size)
	base, err := regions.NewPolygon(c, sides, r, b.angle())
	if err != nil {
		return regions.Shape{}, err
	}
	sep := b.uniform(4*r, 7*r)
	return regions.NewGrid(base, sep, b.oddCells(sep, 10), b.oddCells(sep, 5), b.angle())
}

func (b *Builder) glyphGrid() (regions.Shape, error) {
	c := b.point()
	size := b.uniform(0.025*b.size, 0.04*b.size)
	base := regions.NewGlyph(c, b.glyph, size, 0)
	sep := b.uniform(1.5*size, 2.5*size)
	return regions.NewGrid(base, sep, b.oddCells(sep, 10), b.oddCells(sep, 5), b.uniform(-math.Pi/4, math.Pi/4))
}

// LineCenter returns the midpoint of the chord that the line through p
// with the given angle cuts across the extent. ok is false when the line
// misses the extent.
func LineCenter(p regions.Point, angle float64, e regions.Extent) (center regions.Point, ok bool) {
	if math.Mod(math.Abs(angle), math.Pi) == 0 {
		if p.Y >= 0 && p.Y <= e.Height {
			return regions.Pt(e.Width/2, p.Y), true
		}
		return regions.Point{}, false
	}
	if math.Mod(math.Abs(angle)+math.Pi/2, math.Pi) == 0 {
		if p.X >= 0 && p.X <= e.Width {
			return regions.Pt(p.X, e.Height/2), true
		}
		return regions.Point{}, false
	}

	a := math.Tan(angle)
	k := p.Y - a*p.X
	cuts := make([]regions.Point, 0, 4)
	for _, x := range []float64{0, e.Width} {
		if y := a*x + k; y >= 0 && y <= e.Height {
			cuts = append(cuts, regions.Pt(x, y))
		}
	}
	for _, y := range []float64{0, e.Height} {
		if len(cuts) >= 2 {
			break
		}
		if x := (y - k) / a; x >= 0 && x <= e.Width {
			cuts = append(cuts, regions.Pt(x, y))
		}
	}
	if len(cuts) < 2 {
		return regions.Point{}, false
	}
	return cuts[0].Add(cuts[1]).Div(2), true
}
