package regions

import "errors"

// ErrNotLine is returned by NewLineSet when it is given a non-line shape.
var ErrNotLine = errors.New("regions: line set accepts only line shapes")

// ShapeSet is the region set defined by a group of shapes.
//
// At construction every shape receives a fixed (inside, outside) pair of
// random numbers. The region signature at a point is the sum, over all
// shapes, of the inside value for shapes containing the point and the
// outside value for the rest, so crossing one shape's boundary always moves
// the signature by that shape's own delta.
type ShapeSet struct {
	shapes []Shape
	values [][2]float64
	extent Extent
}

// NewShapeSet builds a region set over shapes. Two values per shape are drawn
// from rng in shape order, inside value first.
func NewShapeSet(shapes []Shape, rng Rand, extent Extent) *ShapeSet {
	s := newShapeSet(shapes, rng, extent)
	return &s
}

func newShapeSet(shapes []Shape, rng Rand, extent Extent) ShapeSet {
	s := ShapeSet{
		shapes: append([]Shape(nil), shapes...),
		values: make([][2]float64, len(shapes)),
		extent: extent,
	}
	for i := range s.values {
		s.values[i][0] = rng.Float64()
		s.values[i][1] = rng.Float64()
	}
	if len(shapes) > 0 {
		Logger().Debug("regions: shape set built",
			"kind", shapes[0].Kind(), "shapes", len(shapes))
	}
	return s
}

// NumShapes returns the number of shapes in the set.
func (s *ShapeSet) NumShapes() int { return len(s.shapes) }

// Shapes returns a copy of the shapes in construction order.
func (s *ShapeSet) Shapes() []Shape { return append([]Shape(nil), s.shapes...) }

// IsInsideShape reports whether any shape contains (x, y).
func (s *ShapeSet) IsInsideShape(x, y float64) bool {
	for i := range s.shapes {
		if s.shapes[i].IsInside(x, y) {
			return true
		}
	}
	return false
}

// Region returns the region signature at (x, y), or 0 for an empty set.
func (s *ShapeSet) Region(x, y float64) float64 {
	region := 0.0
	for i := range s.shapes {
		if s.shapes[i].IsInside(x, y) {
			region += s.values[i][0]
		} else {
			region += s.values[i][1]
		}
	}
	return region
}

// ApproximatePosition returns the mean center of the shapes containing
// (x, y), or the extent center when none does.
func (s *ShapeSet) ApproximatePosition(x, y float64) Point {
	var sum Point
	n := 0
	for i := range s.shapes {
		if s.shapes[i].IsInside(x, y) {
			sum = sum.Add(s.shapes[i].center)
			n++
		}
	}
	if n == 0 {
		return s.extent.Center()
	}
	return sum.Div(float64(n))
}

// LineSet is a ShapeSet made of lines. Half-planes partition the space
// without bounding it, so every point counts as inside and positions are
// approximated from the side of each line the point falls on.
type LineSet struct {
	ShapeSet
}

// NewLineSet builds a region set over line shapes.
func NewLineSet(lines []Shape, rng Rand, extent Extent) (*LineSet, error) {
	for _, l := range lines {
		if l.kind != KindLine {
			return nil, ErrNotLine
		}
	}
	return &LineSet{ShapeSet: newShapeSet(lines, rng, extent)}, nil
}

// IsInsideShape reports whether the set has any line.
func (s *LineSet) IsInsideShape(x, y float64) bool {
	return len(s.shapes) > 0
}

// ApproximatePosition starts at the extent center and, for every line,
// steps across it towards the side containing (x, y).
func (s *LineSet) ApproximatePosition(x, y float64) Point {
	pos := s.extent.Center()
	n := len(s.shapes)
	if n == 0 {
		return pos
	}
	xShift := s.extent.Width / float64(n)
	yShift := s.extent.Height / float64(n)
	for i := range s.shapes {
		step := Pt(-xShift*s.shapes[i].rot.sin, yShift*s.shapes[i].rot.cos)
		if s.shapes[i].IsInside(x, y) {
			pos = pos.Add(step)
		} else {
			pos = pos.Sub(step)
		}
	}
	return pos
}
