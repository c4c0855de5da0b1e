package regions

import (
	"math"
	"testing"
)

func buildComposite(t *testing.T) (*ShapeSet, *LineSet, *Composite) {
	t.Helper()
	extent := Extent{Width: 100, Height: 100}
	circles := NewShapeSet([]Shape{
		NewCircle(Pt(30, 30), 20),
		NewCircle(Pt(70, 70), 25),
	}, NewRand(21), extent)
	lines, err := NewLineSet([]Shape{NewLine(Pt(50, 50), 0.3)}, NewRand(22), extent)
	if err != nil {
		t.Fatalf("NewLineSet() = %v", err)
	}
	return circles, lines, NewComposite(extent, circles, lines)
}

func TestCompositeRegionIsSum(t *testing.T) {
	circles, lines, c := buildComposite(t)
	for _, p := range samplePoints(Pt(50, 50), 50, 3.7) {
		want := circles.Region(p.X, p.Y) + lines.Region(p.X, p.Y)
		if got := c.Region(p.X, p.Y); got != want {
			t.Fatalf("Region(%v) = %v, want %v", p, got, want)
		}
	}
}

func TestCompositeNumShapesAndChildren(t *testing.T) {
	_, _, c := buildComposite(t)
	if got := c.NumShapes(); got != 3 {
		t.Errorf("NumShapes() = %d, want 3", got)
	}
	if got := len(c.Children()); got != 2 {
		t.Errorf("len(Children()) = %d, want 2", got)
	}
}

func TestCompositeSkipsNil(t *testing.T) {
	circles, _, _ := buildComposite(t)
	c := NewComposite(Extent{Width: 100, Height: 100}, nil, circles, nil)
	if len(c.Children()) != 1 || c.NumShapes() != 2 {
		t.Errorf("children=%d shapes=%d, want 1 and 2", len(c.Children()), c.NumShapes())
	}
}

func TestCompositeIsInsideShape(t *testing.T) {
	extent := Extent{Width: 100, Height: 100}
	a := NewShapeSet([]Shape{NewCircle(Pt(20, 20), 10)}, NewRand(1), extent)
	b := NewShapeSet([]Shape{NewRectangle(Pt(80, 80), 10, 10, 0)}, NewRand(2), extent)
	c := NewComposite(extent, a, b)

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"first child", 20, 20, true},
		{"second child", 80, 80, true},
		{"neither", 50, 50, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.IsInsideShape(tt.x, tt.y); got != tt.want {
				t.Errorf("IsInsideShape(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}

	// A line set always covers the plane, and so does any composite holding one.
	_, _, withLines := buildComposite(t)
	if !withLines.IsInsideShape(-500, 900) {
		t.Error("composite with a line set should cover the plane")
	}
}

func TestCompositeApproximatePositionWeighted(t *testing.T) {
	extent := Extent{Width: 100, Height: 100}
	// Three circles all containing the probe point, one circle in b.
	a := NewShapeSet([]Shape{
		NewCircle(Pt(10, 50), 60),
		NewCircle(Pt(20, 50), 60),
		NewCircle(Pt(30, 50), 60),
	}, NewRand(1), extent)
	b := NewShapeSet([]Shape{NewCircle(Pt(60, 50), 60)}, NewRand(2), extent)
	c := NewComposite(extent, a, b)

	// a -> (20, 50) with weight 3, b -> (60, 50) with weight 1.
	got := c.ApproximatePosition(30, 50)
	want := Pt((20*3+60)/4.0, 50)
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Errorf("ApproximatePosition() = %v, want %v", got, want)
	}
}

func TestCompositeIgnoresEmptyChildInWeighting(t *testing.T) {
	extent := Extent{Width: 100, Height: 100}
	a := NewShapeSet([]Shape{NewCircle(Pt(40, 40), 10)}, NewRand(1), extent)
	empty := NewShapeSet(nil, NewRand(2), extent)
	c := NewComposite(extent, a, empty)

	if got := c.ApproximatePosition(40, 40); got != Pt(40, 40) {
		t.Errorf("ApproximatePosition() = %v, want (40, 40)", got)
	}
}

func TestEmptyComposite(t *testing.T) {
	c := NewComposite(Extent{Width: 60, Height: 20})
	if c.NumShapes() != 0 || c.Region(1, 1) != 0 || c.IsInsideShape(1, 1) {
		t.Error("empty composite should have no shapes and a zero signature")
	}
	if got := c.ApproximatePosition(1, 1); got != Pt(30, 10) {
		t.Errorf("ApproximatePosition() = %v, want (30, 10)", got)
	}
}

func TestNestedComposite(t *testing.T) {
	circles, lines, inner := buildComposite(t)
	outer := NewComposite(Extent{Width: 100, Height: 100}, inner)
	if outer.NumShapes() != inner.NumShapes() {
		t.Errorf("NumShapes() = %d, want %d", outer.NumShapes(), inner.NumShapes())
	}
	for _, p := range samplePoints(Pt(50, 50), 40, 9.1) {
		want := circles.Region(p.X, p.Y) + lines.Region(p.X, p.Y)
		if got := outer.Region(p.X, p.Y); got != want {
			t.Fatalf("nested Region(%v) = %v, want %v", p, got, want)
		}
	}
}
