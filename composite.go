package regions

// Composite merges region sets of different shape kinds into one region
// space. Signatures and shape counts add up; membership is the union.
type Composite struct {
	children []Regions
	n        int
	extent   Extent
}

// NewComposite combines children. Nil children are skipped.
func NewComposite(extent Extent, children ...Regions) *Composite {
	c := &Composite{extent: extent}
	for _, r := range children {
		if r == nil {
			continue
		}
		c.children = append(c.children, r)
		c.n += r.NumShapes()
	}
	Logger().Debug("regions: composite built",
		"children", len(c.children), "shapes", c.n)
	return c
}

// NumShapes returns the total number of shapes across children.
func (c *Composite) NumShapes() int { return c.n }

// Children returns the combined region sets in construction order.
func (c *Composite) Children() []Regions { return append([]Regions(nil), c.children...) }

// IsInsideShape reports whether any child contains (x, y).
func (c *Composite) IsInsideShape(x, y float64) bool {
	for _, r := range c.children {
		if r.IsInsideShape(x, y) {
			return true
		}
	}
	return false
}

// Region returns the sum of the children's signatures.
func (c *Composite) Region(x, y float64) float64 {
	region := 0.0
	for _, r := range c.children {
		region += r.Region(x, y)
	}
	return region
}

// ApproximatePosition averages the children's positions weighted by their
// shape counts. An empty composite returns the extent center.
func (c *Composite) ApproximatePosition(x, y float64) Point {
	if c.n == 0 {
		return c.extent.Center()
	}
	var sum Point
	for _, r := range c.children {
		if k := r.NumShapes(); k > 0 {
			sum = sum.Add(r.ApproximatePosition(x, y).Mul(float64(k)))
		}
	}
	return sum.Div(float64(c.n))
}
