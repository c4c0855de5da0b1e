package sketch

import "strconv"

// Feature is one labelled property of a painting.
type Feature struct {
	Name  string
	Value string
}

// AmountLabel describes a shape count in words.
func AmountLabel(n int) string {
	switch {
	case n <= 0:
		return "none"
	case n <= 5:
		return "few"
	case n <= 10:
		return "some"
	case n <= 15:
		return "many"
	case n <= 25:
		return "a lot"
	default:
		return "crazy"
	}
}

// Features summarises p in a fixed order.
func Features(p Params) []Feature {
	itoa := strconv.Itoa
	yes := strconv.FormatBool
	return []Feature{
		{"Color palette", p.Palette.Name},
		{"Proportion", p.Proportion.Label},
		{"Lines", AmountLabel(p.Shapes.Lines)},
		{"Circles", AmountLabel(p.Shapes.Circles)},
		{"Rings", AmountLabel(p.Shapes.Rings)},
		{"Rectangles", AmountLabel(p.Shapes.Rectangles)},
		{"Crosses", AmountLabel(p.Shapes.Crosses)},
		{"Polygons", AmountLabel(p.Shapes.Polygons)},
		{"GMs / GNs", AmountLabel(p.Shapes.Glyphs)},
		{"Line grids", itoa(p.Grids.Lines)},
		{"Circle grids", itoa(p.Grids.Circles)},
		{"Cross grids", itoa(p.Grids.Crosses)},
		{"Polygon grids", itoa(p.Grids.Polygons)},
		{"GM / GN grids", itoa(p.Grids.Glyphs)},
		{"Noise distribution", yes(p.NoiseDistribution)},
		{"Background regions", yes(p.BackgroundRegions)},
		{"With alien regions", yes(p.NoisyRegions)},
		{"With dotted regions", yes(p.DottedRegions())},
		{"With striped regions", yes(p.StripedRegions())},
	}
}
