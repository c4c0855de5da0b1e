// Package sketch derives everything a painting needs from a single seed:
// canvas proportion, palette, effect toggles, how many shapes of each kind
// to draw, and the region sets built from them.
package sketch

import (
	"math"

	"github.com/gogpu/regions"
	"github.com/gogpu/regions/internal/palette"
)

// Shape and grid totals.
const (
	reservedLines  = 4
	regionSeedSpan = 1234567
)

var (
	shapeWeights      = []float64{8, 4, 4, 2, 3, 3, 0.1}
	gridWeights       = []float64{10, 4, 4, 4, 1}
	backgroundWeights = []float64{1, 1, 1, 1, 1, 1}
)

// Proportions are the canvas width/height ratios a seed can pick.
var Proportions = []Option[float64]{
	{Weight: 2, Value: 1, Label: "square"},
	{Weight: 1, Value: math.Sqrt2, Label: "horizontal (A series)"},
	{Weight: 1, Value: (1 + math.Sqrt(5)) / 2, Label: "horizontal (golden ratio)"},
	{Weight: 1, Value: 16.0 / 9, Label: "horizontal (HD)"},
	{Weight: 1, Value: 1 / math.Sqrt2, Label: "vertical (A series)"},
	{Weight: 1, Value: 2 / (1 + math.Sqrt(5)), Label: "vertical (golden ratio)"},
	{Weight: 1, Value: 9.0 / 16, Label: "vertical (HD)"},
}

func boolOptions(trueWeight, falseWeight float64) []Option[bool] {
	return []Option[bool]{{Weight: trueWeight, Value: true}, {Weight: falseWeight, Value: false}}
}

// Counts is a number of shapes per kind. Glyphs is unused for background
// region sets.
type Counts struct {
	Lines      int
	Circles    int
	Rings      int
	Rectangles int
	Crosses    int
	Polygons   int
	Glyphs     int
}

// Total returns the sum of all counts.
func (c Counts) Total() int {
	return c.Lines + c.Circles + c.Rings + c.Rectangles + c.Crosses + c.Polygons + c.Glyphs
}

// GridCounts is a number of grids per base kind.
type GridCounts struct {
	Lines    int
	Circles  int
	Crosses  int
	Polygons int
	Glyphs   int
}

// Total returns the sum of all counts.
func (g GridCounts) Total() int {
	return g.Lines + g.Circles + g.Crosses + g.Polygons + g.Glyphs
}

// Params is the full description of a painting, derived from a seed.
type Params struct {
	Seed       uint64
	Proportion Option[float64]
	Palette    palette.Palette

	NoiseDistribution bool // thin points out with coherent noise
	BackgroundRegions bool // thin points out with a second region set
	NoisyRegions      bool // paint some regions as noise bands

	// UseDots and UseStripes are the drawn toggles. Dotted and striped
	// regions are only active when no grid of the clashing kind exists;
	// see DottedRegions and StripedRegions.
	UseDots    bool
	UseStripes bool

	Shapes     Counts
	Grids      GridCounts
	Background Counts

	// RegionSeed seeds the region-set builders, the noise source and the
	// painter.
	RegionSeed uint64
}

// NewParams derives the parameters for seed. The same seed always yields
// the same parameters.
func NewParams(seed uint64) Params {
	rng := regions.NewRand(seed)
	p := Params{Seed: seed}

	p.Proportion = SelectOption(rng, Proportions)
	p.Palette = SelectOption(rng, paletteOptions()).Value
	p.NoiseDistribution = SelectOption(rng, boolOptions(1, 1)).Value
	p.BackgroundRegions = SelectOption(rng, boolOptions(1, 20)).Value
	p.NoisyRegions = SelectOption(rng, boolOptions(1, 15)).Value
	p.UseDots = SelectOption(rng, boolOptions(1, 9)).Value
	p.UseStripes = SelectOption(rng, boolOptions(1, 2)).Value

	total := 30
	if rng.Float64() < 0.15 {
		total = 10
	}
	total += int(15 * rng.Float64())
	if rng.Float64() < 0.05 {
		total += 50
	}
	split := SplitAmount(rng, total-reservedLines, 1, 3, shapeWeights)
	p.Shapes = Counts{
		Lines:      reservedLines + split[0],
		Circles:    split[1],
		Rings:      split[2],
		Rectangles: split[3],
		Crosses:    split[4],
		Polygons:   split[5],
		Glyphs:     split[6],
	}

	grids := SplitAmount(rng, int(4*rng.Float64()), 1, 1, gridWeights)
	p.Grids = GridCounts{
		Lines:    grids[0],
		Circles:  grids[1],
		Crosses:  grids[2],
		Polygons: grids[3],
		Glyphs:   grids[4],
	}

	bg := SplitAmount(rng, 30+int(50*rng.Float64()), 10, 50, backgroundWeights)
	p.Background = Counts{
		Lines:      bg[0],
		Circles:    bg[1],
		Rings:      bg[2],
		Rectangles: bg[3],
		Crosses:    bg[4],
		Polygons:   bg[5],
	}

	p.RegionSeed = uint64(rng.Float64() * regionSeedSpan)
	return p
}

func paletteOptions() []Option[palette.Palette] {
	ps := palette.Builtin()
	opts := make([]Option[palette.Palette], len(ps))
	for i, p := range ps {
		opts[i] = Option[palette.Palette]{Weight: p.Weight, Value: p, Label: p.Name}
	}
	return opts
}

// DottedRegions reports whether dotted regions are painted. Dots would
// clash with circle grids.
func (p Params) DottedRegions() bool {
	return p.UseDots && p.Grids.Circles == 0
}

// StripedRegions reports whether striped regions are painted. Stripes
// would clash with line grids.
func (p Params) StripedRegions() bool {
	return p.UseStripes && p.Grids.Lines == 0
}

// InitialDensity is the number of samples per buffer pixel painted before
// the painting counts as finished.
func (p Params) InitialDensity() float64 {
	switch {
	case p.BackgroundRegions:
		return 5
	case p.NoiseDistribution:
		return 4
	default:
		return 3.5
	}
}

// BufferSize returns the buffer dimensions for a nominal size and a
// width/height proportion: the buffer holds about size*size pixels.
func BufferSize(size int, proportion float64) (width, height int) {
	if size <= 0 || proportion <= 0 {
		return 0, 0
	}
	width = int(math.Round(float64(size) * math.Sqrt(proportion)))
	height = int(math.Round(float64(width) / proportion))
	return max(width, 1), max(height, 1)
}
