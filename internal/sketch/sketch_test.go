package sketch

import (
	"math"
	"testing"

	"github.com/gogpu/regions"
)

// seqRand replays a fixed sequence of values.
type seqRand struct {
	values []float64
	i      int
}

func (r *seqRand) Float64() float64 {
	v := r.values[r.i%len(r.values)]
	r.i++
	return v
}

func TestSelectOption(t *testing.T) {
	options := []Option[string]{
		{Weight: 2, Value: "a"},
		{Weight: 1, Value: "b"},
		{Weight: 1, Value: "c"},
	}
	tests := []struct {
		r    float64
		want string
	}{
		{0, "a"},
		{0.49, "a"},
		{0.5, "b"},
		{0.74, "b"},
		{0.75, "c"},
		{0.999, "c"},
	}
	for _, tt := range tests {
		got := SelectOption(&seqRand{values: []float64{tt.r}}, options)
		if got.Value != tt.want {
			t.Errorf("SelectOption(r=%v) = %q, want %q", tt.r, got.Value, tt.want)
		}
	}
}

func TestSelectOptionSkipsZeroWeight(t *testing.T) {
	options := []Option[int]{{Weight: 0, Value: 1}, {Weight: 1, Value: 2}}
	if got := SelectOption(&seqRand{values: []float64{0}}, options); got.Value != 2 {
		t.Errorf("SelectOption() = %d, want 2", got.Value)
	}
}

func TestSplitAmountSequence(t *testing.T) {
	// Pieces: floor(0.9*5)=4 -> 3, floor(0.1*2)=0 -> 1, floor(0.5*1)=0 -> 1.
	// Buckets: 0.4 -> 0, 1.4 -> 1, 0.6 -> 0.
	rng := &seqRand{values: []float64{0.9, 0.1, 0.5, 0.2, 0.7, 0.3}}
	got := SplitAmount(rng, 5, 1, 3, []float64{1, 1})
	if got[0] != 4 || got[1] != 1 {
		t.Errorf("SplitAmount() = %v, want [4 1]", got)
	}
}

func TestSplitAmountSums(t *testing.T) {
	tests := []struct {
		name           string
		amount, lo, hi int
		weights        []float64
	}{
		{"shapes", 40, 1, 3, shapeWeights},
		{"grids", 3, 1, 1, gridWeights},
		{"background", 57, 10, 50, backgroundWeights},
		{"lower bound overshoots", 5, 10, 50, backgroundWeights},
		{"zero", 0, 1, 3, shapeWeights},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := range uint64(50) {
				got := SplitAmount(regions.NewRand(seed), tt.amount, tt.lo, tt.hi, tt.weights)
				if len(got) != len(tt.weights) {
					t.Fatalf("len = %d, want %d", len(got), len(tt.weights))
				}
				sum := 0
				for _, v := range got {
					if v < 0 {
						t.Fatalf("negative bucket in %v", got)
					}
					sum += v
				}
				if sum != tt.amount {
					t.Fatalf("seed %d: %v sums to %d, want %d", seed, got, sum, tt.amount)
				}
			}
		})
	}
}

func TestNewParamsDeterministic(t *testing.T) {
	a, b := NewParams(1234), NewParams(1234)
	if a.Proportion.Label != b.Proportion.Label || a.Palette.Name != b.Palette.Name ||
		a.Shapes != b.Shapes || a.Grids != b.Grids || a.Background != b.Background ||
		a.RegionSeed != b.RegionSeed {
		t.Errorf("NewParams(1234) not deterministic:\n%+v\n%+v", a, b)
	}
}

func TestNewParamsRanges(t *testing.T) {
	palettes := map[string]bool{}
	for seed := range uint64(300) {
		p := NewParams(seed)
		palettes[p.Palette.Name] = true

		if p.Shapes.Lines < reservedLines {
			t.Fatalf("seed %d: %d lines, want at least %d", seed, p.Shapes.Lines, reservedLines)
		}
		if n := p.Shapes.Total(); n < 10 || n > 30+14+50 {
			t.Fatalf("seed %d: %d shapes out of range", seed, n)
		}
		if n := p.Grids.Total(); n > 3 {
			t.Fatalf("seed %d: %d grids, want at most 3", seed, n)
		}
		if n := p.Background.Total(); n < 30 || n > 79 {
			t.Fatalf("seed %d: %d background shapes out of range", seed, n)
		}
		if p.Background.Glyphs != 0 {
			t.Fatalf("seed %d: background has glyphs", seed)
		}
		if p.RegionSeed >= regionSeedSpan {
			t.Fatalf("seed %d: region seed %d out of range", seed, p.RegionSeed)
		}
		if p.Proportion.Value <= 0 || len(p.Palette.Colors) == 0 {
			t.Fatalf("seed %d: bad proportion or palette", seed)
		}
	}
	if len(palettes) < 10 {
		t.Errorf("300 seeds picked only %d palettes", len(palettes))
	}
}

func TestEffectToggles(t *testing.T) {
	p := Params{UseDots: true, UseStripes: true}
	if !p.DottedRegions() || !p.StripedRegions() {
		t.Error("toggles should be active without grids")
	}
	p.Grids.Circles = 1
	if p.DottedRegions() {
		t.Error("circle grids must disable dotted regions")
	}
	p.Grids.Lines = 1
	if p.StripedRegions() {
		t.Error("line grids must disable striped regions")
	}
}

func TestInitialDensity(t *testing.T) {
	tests := []struct {
		p    Params
		want float64
	}{
		{Params{BackgroundRegions: true, NoiseDistribution: true}, 5},
		{Params{NoiseDistribution: true}, 4},
		{Params{}, 3.5},
	}
	for _, tt := range tests {
		if got := tt.p.InitialDensity(); got != tt.want {
			t.Errorf("InitialDensity(%+v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestBufferSize(t *testing.T) {
	tests := []struct {
		size       int
		proportion float64
		w, h       int
	}{
		{1500, 1, 1500, 1500},
		{1000, 16.0 / 9, 1333, 750},
		{1000, 9.0 / 16, 750, 1333},
		{1000, math.Sqrt2, 1189, 841},
		{0, 1, 0, 0},
		{100, 0, 0, 0},
	}
	for _, tt := range tests {
		w, h := BufferSize(tt.size, tt.proportion)
		if w != tt.w || h != tt.h {
			t.Errorf("BufferSize(%d, %v) = %dx%d, want %dx%d", tt.size, tt.proportion, w, h, tt.w, tt.h)
		}
	}
}

func TestLineCenter(t *testing.T) {
	e := regions.Extent{Width: 200, Height: 100}
	tests := []struct {
		name  string
		p     regions.Point
		angle float64
		want  regions.Point
		ok    bool
	}{
		{"horizontal", regions.Pt(7, 50), 0, regions.Pt(100, 50), true},
		{"horizontal outside", regions.Pt(7, 150), 0, regions.Point{}, false},
		{"vertical", regions.Pt(30, 12), -math.Pi / 2, regions.Pt(30, 50), true},
		{"vertical outside", regions.Pt(-30, 12), -math.Pi / 2, regions.Point{}, false},
		{"diagonal", regions.Pt(100, 50), math.Pi / 4, regions.Pt(100, 50), true},
		{"diagonal offset", regions.Pt(0, 20), math.Pi / 4, regions.Pt(40, 60), true},
		{"miss", regions.Pt(1000, 1000), 0.1, regions.Point{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LineCenter(tt.p, tt.angle, e)
			if ok != tt.ok {
				t.Fatalf("LineCenter() ok = %v, want %v", ok, tt.ok)
			}
			if ok && got.Distance(tt.want) > 1e-9 {
				t.Errorf("LineCenter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	p := NewParams(77)
	w, h := BufferSize(300, p.Proportion.Value)

	a, err := Build(p, w, h)
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}
	if got, want := a.Main.NumShapes(), p.Shapes.Total()+p.Grids.Total(); got != want {
		t.Errorf("main has %d shapes, want %d", got, want)
	}
	if got, want := a.Background.NumShapes(), p.Background.Total(); got != want {
		t.Errorf("background has %d shapes, want %d", got, want)
	}
	if got := len(a.Main.Children()); got != 12 {
		t.Errorf("main has %d children, want 12", got)
	}
	if got := len(a.Background.Children()); got != 6 {
		t.Errorf("background has %d children, want 6", got)
	}

	b, err := Build(p, w, h)
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}
	for y := 0.5; y < float64(h); y += 17 {
		for x := 0.5; x < float64(w); x += 13 {
			if a.Main.Region(x, y) != b.Main.Region(x, y) {
				t.Fatalf("main region differs at (%v, %v)", x, y)
			}
			if a.Background.Region(x, y) != b.Background.Region(x, y) {
				t.Fatalf("background region differs at (%v, %v)", x, y)
			}
		}
	}
}

func TestBuildAllGridKinds(t *testing.T) {
	b := NewBuilder(5, 400, 300, false)
	main, err := b.Main(Counts{Lines: 4}, GridCounts{Lines: 1, Circles: 1, Crosses: 1, Polygons: 1, Glyphs: 1})
	if err != nil {
		t.Fatalf("Main() = %v", err)
	}
	if main.NumShapes() != 9 {
		t.Errorf("NumShapes() = %d, want 9", main.NumShapes())
	}
}

func TestBuilderGlyph(t *testing.T) {
	if g := NewBuilder(1, 10, 10, false).glyph; g != regions.GlyphGM {
		t.Errorf("light builder glyph = %v, want GM", g)
	}
	if g := NewBuilder(1, 10, 10, true).glyph; g != regions.GlyphGN {
		t.Errorf("dark builder glyph = %v, want GN", g)
	}
}

func TestAmountLabel(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "none"}, {1, "few"}, {5, "few"}, {6, "some"}, {10, "some"},
		{11, "many"}, {15, "many"}, {16, "a lot"}, {25, "a lot"}, {26, "crazy"},
	}
	for _, tt := range tests {
		if got := AmountLabel(tt.n); got != tt.want {
			t.Errorf("AmountLabel(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFeatures(t *testing.T) {
	p := NewParams(3)
	fs := Features(p)
	if len(fs) != 19 {
		t.Fatalf("len(Features) = %d, want 19", len(fs))
	}
	if fs[0].Name != "Color palette" || fs[0].Value != p.Palette.Name {
		t.Errorf("first feature = %+v", fs[0])
	}
	if fs[2].Value != AmountLabel(p.Shapes.Lines) {
		t.Errorf("Lines = %q, want %q", fs[2].Value, AmountLabel(p.Shapes.Lines))
	}
}
