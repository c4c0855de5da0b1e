// Package painter fills a pixel buffer with randomly placed points whose
// colour and density are decided by region sets.
//
// Each frame evaluates a fixed number of random samples. The buffer is cut
// into horizontal bands; every band draws its own samples from a random
// stream seeded by (region seed, frame, band) and writes only its own rows,
// so bands are painted in parallel without locks and the image depends only
// on the parameters, never on scheduling or worker count.
package painter

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"
	"sync/atomic"

	"github.com/gogpu/regions"
	"github.com/gogpu/regions/internal/canvas"
	"github.com/gogpu/regions/internal/parallel"
	"github.com/gogpu/regions/internal/sketch"
)

// ErrInvalidSize is returned for buffers without pixels.
var ErrInvalidSize = errors.New("painter: buffer must be at least 1x1")

// Paint rule constants, relative to the buffer size sqrt(width*height)
// where a length is involved.
const (
	frameFraction     = 0.03
	noiseScale        = 5
	noiseBandsSize    = 0.05
	noiseBandsWidth   = 0.042
	dotsSeparation    = 1.0 / 100
	dotsRadius        = 1.0 / 300
	stripesSeparation = 1.0 / 150
	stripesWidth      = 1.0 / 600
	noiseDistGain     = 1.4
	backgroundBias    = 0.2
	regionAngleScale  = 1234
	regionNoiseOffset = 1234
)

// Painter paints one sketch into a Pixmap.
//
// Painter is not safe for concurrent use. Its methods must be called from
// one goroutine; the parallelism is internal to PaintFrame.
type Painter struct {
	params  sketch.Params
	opts    options
	regions sketch.Regions
	noise   regions.Noise
	colors  []color.RGBA
	pix     *canvas.Pixmap
	pool    *parallel.WorkerPool
	bands   []parallel.Band

	density float64
	frame   int
	points  int64
	painted int64
	done    bool
}

// New builds the region sets for params and returns a painter over a
// width x height buffer cleared to the palette background.
func New(params sketch.Params, width, height int, opts ...Option) (*Painter, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if len(params.Palette.Colors) == 0 {
		return nil, fmt.Errorf("painter: palette %q has no colors", params.Palette.Name)
	}

	p := &Painter{
		params: params,
		opts:   o,
		noise:  regions.NewNoise(int64(params.RegionSeed)),
		colors: params.Palette.Colors,
		pool:   parallel.NewWorkerPool(o.workers),
	}
	if err := p.resize(width, height); err != nil {
		p.pool.Close()
		return nil, err
	}
	p.density = p.initialDensity()
	return p, nil
}

// initialDensity is the configured density, or the seed's when none is set.
func (p *Painter) initialDensity() float64 {
	if p.opts.density > 0 {
		return p.opts.density
	}
	return p.params.InitialDensity()
}

// Close stops the painter's workers.
func (p *Painter) Close() {
	p.pool.Close()
}

func (p *Painter) resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	rs, err := sketch.Build(p.params, width, height)
	if err != nil {
		return fmt.Errorf("painter: build regions: %w", err)
	}
	p.regions = rs
	p.pix = canvas.NewPixmap(width, height)
	p.bands = parallel.Split(height, p.opts.bands)
	p.Reset()
	return nil
}

// Resize rebuilds the region sets for a new buffer size from the same seed
// and restarts painting at the initial density. A density set with
// WithDensity is kept.
func (p *Painter) Resize(width, height int) error {
	if err := p.resize(width, height); err != nil {
		return err
	}
	p.density = p.initialDensity()
	regions.Logger().Debug("painter: resized", "width", width, "height", height)
	return nil
}

// Reset clears the buffer to the background colour and restarts painting.
// The density target is kept.
func (p *Painter) Reset() {
	p.pix.Clear(p.params.Palette.Background)
	p.frame = 0
	p.points = 0
	p.painted = 0
	p.done = false
}

// SetFrame switches the margin on or off and restarts painting at the
// initial density.
func (p *Painter) SetFrame(on bool) {
	p.opts.frame = on
	p.density = p.initialDensity()
	p.Reset()
}

// Frame reports whether the margin is enabled.
func (p *Painter) Frame() bool {
	return p.opts.frame
}

// AddDensity raises the density target so painting continues on top of
// the current buffer.
func (p *Painter) AddDensity(d float64) {
	p.density = max(p.density+d, 0)
	p.done = p.finished()
}

// Done reports whether the sample target has been reached.
func (p *Painter) Done() bool {
	return p.done
}

func (p *Painter) finished() bool {
	return float64(p.points) >= p.density*float64(p.pix.Pixels())
}

// Pixmap returns the buffer being painted. It is only safe to read between
// PaintFrame calls.
func (p *Painter) Pixmap() *canvas.Pixmap {
	return p.pix
}

// Params returns the parameters the painter was built with.
func (p *Painter) Params() sketch.Params {
	return p.params
}

// Regions returns the main and background region sets.
func (p *Painter) Regions() sketch.Regions {
	return p.regions
}

// Run paints frames until the target density is reached or ctx is done.
// onFrame, if not nil, is called after every frame.
func (p *Painter) Run(ctx context.Context, onFrame func(Stats)) error {
	for !p.Done() {
		if err := p.PaintFrame(ctx); err != nil {
			return err
		}
		if onFrame != nil {
			onFrame(p.Stats())
		}
	}
	return nil
}

// PaintFrame evaluates one frame of samples. It is a no-op once Done.
func (p *Painter) PaintFrame(ctx context.Context) error {
	if p.done {
		return nil
	}

	shares := parallel.Share(p.bands, p.opts.pointsPerFrame)
	r := p.rules()
	var painted atomic.Int64

	tasks := make([]func(), len(p.bands))
	for i, band := range p.bands {
		rng := bandRand(p.params.RegionSeed, p.frame, band.Index)
		n := shares[i]
		tasks[i] = func() {
			painted.Add(int64(p.paintBand(r, band, n, rng)))
		}
	}
	if err := p.pool.ExecuteAll(ctx, tasks); err != nil {
		return fmt.Errorf("painter: frame %d: %w", p.frame, err)
	}

	p.frame++
	p.points += int64(p.opts.pointsPerFrame)
	p.painted += painted.Load()
	regions.Logger().Debug("painter: frame painted",
		"frame", p.frame, "points", p.points, "painted", p.painted)

	if p.finished() {
		p.done = true
		regions.Logger().Info("painter: finished",
			"frames", p.frame, "points", p.points, "painted", p.painted)
	}
	return nil
}

// bandRand returns the random stream for one band of one frame.
func bandRand(seed uint64, frame, band int) *rand.Rand {
	return rand.New(rand.NewPCG(seed, uint64(frame)<<16|uint64(band)))
}

// rules holds the per-frame constants of the paint rule.
type rules struct {
	width, height  float64
	xStart, xEnd   float64
	yStart, yEnd   float64
	res            float64
	emptyArea      float64
	dotsSep        float64
	dotsRadiusSq   float64
	stripesSep     float64
	stripesWidth   float64
	useBackground  bool
	noiseDist      bool
	noisyRegions   bool
	dottedRegions  bool
	stripedRegions bool
}

func (p *Painter) rules() rules {
	w, h := float64(p.pix.Width()), float64(p.pix.Height())
	size := math.Sqrt(w * h)
	margin := 0.0
	if p.opts.frame {
		margin = frameFraction * size
	}
	return rules{
		width:          w,
		height:         h,
		xStart:         margin,
		xEnd:           w - margin,
		yStart:         margin,
		yEnd:           h - margin,
		res:            noiseScale / size,
		emptyArea:      p.opts.emptyArea,
		dotsSep:        dotsSeparation * size,
		dotsRadiusSq:   math.Pow(dotsRadius*size, 2),
		stripesSep:     stripesSeparation * size,
		stripesWidth:   stripesWidth * size,
		useBackground:  p.params.BackgroundRegions,
		noiseDist:      p.params.NoiseDistribution,
		noisyRegions:   p.params.NoisyRegions,
		dottedRegions:  p.params.DottedRegions(),
		stripedRegions: p.params.StripedRegions(),
	}
}

// paintBand evaluates n samples inside band and returns how many were
// painted. Only rows of band are written.
func (p *Painter) paintBand(r rules, band parallel.Band, n int, rng *rand.Rand) int {
	painted := 0
	y0, rows := float64(band.Y0), float64(band.Rows())
	for range n {
		x := rng.Float64() * r.width
		y := y0 + rng.Float64()*rows
		if !p.shouldPaint(r, rng, x, y) {
			continue
		}
		p.pix.SetPixel(int(x), int(y), regions.RandomColor(p.regions.Main, x, y, p.colors))
		painted++
	}
	return painted
}

// shouldPaint applies the paint rule to the sample at (x, y). Random draws
// happen in a fixed order and only when their test is reached.
func (p *Painter) shouldPaint(r rules, rng *rand.Rand, x, y float64) bool {
	main := p.regions.Main
	rn := regions.RandomNumber(main, x, y, 0)

	if rng.Float64() <= r.emptyArea+rn {
		return false
	}
	if r.useBackground && rng.Float64() <= regions.RandomNumber(p.regions.Background, x, y, 0)-backgroundBias {
		return false
	}
	if r.noiseDist && rng.Float64() >= noiseDistGain*regions.RandomNoise(main, p.noise, x, y, r.res, r.res) {
		return false
	}
	if x <= r.xStart || x >= r.xEnd || y <= r.yStart || y >= r.yEnd {
		return false
	}

	switch {
	case r.noisyRegions && rn > 0.4 && rn < 0.5:
		off := regionNoiseOffset * rn
		v := p.noise.Eval2(off+x*r.res, off+y*r.res)
		return math.Mod(v, noiseBandsSize) < noiseBandsWidth
	case r.dottedRegions && rn > 0.2 && rn < 0.3:
		sin, cos := math.Sincos(rn * regionAngleScale)
		xr := x*cos - y*sin
		yr := x*sin + y*cos
		xm := math.Mod(xr, r.dotsSep) - r.dotsSep/2
		ym := math.Mod(yr, r.dotsSep) - r.dotsSep/2
		return xm*xm+ym*ym > r.dotsRadiusSq
	case r.stripedRegions && rn > 0.2 && rn < 0.4:
		sin, cos := math.Sincos(rn * regionAngleScale)
		return math.Mod(x*cos-y*sin, r.stripesSep) < r.stripesWidth
	default:
		return true
	}
}
