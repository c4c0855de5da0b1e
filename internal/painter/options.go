package painter

// Option configures a Painter during creation.
//
// Example:
//
//	// Defaults: GOMAXPROCS workers, 5000 points per frame, frame on
//	p, err := painter.New(params, 1200, 900)
//
//	// Single-threaded, no frame, denser painting
//	p, err := painter.New(params, 1200, 900,
//		painter.WithWorkers(1),
//		painter.WithFrame(false),
//		painter.WithDensity(8),
//	)
type Option func(*options)

// options holds optional configuration for Painter creation.
type options struct {
	workers        int
	bands          int
	pointsPerFrame int
	frame          bool
	density        float64 // 0 means the params' initial density
	emptyArea      float64
}

// Defaults.
const (
	DefaultPointsPerFrame = 5000
	DefaultEmptyArea      = 0.2
	DefaultBands          = 32
)

func defaultOptions() options {
	return options{
		workers:        0, // GOMAXPROCS
		bands:          DefaultBands,
		pointsPerFrame: DefaultPointsPerFrame,
		frame:          true,
		emptyArea:      DefaultEmptyArea,
	}
}

// WithWorkers sets the number of painting goroutines. Zero or negative
// selects GOMAXPROCS. The painted image does not depend on this value.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithBands sets how many horizontal bands a frame is split into. Each band
// has its own random stream, so changing this changes the image.
func WithBands(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.bands = n
		}
	}
}

// WithPointsPerFrame sets how many samples one PaintFrame call evaluates.
func WithPointsPerFrame(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.pointsPerFrame = n
		}
	}
}

// WithFrame enables or disables the empty margin around the painting.
func WithFrame(on bool) Option {
	return func(o *options) {
		o.frame = on
	}
}

// WithDensity sets the target number of samples per buffer pixel.
// Non-positive values keep the seed's initial density.
func WithDensity(d float64) Option {
	return func(o *options) {
		if d > 0 {
			o.density = d
		}
	}
}

// WithEmptyArea sets the base probability of leaving a sample unpainted.
// Region random numbers are added on top, so some regions stay sparser than
// others.
func WithEmptyArea(a float64) Option {
	return func(o *options) {
		if a >= 0 {
			o.emptyArea = a
		}
	}
}
