package painter

import (
	"image"

	"github.com/gogpu/regions/internal/canvas"
)

// ImageOptions controls how the painted buffer is turned into an output
// image.
type ImageOptions struct {
	// Width and Height of the output. Zero keeps the buffer size.
	Width, Height int

	// Grain is the amount of film grain mixed in, in [0, 1].
	Grain float64

	// Info draws the statistics panel over the image.
	Info bool

	// Paused is reported on the statistics panel.
	Paused bool
}

// Image renders the current buffer as a standalone image: scaled, grained
// and optionally annotated.
func (p *Painter) Image(o ImageOptions) *image.RGBA {
	w, h := o.Width, o.Height
	if w <= 0 || h <= 0 {
		w, h = p.pix.Width(), p.pix.Height()
	}
	img := canvas.Present(p.pix, w, h)
	img = canvas.Grain(img, o.Grain, p.params.RegionSeed, p.params.Palette.Dark)
	if o.Info {
		s := p.Stats()
		s.Paused = o.Paused
		canvas.DrawInfo(img, s.Lines())
	}
	return img
}
