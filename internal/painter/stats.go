package painter

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Stats is a snapshot of painting progress.
type Stats struct {
	Palette  string
	Width    int
	Height   int
	Density  float64
	Frame    int
	Points   int64
	Painted  int64
	Done     bool
	Paused   bool
	Progress float64
}

// Stats returns the current progress.
func (p *Painter) Stats() Stats {
	return Stats{
		Palette:  p.params.Palette.Name,
		Width:    p.pix.Width(),
		Height:   p.pix.Height(),
		Density:  p.density,
		Frame:    p.frame,
		Points:   p.points,
		Painted:  p.painted,
		Done:     p.done,
		Progress: p.Progress(),
	}
}

// Progress returns the fraction of the sample target reached, in [0, 1].
func (p *Painter) Progress() float64 {
	target := p.density * float64(p.pix.Pixels())
	if target <= 0 {
		return 1
	}
	return min(float64(p.points)/target, 1)
}

// Lines formats s as the information panel shown over a painting.
func (s Stats) Lines() []string {
	pr := message.NewPrinter(language.English)
	return []string{
		pr.Sprintf("Color set: %s", s.Palette),
		pr.Sprintf("Buffer dimensions: %d x %d", s.Width, s.Height),
		pr.Sprintf("Points density: %v", s.Density),
		pr.Sprintf("Finished painting: %t", s.Done),
		pr.Sprintf("Paused: %t", s.Paused),
		pr.Sprintf("Painted points: %d", s.Points),
		pr.Sprintf("Frame: %d", s.Frame),
	}
}
