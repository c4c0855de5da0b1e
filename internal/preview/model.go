// Package preview shows a painting in the terminal while it is painted.
package preview

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gogpu/regions"
	"github.com/gogpu/regions/internal/canvas"
	"github.com/gogpu/regions/internal/painter"
	"github.com/gogpu/regions/internal/sketch"
)

// Key-driven adjustments.
const (
	frameInterval = 30 * time.Millisecond
	noiseStep     = 0.05
	densityStep   = 1
	sizeStep      = 1000
	minSize       = 10
)

// Options configures the preview.
type Options struct {
	// Grain is the initial film grain amount.
	Grain float64

	// SaveDir is where the s key writes PNG files.
	SaveDir string
}

// Model is the bubbletea model of the preview.
type Model struct {
	ctx     context.Context
	painter *painter.Painter
	opts    Options

	width  int
	height int

	paused   bool
	showInfo bool
	grain    float64
	status   string
	bar      progress.Model
}

type frameMsg struct{}

// New returns a preview of p. The painter is advanced by the model; it must
// not be used elsewhere while the preview runs.
func New(ctx context.Context, p *painter.Painter, opts Options) Model {
	return Model{
		ctx:     ctx,
		painter: p,
		opts:    opts,
		grain:   min(max(opts.Grain, 0), 1),
		status:  "painting",
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
}

// Run shows the preview until the user quits or ctx is done.
func Run(ctx context.Context, p *painter.Painter, opts Options) error {
	prog := tea.NewProgram(New(ctx, p, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := prog.Run()
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd { return tick() }

// paint advances the painter by one frame unless paused or finished.
func (m *Model) paint() {
	if m.paused || m.painter.Done() {
		return
	}
	if err := m.painter.PaintFrame(m.ctx); err != nil {
		m.status = "paint error: " + err.Error()
		m.paused = true
		return
	}
	if m.painter.Done() {
		m.status = "finished"
	}
}

// bufferSize returns sqrt(width*height) of the current buffer.
func (m Model) bufferSize() int {
	pix := m.painter.Pixmap()
	return int(math.Round(math.Sqrt(float64(pix.Pixels()))))
}

// resize rebuilds the painting at a buffer size changed by delta.
func (m *Model) resize(delta int) {
	size := m.bufferSize() + delta
	if size <= minSize {
		m.status = "buffer size at minimum"
		return
	}
	w, h := sketch.BufferSize(size, m.painter.Params().Proportion.Value)
	if err := m.painter.Resize(w, h); err != nil {
		m.status = "resize error: " + err.Error()
		return
	}
	m.status = fmt.Sprintf("buffer %dx%d", w, h)
}

// save writes the current painting to SaveDir.
func (m *Model) save() {
	params := m.painter.Params()
	path := filepath.Join(m.opts.SaveDir, fmt.Sprintf("regions-%d.png", params.Seed))
	img := m.painter.Image(painter.ImageOptions{
		Grain:  m.grain,
		Info:   m.showInfo,
		Paused: m.paused,
	})
	if err := canvas.SavePNG(path, img); err != nil {
		m.status = "save error: " + err.Error()
		return
	}
	regions.Logger().Info("preview: saved", "path", path)
	m.status = "saved " + path
}
