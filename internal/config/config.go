// Package config loads painting settings from TOML or YAML files.
//
// Every key is optional. Missing keys keep the values of Default; unknown
// keys are rejected so typos do not pass silently.
//
//	seed = 1234
//	buffer_size = 1500
//	palette = "#10 (Itonk)"
//	density = 6.0
//	frame = false
//
//	[shapes]
//	circles = 12
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/regions/internal/painter"
	"github.com/gogpu/regions/internal/palette"
	"github.com/gogpu/regions/internal/sketch"
)

// Defaults.
const (
	DefaultBufferSize  = 1500
	DefaultNoiseAmount = 0.05
	MinBufferSize      = 10
)

// ErrFormat is returned for files that are neither TOML nor YAML.
var ErrFormat = errors.New("config: unsupported file extension")

// Config holds the settings of one painting.
type Config struct {
	// Seed selects the painting. Nil means the caller picks one.
	Seed *uint64 `toml:"seed" yaml:"seed"`

	BufferSize int `toml:"buffer_size" yaml:"buffer_size"`

	// Proportion is the width/height ratio. Zero keeps the seed's choice.
	Proportion float64 `toml:"proportion" yaml:"proportion"`

	// Palette names a built-in palette. Colors and Background define a
	// custom one instead; the two forms are exclusive.
	Palette    string   `toml:"palette" yaml:"palette"`
	Colors     []string `toml:"colors" yaml:"colors"`
	Background string   `toml:"background" yaml:"background"`

	// Density is the target number of samples per pixel. Zero keeps the
	// seed's initial density.
	Density        float64 `toml:"density" yaml:"density"`
	PointsPerFrame int     `toml:"points_per_frame" yaml:"points_per_frame"`
	EmptyArea      float64 `toml:"empty_area" yaml:"empty_area"`
	Frame          bool    `toml:"frame" yaml:"frame"`
	NoiseAmount    float64 `toml:"noise_amount" yaml:"noise_amount"`
	Workers        int     `toml:"workers" yaml:"workers"`

	// Shapes overrides the seed's shape counts when present.
	Shapes *Shapes `toml:"shapes" yaml:"shapes"`
}

// Shapes holds explicit per-kind shape counts of the main region set.
type Shapes struct {
	Lines      int `toml:"lines" yaml:"lines"`
	Circles    int `toml:"circles" yaml:"circles"`
	Rings      int `toml:"rings" yaml:"rings"`
	Rectangles int `toml:"rectangles" yaml:"rectangles"`
	Crosses    int `toml:"crosses" yaml:"crosses"`
	Polygons   int `toml:"polygons" yaml:"polygons"`
	Glyphs     int `toml:"glyphs" yaml:"glyphs"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		BufferSize:     DefaultBufferSize,
		PointsPerFrame: painter.DefaultPointsPerFrame,
		EmptyArea:      painter.DefaultEmptyArea,
		Frame:          true,
		NoiseAmount:    DefaultNoiseAmount,
	}
}

// Load reads path on top of Default and validates the result. The format
// is chosen by extension: .toml, .yaml or .yml.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data in the format named by ext on top of Default and
// validates the result.
func Parse(data []byte, ext string) (Config, error) {
	cfg := Default()
	switch strings.ToLower(ext) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, err
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document leaves the defaults untouched.
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, err
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrFormat, ext)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ValidationError lists every invalid field of a Config.
type ValidationError struct {
	Fields []FieldError
}

// FieldError describes one invalid field.
type FieldError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Reason
	}
	return "config: invalid " + strings.Join(parts, "; ")
}

// Validate reports every invalid field as a *ValidationError.
func (c Config) Validate() error {
	var fields []FieldError
	add := func(field, reason string) {
		fields = append(fields, FieldError{field, reason})
	}

	if c.BufferSize < MinBufferSize {
		add("buffer_size", fmt.Sprintf("must be at least %d", MinBufferSize))
	}
	if c.Proportion < 0 {
		add("proportion", "must not be negative")
	}
	if c.Palette != "" && (len(c.Colors) > 0 || c.Background != "") {
		add("palette", "cannot be combined with colors or background")
	}
	if c.Palette != "" {
		if _, err := palette.Lookup(c.Palette); err != nil {
			add("palette", err.Error())
		}
	}
	if len(c.Colors) > 0 || c.Background != "" {
		if _, err := c.customPalette(); err != nil {
			add("colors", err.Error())
		}
	}
	if c.Density < 0 {
		add("density", "must not be negative")
	}
	if c.PointsPerFrame <= 0 {
		add("points_per_frame", "must be positive")
	}
	if c.EmptyArea < 0 || c.EmptyArea > 1 {
		add("empty_area", "must be in [0, 1]")
	}
	if c.NoiseAmount < 0 || c.NoiseAmount > 1 {
		add("noise_amount", "must be in [0, 1]")
	}
	if c.Workers < 0 {
		add("workers", "must not be negative")
	}
	if s := c.Shapes; s != nil {
		for _, n := range []struct {
			name  string
			count int
		}{
			{"shapes.lines", s.Lines},
			{"shapes.circles", s.Circles},
			{"shapes.rings", s.Rings},
			{"shapes.rectangles", s.Rectangles},
			{"shapes.crosses", s.Crosses},
			{"shapes.polygons", s.Polygons},
			{"shapes.glyphs", s.Glyphs},
		} {
			if n.count < 0 {
				add(n.name, "must not be negative")
			}
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func (c Config) customPalette() (palette.Palette, error) {
	bg := c.Background
	if bg == "" {
		bg = "#ffffff"
	}
	return palette.New("custom", bg, c.Colors)
}

// Params derives the painting parameters for seed and applies the
// overrides of c. c must be valid.
func (c Config) Params(seed uint64) (sketch.Params, error) {
	p := sketch.NewParams(seed)
	if c.Proportion > 0 {
		p.Proportion = sketch.Option[float64]{Weight: 1, Value: c.Proportion, Label: "custom"}
	}
	switch {
	case c.Palette != "":
		pal, err := palette.Lookup(c.Palette)
		if err != nil {
			return sketch.Params{}, fmt.Errorf("config: %w", err)
		}
		p.Palette = pal
	case len(c.Colors) > 0:
		pal, err := c.customPalette()
		if err != nil {
			return sketch.Params{}, fmt.Errorf("config: %w", err)
		}
		p.Palette = pal
	}
	if s := c.Shapes; s != nil {
		p.Shapes = sketch.Counts{
			Lines:      s.Lines,
			Circles:    s.Circles,
			Rings:      s.Rings,
			Rectangles: s.Rectangles,
			Crosses:    s.Crosses,
			Polygons:   s.Polygons,
			Glyphs:     s.Glyphs,
		}
	}
	return p, nil
}

// PainterOptions returns the painter options c sets.
func (c Config) PainterOptions() []painter.Option {
	return []painter.Option{
		painter.WithWorkers(c.Workers),
		painter.WithPointsPerFrame(c.PointsPerFrame),
		painter.WithEmptyArea(c.EmptyArea),
		painter.WithFrame(c.Frame),
		painter.WithDensity(c.Density),
	}
}

// BufferDimensions returns the buffer size for proportion.
func (c Config) BufferDimensions(proportion float64) (width, height int) {
	return sketch.BufferSize(c.BufferSize, proportion)
}
