// Package palette provides the colour sets points are painted with.
//
// A palette pairs a background colour with the point colours and a dark
// flag. Thirty-one stock sets are built in; custom sets are parsed from hex
// strings.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrEmpty is returned when a palette would have no point colours.
var ErrEmpty = errors.New("palette: no colors")

// ErrUnknown is returned by Lookup and ByIndex for names and indices that
// match no built-in palette.
var ErrUnknown = errors.New("palette: unknown palette")

// Palette is a named colour set.
type Palette struct {
	Name       string
	Weight     float64 // relative selection weight among built-ins
	Background color.RGBA
	Colors     []color.RGBA
	Dark       bool
}

var builtins = func() []Palette {
	ps := make([]Palette, len(builtinSpecs))
	for i, s := range builtinSpecs {
		p, err := build(s.name, s.background, s.colors)
		if err != nil {
			panic(fmt.Sprintf("palette: built-in %s: %v", s.name, err))
		}
		p.Weight = s.weight
		p.Dark = s.dark
		ps[i] = p
	}
	return ps
}()

// Builtin returns a copy of the stock palettes in index order.
func Builtin() []Palette {
	ps := make([]Palette, len(builtins))
	for i, p := range builtins {
		ps[i] = p.clone()
	}
	return ps
}

// ByIndex returns the stock palette with index i.
func ByIndex(i int) (Palette, error) {
	if i < 0 || i >= len(builtins) {
		return Palette{}, fmt.Errorf("%w: index %d", ErrUnknown, i)
	}
	return builtins[i].clone(), nil
}

// Lookup finds a stock palette by name. "#10 (Itonk)", "#10" and "10" all
// name the same palette.
func Lookup(name string) (Palette, error) {
	key := strings.TrimSpace(name)
	if i := strings.IndexByte(key, ' '); i >= 0 {
		key = key[:i]
	}
	i, err := strconv.Atoi(strings.TrimPrefix(key, "#"))
	if err != nil {
		return Palette{}, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return ByIndex(i)
}

// New builds a custom palette from hex strings ("#rrggbb", "rrggbb" or the
// short "#rgb" form). An entry may also be a dash-separated list in the
// form ParseList accepts. Dark is inferred from the background lightness.
func New(name, background string, colors []string) (Palette, error) {
	p, err := build(name, background, colors)
	if err != nil {
		return Palette{}, err
	}
	p.Weight = 1
	p.Dark = IsDark(p.Background)
	return p, nil
}

func build(name, background string, colors []string) (Palette, error) {
	if len(colors) == 0 {
		return Palette{}, ErrEmpty
	}
	bg, err := ParseColor(background)
	if err != nil {
		return Palette{}, err
	}
	cs := make([]color.RGBA, 0, len(colors))
	for _, s := range colors {
		if strings.Contains(s, "-") {
			list, err := ParseList(s)
			if err != nil {
				return Palette{}, err
			}
			cs = append(cs, list...)
			continue
		}
		c, err := ParseColor(s)
		if err != nil {
			return Palette{}, err
		}
		cs = append(cs, c)
	}
	return Palette{Name: name, Background: bg, Colors: cs}, nil
}

// ParseColor parses a hex colour with or without the leading '#'.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("palette: parse %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// ParseList parses a dash-separated hex list such as
// "faf5e6-7daafa-ff6464". Anything up to the last '/' or '=' is ignored,
// so a URL or "colors=..." query fragment can be pasted as is.
func ParseList(s string) ([]color.RGBA, error) {
	if i := strings.LastIndexAny(s, "/="); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmpty
	}
	parts := strings.Split(s, "-")
	cs := make([]color.RGBA, len(parts))
	for i, part := range parts {
		c, err := ParseColor(part)
		if err != nil {
			return nil, err
		}
		cs[i] = c
	}
	return cs, nil
}

// FormatList is the inverse of ParseList.
func FormatList(colors []color.RGBA) string {
	parts := make([]string, len(colors))
	for i, c := range colors {
		parts[i] = fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
	}
	return strings.Join(parts, "-")
}

// IsDark reports whether c reads as a dark background, judged by its
// CIE L*a*b* lightness.
func IsDark(c color.RGBA) bool {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return false
	}
	l, _, _ := cf.Lab()
	return l < 0.5
}

func (p Palette) clone() Palette {
	p.Colors = append([]color.RGBA(nil), p.Colors...)
	return p
}

// String returns the palette name.
func (p Palette) String() string {
	return p.Name
}
