package preview

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/anthonynsimon/bild/transform"
	"github.com/charmbracelet/lipgloss"
)

// halfBlock draws the top pixel in the foreground and the bottom pixel in
// the background, giving two pixels per terminal cell.
const halfBlock = "▀"

// fitCells returns the pixel size of img scaled to fit cols x rows cells,
// with two pixels per cell vertically. The height is always even.
func fitCells(bounds image.Rectangle, cols, rows int) (w, h int) {
	if cols <= 0 || rows <= 0 || bounds.Empty() {
		return 0, 0
	}
	sw, sh := float64(bounds.Dx()), float64(bounds.Dy())
	scale := min(float64(cols)/sw, float64(2*rows)/sh)
	w = max(int(sw*scale), 1)
	h = max(int(sh*scale)/2*2, 2)
	return w, h
}

// renderHalfBlocks downsamples img into at most cols x rows terminal cells.
func renderHalfBlocks(img image.Image, cols, rows int) []string {
	w, h := fitCells(img.Bounds(), cols, rows)
	if w == 0 {
		return nil
	}
	small := transform.Resize(img, w, h, transform.Box)

	lines := make([]string, 0, h/2)
	var sb strings.Builder
	for y := 0; y < h; y += 2 {
		sb.Reset()
		for x := range w {
			top := small.RGBAAt(x, y)
			bottom := small.RGBAAt(x, y+1)
			sb.WriteString(lipgloss.NewStyle().
				Foreground(hexColor(top)).
				Background(hexColor(bottom)).
				Render(halfBlock))
		}
		lines = append(lines, sb.String())
	}
	return lines
}

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
