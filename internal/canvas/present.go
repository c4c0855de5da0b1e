package canvas

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Present scales img to width x height with Catmull-Rom filtering. A size
// equal to the source returns a plain copy.
func Present(img image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
	src := img.Bounds()
	if src.Dx() == width && src.Dy() == height {
		draw.Draw(dst, dst.Bounds(), img, src.Min, draw.Src)
		return dst
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, src, draw.Src, nil)
	return dst
}

// Info panel layout, in pixels of the destination image.
const (
	infoPadding   = 10
	infoLineSep   = 20
	infoMarginPct = 0.03
)

var (
	infoPanel = color.NRGBA{R: 255, G: 255, B: 255, A: 220}
	infoText  = color.Gray{Y: 50}
)

// DrawInfo draws lines of text on a translucent panel in the top-left
// corner of dst and returns the panel rectangle.
func DrawInfo(dst draw.Image, lines []string) image.Rectangle {
	if len(lines) == 0 {
		return image.Rectangle{}
	}
	face := basicfont.Face7x13

	textWidth := 0
	for _, line := range lines {
		textWidth = max(textWidth, font.MeasureString(face, line).Ceil())
	}

	b := dst.Bounds()
	margin := int(infoMarginPct * float64(b.Dx()))
	origin := b.Min.Add(image.Pt(margin, margin))
	panel := image.Rectangle{
		Min: origin,
		Max: origin.Add(image.Pt(textWidth+2*infoPadding, infoLineSep*len(lines)+2*infoPadding)),
	}.Intersect(b)
	draw.Draw(dst, panel, image.NewUniform(infoPanel), image.Point{}, draw.Over)

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(infoText),
		Face: face,
	}
	ascent := face.Metrics().Ascent.Ceil()
	for i, line := range lines {
		// Vertically centre each line in its slot.
		baseline := origin.Y + infoPadding + infoLineSep*i + (infoLineSep+ascent)/2
		d.Dot = fixed.P(origin.X+infoPadding, baseline)
		d.DrawString(line)
	}
	return panel
}
