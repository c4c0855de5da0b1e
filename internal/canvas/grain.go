package canvas

import (
	"image"

	"github.com/anthonynsimon/bild/blend"
	"github.com/anthonynsimon/bild/clone"

	"github.com/gogpu/regions"
)

// Grain returns img with a deterministic per-pixel noise layer mixed in at
// the given amount (clamped to [0, 1]). The layer depends only on seed and
// pixel position, so repeated calls produce the same image. With grey set
// the noise is achromatic, which suits dark palettes.
func Grain(img image.Image, amount float64, seed uint64, grey bool) *image.RGBA {
	amount = min(max(amount, 0), 1)
	if amount == 0 {
		return clone.AsRGBA(img)
	}
	return blend.Opacity(img, grainLayer(img.Bounds(), seed, grey), amount)
}

func grainLayer(bounds image.Rectangle, seed uint64, grey bool) *image.RGBA {
	layer := image.NewRGBA(bounds)
	base := float64(seed % 9973)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := layer.Pix[(y-bounds.Min.Y)*layer.Stride:]
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			i := (x - bounds.Min.X) * 4
			r := grainValue(base, x, y, 0)
			g, b := r, r
			if !grey {
				g = grainValue(base, x, y, 1)
				b = grainValue(base, x, y, 2)
			}
			row[i+0], row[i+1], row[i+2], row[i+3] = r, g, b, 0xff
		}
	}
	return layer
}

func grainValue(base float64, x, y, channel int) uint8 {
	v := regions.Hash(base + float64(x)*0.1271 + float64(y)*0.3113 + float64(channel)*17.3)
	return uint8(v * 255)
}
