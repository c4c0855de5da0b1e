package regions

// Glyph names a fixed pixel-block lettering usable as a shape.
type Glyph uint8

// Available glyphs.
const (
	GlyphGM Glyph = iota
	GlyphGN
)

// glyphCells is the number of pixel cells spanned by a glyph's width.
// Pixel columns run from -5 to +5.
const glyphCells = 11

// glyphG is shared by every glyph in the set.
var glyphG = [][2]int8{
	{-5, -2}, {-5, -1}, {-5, 0}, {-5, 1}, {-5, 2},
	{-4, -3}, {-4, 3},
	{-3, -3}, {-3, 3},
	{-2, -3}, {-2, 0}, {-2, 3},
	{-1, -2}, {-1, 0}, {-1, 1}, {-1, 2},
}

var glyphTables = [...][][2]int8{
	GlyphGM: concatPixels(glyphG, [][2]int8{
		{1, -3}, {1, -2}, {1, -1}, {1, 0}, {1, 1}, {1, 2}, {1, 3},
		{2, -2},
		{3, -1}, {3, 0},
		{4, -2},
		{5, -3}, {5, -2}, {5, -1}, {5, 0}, {5, 1}, {5, 2}, {5, 3},
	}),
	GlyphGN: concatPixels(glyphG, [][2]int8{
		{1, -3}, {1, -2}, {1, -1}, {1, 0}, {1, 1}, {1, 2}, {1, 3},
		{2, -2},
		{3, -1}, {3, 0}, {3, 1},
		{4, 2},
		{5, -3}, {5, -2}, {5, -1}, {5, 0}, {5, 1}, {5, 2}, {5, 3},
	}),
}

func concatPixels(a, b [][2]int8) [][2]int8 {
	out := make([][2]int8, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// String returns the glyph lettering.
func (g Glyph) String() string {
	switch g {
	case GlyphGM:
		return "GM"
	case GlyphGN:
		return "GN"
	}
	return "unknown"
}

// Pixels returns a copy of the glyph's pixel cell coordinates. Cell (px, py)
// covers the square of side pixelSize centred at (px*pixelSize, py*pixelSize)
// in the shape's local frame.
func (g Glyph) Pixels() [][2]int8 {
	return append([][2]int8(nil), g.pixels()...)
}

func (g Glyph) pixels() [][2]int8 {
	if int(g) < len(glyphTables) {
		return glyphTables[g]
	}
	return nil
}
