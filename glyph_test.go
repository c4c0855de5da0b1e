package regions

import "testing"

func TestGlyphPixelCounts(t *testing.T) {
	tests := []struct {
		glyph Glyph
		name  string
		count int
	}{
		{GlyphGM, "GM", 34},
		{GlyphGN, "GN", 35},
	}
	for _, tt := range tests {
		if got := tt.glyph.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
		if got := len(tt.glyph.Pixels()); got != tt.count {
			t.Errorf("%s: %d pixels, want %d", tt.name, got, tt.count)
		}
	}
	if Glyph(9).String() != "unknown" || Glyph(9).Pixels() != nil {
		t.Error("unknown glyph should have no name and no pixels")
	}
}

func TestGlyphPixelsIsCopy(t *testing.T) {
	px := GlyphGM.Pixels()
	px[0] = [2]int8{99, 99}
	if GlyphGM.Pixels()[0] == px[0] {
		t.Error("Pixels() must not expose the shared table")
	}
}

func TestGlyphIsInside(t *testing.T) {
	// Size 11 gives a pixel size of exactly 1.
	gm := NewGlyph(Pt(0, 0), GlyphGM, 11, 0)
	gn := NewGlyph(Pt(0, 0), GlyphGN, 11, 0)

	tests := []struct {
		name   string
		x, y   float64
		wantGM bool
		wantGN bool
	}{
		{"G stem", -5, 0, true, true},
		{"gap column", 0, 0, false, false},
		{"M diagonal", 4, -2, true, false},
		{"N diagonal", 4, 2, false, true},
		{"N middle", 3, 1, false, true},
		{"right stem top", 5.4, -3.4, true, true},
		{"pixel edge", -5.5, 0, false, false},
		{"between G pixels", -4.5, 0, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gm.IsInside(tt.x, tt.y); got != tt.wantGM {
				t.Errorf("GM.IsInside(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.wantGM)
			}
			if got := gn.IsInside(tt.x, tt.y); got != tt.wantGN {
				t.Errorf("GN.IsInside(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.wantGN)
			}
		})
	}
}

func TestGlyphScales(t *testing.T) {
	// At size 22 every pixel doubles, so (8, -4) lands on M pixel (4, -2).
	gm := NewGlyph(Pt(100, 100), GlyphGM, 22, 0)
	if !gm.IsInside(108, 96) {
		t.Error("scaled glyph should contain pixel (4, -2)")
	}
	if gm.IsInside(104, 98) {
		t.Error("scaled glyph should not contain the gap at (2, -1)")
	}
}
