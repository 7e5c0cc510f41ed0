// pkg/renderer/text_test.go
// Copyright(c) 2026 ember contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"testing"
)

// newLayoutTestFont hand-builds a Font with known glyph metrics so layout
// can be asserted exactly. No font face is attached, so kerning is zero.
func newLayoutTestFont(t *testing.T, fb *fakeBackend) *Font {
	t.Helper()
	f := &Font{Atlas: testTexture(t, fb)}

	set := func(r rune, w, h, descent float32) {
		f.glyphs[r-glyphLo] = Glyph{
			X0: 0, Y0: descent - h, X1: w, Y1: descent,
			U0: 0.1, V0: 0.2, U1: 0.3, V1: 0.4,
			AdvanceX: w, Visible: true,
		}
	}
	set('A', 10, 20, 0)
	set('B', 12, 20, 0)
	set('-', 6, 2, 0)
	set('g', 8, 16, 4) // descends 4px below the baseline
	return f
}

func TestTextAdvance(t *testing.T) {
	fb := newFakeBackend()
	f := newLayoutTestFont(t, fb)

	text := NewText(f, "AB", [2]float32{5, 0}, 1, 0, White)
	sprites := text.Sprites()
	if len(sprites) != 2 {
		t.Fatalf("%d sprites, want 2", len(sprites))
	}
	if got := sprites[0].Pos()[0]; got != 5 {
		t.Errorf("first glyph at x=%v, want 5", got)
	}
	if got := sprites[1].Pos()[0]; got != 15 {
		t.Errorf("second glyph at x=%v, want 15 (origin + width of A)", got)
	}
	if got := sprites[1].Size(); got != [2]float32{12, 20} {
		t.Errorf("second glyph size = %v, want (12, 20)", got)
	}
}

func TestTextScaleAndSpacing(t *testing.T) {
	fb := newFakeBackend()
	f := newLayoutTestFont(t, fb)

	text := NewText(f, "AB", [2]float32{0, 0}, 0.5, 2, White)
	sprites := text.Sprites()
	if len(sprites) != 2 {
		t.Fatalf("%d sprites, want 2", len(sprites))
	}
	// Advance is the glyph width scaled plus spacing: 10*0.5 + 2.
	if got := sprites[1].Pos()[0]; got != 7 {
		t.Errorf("second glyph at x=%v, want 7", got)
	}
	if got := sprites[0].Size(); got != [2]float32{5, 10} {
		t.Errorf("scaled glyph size = %v, want (5, 10)", got)
	}
}

func TestTextBaselineOffset(t *testing.T) {
	fb := newFakeBackend()
	f := newLayoutTestFont(t, fb)

	text := NewText(f, "g", [2]float32{0, 50}, 2, 0, White)
	sprites := text.Sprites()
	if len(sprites) != 1 {
		t.Fatalf("%d sprites, want 1", len(sprites))
	}
	// 'g' descends 4px below the baseline, so its bottom edge sits at
	// y - 4*size.
	if got := sprites[0].Pos()[1]; got != 42 {
		t.Errorf("descender glyph at y=%v, want 42", got)
	}
}

func TestTextSpaceUsesHyphenWidth(t *testing.T) {
	fb := newFakeBackend()
	f := newLayoutTestFont(t, fb)

	text := NewText(f, "A B", [2]float32{0, 0}, 1, 0, White)
	sprites := text.Sprites()
	if len(sprites) != 2 {
		t.Fatalf("%d sprites, want 2 (space produces none)", len(sprites))
	}
	// B starts after A's width plus the hyphen-width space advance.
	if got := sprites[1].Pos()[0]; got != 16 {
		t.Errorf("glyph after space at x=%v, want 16", got)
	}
}

func TestTextSkipsUncoveredRunes(t *testing.T) {
	fb := newFakeBackend()
	f := newLayoutTestFont(t, fb)

	text := NewText(f, "AéB", [2]float32{0, 0}, 1, 0, White)
	sprites := text.Sprites()
	if len(sprites) != 2 {
		t.Fatalf("%d sprites, want 2 (uncovered rune skipped)", len(sprites))
	}
	// The skipped rune contributes no advance.
	if got := sprites[1].Pos()[0]; got != 10 {
		t.Errorf("glyph after skipped rune at x=%v, want 10", got)
	}
}

func TestTextSpriteAttributes(t *testing.T) {
	fb := newFakeBackend()
	f := newLayoutTestFont(t, fb)
	color := RGBA{R: 1, G: 0.5, B: 0, A: 1}

	text := NewText(f, "A", [2]float32{0, 0}, 1, 0, color)
	s := text.Sprites()[0]

	if s.Color() != color {
		t.Errorf("glyph color = %+v, want the text color", s.Color())
	}
	if s.Texture() != f.Atlas {
		t.Error("glyph sprite not mapped to the font atlas")
	}
	if got := s.TexCoords(); got != (TexRect{U0: 0.1, V0: 0.2, U1: 0.3, V1: 0.4}) {
		t.Errorf("glyph tex coords = %+v", got)
	}
}

func TestTextRebuildDetachesOldSprites(t *testing.T) {
	fb := newFakeBackend()
	f := newLayoutTestFont(t, fb)
	sc := newTestScene(t, fb, 8)

	text := NewText(f, "AB", [2]float32{0, 0}, 1, 0, White)
	if err := sc.AddText(text); err != nil {
		t.Fatal(err)
	}
	old := text.Sprites()

	text.SetString("A")
	if err := sc.RefreshText(text); err != nil {
		t.Fatal(err)
	}

	for i, s := range old {
		if s.IsAdded() {
			t.Errorf("old sprite %d still hosted after rebuild", i)
		}
	}
	if got := text.Sprites(); len(got) != 1 {
		t.Errorf("%d sprites after rebuild, want 1", len(got))
	}
	for i, s := range text.Sprites() {
		if !s.IsAdded() {
			t.Errorf("new sprite %d not hosted after refresh", i)
		}
	}
	if sc.batches[0].Count() != 1 {
		t.Errorf("batch holds %d sprites after refresh, want 1", sc.batches[0].Count())
	}
}

func TestTextRebuildRoundTrip(t *testing.T) {
	fb := newFakeBackend()
	f := newLayoutTestFont(t, fb)

	text := NewText(f, "A B-g", [2]float32{3, 7}, 0.25, 1, White)
	before := make([][2]float32, 0)
	for _, s := range text.Sprites() {
		before = append(before, s.Pos())
	}

	if err := text.Rebuild(); err != nil {
		t.Fatal(err)
	}
	after := text.Sprites()
	if len(after) != len(before) {
		t.Fatalf("rebuild changed sprite count: %d != %d", len(after), len(before))
	}
	for i, s := range after {
		if s.Pos() != before[i] {
			t.Errorf("sprite %d moved across rebuild: %v != %v", i, s.Pos(), before[i])
		}
	}
}

func TestTextWidth(t *testing.T) {
	fb := newFakeBackend()
	f := newLayoutTestFont(t, fb)

	text := NewText(f, "AB", [2]float32{0, 0}, 1, 2, White)
	// Width of A + spacing + width of B + spacing.
	if got := text.Width(); got != 26 {
		t.Errorf("width = %v, want 26", got)
	}
}
