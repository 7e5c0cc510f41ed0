// pkg/renderer/text.go
// Copyright(c) 2026 ember contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

// Text lays out a string as a sequence of glyph sprites along a
// left-to-right baseline. The Text owns its sprites; it does not host
// them in batches itself. Add the sprites through Scene.AddText and, on
// mutation, regenerate with Rebuild (or Scene.RefreshText).
type Text struct {
	font    *Font
	str     string
	pos     [2]float32
	size    float32 // world units per atlas pixel
	spacing float32 // extra advance between glyphs, world units
	color   RGBA

	sprites []*Sprite
}

// NewText lays out str starting at pos, which is the baseline origin of
// the first glyph. size scales atlas pixels to world units and spacing is
// added to every advance.
func NewText(font *Font, str string, pos [2]float32, size, spacing float32, color RGBA) *Text {
	t := &Text{
		font:    font,
		str:     str,
		pos:     pos,
		size:    size,
		spacing: spacing,
		color:   color,
	}
	t.sprites = t.createSprites()
	return t
}

func (t *Text) String() string  { return t.str }
func (t *Text) Pos() [2]float32 { return t.pos }
func (t *Text) Color() RGBA     { return t.color }

// Sprites returns the glyph sprites in layout order. The slice is owned
// by the Text and replaced wholesale by Rebuild.
func (t *Text) Sprites() []*Sprite { return t.sprites }

// SetString records a new string; the sprite sequence is stale until
// Rebuild.
func (t *Text) SetString(str string) { t.str = str }

// SetPos records a new baseline origin; the sprite sequence is stale
// until Rebuild.
func (t *Text) SetPos(pos [2]float32) { t.pos = pos }

// SetColor records a new color; the sprite sequence is stale until
// Rebuild.
func (t *Text) SetColor(c RGBA) { t.color = c }

// Rebuild removes any currently hosted sprites from their batches and
// regenerates the sequence from the Text's current fields. The new
// sprites are detached; re-host them with Scene.AddText.
func (t *Text) Rebuild() error {
	for _, s := range t.sprites {
		if s.IsAdded() {
			if err := s.Remove(); err != nil {
				return err
			}
		}
	}
	t.sprites = t.createSprites()
	return nil
}

// createSprites walks the string with a pen starting at the baseline
// origin. Each visible glyph produces one sprite positioned from its
// baseline-relative quad; the pen advances by the glyph quad's width
// plus spacing plus the kerning against the following rune. A space
// advances by the hyphen glyph's width without producing a sprite, and
// runes the font doesn't cover are skipped with no advance.
func (t *Text) createSprites() []*Sprite {
	runes := []rune(t.str)
	sprites := make([]*Sprite, 0, len(runes))

	x, y := t.pos[0], t.pos[1]
	for i, r := range runes {
		var next rune
		if i+1 < len(runes) {
			next = runes[i+1]
		}

		if r == ' ' {
			if hyphen, ok := t.font.Glyph('-'); ok {
				x += hyphen.Width()*t.size + t.spacing
				if next != 0 {
					x += t.font.Kern('-', next) * t.size
				}
			}
			continue
		}

		g, ok := t.font.Glyph(r)
		if !ok || !g.Visible {
			continue
		}

		// The glyph quad is y-down relative to the baseline, so Y1 is
		// its lowest edge; in the y-up world that edge sits at
		// y - Y1*size and the sprite origin is its bottom-left corner.
		s := NewSprite(
			[2]float32{x, y - g.Y1*t.size},
			[2]float32{g.Width() * t.size, g.Height() * t.size},
			t.font.Atlas)
		s.SetTexCoords(TexRect{U0: g.U0, V0: g.V0, U1: g.U1, V1: g.V1})
		s.SetColor(t.color)
		sprites = append(sprites, s)

		x += g.Width()*t.size + t.spacing
		if next != 0 {
			x += t.font.Kern(r, next) * t.size
		}
	}
	return sprites
}

// Width returns the layout width of the string in world units, computed
// with the same advance rules createSprites uses.
func (t *Text) Width() float32 {
	runes := []rune(t.str)
	var w float32
	for i, r := range runes {
		var next rune
		if i+1 < len(runes) {
			next = runes[i+1]
		}

		lookup := r
		if r == ' ' {
			lookup = '-'
		}
		g, ok := t.font.Glyph(lookup)
		if !ok || (r != ' ' && !g.Visible) {
			continue
		}

		w += g.Width()*t.size + t.spacing
		if next != 0 {
			w += t.font.Kern(lookup, next) * t.size
		}
	}
	return w
}
