// pkg/renderer/font.go
// Copyright(c) 2026 ember contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"image/draw"

	"github.com/ember2d/ember/pkg/log"
	"github.com/ember2d/ember/pkg/util"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

const (
	// Glyphs for the printable ASCII range are packed into the atlas.
	glyphLo    = ' '
	glyphHi    = '~'
	glyphCount = glyphHi - glyphLo + 1

	// packHeight is the pixel height glyphs are rasterized at; text is
	// drawn as scaled quads of these rasterizations.
	packHeight = 64

	atlasWidth = 1024
	atlasPad   = 2

	kernCacheSize = 1024
)

// Glyph holds one packed glyph's quad metrics: vertex offsets relative to
// the baseline (y down, so Y0 is negative above the baseline), texture
// coordinates into the atlas, and the pen advance.
type Glyph struct {
	X0, Y0, X1, Y1 float32
	U0, V0, U1, V1 float32
	AdvanceX       float32
	// Visible is false for glyphs with no ink (space).
	Visible bool
}

func (g *Glyph) Width() float32  { return g.X1 - g.X0 }
func (g *Glyph) Height() float32 { return g.Y1 - g.Y0 }

// Font is a decoded font: one atlas Texture covering the printable ASCII
// range, per-glyph quad metrics, and a kerning query against the font's
// shape data. Immutable after construction.
type Font struct {
	Atlas *Texture

	glyphs    [glyphCount]Glyph
	maxHeight float32

	face      font.Face
	kernCache *lru.Cache[[2]rune, float32]
}

// fontAtlas is the disk-cache representation of a rasterized atlas.
type fontAtlas struct {
	Width, Height int
	Pix           []byte // single channel
	Glyphs        [glyphCount]Glyph
	MaxHeight     float32
}

// LoadFont reads a font file (zstd-compressed files are handled
// transparently), rasterizes and packs its printable-ASCII glyphs, and
// uploads the atlas texture. An unreadable or unparsable file is an
// error; there is no fallback font.
func LoadFont(backend Backend, path string, lg *log.Logger) (*Font, error) {
	b, err := util.LoadResourceBytes(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f, err := NewFontFromBytes(backend, b, lg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// NewFontFromBytes builds a Font from raw TTF/OTF bytes.
func NewFontFromBytes(backend Backend, ttf []byte, lg *log.Logger) (*Font, error) {
	sf, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}

	if name, err := sf.Name(nil, sfnt.NameIDFull); err == nil {
		lg.Infof("Loaded font %q", name)
	}

	face, err := opentype.NewFace(sf, &opentype.FaceOptions{
		Size:    packHeight,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("creating font face: %w", err)
	}

	// Rasterizing ~100 glyphs at packHeight is not free, so atlases are
	// cached on disk keyed by font content. A missing or corrupt cache
	// entry just means rasterizing again.
	sum := sha256.Sum256(ttf)
	cachePath := "fonts/" + hex.EncodeToString(sum[:16]) + ".atlas"

	var atlas fontAtlas
	if _, err := util.CacheRetrieveObject(cachePath, &atlas); err != nil ||
		atlas.Width*atlas.Height != len(atlas.Pix) || len(atlas.Pix) == 0 {
		atlas = rasterizeAtlas(face)
		if err := util.CacheStoreObject(cachePath, atlas); err != nil {
			lg.Warnf("%s: storing font atlas cache: %v", cachePath, err)
		}
	} else {
		lg.Debugf("%s: font atlas from cache", cachePath)
	}

	tex, err := NewTexture(backend, expandRedToRGBA(atlas.Pix), atlas.Width, atlas.Height,
		FormatRGBA, TextureOptions{LinearFilter: true, ClampToEdge: true})
	if err != nil {
		return nil, err
	}

	kernCache, err := lru.New[[2]rune, float32](kernCacheSize)
	if err != nil {
		return nil, err
	}

	return &Font{
		Atlas:     tex,
		glyphs:    atlas.Glyphs,
		maxHeight: atlas.MaxHeight,
		face:      face,
		kernCache: kernCache,
	}, nil
}

// rasterizeAtlas renders the printable ASCII range into a single-channel
// shelf-packed bitmap and records per-glyph quad metrics.
func rasterizeAtlas(face font.Face) fontAtlas {
	type rendered struct {
		dr    image.Rectangle
		mask  image.Image
		maskp image.Point
		adv   fixed.Int26_6
		ok    bool
	}

	var glyphs [glyphCount]rendered
	var rects []packSize
	for i := range glyphs {
		r := rune(glyphLo + i)
		dr, mask, maskp, adv, ok := face.Glyph(fixed.Point26_6{}, r)
		glyphs[i] = rendered{dr: dr, mask: mask, maskp: maskp, adv: adv, ok: ok}
		rects = append(rects, packSize{w: dr.Dx(), h: dr.Dy()})
	}

	pos, height := packShelves(rects, atlasWidth, atlasPad)
	img := image.NewAlpha(image.Rect(0, 0, atlasWidth, height))

	var out fontAtlas
	out.Width, out.Height = atlasWidth, height
	for i, g := range glyphs {
		if !g.ok {
			continue
		}

		w, h := g.dr.Dx(), g.dr.Dy()
		x, y := pos[i][0], pos[i][1]
		if w > 0 && h > 0 {
			draw.Draw(img, image.Rect(x, y, x+w, y+h), g.mask, g.maskp, draw.Src)
		}

		out.Glyphs[i] = Glyph{
			X0:       float32(g.dr.Min.X),
			Y0:       float32(g.dr.Min.Y),
			X1:       float32(g.dr.Max.X),
			Y1:       float32(g.dr.Max.Y),
			U0:       float32(x) / atlasWidth,
			V0:       float32(y) / float32(height),
			U1:       float32(x+w) / atlasWidth,
			V1:       float32(y+h) / float32(height),
			AdvanceX: float32(g.adv) / 64,
			Visible:  w > 0 && h > 0,
		}

		if hf := out.Glyphs[i].Height(); out.Glyphs[i].Visible && hf > out.MaxHeight {
			out.MaxHeight = hf
		}
	}

	out.Pix = img.Pix
	return out
}

type packSize struct {
	w, h int
}

// packShelves assigns each rect a position in a fixed-width atlas using
// simple shelf packing: rects fill a row left to right and a new row
// starts when one doesn't fit. Returns the positions and the total
// height consumed. Rects wider than the atlas are not supported.
func packShelves(rects []packSize, width, pad int) ([][2]int, int) {
	pos := make([][2]int, len(rects))
	x, y, rowH := pad, pad, 0
	for i, r := range rects {
		if x+r.w+pad > width {
			x = pad
			y += rowH + pad
			rowH = 0
		}
		pos[i] = [2]int{x, y}
		x += r.w + pad
		if r.h > rowH {
			rowH = r.h
		}
	}
	return pos, y + rowH + pad
}

// Glyph returns the packed metrics for the given rune; ok is false for
// runes outside the printable ASCII range.
func (f *Font) Glyph(r rune) (Glyph, bool) {
	if r < glyphLo || r > glyphHi {
		return Glyph{}, false
	}
	return f.glyphs[r-glyphLo], true
}

// MaxHeight returns the height in atlas pixels of the tallest packed
// glyph.
func (f *Font) MaxHeight() float32 { return f.maxHeight }

// Kern returns the kerning adjustment between the pair, in pixels at the
// pack height. Lookups go to the font's shape data through a small LRU
// since text regenerates query the same pairs repeatedly.
func (f *Font) Kern(a, b rune) float32 {
	if f.face == nil {
		return 0
	}
	key := [2]rune{a, b}
	if k, ok := f.kernCache.Get(key); ok {
		return k
	}
	k := float32(f.face.Kern(a, b)) / 64
	f.kernCache.Add(key, k)
	return k
}

// GlyphBounds queries the shape data for the glyph's bounding box at the
// pack height, in pixels relative to the baseline with y down.
func (f *Font) GlyphBounds(r rune) (x0, y0, x1, y1 float32, ok bool) {
	if f.face == nil {
		return 0, 0, 0, 0, false
	}
	bounds, _, ok := f.face.GlyphBounds(r)
	if !ok {
		return 0, 0, 0, 0, false
	}
	return float32(bounds.Min.X) / 64, float32(bounds.Min.Y) / 64,
		float32(bounds.Max.X) / 64, float32(bounds.Max.Y) / 64, true
}

// Release frees the atlas texture.
func (f *Font) Release(b Backend) {
	f.Atlas.Release(b)
}
