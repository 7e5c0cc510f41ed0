// pkg/renderer/sprite.go
// Copyright(c) 2026 ember contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

// TexRect is a texture subregion in normalized coordinates; V0 is the top
// edge and V1 the bottom, matching the row order of uploaded images.
type TexRect struct {
	U0, V0, U1, V1 float32
}

// FullTexture addresses an entire texture.
var FullTexture = TexRect{0, 0, 1, 1}

// Sprite is a positioned, sized, colored, texture-mapped quad; the unit
// of batching. Field mutations are inert until Sync pushes them to the
// hosting batch: the sprite tracks a pending-sync mark so the requirement
// is visible, but nothing reaches the GPU-side vertex data until the
// caller syncs.
//
// A sprite is hosted by at most one batch at a time. Its slot handle
// (batch, slot, generation) is valid only while hosted; every batch
// operation validates it.
type Sprite struct {
	pos       [2]float32
	size      [2]float32
	color     RGBA
	texCoords TexRect
	texture   *Texture
	hidden    bool
	pending   bool

	batch *Batch
	slot  int
	gen   uint32
}

// NewSprite returns a detached sprite with the default opaque-white color
// and full texture region.
func NewSprite(pos, size [2]float32, texture *Texture) *Sprite {
	return &Sprite{
		pos:       pos,
		size:      size,
		color:     White,
		texCoords: FullTexture,
		texture:   texture,
	}
}

func (s *Sprite) Pos() [2]float32    { return s.pos }
func (s *Sprite) Size() [2]float32   { return s.size }
func (s *Sprite) Color() RGBA        { return s.color }
func (s *Sprite) TexCoords() TexRect { return s.texCoords }
func (s *Sprite) Texture() *Texture  { return s.texture }
func (s *Sprite) Hidden() bool       { return s.hidden }

// IsAdded reports whether the sprite is currently hosted by a batch.
func (s *Sprite) IsAdded() bool { return s.batch != nil }

// NeedsSync reports whether a field mutation is pending a Sync call.
func (s *Sprite) NeedsSync() bool { return s.pending }

func (s *Sprite) SetPos(p [2]float32) {
	s.pos = p
	s.pending = true
}

func (s *Sprite) SetSize(sz [2]float32) {
	s.size = sz
	s.pending = true
}

func (s *Sprite) SetColor(c RGBA) {
	s.color = c
	s.pending = true
}

func (s *Sprite) SetTexCoords(tc TexRect) {
	s.texCoords = tc
	s.pending = true
}

// Sync pushes the sprite's current fields into its batch's vertex data
// and consumes the pending-sync mark. A hidden sprite stays hidden; its
// slot keeps the degenerate zero record until Show.
func (s *Sprite) Sync() error {
	if s.batch == nil {
		return ErrNotHosted
	}
	s.pending = false
	if s.hidden {
		return s.batch.hideSprite(s)
	}
	return s.batch.syncSprite(s)
}

// Hide writes a degenerate all-zero vertex record into the sprite's slot,
// making it invisible while preserving its place in the batch. Like Sync
// on a hidden sprite, it consumes the pending-sync mark. A detached
// sprite just records the flag.
func (s *Sprite) Hide() error {
	s.hidden = true
	if s.batch == nil {
		return nil
	}
	s.pending = false
	return s.batch.hideSprite(s)
}

// Show restores the sprite's vertex data from its current fields,
// consuming the pending-sync mark.
func (s *Sprite) Show() error {
	s.hidden = false
	if s.batch == nil {
		return nil
	}
	s.pending = false
	return s.batch.syncSprite(s)
}

// Remove detaches the sprite from its hosting batch, invalidating its
// slot handle.
func (s *Sprite) Remove() error {
	if s.batch == nil {
		return ErrNotHosted
	}
	return s.batch.removeSprite(s)
}

func (s *Sprite) detach() {
	s.batch = nil
	s.slot = 0
	s.gen = 0
}
