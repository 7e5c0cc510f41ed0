// pkg/renderer/batch.go
// Copyright(c) 2026 ember contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"github.com/ember2d/ember/pkg/math"
)

// DefaultBatchCapacity is the number of sprites a batch holds unless the
// Scene is configured otherwise.
const DefaultBatchCapacity = 10000

// Batch is a capacity-bounded, texture-homogeneous group of sprites
// sharing one GPU vertex buffer and one draw call. Slots [0, count) are
// contiguous and correspond 1:1 to hosted sprites; removal swaps the last
// slot into the vacated one so the range never fragments.
type Batch struct {
	texture *Texture
	program ProgramID
	buffer  BufferID

	capacity int
	count    int

	// verts holds capacity*QuadFloats values; slot i occupies
	// verts[i*QuadFloats : (i+1)*QuadFloats].
	verts   []float32
	sprites []*Sprite
	gen     []uint32

	// dirty marks that the GPU buffer is stale relative to verts and
	// must be re-uploaded before the next draw.
	dirty bool
}

func newBatch(backend Backend, texture *Texture, program ProgramID, capacity int) (*Batch, error) {
	buffer, err := backend.CreateQuadBuffer(capacity)
	if err != nil {
		return nil, err
	}
	return &Batch{
		texture:  texture,
		program:  program,
		buffer:   buffer,
		capacity: capacity,
		verts:    make([]float32, capacity*QuadFloats),
		sprites:  make([]*Sprite, capacity),
		gen:      make([]uint32, capacity),
	}, nil
}

func (b *Batch) Count() int    { return b.count }
func (b *Batch) Capacity() int { return b.capacity }

func (b *Batch) hasSpace() bool { return b.count < b.capacity }

// validate checks the sprite's slot handle against this batch. A stale
// handle means the slot was vacated or reassigned since the sprite held
// it; that is a caller bug and is reported rather than tolerated.
func (b *Batch) validate(s *Sprite) error {
	if s.batch == nil {
		return ErrNotHosted
	}
	if s.batch != b {
		return ErrWrongBatch
	}
	if s.slot < 0 || s.slot >= b.count || s.gen != b.gen[s.slot] {
		return ErrStaleSprite
	}
	return nil
}

// add assigns the sprite the next free slot and syncs its vertex data.
func (b *Batch) add(s *Sprite) error {
	if s.batch != nil {
		return ErrAlreadyHosted
	}
	if !b.hasSpace() {
		return ErrBatchFull
	}

	s.batch = b
	s.slot = b.count
	s.gen = b.gen[s.slot]
	b.sprites[s.slot] = s
	b.count++

	return s.Sync()
}

// syncSprite recomputes the sprite's six vertices and overwrites its slot.
func (b *Batch) syncSprite(s *Sprite) error {
	if err := b.validate(s); err != nil {
		return err
	}
	spriteVertices(s, b.slotData(s.slot))
	b.dirty = true
	return nil
}

// hideSprite zeroes the sprite's slot: degenerate geometry that draws
// nothing while keeping the slot occupied.
func (b *Batch) hideSprite(s *Sprite) error {
	if err := b.validate(s); err != nil {
		return err
	}
	clear(b.slotData(s.slot))
	b.dirty = true
	return nil
}

// removeSprite vacates the sprite's slot by swapping the last occupied
// slot into it. The sprite that lived in the last slot (if any) is
// re-pointed at the vacated slot with a fresh generation; the freed tail
// slot is zeroed so stale geometry is never drawn.
func (b *Batch) removeSprite(s *Sprite) error {
	if err := b.validate(s); err != nil {
		return err
	}

	slot, last := s.slot, b.count-1
	if slot != last {
		copy(b.slotData(slot), b.slotData(last))
		moved := b.sprites[last]
		b.gen[slot]++
		moved.slot = slot
		moved.gen = b.gen[slot]
		b.sprites[slot] = moved
	} else {
		b.gen[slot]++
	}

	clear(b.slotData(last))
	b.gen[last]++
	b.sprites[last] = nil
	b.count--

	s.detach()
	b.dirty = true
	return nil
}

func (b *Batch) slotData(slot int) []float32 {
	return b.verts[slot*QuadFloats : (slot+1)*QuadFloats]
}

// render uploads the packed vertex data if it has changed since the last
// upload, then issues the batch's single draw call. The full
// capacity-sized region is uploaded rather than a dirty sub-range; the
// dirty flag already collapses uploads to at most one per frame.
func (b *Batch) render(backend Backend, cam Camera, stats *Stats) error {
	if b.dirty {
		if err := backend.UploadQuadBuffer(b.buffer, b.verts); err != nil {
			return err
		}
		stats.Uploads++
		stats.UploadBytes += 4 * len(b.verts)
		b.dirty = false
	}

	backend.Draw(DrawCall{
		Program:     b.program,
		Buffer:      b.buffer,
		Texture:     b.texture.ID,
		VertexCount: b.count * QuadVerts,
		Proj:        cam.Proj,
		View:        cam.View,
	})
	if b.count > 0 {
		stats.DrawCalls++
		stats.Quads += b.count
	}
	return nil
}

// release frees the batch's GPU vertex storage. The batch must not be
// rendered afterwards.
func (b *Batch) release(backend Backend) {
	backend.DestroyBuffer(b.buffer)
	b.buffer = 0
}

// spriteVertices writes the sprite's two counter-clockwise triangles into
// out (QuadFloats values): position, replicated color, and texture
// coordinates sampled from the region corners. Top vertices take V0,
// bottom vertices V1.
func spriteVertices(s *Sprite, out []float32) {
	p1 := math.Add2f(s.pos, s.size)
	x0, y0 := s.pos[0], s.pos[1]
	x1, y1 := p1[0], p1[1]
	c := s.color
	tc := s.texCoords

	quad := [QuadVerts][4]float32{
		{x0, y0, tc.U0, tc.V1},
		{x1, y0, tc.U1, tc.V1},
		{x1, y1, tc.U1, tc.V0},
		{x1, y1, tc.U1, tc.V0},
		{x0, y1, tc.U0, tc.V0},
		{x0, y0, tc.U0, tc.V1},
	}

	for i, v := range quad {
		o := out[i*VertexStride : (i+1)*VertexStride]
		o[0], o[1] = v[0], v[1]
		o[2], o[3], o[4], o[5] = c.R, c.G, c.B, c.A
		o[6], o[7] = v[2], v[3]
	}
}
