// pkg/renderer/fake_test.go
// Copyright(c) 2026 ember contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"fmt"
	"slices"
	"testing"

	"github.com/ember2d/ember/pkg/log"
)

// fakeBackend records every Backend call so tests can assert on batching
// and upload behavior without a graphics context.
type fakeBackend struct {
	nextID uint32

	textures  map[TextureID]bool
	programs  map[ProgramID]bool
	buffers   map[BufferID][]float32 // last uploaded contents
	bufferCap map[BufferID]int

	uploads int
	draws   []DrawCall
	clears  []RGBA
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		textures:  make(map[TextureID]bool),
		programs:  make(map[ProgramID]bool),
		buffers:   make(map[BufferID][]float32),
		bufferCap: make(map[BufferID]int),
	}
}

func (f *fakeBackend) CreateTexture(pix []byte, w, h int, format TextureFormat, opts TextureOptions) (TextureID, error) {
	if len(pix) != w*h*format.BytesPerPixel() {
		return 0, fmt.Errorf("bad pixel data length %d", len(pix))
	}
	f.nextID++
	id := TextureID(f.nextID)
	f.textures[id] = true
	return id, nil
}

func (f *fakeBackend) DestroyTexture(id TextureID) { delete(f.textures, id) }

func (f *fakeBackend) CreateProgram(config ShaderConfig) (ProgramID, error) {
	f.nextID++
	id := ProgramID(f.nextID)
	f.programs[id] = true
	return id, nil
}

func (f *fakeBackend) DestroyProgram(id ProgramID) { delete(f.programs, id) }

func (f *fakeBackend) CreateQuadBuffer(capacity int) (BufferID, error) {
	f.nextID++
	id := BufferID(f.nextID)
	f.buffers[id] = nil
	f.bufferCap[id] = capacity
	return id, nil
}

func (f *fakeBackend) UploadQuadBuffer(id BufferID, verts []float32) error {
	if _, ok := f.buffers[id]; !ok {
		return fmt.Errorf("upload to unknown buffer %d", id)
	}
	if len(verts) != f.bufferCap[id]*QuadFloats {
		return fmt.Errorf("upload of %d floats to buffer of capacity %d quads",
			len(verts), f.bufferCap[id])
	}
	f.buffers[id] = slices.Clone(verts)
	f.uploads++
	return nil
}

func (f *fakeBackend) DestroyBuffer(id BufferID) {
	delete(f.buffers, id)
	delete(f.bufferCap, id)
}

func (f *fakeBackend) Draw(call DrawCall) { f.draws = append(f.draws, call) }

func (f *fakeBackend) Clear(color RGBA) { f.clears = append(f.clears, color) }

func (f *fakeBackend) SetViewport(w, h int) {}

func (f *fakeBackend) Dispose() {}

func testTexture(t *testing.T, b Backend) *Texture {
	t.Helper()
	tex, err := NewTexture(b, []byte{255, 255, 255, 255}, 1, 1, FormatRGBA, TextureOptions{})
	if err != nil {
		t.Fatalf("creating test texture: %v", err)
	}
	return tex
}

// A nil Logger discards debug/info output, which is what tests want.
func testLogger() *log.Logger { return nil }
