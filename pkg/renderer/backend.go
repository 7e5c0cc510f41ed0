// pkg/renderer/backend.go
// Copyright(c) 2026 ember contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

// Handles for backend-owned GPU resources. They are opaque to everything
// above the Backend interface.
type (
	TextureID uint32
	ProgramID uint32
	BufferID  uint32
)

// TextureOptions selects filtering and wrap behavior when a texture is
// created. Sprites generally want nearest/mirrored (crisp pixel art);
// glyph atlases want linear/clamped.
type TextureOptions struct {
	LinearFilter bool
	ClampToEdge  bool
}

// ShaderConfig carries the GLSL source for the program used to draw quad
// batches. It is explicit data passed to NewScene rather than a
// compiled-in global so that tests and embedders can substitute their
// own.
type ShaderConfig struct {
	VertexSource   string
	FragmentSource string
}

const defaultVertexShader = `
#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in vec4 aColor;
layout(location = 2) in vec2 aTexCoord;

uniform mat4 uProj;
uniform mat4 uView;

out vec4 vColor;
out vec2 vTexCoord;

void main() {
    gl_Position = uProj * uView * vec4(aPos, 0.0, 1.0);
    vColor = aColor;
    vTexCoord = aTexCoord;
}
`

const defaultFragmentShader = `
#version 410 core

in vec4 vColor;
in vec2 vTexCoord;

uniform sampler2D uTexture;

out vec4 outColor;

void main() {
    outColor = vColor * texture(uTexture, vTexCoord);
}
`

// DefaultShaderConfig returns the standard textured-quad shader: position,
// per-vertex color, and texture coordinates, modulated against a single
// bound texture.
func DefaultShaderConfig() ShaderConfig {
	return ShaderConfig{
		VertexSource:   defaultVertexShader,
		FragmentSource: defaultFragmentShader,
	}
}

// DrawCall describes one batched draw: the full state needed to issue it,
// with no other state carried between calls.
type DrawCall struct {
	Program     ProgramID
	Buffer      BufferID
	Texture     TextureID
	VertexCount int
	Proj, View  mgl32.Mat4
}

// Backend abstracts the GPU calls the renderer needs. There is one real
// implementation (OpenGLBackend); tests substitute a recording fake so
// that batching and upload behavior can be asserted without a graphics
// context.
type Backend interface {
	// CreateTexture uploads pixel data in the given format and returns a
	// texture handle. pix holds w*h packed pixels, row-major.
	CreateTexture(pix []byte, w, h int, format TextureFormat, opts TextureOptions) (TextureID, error)
	DestroyTexture(TextureID)

	// CreateProgram compiles and links the shader pair in config.
	CreateProgram(config ShaderConfig) (ProgramID, error)
	DestroyProgram(ProgramID)

	// CreateQuadBuffer allocates GPU vertex storage for capacity quads
	// (capacity*6 vertices of VertexStride float32s).
	CreateQuadBuffer(capacity int) (BufferID, error)
	// UploadQuadBuffer replaces the buffer's contents with verts.
	UploadQuadBuffer(id BufferID, verts []float32) error
	DestroyBuffer(BufferID)

	// Draw issues a single draw call for the first VertexCount vertices
	// of the bound buffer.
	Draw(call DrawCall)

	Clear(color RGBA)
	SetViewport(w, h int)

	// Dispose releases resources allocated by the backend itself.
	Dispose()
}

// Vertex layout: 2 position + 4 color + 2 texcoord float32s, interleaved.
const (
	VertexStride = 8
	QuadVerts    = 6
	QuadFloats   = QuadVerts * VertexStride
)

// Stats accumulates per-frame rendering statistics.
type Stats struct {
	DrawCalls   int
	Quads       int
	Uploads     int
	UploadBytes int
}

func (s *Stats) Merge(o Stats) {
	s.DrawCalls += o.DrawCalls
	s.Quads += o.Quads
	s.Uploads += o.Uploads
	s.UploadBytes += o.UploadBytes
}

func (s Stats) String() string {
	return fmt.Sprintf("%d draw calls: %d quads, %d uploads (%.2f MB)",
		s.DrawCalls, s.Quads, s.Uploads, float32(s.UploadBytes)/(1024*1024))
}

func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("draw_calls", s.DrawCalls),
		slog.Int("quads", s.Quads),
		slog.Int("uploads", s.Uploads),
		slog.Int("upload_bytes", s.UploadBytes),
	)
}
