// pkg/renderer/opengl.go
// Copyright(c) 2026 ember contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"fmt"
	"strings"

	"github.com/ember2d/ember/pkg/log"
	"github.com/ember2d/ember/pkg/util"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// OpenGLBackend implements Backend on an OpenGL 4.1 core context. All
// methods must be called from the thread that owns the context.
type OpenGLBackend struct {
	lg *log.Logger

	buffers  map[BufferID]glBuffer
	nextBuf  BufferID
	uniforms map[ProgramID]glUniforms

	texturesBytes int
}

type glBuffer struct {
	vao, vbo uint32
	capacity int // quads
}

type glUniforms struct {
	proj, view, tex int32
}

// NewOpenGLBackend initializes OpenGL function pointers; the caller must
// have made a GL context current on this thread first.
func NewOpenGLBackend(lg *log.Logger) (*OpenGLBackend, error) {
	lg.Info("Starting OpenGL backend initialization")
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	vendor := gl.GoStr(gl.GetString(gl.VENDOR))
	renderer := gl.GoStr(gl.GetString(gl.RENDERER))
	lg.Infof("OpenGL vendor %s renderer %s", vendor, renderer)

	// Alpha-over is the only blend mode the quad path uses.
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	b := &OpenGLBackend{
		lg:       lg,
		buffers:  make(map[BufferID]glBuffer),
		nextBuf:  1,
		uniforms: make(map[ProgramID]glUniforms),
	}
	b.glCheck()

	lg.Info("Finished OpenGL backend initialization")
	return b, nil
}

func (b *OpenGLBackend) glCheck() {
	if err := gl.GetError(); err != gl.NO_ERROR {
		b.lg.Errorf("GL error %x", err)
	}
}

func (b *OpenGLBackend) CreateTexture(pix []byte, w, h int, format TextureFormat, opts TextureOptions) (TextureID, error) {
	if len(pix) != w*h*format.BytesPerPixel() {
		return 0, fmt.Errorf("texture data is %d bytes; expected %d for %dx%d %s",
			len(pix), w*h*format.BytesPerPixel(), w, h, format)
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	// RGB and Red rows are not 4-byte aligned in general.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	var internal int32
	var glFormat uint32
	switch format {
	case FormatRGBA:
		internal, glFormat = gl.RGBA8, gl.RGBA
	case FormatRGB:
		internal, glFormat = gl.RGB8, gl.RGB
	default:
		internal, glFormat = gl.R8, gl.RED
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(w), int32(h), 0, glFormat,
		gl.UNSIGNED_BYTE, gl.Ptr(pix))

	filter := int32(util.Select(opts.LinearFilter, gl.LINEAR, gl.NEAREST))
	wrap := int32(util.Select(opts.ClampToEdge, gl.CLAMP_TO_EDGE, gl.MIRRORED_REPEAT))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)

	b.glCheck()

	b.texturesBytes += len(pix)
	b.lg.Infof("Created tex id %d: %d bytes -> %.2f MiB of textures total",
		id, len(pix), float32(b.texturesBytes)/(1024*1024))

	return TextureID(id), nil
}

func (b *OpenGLBackend) DestroyTexture(id TextureID) {
	tid := uint32(id)
	gl.DeleteTextures(1, &tid)
}

func (b *OpenGLBackend) CreateProgram(config ShaderConfig) (ProgramID, error) {
	prog, err := newProgram(config.VertexSource, config.FragmentSource)
	if err != nil {
		return 0, err
	}

	id := ProgramID(prog)
	b.uniforms[id] = glUniforms{
		proj: gl.GetUniformLocation(prog, gl.Str("uProj\x00")),
		view: gl.GetUniformLocation(prog, gl.Str("uView\x00")),
		tex:  gl.GetUniformLocation(prog, gl.Str("uTexture\x00")),
	}
	b.glCheck()
	return id, nil
}

func (b *OpenGLBackend) DestroyProgram(id ProgramID) {
	gl.DeleteProgram(uint32(id))
	delete(b.uniforms, id)
}

func (b *OpenGLBackend) CreateQuadBuffer(capacity int) (BufferID, error) {
	if capacity <= 0 {
		return 0, fmt.Errorf("quad buffer capacity %d must be positive", capacity)
	}

	var buf glBuffer
	buf.capacity = capacity

	gl.GenVertexArrays(1, &buf.vao)
	gl.BindVertexArray(buf.vao)

	gl.GenBuffers(1, &buf.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, buf.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, capacity*QuadFloats*4, nil, gl.DYNAMIC_DRAW)

	stride := int32(VertexStride * 4)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, gl.PtrOffset(2*4))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(6*4))
	gl.EnableVertexAttribArray(2)

	b.glCheck()

	id := b.nextBuf
	b.nextBuf++
	b.buffers[id] = buf
	return id, nil
}

func (b *OpenGLBackend) UploadQuadBuffer(id BufferID, verts []float32) error {
	buf, ok := b.buffers[id]
	if !ok {
		return fmt.Errorf("upload to unknown buffer %d", id)
	}
	if len(verts) > buf.capacity*QuadFloats {
		return fmt.Errorf("uploading %d floats to buffer of capacity %d quads", len(verts), buf.capacity)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, buf.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(verts))
	b.glCheck()
	return nil
}

func (b *OpenGLBackend) DestroyBuffer(id BufferID) {
	buf, ok := b.buffers[id]
	if !ok {
		return
	}
	gl.DeleteBuffers(1, &buf.vbo)
	gl.DeleteVertexArrays(1, &buf.vao)
	delete(b.buffers, id)
}

func (b *OpenGLBackend) Draw(call DrawCall) {
	if call.VertexCount == 0 {
		return
	}
	buf, ok := b.buffers[call.Buffer]
	if !ok {
		b.lg.Errorf("draw with unknown buffer %d", call.Buffer)
		return
	}

	gl.UseProgram(uint32(call.Program))
	if u, ok := b.uniforms[call.Program]; ok {
		proj, view := call.Proj, call.View
		gl.UniformMatrix4fv(u.proj, 1, false, &proj[0])
		gl.UniformMatrix4fv(u.view, 1, false, &view[0])
		gl.Uniform1i(u.tex, 0) // tex unit 0
	}

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, uint32(call.Texture))

	gl.BindVertexArray(buf.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(call.VertexCount))
	b.glCheck()
}

func (b *OpenGLBackend) Clear(color RGBA) {
	gl.ClearColor(color.R, color.G, color.B, color.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (b *OpenGLBackend) SetViewport(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (b *OpenGLBackend) Dispose() {
	for id := range b.buffers {
		b.DestroyBuffer(id)
	}
	for id := range b.uniforms {
		gl.DeleteProgram(uint32(id))
	}
	b.uniforms = make(map[ProgramID]glUniforms)
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}

	program := gl.CreateProgram()

	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))

		return 0, fmt.Errorf("failed to link program: %v", infoLog)
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))

		return 0, fmt.Errorf("failed to compile %v: %v", source, infoLog)
	}

	return shader, nil
}
