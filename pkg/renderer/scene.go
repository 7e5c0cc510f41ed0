// pkg/renderer/scene.go
// Copyright(c) 2026 ember contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"log/slog"

	"github.com/ember2d/ember/pkg/log"
)

// SceneConfig configures a Scene. The zero value selects the default
// shader and batch capacity.
type SceneConfig struct {
	// Shader supplies the program used for every batch; empty sources
	// select DefaultShaderConfig.
	Shader ShaderConfig

	// BatchCapacity is the sprite capacity of each batch; zero selects
	// DefaultBatchCapacity.
	BatchCapacity int

	ClearColor RGBA
}

// Scene routes sprites to batches by texture affinity and drives the
// per-frame upload + draw cycle. Batches are rendered in registration
// order; with no depth test, later batches paint over earlier ones.
//
// All methods must be called from the thread driving the backend; the
// Scene performs no locking of its own.
type Scene struct {
	backend Backend
	lg      *log.Logger

	shader        ShaderConfig
	program       ProgramID
	batchCapacity int
	clearColor    RGBA

	batches []*Batch
	camera  Camera

	frameStats Stats
}

// NewScene compiles the configured shader program and returns an empty
// Scene. Shader compile/link failure is unrecoverable here; the error is
// returned for the caller to report and terminate on.
func NewScene(backend Backend, config SceneConfig, lg *log.Logger) (*Scene, error) {
	shader := config.Shader
	if shader.VertexSource == "" || shader.FragmentSource == "" {
		shader = DefaultShaderConfig()
	}
	capacity := config.BatchCapacity
	if capacity <= 0 {
		capacity = DefaultBatchCapacity
	}

	program, err := backend.CreateProgram(shader)
	if err != nil {
		return nil, err
	}

	return &Scene{
		backend:       backend,
		lg:            lg,
		shader:        shader,
		program:       program,
		batchCapacity: capacity,
		clearColor:    config.ClearColor,
	}, nil
}

func (sc *Scene) SetClearColor(c RGBA) {
	sc.clearColor = c
}

// AddSprite hosts the sprite in a batch: the first existing batch whose
// texture matches the sprite's and that has space, else a newly created
// batch. Sprites sharing a texture are not guaranteed to share a batch
// once one fills; multiple batches per texture are expected.
func (sc *Scene) AddSprite(s *Sprite) error {
	if s.IsAdded() {
		return ErrAlreadyHosted
	}
	if s.texture == nil {
		return ErrNilTexture
	}

	for _, b := range sc.batches {
		if b.texture == s.texture && b.hasSpace() {
			return b.add(s)
		}
	}

	b, err := newBatch(sc.backend, s.texture, sc.program, sc.batchCapacity)
	if err != nil {
		return err
	}
	sc.batches = append(sc.batches, b)
	sc.lg.Debug("created sprite batch",
		slog.Int("batches", len(sc.batches)),
		slog.Int("capacity", sc.batchCapacity))

	return b.add(s)
}

// AddText hosts every sprite currently owned by the text.
func (sc *Scene) AddText(t *Text) error {
	for _, s := range t.Sprites() {
		if err := sc.AddSprite(s); err != nil {
			return err
		}
	}
	return nil
}

// RefreshText rebuilds the text's sprite sequence (detaching the stale
// sprites from their batches first) and re-hosts the new sprites.
func (sc *Scene) RefreshText(t *Text) error {
	if err := t.Rebuild(); err != nil {
		return err
	}
	return sc.AddText(t)
}

// RenderFrame clears the framebuffer, recomputes the camera from the
// given aspect ratio, and renders every batch in registration order.
// Batches whose CPU-side vertex data changed upload once; unchanged
// batches draw from their existing GPU buffer.
func (sc *Scene) RenderFrame(aspect float32) (Stats, error) {
	sc.backend.Clear(sc.clearColor)
	sc.camera.Update(aspect)

	sc.frameStats = Stats{}
	for _, b := range sc.batches {
		if err := b.render(sc.backend, sc.camera, &sc.frameStats); err != nil {
			return sc.frameStats, err
		}
	}
	return sc.frameStats, nil
}

// Batches returns the number of registered batches.
func (sc *Scene) Batches() int { return len(sc.batches) }

// Shutdown releases every batch's GPU vertex storage and the scene's
// shader program. It must be called before the graphics context is
// destroyed; nothing is released by garbage collection.
func (sc *Scene) Shutdown() {
	for _, b := range sc.batches {
		b.release(sc.backend)
	}
	sc.batches = nil
	sc.backend.DestroyProgram(sc.program)
	sc.lg.Info("scene shut down")
}
