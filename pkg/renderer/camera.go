// pkg/renderer/camera.go
// Copyright(c) 2026 ember contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import "github.com/go-gl/mathgl/mgl32"

// WorldExtent is the fixed extent, in world units, of the short axis of
// the orthographic view volume. One world unit therefore maps to a
// constant fraction of the window's short dimension regardless of
// resolution.
const WorldExtent = 100

// Camera holds the view and orthographic projection matrices for the
// current frame. It has no persistent identity beyond them; Update
// recomputes both from scratch.
type Camera struct {
	View mgl32.Mat4
	Proj mgl32.Mat4
}

// Update recomputes the projection from the viewport aspect ratio. With
// width >= height the horizontal extent scales by the aspect ratio and
// the vertical extent stays at WorldExtent, and vice versa.
func (c *Camera) Update(aspect float32) {
	if aspect >= 1 {
		c.Proj = mgl32.Ortho(0, WorldExtent*aspect, 0, WorldExtent, -1, 1)
	} else {
		c.Proj = mgl32.Ortho(0, WorldExtent, 0, WorldExtent/aspect, -1, 1)
	}

	c.View = mgl32.LookAtV(
		mgl32.Vec3{0, 0, 0},
		mgl32.Vec3{0, 0, -1},
		mgl32.Vec3{0, 1, 0})
}
