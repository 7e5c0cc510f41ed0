// pkg/renderer/camera_test.go
// Copyright(c) 2026 ember contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCameraWideAspect(t *testing.T) {
	var c Camera
	c.Update(2)

	if want := mgl32.Ortho(0, 200, 0, 100, -1, 1); c.Proj != want {
		t.Errorf("proj for aspect 2 = %v, want %v", c.Proj, want)
	}
}

func TestCameraTallAspect(t *testing.T) {
	var c Camera
	c.Update(0.5)

	if want := mgl32.Ortho(0, 100, 0, 200, -1, 1); c.Proj != want {
		t.Errorf("proj for aspect 0.5 = %v, want %v", c.Proj, want)
	}
}

func TestCameraSquareAspect(t *testing.T) {
	var c Camera
	c.Update(1)

	// The square case takes the wide branch; both extents are WorldExtent.
	if want := mgl32.Ortho(0, 100, 0, 100, -1, 1); c.Proj != want {
		t.Errorf("proj for aspect 1 = %v, want %v", c.Proj, want)
	}
	want := mgl32.LookAtV(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0})
	if c.View != want {
		t.Errorf("view = %v, want %v", c.View, want)
	}
}
