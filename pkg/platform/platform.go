// pkg/platform/platform.go
// Copyright(c) 2026 ember contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package platform wraps GLFW window and context management. All of its
// entry points must be called from the main OS thread; callers are
// expected to runtime.LockOSThread in an init function.
package platform

import (
	"fmt"

	"github.com/ember2d/ember/pkg/log"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Config describes the window to create. The zero value is usable but
// gives an untitled window at a default size.
type Config struct {
	Title     string
	Size      [2]int
	Resizable bool
	VSync     bool
}

// Window owns the GLFW window and its OpenGL context. The context is
// current on the calling thread after New returns.
type Window struct {
	win    *glfw.Window
	config Config
	lg     *log.Logger

	onResize func(width, height int)
}

// New initializes GLFW, creates the window, and makes its OpenGL 4.1
// core context current. On error GLFW is terminated before returning.
func New(config Config, lg *log.Logger) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initializing glfw: %w", err)
	}
	lg.Infof("GLFW: %s", glfw.GetVersionString())

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	// Required for core contexts on MacOS.
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if config.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}

	if config.Size[0] <= 0 || config.Size[1] <= 0 {
		config.Size = [2]int{854, 480}
	}

	win, err := glfw.CreateWindow(config.Size[0], config.Size[1], config.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("creating window: %w", err)
	}
	win.MakeContextCurrent()

	if config.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &Window{win: win, config: config, lg: lg}
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		if w.onResize != nil {
			w.onResize(width, height)
		}
	})

	return w, nil
}

// FramebufferSize returns the framebuffer dimensions in pixels, which on
// high-DPI displays differ from the window size.
func (w *Window) FramebufferSize() (int, int) {
	return w.win.GetFramebufferSize()
}

// AspectRatio returns the framebuffer width/height ratio.
func (w *Window) AspectRatio() float32 {
	width, height := w.win.GetFramebufferSize()
	if height == 0 {
		return 1
	}
	return float32(width) / float32(height)
}

// OnResize registers a callback invoked with the new framebuffer size
// whenever the window is resized.
func (w *Window) OnResize(fn func(width, height int)) {
	w.onResize = fn
}

// ShouldClose reports whether the user has requested the window close.
func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

// IsKeyDown reports whether the given key is currently held.
func (w *Window) IsKeyDown(key glfw.Key) bool {
	return w.win.GetKey(key) == glfw.Press
}

// SetKeyCallback registers a raw GLFW key callback.
func (w *Window) SetKeyCallback(fn glfw.KeyCallback) {
	w.win.SetKeyCallback(fn)
}

// EndFrame presents the rendered frame and pumps the event queue.
func (w *Window) EndFrame() {
	w.win.SwapBuffers()
	glfw.PollEvents()
}

// Dispose destroys the window and shuts GLFW down.
func (w *Window) Dispose() {
	w.win.Destroy()
	glfw.Terminate()
	w.lg.Info("GLFW terminated")
}
