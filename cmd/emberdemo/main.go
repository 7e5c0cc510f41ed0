// cmd/emberdemo/main.go
// Copyright(c) 2026 ember contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// emberdemo opens a window and renders a couple of textured sprites and
// a line of text, reporting frame times once a second. One sprite
// shuttles along a fixed path while the other sits at the path's
// midpoint cycling its tint.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/ember2d/ember/pkg/log"
	"github.com/ember2d/ember/pkg/math"
	"github.com/ember2d/ember/pkg/platform"
	"github.com/ember2d/ember/pkg/renderer"
)

func init() {
	// OpenGL and GLFW calls must all happen on the main thread.
	runtime.LockOSThread()
}

func main() {
	texturePath := flag.String("texture", "", "path to a sprite texture image")
	fontPath := flag.String("font", "", "path to a TTF/OTF font")
	speed := flag.Float64("speed", 30, "sprite speed in world units per second")
	logLevel := flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	flag.Parse()

	lg := log.New(*logLevel, "")

	if err := run(*texturePath, *fontPath, float32(*speed), lg); err != nil {
		lg.Errorf("%v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(texturePath, fontPath string, speed float32, lg *log.Logger) error {
	win, err := platform.New(platform.Config{
		Title:     "ember demo",
		Size:      [2]int{854, 480},
		Resizable: true,
		VSync:     true,
	}, lg)
	if err != nil {
		return err
	}
	defer win.Dispose()

	backend, err := renderer.NewOpenGLBackend(lg)
	if err != nil {
		return err
	}
	defer backend.Dispose()

	win.OnResize(func(w, h int) { backend.SetViewport(w, h) })
	w, h := win.FramebufferSize()
	backend.SetViewport(w, h)

	scene, err := renderer.NewScene(backend, renderer.SceneConfig{
		ClearColor: renderer.RGBFromHex(0x0000ff).WithAlpha(1),
	}, lg)
	if err != nil {
		return err
	}
	defer scene.Shutdown()

	tex, err := loadDemoTexture(backend, texturePath)
	if err != nil {
		return err
	}
	defer tex.Release(backend)

	pathA := [2]float32{10, 10}
	pathB := [2]float32{65, 45}
	shuttle := renderer.NewSprite(pathA, [2]float32{25, 25}, tex)
	pulser := renderer.NewSprite(math.Mid2f(pathA, pathB), [2]float32{25, 25}, tex)
	for _, s := range []*renderer.Sprite{pulser, shuttle} {
		if err := scene.AddSprite(s); err != nil {
			return err
		}
	}

	speed = math.Clamp(speed, 1, 500)
	period := math.Distance2f(pathA, pathB) / speed
	warm := renderer.RGBFromHex(0xff9933)
	cool := renderer.RGBFromHex(0x33ccff)

	var font *renderer.Font
	if fontPath != "" {
		font, err = renderer.LoadFont(backend, fontPath, lg)
		if err != nil {
			return err
		}
		defer font.Release(backend)

		text := renderer.NewText(font, "Hello, ember!", [2]float32{0, 50},
			0.15, 0.5, renderer.RGBFromUInt8(255, 221, 178).WithAlpha(1))
		if err := scene.AddText(text); err != nil {
			return err
		}
	}

	frames := 0
	start := time.Now()
	lastReport := start
	for !win.ShouldClose() {
		// Triangle wave over the cycle period: out and back at constant
		// speed.
		cycle := float32(time.Since(start).Seconds()) / (2 * period)
		frac := cycle - float32(int(cycle))
		t := 1 - 2*math.Abs(frac-0.5)

		shuttle.SetPos(math.Lerp2f(t, pathA, pathB))
		if err := shuttle.Sync(); err != nil {
			return err
		}
		pulser.SetColor(renderer.LerpRGB(t, warm, cool).WithAlpha(1))
		if err := pulser.Sync(); err != nil {
			return err
		}

		stats, err := scene.RenderFrame(win.AspectRatio())
		if err != nil {
			return err
		}
		win.EndFrame()

		frames++
		if elapsed := time.Since(lastReport); elapsed >= time.Second {
			lg.Infof("%.2f ms/frame (%d frames), %s",
				float64(elapsed.Milliseconds())/float64(frames), frames, stats)
			frames = 0
			lastReport = time.Now()
		}
	}

	return nil
}

// loadDemoTexture loads the given image, or builds an 8x8 checkerboard
// when no path is given so the demo runs without assets.
func loadDemoTexture(backend renderer.Backend, path string) (*renderer.Texture, error) {
	if path != "" {
		return renderer.LoadTexture(backend, path, renderer.FormatRGBA)
	}

	const n = 8
	pix := make([]byte, n*n*4)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			v := byte(64)
			if (x+y)%2 == 0 {
				v = 230
			}
			o := (y*n + x) * 4
			pix[o], pix[o+1], pix[o+2], pix[o+3] = v, v, v, 255
		}
	}
	return renderer.NewTexture(backend, pix, n, n, renderer.FormatRGBA,
		renderer.TextureOptions{})
}
