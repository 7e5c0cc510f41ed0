// pkg/renderer/texture_test.go
// Copyright(c) 2026 ember contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func TestPackPixels(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 0, G: 255, B: 0, A: 255})

	if got := packPixels(img, FormatRGBA); !bytes.Equal(got, []byte{255, 0, 0, 255, 0, 255, 0, 255}) {
		t.Errorf("RGBA = %v", got)
	}
	if got := packPixels(img, FormatRGB); !bytes.Equal(got, []byte{255, 0, 0, 0, 255, 0}) {
		t.Errorf("RGB = %v", got)
	}

	red := packPixels(img, FormatRed)
	if len(red) != 2 {
		t.Fatalf("Red length = %d", len(red))
	}
	// Green carries more luma weight than red.
	if red[1] <= red[0] {
		t.Errorf("luma(green)=%d should exceed luma(red)=%d", red[1], red[0])
	}
}

func TestExpandRedToRGBA(t *testing.T) {
	got := expandRedToRGBA([]byte{0, 1, 2, 255})
	want := []byte{
		0, 0, 0, 0,
		1, 1, 1, 0, // luminance 1 is still transparent
		2, 2, 2, 255,
		255, 255, 255, 255,
	}
	if !bytes.Equal(got, want) {
		t.Errorf("expandRedToRGBA = %v, want %v", got, want)
	}
}

func TestNewTextureValidatesLength(t *testing.T) {
	fb := newFakeBackend()
	if _, err := NewTexture(fb, make([]byte, 5), 1, 1, FormatRGBA, TextureOptions{}); err == nil {
		t.Error("mis-sized pixel data accepted")
	}
	if _, err := NewTexture(fb, make([]byte, 4), 2, 2, FormatRed, TextureOptions{}); err != nil {
		t.Errorf("valid single-channel data rejected: %v", err)
	}
}

func TestTextureRelease(t *testing.T) {
	fb := newFakeBackend()
	tex := testTexture(t, fb)
	id := tex.ID

	tex.Release(fb)
	if fb.textures[id] {
		t.Error("texture still alive after Release")
	}
	if tex.ID != 0 {
		t.Error("released texture keeps its handle")
	}
}

func TestTextureFormat(t *testing.T) {
	for _, tc := range []struct {
		format TextureFormat
		bpp    int
		name   string
	}{
		{FormatRGBA, 4, "RGBA"},
		{FormatRGB, 3, "RGB"},
		{FormatRed, 1, "Red"},
	} {
		if got := tc.format.BytesPerPixel(); got != tc.bpp {
			t.Errorf("%s: bytes per pixel = %d, want %d", tc.name, got, tc.bpp)
		}
		if got := tc.format.String(); got != tc.name {
			t.Errorf("format name = %q, want %q", got, tc.name)
		}
	}
}
