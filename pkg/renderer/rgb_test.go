// pkg/renderer/rgb_test.go
// Copyright(c) 2026 ember contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import "testing"

func TestRGBFromHex(t *testing.T) {
	if got := RGBFromHex(0xff0000); got != (RGB{1, 0, 0}) {
		t.Errorf("0xff0000 = %+v", got)
	}
	if got := RGBFromHex(0x00ff00); got != (RGB{0, 1, 0}) {
		t.Errorf("0x00ff00 = %+v", got)
	}
	if got := RGBFromHex(0x0000ff); got != (RGB{0, 0, 1}) {
		t.Errorf("0x0000ff = %+v", got)
	}
}

func TestRGBFromUInt8(t *testing.T) {
	if got := RGBFromUInt8(255, 0, 255); got != (RGB{1, 0, 1}) {
		t.Errorf("RGBFromUInt8 = %+v", got)
	}
}

func TestLerpRGB(t *testing.T) {
	black, white := RGB{0, 0, 0}, RGB{1, 1, 1}
	if got := LerpRGB(0.5, black, white); got != (RGB{0.5, 0.5, 0.5}) {
		t.Errorf("LerpRGB = %+v", got)
	}
	if got := LerpRGB(0, black, white); got != black {
		t.Errorf("LerpRGB(0) = %+v", got)
	}
}

func TestWithAlpha(t *testing.T) {
	c := RGB{0.25, 0.5, 0.75}.WithAlpha(0.5)
	if c != (RGBA{0.25, 0.5, 0.75, 0.5}) {
		t.Errorf("WithAlpha = %+v", c)
	}
}
