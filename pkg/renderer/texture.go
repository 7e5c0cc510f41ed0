// pkg/renderer/texture.go
// Copyright(c) 2026 ember contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"

	"github.com/ember2d/ember/pkg/util"

	// Image decoders; stdlib formats plus the golang.org/x/image extras.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// TextureFormat gives the channel layout of a texture's pixel data.
type TextureFormat int

const (
	FormatRGBA TextureFormat = iota
	FormatRGB
	FormatRed // single channel
)

func (f TextureFormat) String() string {
	switch f {
	case FormatRGBA:
		return "RGBA"
	case FormatRGB:
		return "RGB"
	case FormatRed:
		return "Red"
	default:
		return fmt.Sprintf("TextureFormat(%d)", int(f))
	}
}

// BytesPerPixel returns the packed size of one pixel in the format.
func (f TextureFormat) BytesPerPixel() int {
	switch f {
	case FormatRGBA:
		return 4
	case FormatRGB:
		return 3
	default:
		return 1
	}
}

// Texture is a GPU image resource plus its format tag. It is immutable
// after creation; batches and sprites hold non-owning references and must
// not outlive it.
type Texture struct {
	ID            TextureID
	Format        TextureFormat
	Width, Height int
}

// LoadTexture decodes the image file at the given path (zstd-compressed
// files are handled transparently), converts it to the requested channel
// layout, and uploads it to the GPU. A missing or undecodable file is an
// error; there is no fallback texture.
func LoadTexture(b Backend, path string, format TextureFormat) (*Texture, error) {
	data, err := util.LoadResourceBytes(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: decoding image: %w", path, err)
	}

	return NewTextureFromImage(b, img, format)
}

// NewTextureFromImage converts img to the requested format and uploads it.
func NewTextureFromImage(b Backend, img image.Image, format TextureFormat) (*Texture, error) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	pix := packPixels(img, format)
	return NewTexture(b, pix, w, h, format, TextureOptions{})
}

// NewTexture uploads already-packed pixel data.
func NewTexture(b Backend, pix []byte, w, h int, format TextureFormat, opts TextureOptions) (*Texture, error) {
	if len(pix) != w*h*format.BytesPerPixel() {
		return nil, fmt.Errorf("texture data is %d bytes; expected %d for %dx%d %s",
			len(pix), w*h*format.BytesPerPixel(), w, h, format)
	}

	id, err := b.CreateTexture(pix, w, h, format, opts)
	if err != nil {
		return nil, err
	}
	return &Texture{ID: id, Format: format, Width: w, Height: h}, nil
}

// Release frees the GPU-side image. The Texture must not be used
// afterwards.
func (t *Texture) Release(b Backend) {
	b.DestroyTexture(t.ID)
	t.ID = 0
}

// packPixels converts any image.Image into tightly packed bytes in the
// requested channel layout.
func packPixels(img image.Image, format TextureFormat) []byte {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	// Normalize to RGBA first; image/draw handles every source type.
	rgba, ok := img.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(image.Rect(0, 0, w, h))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}

	switch format {
	case FormatRGBA:
		return rgba.Pix

	case FormatRGB:
		pix := make([]byte, w*h*3)
		for i := 0; i < w*h; i++ {
			pix[3*i] = rgba.Pix[4*i]
			pix[3*i+1] = rgba.Pix[4*i+1]
			pix[3*i+2] = rgba.Pix[4*i+2]
		}
		return pix

	default: // FormatRed
		pix := make([]byte, w*h)
		for i := 0; i < w*h; i++ {
			r, g, b := int(rgba.Pix[4*i]), int(rgba.Pix[4*i+1]), int(rgba.Pix[4*i+2])
			// Standard luma weights, in 16.16 fixed point.
			pix[i] = uint8((19595*r + 38470*g + 7471*b + 1<<15) >> 16)
		}
		return pix
	}
}

// expandRedToRGBA converts a single-channel bitmap to RGBA by replicating
// luminance into RGB and thresholding luminance > 1 into a binary alpha
// channel. This is how glyph atlases become renderable with the standard
// modulate shader.
func expandRedToRGBA(pix []byte) []byte {
	out := make([]byte, 4*len(pix))
	for i, v := range pix {
		out[4*i] = v
		out[4*i+1] = v
		out[4*i+2] = v
		if v > 1 {
			out[4*i+3] = 255
		}
	}
	return out
}
