// Package gfx holds the drawable resources shared between entities: textures decoded once
// at startup and animation clips that step through source rectangles of a texture.
package gfx

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrEmptyPath is returned when a texture is requested without a path.
var ErrEmptyPath = errors.New("gfx: empty texture path")

// Texture is a decoded image. It is immutable after load and shared by pointer.
// Image is nil for textures loaded without a graphics context (headless runs);
// Bounds is always populated.
type Texture struct {
	Path   string
	Bounds image.Rectangle
	Image  *ebiten.Image
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int {
	return t.Bounds.Dx()
}

// Height returns the texture height in pixels.
func (t *Texture) Height() int {
	return t.Bounds.Dy()
}

// Sub returns the region r of the texture as a sub-image, or nil for headless textures.
func (t *Texture) Sub(r image.Rectangle) *ebiten.Image {
	if t.Image == nil {
		return nil
	}
	sub, ok := t.Image.SubImage(r).(*ebiten.Image)
	if !ok {
		return nil
	}
	return sub
}

// LoadTexture reads and decodes the image at path and uploads it to the GPU.
func LoadTexture(path string) (*Texture, error) {
	b, err := readTexture(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decoding texture %s: %w", path, err)
	}
	return &Texture{
		Path:   path,
		Bounds: img.Bounds(),
		Image:  ebiten.NewImageFromImage(img),
	}, nil
}

// LoadTextureHeadless reads only the image header at path. The returned texture has
// bounds but no image, which is all the simulation needs when nothing is rendered.
func LoadTextureHeadless(path string) (*Texture, error) {
	b, err := readTexture(path)
	if err != nil {
		return nil, err
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decoding texture %s: %w", path, err)
	}
	return &Texture{
		Path:   path,
		Bounds: image.Rect(0, 0, cfg.Width, cfg.Height),
	}, nil
}

func readTexture(path string) ([]byte, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading texture: %w", err)
	}
	return b, nil
}
