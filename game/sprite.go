package game

import (
	"fmt"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/fudance/shipsim/asset"
)

// Sprite is an ebiten-backed image handle. One Sprite may be attached to any
// number of entities; the pixels are shared, never copied.
type Sprite struct {
	name string
	img  *ebiten.Image
}

// NewSprite wraps an ebiten image as a shareable handle.
func NewSprite(name string, img *ebiten.Image) *Sprite {
	return &Sprite{name: name, img: img}
}

// Size returns the image dimensions in pixels.
func (s *Sprite) Size() (float32, float32) {
	b := s.img.Bounds()
	return float32(b.Dx()), float32(b.Dy())
}

// Name returns the asset name the sprite was loaded under.
func (s *Sprite) Name() string {
	return s.name
}

// EbitenImage returns the underlying image for drawing.
func (s *Sprite) EbitenImage() *ebiten.Image {
	return s.img
}

// ImageLoader returns an asset loader that reads image files from dir.
func ImageLoader(dir string) asset.Loader {
	return func(name string) (asset.Handle, error) {
		img, _, err := ebitenutil.NewImageFromFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read image %s: %w", name, err)
		}
		return NewSprite(name, img), nil
	}
}
