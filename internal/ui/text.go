//go:build ebiten

package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"simon/internal/render"
)

// maxLabels bounds the cache; the game only ever shows a handful of strings.
const maxLabels = 64

// labelCache keeps pre-rendered text so each string is rasterised once and
// then scaled up, since basicfont is tiny at native size.
type labelCache struct {
	images map[string]*ebiten.Image
}

func newLabelCache() *labelCache {
	return &labelCache{images: map[string]*ebiten.Image{}}
}

func (c *labelCache) get(s string) *ebiten.Image {
	if img, ok := c.images[s]; ok {
		return img
	}
	if len(c.images) >= maxLabels {
		for k, img := range c.images {
			img.Dispose()
			delete(c.images, k)
		}
	}
	face := basicfont.Face7x13
	bounds := text.BoundString(face, s)
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil
	}
	img := ebiten.NewImage(bounds.Dx(), bounds.Dy())
	text.Draw(img, s, face, -bounds.Min.X, -bounds.Min.Y, render.Foreground)
	c.images[s] = img
	return img
}

// drawCentered draws s scaled by scale, horizontally centred on cx with its
// top edge at y.
func (c *labelCache) drawCentered(screen *ebiten.Image, s string, cx, y, scale int) {
	if s == "" {
		return
	}
	img := c.get(s)
	if img == nil {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	w := img.Bounds().Dx() * scale
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(float64(cx-w/2), float64(y))
	screen.DrawImage(img, op)
}
