//go:build ebiten

package ui

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"simon/internal/core"
	"simon/internal/render"
	"simon/internal/round"
)

// Board draws the status strip and the four panels.
type Board struct {
	size   core.Size
	layout core.Board
	labels *labelCache
}

// NewBoard constructs a Board for a surface of the given size.
func NewBoard(size core.Size) *Board {
	return &Board{size: size, layout: NewLayout(size), labels: newLabelCache()}
}

// Layout returns the panel hit regions.
func (b *Board) Layout() core.Board { return b.layout }

// Draw paints f onto screen.
func (b *Board) Draw(screen *ebiten.Image, f round.Frame) {
	screen.Fill(render.Background)
	for _, p := range core.Panels {
		r := b.layout.Rect(p)
		sub := screen.SubImage(image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)).(*ebiten.Image)
		sub.Fill(render.PanelColor(p, f.Highlight == p))
	}
	b.labels.drawCentered(screen, fmt.Sprintf("Level: %d", f.Level), b.size.W/2, 12, 3)
	b.labels.drawCentered(screen, f.Message, b.size.W/2, 62, 2)
}
