//go:build !ebiten

package ui

import (
	"simon/internal/core"
	"simon/internal/round"
)

// Board is a no-op placeholder for headless builds.
type Board struct {
	layout core.Board
}

// NewBoard returns a board that only knows its layout.
func NewBoard(size core.Size) *Board { return &Board{layout: NewLayout(size)} }

// Layout returns the panel hit regions.
func (b *Board) Layout() core.Board { return b.layout }

// Draw is a no-op in the headless build.
func (b *Board) Draw(any, round.Frame) {}
