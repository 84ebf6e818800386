package ui

import "simon/internal/core"

// Window geometry in logical pixels: a status strip above a square board.
const (
	WindowWidth  = 600
	WindowHeight = 700
	StatusHeight = 100
)

// NewLayout places the board below the status strip of a surface of the
// given size.
func NewLayout(size core.Size) core.Board {
	return core.NewBoard(0, StatusHeight, size.W, size.H-StatusHeight)
}
