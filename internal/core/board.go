package core

// Rect is an axis-aligned rectangle in surface coordinates.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Board maps screen regions to panels. The board area is split into four
// equal quadrants: green top-left, red top-right, yellow bottom-left and blue
// bottom-right. Odd sizes give the extra row/column to the right and bottom
// quadrants so the quadrants tile the area exactly.
type Board struct {
	area  Rect
	rects [PanelCount]Rect
}

// NewBoard lays out the panels over the rectangle at (x, y) with size w*h.
func NewBoard(x, y, w, h int) Board {
	if w < 2 {
		w = 2
	}
	if h < 2 {
		h = 2
	}
	left, top := w/2, h/2
	b := Board{area: Rect{X: x, Y: y, W: w, H: h}}
	b.rects[Green] = Rect{X: x, Y: y, W: left, H: top}
	b.rects[Red] = Rect{X: x + left, Y: y, W: w - left, H: top}
	b.rects[Yellow] = Rect{X: x, Y: y + top, W: left, H: h - top}
	b.rects[Blue] = Rect{X: x + left, Y: y + top, W: w - left, H: h - top}
	return b
}

// Area returns the full rectangle covered by the board.
func (b Board) Area() Rect { return b.area }

// Rect returns the region occupied by p. NoPanel yields the zero Rect.
func (b Board) Rect(p Panel) Rect {
	if !p.Valid() {
		return Rect{}
	}
	return b.rects[p]
}

// PanelAt returns the panel under (x, y), or NoPanel outside the board.
func (b Board) PanelAt(x, y int) Panel {
	for _, p := range Panels {
		if b.rects[p].Contains(x, y) {
			return p
		}
	}
	return NoPanel
}
