package panel

// Rect is a screen-space rectangle in terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	if r.Empty() {
		return false
	}
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Anchor selects where a panel is placed on screen.
type Anchor int

const (
	AnchorCenter Anchor = iota
	AnchorRight
	AnchorBottom
)

// Place computes the rectangle of a w×h panel on a screenW×screenH terminal,
// keeping margin cells from the edges the panel is anchored to.
// The panel is shrunk when the screen is too small.
func Place(screenW, screenH, w, h, margin int, anchor Anchor) Rect {
	w = min(w, max(screenW-2*margin, 0))
	h = min(h, max(screenH-2*margin, 0))

	r := Rect{Width: w, Height: h}
	switch anchor {
	case AnchorRight:
		r.X = screenW - w - margin
		r.Y = margin
	case AnchorBottom:
		r.X = (screenW - w) / 2
		r.Y = screenH - h - margin
	default:
		r.X = (screenW - w) / 2
		r.Y = (screenH - h) / 2
	}
	r.X = max(r.X, 0)
	r.Y = max(r.Y, 0)
	return r
}
