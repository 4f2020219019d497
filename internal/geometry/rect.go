package geometry

// Minimum note dimensions enforced after any geometry mutation.
const (
	MinWidth  = 50
	MinHeight = 30
)

// Point is a position in screen coordinates.
type Point struct {
	X, Y int
}

// Size is a width/height pair in pixels.
type Size struct {
	Width, Height int
}

// MinSize returns the smallest size a note may take.
func MinSize() Size {
	return Size{Width: MinWidth, Height: MinHeight}
}

// Rect is an axis-aligned rectangle, top-left anchored.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect builds a rectangle from a top-left point and a size.
func NewRect(pos Point, size Size) Rect {
	return Rect{X: pos.X, Y: pos.Y, Width: size.Width, Height: size.Height}
}

// TopLeft returns the rectangle's top-left corner.
func (r Rect) TopLeft() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() int { return r.X }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() int { return r.Y }

// Right returns the x coordinate one past the right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the y coordinate one past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Contains reports whether p falls inside the rectangle. The left and top
// edges are inclusive, the right and bottom exclusive, so adjacent
// rectangles never both claim a point.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X < r.Right() && p.Y >= r.Top() && p.Y < r.Bottom()
}

// Inset shrinks the rectangle by m on all four sides.
func (r Rect) Inset(m int) Rect {
	return Rect{X: r.X + m, Y: r.Y + m, Width: r.Width - 2*m, Height: r.Height - 2*m}
}

// Translated returns the rectangle moved by delta; size is unchanged.
func (r Rect) Translated(delta Point) Rect {
	return Rect{X: r.X + delta.X, Y: r.Y + delta.Y, Width: r.Width, Height: r.Height}
}

// fromEdges rebuilds a Rect from edge coordinates.
func fromEdges(left, top, right, bottom int) Rect {
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// Resize offsets each edge of orig implicated by the handle with the matching
// delta component. Width and height are clamped to min with the opposite edge
// held fixed, so dragging the left edge past the limit pins the right edge in
// place rather than pushing it.
func Resize(orig Rect, h Handle, delta Point, min Size) Rect {
	if h == HandleBody {
		return orig.Translated(delta)
	}

	left, top := orig.Left(), orig.Top()
	right, bottom := orig.Right(), orig.Bottom()

	if h.resizesLeft() {
		left += delta.X
		if right-left < min.Width {
			left = right - min.Width
		}
	}
	if h.resizesRight() {
		right += delta.X
		if right-left < min.Width {
			right = left + min.Width
		}
	}
	if h.resizesTop() {
		top += delta.Y
		if bottom-top < min.Height {
			top = bottom - min.Height
		}
	}
	if h.resizesBottom() {
		bottom += delta.Y
		if bottom-top < min.Height {
			bottom = top + min.Height
		}
	}

	return fromEdges(left, top, right, bottom)
}
