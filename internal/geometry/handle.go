package geometry

// DefaultHandleMargin is the sensitivity band, in pixels, around a note's
// border within which corner and edge handles are detected.
const DefaultHandleMargin = 10

// Handle identifies the region of a note under the pointer: one of the four
// corners, one of the four edges, the interior body, or none.
type Handle int

const (
	HandleNone Handle = iota
	HandleTopLeft
	HandleTop
	HandleTopRight
	HandleLeft
	HandleRight
	HandleBottomLeft
	HandleBottom
	HandleBottomRight
	HandleBody
)

// String returns the handle name for logs.
func (h Handle) String() string {
	switch h {
	case HandleTopLeft:
		return "TopLeft"
	case HandleTop:
		return "Top"
	case HandleTopRight:
		return "TopRight"
	case HandleLeft:
		return "Left"
	case HandleRight:
		return "Right"
	case HandleBottomLeft:
		return "BottomLeft"
	case HandleBottom:
		return "Bottom"
	case HandleBottomRight:
		return "BottomRight"
	case HandleBody:
		return "Body"
	default:
		return "None"
	}
}

// IsResize reports whether the handle starts a resize gesture.
func (h Handle) IsResize() bool {
	return h != HandleNone && h != HandleBody
}

func (h Handle) resizesLeft() bool {
	return h == HandleTopLeft || h == HandleLeft || h == HandleBottomLeft
}

func (h Handle) resizesTop() bool {
	return h == HandleTopLeft || h == HandleTop || h == HandleTopRight
}

func (h Handle) resizesRight() bool {
	return h == HandleTopRight || h == HandleRight || h == HandleBottomRight
}

func (h Handle) resizesBottom() bool {
	return h == HandleBottomLeft || h == HandleBottom || h == HandleBottomRight
}

// HandleAt classifies p against r using the given handle margin. Corners are
// tested before edges so a point inside a corner square always classifies as
// that corner, then the edge strips inset by margin at both ends, then the
// interior body. Points matching none of those (possible when the rectangle
// is smaller than the margin bands) return HandleNone.
func HandleAt(r Rect, margin int, p Point) Handle {
	m := margin

	// Corners win over edges at the boundary overlap.
	if (Rect{X: r.Left(), Y: r.Top(), Width: m, Height: m}).Contains(p) {
		return HandleTopLeft
	}
	if (Rect{X: r.Right() - m, Y: r.Top(), Width: m, Height: m}).Contains(p) {
		return HandleTopRight
	}
	if (Rect{X: r.Left(), Y: r.Bottom() - m, Width: m, Height: m}).Contains(p) {
		return HandleBottomLeft
	}
	if (Rect{X: r.Right() - m, Y: r.Bottom() - m, Width: m, Height: m}).Contains(p) {
		return HandleBottomRight
	}

	if (Rect{X: r.Left(), Y: r.Top() + m, Width: m, Height: r.Height - 2*m}).Contains(p) {
		return HandleLeft
	}
	if (Rect{X: r.Right() - m, Y: r.Top() + m, Width: m, Height: r.Height - 2*m}).Contains(p) {
		return HandleRight
	}
	if (Rect{X: r.Left() + m, Y: r.Top(), Width: r.Width - 2*m, Height: m}).Contains(p) {
		return HandleTop
	}
	if (Rect{X: r.Left() + m, Y: r.Bottom() - m, Width: r.Width - 2*m, Height: m}).Contains(p) {
		return HandleBottom
	}

	if r.Inset(m).Contains(p) {
		return HandleBody
	}

	return HandleNone
}
