package geometry

import "testing"

func TestHandleAt(t *testing.T) {
	// 100x80 note at (10,20), margin 10.
	r := Rect{X: 10, Y: 20, Width: 100, Height: 80}
	m := 10

	tests := []struct {
		name     string
		p        Point
		expected Handle
	}{
		{"top-left corner", Point{10, 20}, HandleTopLeft},
		{"inside top-left square", Point{19, 29}, HandleTopLeft},
		{"top-right corner", Point{109, 20}, HandleTopRight},
		{"inside top-right square", Point{100, 25}, HandleTopRight},
		{"bottom-left corner", Point{10, 99}, HandleBottomLeft},
		{"bottom-right corner", Point{109, 99}, HandleBottomRight},
		{"left edge", Point{12, 60}, HandleLeft},
		{"right edge", Point{105, 60}, HandleRight},
		{"top edge", Point{60, 22}, HandleTop},
		{"bottom edge", Point{60, 95}, HandleBottom},
		{"body center", Point{60, 60}, HandleBody},
		{"body just inside inset", Point{20, 30}, HandleBody},
		{"outside left", Point{9, 60}, HandleNone},
		{"outside above", Point{60, 19}, HandleNone},
		{"outside past right", Point{110, 60}, HandleNone},
		{"outside past bottom", Point{60, 100}, HandleNone},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := HandleAt(r, m, test.p)
			if got != test.expected {
				t.Errorf("HandleAt(%v) = %s, expected %s", test.p, got, test.expected)
			}
		})
	}
}

func TestHandleAt_CornerPrecedence(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	m := 10

	// Every point strictly inside a corner square must classify as that
	// corner, never as an overlapping edge strip.
	corners := []struct {
		name     string
		origin   Point
		expected Handle
	}{
		{"top-left", Point{0, 0}, HandleTopLeft},
		{"top-right", Point{90, 0}, HandleTopRight},
		{"bottom-left", Point{0, 90}, HandleBottomLeft},
		{"bottom-right", Point{90, 90}, HandleBottomRight},
	}

	for _, corner := range corners {
		t.Run(corner.name, func(t *testing.T) {
			for dx := 0; dx < m; dx++ {
				for dy := 0; dy < m; dy++ {
					p := Point{X: corner.origin.X + dx, Y: corner.origin.Y + dy}
					got := HandleAt(r, m, p)
					if got != corner.expected {
						t.Fatalf("HandleAt(%v) = %s, expected %s", p, got, corner.expected)
					}
				}
			}
		})
	}
}

func TestHandleAt_TinyRect(t *testing.T) {
	// Rectangle narrower than two margin bands: edge strips have negative
	// extent and must match nothing; the corner squares still win where
	// they cover the area.
	r := Rect{X: 0, Y: 0, Width: 15, Height: 15}

	if got := HandleAt(r, 10, Point{5, 5}); got != HandleTopLeft {
		t.Errorf("HandleAt tiny rect = %s, expected TopLeft", got)
	}
	if got := HandleAt(r, 10, Point{12, 12}); got != HandleBottomRight {
		t.Errorf("HandleAt tiny rect = %s, expected BottomRight", got)
	}
}

func TestHandle_EdgeImplication(t *testing.T) {
	tests := []struct {
		h                        Handle
		left, top, right, bottom bool
	}{
		{HandleTopLeft, true, true, false, false},
		{HandleTop, false, true, false, false},
		{HandleTopRight, false, true, true, false},
		{HandleLeft, true, false, false, false},
		{HandleRight, false, false, true, false},
		{HandleBottomLeft, true, false, false, true},
		{HandleBottom, false, false, false, true},
		{HandleBottomRight, false, false, true, true},
		{HandleBody, false, false, false, false},
		{HandleNone, false, false, false, false},
	}

	for _, test := range tests {
		t.Run(test.h.String(), func(t *testing.T) {
			if test.h.resizesLeft() != test.left {
				t.Errorf("%s resizesLeft = %v", test.h, test.h.resizesLeft())
			}
			if test.h.resizesTop() != test.top {
				t.Errorf("%s resizesTop = %v", test.h, test.h.resizesTop())
			}
			if test.h.resizesRight() != test.right {
				t.Errorf("%s resizesRight = %v", test.h, test.h.resizesRight())
			}
			if test.h.resizesBottom() != test.bottom {
				t.Errorf("%s resizesBottom = %v", test.h, test.h.resizesBottom())
			}
		})
	}
}
