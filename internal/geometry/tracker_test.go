package geometry

import "testing"

func newArmedTracker() *Tracker {
	tr := NewTracker(DefaultHandleMargin, MinSize())
	tr.Toggle()
	return tr
}

func TestTracker_ToggleTransitions(t *testing.T) {
	tr := NewTracker(DefaultHandleMargin, MinSize())

	if tr.State() != StateIdle {
		t.Fatalf("new tracker state = %s, expected Idle", tr.State())
	}
	if on := tr.Toggle(); !on || tr.State() != StateArmed {
		t.Fatalf("after toggle on: %v, state %s", on, tr.State())
	}
	if on := tr.Toggle(); on || tr.State() != StateIdle {
		t.Fatalf("after toggle off: %v, state %s", on, tr.State())
	}
}

func TestTracker_PressClassifiesOnce(t *testing.T) {
	rect := Rect{X: 0, Y: 0, Width: 200, Height: 150}
	tr := newArmedTracker()

	h := tr.Press(rect, Point{X: 100, Y: 75})
	if h != HandleBody || tr.State() != StateDragging {
		t.Fatalf("press in body: handle %s, state %s", h, tr.State())
	}

	// Moving the pointer over what would now be a corner must not
	// re-classify mid-gesture.
	tr.Move(Point{X: 2, Y: 2})
	if tr.ActiveHandle() != HandleBody {
		t.Errorf("handle re-classified mid-drag to %s", tr.ActiveHandle())
	}
}

func TestTracker_PressWhileIdleIgnored(t *testing.T) {
	rect := Rect{X: 0, Y: 0, Width: 200, Height: 150}
	tr := NewTracker(DefaultHandleMargin, MinSize())

	if h := tr.Press(rect, Point{X: 100, Y: 75}); h != HandleNone {
		t.Errorf("idle press returned %s", h)
	}
	if _, ok := tr.Release(Point{X: 100, Y: 75}); ok {
		t.Error("release without gesture reported a commit")
	}
}

func TestTracker_PressOnNoneStaysArmed(t *testing.T) {
	// Rect smaller than two margin bands produces None between the corner
	// squares; pressing there arms no gesture.
	rect := Rect{X: 0, Y: 0, Width: 200, Height: 15}
	tr := newArmedTracker()

	if h := tr.Press(rect, Point{X: 100, Y: 12}); h != HandleNone {
		t.Fatalf("press on dead zone returned %s", h)
	}
	if tr.State() != StateArmed {
		t.Errorf("state = %s, expected Armed", tr.State())
	}
}

func TestTracker_DragCommitsExactlyOnce(t *testing.T) {
	rect := Rect{X: 50, Y: 50, Width: 200, Height: 150}
	tr := newArmedTracker()

	tr.Press(rect, Point{X: 150, Y: 100})

	// Intermediate moves only produce previews.
	commits := 0
	for _, p := range []Point{{160, 110}, {180, 130}, {200, 90}} {
		preview, ok := tr.Move(p)
		if !ok {
			t.Fatalf("move at %v reported no gesture", p)
		}
		expected := rect.Translated(Point{X: p.X - 150, Y: p.Y - 100})
		if preview != expected {
			t.Errorf("preview = %+v, expected %+v", preview, expected)
		}
	}

	final, ok := tr.Release(Point{X: 210, Y: 95})
	if ok {
		commits++
	}
	expected := rect.Translated(Point{X: 60, Y: -5})
	if final != expected {
		t.Errorf("final = %+v, expected %+v", final, expected)
	}

	// A second release must not report another commit.
	if _, ok := tr.Release(Point{X: 210, Y: 95}); ok {
		commits++
	}
	if commits != 1 {
		t.Errorf("commits = %d, expected exactly 1", commits)
	}
	if tr.State() != StateArmed {
		t.Errorf("state after release = %s, expected Armed", tr.State())
	}
}

func TestTracker_ResizeGesture(t *testing.T) {
	rect := Rect{X: 50, Y: 50, Width: 200, Height: 150}
	tr := newArmedTracker()

	h := tr.Press(rect, Point{X: 245, Y: 195}) // bottom-right corner square
	if h != HandleBottomRight || tr.State() != StateResizing {
		t.Fatalf("press on corner: handle %s, state %s", h, tr.State())
	}

	final, ok := tr.Release(Point{X: 275, Y: 215})
	if !ok {
		t.Fatal("release reported no commit")
	}
	if final.Left() != 50 || final.Top() != 50 {
		t.Errorf("left/top moved during bottom-right resize: %+v", final)
	}
	if final.Width != 230 || final.Height != 170 {
		t.Errorf("size = %dx%d, expected 230x170", final.Width, final.Height)
	}
}

func TestTracker_DisarmAbandonsGesture(t *testing.T) {
	rect := Rect{X: 0, Y: 0, Width: 200, Height: 150}
	tr := newArmedTracker()
	tr.Press(rect, Point{X: 100, Y: 75})

	tr.Disarm()

	if tr.State() != StateIdle {
		t.Fatalf("state = %s, expected Idle", tr.State())
	}
	if _, ok := tr.Release(Point{X: 120, Y: 80}); ok {
		t.Error("release after disarm reported a commit")
	}
}

func TestTracker_HoverHandle(t *testing.T) {
	rect := Rect{X: 0, Y: 0, Width: 200, Height: 150}
	tr := NewTracker(DefaultHandleMargin, MinSize())

	if h := tr.HoverHandle(rect, Point{X: 100, Y: 75}); h != HandleNone {
		t.Errorf("idle hover = %s, expected None", h)
	}

	tr.Toggle()
	if h := tr.HoverHandle(rect, Point{X: 5, Y: 5}); h != HandleTopLeft {
		t.Errorf("armed hover = %s, expected TopLeft", h)
	}

	// During a gesture the fixed handle is reported regardless of position.
	tr.Press(rect, Point{X: 100, Y: 75})
	if h := tr.HoverHandle(rect, Point{X: 5, Y: 5}); h != HandleBody {
		t.Errorf("dragging hover = %s, expected Body", h)
	}
}
