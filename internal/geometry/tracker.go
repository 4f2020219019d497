package geometry

// State is the interaction engine's current mode.
type State int

const (
	// StateIdle means drag/resize mode is off; pointer events are ignored.
	StateIdle State = iota

	// StateArmed means drag/resize mode is on with no button held.
	StateArmed

	// StateDragging means a body drag is in progress.
	StateDragging

	// StateResizing means a border/corner resize is in progress.
	StateResizing
)

// String returns the state name for logs.
func (s State) String() string {
	switch s {
	case StateArmed:
		return "Armed"
	case StateDragging:
		return "Dragging"
	case StateResizing:
		return "Resizing"
	default:
		return "Idle"
	}
}

// Tracker is the gesture state machine for one note. It is armed by an
// explicit toggle, classifies the handle once at press time, produces a live
// preview rectangle on every move, and reports the final rectangle exactly
// once on release. The caller persists that rectangle; the tracker never
// touches the store itself.
type Tracker struct {
	state  State
	margin int
	min    Size

	handle  Handle
	origin  Rect  // note rectangle captured at press time
	pressAt Point // pointer position at press time
	preview Rect  // live rectangle while a gesture is running
}

// NewTracker returns an idle tracker with the given handle margin and
// minimum note size.
func NewTracker(margin int, min Size) *Tracker {
	return &Tracker{state: StateIdle, margin: margin, min: min}
}

// State returns the current mode.
func (t *Tracker) State() State {
	return t.state
}

// Active reports whether drag/resize mode is on in any form.
func (t *Tracker) Active() bool {
	return t.state != StateIdle
}

// ActiveHandle returns the handle fixed at press time, or HandleNone when no
// gesture is running.
func (t *Tracker) ActiveHandle() Handle {
	if t.state != StateDragging && t.state != StateResizing {
		return HandleNone
	}
	return t.handle
}

// Toggle flips drag/resize mode on or off and returns the new mode. Turning
// the mode off mid-gesture abandons the gesture without committing.
func (t *Tracker) Toggle() bool {
	if t.state == StateIdle {
		t.state = StateArmed
		return true
	}
	t.state = StateIdle
	t.handle = HandleNone
	return false
}

// Disarm drops back to Idle. Used when a press lands outside the note while
// armed.
func (t *Tracker) Disarm() {
	t.state = StateIdle
	t.handle = HandleNone
}

// Press starts a gesture. rect is the note's current rectangle and p the
// pointer position, both in the same coordinate space. The handle is
// classified once here and stays fixed for the whole gesture. A press that
// classifies as HandleNone arms nothing and the tracker stays Armed.
func (t *Tracker) Press(rect Rect, p Point) Handle {
	if t.state != StateArmed {
		return HandleNone
	}

	h := HandleAt(rect, t.margin, p)
	if h == HandleNone {
		return HandleNone
	}

	t.handle = h
	t.origin = rect
	t.pressAt = p
	t.preview = rect
	if h == HandleBody {
		t.state = StateDragging
	} else {
		t.state = StateResizing
	}
	return h
}

// Move advances the gesture to pointer position p and returns the preview
// rectangle. The second result is false when no gesture is running. Moves
// never commit anything.
func (t *Tracker) Move(p Point) (Rect, bool) {
	if t.state != StateDragging && t.state != StateResizing {
		return Rect{}, false
	}

	delta := Point{X: p.X - t.pressAt.X, Y: p.Y - t.pressAt.Y}
	t.preview = Resize(t.origin, t.handle, delta, t.min)
	return t.preview, true
}

// Release ends the gesture at pointer position p and returns the final
// rectangle. The second result is true exactly once per completed gesture;
// the caller commits that rectangle to the store. The tracker drops back to
// Armed, ready for the next gesture.
func (t *Tracker) Release(p Point) (Rect, bool) {
	if t.state != StateDragging && t.state != StateResizing {
		return Rect{}, false
	}

	final, _ := t.Move(p)
	t.state = StateArmed
	t.handle = HandleNone
	return final, true
}

// HoverHandle classifies the pointer for cursor feedback while armed. During
// a gesture it returns the fixed active handle regardless of position.
func (t *Tracker) HoverHandle(rect Rect, p Point) Handle {
	switch t.state {
	case StateArmed:
		return HandleAt(rect, t.margin, p)
	case StateDragging, StateResizing:
		return t.handle
	default:
		return HandleNone
	}
}
