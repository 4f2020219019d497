package model

// NoteStatus represents the lifecycle status of a note record
type NoteStatus string

const (
	// StatusShown means the note has a live widget on the board
	StatusShown NoteStatus = "shown"

	// StatusHidden means the record exists but no widget is displayed
	StatusHidden NoteStatus = "hidden"

	// StatusPendingPlacement marks a freshly created record waiting to be
	// adopted by exactly one new widget instance
	StatusPendingPlacement NoteStatus = "pending_placement"
)

// String returns the string representation of NoteStatus
func (ns NoteStatus) String() string {
	return string(ns)
}

// Valid reports whether the status is one of the known values
func (ns NoteStatus) Valid() bool {
	return ns == StatusShown || ns == StatusHidden || ns == StatusPendingPlacement
}

// Visible reports whether a note with this status gets a widget on the board
func (ns NoteStatus) Visible() bool {
	return ns == StatusShown
}
