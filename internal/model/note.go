package model

import (
	"github.com/desknotes/desknotes/internal/geometry"
)

// UnsavedID marks a note that has not been persisted yet; the store assigns
// the real id on Create.
const UnsavedID int64 = -1

// Geometry defaults for freshly created notes.
const (
	DefaultPositionX = 50
	DefaultPositionY = 50
	DefaultWidth     = 200
	DefaultHeight    = 150
)

// Note represents a single desktop panel: the file it displays, where it
// sits on the board, and how it looks. The store owns the canonical record;
// a widget's copy is written back on every committing action.
type Note struct {
	ID       int64
	Status   NoteStatus
	FilePath string // absolute path to the .txt or .md file; empty means none selected
	Position geometry.Point
	Size     geometry.Size
	Style    Style
}

// NewNote returns an unsaved note with default geometry and style
func NewNote() Note {
	return Note{
		ID:       UnsavedID,
		Status:   StatusShown,
		Position: geometry.Point{X: DefaultPositionX, Y: DefaultPositionY},
		Size:     geometry.Size{Width: DefaultWidth, Height: DefaultHeight},
		Style:    DefaultStyle(),
	}
}

// Persisted reports whether the note has a store-assigned id
func (n Note) Persisted() bool {
	return n.ID != UnsavedID
}

// HasFile reports whether a file has been selected for this note
func (n Note) HasFile() bool {
	return n.FilePath != ""
}

// Rect returns the note's geometry as a rectangle
func (n Note) Rect() geometry.Rect {
	return geometry.NewRect(n.Position, n.Size)
}

// ApplyRect writes a committed rectangle back into position and size,
// enforcing the minimum dimensions.
func (n *Note) ApplyRect(r geometry.Rect) {
	if r.Width < geometry.MinWidth {
		r.Width = geometry.MinWidth
	}
	if r.Height < geometry.MinHeight {
		r.Height = geometry.MinHeight
	}
	n.Position = r.TopLeft()
	n.Size = r.Size()
}
