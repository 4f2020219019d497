package model

import (
	"errors"
	"testing"

	"github.com/desknotes/desknotes/internal/apperror"
	"github.com/desknotes/desknotes/internal/geometry"
)

func TestNoteStatus_Valid(t *testing.T) {
	tests := []struct {
		status   NoteStatus
		expected bool
	}{
		{StatusShown, true},
		{StatusHidden, true},
		{StatusPendingPlacement, true},
		{NoteStatus(""), false},
		{NoteStatus("deleted"), false},
	}

	for _, test := range tests {
		if got := test.status.Valid(); got != test.expected {
			t.Errorf("Valid(%q) = %v, expected %v", test.status, got, test.expected)
		}
	}
}

func TestNoteStatus_Visible(t *testing.T) {
	if !StatusShown.Visible() {
		t.Error("shown notes should be visible")
	}
	if StatusHidden.Visible() || StatusPendingPlacement.Visible() {
		t.Error("hidden and pending notes should not be visible")
	}
}

func TestNewNote_Defaults(t *testing.T) {
	n := NewNote()

	if n.Persisted() {
		t.Error("new note should not be persisted")
	}
	if n.Status != StatusShown {
		t.Errorf("status = %s, expected shown", n.Status)
	}
	if n.HasFile() {
		t.Error("new note should have no file")
	}
	if n.Position.X != 50 || n.Position.Y != 50 {
		t.Errorf("position = %+v, expected (50,50)", n.Position)
	}
	if n.Size.Width != 200 || n.Size.Height != 150 {
		t.Errorf("size = %+v, expected 200x150", n.Size)
	}
	if n.Style != DefaultStyle() {
		t.Errorf("style = %+v, expected defaults", n.Style)
	}
}

func TestNote_ApplyRect(t *testing.T) {
	n := NewNote()

	n.ApplyRect(geometry.Rect{X: 5, Y: 10, Width: 320, Height: 240})
	if n.Position != (geometry.Point{X: 5, Y: 10}) {
		t.Errorf("position = %+v", n.Position)
	}
	if n.Size != (geometry.Size{Width: 320, Height: 240}) {
		t.Errorf("size = %+v", n.Size)
	}

	// Undersized rectangles are pinned to the minimum.
	n.ApplyRect(geometry.Rect{X: 0, Y: 0, Width: 1, Height: 1})
	if n.Size.Width != geometry.MinWidth || n.Size.Height != geometry.MinHeight {
		t.Errorf("size = %+v, expected minimum", n.Size)
	}
}

func TestStyle_Clamped(t *testing.T) {
	tests := []struct {
		name     string
		in       Style
		expected Style
	}{
		{
			"transparency above range",
			Style{Transparency: 1.8, BackgroundColor: "#112233", Margin: 3},
			Style{Transparency: 1.0, BackgroundColor: "#112233", Margin: 3},
		},
		{
			"transparency below range",
			Style{Transparency: -0.2, BackgroundColor: "#112233", Margin: 3},
			Style{Transparency: 0.0, BackgroundColor: "#112233", Margin: 3},
		},
		{
			"negative margin and empty color",
			Style{Transparency: 0.5, Margin: -7},
			Style{Transparency: 0.5, BackgroundColor: DefaultBackgroundColor, Margin: 0},
		},
		{
			"already valid",
			Style{Transparency: 0.75, BackgroundColor: "#ABCDEF", Margin: 12},
			Style{Transparency: 0.75, BackgroundColor: "#ABCDEF", Margin: 12},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.in.Clamped(); got != test.expected {
				t.Errorf("Clamped() = %+v, expected %+v", got, test.expected)
			}
		})
	}
}

func TestStyle_Validate(t *testing.T) {
	valid := Style{Transparency: 0.9, BackgroundColor: "#ffFFe0", Margin: 0}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid style rejected: %v", err)
	}

	invalid := []Style{
		{Transparency: 1.5, BackgroundColor: "#FFFFFF", Margin: 0},
		{Transparency: 0.5, BackgroundColor: "yellow", Margin: 0},
		{Transparency: 0.5, BackgroundColor: "#FFF", Margin: 0},
		{Transparency: 0.5, BackgroundColor: "#FFFFFF", Margin: -1},
	}
	for _, s := range invalid {
		err := s.Validate()
		if err == nil {
			t.Errorf("style %+v accepted", s)
			continue
		}
		if !errors.Is(err, apperror.ErrInvalidInput) {
			t.Errorf("style %+v returned %v, expected ErrInvalidInput", s, err)
		}
	}
}
