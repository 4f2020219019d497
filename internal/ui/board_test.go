package ui

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/desknotes/desknotes/internal/geometry"
	"github.com/desknotes/desknotes/internal/model"
	"github.com/desknotes/desknotes/internal/store"
)

func newTestBoard(t *testing.T) (*Board, *store.Store) {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "notes.db"))
	if err != nil {
		t.Fatalf("opening test store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	a := test.NewApp()
	window := a.NewWindow("test")
	return NewBoard(window, a, st), st
}

func TestBoardAddNote(t *testing.T) {
	b, st := newTestBoard(t)

	b.AddNote(geometry.Point{X: 200, Y: 120})

	if len(b.widgets) != 1 {
		t.Fatalf("widgets = %d, want 1", len(b.widgets))
	}

	notes, err := st.GetAll()
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("rows = %d, want 1", len(notes))
	}
	if notes[0].Position != (geometry.Point{X: 200, Y: 120}) {
		t.Errorf("position = %+v, want {200 120}", notes[0].Position)
	}
	if notes[0].Status != model.StatusShown {
		t.Errorf("status = %q, want %q", notes[0].Status, model.StatusShown)
	}
}

func TestBoardHideAndShowNote(t *testing.T) {
	b, st := newTestBoard(t)
	b.AddNote(geometry.Point{})

	notes, _ := st.GetAll()
	id := notes[0].ID

	b.HideNote(id)
	if len(b.widgets) != 0 {
		t.Fatalf("widgets after hide = %d, want 0", len(b.widgets))
	}
	n, err := st.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if n.Status != model.StatusHidden {
		t.Errorf("status after hide = %q, want %q", n.Status, model.StatusHidden)
	}

	b.ShowNote(id)
	if len(b.widgets) != 1 {
		t.Fatalf("widgets after show = %d, want 1", len(b.widgets))
	}
	n, _ = st.Get(id)
	if n.Status != model.StatusShown {
		t.Errorf("status after show = %q, want %q", n.Status, model.StatusShown)
	}
}

func TestBoardDeleteNoteKeepsFile(t *testing.T) {
	b, st := newTestBoard(t)
	b.AddNote(geometry.Point{})

	notes, _ := st.GetAll()
	id := notes[0].ID

	path := writeNoteFile(t, "keep.txt", "content")
	b.bindFile(id, path)

	b.DeleteNote(id)

	if len(b.widgets) != 0 {
		t.Errorf("widgets after delete = %d, want 0", len(b.widgets))
	}
	remaining, _ := st.GetAll()
	if len(remaining) != 0 {
		t.Errorf("rows after delete = %d, want 0", len(remaining))
	}

	// The note record is gone; the file it pointed to must survive.
	content, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatalf("file removed with the note: %v", readErr)
	}
	if string(content) != "content" {
		t.Errorf("file content changed: %q", content)
	}
}

func TestBoardCommitGeometryPersists(t *testing.T) {
	b, st := newTestBoard(t)
	b.AddNote(geometry.Point{X: 50, Y: 50})

	notes, _ := st.GetAll()
	id := notes[0].ID

	final := geometry.Rect{X: 300, Y: 200, Width: 260, Height: 180}
	b.commitGeometry(id, final)

	n, err := st.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if n.Rect() != final {
		t.Errorf("persisted rect = %+v, want %+v", n.Rect(), final)
	}

	w := b.widgets[id]
	if got := w.Note().Rect(); got != final {
		t.Errorf("widget record rect = %+v, want %+v", got, final)
	}
}

func TestBoardPreviewGeometryDoesNotPersist(t *testing.T) {
	b, st := newTestBoard(t)
	b.AddNote(geometry.Point{X: 50, Y: 50})

	notes, _ := st.GetAll()
	id := notes[0].ID
	before, _ := st.Get(id)

	b.previewGeometry(id, geometry.Rect{X: 999, Y: 999, Width: 300, Height: 300})

	after, _ := st.Get(id)
	if after.Rect() != before.Rect() {
		t.Errorf("preview reached the store: %+v", after.Rect())
	}
}

func TestBoardBindFile(t *testing.T) {
	b, st := newTestBoard(t)
	b.AddNote(geometry.Point{})

	notes, _ := st.GetAll()
	id := notes[0].ID

	path := writeNoteFile(t, "bound.md", "# hello")
	b.bindFile(id, path)

	n, _ := st.Get(id)
	if n.FilePath != path {
		t.Errorf("stored path = %q, want %q", n.FilePath, path)
	}
	if got := b.widgets[id].Note().FilePath; got != path {
		t.Errorf("widget path = %q, want %q", got, path)
	}
}

func TestBoardLoadAdoptsPendingAndRestoresShown(t *testing.T) {
	b, st := newTestBoard(t)

	shown := model.NewNote()
	shownID, err := st.Create(shown)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	hidden := model.NewNote()
	hiddenID, _ := st.Create(hidden)
	if err := st.SetStatus(hiddenID, model.StatusHidden); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}

	pending := model.NewNote()
	pending.Status = model.StatusPendingPlacement
	pendingID, err := st.Create(pending)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	b.Load()

	if len(b.widgets) != 2 {
		t.Fatalf("widgets = %d, want 2 (shown + adopted pending)", len(b.widgets))
	}
	if _, ok := b.widgets[shownID]; !ok {
		t.Error("shown note has no widget")
	}
	if _, ok := b.widgets[pendingID]; !ok {
		t.Error("adopted pending note has no widget")
	}
	if _, ok := b.widgets[hiddenID]; ok {
		t.Error("hidden note should stay off the board")
	}

	n, _ := st.Get(pendingID)
	if n.Status != model.StatusShown {
		t.Errorf("adopted status = %q, want %q", n.Status, model.StatusShown)
	}
}

func TestBoardPressDisarmsOtherWidgets(t *testing.T) {
	b, st := newTestBoard(t)
	b.AddNote(geometry.Point{X: 50, Y: 50})
	b.AddNote(geometry.Point{X: 400, Y: 50})

	notes, _ := st.GetAll()
	first, second := notes[0].ID, notes[1].ID

	b.widgets[first].ToggleDragResize()
	b.widgets[second].ToggleDragResize()

	b.notifyPress(first)

	if !b.widgets[first].DragResizeActive() {
		t.Error("pressed widget lost its armed state")
	}
	if b.widgets[second].DragResizeActive() {
		t.Error("other widget stayed armed after outside press")
	}

	b.disarmAll()
	if b.widgets[first].DragResizeActive() {
		t.Error("widget armed after background press")
	}
}
