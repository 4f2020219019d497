package ui

import (
	"errors"
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"github.com/desknotes/desknotes/internal/apperror"
	"github.com/desknotes/desknotes/internal/config"
	"github.com/desknotes/desknotes/internal/geometry"
	"github.com/desknotes/desknotes/internal/model"
	"github.com/desknotes/desknotes/internal/platform"
	"github.com/desknotes/desknotes/internal/store"
)

// Offset applied to a note created from another note's menu, so the new
// panel does not land exactly on top of its source.
const newNoteOffset = 30

// Board is the main surface hosting one widget per shown note. It owns the
// store handle and is the only place geometry and style commits are
// persisted. Live placement belongs to the board; the store is the restore
// source across hide/show and restarts.
type Board struct {
	window   fyne.Window
	app      fyne.App
	store    *store.Store
	settings *config.Settings

	surface *fyne.Container // without layout; one object per note widget
	widgets map[int64]*NoteWidget

	manager *ManagerView
}

// NewBoard creates and initializes the main board UI.
func NewBoard(window fyne.Window, app fyne.App, st *store.Store) *Board {
	b := &Board{
		window:   window,
		app:      app,
		store:    st,
		settings: config.NewSettings(app),
		surface:  container.NewWithoutLayout(),
		widgets:  make(map[int64]*NoteWidget),
	}

	b.setupUI()
	return b
}

// setupUI creates and arranges the board components
func (b *Board) setupUI() {
	b.createMenu()

	// A press on the bare board disarms any armed note.
	background := newBoardBackground(b.disarmAll)
	b.window.SetContent(container.NewStack(background, b.surface))
	b.window.Resize(fyne.NewSize(BoardWidth, BoardHeight))
}

// createMenu builds the main menu
func (b *Board) createMenu() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem(MenuAddNote, func() { b.AddNote(geometry.Point{}) }),
		fyne.NewMenuItem(MenuOpenNotes, b.OpenManager),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Settings", b.showSettings),
	)
	b.window.SetMainMenu(fyne.NewMainMenu(fileMenu))
}

// Load adopts any leftover pending_placement rows, then restores every
// shown note from the store. A store failure degrades to a visible error
// dialog; the application keeps running.
func (b *Board) Load() {
	for {
		adopted, ok, err := b.store.AdoptPending()
		if err != nil {
			log.Printf("board: adopting pending notes: %v", err)
			break
		}
		if !ok {
			break
		}
		log.Printf("board: adopted pending note %d", adopted.ID)
	}

	notes, err := b.store.GetAll()
	if err != nil {
		log.Printf("board: loading notes: %v", err)
		dialog.ShowError(err, b.window)
		return
	}

	for _, n := range notes {
		if n.Status.Visible() {
			b.spawn(n)
		}
	}
	log.Printf("board: restored %d widgets from %d notes", len(b.widgets), len(notes))
}

// spawn creates, wires and places a widget for the given note.
func (b *Board) spawn(n model.Note) *NoteWidget {
	w := NewNoteWidget(n)
	b.wire(w)
	b.place(w, n.Rect())
	b.surface.Add(w)
	b.widgets[n.ID] = w
	return w
}

// spawnError places a degraded widget for a row that could not be loaded.
func (b *Board) spawnError(id int64, message string) {
	w := NewErrorNoteWidget(id, message)
	b.wire(w)
	b.place(w, model.NewNote().Rect())
	b.surface.Add(w)
	b.widgets[id] = w
}

func (b *Board) wire(w *NoteWidget) {
	w.SetCallbacks(NoteCallbacks{
		OnSelectFile:      b.selectFile,
		OnOpenEditor:      b.openEditor,
		OnDragResize:      b.toggleDragResize,
		OnStyling:         b.openStyling,
		OnNewFile:         b.newFile,
		OnAddNote:         func() { b.addNoteNear(w) },
		OnOpenManager:     b.OpenManager,
		OnHide:            b.HideNote,
		OnDelete:          b.deleteWithConfirm,
		OnPressed:         b.notifyPress,
		OnGeometryPreview: b.previewGeometry,
		OnGeometryCommit:  b.commitGeometry,
	})
}

func (b *Board) place(w *NoteWidget, r geometry.Rect) {
	w.Move(fyne.NewPos(float32(r.X), float32(r.Y)))
	w.Resize(fyne.NewSize(float32(r.Width), float32(r.Height)))
}

// AddNote creates a new note record and its widget in one synchronous step;
// the store id comes straight back to the creator, no marker row needed.
// A zero position keeps the model defaults.
func (b *Board) AddNote(at geometry.Point) {
	n := model.NewNote()
	if at != (geometry.Point{}) {
		n.Position = at
	}

	id, err := b.store.Create(n)
	if err != nil {
		log.Printf("board: creating note: %v", err)
		dialog.ShowError(err, b.window)
		return
	}
	n.ID = id
	b.spawn(n)
	log.Printf("board: created note %d", id)
}

func (b *Board) addNoteNear(source *NoteWidget) {
	pos := source.Note().Position
	b.AddNote(geometry.Point{X: pos.X + newNoteOffset, Y: pos.Y + newNoteOffset})
}

// ShowNote restores a hidden note's widget and marks the row shown.
func (b *Board) ShowNote(id int64) {
	if _, exists := b.widgets[id]; exists {
		return
	}

	n, err := b.store.Get(id)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			b.spawnError(id, "note record is missing")
			return
		}
		log.Printf("board: showing note %d: %v", id, err)
		dialog.ShowError(err, b.window)
		return
	}

	if err := b.store.SetStatus(id, model.StatusShown); err != nil {
		log.Printf("board: showing note %d: %v", id, err)
	}
	n.Status = model.StatusShown
	b.spawn(n)
}

// HideNote removes the widget from the board and marks the row hidden. The
// record and its file stay untouched.
func (b *Board) HideNote(id int64) {
	if err := b.store.SetStatus(id, model.StatusHidden); err != nil {
		log.Printf("board: hiding note %d: %v", id, err)
		dialog.ShowError(err, b.window)
		return
	}
	b.removeWidget(id)
}

// DeleteNote removes the row and the widget. The referenced file is never
// deleted.
func (b *Board) DeleteNote(id int64) {
	if err := b.store.Delete(id); err != nil {
		log.Printf("board: deleting note %d: %v", id, err)
		dialog.ShowError(err, b.window)
		return
	}
	b.removeWidget(id)
	log.Printf("board: deleted note %d", id)
}

func (b *Board) deleteWithConfirm(id int64) {
	if !b.settings.GetConfirmDelete() {
		b.DeleteNote(id)
		return
	}
	dialog.ShowConfirm("Delete Note",
		"Delete this note? The file it points to is kept.",
		func(confirmed bool) {
			if confirmed {
				b.DeleteNote(id)
			}
		}, b.window)
}

func (b *Board) removeWidget(id int64) {
	w, ok := b.widgets[id]
	if !ok {
		return
	}
	b.surface.Remove(w)
	delete(b.widgets, id)
}

// selectFile binds a file to the note via the system open dialog.
func (b *Board) selectFile(id int64) {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, b.window)
			return
		}
		if reader == nil {
			return // cancelled
		}
		defer reader.Close()
		b.bindFile(id, reader.URI().Path())
	}, b.window)
}

// newFile creates an empty Markdown file in the configured directory and
// binds it to the note.
func (b *Board) newFile(id int64) {
	dir := b.settings.GetNewFileDirectory()
	if dir == "" {
		dataDir, err := platform.DataDir()
		if err != nil {
			log.Printf("board: resolving data dir: %v", err)
			dialog.ShowError(err, b.window)
			return
		}
		dir = dataDir
	}

	path := filepath.Join(dir, "note-"+uuid.NewString()+".md")
	if err := platform.CreateFileIfMissing(path); err != nil {
		log.Printf("board: creating note file: %v", err)
		dialog.ShowError(err, b.window)
		return
	}
	b.bindFile(id, path)
}

func (b *Board) bindFile(id int64, path string) {
	w, ok := b.widgets[id]
	if !ok {
		return
	}

	n := w.Note()
	n.FilePath = path
	if err := b.store.Update(n); err != nil {
		log.Printf("board: binding file to note %d: %v", id, err)
		dialog.ShowError(err, b.window)
		return
	}
	w.SetNote(n)
	log.Printf("board: note %d now shows %s", id, path)
}

// openEditor launches the configured external editor; failure is logged and
// surfaced, never fatal.
func (b *Board) openEditor(path string) {
	if err := platform.OpenInEditor(b.settings.GetEditorCommand(), path); err != nil {
		log.Printf("board: opening editor: %v", err)
		dialog.ShowError(err, b.window)
	}
}

func (b *Board) toggleDragResize(id int64) {
	w, ok := b.widgets[id]
	if !ok {
		return
	}
	on := w.ToggleDragResize()
	log.Printf("board: note %d drag/resize %v", id, on)
}

func (b *Board) openStyling(id int64) {
	w, ok := b.widgets[id]
	if !ok {
		return
	}
	NewStylingDialog(w, b.window, func(style model.Style) {
		n := w.Note()
		n.Style = style
		if err := b.store.Update(n); err != nil {
			log.Printf("board: saving style for note %d: %v", id, err)
			dialog.ShowError(err, b.window)
		}
	}).Show()
}

// notifyPress implements the outside-press rule: pressing anywhere disarms
// every armed widget except the one being pressed.
func (b *Board) notifyPress(id int64) {
	for otherID, w := range b.widgets {
		if otherID != id {
			w.DisarmDragResize()
		}
	}
}

func (b *Board) disarmAll() {
	for _, w := range b.widgets {
		w.DisarmDragResize()
	}
}

// previewGeometry moves the live widget; nothing is persisted.
func (b *Board) previewGeometry(id int64, r geometry.Rect) {
	if w, ok := b.widgets[id]; ok {
		b.place(w, r)
	}
}

// commitGeometry persists the final rectangle of a completed gesture. This
// is the single store write per gesture.
func (b *Board) commitGeometry(id int64, r geometry.Rect) {
	w, ok := b.widgets[id]
	if !ok {
		return
	}

	n := w.Note()
	n.ApplyRect(r)
	b.place(w, n.Rect())
	w.SetNoteRecord(n)

	if err := b.store.Update(n); err != nil {
		log.Printf("board: persisting geometry for note %d: %v", id, err)
		dialog.ShowError(err, b.window)
	}
}

func (b *Board) showSettings() {
	NewSettingsDialog(b.settings, b.window).Show()
}

// OpenManager opens (or focuses) the all-notes management window.
func (b *Board) OpenManager() {
	if b.manager != nil {
		b.manager.Refresh()
		b.manager.Show()
		return
	}
	b.manager = NewManagerView(b.app, b)
	b.manager.Show()
}

// boardBackground fills the window behind the notes and reports presses on
// empty board space.
type boardBackground struct {
	widget.BaseWidget
	onPress func()
}

var _ desktop.Mouseable = (*boardBackground)(nil)

func newBoardBackground(onPress func()) *boardBackground {
	bg := &boardBackground{onPress: onPress}
	bg.ExtendBaseWidget(bg)
	return bg
}

func (bg *boardBackground) MouseDown(_ *desktop.MouseEvent) {
	if bg.onPress != nil {
		bg.onPress()
	}
}

func (bg *boardBackground) MouseUp(_ *desktop.MouseEvent) {}

func (bg *boardBackground) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(theme.Color(theme.ColorNameBackground))
	return widget.NewSimpleRenderer(rect)
}
