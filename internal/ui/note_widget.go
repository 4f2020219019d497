package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/desknotes/desknotes/internal/geometry"
	"github.com/desknotes/desknotes/internal/model"
	"github.com/desknotes/desknotes/internal/platform"
)

// NoteCallbacks carries the actions a note widget delegates to the board.
// The widget never touches the store itself; committing actions arrive here.
type NoteCallbacks struct {
	OnSelectFile  func(noteID int64)
	OnOpenEditor  func(filePath string)
	OnDragResize  func(noteID int64)
	OnStyling     func(noteID int64)
	OnNewFile     func(noteID int64)
	OnAddNote     func()
	OnOpenManager func()
	OnHide        func(noteID int64)
	OnDelete      func(noteID int64)

	// OnPressed fires on every primary press so the board can disarm other
	// widgets (a press outside an armed widget drops it back to Idle).
	OnPressed func(noteID int64)

	// OnGeometryPreview fires on every intermediate move of a gesture;
	// OnGeometryCommit fires exactly once per completed gesture and is the
	// only geometry event that reaches the store.
	OnGeometryPreview func(noteID int64, r geometry.Rect)
	OnGeometryCommit  func(noteID int64, r geometry.Rect)
}

// NoteWidget is one note panel on the board: background, content rendered
// from the bound file, and the drag/resize interaction driven by its
// geometry tracker.
type NoteWidget struct {
	widget.BaseWidget

	note      model.Note
	tracker   *geometry.Tracker
	hover     geometry.Handle
	loadError string

	// previewStyle, when non-nil, overrides the note's style for rendering
	// while the styling dialog is open.
	previewStyle *model.Style

	background    *canvas.Rectangle
	contentHolder *fyne.Container

	callbacks NoteCallbacks
}

// Compile-time checks for the event interfaces the board relies on.
var (
	_ fyne.Tappable          = (*NoteWidget)(nil)
	_ fyne.SecondaryTappable = (*NoteWidget)(nil)
	_ fyne.Draggable         = (*NoteWidget)(nil)
	_ desktop.Mouseable      = (*NoteWidget)(nil)
	_ desktop.Hoverable      = (*NoteWidget)(nil)
	_ desktop.Cursorable     = (*NoteWidget)(nil)
)

// NewNoteWidget creates a widget for the given note record.
func NewNoteWidget(note model.Note) *NoteWidget {
	w := &NoteWidget{
		note:          note,
		tracker:       geometry.NewTracker(geometry.DefaultHandleMargin, geometry.MinSize()),
		background:    canvas.NewRectangle(ParseHexColor(note.Style.BackgroundColor, note.Style.Transparency)),
		contentHolder: container.NewStack(),
	}
	w.ExtendBaseWidget(w)
	w.RefreshContent()
	return w
}

// NewErrorNoteWidget creates a degraded widget for an id whose record could
// not be loaded. It renders an error face and reacts only to its context
// menu, so the user can still delete or hide the broken entry.
func NewErrorNoteWidget(id int64, message string) *NoteWidget {
	note := model.NewNote()
	note.ID = id
	w := NewNoteWidget(note)
	w.SetLoadError(message)
	return w
}

// SetCallbacks sets the action callbacks
func (w *NoteWidget) SetCallbacks(cb NoteCallbacks) {
	w.callbacks = cb
}

// Note returns the widget's working copy of the record.
func (w *NoteWidget) Note() model.Note {
	return w.note
}

// SetNote replaces the working copy and re-renders.
func (w *NoteWidget) SetNote(note model.Note) {
	w.note = note
	w.RefreshContent()
	w.Refresh()
}

// SetNoteRecord replaces the working copy without rebuilding the file
// content, for updates that only touch geometry.
func (w *NoteWidget) SetNoteRecord(note model.Note) {
	w.note = note
	w.Refresh()
}

// SetLoadError switches the widget to its degraded error face.
func (w *NoteWidget) SetLoadError(message string) {
	w.loadError = message
	w.RefreshContent()
	w.Refresh()
}

// DragResizeActive reports whether the widget is armed or mid-gesture.
func (w *NoteWidget) DragResizeActive() bool {
	return w.tracker.Active()
}

// ToggleDragResize flips drag/resize mode and returns the new state.
func (w *NoteWidget) ToggleDragResize() bool {
	on := w.tracker.Toggle()
	w.hover = geometry.HandleNone
	w.Refresh()
	return on
}

// DisarmDragResize drops the widget back to Idle, e.g. when the user
// presses outside its bounds.
func (w *NoteWidget) DisarmDragResize() {
	if !w.tracker.Active() {
		return
	}
	w.tracker.Disarm()
	w.hover = geometry.HandleNone
	w.Refresh()
}

// PreviewStyle renders the given style without committing it anywhere.
func (w *NoteWidget) PreviewStyle(style model.Style) {
	s := style.Clamped()
	w.previewStyle = &s
	w.Refresh()
}

// ClearStylePreview drops any preview and falls back to the note's style.
func (w *NoteWidget) ClearStylePreview() {
	w.previewStyle = nil
	w.Refresh()
}

// SetStyle commits a style into the working copy (the board persists it).
func (w *NoteWidget) SetStyle(style model.Style) {
	w.note.Style = style.Clamped()
	w.previewStyle = nil
	w.Refresh()
}

func (w *NoteWidget) effectiveStyle() model.Style {
	if w.previewStyle != nil {
		return *w.previewStyle
	}
	return w.note.Style
}

// RefreshContent rebuilds the content area: error face, placeholder, or the
// bound file rendered read-only (Markdown for .md, plain text otherwise).
func (w *NoteWidget) RefreshContent() {
	w.contentHolder.Objects = []fyne.CanvasObject{w.buildContent()}
	w.contentHolder.Refresh()
}

func (w *NoteWidget) buildContent() fyne.CanvasObject {
	bg := ParseHexColor(w.effectiveStyle().BackgroundColor, 1.0)

	if w.loadError != "" {
		title := canvas.NewText(ErrorFacePrefix, theme.Color(theme.ColorNameError))
		title.TextStyle = fyne.TextStyle{Bold: true}
		detail := canvas.NewText(w.loadError, ReadableTextColor(bg))
		detail.TextSize = ErrorTextSize
		return container.NewCenter(container.NewVBox(title, detail))
	}

	if !w.note.HasFile() {
		placeholder := canvas.NewText(PlaceholderText, ReadableTextColor(bg))
		placeholder.TextSize = PlaceholderTextSize
		return container.NewCenter(placeholder)
	}

	content, err := platform.ReadTextFile(w.note.FilePath)
	if err != nil {
		log.Printf("note %d: %v", w.note.ID, err)
		title := canvas.NewText("Error loading file", theme.Color(theme.ColorNameError))
		detail := canvas.NewText(w.note.FilePath, ReadableTextColor(bg))
		detail.TextSize = ErrorTextSize
		return container.NewCenter(container.NewVBox(title, detail))
	}

	if platform.IsMarkdown(w.note.FilePath) {
		rich := widget.NewRichTextFromMarkdown(content)
		rich.Wrapping = fyne.TextWrapWord
		return container.NewVScroll(rich)
	}

	label := widget.NewLabel(content)
	label.Wrapping = fyne.TextWrapWord
	return container.NewVScroll(label)
}

// displayRect is the widget's current rectangle in board coordinates.
func (w *NoteWidget) displayRect() geometry.Rect {
	pos := w.Position()
	size := w.Size()
	return geometry.Rect{
		X:      int(pos.X),
		Y:      int(pos.Y),
		Width:  int(size.Width),
		Height: int(size.Height),
	}
}

// pointerBoardPos converts a widget-relative event position to board
// coordinates. Valid even mid-gesture: the widget's own position moves with
// the preview rectangle.
func (w *NoteWidget) pointerBoardPos(rel fyne.Position) geometry.Point {
	pos := w.Position()
	return geometry.Point{X: int(pos.X + rel.X), Y: int(pos.Y + rel.Y)}
}

// Tapped opens the file selector when no file is bound, or the external
// editor when one is. Taps are ignored while drag/resize mode is active.
func (w *NoteWidget) Tapped(_ *fyne.PointEvent) {
	if w.tracker.Active() || w.loadError != "" {
		return
	}
	if !w.note.HasFile() {
		if w.callbacks.OnSelectFile != nil {
			w.callbacks.OnSelectFile(w.note.ID)
		}
		return
	}
	if w.callbacks.OnOpenEditor != nil {
		w.callbacks.OnOpenEditor(w.note.FilePath)
	}
}

// TappedSecondary shows the note's context menu.
func (w *NoteWidget) TappedSecondary(ev *fyne.PointEvent) {
	items := []*fyne.MenuItem{
		fyne.NewMenuItem(MenuSelectFile, func() { w.call(w.callbacks.OnSelectFile) }),
		fyne.NewMenuItem(MenuDragResize, func() { w.call(w.callbacks.OnDragResize) }),
		fyne.NewMenuItem(MenuStyling, func() { w.call(w.callbacks.OnStyling) }),
		fyne.NewMenuItem(MenuNewFile, func() { w.call(w.callbacks.OnNewFile) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(MenuAddNote, func() {
			if w.callbacks.OnAddNote != nil {
				w.callbacks.OnAddNote()
			}
		}),
		fyne.NewMenuItem(MenuOpenNotes, func() {
			if w.callbacks.OnOpenManager != nil {
				w.callbacks.OnOpenManager()
			}
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(MenuHide, func() { w.call(w.callbacks.OnHide) }),
		fyne.NewMenuItem(MenuDelete, func() { w.call(w.callbacks.OnDelete) }),
	}

	menu := fyne.NewMenu("", items...)
	c := fyne.CurrentApp().Driver().CanvasForObject(w)
	if c == nil {
		return
	}
	widget.ShowPopUpMenuAtPosition(menu, c, ev.AbsolutePosition)
}

func (w *NoteWidget) call(cb func(int64)) {
	if cb != nil {
		cb(w.note.ID)
	}
}

// MouseDown starts a gesture when drag/resize mode is armed. The handle is
// classified here and stays fixed until release.
func (w *NoteWidget) MouseDown(ev *desktop.MouseEvent) {
	if w.callbacks.OnPressed != nil {
		w.callbacks.OnPressed(w.note.ID)
	}
	if ev.Button != desktop.MouseButtonPrimary || !w.tracker.Active() {
		return
	}

	if h := w.tracker.Press(w.displayRect(), w.pointerBoardPos(ev.Position)); h != geometry.HandleNone {
		w.hover = h
		log.Printf("note %d: gesture started on %s", w.note.ID, h)
	}
}

// MouseUp ends the gesture and commits the final rectangle exactly once.
func (w *NoteWidget) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	final, ok := w.tracker.Release(w.pointerBoardPos(ev.Position))
	if !ok {
		return
	}
	log.Printf("note %d: gesture committed at %+v", w.note.ID, final)
	if w.callbacks.OnGeometryCommit != nil {
		w.callbacks.OnGeometryCommit(w.note.ID, final)
	}
}

// Dragged feeds intermediate pointer positions to the tracker; the preview
// rectangle moves the widget but never reaches the store.
func (w *NoteWidget) Dragged(ev *fyne.DragEvent) {
	preview, ok := w.tracker.Move(w.pointerBoardPos(ev.Position))
	if !ok {
		return
	}
	if w.callbacks.OnGeometryPreview != nil {
		w.callbacks.OnGeometryPreview(w.note.ID, preview)
	}
}

// DragEnd is satisfied by MouseUp; the commit must happen on button release.
func (w *NoteWidget) DragEnd() {}

// MouseIn tracks the hovered handle for cursor feedback.
func (w *NoteWidget) MouseIn(ev *desktop.MouseEvent) {
	w.hover = w.tracker.HoverHandle(w.displayRect(), w.pointerBoardPos(ev.Position))
}

// MouseMoved tracks the hovered handle for cursor feedback.
func (w *NoteWidget) MouseMoved(ev *desktop.MouseEvent) {
	w.hover = w.tracker.HoverHandle(w.displayRect(), w.pointerBoardPos(ev.Position))
}

// MouseOut clears the hovered handle.
func (w *NoteWidget) MouseOut() {
	w.hover = geometry.HandleNone
}

// Cursor reflects the hovered handle while drag/resize mode is on.
func (w *NoteWidget) Cursor() desktop.Cursor {
	return CursorForHandle(w.hover, w.tracker.Active())
}

// CreateRenderer builds the widget's renderer.
func (w *NoteWidget) CreateRenderer() fyne.WidgetRenderer {
	return &noteRenderer{w: w}
}

type noteRenderer struct {
	w *NoteWidget
}

func (r *noteRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.w.background, r.w.contentHolder}
}

func (r *noteRenderer) Layout(size fyne.Size) {
	r.w.background.Resize(size)

	m := float32(r.w.effectiveStyle().Margin)
	r.w.contentHolder.Move(fyne.NewPos(m, m))
	r.w.contentHolder.Resize(fyne.NewSize(size.Width-2*m, size.Height-2*m))
}

func (r *noteRenderer) MinSize() fyne.Size {
	return fyne.NewSize(geometry.MinWidth, geometry.MinHeight)
}

func (r *noteRenderer) Refresh() {
	style := r.w.effectiveStyle()
	r.w.background.FillColor = ParseHexColor(style.BackgroundColor, style.Transparency)
	if r.w.tracker.Active() {
		r.w.background.StrokeColor = theme.Color(theme.ColorNamePrimary)
		r.w.background.StrokeWidth = ActiveBorderWidth
	} else {
		r.w.background.StrokeWidth = 0
	}
	r.w.background.Refresh()

	// Margin may have changed; re-place the content.
	r.Layout(r.w.Size())
	r.w.contentHolder.Refresh()
}

func (r *noteRenderer) Destroy() {}
