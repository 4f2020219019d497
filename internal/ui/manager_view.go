package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/desknotes/desknotes/internal/geometry"
	"github.com/desknotes/desknotes/internal/model"
)

// ManagerView is the all-notes window. It lists every record regardless of
// status, so hidden notes stay reachable after their widget is gone.
type ManagerView struct {
	app    fyne.App
	window fyne.Window
	board  *Board

	notes []model.Note
	list  *widget.List
}

// NewManagerView creates the management window backed by the board's store.
func NewManagerView(app fyne.App, board *Board) *ManagerView {
	mv := &ManagerView{
		app:   app,
		board: board,
	}

	mv.window = app.NewWindow(MenuOpenNotes)
	mv.window.Resize(fyne.NewSize(ManagerWidth, ManagerHeight))
	mv.window.SetCloseIntercept(mv.window.Hide)

	mv.createUI()
	return mv
}

// Show refreshes the listing and brings the window up.
func (mv *ManagerView) Show() {
	mv.Refresh()
	mv.window.Show()
}

// Refresh reloads all rows from the store.
func (mv *ManagerView) Refresh() {
	notes, err := mv.board.store.GetAll()
	if err != nil {
		log.Printf("manager: loading notes: %v", err)
		return
	}
	mv.notes = notes
	mv.list.Refresh()
}

func (mv *ManagerView) createUI() {
	mv.list = widget.NewList(
		func() int { return len(mv.notes) },
		func() fyne.CanvasObject {
			title := widget.NewLabel("")
			title.Truncation = fyne.TextTruncateEllipsis
			status := widget.NewLabel("")
			toggle := widget.NewButton("", nil)
			del := widget.NewButton(MenuDelete, nil)
			del.Importance = widget.DangerImportance
			return container.NewBorder(nil, nil, nil,
				container.NewHBox(status, toggle, del), title)
		},
		func(i widget.ListItemID, item fyne.CanvasObject) {
			if i >= len(mv.notes) {
				return
			}
			mv.updateRow(mv.notes[i], item)
		},
	)

	addBtn := widget.NewButton(MenuAddNote, func() {
		mv.board.AddNote(geometry.Point{})
		mv.Refresh()
	})

	mv.window.SetContent(container.NewBorder(nil, addBtn, nil, nil, mv.list))
}

func (mv *ManagerView) updateRow(n model.Note, item fyne.CanvasObject) {
	border := item.(*fyne.Container)
	title := border.Objects[0].(*widget.Label)
	side := border.Objects[1].(*fyne.Container)
	status := side.Objects[0].(*widget.Label)
	toggle := side.Objects[1].(*widget.Button)
	del := side.Objects[2].(*widget.Button)

	if n.HasFile() {
		title.SetText(fmt.Sprintf("%d: %s", n.ID, n.FilePath))
	} else {
		title.SetText(fmt.Sprintf("%d: %s", n.ID, NoFilePlaceholder))
	}
	status.SetText(n.Status.String())

	id := n.ID
	if n.Status.Visible() {
		toggle.SetText(MenuHide)
		toggle.OnTapped = func() {
			mv.board.HideNote(id)
			mv.Refresh()
		}
	} else {
		toggle.SetText("Show")
		toggle.OnTapped = func() {
			mv.board.ShowNote(id)
			mv.Refresh()
		}
	}

	del.OnTapped = func() { mv.deleteNote(id) }
}

func (mv *ManagerView) deleteNote(id int64) {
	if !mv.board.settings.GetConfirmDelete() {
		mv.board.DeleteNote(id)
		mv.Refresh()
		return
	}
	dialog.ShowConfirm("Delete Note",
		"Delete this note? The file it points to is kept.",
		func(confirmed bool) {
			if confirmed {
				mv.board.DeleteNote(id)
				mv.Refresh()
			}
		}, mv.window)
}
