package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/desknotes/desknotes/internal/platform"
	"github.com/desknotes/desknotes/internal/store"
	"github.com/desknotes/desknotes/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.desknotes.desknotes"
	AppName = "Desktop Notes"

	ErrorWindowWidth  = 480
	ErrorWindowHeight = 160
)

func main() {
	// Log version information
	fmt.Printf("Desktop Notes v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply note theme
	myApp.Settings().SetTheme(ui.NewNoteTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)

	// Open the note store. A broken store degrades to a visible error
	// window instead of a crash.
	st, err := openStore()
	if err != nil {
		log.Printf("main: opening note store: %v", err)
		showStoreError(myWindow, err)
		myWindow.ShowAndRun()
		return
	}

	board := ui.NewBoard(myWindow, myApp, st)
	board.Load()

	myWindow.SetOnClosed(func() {
		if err := st.Close(); err != nil {
			log.Printf("main: closing note store: %v", err)
		}
	})

	// Show and run
	myWindow.ShowAndRun()
}

func openStore() (*store.Store, error) {
	dbPath, err := platform.DatabaseFile()
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}

func showStoreError(window fyne.Window, err error) {
	message := widget.NewLabel(fmt.Sprintf("The note store could not be opened:\n%v", err))
	message.Wrapping = fyne.TextWrapWord
	window.SetContent(container.NewCenter(message))
	window.Resize(fyne.NewSize(ErrorWindowWidth, ErrorWindowHeight))
}
