package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/desknotes/desknotes/internal/config"
)

// SettingsDialog represents the application settings dialog
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog

	// UI components
	editorEntry  *widget.Entry
	confirmCheck *widget.Check
	newFileEntry *widget.Entry
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.editorEntry = widget.NewEntry()
	sd.editorEntry.SetPlaceHolder(config.DefaultEditorCommand)

	sd.confirmCheck = widget.NewCheck("Ask before deleting a note", nil)

	sd.newFileEntry = widget.NewEntry()
	sd.newFileEntry.SetPlaceHolder("Default: application data directory")
	browseBtn := widget.NewButton("Browse", sd.onBrowseDirectory)
	newFileRow := container.NewBorder(nil, nil, nil, browseBtn, sd.newFileEntry)

	form := container.NewVBox(
		widget.NewLabel("Editor command ({filepath} is replaced with the note's file):"),
		sd.editorEntry,

		widget.NewLabel("New note files are created in:"),
		newFileRow,

		widget.NewSeparator(),
		sd.confirmCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		"Settings",
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)
	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.editorEntry.SetText(sd.settings.GetEditorCommand())
	sd.confirmCheck.SetChecked(sd.settings.GetConfirmDelete())
	sd.newFileEntry.SetText(sd.settings.GetNewFileDirectory())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.newFileEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	sd.settings.SetEditorCommand(sd.editorEntry.Text)
	sd.settings.SetConfirmDelete(sd.confirmCheck.Checked)
	sd.settings.SetNewFileDirectory(sd.newFileEntry.Text)
}
