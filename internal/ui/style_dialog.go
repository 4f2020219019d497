package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/desknotes/desknotes/internal/model"
)

// StylingDialog edits a note's visual style with live preview. The style at
// open time is snapshotted: Confirm commits the edited values through
// onCommit exactly once, Cancel reapplies the snapshot and commits nothing.
type StylingDialog struct {
	target   *NoteWidget
	window   fyne.Window
	dialog   *dialog.ConfirmDialog
	onCommit func(model.Style)

	original model.Style // snapshot captured when the dialog opened
	current  model.Style

	// UI components
	transparencySlider *widget.Slider
	transparencyLabel  *widget.Label
	colorButton        *widget.Button
	colorPreview       *canvas.Rectangle
	marginSlider       *widget.Slider
	marginLabel        *widget.Label
}

// NewStylingDialog creates a styling dialog for the given note widget.
// onCommit receives the final style when the user confirms.
func NewStylingDialog(target *NoteWidget, window fyne.Window, onCommit func(model.Style)) *StylingDialog {
	sd := &StylingDialog{
		target:   target,
		window:   window,
		onCommit: onCommit,
		original: target.Note().Style,
		current:  target.Note().Style,
	}

	sd.createUI()
	return sd
}

// Show displays the styling dialog
func (sd *StylingDialog) Show() {
	sd.loadCurrentStyle()
	sd.dialog.Show()
}

// createUI creates the styling dialog UI
func (sd *StylingDialog) createUI() {
	// Transparency: 0.0 invisible, 1.0 opaque
	sd.transparencySlider = widget.NewSlider(0, 1)
	sd.transparencySlider.Step = 1.0 / TransparencySteps
	sd.transparencySlider.OnChanged = sd.onTransparencyChanged
	sd.transparencyLabel = widget.NewLabel("")

	// Background color
	sd.colorButton = widget.NewButton("Choose Color", sd.onChooseColor)
	sd.colorPreview = canvas.NewRectangle(color.Transparent)
	sd.colorPreview.SetMinSize(fyne.NewSize(50, 20))
	colorRow := container.NewBorder(nil, nil, nil, sd.colorPreview, sd.colorButton)

	// Margin
	sd.marginSlider = widget.NewSlider(0, MaxStyleMargin)
	sd.marginSlider.Step = 1
	sd.marginSlider.OnChanged = sd.onMarginChanged
	sd.marginLabel = widget.NewLabel("")

	form := container.NewVBox(
		widget.NewLabel("Transparency:"),
		container.NewBorder(nil, nil, nil, sd.transparencyLabel, sd.transparencySlider),

		widget.NewLabel("Background Color:"),
		colorRow,

		widget.NewLabel("Margin (pixels):"),
		container.NewBorder(nil, nil, nil, sd.marginLabel, sd.marginSlider),
	)

	sd.dialog = dialog.NewCustomConfirm(
		"Note Styling",
		"OK",
		"Cancel",
		form,
		sd.onClose,
		sd.window,
	)
	sd.dialog.Resize(fyne.NewSize(StyleDialogWidth, StyleDialogHeight))
}

// loadCurrentStyle loads the snapshot into the controls
func (sd *StylingDialog) loadCurrentStyle() {
	sd.transparencySlider.SetValue(sd.current.Transparency)
	sd.marginSlider.SetValue(float64(sd.current.Margin))
	sd.refreshLabels()
}

func (sd *StylingDialog) refreshLabels() {
	sd.transparencyLabel.SetText(fmt.Sprintf("%d%%", int(sd.current.Transparency*100)))
	sd.marginLabel.SetText(fmt.Sprintf("%d", sd.current.Margin))
	sd.colorPreview.FillColor = ParseHexColor(sd.current.BackgroundColor, 1.0)
	sd.colorPreview.Refresh()
}

func (sd *StylingDialog) onTransparencyChanged(value float64) {
	sd.current.Transparency = value
	sd.preview()
}

func (sd *StylingDialog) onMarginChanged(value float64) {
	sd.current.Margin = int(value)
	sd.preview()
}

func (sd *StylingDialog) onChooseColor() {
	picker := dialog.NewColorPicker("Background Color", "Pick the note background", func(c color.Color) {
		sd.current.BackgroundColor = hexFromColor(c)
		sd.preview()
	}, sd.window)
	picker.Advanced = true
	picker.Show()
}

// preview pushes every control change straight to the live widget.
func (sd *StylingDialog) preview() {
	sd.refreshLabels()
	sd.target.PreviewStyle(sd.current)
}

// onClose commits on confirm, reverts to the snapshot on cancel. No partial
// write can reach the store on cancel.
func (sd *StylingDialog) onClose(confirmed bool) {
	if !confirmed {
		sd.current = sd.original
		sd.target.ClearStylePreview()
		return
	}

	sd.target.SetStyle(sd.current)
	if sd.onCommit != nil {
		sd.onCommit(sd.current.Clamped())
	}
}

func hexFromColor(c color.Color) string {
	rgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02X%02X%02X", rgba.R, rgba.G, rgba.B)
}
