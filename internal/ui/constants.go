package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Board window sizing
const (
	BoardWidth  float32 = 1024
	BoardHeight float32 = 700
)

// Note widget rendering
const (
	PlaceholderText             = "Select File..."
	PlaceholderTextSize float32 = 22
	ErrorTextSize       float32 = 12
	ActiveBorderWidth   float32 = 2
)

// Dialog sizing
const (
	StyleDialogWidth     float32 = 420
	StyleDialogHeight    float32 = 320
	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 220
	ManagerWidth         float32 = 560
	ManagerHeight        float32 = 400
)

// Context menu labels
const (
	MenuSelectFile = "Select file"
	MenuDragResize = "Drag/Resize"
	MenuStyling    = "Styling"
	MenuNewFile    = "New file"
	MenuAddNote    = "Add New Note"
	MenuOpenNotes  = "Open Notes"
	MenuHide       = "Hide"
	MenuDelete     = "Delete"
)

// Text fragments
const (
	NoFilePlaceholder = "(no file)"
	ErrorFacePrefix   = "Note unavailable"
)

// Style dialog ranges
const (
	MaxStyleMargin    = 100
	TransparencySteps = 100
)
