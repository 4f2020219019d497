package ui

import (
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/desknotes/desknotes/internal/geometry"
)

// CursorForHandle maps a classified handle to the conventional pointer
// shape. Fyne's standard set has no diagonal resize cursors, so the four
// corners fall back to the crosshair. Outside drag/resize mode everything is
// the default arrow.
func CursorForHandle(h geometry.Handle, active bool) desktop.Cursor {
	if !active {
		return desktop.DefaultCursor
	}

	switch h {
	case geometry.HandleLeft, geometry.HandleRight:
		return desktop.HResizeCursor
	case geometry.HandleTop, geometry.HandleBottom:
		return desktop.VResizeCursor
	case geometry.HandleTopLeft, geometry.HandleTopRight,
		geometry.HandleBottomLeft, geometry.HandleBottomRight:
		return desktop.CrosshairCursor
	case geometry.HandleBody:
		return desktop.PointerCursor
	default:
		return desktop.DefaultCursor
	}
}
