package ui

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/desknotes/desknotes/internal/model"
)

// ParseHexColor converts a #RRGGBB string and a transparency in [0,1] into a
// renderable color. Unparseable strings fall back to the default note color
// so a bad row never blanks the widget.
func ParseHexColor(hex string, transparency float64) color.NRGBA {
	r, g, b, ok := hexComponents(hex)
	if !ok {
		r, g, b, _ = hexComponents(model.DefaultBackgroundColor)
	}

	if transparency < 0 {
		transparency = 0
	}
	if transparency > 1 {
		transparency = 1
	}
	return color.NRGBA{R: r, G: g, B: b, A: uint8(transparency * 255)}
}

func hexComponents(hex string) (r, g, b uint8, ok bool) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(value >> 16), uint8(value >> 8), uint8(value), true
}

// ReadableTextColor picks black or white text against the given background,
// using the same lightness cutoff the note background uses for its content.
func ReadableTextColor(bg color.NRGBA) color.Color {
	// Rec. 601 luma approximation is plenty for a yes/no cutoff.
	luma := 0.299*float64(bg.R) + 0.587*float64(bg.G) + 0.114*float64(bg.B)
	if luma < 128 {
		return color.White
	}
	return color.Black
}
