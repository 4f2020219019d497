package model

import (
	"regexp"

	"github.com/desknotes/desknotes/internal/apperror"
)

// Style defaults, matching what a brand new note looks like.
const (
	DefaultTransparency    = 1.0
	DefaultBackgroundColor = "#FFFFE0" // light yellow
	DefaultMargin          = 5
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Style is the visual appearance of a note. It is persisted as a single JSON
// blob in the store's style column.
type Style struct {
	Transparency    float64 `json:"transparency"`    // 0.0 (invisible) to 1.0 (opaque)
	BackgroundColor string  `json:"backgroundColor"` // #RRGGBB
	Margin          int     `json:"margin"`          // uniform content padding in pixels
}

// DefaultStyle returns the style applied to freshly created notes
func DefaultStyle() Style {
	return Style{
		Transparency:    DefaultTransparency,
		BackgroundColor: DefaultBackgroundColor,
		Margin:          DefaultMargin,
	}
}

// Clamped returns a copy with transparency forced into [0,1] and a
// non-negative margin. An unset background color falls back to the default.
func (s Style) Clamped() Style {
	if s.Transparency < 0 {
		s.Transparency = 0
	}
	if s.Transparency > 1 {
		s.Transparency = 1
	}
	if s.Margin < 0 {
		s.Margin = 0
	}
	if s.BackgroundColor == "" {
		s.BackgroundColor = DefaultBackgroundColor
	}
	return s
}

// Validate rejects values that clamping cannot repair
func (s Style) Validate() error {
	if s.Transparency < 0 || s.Transparency > 1 {
		return apperror.InvalidInput("transparency", "must be between 0.0 and 1.0")
	}
	if !hexColorPattern.MatchString(s.BackgroundColor) {
		return apperror.InvalidInput("backgroundColor", "must be a #RRGGBB hex string")
	}
	if s.Margin < 0 {
		return apperror.InvalidInput("margin", "must not be negative")
	}
	return nil
}
