// Package config provides configuration constants, keybindings and user
// settings.
package config

import (
	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/winborder/internal/geometry"
)

// =============================================================================
// Screen Layout
// =============================================================================

const (
	// TablineHeight is the number of rows reserved for the tab strip.
	TablineHeight = 1

	// StatusLineHeight is the number of rows reserved for the command/status line.
	StatusLineHeight = 1

	// ScrollbarWidth is the number of columns reserved for the scrollbar.
	ScrollbarWidth = 1

	// MinScreenWidth is the narrowest screen the host will lay panes out in.
	MinScreenWidth = 10

	// MinScreenHeight is the shortest screen the host will lay panes out in.
	MinScreenHeight = 5

	// ResizeStep is the share of a split moved by one resize key press.
	ResizeStep = 0.05
)

// =============================================================================
// Z-Index Layers
// =============================================================================

const (
	ZIndexPanes      = 0
	ZIndexSeparators = 1
	ZIndexChrome     = 5
	ZIndexOverlay    = 10
	ZIndexHelp       = 20
)

// =============================================================================
// Border Styles
// =============================================================================

// BorderStyles lists the accepted values for border.style.
var BorderStyles = []string{"rounded", "normal", "thick", "double", "ascii"}

// LogLevels lists the accepted values for log.level.
var LogLevels = []string{"debug", "info", "warn", "error"}

// BorderForStyle returns the lipgloss border for a style name.
func BorderForStyle(style string, asciiOnly bool) lipgloss.Border {
	if asciiOnly || style == "ascii" {
		return lipgloss.ASCIIBorder()
	}
	switch style {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	case "rounded":
		fallthrough
	default:
		return lipgloss.RoundedBorder()
	}
}

// GlyphsForStyle returns the overlay glyph set for a style name.
func GlyphsForStyle(style string, asciiOnly bool) geometry.Glyphs {
	return geometry.GlyphsFromBorder(BorderForStyle(style, asciiOnly))
}

// =============================================================================
// Host Characters
// =============================================================================

const (
	// GutterMarker marks the focused pane's gutter when it sits on column 0.
	GutterMarker = "▎"
	// GutterMarkerASCII is the ASCII fallback for GutterMarker.
	GutterMarkerASCII = ">"
	// ScrollbarThumb is the scrollbar thumb character.
	ScrollbarThumb = "█"
	// ScrollbarThumbASCII is the ASCII fallback for ScrollbarThumb.
	ScrollbarThumbASCII = "#"
	// Ellipsis ends truncated titles.
	Ellipsis = "…"
)
