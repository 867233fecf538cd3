package geometry

import (
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Glyphs is the fixed character set a border is drawn with.
// Corners that degrade to a vertical bar reuse Left or Right.
type Glyphs struct {
	TopLeft     string `json:"top_left"`
	Top         string `json:"top"`
	TopRight    string `json:"top_right"`
	Right       string `json:"right"`
	BottomRight string `json:"bottom_right"`
	Bottom      string `json:"bottom"`
	BottomLeft  string `json:"bottom_left"`
	Left        string `json:"left"`
}

// GlyphsFromBorder takes the eight border characters of a lipgloss border.
func GlyphsFromBorder(b lipgloss.Border) Glyphs {
	return Glyphs{
		TopLeft:     b.TopLeft,
		Top:         b.Top,
		TopRight:    b.TopRight,
		Right:       b.Right,
		BottomRight: b.BottomRight,
		Bottom:      b.Bottom,
		BottomLeft:  b.BottomLeft,
		Left:        b.Left,
	}
}

// DefaultGlyphs returns rounded box-drawing characters.
func DefaultGlyphs() Glyphs {
	return GlyphsFromBorder(lipgloss.RoundedBorder())
}

// ASCIIGlyphs returns a plain ASCII fallback.
func ASCIIGlyphs() Glyphs {
	return GlyphsFromBorder(lipgloss.ASCIIBorder())
}

// SingleCell reports whether every glyph occupies exactly one terminal cell.
// Plans assume one glyph per cell; wider glyphs would shift the border.
func (g Glyphs) SingleCell() bool {
	for _, s := range []string{g.TopLeft, g.Top, g.TopRight, g.Right, g.BottomRight, g.Bottom, g.BottomLeft, g.Left} {
		if ansi.StringWidth(s) != 1 {
			return false
		}
	}
	return true
}
