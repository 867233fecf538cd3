package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/winborder/internal/geometry"
)

// BorderStyles holds the two named styles segments are drawn with. They are
// resolved once at setup time.
type BorderStyles struct {
	BorderColor color.Color
	FillColor   color.Color
	Border      lipgloss.Style
	None        lipgloss.Style
}

// ResolveBorderStyles builds the "border" and "border-none" styles.
// An empty borderHex falls back to the selected tab background, an empty
// fillHex to the normal background. Callers validate hex values beforehand.
func ResolveBorderStyles(borderHex, fillHex string) BorderStyles {
	var border, fill color.Color
	if borderHex != "" {
		border = lipgloss.Color(borderHex)
	} else {
		border = SelectedTabBg()
	}
	if fillHex != "" {
		fill = lipgloss.Color(fillHex)
	} else {
		fill = NormalBg()
	}

	return BorderStyles{
		BorderColor: border,
		FillColor:   fill,
		Border:      lipgloss.NewStyle().Foreground(border).Background(fill),
		None:        lipgloss.NewStyle().Foreground(fill).Background(fill),
	}
}

// For returns the lipgloss style behind a segment style name.
func (s BorderStyles) For(style geometry.Style) lipgloss.Style {
	if style == geometry.StyleBorder {
		return s.Border
	}
	return s.None
}
