// Package theme resolves the colors the border and the reference host are
// drawn with.
package theme

import (
	"fmt"
	"image/color"
	"slices"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/log"
	tint "github.com/lrstanley/bubbletint/v2"
	"github.com/sahilm/fuzzy"
)

const maxSuggestions = 3

var enabled bool

// Initialize sets up the theme registry with the specified theme name.
// If themeName is empty, theming is disabled and standard terminal colors
// are used. Unknown names fall back to the registry default.
func Initialize(themeName string, logger *log.Logger) {
	if themeName == "" {
		enabled = false
		return
	}

	enabled = true
	tint.NewDefaultRegistry()

	if themesDir, err := GetThemesDir(); err == nil {
		if _, err := LoadCustomThemes(themesDir, logger); err != nil && logger != nil {
			logger.Warn("error loading custom themes", "dir", themesDir, "err", err)
		}
	}

	if !tint.SetTintID(themeName) {
		if logger != nil {
			logger.Warn("unknown theme, using default", "theme", themeName, "suggestions", Suggest(themeName))
		}
		tint.SetTintID("default")
	}
}

// Exists reports whether name is a registered theme.
func Exists(name string) bool {
	return slices.Contains(tint.TintIDs(), name)
}

// Suggest returns the registered theme ids closest to name, best first.
func Suggest(name string) []string {
	matches := fuzzy.Find(name, tint.TintIDs())
	out := make([]string, 0, maxSuggestions)
	for _, m := range matches {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, m.Str)
	}
	return out
}

// IsEnabled returns true if theming is enabled.
func IsEnabled() bool {
	return enabled
}

// Current returns the active theme, or nil when theming is disabled.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// SelectedTabBg is the background of the selected tab in the tab strip.
// The border color falls back to it.
func SelectedTabBg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#5c5cff")
	}
	return t.BrightBlue
}

// SelectedTabFg is the text color of the selected tab.
func SelectedTabFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#000000")
	}
	return t.Black
}

// NormalBg is the editor's normal background. The border fill falls back to
// it; without a theme it is the terminal's own background.
func NormalBg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.NoColor{}
	}
	return t.Bg
}

// NormalFg is the editor's normal text color.
func NormalFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.NoColor{}
	}
	return t.Fg
}

// TablineBg returns the background of the tab strip and the status line.
func TablineBg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#2a2a3e")
	}
	return t.BrightBlack
}

// TablineFg returns the text color of unselected tabs and the status line.
func TablineFg() color.Color {
	return lipgloss.Color("#a0a0a8")
}

// Separator returns the color of the gaps between panes.
func Separator() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#303040")
	}
	return t.BrightBlack
}

// Dimmed returns the color of placeholder pane content.
func Dimmed() color.Color {
	return lipgloss.Color("#808090")
}

// Accent returns the color of the gutter focus marker.
func Accent() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#00ff00")
	}
	return t.BrightGreen
}

// ColorToString converts a color.Color to a hex string.
func ColorToString(c color.Color) string {
	if c == nil {
		return "#000000"
	}
	if _, ok := c.(lipgloss.NoColor); ok {
		return "none"
	}
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
