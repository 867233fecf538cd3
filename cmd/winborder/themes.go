package main

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/winborder/internal/config"
	"github.com/Gaurav-Gosain/winborder/internal/geometry"
	"github.com/Gaurav-Gosain/winborder/internal/theme"
	"github.com/charmbracelet/colorprofile"
	tint "github.com/lrstanley/bubbletint/v2"
)

func printThemes(out io.Writer) error {
	theme.Initialize("default", nil)
	for _, id := range tint.TintIDs() {
		if _, err := fmt.Fprintln(out, id); err != nil {
			return err
		}
	}
	return nil
}

// previewThemeColors prints the theme's 16 ANSI colors, the colors the border
// resolves to and a sample border between two panes.
func previewThemeColors(out io.Writer, name string) error {
	theme.Initialize(name, nil)
	if !theme.Exists(name) {
		if suggestions := theme.Suggest(name); len(suggestions) > 0 {
			return fmt.Errorf("theme %q not found, did you mean: %s", name, strings.Join(suggestions, ", "))
		}
		return fmt.Errorf("theme %q not found", name)
	}
	t := theme.Current()

	w := colorprofile.NewWriter(out, os.Environ())

	swatch := func(c color.Color) string {
		return lipgloss.NewStyle().Background(c).Render("    ")
	}
	normal := []*tint.Color{t.Black, t.Red, t.Green, t.Yellow, t.Blue, t.Purple, t.Cyan, t.White}
	bright := []*tint.Color{t.BrightBlack, t.BrightRed, t.BrightGreen, t.BrightYellow, t.BrightBlue, t.BrightPurple, t.BrightCyan, t.BrightWhite}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s)\n\n", t.DisplayName, t.ID)
	for _, row := range [][]*tint.Color{normal, bright} {
		for _, c := range row {
			sb.WriteString(swatch(c))
		}
		sb.WriteString("\n")
	}

	styles := theme.ResolveBorderStyles(borderColor, "")
	fmt.Fprintf(&sb, "\nborder  %s %s\n", swatch(styles.BorderColor), theme.ColorToString(styles.BorderColor))
	fmt.Fprintf(&sb, "fill    %s %s\n\n", swatch(styles.FillColor), theme.ColorToString(styles.FillColor))

	// Two side-by-side panes on a small screen, the right one focused.
	screen := geometry.Screen{Rows: 8, Cols: 32}
	pane := geometry.Rect{Row: 1, Col: 16, Width: 15, Height: 6}
	style := borderStyle
	if style == "" {
		style = "rounded"
	}
	plan := geometry.ComputeWith(pane, screen, config.GlyphsForStyle(style, asciiOnly))
	sb.WriteString(renderPreview(pane, screen, plan, styles))
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}
