package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/winborder/internal/config"
	"github.com/Gaurav-Gosain/winborder/internal/geometry"
	"github.com/Gaurav-Gosain/winborder/internal/theme"
	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	fallbackRows = 24
	fallbackCols = 80
)

type planFlags struct {
	pane    geometry.Rect
	rows    int
	cols    int
	style   string
	json    bool
	preview bool
}

// planReport is the --json output of the plan command.
type planReport struct {
	Pane           geometry.Rect       `json:"pane"`
	Screen         geometry.Screen     `json:"screen"`
	Edges          []string            `json:"edges"`
	LeftmostColumn bool                `json:"leftmost_column"`
	Plan           geometry.BorderPlan `json:"plan"`
}

func newPlanCmd() *cobra.Command {
	var f planFlags

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the border plan for a pane",
		Long: `Compute the border for a pane rectangle and print it

The screen size defaults to the current terminal. Row 0 is the tab strip,
the last row is the command line and the last column is the scrollbar.`,
		Example: `  # Right half of an 80x24 screen
  winborder plan --row 1 --col 40 --width 39 --height 22 --rows 24 --cols 80

  # Same, as JSON
  winborder plan --row 1 --col 40 --width 39 --height 22 --json

  # Draw the border on a miniature screen
  winborder plan --row 3 --col 10 --width 20 --height 6 --rows 12 --cols 40 --preview`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f.rows == 0 || f.cols == 0 {
				rows, cols := terminalSize()
				if f.rows == 0 {
					f.rows = rows
				}
				if f.cols == 0 {
					f.cols = cols
				}
			}
			return runPlan(cmd.OutOrStdout(), f)
		},
	}

	cmd.Flags().IntVar(&f.pane.Row, "row", 1, "Pane top row")
	cmd.Flags().IntVar(&f.pane.Col, "col", 0, "Pane left column")
	cmd.Flags().IntVar(&f.pane.Width, "width", 0, "Pane width (required)")
	cmd.Flags().IntVar(&f.pane.Height, "height", 0, "Pane height (required)")
	cmd.Flags().IntVar(&f.rows, "rows", 0, "Screen rows (default: current terminal)")
	cmd.Flags().IntVar(&f.cols, "cols", 0, "Screen columns (default: current terminal)")
	cmd.Flags().StringVar(&f.style, "style", "", "Border style: rounded, normal, thick, double, ascii")
	cmd.Flags().BoolVar(&f.json, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&f.preview, "preview", false, "Draw the border on a miniature screen")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("height")

	return cmd
}

// terminalSize returns the size of the terminal on stdout, or 24x80.
func terminalSize() (rows, cols int) {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || rows <= 0 || cols <= 0 {
		return fallbackRows, fallbackCols
	}
	return rows, cols
}

func runPlan(out io.Writer, f planFlags) error {
	if !f.pane.Valid() {
		return fmt.Errorf("pane %dx%d is empty: width and height must be positive", f.pane.Width, f.pane.Height)
	}
	screen := geometry.Screen{Rows: f.rows, Cols: f.cols}
	if f.pane.Row < 0 || f.pane.Col < 0 || f.pane.LastRow() >= screen.Rows || f.pane.LastCol() >= screen.Cols {
		return fmt.Errorf("pane %+v does not fit a %dx%d screen", f.pane, screen.Cols, screen.Rows)
	}

	style := f.style
	if style == "" {
		style = borderStyle
	}
	if style == "" {
		style = "rounded"
	}
	plan := geometry.ComputeWith(f.pane, screen, config.GlyphsForStyle(style, asciiOnly))

	if f.json {
		report := planReport{
			Pane:           f.pane,
			Screen:         screen,
			Edges:          edgeNames(plan.Edges),
			LeftmostColumn: geometry.IsLeftmostColumn(f.pane),
			Plan:           plan,
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	if _, err := io.WriteString(out, describePlan(f.pane, screen, plan)); err != nil {
		return err
	}
	if !f.preview {
		return nil
	}

	if themeName != "" {
		theme.Initialize(themeName, nil)
	}
	styles := theme.ResolveBorderStyles(borderColor, "")
	w := colorprofile.NewWriter(out, os.Environ())
	_, err := io.WriteString(w, "\n"+renderPreview(f.pane, screen, plan, styles)+"\n")
	return err
}

func edgeNames(e geometry.EdgeSet) []string {
	names := []string{}
	for _, edge := range []struct {
		flag geometry.EdgeSet
		name string
	}{
		{geometry.EdgeTop, "top"},
		{geometry.EdgeBottom, "bottom"},
		{geometry.EdgeLeft, "left"},
		{geometry.EdgeRight, "right"},
	} {
		if e.Has(edge.flag) {
			names = append(names, edge.name)
		}
	}
	return names
}

func describePlan(pane geometry.Rect, screen geometry.Screen, plan geometry.BorderPlan) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "pane      row=%d col=%d width=%d height=%d\n", pane.Row, pane.Col, pane.Width, pane.Height)
	fmt.Fprintf(&sb, "screen    %dx%d\n", screen.Cols, screen.Rows)
	fmt.Fprintf(&sb, "edges     %s\n", plan.Edges)
	fmt.Fprintf(&sb, "leftmost  %t\n", geometry.IsLeftmostColumn(pane))
	o := plan.Overlay
	fmt.Fprintf(&sb, "overlay   row=%d col=%d width=%d height=%d\n", o.Row, o.Col, o.Width, o.Height)
	sb.WriteString("segments\n")
	for _, seg := range plan.Segments {
		glyph := "-"
		if seg.Visible {
			glyph = seg.Glyph
		}
		fmt.Fprintf(&sb, "  %-13s %-2s %s\n", seg.Name, glyph, seg.Style)
	}
	return sb.String()
}

// renderPreview draws the screen with its chrome, the pane and the border
// cells on top.
func renderPreview(pane geometry.Rect, screen geometry.Screen, plan geometry.BorderPlan, styles theme.BorderStyles) string {
	chrome := lipgloss.NewStyle().Foreground(theme.Separator())
	paneStyle := lipgloss.NewStyle().Foreground(theme.Dimmed())

	grid := make([][]string, screen.Rows)
	for r := range grid {
		grid[r] = make([]string, screen.Cols)
		for c := range grid[r] {
			switch {
			case pane.Contains(r, c):
				grid[r][c] = paneStyle.Render("·")
			case r == 0 || r == screen.Rows-1 || c == screen.Cols-1:
				grid[r][c] = chrome.Render("░")
			default:
				grid[r][c] = " "
			}
		}
	}

	for _, cell := range plan.Cells() {
		if cell.Row < 0 || cell.Row >= screen.Rows || cell.Col < 0 || cell.Col >= screen.Cols {
			continue
		}
		grid[cell.Row][cell.Col] = styles.For(cell.Style).Render(cell.Glyph)
	}

	lines := make([]string, len(grid))
	for r, row := range grid {
		lines[r] = strings.Join(row, "")
	}
	return strings.Join(lines, "\n")
}
