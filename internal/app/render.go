package app

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/winborder/internal/config"
	"github.com/Gaurav-Gosain/winborder/internal/geometry"
	"github.com/Gaurav-Gosain/winborder/internal/overlay"
	"github.com/Gaurav-Gosain/winborder/internal/theme"
	"github.com/charmbracelet/x/ansi"
)

// View implements tea.Model.
func (m *Model) View() tea.View {
	var view tea.View
	view.SetContent(m.Render())
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion
	view.WindowTitle = "winborder"
	return view
}

// Render draws the whole screen.
func (m *Model) Render() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}
	return lipgloss.Sprint(m.GetCanvas().Render())
}

// GetCanvas composes the screen from layers: panes and separators at the
// bottom, host chrome above them, the border overlay above that.
func (m *Model) GetCanvas() *lipgloss.Canvas {
	canvas := lipgloss.NewCanvas(m.Width, m.Height)

	var layers []*lipgloss.Layer
	if m.cfg.Tabline() {
		layers = append(layers, lipgloss.NewLayer(m.renderTabline()).
			X(0).Y(0).Z(config.ZIndexChrome).ID("tabline"))
	}

	if m.layoutErr != nil {
		area := m.PaneArea()
		if area.Valid() {
			msg := ansi.Truncate("screen too small", area.Width, config.Ellipsis)
			layers = append(layers, lipgloss.NewLayer(msg).
				X(area.Col).Y(area.Row).Z(config.ZIndexPanes).ID("too-small"))
		}
	} else {
		focused := m.tree.Focused()
		for _, p := range m.PaneOrder() {
			r, ok := m.layout.Panes[string(p.ID)]
			if !ok {
				continue
			}
			content := m.renderPane(p, r, string(p.ID) == focused)
			layers = append(layers, lipgloss.NewLayer(content).
				X(r.Col).Y(r.Row).Z(config.ZIndexPanes).ID(string(p.ID)))
		}
		for i, sep := range m.layout.Separators {
			layers = append(layers, lipgloss.NewLayer(m.renderSeparator(sep.Rect)).
				X(sep.Col).Y(sep.Row).Z(config.ZIndexSeparators).ID(fmt.Sprintf("sep-%d", i)))
		}
	}

	if m.cfg.Scrollbar() {
		area := m.PaneArea()
		if area.Height > 0 && m.Width > 0 {
			layers = append(layers, lipgloss.NewLayer(m.renderScrollbar(area.Height)).
				X(m.Width-1).Y(area.Row).Z(config.ZIndexChrome).ID("scrollbar"))
		}
	}

	layers = append(layers, lipgloss.NewLayer(m.renderStatusLine()).
		X(0).Y(m.Height-1).Z(config.ZIndexChrome).ID("status"))

	layers = append(layers, m.overlayLayers()...)

	if m.ShowHelp {
		help := m.renderHelp()
		x := max(0, (m.Width-lipgloss.Width(help))/2)
		y := max(0, (m.Height-lipgloss.Height(help))/2)
		layers = append(layers, lipgloss.NewLayer(help).
			X(x).Y(y).Z(config.ZIndexHelp).ID("help"))
	}

	for _, layer := range layers {
		canvas.Compose(layer)
	}
	return canvas
}

// overlayLayers turns every applied border plan into one layer per cell.
func (m *Model) overlayLayers() []*lipgloss.Layer {
	var layers []*lipgloss.Layer
	for _, plan := range m.OverlayPlans() {
		for _, cell := range plan.Cells() {
			content := m.styles.For(cell.Style).Render(cell.Glyph)
			layers = append(layers, lipgloss.NewLayer(content).
				X(cell.Col).Y(cell.Row).Z(config.ZIndexOverlay))
		}
	}
	return layers
}

func (m *Model) renderTabline() string {
	selected := lipgloss.NewStyle().
		Background(theme.SelectedTabBg()).
		Foreground(theme.SelectedTabFg()).
		Bold(true)
	normal := lipgloss.NewStyle().
		Background(theme.TablineBg()).
		Foreground(theme.TablineFg())

	focused := m.Focused()
	var sb strings.Builder
	for _, p := range m.PaneOrder() {
		label := " " + p.Title() + " "
		if p == focused {
			sb.WriteString(selected.Render(label))
		} else {
			sb.WriteString(normal.Render(label))
		}
	}

	line := ansi.Truncate(sb.String(), m.Width, "")
	if pad := m.Width - ansi.StringWidth(line); pad > 0 {
		line += normal.Render(strings.Repeat(" ", pad))
	}
	return line
}

func (m *Model) renderPane(p *Pane, r geometry.Rect, focused bool) string {
	dim := lipgloss.NewStyle().Foreground(theme.Dimmed())
	text := lipgloss.NewStyle().Foreground(theme.NormalFg())
	marker := lipgloss.NewStyle().Foreground(theme.Accent())

	gutter := "~"
	showMarker := focused && geometry.IsLeftmostColumn(r) && m.controller.State() == overlay.Enabled
	if showMarker {
		gutter = config.GutterMarker
		if m.cfg.Appearance.ASCIIOnly {
			gutter = config.GutterMarkerASCII
		}
	}

	lines := make([]string, 0, r.Height)
	row := 0
	if m.reserved == p.ID {
		header := lipgloss.NewStyle().
			Background(m.styles.BorderColor).
			Foreground(theme.SelectedTabFg()).
			Bold(true)
		title := ansi.Truncate(" "+p.Title(), r.Width, config.Ellipsis)
		lines = append(lines, header.Render(padRight(title, r.Width)))
		row++
	}

	first := row
	g := dim.Render(gutter)
	if showMarker {
		g = marker.Render(gutter)
	}
	for ; row < r.Height; row++ {
		var body string
		if row == first {
			body = fmt.Sprintf(" %s  %dx%d", p.Title(), r.Width, r.Height)
		}
		body = ansi.Truncate(body, max(0, r.Width-1), config.Ellipsis)
		lines = append(lines, g+text.Render(padRight(body, r.Width-1)))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderSeparator(r geometry.Rect) string {
	style := lipgloss.NewStyle().Foreground(theme.Separator())
	vertical, horizontal := "│", "─"
	if m.cfg.Appearance.ASCIIOnly {
		vertical, horizontal = "|", "-"
	}
	if r.Width == 1 {
		return style.Render(strings.TrimSuffix(strings.Repeat(vertical+"\n", r.Height), "\n"))
	}
	return style.Render(strings.Repeat(horizontal, r.Width))
}

// renderScrollbar draws a track with a thumb placed by the focused pane's
// position in the pane order.
func (m *Model) renderScrollbar(height int) string {
	track := lipgloss.NewStyle().Foreground(theme.Separator())
	thumbStyle := lipgloss.NewStyle().Foreground(theme.Dimmed())
	thumb := config.ScrollbarThumb
	bar := "│"
	if m.cfg.Appearance.ASCIIOnly {
		thumb, bar = config.ScrollbarThumbASCII, "|"
	}

	order := m.PaneOrder()
	index := 0
	focused := m.Focused()
	for i, p := range order {
		if p == focused {
			index = i
		}
	}
	size := max(1, height/max(1, len(order)))
	start := 0
	if len(order) > 1 {
		start = index * (height - size) / (len(order) - 1)
	}

	rows := make([]string, height)
	for i := range rows {
		if i >= start && i < start+size {
			rows[i] = thumbStyle.Render(thumb)
		} else {
			rows[i] = track.Render(bar)
		}
	}
	return strings.Join(rows, "\n")
}

func (m *Model) renderStatusLine() string {
	style := lipgloss.NewStyle().
		Background(theme.TablineBg()).
		Foreground(theme.TablineFg())

	left := " " + m.StatusText()
	if m.Message != "" {
		left += "  " + m.Message
	}
	right := "? help "
	if keys := m.keys.Keys(config.ActionToggleHelp); len(keys) > 0 {
		right = keys[0] + " help "
	}

	gap := m.Width - ansi.StringWidth(left) - ansi.StringWidth(right)
	line := left
	if gap > 0 {
		line += strings.Repeat(" ", gap) + right
	}
	return style.Render(padRight(ansi.Truncate(line, m.Width, config.Ellipsis), m.Width))
}

// StatusText summarises the focused pane and the border state.
func (m *Model) StatusText() string {
	p := m.Focused()
	id, r, err := m.FocusedPane()
	edges := "n/a"
	if err == nil && id == p.ID {
		edges = geometry.IsEdge(r, m.Screen()).String()
	}
	return fmt.Sprintf("%s  edges:%s  border:%s/%s",
		p.Title(), edges, m.controller.State(), m.controller.Overlay())
}

func (m *Model) renderHelp() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.Accent())
	keyStyle := lipgloss.NewStyle().Foreground(theme.SelectedTabBg())

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("winborder keys"))
	for _, section := range m.keys.Sections() {
		sb.WriteString("\n\n" + titleStyle.Render(section.Title))
		for _, b := range section.Bindings {
			sb.WriteString(fmt.Sprintf("\n  %s  %s", keyStyle.Render(padRight(b.Key, 14)), b.Description))
		}
	}

	box := lipgloss.NewStyle().
		Border(config.BorderForStyle(m.cfg.Border.Style, m.cfg.Appearance.ASCIIOnly)).
		BorderForeground(m.styles.BorderColor).
		Padding(0, 1)
	return box.Render(sb.String())
}

func padRight(s string, width int) string {
	if pad := width - ansi.StringWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
