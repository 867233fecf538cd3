package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/winborder/internal/config"
	"github.com/Gaurav-Gosain/winborder/internal/geometry"
	"github.com/Gaurav-Gosain/winborder/internal/layout"
	"github.com/Gaurav-Gosain/winborder/internal/overlay"
	"github.com/charmbracelet/x/ansi"
)

func key(s string) tea.KeyPressMsg {
	switch s {
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "shift+tab":
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func newTestModel(t *testing.T, cfg *config.UserConfig, width, height int) *Model {
	t.Helper()
	m := New(cfg, nil)
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m
}

func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(key(k))
	}
	return cmd
}

func onlyPlan(t *testing.T, m *Model) geometry.BorderPlan {
	t.Helper()
	plans := m.OverlayPlans()
	if len(plans) != 1 {
		t.Fatalf("got %d overlay plans, want 1", len(plans))
	}
	return plans[0]
}

func assertCounts(t *testing.T, m *Model, buffers, surfaces, subs int) {
	t.Helper()
	b, s, u := m.Counts()
	if b != buffers || s != surfaces || u != subs {
		t.Errorf("counts = %d buffers, %d surfaces, %d subscriptions; want %d, %d, %d",
			b, s, u, buffers, surfaces, subs)
	}
}

func TestNewEnablesBorderOnStartup(t *testing.T) {
	m := newTestModel(t, nil, 80, 24)

	if m.Controller().State() != overlay.Enabled {
		t.Fatalf("state = %v, want enabled", m.Controller().State())
	}
	// One pane: buffer and subscription exist, no surface.
	assertCounts(t, m, 1, 0, 1)
}

func TestNewRespectsDisabledStartup(t *testing.T) {
	cfg := config.ApplyOverrides(config.Overrides{DisableBorder: true}, config.DefaultConfig())
	m := newTestModel(t, cfg, 80, 24)

	if m.Controller().State() != overlay.Disabled {
		t.Fatalf("state = %v, want disabled", m.Controller().State())
	}
	press(m, "v")
	assertCounts(t, m, 0, 0, 0)
}

func TestPaneArea(t *testing.T) {
	tests := []struct {
		name      string
		tabline   bool
		scrollbar bool
		want      geometry.Rect
	}{
		{"all chrome", true, true, geometry.Rect{Row: 1, Col: 0, Width: 79, Height: 22}},
		{"no tabline", false, true, geometry.Rect{Row: 0, Col: 0, Width: 79, Height: 23}},
		{"no scrollbar", true, false, geometry.Rect{Row: 1, Col: 0, Width: 80, Height: 22}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Appearance.Tabline = &tt.tabline
			cfg.Appearance.Scrollbar = &tt.scrollbar
			m := newTestModel(t, cfg, 80, 24)
			if got := m.PaneArea(); got != tt.want {
				t.Errorf("PaneArea() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSplitVerticalDrawsBorder(t *testing.T) {
	m := newTestModel(t, nil, 80, 24)
	press(m, "v")

	if got := len(m.PaneOrder()); got != 2 {
		t.Fatalf("panes = %d, want 2", got)
	}
	assertCounts(t, m, 1, 1, 1)

	second := m.Focused()
	r, _ := m.PaneRect(second.ID)
	if want := (geometry.Rect{Row: 1, Col: 40, Width: 39, Height: 22}); r != want {
		t.Fatalf("new pane rect = %+v, want %+v", r, want)
	}

	plan := onlyPlan(t, m)
	if want := (geometry.Rect{Row: 1, Col: 39, Width: 40, Height: 22}); plan.Overlay != want {
		t.Errorf("overlay = %+v, want %+v", plan.Overlay, want)
	}
	if want := geometry.EdgeTop | geometry.EdgeBottom | geometry.EdgeRight; plan.Edges != want {
		t.Errorf("edges = %v, want %v", plan.Edges, want)
	}
	if !plan.Segment(geometry.Left).Visible || plan.Segment(geometry.Top).Visible {
		t.Error("want left side drawn and top side blank")
	}
	if !plan.Segment(geometry.Right).Visible {
		t.Error("right side must always be drawn")
	}
}

func TestFocusMovesBorder(t *testing.T) {
	m := newTestModel(t, nil, 80, 24)
	press(m, "v", "shift+tab")

	first := m.PaneOrder()[0]
	if m.Focused() != first {
		t.Fatalf("focused = %s, want %s", m.Focused().Title(), first.Title())
	}
	plan := onlyPlan(t, m)
	if want := (geometry.Rect{Row: 1, Col: 0, Width: 40, Height: 22}); plan.Overlay != want {
		t.Errorf("overlay = %+v, want %+v", plan.Overlay, want)
	}
	if m.Controller().LastFocused() != first.ID {
		t.Errorf("LastFocused() = %s, want %s", m.Controller().LastFocused(), first.ID)
	}

	press(m, "tab")
	if m.Focused() == first {
		t.Error("tab did not move focus")
	}
}

func TestClosePaneRemovesOverlay(t *testing.T) {
	m := newTestModel(t, nil, 80, 24)
	press(m, "v", "x")

	if got := len(m.PaneOrder()); got != 1 {
		t.Fatalf("panes = %d, want 1", got)
	}
	assertCounts(t, m, 1, 0, 1)
	if m.Controller().Overlay() != overlay.OverlayAbsent {
		t.Error("overlay should be absent with one pane")
	}

	press(m, "x")
	if m.Message == "" {
		t.Error("closing the last pane should report a message")
	}
}

func TestThreePanesCloseKeepsBorder(t *testing.T) {
	m := newTestModel(t, nil, 80, 24)
	press(m, "v", "s", "x")

	if got := len(m.PaneOrder()); got != 2 {
		t.Fatalf("panes = %d, want 2", got)
	}
	assertCounts(t, m, 1, 1, 1)

	id, r, err := m.FocusedPane()
	if err != nil {
		t.Fatal(err)
	}
	plan := onlyPlan(t, m)
	if plan != geometry.ComputeWith(r, m.Screen(), geometry.DefaultGlyphs()) {
		t.Errorf("overlay for %s does not match a fresh computation", id)
	}
}

func TestToggleBorder(t *testing.T) {
	m := newTestModel(t, nil, 80, 24)
	press(m, "v", "b")

	if m.Controller().State() != overlay.Disabled {
		t.Fatal("b should disable the border")
	}
	assertCounts(t, m, 0, 0, 0)

	press(m, "b")
	if m.Controller().State() != overlay.Enabled {
		t.Fatal("b should enable the border again")
	}
	assertCounts(t, m, 1, 1, 1)
}

func TestResizeUpdatesBorder(t *testing.T) {
	m := newTestModel(t, nil, 80, 24)
	press(m, "v", "shift+tab", "l")

	first := m.PaneOrder()[0]
	r, _ := m.PaneRect(first.ID)
	if r.Width != 43 {
		t.Fatalf("width after grow = %d, want 43", r.Width)
	}
	plan := onlyPlan(t, m)
	if plan.Overlay.Width != 44 {
		t.Errorf("overlay width = %d, want 44", plan.Overlay.Width)
	}
}

func TestRefusedResizeRestoresRatio(t *testing.T) {
	m := newTestModel(t, nil, 80, 24)
	m.SplitFocused(layout.Vertical)
	if err := m.FocusPaneNumber(1); err != nil {
		t.Fatal(err)
	}
	m.SplitFocused(layout.Vertical)
	if err := m.FocusPaneNumber(2); err != nil {
		t.Fatal(err)
	}
	right := m.tree.Focused()

	// Leave the nested left split three columns, the least it can hold.
	m.tree.SetRatio(right, layout.Vertical, 0.15)
	chrome := m.Width - m.PaneArea().Width
	m.Resize(21+chrome, 24)
	if m.layoutErr != nil {
		t.Fatalf("layout error before resize: %v", m.layoutErr)
	}

	// The step is clamped to MinRatio, which leaves the left split too narrow.
	m.ResizeFocused(layout.Vertical, 0.1)
	if m.layoutErr != nil {
		t.Errorf("layout error after refused resize: %v", m.layoutErr)
	}
	if got, _ := m.tree.Ratio(right, layout.Vertical); got != 0.15 {
		t.Errorf("ratio = %v after refused resize, want 0.15", got)
	}
}

func TestWindowResizeRecomputes(t *testing.T) {
	m := newTestModel(t, nil, 80, 24)
	press(m, "v")
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	_, r, err := m.FocusedPane()
	if err != nil {
		t.Fatal(err)
	}
	plan := onlyPlan(t, m)
	if want := geometry.ComputeWith(r, m.Screen(), geometry.DefaultGlyphs()); plan != want {
		t.Errorf("plan = %+v, want %+v", plan.Overlay, want.Overlay)
	}
	if plan.Overlay.LastCol() >= 120 || plan.Overlay.LastRow() >= 40 {
		t.Errorf("overlay %+v outside the new screen", plan.Overlay)
	}
}

func TestScreenTooSmall(t *testing.T) {
	m := newTestModel(t, nil, 80, 24)
	press(m, "v")
	m.Update(tea.WindowSizeMsg{Width: 2, Height: 3})

	// Nothing fits, so there are no visible panes and no overlay.
	assertCounts(t, m, 1, 0, 1)
	if !strings.Contains(m.StatusText(), "edges:n/a") {
		t.Errorf("StatusText() = %q", m.StatusText())
	}

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assertCounts(t, m, 1, 1, 1)
}

func TestSplitWithoutRoom(t *testing.T) {
	m := newTestModel(t, nil, 20, 4)
	before := m.Focused()
	press(m, "s")

	if got := len(m.PaneOrder()); got != 1 {
		t.Fatalf("panes = %d, want 1", got)
	}
	if m.Focused() != before {
		t.Error("focus should return to the original pane")
	}
	if m.Message != "no room to split" {
		t.Errorf("Message = %q", m.Message)
	}
}

func TestHelpSwallowsKeys(t *testing.T) {
	m := newTestModel(t, nil, 80, 24)
	press(m, "?")
	if !m.ShowHelp {
		t.Fatal("? should open help")
	}
	if cmd := press(m, "q"); cmd != nil {
		t.Error("q inside help should close help, not quit")
	}
	if m.ShowHelp {
		t.Error("help still shown")
	}
}

func TestQuitReleasesEverything(t *testing.T) {
	m := newTestModel(t, nil, 80, 24)
	press(m, "v", "s")

	if cmd := press(m, "ctrl+c"); cmd == nil {
		t.Fatal("ctrl+c should return a quit command")
	}
	assertCounts(t, m, 0, 0, 0)
	if m.reserved != "" {
		t.Errorf("top strip still reserved for %s", m.reserved)
	}
}

func TestTopStripFollowsFocus(t *testing.T) {
	m := newTestModel(t, nil, 80, 24)
	press(m, "s")

	// The new pane sits below the first one, away from the top.
	if m.reserved != "" {
		t.Errorf("reserved = %s, want none", m.reserved)
	}

	press(m, "shift+tab")
	if m.reserved != m.Focused().ID {
		t.Errorf("reserved = %s, want %s", m.reserved, m.Focused().ID)
	}

	press(m, "b")
	if m.reserved != "" {
		t.Error("disabling the border should release the top strip")
	}
}

func TestRenderShowsBorder(t *testing.T) {
	m := newTestModel(t, nil, 80, 24)
	press(m, "s")

	out := ansi.Strip(m.Render())
	for _, want := range []string{"╭", "╮", "pane 2", "edges:bottom|left|right", "border:enabled/present"} {
		if !strings.Contains(out, want) {
			t.Errorf("render is missing %q", want)
		}
	}
}

func TestRenderGutterMarker(t *testing.T) {
	m := newTestModel(t, nil, 80, 24)
	press(m, "v", "shift+tab")

	if out := ansi.Strip(m.Render()); !strings.Contains(out, config.GutterMarker) {
		t.Error("focused pane at column 0 should show the gutter marker")
	}

	press(m, "b")
	if out := ansi.Strip(m.Render()); strings.Contains(out, config.GutterMarker) {
		t.Error("gutter marker shown with the border disabled")
	}
}

func TestRenderBeforeSize(t *testing.T) {
	m := New(nil, nil)
	if got := m.Render(); got != "" {
		t.Errorf("Render() before a size = %q, want empty", got)
	}
}

func TestMouseClickFocusesPane(t *testing.T) {
	m := newTestModel(t, nil, 80, 24)
	press(m, "v")
	first := m.PaneOrder()[0]

	m.Update(tea.MouseClickMsg{X: 5, Y: 5, Button: tea.MouseLeft})
	if m.Focused() != first {
		t.Fatalf("focused = %s, want %s", m.Focused().Title(), first.Title())
	}
	if want := (geometry.Rect{Row: 1, Col: 0, Width: 40, Height: 22}); onlyPlan(t, m).Overlay != want {
		t.Errorf("overlay = %+v, want %+v", onlyPlan(t, m).Overlay, want)
	}

	// The separator column belongs to no pane.
	m.Update(tea.MouseClickMsg{X: 39, Y: 5, Button: tea.MouseLeft})
	if m.Focused() != first {
		t.Error("click on the separator moved focus")
	}
}

func TestApplyConfigSwitchesGlyphsAndChrome(t *testing.T) {
	m := newTestModel(t, nil, 80, 24)
	press(m, "v")

	cfg := config.DefaultConfig()
	cfg.Border.Style = "ascii"
	off := false
	cfg.Appearance.Scrollbar = &off
	m.Update(ConfigReloadedMsg{Config: cfg})

	plan := onlyPlan(t, m)
	if got := plan.Segment(geometry.Left).Glyph; got != "|" {
		t.Errorf("left = %q, want |", got)
	}
	// Without the scrollbar the pane area is a column wider.
	if got := m.PaneArea().Width; got != 80 {
		t.Errorf("pane area width = %d, want 80", got)
	}
	if plan.Overlay.Col+plan.Overlay.Width != 80 {
		t.Errorf("overlay %+v does not reach the last column", plan.Overlay)
	}
}
