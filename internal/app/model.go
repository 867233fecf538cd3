// Package app provides the reference host: a split-pane screen that keeps
// the focus border drawn through the overlay controller.
package app

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/winborder/internal/config"
	"github.com/Gaurav-Gosain/winborder/internal/geometry"
	"github.com/Gaurav-Gosain/winborder/internal/input"
	"github.com/Gaurav-Gosain/winborder/internal/layout"
	"github.com/Gaurav-Gosain/winborder/internal/overlay"
	"github.com/Gaurav-Gosain/winborder/internal/theme"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Pane is a placeholder pane shown by the host.
type Pane struct {
	ID     overlay.PaneID
	Number int
}

// Title returns the label shown in the tab strip and the pane header.
func (p *Pane) Title() string {
	return "pane " + strconv.Itoa(p.Number)
}

// Model is the Bubble Tea model of the reference host. It implements
// overlay.Host and overlay.TopStrip.
type Model struct {
	Width  int
	Height int

	cfg    *config.UserConfig
	keys   *config.KeybindRegistry
	styles theme.BorderStyles
	logger *log.Logger

	tree       *layout.Tree
	layout     layout.Result
	layoutErr  error
	panes      map[overlay.PaneID]*Pane
	nextNumber int

	buffers  map[overlay.BufferID]struct{}
	surfaces map[overlay.SurfaceID]*surface
	subs     map[overlay.SubscriptionID]*subscription
	nextSub  overlay.SubscriptionID
	reserved overlay.PaneID

	controller *overlay.Controller

	ShowHelp bool
	Message  string
	quitting bool
}

// New creates a host with a single pane. The border is enabled right away
// when cfg asks for it.
func New(cfg *config.UserConfig, logger *log.Logger) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := &Model{
		cfg:      cfg,
		keys:     config.NewKeybindRegistry(cfg),
		styles:   theme.ResolveBorderStyles(cfg.Border.Color, cfg.Border.Fill),
		logger:   logger.WithPrefix("app"),
		panes:    make(map[overlay.PaneID]*Pane),
		buffers:  make(map[overlay.BufferID]struct{}),
		surfaces: make(map[overlay.SurfaceID]*surface),
		subs:     make(map[overlay.SubscriptionID]*subscription),
	}

	first := m.newPane()
	m.tree = layout.New(string(first.ID))
	m.relayout()

	m.controller = overlay.NewController(m, overlay.Options{
		Glyphs: config.GlyphsForStyle(cfg.Border.Style, cfg.Appearance.ASCIIOnly),
		Logger: logger.WithPrefix("overlay"),
	})
	if cfg.EnableOnStartup() {
		if err := m.controller.Enable(); err != nil {
			m.logger.Error("failed to enable border", "err", err)
		}
	}
	return m
}

func createID() string {
	return uuid.New().String()
}

func (m *Model) newPane() *Pane {
	m.nextNumber++
	p := &Pane{ID: overlay.PaneID(createID()), Number: m.nextNumber}
	m.panes[p.ID] = p
	return p
}

// Controller returns the overlay controller driven by the host.
func (m *Model) Controller() *overlay.Controller {
	return m.controller
}

// Focused returns the focused pane.
func (m *Model) Focused() *Pane {
	return m.panes[overlay.PaneID(m.tree.Focused())]
}

// PaneOrder returns the panes in layout order.
func (m *Model) PaneOrder() []*Pane {
	ids := m.tree.Panes()
	out := make([]*Pane, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.panes[overlay.PaneID(id)])
	}
	return out
}

// PaneRect returns the rect assigned to a pane by the last layout.
func (m *Model) PaneRect(id overlay.PaneID) (geometry.Rect, bool) {
	r, ok := m.layout.Panes[string(id)]
	return r, ok
}

// PaneArea returns the region panes are laid out in: everything except the
// tab strip, the status line and the scrollbar.
func (m *Model) PaneArea() geometry.Rect {
	area := geometry.Rect{Row: 0, Col: 0, Width: m.Width, Height: m.Height - config.StatusLineHeight}
	if m.cfg.Tabline() {
		area.Row += config.TablineHeight
		area.Height -= config.TablineHeight
	}
	if m.cfg.Scrollbar() {
		area.Width -= config.ScrollbarWidth
	}
	return area
}

func (m *Model) relayout() {
	res, err := m.tree.Layout(m.PaneArea())
	if err != nil {
		m.layout = layout.Result{}
		m.layoutErr = err
		return
	}
	m.layout = res
	m.layoutErr = nil
}

// ConfigReloadedMsg carries a config that changed on disk.
type ConfigReloadedMsg struct {
	Config *config.UserConfig
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Resize(msg.Width, msg.Height)
		return m, nil

	case ConfigReloadedMsg:
		m.ApplyConfig(msg.Config)
		return m, nil

	case tea.KeyPressMsg, tea.MouseClickMsg:
		return m, input.HandleInput(msg, m.keys, m)
	}
	return m, nil
}

// ApplyConfig switches to cfg while running: keys, colors, theme, glyphs
// and the reserved tab strip and scrollbar. The startup setting of the
// border is not re-applied.
func (m *Model) ApplyConfig(cfg *config.UserConfig) {
	if cfg == nil {
		return
	}
	if cfg.Appearance.Theme != m.cfg.Appearance.Theme {
		theme.Initialize(cfg.Appearance.Theme, m.logger)
	}
	m.cfg = cfg
	m.keys = config.NewKeybindRegistry(cfg)
	m.styles = theme.ResolveBorderStyles(cfg.Border.Color, cfg.Border.Fill)
	m.controller.SetGlyphs(config.GlyphsForStyle(cfg.Border.Style, cfg.Appearance.ASCIIOnly))
	m.logger.Info("config applied", "style", cfg.Border.Style, "theme", cfg.Appearance.Theme)

	// The pane area changes with the tab strip and scrollbar settings.
	m.Resize(m.Width, m.Height)
}

// Resize sets the screen size and re-lays out the panes.
func (m *Model) Resize(width, height int) {
	m.Width = width
	m.Height = height
	m.relayout()
	if m.layoutErr != nil {
		m.logger.Debug("screen too small for layout", "width", width, "height", height, "err", m.layoutErr)
	}
	m.emit(overlay.Resized, "")
}

// ToggleBorder flips the border on or off.
func (m *Model) ToggleBorder() {
	if err := m.controller.Toggle(); err != nil {
		m.logger.Error("failed to toggle border", "err", err)
		m.Message = "border: " + err.Error()
	}
}

// SetBorder enables or disables the border.
func (m *Model) SetBorder(enabled bool) error {
	if !enabled {
		m.controller.Disable()
		return nil
	}
	if err := m.controller.Enable(); err != nil {
		return fmt.Errorf("enable border: %w", err)
	}
	return nil
}

// HelpVisible reports whether the help overlay is open.
func (m *Model) HelpVisible() bool {
	return m.ShowHelp
}

// SetHelp opens or closes the help overlay.
func (m *Model) SetHelp(visible bool) {
	m.ShowHelp = visible
}

// ClearMessage clears the status line message.
func (m *Model) ClearMessage() {
	m.Message = ""
}

// Shutdown disables the border, releasing the overlay buffer, surface and
// subscription.
func (m *Model) Shutdown() {
	if m.quitting {
		return
	}
	m.quitting = true
	m.controller.Disable()
}

// SplitFocused splits the focused pane and focuses the new pane. A split
// that leaves no room for either half is undone.
func (m *Model) SplitFocused(dir layout.Direction) {
	target := m.tree.Focused()
	p := m.newPane()
	if err := m.tree.Split(target, string(p.ID), dir); err != nil {
		delete(m.panes, p.ID)
		m.nextNumber--
		m.logger.Error("split failed", "pane", target, "err", err)
		return
	}

	m.relayout()
	if errors.Is(m.layoutErr, layout.ErrTooSmall) {
		// Undo: closing the new pane hands focus back to target.
		if err := m.tree.Close(string(p.ID)); err != nil {
			m.logger.Error("failed to undo split", "err", err)
		}
		delete(m.panes, p.ID)
		m.nextNumber--
		m.relayout()
		m.Message = "no room to split"
		return
	}

	m.logger.Info("split", "pane", p.Title(), "dir", dir)
	m.emit(overlay.FocusChanged, p.ID)
}

// CloseFocused closes the focused pane. The last pane cannot be closed.
func (m *Model) CloseFocused() {
	id := m.tree.Focused()
	if err := m.tree.Close(id); err != nil {
		if errors.Is(err, layout.ErrLastPane) {
			m.Message = "cannot close the last pane"
			return
		}
		m.logger.Error("close failed", "pane", id, "err", err)
		return
	}

	closed := m.panes[overlay.PaneID(id)]
	delete(m.panes, overlay.PaneID(id))
	m.relayout()
	m.logger.Info("closed", "pane", closed.Title())

	m.emit(overlay.PaneClosed, overlay.PaneID(id))
	m.emit(overlay.FocusChanged, overlay.PaneID(m.tree.Focused()))
}

// CycleFocus moves focus step panes along the layout order.
func (m *Model) CycleFocus(step int) {
	before := m.tree.Focused()
	after := m.tree.FocusNext(step)
	if after == before {
		return
	}
	m.emit(overlay.FocusChanged, overlay.PaneID(after))
}

// ResizeFocused moves the split that holds the focused pane by delta.
func (m *Model) ResizeFocused(dir layout.Direction, delta float64) {
	id := m.tree.Focused()
	prev, _ := m.tree.Ratio(id, dir)
	if !m.tree.Resize(id, dir, delta) {
		return
	}
	m.relayout()
	if m.layoutErr != nil {
		// Shrinking below the minimum is refused by restoring the ratio.
		m.tree.SetRatio(id, dir, prev)
		m.relayout()
		return
	}
	m.emit(overlay.Resized, overlay.PaneID(id))
}

// FocusPane moves focus to the pane with the given id.
func (m *Model) FocusPane(id overlay.PaneID) error {
	if err := m.tree.Focus(string(id)); err != nil {
		return fmt.Errorf("focus: %w", err)
	}
	m.emit(overlay.FocusChanged, id)
	return nil
}

// FocusPaneNumber focuses the pane shown as "pane n".
func (m *Model) FocusPaneNumber(n int) error {
	for _, p := range m.panes {
		if p.Number == n {
			return m.FocusPane(p.ID)
		}
	}
	return fmt.Errorf("focus: no pane %d", n)
}

// PaneAt returns the visible pane covering the cell at row, col.
func (m *Model) PaneAt(row, col int) (overlay.PaneID, bool) {
	for id, r := range m.layout.Panes {
		if r.Contains(row, col) {
			return overlay.PaneID(id), true
		}
	}
	return "", false
}
