// Package input maps key presses and mouse clicks to pane and border actions.
package input

import (
	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/winborder/internal/config"
	"github.com/Gaurav-Gosain/winborder/internal/layout"
	"github.com/Gaurav-Gosain/winborder/internal/overlay"
)

// Target is the screen that input acts on.
type Target interface {
	SplitFocused(dir layout.Direction)
	CloseFocused()
	CycleFocus(step int)
	ResizeFocused(dir layout.Direction, delta float64)
	ToggleBorder()
	HelpVisible() bool
	SetHelp(visible bool)
	ClearMessage()
	Shutdown()
	PaneAt(row, col int) (overlay.PaneID, bool)
	FocusPane(id overlay.PaneID) error
}

// ActionHandler handles a single action.
type ActionHandler func(t Target) tea.Cmd

// ActionDispatcher maps action names to handler functions
type ActionDispatcher struct {
	handlers map[string]ActionHandler
}

// NewActionDispatcher creates a dispatcher with every built-in action registered.
func NewActionDispatcher() *ActionDispatcher {
	d := &ActionDispatcher{
		handlers: make(map[string]ActionHandler),
	}
	d.registerHandlers()
	return d
}

func (d *ActionDispatcher) registerHandlers() {
	// Panes
	d.Register(config.ActionSplitVertical, makeSplitHandler(layout.Vertical))
	d.Register(config.ActionSplitHorizontal, makeSplitHandler(layout.Horizontal))
	d.Register(config.ActionClosePane, handleClosePane)
	d.Register(config.ActionFocusNext, makeFocusHandler(1))
	d.Register(config.ActionFocusPrev, makeFocusHandler(-1))
	d.Register(config.ActionGrowLeft, makeResizeHandler(layout.Vertical, -config.ResizeStep))
	d.Register(config.ActionGrowRight, makeResizeHandler(layout.Vertical, config.ResizeStep))
	d.Register(config.ActionGrowUp, makeResizeHandler(layout.Horizontal, -config.ResizeStep))
	d.Register(config.ActionGrowDown, makeResizeHandler(layout.Horizontal, config.ResizeStep))

	// Border
	d.Register(config.ActionToggleBorder, handleToggleBorder)

	// System
	d.Register(config.ActionToggleHelp, handleToggleHelp)
	d.Register(config.ActionQuit, handleQuit)
}

// Register adds or replaces the handler for an action.
func (d *ActionDispatcher) Register(action string, handler ActionHandler) {
	d.handlers[action] = handler
}

// Dispatch runs the handler for action. Unknown actions are ignored.
func (d *ActionDispatcher) Dispatch(action string, t Target) tea.Cmd {
	handler, ok := d.handlers[action]
	if !ok {
		return nil
	}
	return handler(t)
}

// HasAction reports whether a handler is registered for action.
func (d *ActionDispatcher) HasAction(action string) bool {
	_, ok := d.handlers[action]
	return ok
}

var defaultDispatcher = NewActionDispatcher()

// GetDispatcher returns the shared dispatcher.
func GetDispatcher() *ActionDispatcher {
	return defaultDispatcher
}

func makeSplitHandler(dir layout.Direction) ActionHandler {
	return func(t Target) tea.Cmd {
		t.SplitFocused(dir)
		return nil
	}
}

func handleClosePane(t Target) tea.Cmd {
	t.CloseFocused()
	return nil
}

func makeFocusHandler(step int) ActionHandler {
	return func(t Target) tea.Cmd {
		t.CycleFocus(step)
		return nil
	}
}

func makeResizeHandler(dir layout.Direction, delta float64) ActionHandler {
	return func(t Target) tea.Cmd {
		t.ResizeFocused(dir, delta)
		return nil
	}
}

func handleToggleBorder(t Target) tea.Cmd {
	t.ToggleBorder()
	return nil
}

func handleToggleHelp(t Target) tea.Cmd {
	t.SetHelp(!t.HelpVisible())
	return nil
}

func handleQuit(t Target) tea.Cmd {
	t.Shutdown()
	return tea.Quit
}
