package input

import (
	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/winborder/internal/config"
)

// HandleKeyPress looks up the action bound to msg and dispatches it. While
// the help overlay is open, only esc, q and the help key are honored and they
// all close it.
func HandleKeyPress(msg tea.KeyPressMsg, keys *config.KeybindRegistry, t Target) tea.Cmd {
	key := msg.String()

	if t.HelpVisible() {
		if key == "esc" || key == "q" || isBound(keys, key, config.ActionToggleHelp) {
			t.SetHelp(false)
		}
		return nil
	}

	action, ok := keys.Action(key)
	if !ok {
		return nil
	}
	t.ClearMessage()
	return GetDispatcher().Dispatch(action, t)
}

func isBound(keys *config.KeybindRegistry, key, action string) bool {
	bound, ok := keys.Action(key)
	return ok && bound == action
}
