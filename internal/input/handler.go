package input

import (
	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/winborder/internal/config"
)

// HandleInput routes key presses and mouse clicks to t. Other messages are
// ignored.
func HandleInput(msg tea.Msg, keys *config.KeybindRegistry, t Target) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return HandleKeyPress(msg, keys, t)
	case tea.MouseClickMsg:
		return handleMouseClick(msg, t)
	}
	return nil
}
