package input

import tea "charm.land/bubbletea/v2"

// handleMouseClick focuses the pane under a left click. Clicks on
// separators and the screen chrome do nothing.
func handleMouseClick(msg tea.MouseClickMsg, t Target) tea.Cmd {
	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft || t.HelpVisible() {
		return nil
	}

	id, ok := t.PaneAt(mouse.Y, mouse.X)
	if !ok {
		return nil
	}
	_ = t.FocusPane(id)
	return nil
}
