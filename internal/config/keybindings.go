package config

import (
	"slices"
	"strings"
)

// Host actions that keys can be bound to.
const (
	ActionSplitVertical   = "split_vertical"
	ActionSplitHorizontal = "split_horizontal"
	ActionClosePane       = "close_pane"
	ActionFocusNext       = "focus_next"
	ActionFocusPrev       = "focus_prev"
	ActionGrowLeft        = "grow_left"
	ActionGrowDown        = "grow_down"
	ActionGrowUp          = "grow_up"
	ActionGrowRight       = "grow_right"
	ActionToggleBorder    = "toggle_border"
	ActionToggleHelp      = "toggle_help"
	ActionQuit            = "quit"
)

var actionDescriptions = map[string]string{
	ActionSplitVertical:   "Split vertical (left/right)",
	ActionSplitHorizontal: "Split horizontal (top/bottom)",
	ActionClosePane:       "Close pane",
	ActionFocusNext:       "Next pane",
	ActionFocusPrev:       "Previous pane",
	ActionGrowLeft:        "Move split left",
	ActionGrowDown:        "Move split down",
	ActionGrowUp:          "Move split up",
	ActionGrowRight:       "Move split right",
	ActionToggleBorder:    "Toggle focus border",
	ActionToggleHelp:      "Toggle this help",
	ActionQuit:            "Quit",
}

// IsKnownAction reports whether action names a host action.
func IsKnownAction(action string) bool {
	_, ok := actionDescriptions[action]
	return ok
}

// Keybinding represents a single keybinding entry
type Keybinding struct {
	Key         string
	Description string
}

// KeybindingSection represents a section of related keybindings
type KeybindingSection struct {
	Title    string
	Bindings []Keybinding
}

// KeybindRegistry resolves pressed keys to actions.
type KeybindRegistry struct {
	byKey    map[string]string
	byAction map[string][]string
	sections []KeybindingSection
}

// NewKeybindRegistry builds a registry from cfg. The first action to claim
// a key keeps it.
func NewKeybindRegistry(cfg *UserConfig) *KeybindRegistry {
	r := &KeybindRegistry{
		byKey:    make(map[string]string),
		byAction: make(map[string][]string),
	}
	r.addSection("Panes", cfg.Keybindings.Pane)
	r.addSection("Border", cfg.Keybindings.Border)
	r.addSection("System", cfg.Keybindings.System)
	return r
}

func (r *KeybindRegistry) addSection(title string, bindings map[string][]string) {
	actions := make([]string, 0, len(bindings))
	for action := range bindings {
		if IsKnownAction(action) {
			actions = append(actions, action)
		}
	}
	slices.Sort(actions)

	section := KeybindingSection{Title: title}
	for _, action := range actions {
		var keys []string
		for _, key := range bindings[action] {
			if key == "" {
				continue
			}
			if _, taken := r.byKey[key]; taken {
				continue
			}
			r.byKey[key] = action
			keys = append(keys, key)
		}
		if len(keys) == 0 {
			continue
		}
		r.byAction[action] = keys
		section.Bindings = append(section.Bindings, Keybinding{
			Key:         strings.Join(keys, "/"),
			Description: actionDescriptions[action],
		})
	}
	if len(section.Bindings) > 0 {
		r.sections = append(r.sections, section)
	}
}

// Action returns the action bound to key, if any.
func (r *KeybindRegistry) Action(key string) (string, bool) {
	action, ok := r.byKey[key]
	return action, ok
}

// Keys returns the keys bound to action.
func (r *KeybindRegistry) Keys(action string) []string {
	return r.byAction[action]
}

// Sections returns the bindings grouped for help output.
func (r *KeybindRegistry) Sections() []KeybindingSection {
	return r.sections
}
