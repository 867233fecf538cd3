package tape

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/winborder/internal/config"
	"github.com/Gaurav-Gosain/winborder/internal/layout"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"
)

// Executor is the screen a tape drives.
type Executor interface {
	Resize(width, height int)
	SplitFocused(dir layout.Direction)
	CloseFocused()
	CycleFocus(step int)
	FocusPaneNumber(n int) error
	ResizeFocused(dir layout.Direction, delta float64)
	SetBorder(enabled bool) error
	ToggleBorder()
	Update(msg tea.Msg) (tea.Model, tea.Cmd)
	Render() string
}

// CommandExecutor plays tape commands against an Executor.
type CommandExecutor struct {
	executor  Executor
	out       io.Writer
	plain     bool
	logger    *log.Logger
	snapshots int
	quit      bool
}

// NewCommandExecutor creates a command executor. Snapshots are written to
// out; plain strips their colors.
func NewCommandExecutor(executor Executor, out io.Writer, plain bool, logger *log.Logger) *CommandExecutor {
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &CommandExecutor{executor: executor, out: out, plain: plain, logger: logger}
}

// Quit reports whether a played key asked the screen to quit.
func (ce *CommandExecutor) Quit() bool {
	return ce.quit
}

// Play executes cmds in order. It stops at the first error or when a key
// quits the screen.
func (ce *CommandExecutor) Play(cmds []*Command) error {
	for _, cmd := range cmds {
		if ce.quit {
			return nil
		}
		ce.logger.Debug("tape", "line", cmd.Line, "cmd", cmd.Type, "args", cmd.Args)
		if err := ce.Execute(cmd); err != nil {
			return fmt.Errorf("line %d: %w", cmd.Line, err)
		}
	}
	return nil
}

// Execute executes a single command.
func (ce *CommandExecutor) Execute(cmd *Command) error {
	switch cmd.Type {
	case CommandTypeScreen:
		width, _ := strconv.Atoi(cmd.Args[0])
		height, _ := strconv.Atoi(cmd.Args[1])
		ce.executor.Resize(width, height)

	case CommandTypeSplit:
		dir, err := splitDirection(cmd.Args[0])
		if err != nil {
			return err
		}
		ce.executor.SplitFocused(dir)

	case CommandTypeClose:
		ce.executor.CloseFocused()

	case CommandTypeFocus:
		switch strings.ToLower(cmd.Args[0]) {
		case "next":
			ce.executor.CycleFocus(1)
		case "prev":
			ce.executor.CycleFocus(-1)
		default:
			n, _ := strconv.Atoi(cmd.Args[0])
			return ce.executor.FocusPaneNumber(n)
		}

	case CommandTypeGrow:
		g := growDirections[strings.ToLower(cmd.Args[0])]
		count := 1
		if len(cmd.Args) == 2 {
			count, _ = strconv.Atoi(cmd.Args[1])
		}
		for range count {
			ce.executor.ResizeFocused(g.dir, g.sign*config.ResizeStep)
		}

	case CommandTypeBorder:
		switch strings.ToLower(cmd.Args[0]) {
		case "on":
			return ce.executor.SetBorder(true)
		case "off":
			return ce.executor.SetBorder(false)
		default:
			ce.executor.ToggleBorder()
		}

	case CommandTypeKey:
		for _, combo := range cmd.Args {
			msg, err := keyPress(combo)
			if err != nil {
				return err
			}
			ce.send(msg)
			if ce.quit {
				return nil
			}
		}

	case CommandTypeClick:
		col, _ := strconv.Atoi(cmd.Args[0])
		row, _ := strconv.Atoi(cmd.Args[1])
		ce.send(tea.MouseClickMsg{X: col, Y: row, Button: tea.MouseLeft})

	case CommandTypeSnapshot:
		return ce.snapshot()

	default:
		return errors.New("unsupported command")
	}
	return nil
}

func (ce *CommandExecutor) send(msg tea.Msg) {
	_, cmd := ce.executor.Update(msg)
	if cmd == nil {
		return
	}
	if _, ok := cmd().(tea.QuitMsg); ok {
		ce.quit = true
	}
}

func (ce *CommandExecutor) snapshot() error {
	ce.snapshots++
	screen := ce.executor.Render()
	if ce.plain {
		screen = ansi.Strip(screen)
	}
	_, err := fmt.Fprintf(ce.out, "--- snapshot %d ---\n%s\n", ce.snapshots, screen)
	return err
}

type growDirection struct {
	dir  layout.Direction
	sign float64
}

var growDirections = map[string]growDirection{
	"left":  {layout.Vertical, -1},
	"right": {layout.Vertical, 1},
	"up":    {layout.Horizontal, -1},
	"down":  {layout.Horizontal, 1},
}

func splitDirection(s string) (layout.Direction, error) {
	switch strings.ToLower(s) {
	case "vertical", "v":
		return layout.Vertical, nil
	case "horizontal", "h":
		return layout.Horizontal, nil
	}
	return 0, fmt.Errorf("split: unknown direction %q", s)
}

var specialKeys = map[string]rune{
	"space":     tea.KeySpace,
	"enter":     tea.KeyEnter,
	"return":    tea.KeyEnter,
	"tab":       tea.KeyTab,
	"escape":    tea.KeyEscape,
	"esc":       tea.KeyEscape,
	"backspace": tea.KeyBackspace,
	"delete":    tea.KeyDelete,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
}

// keyPress converts a key combination such as "ctrl+c", "shift+tab" or "v"
// to a key press message.
func keyPress(combo string) (tea.KeyPressMsg, error) {
	parts := strings.Split(combo, "+")
	name := parts[len(parts)-1]
	if name == "" {
		// "+" itself, or a combo ending in "++".
		name = "+"
		parts = parts[:len(parts)-1]
	}

	var mod tea.KeyMod
	for _, part := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "ctrl":
			mod |= tea.ModCtrl
		case "alt", "opt":
			mod |= tea.ModAlt
		case "shift":
			mod |= tea.ModShift
		case "":
		default:
			return tea.KeyPressMsg{}, fmt.Errorf("key %q: unknown modifier %q", combo, part)
		}
	}

	if code, ok := specialKeys[strings.ToLower(name)]; ok {
		return tea.KeyPressMsg{Code: code, Mod: mod}, nil
	}

	r := []rune(name)
	if len(r) != 1 {
		return tea.KeyPressMsg{}, fmt.Errorf("key %q: unknown key %q", combo, name)
	}
	msg := tea.KeyPressMsg{Code: r[0], Mod: mod}
	if mod == 0 {
		msg.Text = name
	}
	return msg, nil
}
