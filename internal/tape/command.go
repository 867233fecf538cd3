// Package tape parses and plays back scripts that drive the split-pane
// screen without a terminal.
//
// A tape is a list of commands, one per line:
//
//	# comment
//	Screen 80 24
//	Split vertical
//	Focus prev
//	Grow right 2
//	Border toggle
//	Key ctrl+c
//	Click 10 5
//	Snapshot
package tape

import (
	"fmt"
	"strconv"
	"strings"
)

// CommandType identifies a tape command.
type CommandType int

const (
	CommandTypeScreen CommandType = iota
	CommandTypeSplit
	CommandTypeClose
	CommandTypeFocus
	CommandTypeGrow
	CommandTypeBorder
	CommandTypeKey
	CommandTypeClick
	CommandTypeSnapshot
)

var commandNames = map[string]CommandType{
	"screen":   CommandTypeScreen,
	"split":    CommandTypeSplit,
	"close":    CommandTypeClose,
	"focus":    CommandTypeFocus,
	"grow":     CommandTypeGrow,
	"border":   CommandTypeBorder,
	"key":      CommandTypeKey,
	"click":    CommandTypeClick,
	"snapshot": CommandTypeSnapshot,
}

func (t CommandType) String() string {
	for name, ct := range commandNames {
		if ct == t {
			return name
		}
	}
	return "unknown"
}

// Command is a single parsed tape line.
type Command struct {
	Type CommandType
	Args []string
	Line int
}

// ParseError reports a malformed tape line.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Parse reads a tape. Command names are case-insensitive.
func Parse(src string) ([]*Command, error) {
	var cmds []*Command
	for i, raw := range strings.Split(src, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		ct, ok := commandNames[strings.ToLower(fields[0])]
		if !ok {
			return nil, &ParseError{Line: i + 1, Message: fmt.Sprintf("unknown command %q", fields[0])}
		}
		cmd := &Command{Type: ct, Args: fields[1:], Line: i + 1}
		if err := cmd.validate(); err != nil {
			return nil, &ParseError{Line: i + 1, Message: err.Error()}
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

func (c *Command) validate() error {
	switch c.Type {
	case CommandTypeScreen, CommandTypeClick:
		if len(c.Args) != 2 {
			return fmt.Errorf("%s takes two numbers", c.Type)
		}
		for _, a := range c.Args {
			if _, err := strconv.Atoi(a); err != nil {
				return fmt.Errorf("%s: %q is not a number", c.Type, a)
			}
		}
	case CommandTypeSplit:
		if len(c.Args) != 1 {
			return fmt.Errorf("split takes a direction")
		}
		if _, err := splitDirection(c.Args[0]); err != nil {
			return err
		}
	case CommandTypeFocus:
		if len(c.Args) != 1 {
			return fmt.Errorf("focus takes next, prev or a pane number")
		}
		switch strings.ToLower(c.Args[0]) {
		case "next", "prev":
		default:
			if _, err := strconv.Atoi(c.Args[0]); err != nil {
				return fmt.Errorf("focus: %q is not next, prev or a pane number", c.Args[0])
			}
		}
	case CommandTypeGrow:
		if len(c.Args) < 1 || len(c.Args) > 2 {
			return fmt.Errorf("grow takes a direction and an optional count")
		}
		if _, ok := growDirections[strings.ToLower(c.Args[0])]; !ok {
			return fmt.Errorf("grow: unknown direction %q", c.Args[0])
		}
		if len(c.Args) == 2 {
			if n, err := strconv.Atoi(c.Args[1]); err != nil || n < 1 {
				return fmt.Errorf("grow: count %q must be a positive number", c.Args[1])
			}
		}
	case CommandTypeBorder:
		if len(c.Args) != 1 {
			return fmt.Errorf("border takes on, off or toggle")
		}
		switch strings.ToLower(c.Args[0]) {
		case "on", "off", "toggle":
		default:
			return fmt.Errorf("border: %q is not on, off or toggle", c.Args[0])
		}
	case CommandTypeKey:
		if len(c.Args) == 0 {
			return fmt.Errorf("key takes at least one key")
		}
		for _, combo := range c.Args {
			if _, err := keyPress(combo); err != nil {
				return err
			}
		}
	case CommandTypeClose, CommandTypeSnapshot:
		if len(c.Args) != 0 {
			return fmt.Errorf("%s takes no arguments", c.Type)
		}
	}
	return nil
}
