// Package layout arranges panes in a binary split tree.
//
// Splits always leave a one-cell gap between their two halves: a separator
// column for side-by-side panes, a separator row for stacked panes. The
// border overlay is drawn inside those gaps.
package layout

import (
	"errors"
	"fmt"
	"math"

	"github.com/Gaurav-Gosain/winborder/internal/geometry"
)

var (
	// ErrPaneNotFound is returned for an id that is not in the tree.
	ErrPaneNotFound = errors.New("pane not found")
	// ErrLastPane is returned when closing the only pane.
	ErrLastPane = errors.New("cannot close the last pane")
	// ErrTooSmall is returned when a split does not fit its area.
	ErrTooSmall = errors.New("area too small to split")
)

// Direction is the orientation of a split.
type Direction int

const (
	// Vertical places panes side by side with a separator column.
	Vertical Direction = iota
	// Horizontal stacks panes with a separator row.
	Horizontal
)

func (d Direction) String() string {
	if d == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

const (
	// DefaultRatio is the share of a new split given to the existing pane.
	DefaultRatio = 0.5
	// MinRatio and MaxRatio bound resizing.
	MinRatio = 0.1
	MaxRatio = 0.9
)

type node struct {
	pane   string
	dir    Direction
	ratio  float64
	first  *node
	second *node
	parent *node
}

func (n *node) isLeaf() bool {
	return n.first == nil
}

// Separator is the gap between the two halves of a split.
type Separator struct {
	geometry.Rect
	Dir Direction
}

// Result is a computed layout.
type Result struct {
	Panes      map[string]geometry.Rect
	Separators []Separator
}

// Tree is a split tree with a focused pane.
type Tree struct {
	root    *node
	focused string
}

// New returns a tree holding a single pane.
func New(pane string) *Tree {
	return &Tree{root: &node{pane: pane}, focused: pane}
}

// Focused returns the id of the focused pane.
func (t *Tree) Focused() string {
	return t.focused
}

// Focus moves focus to pane.
func (t *Tree) Focus(pane string) error {
	if t.find(pane) == nil {
		return fmt.Errorf("focus %q: %w", pane, ErrPaneNotFound)
	}
	t.focused = pane
	return nil
}

// FocusNext moves focus step panes forward in reading order, wrapping
// around. A negative step moves backward.
func (t *Tree) FocusNext(step int) string {
	panes := t.Panes()
	for i, p := range panes {
		if p == t.focused {
			n := len(panes)
			t.focused = panes[((i+step)%n+n)%n]
			break
		}
	}
	return t.focused
}

// Panes returns pane ids in reading order.
func (t *Tree) Panes() []string {
	var out []string
	var walk func(*node)
	walk = func(n *node) {
		if n.isLeaf() {
			out = append(out, n.pane)
			return
		}
		walk(n.first)
		walk(n.second)
	}
	walk(t.root)
	return out
}

// Len returns the number of panes.
func (t *Tree) Len() int {
	return len(t.Panes())
}

// Split divides target, placing pane after it in the given direction, and
// focuses the new pane.
func (t *Tree) Split(target, pane string, dir Direction) error {
	leaf := t.find(target)
	if leaf == nil {
		return fmt.Errorf("split %q: %w", target, ErrPaneNotFound)
	}
	leaf.first = &node{pane: leaf.pane, parent: leaf}
	leaf.second = &node{pane: pane, parent: leaf}
	leaf.pane = ""
	leaf.dir = dir
	leaf.ratio = DefaultRatio
	t.focused = pane
	return nil
}

// Close removes pane, giving its space to its sibling. Focus moves to the
// sibling's first pane when the closed pane had focus.
func (t *Tree) Close(pane string) error {
	leaf := t.find(pane)
	if leaf == nil {
		return fmt.Errorf("close %q: %w", pane, ErrPaneNotFound)
	}
	if leaf == t.root {
		return ErrLastPane
	}

	parent := leaf.parent
	sibling := parent.first
	if sibling == leaf {
		sibling = parent.second
	}

	// Collapse the parent into the sibling.
	*parent = node{
		pane:   sibling.pane,
		dir:    sibling.dir,
		ratio:  sibling.ratio,
		first:  sibling.first,
		second: sibling.second,
		parent: parent.parent,
	}
	if !parent.isLeaf() {
		parent.first.parent = parent
		parent.second.parent = parent
	}

	if t.focused == pane {
		n := parent
		for !n.isLeaf() {
			n = n.first
		}
		t.focused = n.pane
	}
	return nil
}

// Resize grows pane by delta (a share of the enclosing split) along the
// nearest ancestor split in dir. It reports whether anything changed.
func (t *Tree) Resize(pane string, dir Direction, delta float64) bool {
	n, parent := t.enclosing(pane, dir)
	if parent == nil {
		return false
	}
	ratio := parent.ratio
	if parent.first == n {
		ratio += delta
	} else {
		ratio -= delta
	}
	return setRatio(parent, ratio)
}

// Ratio returns the share of the nearest ancestor split in dir taken by its
// first child.
func (t *Tree) Ratio(pane string, dir Direction) (float64, bool) {
	_, parent := t.enclosing(pane, dir)
	if parent == nil {
		return 0, false
	}
	return parent.ratio, true
}

// SetRatio sets the ratio Ratio reports, clamped to [MinRatio, MaxRatio].
func (t *Tree) SetRatio(pane string, dir Direction, ratio float64) bool {
	_, parent := t.enclosing(pane, dir)
	if parent == nil {
		return false
	}
	return setRatio(parent, ratio)
}

// enclosing returns the nearest ancestor split of pane in dir and its child
// on the path to pane.
func (t *Tree) enclosing(pane string, dir Direction) (child, parent *node) {
	n := t.find(pane)
	if n == nil {
		return nil, nil
	}
	for n.parent != nil {
		if n.parent.dir == dir {
			return n, n.parent
		}
		n = n.parent
	}
	return nil, nil
}

func setRatio(n *node, ratio float64) bool {
	ratio = math.Max(MinRatio, math.Min(MaxRatio, ratio))
	if ratio == n.ratio {
		return false
	}
	n.ratio = ratio
	return true
}

// Layout assigns a rect to every pane inside area.
func (t *Tree) Layout(area geometry.Rect) (Result, error) {
	res := Result{Panes: make(map[string]geometry.Rect)}
	if err := place(t.root, area, &res); err != nil {
		return Result{}, err
	}
	return res, nil
}

func place(n *node, area geometry.Rect, res *Result) error {
	if !area.Valid() {
		return ErrTooSmall
	}
	if n.isLeaf() {
		res.Panes[n.pane] = area
		return nil
	}

	first, gap, second := area, area, area
	switch n.dir {
	case Vertical:
		if area.Width < 3 {
			return ErrTooSmall
		}
		w := share(area.Width-1, n.ratio)
		first.Width = w
		gap.Col, gap.Width = area.Col+w, 1
		second.Col, second.Width = area.Col+w+1, area.Width-w-1
	case Horizontal:
		if area.Height < 3 {
			return ErrTooSmall
		}
		h := share(area.Height-1, n.ratio)
		first.Height = h
		gap.Row, gap.Height = area.Row+h, 1
		second.Row, second.Height = area.Row+h+1, area.Height-h-1
	}

	res.Separators = append(res.Separators, Separator{Rect: gap, Dir: n.dir})
	if err := place(n.first, first, res); err != nil {
		return err
	}
	return place(n.second, second, res)
}

// share splits total cells by ratio, leaving at least one cell on each side.
func share(total int, ratio float64) int {
	v := int(math.Round(float64(total) * ratio))
	return max(1, min(total-1, v))
}

func (t *Tree) find(pane string) *node {
	var found *node
	var walk func(*node)
	walk = func(n *node) {
		if found != nil {
			return
		}
		if n.isLeaf() {
			if n.pane == pane {
				found = n
			}
			return
		}
		walk(n.first)
		walk(n.second)
	}
	walk(t.root)
	return found
}
