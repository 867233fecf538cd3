// Package geometry computes the border drawn around the focused pane.
//
// All coordinates are terminal cells relative to the top-left corner of the
// screen. Row 0 is reserved for the global tab strip, and the last row and
// column are reserved for the command line and the scrollbar, which is why
// edge detection is asymmetric: the top and left edges are matched exactly
// while the bottom and right edges match anything reaching into the last
// reserved row or column.
package geometry

import "strings"

// Rect is a rectangle of terminal cells.
type Rect struct {
	Row    int `json:"row"`
	Col    int `json:"col"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Valid reports whether the rect occupies at least one cell.
// Callers must reject invalid rects before computing a plan.
func (r Rect) Valid() bool {
	return r.Width > 0 && r.Height > 0
}

// LastRow returns the index of the rect's bottom row.
func (r Rect) LastRow() int {
	return r.Row + r.Height - 1
}

// LastCol returns the index of the rect's rightmost column.
func (r Rect) LastCol() int {
	return r.Col + r.Width - 1
}

// Contains reports whether the cell at (row, col) lies inside the rect.
func (r Rect) Contains(row, col int) bool {
	return row >= r.Row && row < r.Row+r.Height && col >= r.Col && col < r.Col+r.Width
}

// Screen is the size of the whole terminal grid.
type Screen struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// Bounds returns the screen as a rect anchored at the origin.
func (s Screen) Bounds() Rect {
	return Rect{Width: s.Cols, Height: s.Rows}
}

// EdgeSet is the set of pane sides that coincide with the screen boundary.
type EdgeSet uint8

const (
	EdgeTop EdgeSet = 1 << iota
	EdgeBottom
	EdgeLeft
	EdgeRight

	// AllEdges is the edge set of a single pane filling the whole screen.
	AllEdges = EdgeTop | EdgeBottom | EdgeLeft | EdgeRight
)

// Has reports whether every side in other is part of e.
func (e EdgeSet) Has(other EdgeSet) bool {
	return e&other == other
}

// Len returns the number of sides in the set.
func (e EdgeSet) Len() int {
	n := 0
	for _, side := range []EdgeSet{EdgeTop, EdgeBottom, EdgeLeft, EdgeRight} {
		if e.Has(side) {
			n++
		}
	}
	return n
}

func (e EdgeSet) String() string {
	if e == 0 {
		return "none"
	}
	var parts []string
	if e.Has(EdgeTop) {
		parts = append(parts, "top")
	}
	if e.Has(EdgeBottom) {
		parts = append(parts, "bottom")
	}
	if e.Has(EdgeLeft) {
		parts = append(parts, "left")
	}
	if e.Has(EdgeRight) {
		parts = append(parts, "right")
	}
	return strings.Join(parts, "|")
}

// IsEdge returns the sides of pane that touch the screen boundary.
func IsEdge(pane Rect, screen Screen) EdgeSet {
	var edges EdgeSet
	if pane.Row == 1 {
		edges |= EdgeTop
	}
	if pane.Row+pane.Height >= screen.Rows-1 {
		edges |= EdgeBottom
	}
	if pane.Col == 0 {
		edges |= EdgeLeft
	}
	if pane.Col+pane.Width >= screen.Cols-1 {
		edges |= EdgeRight
	}
	return edges
}

// IsLeftmostColumn reports whether the pane starts in the first screen column.
// Gutter components use it to know that no left border is drawn next to them.
func IsLeftmostColumn(pane Rect) bool {
	return pane.Col == 0
}
