package geometry

import (
	"fmt"
	"testing"
)

var screen = Screen{Rows: 40, Cols: 80}

// arms lists the directions each rounded glyph reaches out to.
var arms = map[string]string{
	"╭": "rd",
	"╮": "ld",
	"╰": "ur",
	"╯": "ul",
	"│": "ud",
	"─": "lr",
}

func hasArm(glyph string, dir byte) bool {
	for i := 0; i < len(arms[glyph]); i++ {
		if arms[glyph][i] == dir {
			return true
		}
	}
	return false
}

func TestComputeInteriorPane(t *testing.T) {
	pane := Rect{Row: 10, Col: 20, Width: 30, Height: 10}
	plan := Compute(pane, screen)

	want := Rect{Row: 9, Col: 19, Width: 32, Height: 12}
	if plan.Overlay != want {
		t.Fatalf("overlay = %+v, want %+v", plan.Overlay, want)
	}
	if plan.Edges != 0 {
		t.Errorf("edges = %s, want none", plan.Edges)
	}
	if plan.VisibleCount() != SegmentCount {
		t.Errorf("visible segments = %d, want %d", plan.VisibleCount(), SegmentCount)
	}

	glyphs := DefaultGlyphs()
	expected := map[Position]string{
		TopLeft:     glyphs.TopLeft,
		Top:         glyphs.Top,
		TopRight:    glyphs.TopRight,
		Right:       glyphs.Right,
		BottomRight: glyphs.BottomRight,
		Bottom:      glyphs.Bottom,
		BottomLeft:  glyphs.BottomLeft,
		Left:        glyphs.Left,
	}
	for pos, glyph := range expected {
		seg := plan.Segment(pos)
		if seg.Glyph != glyph || seg.Style != StyleBorder {
			t.Errorf("%s = %q/%s, want %q/%s", pos, seg.Glyph, seg.Style, glyph, StyleBorder)
		}
	}
}

func TestComputeTopLeftPane(t *testing.T) {
	pane := Rect{Row: 1, Col: 0, Width: 40, Height: 20}
	plan := Compute(pane, screen)

	if plan.Edges != EdgeTop|EdgeLeft {
		t.Fatalf("edges = %s, want top|left", plan.Edges)
	}
	if plan.Overlay.Col != 0 {
		t.Errorf("overlay col = %d, want 0", plan.Overlay.Col)
	}
	if plan.Overlay.Row != pane.Row {
		t.Errorf("overlay row = %d, want %d", plan.Overlay.Row, pane.Row)
	}
	want := Rect{Row: 1, Col: 0, Width: 41, Height: 21}
	if plan.Overlay != want {
		t.Errorf("overlay = %+v, want %+v", plan.Overlay, want)
	}

	for _, pos := range []Position{Top, Left, TopLeft} {
		if seg := plan.Segment(pos); seg.Visible || seg.Style != StyleNone {
			t.Errorf("%s should be blank, got %+v", pos, seg)
		}
	}
	if got := plan.Segment(TopRight).Glyph; got != "│" {
		t.Errorf("top-right = %q, want vertical bar", got)
	}
	if got := plan.Segment(BottomLeft).Glyph; got != "╰" {
		t.Errorf("bottom-left = %q, want corner", got)
	}
}

// A pane on the left edge below the tab strip keeps a corner glyph in its
// top-left cell so the top edge still has something to join.
func TestComputeLeftEdgeKeepsTopLeftCorner(t *testing.T) {
	plan := Compute(Rect{Row: 10, Col: 0, Width: 20, Height: 10}, screen)

	if seg := plan.Segment(Left); seg.Visible {
		t.Fatalf("left should be blank, got %+v", seg)
	}
	if got := plan.Segment(TopLeft).Glyph; got != "╭" {
		t.Errorf("top-left = %q, want %q", got, "╭")
	}
	if got := plan.Segment(BottomLeft).Glyph; got != "╰" {
		t.Errorf("bottom-left = %q, want %q", got, "╰")
	}
}

func TestComputeFullWidthPane(t *testing.T) {
	pane := Rect{Row: 10, Col: 0, Width: screen.Cols, Height: 10}
	plan := Compute(pane, screen)

	if !plan.Edges.Has(EdgeLeft | EdgeRight) {
		t.Fatalf("edges = %s, want left and right", plan.Edges)
	}
	if plan.Segment(Left).Visible {
		t.Error("left segment should be suppressed")
	}
	if plan.Overlay.Width != screen.Cols {
		t.Errorf("overlay width = %d, want %d", plan.Overlay.Width, screen.Cols)
	}
	if plan.Overlay.Row != 9 || plan.Overlay.Height != 12 {
		t.Errorf("overlay rows = %d+%d, want 9+12", plan.Overlay.Row, plan.Overlay.Height)
	}
}

func TestComputeRightEdgeDrawsOnLastColumn(t *testing.T) {
	pane := Rect{Row: 10, Col: 40, Width: 39, Height: 10}
	plan := Compute(pane, screen)

	if !plan.Edges.Has(EdgeRight) {
		t.Fatalf("edges = %s, want right", plan.Edges)
	}
	if plan.Overlay.LastCol() != pane.LastCol() {
		t.Errorf("overlay last col = %d, want %d", plan.Overlay.LastCol(), pane.LastCol())
	}
	if !plan.Segment(Right).Visible {
		t.Error("right segment should stay visible")
	}
}

func TestComputeFullScreenPane(t *testing.T) {
	pane := Rect{Row: 1, Col: 0, Width: screen.Cols, Height: screen.Rows - 2}
	plan := Compute(pane, screen)

	if plan.Edges != AllEdges {
		t.Fatalf("edges = %s, want all", plan.Edges)
	}
	if plan.Overlay != pane {
		t.Errorf("overlay = %+v, want flush %+v", plan.Overlay, pane)
	}
	for _, pos := range []Position{Top, Bottom, Left, TopLeft, BottomLeft} {
		if plan.Segment(pos).Visible {
			t.Errorf("%s should be blank", pos)
		}
	}
	for _, pos := range []Position{TopRight, BottomRight} {
		if got := plan.Segment(pos).Glyph; got != "│" {
			t.Errorf("%s = %q, want vertical bar", pos, got)
		}
	}
}

func TestComputeWithoutRoomAboveStaysFlush(t *testing.T) {
	pane := Rect{Row: 0, Col: 10, Width: 20, Height: 5}
	plan := Compute(pane, screen)

	if plan.Edges.Has(EdgeTop) {
		t.Fatalf("row 0 is not the top edge, got %s", plan.Edges)
	}
	if plan.Overlay.Row != 0 {
		t.Errorf("overlay row = %d, want 0", plan.Overlay.Row)
	}
	if plan.Segment(Top).Visible {
		t.Error("top segment should be blank when there is no row above")
	}
}

func TestComputeIsIdempotent(t *testing.T) {
	pane := Rect{Row: 7, Col: 0, Width: 33, Height: 12}
	first := Compute(pane, screen)
	second := Compute(pane, screen)
	if first != second {
		t.Fatalf("plans differ:\n%+v\n%+v", first, second)
	}
}

func TestComputeAllEdgeCombinations(t *testing.T) {
	for combo := EdgeSet(0); combo <= AllEdges; combo++ {
		for _, rightGap := range []int{0, 1} {
			pane := Rect{Row: 10, Col: 20, Width: 20, Height: 10}
			if combo.Has(EdgeTop) {
				pane.Row = 1
			}
			if combo.Has(EdgeLeft) {
				pane.Col = 0
			}
			if combo.Has(EdgeBottom) {
				pane.Height = screen.Rows - 1 - pane.Row
			}
			if combo.Has(EdgeRight) {
				pane.Width = screen.Cols - rightGap - pane.Col
			}

			t.Run(fmt.Sprintf("%s/gap%d", combo, rightGap), func(t *testing.T) {
				plan := Compute(pane, screen)
				if plan.Edges != combo {
					t.Fatalf("edges = %s, want %s", plan.Edges, combo)
				}
				if IsEdge(pane, screen) != combo {
					t.Fatalf("IsEdge = %s, want %s", IsEdge(pane, screen), combo)
				}

				bounds := screen.Bounds()
				for _, c := range plan.Cells() {
					if !bounds.Contains(c.Row, c.Col) {
						t.Errorf("cell %q at (%d,%d) is off screen", c.Glyph, c.Row, c.Col)
					}
				}

				assertConnected(t, plan)
			})
		}
	}
}

func assertConnected(t *testing.T, plan BorderPlan) {
	t.Helper()
	joins := []struct {
		edge   Position
		corner Position
		dir    byte
	}{
		{Top, TopLeft, 'r'}, {Top, TopRight, 'l'},
		{Right, TopRight, 'd'}, {Right, BottomRight, 'u'},
		{Bottom, BottomLeft, 'r'}, {Bottom, BottomRight, 'l'},
		{Left, TopLeft, 'd'}, {Left, BottomLeft, 'u'},
	}
	for _, j := range joins {
		if !plan.Segment(j.edge).Visible {
			continue
		}
		corner := plan.Segment(j.corner)
		if !corner.Visible {
			t.Errorf("%s is drawn but %s is blank", j.edge, j.corner)
			continue
		}
		if !hasArm(corner.Glyph, j.dir) {
			t.Errorf("%s %q does not join %s", j.corner, corner.Glyph, j.edge)
		}
	}
	for _, seg := range plan.Segments {
		if seg.Visible && seg.Glyph == "" {
			t.Errorf("%s is visible without a glyph", seg.Position)
		}
		if !seg.Visible && seg.Glyph != "" {
			t.Errorf("%s is blank but carries %q", seg.Position, seg.Glyph)
		}
	}
}

func TestComputeWithASCIIGlyphs(t *testing.T) {
	plan := ComputeWith(Rect{Row: 1, Col: 10, Width: 10, Height: 5}, screen, ASCIIGlyphs())
	if got := plan.Segment(TopRight).Glyph; got != "|" {
		t.Errorf("top-right = %q, want %q", got, "|")
	}
	if got := plan.Segment(BottomLeft).Glyph; got != "+" {
		t.Errorf("bottom-left = %q, want %q", got, "+")
	}
}

func TestCellsCoverPerimeter(t *testing.T) {
	plan := Compute(Rect{Row: 10, Col: 20, Width: 30, Height: 10}, screen)
	cells := plan.Cells()

	box := plan.Overlay
	want := 2*box.Width + 2*box.Height - 4
	if len(cells) != want {
		t.Fatalf("cells = %d, want %d", len(cells), want)
	}
	for _, c := range cells {
		onPerimeter := c.Row == box.Row || c.Row == box.LastRow() || c.Col == box.Col || c.Col == box.LastCol()
		if !onPerimeter || !box.Contains(c.Row, c.Col) {
			t.Errorf("cell (%d,%d) is not on the overlay perimeter", c.Row, c.Col)
		}
	}
}

func TestCellsSkipBlankSegments(t *testing.T) {
	plan := Compute(Rect{Row: 1, Col: 0, Width: 10, Height: 5}, screen)
	last := plan.Overlay.LastRow()
	for _, c := range plan.Cells() {
		if c.Row == 1 && c.Col < 10 && c.Glyph == "─" {
			t.Errorf("blank top segment produced a cell at col %d", c.Col)
		}
		if c.Col == 0 && c.Row != last {
			t.Errorf("blank left segment produced a cell at row %d", c.Row)
		}
	}
}
