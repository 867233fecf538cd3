package geometry

// Cell is a single visible border character at a screen position.
type Cell struct {
	Row   int
	Col   int
	Glyph string
	Style Style
}

// Cells expands the visible segments of the plan into screen cells, in
// segment order. On a box one cell wide or tall, later segments repeat cells
// already emitted; hosts painting in order end up with the last one.
func (p BorderPlan) Cells() []Cell {
	box := p.Overlay
	if !box.Valid() {
		return nil
	}
	top, bottom := box.Row, box.LastRow()
	left, right := box.Col, box.LastCol()

	cells := make([]Cell, 0, 2*box.Width+2*box.Height)
	for _, seg := range p.Segments {
		if !seg.Visible {
			continue
		}
		add := func(row, col int) {
			cells = append(cells, Cell{Row: row, Col: col, Glyph: seg.Glyph, Style: seg.Style})
		}
		switch seg.Position {
		case TopLeft:
			add(top, left)
		case Top:
			for col := left + 1; col < right; col++ {
				add(top, col)
			}
		case TopRight:
			add(top, right)
		case Right:
			for row := top + 1; row < bottom; row++ {
				add(row, right)
			}
		case BottomRight:
			add(bottom, right)
		case Bottom:
			for col := left + 1; col < right; col++ {
				add(bottom, col)
			}
		case BottomLeft:
			add(bottom, left)
		case Left:
			for row := top + 1; row < bottom; row++ {
				add(row, left)
			}
		}
	}
	return cells
}
