package geometry

// Position identifies one of the eight parts of a border.
type Position uint8

// Positions in the order segments appear in a BorderPlan.
const (
	TopLeft Position = iota
	Top
	TopRight
	Right
	BottomRight
	Bottom
	BottomLeft
	Left
)

// SegmentCount is the number of segments in every plan.
const SegmentCount = 8

var positionNames = [SegmentCount]string{
	"top-left", "top", "top-right", "right", "bottom-right", "bottom", "bottom-left", "left",
}

func (p Position) String() string {
	if int(p) < len(positionNames) {
		return positionNames[p]
	}
	return "unknown"
}

// IsCorner reports whether the position is one of the four corners.
func (p Position) IsCorner() bool {
	return p%2 == 0
}

// Style names the highlight a segment is drawn with. Hosts resolve the names
// to concrete colors once at setup time.
type Style string

const (
	StyleBorder Style = "border"
	StyleNone   Style = "border-none"
)

// Segment is one corner or edge of the border.
type Segment struct {
	Position Position `json:"-"`
	Name     string   `json:"position"`
	Visible  bool     `json:"visible"`
	Glyph    string   `json:"glyph"`
	Style    Style    `json:"style"`
}

// BorderPlan is everything a host needs to draw the border around a pane.
type BorderPlan struct {
	// Overlay is the outer box. Its perimeter carries the segments.
	Overlay  Rect                  `json:"overlay"`
	Edges    EdgeSet               `json:"-"`
	Segments [SegmentCount]Segment `json:"segments"`
}

// Segment returns the segment at pos.
func (p BorderPlan) Segment(pos Position) Segment {
	return p.Segments[pos]
}

// VisibleCount returns how many segments are drawn.
func (p BorderPlan) VisibleCount() int {
	n := 0
	for _, s := range p.Segments {
		if s.Visible {
			n++
		}
	}
	return n
}

type cornerKind uint8

const (
	cornerBlank cornerKind = iota
	cornerGlyph
	cornerBar
)

// cornerRules is indexed by [horizontal side visible][vertical side visible].
// A corner whose vertical side is blank keeps its corner glyph so it still
// joins the horizontal edge next to it.
var cornerRules = [2][2]cornerKind{
	{cornerBlank, cornerBar},
	{cornerGlyph, cornerGlyph},
}

// corners lists, per corner, the horizontal and vertical edge it joins.
var corners = [...]struct {
	pos        Position
	horizontal Position
	vertical   Position
}{
	{TopLeft, Top, Left},
	{TopRight, Top, Right},
	{BottomRight, Bottom, Right},
	{BottomLeft, Bottom, Left},
}

// Compute returns the plan for pane using the default glyphs.
func Compute(pane Rect, screen Screen) BorderPlan {
	return ComputeWith(pane, screen, DefaultGlyphs())
}

// ComputeWith returns the plan for pane drawn with glyphs.
//
// Interior sides push the box one cell outward into the gap next to the pane.
// Sides on the screen edge, or without room to grow, stay flush with the pane
// and their edge segment is blanked, except for the right side where the
// border is drawn over the pane's last column instead.
func ComputeWith(pane Rect, screen Screen, glyphs Glyphs) BorderPlan {
	edges := IsEdge(pane, screen)

	flush := edges
	if pane.Row-1 < 0 {
		flush |= EdgeTop
	}
	if pane.Col-1 < 0 {
		flush |= EdgeLeft
	}
	if pane.Row+pane.Height >= screen.Rows {
		flush |= EdgeBottom
	}
	if pane.Col+pane.Width >= screen.Cols {
		flush |= EdgeRight
	}

	box := pane
	if !flush.Has(EdgeTop) {
		box.Row--
		box.Height++
	}
	if !flush.Has(EdgeBottom) {
		box.Height++
	}
	if !flush.Has(EdgeLeft) {
		box.Col--
		box.Width++
	}
	if !flush.Has(EdgeRight) {
		box.Width++
	}

	box, clipped := clip(box, screen)
	flush |= clipped &^ EdgeRight

	plan := BorderPlan{Overlay: box, Edges: edges}
	if !box.Valid() {
		plan.Overlay = Rect{}
		for i := range plan.Segments {
			plan.Segments[i] = blank(Position(i))
		}
		return plan
	}

	visible := [SegmentCount]bool{
		Top:    !flush.Has(EdgeTop),
		Right:  true,
		Bottom: !flush.Has(EdgeBottom),
		Left:   !flush.Has(EdgeLeft),
	}
	edgeGlyphs := [SegmentCount]string{
		Top:    glyphs.Top,
		Right:  glyphs.Right,
		Bottom: glyphs.Bottom,
		Left:   glyphs.Left,
	}
	for _, pos := range []Position{Top, Right, Bottom, Left} {
		if visible[pos] {
			plan.Segments[pos] = drawn(pos, edgeGlyphs[pos])
		} else {
			plan.Segments[pos] = blank(pos)
		}
	}

	cornerGlyphs := [SegmentCount]string{
		TopLeft:     glyphs.TopLeft,
		TopRight:    glyphs.TopRight,
		BottomRight: glyphs.BottomRight,
		BottomLeft:  glyphs.BottomLeft,
	}
	for _, c := range corners {
		switch cornerRules[b2i(visible[c.horizontal])][b2i(visible[c.vertical])] {
		case cornerGlyph:
			plan.Segments[c.pos] = drawn(c.pos, cornerGlyphs[c.pos])
		case cornerBar:
			plan.Segments[c.pos] = drawn(c.pos, edgeGlyphs[c.vertical])
		default:
			plan.Segments[c.pos] = blank(c.pos)
		}
	}

	return plan
}

// clip intersects box with the screen and reports which sides were cut.
func clip(box Rect, screen Screen) (Rect, EdgeSet) {
	var cut EdgeSet
	if box.Row < 0 {
		box.Height += box.Row
		box.Row = 0
		cut |= EdgeTop
	}
	if box.Col < 0 {
		box.Width += box.Col
		box.Col = 0
		cut |= EdgeLeft
	}
	if over := box.Row + box.Height - screen.Rows; over > 0 {
		box.Height -= over
		cut |= EdgeBottom
	}
	if over := box.Col + box.Width - screen.Cols; over > 0 {
		box.Width -= over
		cut |= EdgeRight
	}
	return box, cut
}

func drawn(pos Position, glyph string) Segment {
	return Segment{Position: pos, Name: pos.String(), Visible: true, Glyph: glyph, Style: StyleBorder}
}

func blank(pos Position) Segment {
	return Segment{Position: pos, Name: pos.String(), Style: StyleNone}
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
