package layout

import (
	"errors"
	"slices"
	"testing"

	"github.com/Gaurav-Gosain/winborder/internal/geometry"
)

var area = geometry.Rect{Row: 1, Col: 0, Width: 79, Height: 38}

func TestLayoutSinglePane(t *testing.T) {
	tree := New("a")
	res, err := tree.Layout(area)
	if err != nil {
		t.Fatalf("Layout failed: %v", err)
	}
	if res.Panes["a"] != area {
		t.Errorf("pane a = %+v, want %+v", res.Panes["a"], area)
	}
	if len(res.Separators) != 0 {
		t.Errorf("separators = %d, want 0", len(res.Separators))
	}
}

func TestLayoutVerticalSplitLeavesGap(t *testing.T) {
	tree := New("a")
	if err := tree.Split("a", "b", Vertical); err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	res, err := tree.Layout(area)
	if err != nil {
		t.Fatalf("Layout failed: %v", err)
	}

	a, b := res.Panes["a"], res.Panes["b"]
	if a != (geometry.Rect{Row: 1, Col: 0, Width: 39, Height: 38}) {
		t.Errorf("a = %+v", a)
	}
	if b != (geometry.Rect{Row: 1, Col: 40, Width: 39, Height: 38}) {
		t.Errorf("b = %+v", b)
	}
	if b.Col-a.LastCol() != 2 {
		t.Errorf("expected a one column gap between %+v and %+v", a, b)
	}
	if len(res.Separators) != 1 || res.Separators[0].Col != 39 || res.Separators[0].Dir != Vertical {
		t.Errorf("separators = %+v", res.Separators)
	}
	if tree.Focused() != "b" {
		t.Errorf("focused = %q, want b", tree.Focused())
	}
}

func TestLayoutHorizontalSplitLeavesGap(t *testing.T) {
	tree := New("a")
	if err := tree.Split("a", "b", Horizontal); err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	res, err := tree.Layout(area)
	if err != nil {
		t.Fatalf("Layout failed: %v", err)
	}
	a, b := res.Panes["a"], res.Panes["b"]
	if a.Height+b.Height+1 != area.Height {
		t.Errorf("heights %d+%d+1 != %d", a.Height, b.Height, area.Height)
	}
	if b.Row != a.LastRow()+2 {
		t.Errorf("b starts at row %d, want %d", b.Row, a.LastRow()+2)
	}
}

func TestLayoutTooSmall(t *testing.T) {
	tree := New("a")
	_ = tree.Split("a", "b", Vertical)
	_, err := tree.Layout(geometry.Rect{Row: 1, Width: 2, Height: 5})
	if !errors.Is(err, ErrTooSmall) {
		t.Errorf("err = %v, want ErrTooSmall", err)
	}
}

func TestCloseGivesSpaceToSibling(t *testing.T) {
	tree := New("a")
	_ = tree.Split("a", "b", Vertical)
	_ = tree.Split("b", "c", Horizontal)

	if err := tree.Close("b"); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if got := tree.Panes(); !slices.Equal(got, []string{"a", "c"}) {
		t.Errorf("panes = %v, want [a c]", got)
	}
	res, err := tree.Layout(area)
	if err != nil {
		t.Fatalf("Layout failed: %v", err)
	}
	if res.Panes["c"].Height != area.Height {
		t.Errorf("c height = %d, want %d", res.Panes["c"].Height, area.Height)
	}
	if tree.Focused() != "c" {
		t.Errorf("focused = %q, want c", tree.Focused())
	}
}

func TestCloseFocusedMovesFocusToSibling(t *testing.T) {
	tree := New("a")
	_ = tree.Split("a", "b", Vertical)
	_ = tree.Split("a", "c", Horizontal)
	_ = tree.Focus("b")

	if err := tree.Close("b"); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if tree.Focused() != "a" {
		t.Errorf("focused = %q, want a", tree.Focused())
	}
}

func TestCloseLastPane(t *testing.T) {
	tree := New("a")
	if err := tree.Close("a"); !errors.Is(err, ErrLastPane) {
		t.Errorf("err = %v, want ErrLastPane", err)
	}
	if err := tree.Close("zzz"); !errors.Is(err, ErrPaneNotFound) {
		t.Errorf("err = %v, want ErrPaneNotFound", err)
	}
}

func TestFocusNextWraps(t *testing.T) {
	tree := New("a")
	_ = tree.Split("a", "b", Vertical)
	_ = tree.Split("b", "c", Vertical)
	_ = tree.Focus("a")

	if got := tree.FocusNext(1); got != "b" {
		t.Errorf("next = %q, want b", got)
	}
	if got := tree.FocusNext(2); got != "a" {
		t.Errorf("next = %q, want a", got)
	}
	if got := tree.FocusNext(-1); got != "c" {
		t.Errorf("prev = %q, want c", got)
	}
}

func TestResize(t *testing.T) {
	tree := New("a")
	_ = tree.Split("a", "b", Vertical)

	if !tree.Resize("a", Vertical, 0.1) {
		t.Fatal("Resize should report a change")
	}
	res, _ := tree.Layout(area)
	if res.Panes["a"].Width <= res.Panes["b"].Width {
		t.Errorf("a (%d) should be wider than b (%d)", res.Panes["a"].Width, res.Panes["b"].Width)
	}

	if tree.Resize("a", Horizontal, 0.1) {
		t.Error("no horizontal split encloses a")
	}

	for range 10 {
		tree.Resize("b", Vertical, 0.1)
	}
	if tree.Resize("b", Vertical, 0.1) {
		t.Error("resize past the limit should report no change")
	}
}

func TestRatioRestoresClampedStep(t *testing.T) {
	tree := New("a")
	_ = tree.Split("a", "b", Vertical)
	if !tree.SetRatio("a", Vertical, 0.15) {
		t.Fatal("SetRatio should report a change")
	}

	prev, ok := tree.Ratio("a", Vertical)
	if !ok || prev != 0.15 {
		t.Fatalf("Ratio = %v, %v, want 0.15, true", prev, ok)
	}
	// Clamped to MinRatio, so reversing the step would land on 0.2.
	tree.Resize("a", Vertical, -0.1)
	if got, _ := tree.Ratio("a", Vertical); got != MinRatio {
		t.Fatalf("Ratio after shrink = %v, want %v", got, MinRatio)
	}
	tree.SetRatio("a", Vertical, prev)
	if got, _ := tree.Ratio("b", Vertical); got != 0.15 {
		t.Errorf("Ratio after restore = %v, want 0.15", got)
	}

	if _, ok := tree.Ratio("a", Horizontal); ok {
		t.Error("Ratio found a horizontal split around a")
	}
	if tree.SetRatio("missing", Vertical, 0.5) {
		t.Error("SetRatio on a missing pane reported a change")
	}
}
