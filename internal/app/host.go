package app

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Gaurav-Gosain/winborder/internal/geometry"
	"github.com/Gaurav-Gosain/winborder/internal/layout"
	"github.com/Gaurav-Gosain/winborder/internal/overlay"
)

type surface struct {
	buffer  overlay.BufferID
	plan    geometry.BorderPlan
	hasPlan bool
}

type subscription struct {
	kinds   []overlay.EventKind
	handler func(overlay.Event)
}

// FocusedPane implements overlay.Panes.
func (m *Model) FocusedPane() (overlay.PaneID, geometry.Rect, error) {
	id := m.tree.Focused()
	if m.layoutErr != nil {
		return "", geometry.Rect{}, fmt.Errorf("focused pane: %w", m.layoutErr)
	}
	r, ok := m.layout.Panes[id]
	if !ok {
		return "", geometry.Rect{}, fmt.Errorf("focused pane %q: %w", id, layout.ErrPaneNotFound)
	}
	return overlay.PaneID(id), r, nil
}

// Screen implements overlay.Panes.
func (m *Model) Screen() geometry.Screen {
	return geometry.Screen{Rows: m.Height, Cols: m.Width}
}

// VisiblePaneCount implements overlay.Panes. Panes that did not fit the
// screen are not visible.
func (m *Model) VisiblePaneCount() int {
	return len(m.layout.Panes)
}

// CreateBuffer implements overlay.Surfaces.
func (m *Model) CreateBuffer() (overlay.BufferID, error) {
	id := overlay.BufferID(createID())
	m.buffers[id] = struct{}{}
	return id, nil
}

// DeleteBuffer implements overlay.Surfaces. Surfaces showing the buffer are
// destroyed with it.
func (m *Model) DeleteBuffer(id overlay.BufferID) error {
	if _, ok := m.buffers[id]; !ok {
		return fmt.Errorf("delete buffer %s: %w", id, overlay.ErrInvalidHandle)
	}
	for sid, s := range m.surfaces {
		if s.buffer == id {
			delete(m.surfaces, sid)
		}
	}
	delete(m.buffers, id)
	return nil
}

// CreateSurface implements overlay.Surfaces.
func (m *Model) CreateSurface(buf overlay.BufferID) (overlay.SurfaceID, error) {
	if _, ok := m.buffers[buf]; !ok {
		return "", fmt.Errorf("create surface for %s: %w", buf, overlay.ErrInvalidHandle)
	}
	id := overlay.SurfaceID(createID())
	m.surfaces[id] = &surface{buffer: buf}
	return id, nil
}

// ApplyGeometry implements overlay.Surfaces.
func (m *Model) ApplyGeometry(id overlay.SurfaceID, plan geometry.BorderPlan) error {
	s, ok := m.surfaces[id]
	if !ok {
		return fmt.Errorf("apply geometry to %s: %w", id, overlay.ErrInvalidHandle)
	}
	if plan.Overlay.Valid() && !m.Screen().Bounds().Contains(plan.Overlay.LastRow(), plan.Overlay.LastCol()) {
		return fmt.Errorf("apply geometry to %s: overlay %+v outside screen %+v", id, plan.Overlay, m.Screen())
	}
	s.plan = plan
	s.hasPlan = true
	return nil
}

// DestroySurface implements overlay.Surfaces.
func (m *Model) DestroySurface(id overlay.SurfaceID) error {
	if _, ok := m.surfaces[id]; !ok {
		return fmt.Errorf("destroy surface %s: %w", id, overlay.ErrInvalidHandle)
	}
	delete(m.surfaces, id)
	return nil
}

// Subscribe implements overlay.Events.
func (m *Model) Subscribe(kinds []overlay.EventKind, handler func(overlay.Event)) (overlay.SubscriptionID, error) {
	if handler == nil {
		return 0, errors.New("subscribe: nil handler")
	}
	m.nextSub++
	m.subs[m.nextSub] = &subscription{kinds: slices.Clone(kinds), handler: handler}
	return m.nextSub, nil
}

// Unsubscribe implements overlay.Events.
func (m *Model) Unsubscribe(id overlay.SubscriptionID) {
	delete(m.subs, id)
}

// ReserveTopStrip implements overlay.TopStrip. The reserved pane shows its
// header in its first row.
func (m *Model) ReserveTopStrip(id overlay.PaneID) {
	m.reserved = id
}

// ReleaseTopStrip implements overlay.TopStrip.
func (m *Model) ReleaseTopStrip(id overlay.PaneID) {
	if m.reserved == id {
		m.reserved = ""
	}
}

// emit delivers an event to every matching subscriber, in subscription
// order, before returning.
func (m *Model) emit(kind overlay.EventKind, pane overlay.PaneID) {
	ids := make([]overlay.SubscriptionID, 0, len(m.subs))
	for id := range m.subs {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	ev := overlay.Event{Kind: kind, Pane: pane}
	for _, id := range ids {
		sub, ok := m.subs[id]
		if !ok || !slices.Contains(sub.kinds, kind) {
			continue
		}
		sub.handler(ev)
	}
}

// Counts reports live buffers, surfaces and subscriptions.
func (m *Model) Counts() (buffers, surfaces, subscriptions int) {
	return len(m.buffers), len(m.surfaces), len(m.subs)
}

// OverlayPlans returns the plans applied to live surfaces.
func (m *Model) OverlayPlans() []geometry.BorderPlan {
	var plans []geometry.BorderPlan
	for _, s := range m.surfaces {
		if s.hasPlan {
			plans = append(plans, s.plan)
		}
	}
	return plans
}
