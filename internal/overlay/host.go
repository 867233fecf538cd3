// Package overlay keeps a border drawn around the focused pane while panes
// are focused, resized and closed.
//
// The Controller owns a single overlay surface and never touches the host's
// panes directly: it queries extents through Panes, draws through Surfaces
// and learns about layout changes through Events.
package overlay

import (
	"errors"

	"github.com/Gaurav-Gosain/winborder/internal/geometry"
)

// ErrInvalidHandle is returned by hosts when a buffer or surface handle no
// longer refers to anything. The controller treats it as already gone.
var ErrInvalidHandle = errors.New("overlay: invalid handle")

// PaneID identifies a pane in the host.
type PaneID string

// BufferID identifies the scratch buffer backing the overlay.
type BufferID string

// SurfaceID identifies the window showing the overlay buffer.
type SurfaceID string

// SubscriptionID identifies an event subscription.
type SubscriptionID int

// EventKind is a kind of layout change notification.
type EventKind int

const (
	// FocusChanged is sent when another pane gains focus, including a pane
	// that was just opened.
	FocusChanged EventKind = iota
	// Resized is sent when a pane or the whole screen changes size.
	Resized
	// PaneClosed is sent after a pane is removed from the layout.
	PaneClosed
)

func (k EventKind) String() string {
	switch k {
	case FocusChanged:
		return "focus-changed"
	case Resized:
		return "resize"
	case PaneClosed:
		return "pane-closed"
	default:
		return "unknown"
	}
}

// Event is a single layout change notification.
type Event struct {
	Kind EventKind
	Pane PaneID
}

// Panes answers questions about the current layout.
type Panes interface {
	FocusedPane() (PaneID, geometry.Rect, error)
	Screen() geometry.Screen
	VisiblePaneCount() int
}

// Surfaces creates and positions the overlay.
type Surfaces interface {
	CreateBuffer() (BufferID, error)
	DeleteBuffer(BufferID) error
	CreateSurface(BufferID) (SurfaceID, error)
	ApplyGeometry(SurfaceID, geometry.BorderPlan) error
	DestroySurface(SurfaceID) error
}

// Events delivers layout notifications. Handlers are called synchronously,
// one at a time, in delivery order.
type Events interface {
	Subscribe(kinds []EventKind, handler func(Event)) (SubscriptionID, error)
	Unsubscribe(SubscriptionID)
}

// Host is everything the controller needs from the editor.
type Host interface {
	Panes
	Surfaces
	Events
}

// TopStrip is an optional host capability. While the overlay sits flush on
// a pane touching the top of the screen, the controller reserves that pane's
// top strip so the border's top cells cover chrome instead of content.
type TopStrip interface {
	ReserveTopStrip(PaneID)
	ReleaseTopStrip(PaneID)
}
