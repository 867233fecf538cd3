package overlay

import (
	"errors"
	"fmt"
	"io"

	"github.com/Gaurav-Gosain/winborder/internal/geometry"
	"github.com/charmbracelet/log"
)

// State is the controller's lifecycle state.
type State int

const (
	Disabled State = iota
	Enabled
)

func (s State) String() string {
	if s == Enabled {
		return "enabled"
	}
	return "disabled"
}

// OverlayState tells whether the overlay surface currently exists.
type OverlayState int

const (
	OverlayAbsent OverlayState = iota
	OverlayPresent
)

func (s OverlayState) String() string {
	if s == OverlayPresent {
		return "present"
	}
	return "absent"
}

var watchedEvents = []EventKind{FocusChanged, Resized, PaneClosed}

// Options configures a Controller.
type Options struct {
	// Glyphs is the border character set. The zero value means rounded
	// box drawing. A set with any glyph not exactly one cell wide is
	// replaced by the defaults.
	Glyphs geometry.Glyphs

	// TopStrip overrides the capability found on the host, if any.
	TopStrip TopStrip

	// Logger receives diagnostics. Nil discards them.
	Logger *log.Logger
}

// Controller drives the geometry engine from layout notifications and
// applies the result to the overlay surface. It is not safe for concurrent
// use; all calls are expected on the host's event loop.
type Controller struct {
	host     Host
	glyphs   geometry.Glyphs
	topStrip TopStrip
	logger   *log.Logger

	state   State
	buffer  BufferID
	surface SurfaceID
	sub     SubscriptionID

	lastFocused PaneID
	reserved    PaneID
	plan        geometry.BorderPlan
	hasPlan     bool
}

// NewController returns a disabled controller for host.
func NewController(host Host, opts Options) *Controller {
	c := &Controller{
		host:     host,
		topStrip: opts.TopStrip,
		logger:   opts.Logger,
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	c.glyphs = c.checkGlyphs(opts.Glyphs)
	if c.topStrip == nil {
		if ts, ok := host.(TopStrip); ok {
			c.topStrip = ts
		}
	}
	return c
}

// State returns whether the controller is enabled.
func (c *Controller) State() State {
	return c.state
}

// Overlay returns whether the overlay surface exists.
func (c *Controller) Overlay() OverlayState {
	if c.surface == "" {
		return OverlayAbsent
	}
	return OverlayPresent
}

// LastFocused returns the pane the overlay was last drawn around.
// Nothing depends on it; it is kept for callers that want to diff.
func (c *Controller) LastFocused() PaneID {
	return c.lastFocused
}

// Plan returns the last plan applied to the overlay.
func (c *Controller) Plan() (geometry.BorderPlan, bool) {
	return c.plan, c.hasPlan
}

// Enable creates the overlay buffer, subscribes to layout notifications and
// draws the border for the current layout. Enabling twice is a no-op.
func (c *Controller) Enable() error {
	if c.state == Enabled {
		return nil
	}

	buf, err := c.host.CreateBuffer()
	if err != nil {
		return fmt.Errorf("failed to create overlay buffer: %w", err)
	}

	sub, err := c.host.Subscribe(watchedEvents, c.Sync)
	if err != nil {
		if delErr := c.host.DeleteBuffer(buf); delErr != nil {
			c.logger.Warn("failed to delete overlay buffer", "buffer", buf, "err", delErr)
		}
		return fmt.Errorf("failed to subscribe to layout events: %w", err)
	}

	c.buffer = buf
	c.sub = sub
	c.state = Enabled
	c.logger.Debug("enabled", "buffer", buf)

	c.Sync(Event{Kind: FocusChanged})
	return nil
}

// Disable unsubscribes, destroys the overlay and deletes its buffer.
// Disabling twice is a no-op.
func (c *Controller) Disable() {
	if c.state == Disabled {
		return
	}

	c.host.Unsubscribe(c.sub)
	c.destroy()
	if err := c.host.DeleteBuffer(c.buffer); err != nil && !errors.Is(err, ErrInvalidHandle) {
		c.logger.Warn("failed to delete overlay buffer", "buffer", c.buffer, "err", err)
	}

	c.buffer = ""
	c.sub = 0
	c.lastFocused = ""
	c.state = Disabled
	c.logger.Debug("disabled")
}

// Toggle flips between Enabled and Disabled.
func (c *Controller) Toggle() error {
	if c.state == Enabled {
		c.Disable()
		return nil
	}
	return c.Enable()
}

// SetGlyphs replaces the border character set and redraws the border.
// The zero value means rounded box drawing, and so does a set with a glyph
// wider or narrower than one cell.
func (c *Controller) SetGlyphs(g geometry.Glyphs) {
	g = c.checkGlyphs(g)
	if g == c.glyphs {
		return
	}
	c.glyphs = g
	c.Sync(Event{Kind: Resized})
}

// Sync recomputes the border from scratch and applies it. It is the
// notification handler, and is safe to call at any time: it ignores the
// event payload and reads the current layout from the host.
func (c *Controller) Sync(ev Event) {
	if c.state != Enabled {
		return
	}

	if c.host.VisiblePaneCount() < 2 {
		c.destroy()
		return
	}

	id, pane, err := c.host.FocusedPane()
	if err != nil {
		c.logger.Warn("failed to query focused pane", "event", ev.Kind, "err", err)
		return
	}
	if !pane.Valid() {
		c.logger.Debug("skipping empty pane", "pane", id, "rect", pane)
		return
	}

	plan := geometry.ComputeWith(pane, c.host.Screen(), c.glyphs)

	if c.surface == "" {
		surface, err := c.host.CreateSurface(c.buffer)
		if err != nil {
			c.logger.Warn("failed to create overlay surface", "err", err)
			c.reserveTopStrip("", false)
			return
		}
		c.surface = surface
	}

	if err := c.host.ApplyGeometry(c.surface, plan); err != nil {
		c.logger.Warn("failed to apply overlay geometry", "surface", c.surface, "err", err)
		c.discardSurface()
		return
	}
	c.reserveTopStrip(id, plan.Edges.Has(geometry.EdgeTop))

	c.lastFocused = id
	c.plan = plan
	c.hasPlan = true
	c.logger.Debug("synced", "event", ev.Kind, "pane", id, "edges", plan.Edges, "overlay", plan.Overlay)
}

// destroy removes the overlay surface if there is one.
func (c *Controller) destroy() {
	c.reserveTopStrip("", false)
	if c.surface == "" {
		return
	}
	if err := c.host.DestroySurface(c.surface); err != nil && !errors.Is(err, ErrInvalidHandle) {
		c.logger.Warn("failed to destroy overlay surface", "surface", c.surface, "err", err)
	}
	c.surface = ""
	c.hasPlan = false
}

// discardSurface forgets a surface the host refused to update. A stale
// handle is dropped as is; anything else gets one destroy attempt so the
// host is not left with an orphan.
func (c *Controller) discardSurface() {
	c.reserveTopStrip("", false)
	if err := c.host.DestroySurface(c.surface); err != nil && !errors.Is(err, ErrInvalidHandle) {
		c.logger.Debug("failed to destroy rejected surface", "surface", c.surface, "err", err)
	}
	c.surface = ""
	c.hasPlan = false
}

// checkGlyphs maps the zero value and sets that break the one glyph per
// cell layout of a plan to the defaults.
func (c *Controller) checkGlyphs(g geometry.Glyphs) geometry.Glyphs {
	if g == (geometry.Glyphs{}) {
		return geometry.DefaultGlyphs()
	}
	if !g.SingleCell() {
		c.logger.Warn("border glyphs must be one cell wide, using defaults", "glyphs", g)
		return geometry.DefaultGlyphs()
	}
	return g
}

func (c *Controller) reserveTopStrip(id PaneID, reserve bool) {
	if c.topStrip == nil {
		return
	}
	want := PaneID("")
	if reserve {
		want = id
	}
	if want == c.reserved {
		return
	}
	if c.reserved != "" {
		c.topStrip.ReleaseTopStrip(c.reserved)
	}
	if want != "" {
		c.topStrip.ReserveTopStrip(want)
	}
	c.reserved = want
}
