// Package winborder draws a single border around the focused pane of a
// split-pane editor screen and keeps it in sync as panes are focused,
// resized and closed.
//
// The border lives on one overlay surface owned by a Controller. The editor
// supplies pane extents, overlay surfaces and layout notifications through
// the Host interface; the Controller recomputes the border from scratch on
// every notification.
//
// # Embedding
//
// Implement Host on your editor and create a controller:
//
//	c := winborder.New(editor,
//		winborder.WithBorderStyle("thick"),
//		winborder.WithLogger(logger),
//	)
//	if err := c.Enable(); err != nil {
//		return err
//	}
//	defer c.Disable()
//
// # Geometry only
//
// The geometry is available without a controller:
//
//	plan := winborder.Compute(pane, screen)
//	for _, cell := range plan.Cells() {
//		draw(cell.Row, cell.Col, cell.Glyph)
//	}
//
// # Reference host
//
// NewModel returns the bundled split-pane screen as a Bubble Tea model:
//
//	p := tea.NewProgram(winborder.NewModel(winborder.WithTheme("nord")))
//	if _, err := p.Run(); err != nil {
//		log.Fatal(err)
//	}
package winborder

import (
	"io"

	"github.com/Gaurav-Gosain/winborder/internal/app"
	"github.com/Gaurav-Gosain/winborder/internal/config"
	"github.com/Gaurav-Gosain/winborder/internal/geometry"
	"github.com/Gaurav-Gosain/winborder/internal/overlay"
	"github.com/Gaurav-Gosain/winborder/internal/theme"
	"github.com/charmbracelet/log"
)

// Geometry types.
type (
	Rect       = geometry.Rect
	Screen     = geometry.Screen
	EdgeSet    = geometry.EdgeSet
	Glyphs     = geometry.Glyphs
	Position   = geometry.Position
	Segment    = geometry.Segment
	BorderPlan = geometry.BorderPlan
	Cell       = geometry.Cell
)

// Edge flags.
const (
	EdgeTop    = geometry.EdgeTop
	EdgeBottom = geometry.EdgeBottom
	EdgeLeft   = geometry.EdgeLeft
	EdgeRight  = geometry.EdgeRight
)

// Controller and host types.
type (
	Controller     = overlay.Controller
	Host           = overlay.Host
	TopStrip       = overlay.TopStrip
	Event          = overlay.Event
	EventKind      = overlay.EventKind
	PaneID         = overlay.PaneID
	BufferID       = overlay.BufferID
	SurfaceID      = overlay.SurfaceID
	SubscriptionID = overlay.SubscriptionID
)

// Event kinds.
const (
	FocusChanged = overlay.FocusChanged
	Resized      = overlay.Resized
	PaneClosed   = overlay.PaneClosed
)

// ErrInvalidHandle is what hosts return for stale buffer or surface handles.
var ErrInvalidHandle = overlay.ErrInvalidHandle

// Model is the bundled reference host.
type Model = app.Model

// IsEdge returns the sides of pane that touch the screen boundary.
func IsEdge(pane Rect, screen Screen) EdgeSet {
	return geometry.IsEdge(pane, screen)
}

// IsLeftmostColumn reports whether pane starts in the first screen column.
func IsLeftmostColumn(pane Rect) bool {
	return geometry.IsLeftmostColumn(pane)
}

// Compute returns the border plan for pane with rounded glyphs.
func Compute(pane Rect, screen Screen) BorderPlan {
	return geometry.Compute(pane, screen)
}

// ComputeWith returns the border plan for pane drawn with glyphs.
func ComputeWith(pane Rect, screen Screen, glyphs Glyphs) BorderPlan {
	return geometry.ComputeWith(pane, screen, glyphs)
}

// GlyphsForStyle returns the glyph set for a border style name: rounded,
// normal, thick, double or ascii.
func GlyphsForStyle(style string) Glyphs {
	return config.GlyphsForStyle(style, false)
}

// Options configures a controller or the reference host.
type Options struct {
	// BorderStyle selects the glyph set.
	// Valid values: "rounded", "normal", "thick", "double", "ascii"
	BorderStyle string

	// ASCIIOnly forces ASCII glyphs.
	ASCIIOnly bool

	// Glyphs overrides BorderStyle with an explicit glyph set.
	Glyphs Glyphs

	// TopStrip overrides the capability found on the host.
	TopStrip TopStrip

	// Logger receives diagnostics. Nil discards them.
	Logger *log.Logger

	// Theme is the color theme of the reference host.
	// Leave empty to use standard terminal colors.
	Theme string

	// DisableBorder starts the reference host with the border off.
	DisableBorder bool

	// Width and Height size the reference host before the first
	// window size message arrives.
	Width  int
	Height int

	// UserConfig is a custom configuration for the reference host. If nil,
	// defaults are used.
	UserConfig *config.UserConfig
}

// Option is a functional option.
type Option func(*Options)

// WithBorderStyle sets the border glyph style.
func WithBorderStyle(style string) Option {
	return func(o *Options) {
		o.BorderStyle = style
	}
}

// WithASCIIOnly forces ASCII glyphs.
func WithASCIIOnly(enabled bool) Option {
	return func(o *Options) {
		o.ASCIIOnly = enabled
	}
}

// WithGlyphs sets an explicit glyph set.
func WithGlyphs(g Glyphs) Option {
	return func(o *Options) {
		o.Glyphs = g
	}
}

// WithTopStrip sets the top strip capability.
func WithTopStrip(ts TopStrip) Option {
	return func(o *Options) {
		o.TopStrip = ts
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(logger *log.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithTheme sets the reference host's color theme.
func WithTheme(name string) Option {
	return func(o *Options) {
		o.Theme = name
	}
}

// WithDisableBorder starts the reference host with the border off.
func WithDisableBorder(disabled bool) Option {
	return func(o *Options) {
		o.DisableBorder = disabled
	}
}

// WithSize sets the reference host's initial size.
func WithSize(width, height int) Option {
	return func(o *Options) {
		o.Width = width
		o.Height = height
	}
}

// WithUserConfig sets the reference host's configuration.
func WithUserConfig(cfg *config.UserConfig) Option {
	return func(o *Options) {
		o.UserConfig = cfg
	}
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{BorderStyle: "rounded"}
}

func buildOptions(opts []Option) Options {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.Logger == nil {
		options.Logger = log.New(io.Discard)
	}
	return options
}

// New returns a disabled controller for host.
func New(host Host, opts ...Option) *Controller {
	options := buildOptions(opts)
	glyphs := options.Glyphs
	if glyphs == (Glyphs{}) {
		glyphs = config.GlyphsForStyle(options.BorderStyle, options.ASCIIOnly)
	}
	return overlay.NewController(host, overlay.Options{
		Glyphs:   glyphs,
		TopStrip: options.TopStrip,
		Logger:   options.Logger,
	})
}

// NewModel returns the reference host as a Bubble Tea model.
func NewModel(opts ...Option) *Model {
	options := buildOptions(opts)

	cfg := options.UserConfig
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	cfg = config.ApplyOverrides(config.Overrides{
		ASCIIOnly:     options.ASCIIOnly,
		BorderStyle:   options.BorderStyle,
		DisableBorder: options.DisableBorder,
		Theme:         options.Theme,
	}, cfg)

	if cfg.Appearance.Theme != "" {
		theme.Initialize(cfg.Appearance.Theme, options.Logger)
	}

	m := app.New(cfg, options.Logger)
	if options.Width > 0 && options.Height > 0 {
		m.Resize(options.Width, options.Height)
	}
	return m
}
