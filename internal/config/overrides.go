package config

// Overrides holds command-line values that take precedence over the
// config file. Zero values leave the config untouched.
type Overrides struct {
	// ASCIIOnly uses ASCII characters for the border and host chrome
	ASCIIOnly bool

	// BorderStyle overrides the border glyph set
	BorderStyle string

	// BorderColor overrides the border color
	BorderColor string

	// DisableBorder starts with the border disabled
	DisableBorder bool

	// Theme overrides the color theme
	Theme string

	// LogLevel overrides the log level
	LogLevel string
}

// ApplyOverrides returns a copy of cfg with the overrides applied.
func ApplyOverrides(o Overrides, cfg *UserConfig) *UserConfig {
	out := *cfg
	if o.ASCIIOnly {
		out.Appearance.ASCIIOnly = true
	}
	if o.BorderStyle != "" {
		out.Border.Style = o.BorderStyle
	}
	if o.BorderColor != "" {
		out.Border.Color = o.BorderColor
	}
	if o.DisableBorder {
		out.Border.EnableOnStartup = boolPtr(false)
	}
	if o.Theme != "" {
		out.Appearance.Theme = o.Theme
	}
	if o.LogLevel != "" {
		out.Log.Level = o.LogLevel
	}
	return &out
}
