package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseUserConfigDefaults(t *testing.T) {
	cfg, warnings, err := ParseUserConfig([]byte(""))
	if err != nil {
		t.Fatalf("ParseUserConfig() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
	if !cfg.EnableOnStartup() {
		t.Error("EnableOnStartup() = false, want true")
	}
	if cfg.Border.Style != "rounded" {
		t.Errorf("Border.Style = %q, want rounded", cfg.Border.Style)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
	if !cfg.Tabline() || !cfg.Scrollbar() {
		t.Error("tabline and scrollbar should default to true")
	}
	if got := cfg.Keybindings.Border[ActionToggleBorder]; len(got) != 1 || got[0] != "b" {
		t.Errorf("toggle_border keys = %v, want [b]", got)
	}
}

func TestParseUserConfigValues(t *testing.T) {
	data := `
[border]
enable_on_startup = false
style = "double"
color = "#ff8800"

[appearance]
theme = "nord"
tabline = false

[keybindings.border]
toggle_border = ["B"]
`
	cfg, _, err := ParseUserConfig([]byte(data))
	if err != nil {
		t.Fatalf("ParseUserConfig() error = %v", err)
	}
	if cfg.EnableOnStartup() {
		t.Error("EnableOnStartup() = true, want false")
	}
	if cfg.Border.Style != "double" || cfg.Border.Color != "#ff8800" {
		t.Errorf("Border = %+v", cfg.Border)
	}
	if cfg.Appearance.Theme != "nord" {
		t.Errorf("Theme = %q, want nord", cfg.Appearance.Theme)
	}
	if cfg.Tabline() {
		t.Error("Tabline() = true, want false")
	}
	if !cfg.Scrollbar() {
		t.Error("Scrollbar() = false, want default true")
	}
	if got := cfg.Keybindings.Border[ActionToggleBorder]; len(got) != 1 || got[0] != "B" {
		t.Errorf("toggle_border keys = %v, want [B]", got)
	}
	if got := cfg.Keybindings.System[ActionQuit]; len(got) == 0 {
		t.Error("quit binding should be filled from defaults")
	}
}

func TestParseUserConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad toml", "[border", "failed to parse"},
		{"bad style", "[border]\nstyle = \"wavy\"", "style"},
		{"bad color", "[border]\ncolor = \"orange\"", "color"},
		{"bad fill", "[border]\nfill = \"#12345\"", "fill"},
		{"bad level", "[log]\nlevel = \"chatty\"", "level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseUserConfig([]byte(tt.data))
			if err == nil {
				t.Fatal("ParseUserConfig() error = nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestValidateConfigWarnings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Keybindings.Pane["teleport"] = []string{"t"}
	cfg.Keybindings.Border[ActionToggleBorder] = []string{"x"}

	result := ValidateConfig(cfg)
	if result.HasErrors() {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Warnings) != 2 {
		t.Fatalf("warnings = %v, want 2", result.Warnings)
	}
	for _, w := range result.Warnings {
		if w.Field == "" || w.Key == "" || w.Message == "" {
			t.Errorf("incomplete warning %+v", w)
		}
	}
}

func TestApplyOverrides(t *testing.T) {
	base := DefaultConfig()
	out := ApplyOverrides(Overrides{
		ASCIIOnly:     true,
		BorderStyle:   "thick",
		DisableBorder: true,
		Theme:         "dracula",
		LogLevel:      "debug",
	}, base)

	if !out.Appearance.ASCIIOnly || out.Border.Style != "thick" || out.Appearance.Theme != "dracula" {
		t.Errorf("overrides not applied: %+v", out)
	}
	if out.EnableOnStartup() {
		t.Error("DisableBorder should turn off enable_on_startup")
	}
	if out.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", out.Log.Level)
	}
	if base.Border.Style != "rounded" || !base.EnableOnStartup() {
		t.Error("ApplyOverrides modified its input")
	}

	same := ApplyOverrides(Overrides{}, base)
	if same.Border.Style != base.Border.Style || same.Appearance.ASCIIOnly {
		t.Errorf("zero overrides changed config: %+v", same)
	}
}

func TestWriteConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "winborder", "config.toml")
	cfg := DefaultConfig()
	cfg.Border.Style = "normal"

	if err := WriteConfig(path, cfg); err != nil {
		t.Fatalf("WriteConfig() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# winborder configuration") {
		t.Error("config file is missing its header")
	}

	loaded, _, err := LoadUserConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadUserConfigFrom() error = %v", err)
	}
	if loaded.Border.Style != "normal" {
		t.Errorf("Border.Style = %q, want normal", loaded.Border.Style)
	}
}

func TestLoadUserConfigFromMissing(t *testing.T) {
	_, _, err := LoadUserConfigFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestBorderForStyle(t *testing.T) {
	tests := []struct {
		style    string
		ascii    bool
		wantTL   string
		wantSide string
	}{
		{"rounded", false, "╭", "│"},
		{"normal", false, "┌", "│"},
		{"thick", false, "┏", "┃"},
		{"double", false, "╔", "║"},
		{"ascii", false, "+", "|"},
		{"rounded", true, "+", "|"},
		{"unknown", false, "╭", "│"},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			g := GlyphsForStyle(tt.style, tt.ascii)
			if g.TopLeft != tt.wantTL || g.Left != tt.wantSide {
				t.Errorf("GlyphsForStyle(%q, %v) = %q/%q, want %q/%q",
					tt.style, tt.ascii, g.TopLeft, g.Left, tt.wantTL, tt.wantSide)
			}
		})
	}
}

func TestKeybindRegistry(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Keybindings.Border[ActionToggleBorder] = []string{"b", "x"}
	r := NewKeybindRegistry(cfg)

	if action, ok := r.Action("b"); !ok || action != ActionToggleBorder {
		t.Errorf("Action(b) = %q, %v", action, ok)
	}
	// x is claimed by close_pane in the pane section first.
	if action, _ := r.Action("x"); action != ActionClosePane {
		t.Errorf("Action(x) = %q, want %s", action, ActionClosePane)
	}
	if _, ok := r.Action("z"); ok {
		t.Error("Action(z) should be unbound")
	}
	if keys := r.Keys(ActionQuit); len(keys) != 2 {
		t.Errorf("Keys(quit) = %v", keys)
	}
	if len(r.Sections()) != 3 {
		t.Errorf("Sections() = %d, want 3", len(r.Sections()))
	}
}
