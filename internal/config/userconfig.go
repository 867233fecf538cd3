package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

const configRelPath = "winborder/config.toml"

// UserConfig represents the user's configuration file.
type UserConfig struct {
	Border      BorderConfig      `toml:"border"`
	Appearance  AppearanceConfig  `toml:"appearance"`
	Log         LogConfig         `toml:"log"`
	Keybindings KeybindingsConfig `toml:"keybindings"`
}

// BorderConfig holds the overlay border settings.
type BorderConfig struct {
	EnableOnStartup *bool  `toml:"enable_on_startup" jsonschema:"default=true"`                                     // Draw the border as soon as the host starts (default: true)
	Style           string `toml:"style" jsonschema:"enum=rounded,enum=normal,enum=thick,enum=double,enum=ascii"` // Glyph set: rounded, normal, thick, double, ascii (default: rounded)
	Color           string `toml:"color" jsonschema:"pattern=^(#[0-9a-fA-F]{6})?$"`                             // Border color as #rrggbb. Empty uses the theme's selected tab background.
	Fill            string `toml:"fill" jsonschema:"pattern=^(#[0-9a-fA-F]{6})?$"`                              // Fill color as #rrggbb. Empty uses the theme's normal background.
}

// AppearanceConfig holds settings of the host screen.
type AppearanceConfig struct {
	Theme     string `toml:"theme"`      // Color theme name (e.g., dracula, nord, my-custom-theme)
	ASCIIOnly bool   `toml:"ascii_only"` // Use ASCII characters only
	Tabline   *bool  `toml:"tabline"`    // Reserve row 0 for the tab strip (default: true)
	Scrollbar *bool  `toml:"scrollbar"`  // Reserve the last column for the scrollbar (default: true)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level" jsonschema:"enum=debug,enum=info,enum=warn,enum=error"` // debug, info, warn, error (default: info)
}

// KeybindingsConfig maps host actions to keys.
type KeybindingsConfig struct {
	Pane   map[string][]string `toml:"pane"`
	Border map[string][]string `toml:"border"`
	System map[string][]string `toml:"system"`
}

func boolPtr(b bool) *bool {
	return &b
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *UserConfig {
	return &UserConfig{
		Border: BorderConfig{
			EnableOnStartup: boolPtr(true),
			Style:           "rounded",
		},
		Appearance: AppearanceConfig{
			Tabline:   boolPtr(true),
			Scrollbar: boolPtr(true),
		},
		Log: LogConfig{
			Level: "info",
		},
		Keybindings: KeybindingsConfig{
			Pane: map[string][]string{
				ActionSplitVertical:   {"|", "v"},
				ActionSplitHorizontal: {"-", "s"},
				ActionClosePane:       {"x"},
				ActionFocusNext:       {"tab", "n"},
				ActionFocusPrev:       {"shift+tab", "p"},
				ActionGrowLeft:        {"h", "left"},
				ActionGrowDown:        {"j", "down"},
				ActionGrowUp:          {"k", "up"},
				ActionGrowRight:       {"l", "right"},
			},
			Border: map[string][]string{
				ActionToggleBorder: {"b"},
			},
			System: map[string][]string{
				ActionToggleHelp: {"?"},
				ActionQuit:       {"q", "ctrl+c"},
			},
		},
	}
}

// EnableOnStartup reports the effective enable_on_startup setting.
func (c *UserConfig) EnableOnStartup() bool {
	return c.Border.EnableOnStartup == nil || *c.Border.EnableOnStartup
}

// Tabline reports whether row 0 is reserved for the tab strip.
func (c *UserConfig) Tabline() bool {
	return c.Appearance.Tabline == nil || *c.Appearance.Tabline
}

// Scrollbar reports whether the last column is reserved for the scrollbar.
func (c *UserConfig) Scrollbar() bool {
	return c.Appearance.Scrollbar == nil || *c.Appearance.Scrollbar
}

// LoadUserConfig loads the configuration from the XDG config directory,
// writing a default file first if there is none.
func LoadUserConfig() (*UserConfig, []ValidationError, error) {
	configPath, err := xdg.SearchConfigFile(configRelPath)
	if err != nil {
		cfg, err := createDefaultConfig()
		return cfg, nil, err
	}
	return LoadUserConfigFrom(configPath)
}

// LoadUserConfigFrom loads and validates the configuration at path.
// Validation warnings are returned for the caller to log.
func LoadUserConfigFrom(path string) (*UserConfig, []ValidationError, error) {
	// #nosec G304 - reading the user's own config file is intentional
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseUserConfig(data)
}

// ParseUserConfig decodes TOML, fills in defaults and validates the result.
func ParseUserConfig(data []byte) (*UserConfig, []ValidationError, error) {
	var cfg UserConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	defaultCfg := DefaultConfig()
	fillMissingBorder(&cfg, defaultCfg)
	fillMissingAppearance(&cfg, defaultCfg)
	fillMissingLog(&cfg, defaultCfg)
	fillMissingKeybinds(&cfg, defaultCfg)

	validation := ValidateConfig(&cfg)
	if validation.HasErrors() {
		msgs := make([]string, 0, len(validation.Errors))
		for _, e := range validation.Errors {
			msgs = append(msgs, e.Error())
		}
		return nil, validation.Warnings, fmt.Errorf("configuration has %d error(s): %s",
			len(validation.Errors), strings.Join(msgs, "; "))
	}

	return &cfg, validation.Warnings, nil
}

// createDefaultConfig writes a commented default config file.
func createDefaultConfig() (*UserConfig, error) {
	cfg := DefaultConfig()

	configPath, err := xdg.ConfigFile(configRelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	if err := WriteConfig(configPath, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WriteConfig marshals cfg to path with a documentation header.
func WriteConfig(path string, cfg *UserConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# winborder configuration\n")
	sb.WriteString("#\n")
	sb.WriteString("# Configuration location: " + path + "\n\n")
	sb.WriteString("# [border]\n")
	sb.WriteString("# enable_on_startup: draw the focus border when the host starts (default: true)\n")
	sb.WriteString("# style: rounded, normal, thick, double, ascii (default: rounded)\n")
	sb.WriteString("# color: #rrggbb, empty uses the theme's selected tab background\n")
	sb.WriteString("# fill: #rrggbb, empty uses the theme's normal background\n")
	sb.WriteString("#\n")
	sb.WriteString("# [appearance]\n")
	sb.WriteString("# theme: bubbletint theme id, empty keeps terminal colors.\n")
	sb.WriteString("#        Custom themes: ~/.config/winborder/themes/*.json\n")
	sb.WriteString("# tabline / scrollbar: reserve row 0 / the last column (default: true)\n")
	sb.WriteString("#\n")
	sb.WriteString("# [log]\n")
	sb.WriteString("# level: debug, info, warn, error (default: info)\n\n")
	sb.Write(data)

	if err := os.WriteFile(path, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func fillMissingBorder(cfg, defaultCfg *UserConfig) {
	if cfg.Border.EnableOnStartup == nil {
		cfg.Border.EnableOnStartup = defaultCfg.Border.EnableOnStartup
	}
	if cfg.Border.Style == "" {
		cfg.Border.Style = defaultCfg.Border.Style
	}
}

func fillMissingAppearance(cfg, defaultCfg *UserConfig) {
	if cfg.Appearance.Tabline == nil {
		cfg.Appearance.Tabline = defaultCfg.Appearance.Tabline
	}
	if cfg.Appearance.Scrollbar == nil {
		cfg.Appearance.Scrollbar = defaultCfg.Appearance.Scrollbar
	}
}

func fillMissingLog(cfg, defaultCfg *UserConfig) {
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultCfg.Log.Level
	}
}

func fillMissingKeybinds(cfg, defaultCfg *UserConfig) {
	if cfg.Keybindings.Pane == nil {
		cfg.Keybindings.Pane = make(map[string][]string)
	}
	if cfg.Keybindings.Border == nil {
		cfg.Keybindings.Border = make(map[string][]string)
	}
	if cfg.Keybindings.System == nil {
		cfg.Keybindings.System = make(map[string][]string)
	}
	fillMapDefaults(cfg.Keybindings.Pane, defaultCfg.Keybindings.Pane)
	fillMapDefaults(cfg.Keybindings.Border, defaultCfg.Keybindings.Border)
	fillMapDefaults(cfg.Keybindings.System, defaultCfg.Keybindings.System)
}

func fillMapDefaults(target, defaults map[string][]string) {
	for k, v := range defaults {
		if _, exists := target[k]; !exists {
			target[k] = v
		}
	}
}

// GetConfigPath returns the path of the config file, or where it would be
// created.
func GetConfigPath() (string, error) {
	path, err := xdg.SearchConfigFile(configRelPath)
	if err != nil {
		return xdg.ConfigFile(configRelPath)
	}
	return path, nil
}
