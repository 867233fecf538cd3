package theme

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	tint "github.com/lrstanley/bubbletint/v2"
)

// GetThemesDir returns the custom themes directory
// (~/.config/winborder/themes), creating it if needed.
func GetThemesDir() (string, error) {
	keepFile, err := xdg.ConfigFile("winborder/themes/.keep")
	if err != nil {
		return "", fmt.Errorf("failed to get themes directory: %w", err)
	}
	return filepath.Dir(keepFile), nil
}

// LoadCustomThemes registers every *.json theme in themesDir with bubbletint
// and returns the ids it loaded. Bad files are skipped with a warning.
func LoadCustomThemes(themesDir string, logger *log.Logger) ([]string, error) {
	entries, err := os.ReadDir(themesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read themes directory: %w", err)
	}

	var loaded []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}

		t, err := LoadCustomThemeFile(filepath.Join(themesDir, entry.Name()))
		if err != nil {
			if logger != nil {
				logger.Warn("skipping custom theme", "file", entry.Name(), "err", err)
			}
			continue
		}

		tint.Register(t)
		loaded = append(loaded, t.ID)
	}
	return loaded, nil
}

// LoadCustomThemeFile parses a theme JSON file. The id defaults to the
// lowercased file name and missing colors to xterm defaults.
func LoadCustomThemeFile(path string) (*tint.Tint, error) {
	// #nosec G304 - path is inside the user's themes directory
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var t tint.Tint
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse theme JSON: %w", err)
	}

	if t.ID == "" {
		base := filepath.Base(path)
		t.ID = strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
	}
	if t.DisplayName == "" {
		t.DisplayName = t.ID
	}

	fillDefaults(&t)
	return &t, nil
}

// fillDefaults sets nil colors. Base colors get xterm values; bright
// variants and the cursor copy the color they derive from, so the order of
// the table matters.
func fillDefaults(t *tint.Tint) {
	defaults := []struct {
		field **tint.Color
		hex   string
		from  **tint.Color
	}{
		{field: &t.Fg, hex: "#e5e5e5"},
		{field: &t.Bg, hex: "#000000"},
		{field: &t.Cursor, from: &t.Fg},
		{field: &t.Black, hex: "#000000"},
		{field: &t.Red, hex: "#cd0000"},
		{field: &t.Green, hex: "#00cd00"},
		{field: &t.Yellow, hex: "#cdcd00"},
		{field: &t.Blue, hex: "#0000ee"},
		{field: &t.Purple, hex: "#cd00cd"},
		{field: &t.Cyan, hex: "#00cdcd"},
		{field: &t.White, hex: "#e5e5e5"},
		{field: &t.BrightBlack, from: &t.Black},
		{field: &t.BrightRed, from: &t.Red},
		{field: &t.BrightGreen, from: &t.Green},
		{field: &t.BrightYellow, from: &t.Yellow},
		{field: &t.BrightBlue, from: &t.Blue},
		{field: &t.BrightPurple, from: &t.Purple},
		{field: &t.BrightCyan, from: &t.Cyan},
		{field: &t.BrightWhite, from: &t.White},
	}

	for _, d := range defaults {
		if *d.field != nil {
			continue
		}
		if d.from != nil {
			*d.field = copyColor(*d.from)
		} else {
			*d.field = tint.FromHex(d.hex)
		}
	}
}

func copyColor(c *tint.Color) *tint.Color {
	if c == nil {
		return nil
	}
	dup := *c
	return &dup
}
