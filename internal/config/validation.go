package config

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidationError describes one problem found in the user's config.
type ValidationError struct {
	Field   string
	Key     string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Field, e.Key, e.Message)
}

// ValidationResult collects errors (fatal) and warnings (ignored values).
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// HasErrors reports whether validation found fatal problems.
func (r *ValidationResult) HasErrors() bool { return len(r.Errors) > 0 }

// HasWarnings reports whether validation found non-fatal problems.
func (r *ValidationResult) HasWarnings() bool { return len(r.Warnings) > 0 }

func (r *ValidationResult) addError(field, key, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Key: key, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) addWarning(field, key, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Key: key, Message: fmt.Sprintf(format, args...)})
}

// ValidateConfig checks cfg for invalid values. Unknown style or level
// names are errors, unknown keybinding actions and duplicate keys are
// warnings.
func ValidateConfig(cfg *UserConfig) *ValidationResult {
	result := &ValidationResult{}

	if !slices.Contains(BorderStyles, cfg.Border.Style) {
		result.addError("border", "style", "unknown style %q (want one of %s)",
			cfg.Border.Style, strings.Join(BorderStyles, ", "))
	}
	if cfg.Border.Color != "" && !hexColorPattern.MatchString(cfg.Border.Color) {
		result.addError("border", "color", "invalid color %q (want #rrggbb)", cfg.Border.Color)
	}
	if cfg.Border.Fill != "" && !hexColorPattern.MatchString(cfg.Border.Fill) {
		result.addError("border", "fill", "invalid color %q (want #rrggbb)", cfg.Border.Fill)
	}
	if !slices.Contains(LogLevels, strings.ToLower(cfg.Log.Level)) {
		result.addError("log", "level", "unknown level %q (want one of %s)",
			cfg.Log.Level, strings.Join(LogLevels, ", "))
	}

	seen := make(map[string]string)
	validateSection(result, "keybindings.pane", cfg.Keybindings.Pane, seen)
	validateSection(result, "keybindings.border", cfg.Keybindings.Border, seen)
	validateSection(result, "keybindings.system", cfg.Keybindings.System, seen)

	return result
}

func validateSection(result *ValidationResult, field string, bindings map[string][]string, seen map[string]string) {
	actions := make([]string, 0, len(bindings))
	for action := range bindings {
		actions = append(actions, action)
	}
	slices.Sort(actions)

	for _, action := range actions {
		if !IsKnownAction(action) {
			result.addWarning(field, action, "unknown action, ignored")
			continue
		}
		for _, key := range bindings[action] {
			if key == "" {
				result.addWarning(field, action, "empty key, ignored")
				continue
			}
			if prev, ok := seen[key]; ok && prev != action {
				result.addWarning(field, action, "key %q already bound to %s", key, prev)
				continue
			}
			seen[key] = action
		}
	}
}
