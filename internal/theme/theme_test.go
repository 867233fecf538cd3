package theme

import (
	"slices"
	"testing"

	tint "github.com/lrstanley/bubbletint/v2"
)

func TestInitializeEmptyDisablesTheming(t *testing.T) {
	Initialize("", nil)
	if IsEnabled() || Current() != nil {
		t.Error("empty theme name should disable theming")
	}
}

func TestExistsAndSuggest(t *testing.T) {
	tint.NewDefaultRegistry()

	if !Exists("dracula") {
		t.Fatal("Exists(dracula) = false")
	}
	if Exists("no-such-theme") {
		t.Error("Exists(no-such-theme) = true")
	}

	got := Suggest("drac")
	if len(got) == 0 || len(got) > maxSuggestions {
		t.Fatalf("Suggest(drac) = %v, want 1..%d ids", got, maxSuggestions)
	}
	if !slices.Contains(got, "dracula") {
		t.Errorf("Suggest(drac) = %v, want dracula among them", got)
	}
	if got := Suggest("zzzzzzzz"); len(got) != 0 {
		t.Errorf("Suggest(zzzzzzzz) = %v, want none", got)
	}
}
