package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/winborder/internal/config"
)

func printConfigPath(w io.Writer) error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	_, err = fmt.Fprintln(w, path)
	return err
}

// findEditor returns the user's editor from $EDITOR or $VISUAL, falling back
// to the first common editor on $PATH.
func findEditor() (string, error) {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if editor := os.Getenv(env); editor != "" {
			return editor, nil
		}
	}
	for _, candidate := range []string{"vim", "vi", "nano", "emacs"} {
		if path, err := exec.LookPath(candidate); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no editor found: set $EDITOR")
}

func editConfigFile() error {
	// Creates the default file when missing.
	if _, _, err := config.LoadUserConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: current config has errors: %v\n", err)
	}

	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	editor, err := findEditor()
	if err != nil {
		return err
	}

	fields := strings.Fields(editor)
	args := append(fields[1:], path)
	// #nosec G204 - the editor is chosen by the user
	cmd := exec.Command(fields[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor failed: %w", err)
	}
	return nil
}

func resetConfigToDefaults(in io.Reader, out io.Writer, skipPrompt bool) error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if !skipPrompt {
		fmt.Fprintf(out, "This will overwrite %s with defaults. Continue? [y/N] ", path)
		answer, _ := bufio.NewReader(in).ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	if err := config.WriteConfig(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Fprintf(out, "Configuration reset: %s\n", path)
	return nil
}

func checkConfig(out io.Writer) error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(out, "No configuration file at %s, defaults apply.\n", path)
		return nil
	}

	_, warnings, err := config.LoadUserConfigFrom(path)
	for _, w := range warnings {
		fmt.Fprintf(out, "warning: %s\n", w.Error())
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s: ok\n", path)
	return nil
}

func printConfigSchema(out io.Writer) error {
	data, err := config.Schema()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

func listKeybindings(out io.Writer) error {
	userConfig, _, err := config.LoadUserConfig()
	if err != nil {
		userConfig = config.DefaultConfig()
	}
	registry := config.NewKeybindRegistry(userConfig)

	titleStyle := lipgloss.NewStyle().Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#5c5cff"))

	for i, section := range registry.Sections() {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, titleStyle.Render(section.Title))
		for _, b := range section.Bindings {
			key := keyStyle.Render(fmt.Sprintf("%-16s", b.Key))
			fmt.Fprintf(out, "  %s %s\n", key, b.Description)
		}
	}
	return nil
}
