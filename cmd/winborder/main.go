// Package main implements winborder, a split-pane screen that keeps a single
// border drawn around the focused pane.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Global flags
var (
	debugMode     bool
	asciiOnly     bool
	themeName     string
	listThemes    bool
	previewTheme  string
	borderStyle   string
	borderColor   string
	disableBorder bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "winborder",
		Short: "Focus border for split-pane screens",
		Long: `winborder - focus border for split-pane screens

Draws a single border around the focused pane and keeps it in sync while
panes are split, focused, resized and closed. Running winborder without a
subcommand opens the bundled split-pane screen.`,
		Example: `  # Run the split-pane screen
  winborder

  # Run with debug logging
  winborder --debug

  # Run with a specific theme and border style
  winborder --theme dracula --border-style thick

  # List all available themes
  winborder --list-themes

  # Preview a theme's colors
  winborder --preview-theme nord

  # Show the border plan for a pane
  winborder plan --row 1 --col 40 --width 39 --height 22 --rows 24 --cols 80

  # Play a scripted session and print its snapshots
  winborder tape demo.tape --plain

  # Run as SSH server
  winborder ssh --port 2222

  # Edit configuration
  winborder config edit`,
		Version: version,
		RunE: func(_ *cobra.Command, _ []string) error {
			if previewTheme != "" {
				return previewThemeColors(os.Stdout, previewTheme)
			}
			if listThemes {
				return printThemes(os.Stdout)
			}
			return runLocal()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&asciiOnly, "ascii-only", false, "Use ASCII characters for the border and screen chrome")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Color theme to use (e.g., dracula, nord, tokyonight). Leave empty to use standard terminal colors without theming")
	rootCmd.PersistentFlags().BoolVar(&listThemes, "list-themes", false, "List all available themes and exit")
	rootCmd.PersistentFlags().StringVar(&previewTheme, "preview-theme", "", "Preview a theme's border and tab colors")
	rootCmd.PersistentFlags().StringVar(&borderStyle, "border-style", "", "Border style: rounded, normal, thick, double, ascii (default: from config or rounded)")
	rootCmd.PersistentFlags().StringVar(&borderColor, "border-color", "", "Border color as #rrggbb (default: from config or the theme's selected tab)")
	rootCmd.PersistentFlags().BoolVar(&disableBorder, "disable-border", false, "Start with the border disabled")

	var sshPort int
	var sshHost, sshKeyPath string

	sshCmd := &cobra.Command{
		Use:   "ssh",
		Short: "Run the split-pane screen as SSH server",
		Long: `Run the split-pane screen as an SSH server

Every SSH session gets its own screen and border. The server will generate
a host key automatically if not specified.`,
		Example: `  # Start SSH server on default port
  winborder ssh

  # Start on custom port, all interfaces
  winborder ssh --host 0.0.0.0 --port 2323

  # Specify custom host key
  winborder ssh --key-path /path/to/host_key`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSSHServer(cmd.Context(), sshHost, sshPort, sshKeyPath)
		},
	}

	sshCmd.Flags().IntVar(&sshPort, "port", 2222, "SSH server port")
	sshCmd.Flags().StringVar(&sshHost, "host", "localhost", "SSH server host")
	sshCmd.Flags().StringVar(&sshKeyPath, "key-path", "", "Path to SSH host key (auto-generated if not specified)")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage winborder configuration",
		Long:  `Manage winborder configuration file and settings`,
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		Long:  `Print the path to the winborder configuration file`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return printConfigPath(os.Stdout)
		},
	}

	configEditCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit configuration in $EDITOR",
		Long: `Open the winborder configuration file in your default editor

The editor is determined by checking $EDITOR, $VISUAL, or common editors
like vim, vi, nano, and emacs in that order.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return editConfigFile()
		},
	}

	var resetYes bool
	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long: `Reset the winborder configuration file to default settings

This will overwrite your existing configuration after confirmation.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return resetConfigToDefaults(os.Stdin, os.Stdout, resetYes)
		},
	}
	configResetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "Skip the confirmation prompt")

	configCheckCmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration file",
		Long:  `Load the configuration file and report errors and warnings`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return checkConfig(os.Stdout)
		},
	}

	configSchemaCmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the configuration JSON schema",
		Long: `Print the JSON schema of the configuration file

Point a TOML language server such as taplo at it for completion and
validation while editing.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return printConfigSchema(os.Stdout)
		},
	}

	configCmd.AddCommand(configPathCmd, configEditCmd, configResetCmd, configCheckCmd, configSchemaCmd)

	keybindsCmd := &cobra.Command{
		Use:     "keybinds",
		Aliases: []string{"keys", "kb"},
		Short:   "List keybindings",
		Long:    `Display all configured keybindings of the split-pane screen`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return listKeybindings(os.Stdout)
		},
	}

	rootCmd.AddCommand(sshCmd, configCmd, keybindsCmd, newPlanCmd(), newTapeCmd())

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}
