package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Gaurav-Gosain/winborder/internal/app"
	"github.com/Gaurav-Gosain/winborder/internal/tape"
	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"
)

func newTapeCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "tape <file>",
		Short: "Play a tape script without a terminal",
		Long: `Play a tape script against the split-pane screen and print its snapshots

Commands, one per line:
  Screen <cols> <rows>          set the screen size
  Split vertical|horizontal     split the focused pane
  Close                         close the focused pane
  Focus next|prev|<n>           move focus
  Grow left|right|up|down [n]   move the focused pane's split
  Border on|off|toggle          switch the border
  Key <key>...                  press keys, e.g. Key v shift+tab
  Click <col> <row>             left click a cell
  Snapshot                      print the screen

Lines starting with # are comments.`,
		Example: `  # Play a tape from a file
  winborder tape demo.tape

  # Read the tape from stdin, without colors
  echo -e "Screen 80 24\nSplit v\nSnapshot" | winborder tape - --plain`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTape(cmd.InOrStdin(), cmd.OutOrStdout(), args[0], plain)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print snapshots without colors")
	return cmd
}

func readTape(in io.Reader, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("failed to read tape: %w", err)
		}
		return string(data), nil
	}
	// #nosec G304 - the tape path is given by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read tape: %w", err)
	}
	return string(data), nil
}

func runTape(in io.Reader, out io.Writer, path string, plain bool) error {
	src, err := readTape(in, path)
	if err != nil {
		return err
	}
	cmds, err := tape.Parse(src)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	logger := newLogger(os.Stderr, "warn")
	userConfig := loadConfig(logger)
	if err := validateOverrides(userConfig); err != nil {
		return err
	}
	initTheme(userConfig, logger)

	model := app.New(userConfig, logger)
	defer model.Shutdown()

	w := colorprofile.NewWriter(out, os.Environ())
	executor := tape.NewCommandExecutor(model, w, plain, logger)
	if err := executor.Play(cmds); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
