package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/winborder/internal/app"
	"github.com/Gaurav-Gosain/winborder/internal/config"
	"github.com/Gaurav-Gosain/winborder/internal/server"
	"github.com/Gaurav-Gosain/winborder/internal/theme"
	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

const logRelPath = "winborder/winborder.log"

// newLogger builds the application logger. level is a config log level;
// --debug always wins.
func newLogger(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "winborder",
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	if debugMode {
		lvl = log.DebugLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// openLogFile opens the log file in the XDG state directory. The TUI owns
// the terminal, so it cannot log to stderr.
func openLogFile() (*os.File, error) {
	path, err := xdg.StateFile(logRelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve log path: %w", err)
	}
	// #nosec G304 - the path comes from the XDG state directory
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

// loadConfig loads the user's config and applies command-line overrides.
// A broken config file is reported and replaced by defaults.
func loadConfig(logger *log.Logger) *config.UserConfig {
	userConfig, warnings, err := config.LoadUserConfig()
	if err != nil {
		logger.Warn("failed to load config, using defaults", "err", err)
		userConfig = config.DefaultConfig()
	}
	for _, w := range warnings {
		logger.Warn("config warning", "field", w.Field, "key", w.Key, "msg", w.Message)
	}

	return applyOverrides(userConfig)
}

func applyOverrides(cfg *config.UserConfig) *config.UserConfig {
	return config.ApplyOverrides(config.Overrides{
		ASCIIOnly:     asciiOnly,
		BorderStyle:   borderStyle,
		BorderColor:   borderColor,
		DisableBorder: disableBorder,
		Theme:         themeName,
	}, cfg)
}

// validateOverrides rejects invalid flag values before the TUI starts.
func validateOverrides(cfg *config.UserConfig) error {
	result := config.ValidateConfig(cfg)
	if result.HasErrors() {
		return fmt.Errorf("invalid option: %w", result.Errors[0])
	}
	return nil
}

func initTheme(cfg *config.UserConfig, logger *log.Logger) {
	if cfg.Appearance.Theme != "" {
		theme.Initialize(cfg.Appearance.Theme, logger)
	}
}

func runLocal() error {
	logFile, err := openLogFile()
	if err != nil {
		return err
	}
	defer func() {
		_ = logFile.Close()
	}()

	// The level is not known before the config is read.
	logger := newLogger(logFile, "info")
	userConfig := loadConfig(logger)
	if err := validateOverrides(userConfig); err != nil {
		return err
	}
	logger = newLogger(logFile, userConfig.Log.Level)
	initTheme(userConfig, logger)

	if debugMode {
		configPath, _ := config.GetConfigPath()
		logger.Debug("starting", "config", configPath, "version", version)
	}

	model := app.New(userConfig, logger)

	p := tea.NewProgram(
		model,
		tea.WithoutSignalHandler(),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	watchConfig(ctx, p, logger)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		<-sigChan
		p.Send(tea.QuitMsg{})
	}()

	finalModel, err := p.Run()

	if final, ok := finalModel.(*app.Model); ok {
		final.Shutdown()
	}

	if err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}

// watchConfig reloads the config file in the background and hands every
// good version to the program. Command-line overrides still win.
func watchConfig(ctx context.Context, p *tea.Program, logger *log.Logger) {
	path, err := config.GetConfigPath()
	if err != nil {
		logger.Warn("config reload disabled", "err", err)
		return
	}
	go func() {
		err := config.Watch(ctx, path, logger, func(cfg *config.UserConfig) {
			cfg = applyOverrides(cfg)
			if err := validateOverrides(cfg); err != nil {
				logger.Warn("ignoring reloaded config", "err", err)
				return
			}
			p.Send(app.ConfigReloadedMsg{Config: cfg})
		})
		if err != nil {
			logger.Warn("config reload disabled", "err", err)
		}
	}()
}

func runSSHServer(ctx context.Context, host string, port int, keyPath string) error {
	logger := newLogger(os.Stderr, "info")
	userConfig := loadConfig(logger)
	if err := validateOverrides(userConfig); err != nil {
		return err
	}
	logger = newLogger(os.Stderr, userConfig.Log.Level)
	initTheme(userConfig, logger)

	srv, err := server.New(server.Options{
		Host:        host,
		Port:        port,
		HostKeyPath: keyPath,
		Config:      userConfig,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("SSH server error: %w", err)
	}
	return nil
}
