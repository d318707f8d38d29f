package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"unbored/internal/config"
	"unbored/internal/container"
	"unbored/internal/tui"
	apperrors "unbored/pkg/errors"
	"unbored/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "unbored:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// The log file lives in the data directory, so make sure it exists
	// before the logger opens its sink.
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFile())
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	c := container.New(cfg, log)

	if err := c.List.Load(context.Background()); err != nil {
		if apperrors.IsCorrupt(err) {
			// Starting fresh here would mask data loss; leave the
			// document alone and make the user decide.
			return fmt.Errorf(
				"the saved activity list at %s could not be read: %w",
				cfg.ActivityFile(), err,
			)
		}
		return err
	}

	log.WithField("activities", c.List.Len()).Info("Starting unbored")

	program := tea.NewProgram(tui.New(c), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.WithError(err).Error("Program terminated with an error")
		return err
	}
	return nil
}
