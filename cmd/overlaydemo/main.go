// Package main provides the entry point for the overlaykit demo.
//
// The demo opens popups, toasts, a confirmation dialog, a text prompt and a
// progress modal over a plain bubbletea screen, all tracked by one overlay
// registry.
//
// Usage:
//
//	overlaydemo
//
// Settings are read from .overlaykit.json in the working directory.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/overlaykit/internal/app"
	"github.com/riordanpawley/overlaykit/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, logFile, err := app.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	reg, shutdown := registry(cfg, logger)
	defer shutdown()

	model := app.New(cfg, reg, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		logger.Error("program failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
