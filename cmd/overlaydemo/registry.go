package main

import (
	"log/slog"

	"github.com/riordanpawley/overlaykit/internal/config"
	"github.com/riordanpawley/overlaykit/internal/overlay"
)

// registry picks the process-wide registry or an isolated one and returns the
// matching teardown
func registry(cfg *config.Config, logger *slog.Logger) (*overlay.Registry, func()) {
	if cfg.Registry.Isolated {
		reg := overlay.New(overlay.WithLogger(logger))
		return reg, reg.RemoveAll
	}

	// Default captures slog.Default at creation
	slog.SetDefault(logger)
	return overlay.Default(), overlay.ShutdownDefault
}
