package main

import (
	"io"
	"log/slog"
	"testing"

	"github.com/riordanpawley/overlaykit/internal/config"
	"github.com/riordanpawley/overlaykit/internal/overlay"
	"github.com/stretchr/testify/assert"
)

func TestRegistry(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	t.Run("default", func(t *testing.T) {
		cfg := config.DefaultConfig()
		reg, shutdown := registry(cfg, logger)
		assert.Same(t, overlay.Default(), reg)

		reg.Create(overlay.KindPopup, nil, overlay.Options{})
		shutdown()
		assert.True(t, reg.IsEmpty())
	})

	t.Run("isolated", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Registry.Isolated = true
		reg, shutdown := registry(cfg, logger)
		defer overlay.ShutdownDefault()

		assert.NotSame(t, overlay.Default(), reg)
		reg.Create(overlay.KindPopup, nil, overlay.Options{})
		shutdown()
		assert.True(t, reg.IsEmpty())
	})
}
