package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileName is the config file looked up in the project directory
const FileName = ".overlaykit.json"

// Config represents the full overlaykit configuration
type Config struct {
	Toast    ToastConfig    `json:"toast"`
	Popup    PopupConfig    `json:"popup"`
	Log      LogConfig      `json:"log"`
	Registry RegistryConfig `json:"registry"`
}

// ToastConfig contains toast presentation settings
type ToastConfig struct {
	DurationMs int `json:"durationMs"`
	MaxWidth   int `json:"maxWidth"`
}

// PopupConfig contains popup presentation settings
type PopupConfig struct {
	Width int `json:"width"`
}

// LogConfig contains logging settings. The TUI owns stderr, so logs go to a file.
type LogConfig struct {
	File  string `json:"file"`
	Level string `json:"level"`
}

// RegistryConfig selects which overlay registry the program uses
type RegistryConfig struct {
	// Isolated builds a private registry instead of using the process default
	Isolated bool `json:"isolated"`
}

// Duration returns how long a toast stays open
func (c ToastConfig) Duration() time.Duration {
	return time.Duration(c.DurationMs) * time.Millisecond
}

// SlogLevel converts the configured level name, defaulting to info
func (c LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Toast: ToastConfig{
			DurationMs: 3000,
			MaxWidth:   40,
		},
		Popup: PopupConfig{
			Width: 44,
		},
		Log: LogConfig{
			File:  filepath.Join(homeDir, ".overlaykit", "overlaykit.log"),
			Level: "info",
		},
		Registry: RegistryConfig{
			Isolated: false,
		},
	}
}

// LoadConfig loads configuration from project path with priority:
// 1. .overlaykit.json in project root
// 2. Defaults
func LoadConfig(projectPath string) (*Config, error) {
	path := filepath.Join(projectPath, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return MergeWithDefaults(&cfg), nil
}

// SaveConfig saves configuration to the specified path
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	// Merge Toast config
	if cfg.Toast.DurationMs <= 0 {
		cfg.Toast.DurationMs = defaults.Toast.DurationMs
	}
	if cfg.Toast.MaxWidth <= 0 {
		cfg.Toast.MaxWidth = defaults.Toast.MaxWidth
	}

	// Merge Popup config
	if cfg.Popup.Width <= 0 {
		cfg.Popup.Width = defaults.Popup.Width
	}

	// Merge Log config
	if cfg.Log.File == "" {
		cfg.Log.File = defaults.Log.File
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}

	return cfg
}

// Load is a convenience function that loads config from current directory
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadConfig(cwd)
}
