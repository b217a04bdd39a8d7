package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/quantmind-br/repoclone/internal/domain"
)

// Default values
const (
	// Clone defaults
	DefaultProbe        = true
	DefaultProbeRetries = 2
	DefaultProbeTimeout = 15 * time.Second

	// Display defaults
	DefaultDisplayStyle = "line"

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// DefaultStarters are the starter templates offered by the starter menu
var DefaultStarters = []domain.Starter{
	{Name: "SwiftUI", URL: "https://github.com/nalexn/clean-architecture-swiftui"},
}

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".repoclone"
	}
	return filepath.Join(home, ".repoclone")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	starters := make([]domain.Starter, len(DefaultStarters))
	copy(starters, DefaultStarters)

	return &Config{
		Clone: CloneConfig{
			Probe:        DefaultProbe,
			ProbeRetries: DefaultProbeRetries,
			ProbeTimeout: DefaultProbeTimeout,
		},
		Display: DisplayConfig{
			Style: DefaultDisplayStyle,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Starters: starters,
	}
}
