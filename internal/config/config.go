package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/quantmind-br/repoclone/internal/domain"
	"github.com/quantmind-br/repoclone/internal/progress"
)

// Config represents the application configuration
type Config struct {
	Clone    CloneConfig      `mapstructure:"clone" yaml:"clone"`
	Display  DisplayConfig    `mapstructure:"display" yaml:"display"`
	Logging  LoggingConfig    `mapstructure:"logging" yaml:"logging"`
	Starters []domain.Starter `mapstructure:"starters" yaml:"starters"`
}

// CloneConfig contains clone and probe settings
type CloneConfig struct {
	Branch           string        `mapstructure:"branch" yaml:"branch"`
	Bare             bool          `mapstructure:"bare" yaml:"bare"`
	Probe            bool          `mapstructure:"probe" yaml:"probe"`
	ProbeRetries     int           `mapstructure:"probe_retries" yaml:"probe_retries"`
	ProbeTimeout     time.Duration `mapstructure:"probe_timeout" yaml:"-"`
	AuthToken        string        `mapstructure:"auth_token" yaml:"auth_token,omitempty"`
	IgnoreCertErrors bool          `mapstructure:"ignore_cert_errors" yaml:"ignore_cert_errors"`
}

// MarshalYAML writes durations in their string form
func (c CloneConfig) MarshalYAML() (interface{}, error) {
	type plain CloneConfig
	return struct {
		plain        `yaml:",inline"`
		ProbeTimeout string `yaml:"probe_timeout"`
	}{plain(c), c.ProbeTimeout.String()}, nil
}

// DisplayConfig contains progress display settings
type DisplayConfig struct {
	Style string `mapstructure:"style" yaml:"style"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Clone.ProbeRetries < 0 {
		c.Clone.ProbeRetries = DefaultProbeRetries
	}
	if c.Clone.ProbeTimeout < time.Second {
		c.Clone.ProbeTimeout = DefaultProbeTimeout
	}

	c.Display.Style = strings.ToLower(strings.TrimSpace(c.Display.Style))
	switch c.Display.Style {
	case "":
		c.Display.Style = DefaultDisplayStyle
	case progress.StyleLine, progress.StyleBar, progress.StyleNone:
	default:
		return domain.NewValidationError("display.style", fmt.Sprintf("unknown style %q", c.Display.Style))
	}

	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format != "pretty" && c.Logging.Format != "json" {
		c.Logging.Format = DefaultLogFormat
	}

	seen := make(map[string]bool, len(c.Starters))
	for i, s := range c.Starters {
		field := fmt.Sprintf("starters[%d]", i)
		if strings.TrimSpace(s.Name) == "" {
			return domain.NewValidationError(field, "name is required")
		}
		if strings.TrimSpace(s.URL) == "" {
			return domain.NewValidationError(field, "url is required")
		}
		key := strings.ToLower(s.Name)
		if seen[key] {
			return domain.NewValidationError(field, fmt.Sprintf("duplicate name %q", s.Name))
		}
		seen[key] = true
	}
	return nil
}

// FindStarter looks up a starter by name, ignoring case
func (c *Config) FindStarter(name string) (domain.Starter, error) {
	for _, s := range c.Starters {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return domain.Starter{}, fmt.Errorf("%w: %s", domain.ErrUnknownStarter, name)
}
