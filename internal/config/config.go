// Package config handles configuration loading and validation for interceptd.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"interceptd/internal/logging"
	"interceptd/pkg/interception"
)

// Config holds the complete daemon configuration.
type Config struct {
	// Capture controls which device classes and event kinds are
	// intercepted.
	Capture CaptureConfig `toml:"capture"`

	// Remap maps source key names to replacement key names, applied to
	// keyboard strokes before re-injection.
	Remap map[string]string `toml:"remap"`

	// Journal configuration for the optional stroke journal.
	Journal JournalConfig `toml:"journal"`

	// Logging configuration.
	Logging logging.Config `toml:"logging"`
}

// CaptureConfig selects the driver filters the daemon registers.
type CaptureConfig struct {
	// Keyboard enables keyboard interception.
	Keyboard bool `toml:"keyboard"`

	// Mouse enables mouse interception.
	Mouse bool `toml:"mouse"`

	// KeyFilter names the keyboard event kinds of interest. Empty with
	// Keyboard enabled means "down" and "up".
	KeyFilter []string `toml:"key_filter"`

	// MouseFilter names the mouse event kinds of interest. Empty with
	// Mouse enabled means "all".
	MouseFilter []string `toml:"mouse_filter"`
}

// JournalConfig controls stroke journaling.
type JournalConfig struct {
	// Enabled turns journaling on.
	Enabled bool `toml:"enabled"`

	// Path is the SQLite database file. Required when Enabled.
	Path string `toml:"path"`
}

// ValidationError names the field a configuration problem was found in.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Default returns the daemon's default configuration: keyboard capture of
// down/up transitions, no mouse capture, no remapping, no journal.
func Default() *Config {
	return &Config{
		Capture: CaptureConfig{
			Keyboard:  true,
			KeyFilter: []string{"down", "up"},
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field that can be wrong, reporting all problems at
// once with the fields that carry them.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if !c.Capture.Keyboard && !c.Capture.Mouse {
		errs = append(errs, ValidationError{
			Field:   "capture",
			Message: "at least one of keyboard or mouse must be enabled",
		})
	}
	if _, err := interception.ParseKeyFilter(c.Capture.KeyFilter); err != nil {
		errs = append(errs, ValidationError{Field: "capture.key_filter", Message: err.Error()})
	}
	if _, err := interception.ParseMouseFilter(c.Capture.MouseFilter); err != nil {
		errs = append(errs, ValidationError{Field: "capture.mouse_filter", Message: err.Error()})
	}

	for from, to := range c.Remap {
		if _, ok := interception.ScanCodeByName(from); !ok {
			errs = append(errs, ValidationError{
				Field:   "remap",
				Message: fmt.Sprintf("unknown source key %q", from),
			})
		}
		if _, ok := interception.ScanCodeByName(to); !ok {
			errs = append(errs, ValidationError{
				Field:   "remap",
				Message: fmt.Sprintf("unknown target key %q", to),
			})
		}
	}

	if c.Journal.Enabled && c.Journal.Path == "" {
		errs = append(errs, ValidationError{
			Field:   "journal.path",
			Message: "required when journal is enabled",
		})
	}

	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, ValidationError{Field: "logging.level", Message: err.Error()})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// KeyFilter returns the compiled keyboard interest mask. Validate must have
// passed; an empty list with keyboard capture enabled means down|up.
func (c *Config) KeyFilter() interception.KeyFilter {
	if !c.Capture.Keyboard {
		return interception.KeyFilterNone
	}
	if len(c.Capture.KeyFilter) == 0 {
		return interception.KeyFilterDown | interception.KeyFilterUp
	}
	f, _ := interception.ParseKeyFilter(c.Capture.KeyFilter)
	return f
}

// MouseFilter returns the compiled mouse interest mask, defaulting to all
// when mouse capture is enabled with no explicit list.
func (c *Config) MouseFilter() interception.MouseFilter {
	if !c.Capture.Mouse {
		return interception.MouseFilterNone
	}
	if len(c.Capture.MouseFilter) == 0 {
		return interception.MouseFilterAll
	}
	f, _ := interception.ParseMouseFilter(c.Capture.MouseFilter)
	return f
}
