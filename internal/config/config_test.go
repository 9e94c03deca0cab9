package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interceptd/pkg/interception"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "interceptd.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.True(t, cfg.Capture.Keyboard)
	assert.False(t, cfg.Capture.Mouse)
	assert.Equal(t, interception.KeyFilterDown|interception.KeyFilterUp, cfg.KeyFilter())
	assert.Equal(t, interception.MouseFilterNone, cfg.MouseFilter())
	assert.False(t, cfg.Journal.Enabled)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[capture]
keyboard = true
mouse = true
key_filter = ["down", "up", "e0"]
mouse_filter = ["wheel", "move"]

[remap]
caps_lock = "esc"
left_ctrl = "caps_lock"

[journal]
enabled = true
path = "strokes.db"

[logging]
level = "debug"
format = "json"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, interception.KeyFilterDown|interception.KeyFilterUp|interception.KeyFilterE0, cfg.KeyFilter())
	assert.Equal(t, interception.MouseFilterWheel|interception.MouseFilterMove, cfg.MouseFilter())
	assert.Equal(t, "esc", cfg.Remap["caps_lock"])
	assert.True(t, cfg.Journal.Enabled)
	assert.Equal(t, "strokes.db", cfg.Journal.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
[capture]
mouse = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	// Keyboard default survives an unrelated override.
	assert.True(t, cfg.Capture.Keyboard)
	assert.True(t, cfg.Capture.Mouse)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorContains(t, err, "read config")
}

func TestValidateNamesOffendingFields(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:      "nothing captured",
			mutate:    func(c *Config) { c.Capture.Keyboard = false; c.Capture.Mouse = false },
			wantField: "capture",
		},
		{
			name:      "bad key filter",
			mutate:    func(c *Config) { c.Capture.KeyFilter = []string{"sideways"} },
			wantField: "capture.key_filter",
		},
		{
			name:      "bad mouse filter",
			mutate:    func(c *Config) { c.Capture.MouseFilter = []string{"wheelie"} },
			wantField: "capture.mouse_filter",
		},
		{
			name:      "unknown remap source",
			mutate:    func(c *Config) { c.Remap = map[string]string{"hyperkey": "esc"} },
			wantField: "remap",
		},
		{
			name:      "unknown remap target",
			mutate:    func(c *Config) { c.Remap = map[string]string{"esc": "hyperkey"} },
			wantField: "remap",
		},
		{
			name:      "journal without path",
			mutate:    func(c *Config) { c.Journal.Enabled = true },
			wantField: "journal.path",
		},
		{
			name:      "bad log level",
			mutate:    func(c *Config) { c.Logging.Level = "verbose" },
			wantField: "logging.level",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.Capture.KeyFilter = []string{"sideways"}
	cfg.Logging.Level = "verbose"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "capture.key_filter")
	assert.Contains(t, err.Error(), "logging.level")
}
