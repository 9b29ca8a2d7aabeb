package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadYAMLThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maskpaint.yaml")
	require.NoError(t, os.WriteFile(path, []byte("canvas_width: 800\ncanvas_height: 600\nscrub_size: 30\n"), 0o644))

	t.Setenv(EnvCanvasHeight, "640")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{CanvasWidth: 800, CanvasHeight: 640, ScrubSize: 30, EraserSize: 20}, cfg)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("canvas_width: [1, 2"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)

	t.Setenv(EnvScrubSize, "big")
	_, err = Load("")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		mod   func(*Config)
		valid bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero width", func(c *Config) { c.CanvasWidth = 0 }, false},
		{"huge height", func(c *Config) { c.CanvasHeight = MaxCanvasSide + 1 }, false},
		{"scrub too small", func(c *Config) { c.ScrubSize = 9 }, false},
		{"eraser too large", func(c *Config) { c.EraserSize = 51 }, false},
		{"bounds inclusive", func(c *Config) { c.ScrubSize, c.EraserSize = 10, 50 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mod(&cfg)
			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalid)
			}
		})
	}
}
