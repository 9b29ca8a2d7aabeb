// Package config resolves the construction-time settings of the editor.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	EnvCanvasWidth  = "MASKPAINT_CANVAS_WIDTH"
	EnvCanvasHeight = "MASKPAINT_CANVAS_HEIGHT"
	EnvScrubSize    = "MASKPAINT_SCRUB_SIZE"
	EnvEraserSize   = "MASKPAINT_ERASER_SIZE"

	MaxCanvasSide = 8192
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	CanvasWidth  int `yaml:"canvas_width"`
	CanvasHeight int `yaml:"canvas_height"`
	ScrubSize    int `yaml:"scrub_size"`
	EraserSize   int `yaml:"eraser_size"`
}

func Default() Config {
	return Config{
		CanvasWidth:  500,
		CanvasHeight: 500,
		ScrubSize:    20,
		EraserSize:   20,
	}
}

// Load starts from the defaults, overlays the YAML file at path (if any) and
// then the environment, and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	fields := []struct {
		key string
		dst *int
	}{
		{EnvCanvasWidth, &c.CanvasWidth},
		{EnvCanvasHeight, &c.CanvasHeight},
		{EnvScrubSize, &c.ScrubSize},
		{EnvEraserSize, &c.EraserSize},
	}
	for _, f := range fields {
		v, ok := lookup(f.key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalid, f.key, v)
		}
		*f.dst = n
	}
	return nil
}

func (c Config) Validate() error {
	if c.CanvasWidth <= 0 || c.CanvasWidth > MaxCanvasSide {
		return fmt.Errorf("%w: canvas width %d outside 1..%d", ErrInvalid, c.CanvasWidth, MaxCanvasSide)
	}
	if c.CanvasHeight <= 0 || c.CanvasHeight > MaxCanvasSide {
		return fmt.Errorf("%w: canvas height %d outside 1..%d", ErrInvalid, c.CanvasHeight, MaxCanvasSide)
	}
	if c.ScrubSize < 10 || c.ScrubSize > 50 {
		return fmt.Errorf("%w: scrub size %d outside 10..50", ErrInvalid, c.ScrubSize)
	}
	if c.EraserSize < 10 || c.EraserSize > 50 {
		return fmt.Errorf("%w: eraser size %d outside 10..50", ErrInvalid, c.EraserSize)
	}
	return nil
}
