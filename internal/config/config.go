// Package config loads the viewer and exporter settings from an optional
// YAML file and FRACTAL_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/phanxgames/fractal"
)

// Config holds every setting a binary reads at startup.
type Config struct {
	Title         string       `yaml:"title"`
	Width         int          `yaml:"width"`
	Height        int          `yaml:"height"`
	Kind          fractal.Kind `yaml:"kind"`
	Depth         int          `yaml:"depth"`
	ZoomDuration  float32      `yaml:"zoom_duration"`
	ShowHUD       bool         `yaml:"show_hud"`
	ScreenshotDir string       `yaml:"screenshot_dir"`
	LogLevel      string       `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Title:         "Fractals",
		Width:         800,
		Height:        600,
		Kind:          fractal.KindSierpinski,
		Depth:         3,
		ZoomDuration:  0,
		ShowHUD:       true,
		ScreenshotDir: "screenshots",
		LogLevel:      "info",
	}
}

// Load reads path (skipped when empty), applies the process environment and
// validates the result.
func Load(path string) (Config, error) {
	return LoadWithEnv(path, os.LookupEnv)
}

// LoadWithEnv is Load with a custom environment lookup.
func LoadWithEnv(path string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return Config{}, fmt.Errorf("open config: %w", err)
		}
		err = Decode(f, &cfg)
		f.Close()
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", path, err)
		}
	}
	if err := applyEnv(&cfg, lookup); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Decode reads YAML from r on top of cfg. Unknown keys are an error; an
// empty document leaves cfg unchanged.
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	var errs []error
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) {
		if v, ok := lookup(key); ok && v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = n
		}
	}

	str("FRACTAL_TITLE", &cfg.Title)
	num("FRACTAL_WIDTH", &cfg.Width)
	num("FRACTAL_HEIGHT", &cfg.Height)
	num("FRACTAL_DEPTH", &cfg.Depth)
	str("FRACTAL_SCREENSHOT_DIR", &cfg.ScreenshotDir)
	str("FRACTAL_LOG_LEVEL", &cfg.LogLevel)

	if v, ok := lookup("FRACTAL_KIND"); ok && v != "" {
		k, err := fractal.ParseKind(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("FRACTAL_KIND: %w", err))
		} else {
			cfg.Kind = k
		}
	}
	if v, ok := lookup("FRACTAL_ZOOM_DURATION"); ok && v != "" {
		d, err := strconv.ParseFloat(v, 32)
		if err != nil {
			errs = append(errs, fmt.Errorf("FRACTAL_ZOOM_DURATION: %w", err))
		} else {
			cfg.ZoomDuration = float32(d)
		}
	}
	if v, ok := lookup("FRACTAL_SHOW_HUD"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("FRACTAL_SHOW_HUD: %w", err))
		} else {
			cfg.ShowHUD = b
		}
	}
	return errors.Join(errs...)
}

// Validate checks that the settings describe something drawable.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Kind != fractal.KindSierpinski && c.Kind != fractal.KindMenger {
		return fmt.Errorf("unknown fractal kind %v", c.Kind)
	}
	if err := fractal.ValidateDepth(c.Kind, c.Depth); err != nil {
		return fmt.Errorf("depth %d: %w", c.Depth, err)
	}
	if c.ZoomDuration < 0 {
		return fmt.Errorf("zoom_duration must not be negative, got %v", c.ZoomDuration)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// SlogLevel returns LogLevel as a slog.Level. Invalid levels map to Info;
// Validate rejects them.
func (c Config) SlogLevel() slog.Level {
	l, _ := parseLevel(c.LogLevel)
	return l
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}
