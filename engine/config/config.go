// Package config holds the runtime configuration surface: initial window size and target frame rate.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultWidth is the initial window width in pixels.
	DefaultWidth = 1920
	// DefaultHeight is the initial window height in pixels.
	DefaultHeight = 1080
	// DefaultTargetFPS is the frame rate the driver paces to.
	DefaultTargetFPS = 60
)

// ErrInvalidConfig is returned by Validate when a value is out of range.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the complete set of recognized runtime options.
// YAML is a superset of JSON, so the same tags load both formats.
type Config struct {
	Width     int `yaml:"width" json:"width"`
	Height    int `yaml:"height" json:"height"`
	TargetFPS int `yaml:"target_fps" json:"target_fps"`
}

// ConfigOption is a functional option applied on top of a loaded or default Config.
type ConfigOption func(*Config)

// WithSize overrides the initial window size.
//
// Parameters:
//   - width: width in pixels
//   - height: height in pixels
//
// Returns:
//   - ConfigOption: option function to apply
func WithSize(width, height int) ConfigOption {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithTargetFPS overrides the target frame rate.
//
// Parameters:
//   - fps: frames per second
//
// Returns:
//   - ConfigOption: option function to apply
func WithTargetFPS(fps int) ConfigOption {
	return func(c *Config) {
		c.TargetFPS = fps
	}
}

// Default returns the built-in configuration (1920x1080 at 60 FPS).
//
// Parameters:
//   - options: overrides applied after the defaults
//
// Returns:
//   - Config: the configuration
func Default(options ...ConfigOption) Config {
	c := Config{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		TargetFPS: DefaultTargetFPS,
	}
	for _, opt := range options {
		opt(&c)
	}
	return c
}

// Load reads a YAML or JSON config file. Keys missing from the file keep their default values.
// A missing file is not an error and yields Default(). A file that fails to parse or validate is.
//
// Parameters:
//   - path: the config file path
//   - options: overrides applied after the file is loaded
//
// Returns:
//   - Config: the loaded configuration
//   - error: error if the file cannot be parsed or holds invalid values
func Load(path string, options ...ConfigOption) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return c, fmt.Errorf("config: read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return Default(), fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	for _, opt := range options {
		opt(&c)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Validate checks that every value is usable.
//
// Returns:
//   - error: ErrInvalidConfig wrapped with the offending field, or nil
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.TargetFPS <= 0 {
		return fmt.Errorf("%w: target_fps %d", ErrInvalidConfig, c.TargetFPS)
	}
	return nil
}

// FrameInterval returns the target duration of one frame.
//
// Returns:
//   - time.Duration: 1s / TargetFPS, or the default interval if TargetFPS is not positive
func (c Config) FrameInterval() time.Duration {
	fps := c.TargetFPS
	if fps <= 0 {
		fps = DefaultTargetFPS
	}
	return time.Second / time.Duration(fps)
}
