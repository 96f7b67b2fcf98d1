// Package config loads the viewer settings from a TOML or YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/leterax/go-cubes/pkg/camera"
	"github.com/leterax/go-cubes/pkg/input"
	"github.com/leterax/go-cubes/pkg/render"
)

// Config holds every tunable of a viewer session.
type Config struct {
	LogLevel   string           `toml:"log_level" yaml:"log_level"`
	Window     WindowConfig     `toml:"window" yaml:"window"`
	Camera     CameraConfig     `toml:"camera" yaml:"camera"`
	Projection ProjectionConfig `toml:"projection" yaml:"projection"`
	Scene      SceneConfig      `toml:"scene" yaml:"scene"`
}

// WindowConfig describes the window and its context.
type WindowConfig struct {
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
	Title  string `toml:"title" yaml:"title"`
	VSync  bool   `toml:"vsync" yaml:"vsync"`
}

// CameraConfig is the initial camera pose and its fixed tuning.
type CameraConfig struct {
	Position    [3]float32 `toml:"position" yaml:"position"`
	Yaw         float32    `toml:"yaw" yaml:"yaw"`
	Pitch       float32    `toml:"pitch" yaml:"pitch"`
	MoveSpeed   float32    `toml:"move_speed" yaml:"move_speed"`
	Sensitivity float32    `toml:"sensitivity" yaml:"sensitivity"`
}

// ProjectionConfig is the perspective frustum. FOV is in degrees.
type ProjectionConfig struct {
	FOV  float32 `toml:"fov" yaml:"fov"`
	Near float32 `toml:"near" yaml:"near"`
	Far  float32 `toml:"far" yaml:"far"`
}

// SceneConfig selects how the cubes are shaded.
type SceneConfig struct {
	Textured bool `toml:"textured" yaml:"textured"`
	// Texture is an image file on disk; empty uses the bundled crate texture.
	Texture string `toml:"texture" yaml:"texture"`
}

// Default returns the built-in settings.
func Default() Config {
	proj := render.DefaultProjection()
	return Config{
		LogLevel: "info",
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "Go-Cubes",
		},
		Camera: CameraConfig{
			Position:    [3]float32{0, 0, 3},
			Yaw:         camera.DefaultYaw,
			Pitch:       camera.DefaultPitch,
			MoveSpeed:   camera.DefaultMoveSpeed,
			Sensitivity: input.DefaultSensitivity,
		},
		Projection: ProjectionConfig{FOV: proj.FOV, Near: proj.Near, Far: proj.Far},
	}
}

// Load reads path on top of Default. The format is chosen by extension:
// .toml, or .yaml/.yml. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&cfg)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&cfg)
	default:
		return cfg, fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// ValidationError reports a single invalid setting.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validate checks the settings and returns every problem found.
func (c Config) Validate() error {
	var errs []error
	invalid := func(field, reason string) {
		errs = append(errs, &ValidationError{Field: field, Reason: reason})
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		invalid("window size", fmt.Sprintf("%dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Camera.MoveSpeed < 0 {
		invalid("camera.move_speed", "must not be negative")
	}
	if c.Camera.Sensitivity < 0 {
		invalid("camera.sensitivity", "must not be negative")
	}
	if c.Projection.FOV <= 0 || c.Projection.FOV >= 180 {
		invalid("projection.fov", "must be between 0 and 180 degrees")
	}
	if c.Projection.Near <= 0 || c.Projection.Far <= c.Projection.Near {
		invalid("projection", "need 0 < near < far")
	}
	if _, err := c.Level(); err != nil {
		invalid("log_level", err.Error())
	}

	return errors.Join(errs...)
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(c.LogLevel))
	return level, err
}

// ProjectionSettings converts the frustum settings for the renderer.
func (c Config) ProjectionSettings() render.Projection {
	return render.Projection{FOV: c.Projection.FOV, Near: c.Projection.Near, Far: c.Projection.Far}
}
