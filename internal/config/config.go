// Package config holds viewer settings: defaults, an optional TOML file,
// and command line overrides applied by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"pointview/internal/cloud"
	"pointview/internal/orbit"
)

type Config struct {
	// Source is the backend base URL or a local directory.
	Source       string  `toml:"source"`
	DefaultShape string  `toml:"default_shape"`
	FPS          int     `toml:"fps"`
	LogFile      string  `toml:"log_file"`
	LogLevel     string  `toml:"log_level"`
	Camera       Camera  `toml:"camera"`
	KeyStep      float64 `toml:"key_step"`
}

type Camera struct {
	Sensitivity float64 `toml:"sensitivity"`
	ZoomSpeed   float64 `toml:"zoom_speed"`
	MinRadius   float64 `toml:"min_radius"`
	MaxRadius   float64 `toml:"max_radius"`
	Epsilon     float64 `toml:"epsilon"`

	// Start is the initial camera position.
	Start [3]float64 `toml:"start"`
}

func Default() Config {
	o := orbit.DefaultConfig()
	return Config{
		Source:       "http://localhost:8000",
		DefaultShape: string(cloud.Sphere),
		FPS:          30,
		LogLevel:     "info",
		KeyStep:      0.1,
		Camera: Camera{
			Sensitivity: o.Sensitivity,
			ZoomSpeed:   o.ZoomSpeed,
			MinRadius:   o.MinRadius,
			MaxRadius:   o.MaxRadius,
			Epsilon:     o.Epsilon,
			Start:       [3]float64{0, 2, 8},
		},
	}
}

// Load overlays the TOML file at path onto the defaults. A missing file
// is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Source == "" {
		errs = append(errs, errors.New("source must be set"))
	}
	if _, err := cloud.ParseShape(c.DefaultShape); err != nil {
		errs = append(errs, fmt.Errorf("default_shape: %w", err))
	}
	if c.FPS <= 0 || c.FPS > 120 {
		errs = append(errs, fmt.Errorf("fps %d out of range (1..120)", c.FPS))
	}
	cam := c.Camera
	if cam.MinRadius <= 0 || cam.MaxRadius < cam.MinRadius {
		errs = append(errs, fmt.Errorf("camera radius range [%g, %g] invalid", cam.MinRadius, cam.MaxRadius))
	}
	if cam.Sensitivity <= 0 {
		errs = append(errs, errors.New("camera sensitivity must be positive"))
	}
	if cam.Epsilon <= 0 || cam.Epsilon >= 1.5 {
		errs = append(errs, fmt.Errorf("camera epsilon %g out of range (0, 1.5)", cam.Epsilon))
	}
	return errors.Join(errs...)
}

// Orbit converts the camera section for the orbit controller.
func (c Config) Orbit() orbit.Config {
	return orbit.Config{
		Sensitivity: c.Camera.Sensitivity,
		ZoomSpeed:   c.Camera.ZoomSpeed,
		MinRadius:   c.Camera.MinRadius,
		MaxRadius:   c.Camera.MaxRadius,
		Epsilon:     c.Camera.Epsilon,
	}
}

// FrameInterval is the time between render frames.
func (c Config) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(c.FPS)
}
