// Package config loads the display profile used by the simulators.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/OpticalFlyer/inkui/paint"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config represents an inkui.toml profile
type Config struct {
	Display  DisplayConfig  `toml:"display"`
	Window   WindowConfig   `toml:"window"`
	Terminal TerminalConfig `toml:"terminal"`
	Map      MapConfig      `toml:"map"`
}

// DisplayConfig describes the physical panel.
type DisplayConfig struct {
	// Buffer width in pixels, a multiple of 8
	Width  int `toml:"width"`
	Height int `toml:"height"`
	// Rotation in degrees: 0, 90, 180 or 270
	Rotation int `toml:"rotation"`
}

type WindowConfig struct {
	// Screen pixels per panel pixel
	Scale int    `toml:"scale"`
	Title string `toml:"title"`
}

type TerminalConfig struct {
	// Panel pixels per terminal cell column
	CellWidth int `toml:"cell_width"`
	// Panel pixels per half-block; one cell shows two of these
	CellHeight int `toml:"cell_height"`
	// Play a click on every claimed tap
	Click bool `toml:"click"`
}

type MapConfig struct {
	// Optional ESRI shapefile drawn by the map view
	Shapefile string  `toml:"shapefile"`
	Lat       float64 `toml:"lat"`
	Lon       float64 `toml:"lon"`
	Zoom      int     `toml:"zoom"`
}

// Default returns a profile for a 4.2" 400x300 panel.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			Width:    400,
			Height:   300,
			Rotation: 0,
		},
		Window: WindowConfig{
			Scale: 2,
			Title: "inkui",
		},
		Terminal: TerminalConfig{
			CellWidth:  2,
			CellHeight: 2,
		},
		Map: MapConfig{
			Lat:  37.7749,
			Lon:  -122.4194,
			Zoom: 10,
		},
	}
}

// Load reads the profile at path on top of the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML on top of the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes the profile as TOML.
func (c Config) Marshal() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// Validate checks the profile for values the canvas cannot use.
func (c Config) Validate() error {
	d := c.Display
	if d.Width <= 0 || d.Width%8 != 0 {
		return fmt.Errorf("%w: display width %d must be a positive multiple of 8", ErrInvalid, d.Width)
	}
	if d.Height <= 0 {
		return fmt.Errorf("%w: display height %d must be positive", ErrInvalid, d.Height)
	}
	if _, err := paint.RotationFromDegrees(d.Rotation); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Window.Scale <= 0 {
		return fmt.Errorf("%w: window scale %d must be positive", ErrInvalid, c.Window.Scale)
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		return fmt.Errorf("%w: terminal cell %dx%d must be positive",
			ErrInvalid, c.Terminal.CellWidth, c.Terminal.CellHeight)
	}
	if c.Map.Lat < -90 || c.Map.Lat > 90 || c.Map.Lon < -180 || c.Map.Lon > 180 {
		return fmt.Errorf("%w: map centre (%g, %g) out of range", ErrInvalid, c.Map.Lat, c.Map.Lon)
	}
	return nil
}

// Rotation returns the display rotation. It assumes a validated profile and
// falls back to no rotation otherwise.
func (c Config) Rotation() paint.Rotation {
	r, err := paint.RotationFromDegrees(c.Display.Rotation)
	if err != nil {
		return paint.Rotate0
	}
	return r
}
