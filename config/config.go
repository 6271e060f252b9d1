// Package config loads the application config file and the settings that
// persist between runs.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"
)

const DefaultPath = "spritelab.toml"

type Window struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// Config is the static application config, read once at startup.
type Config struct {
	Window     Window  `toml:"window"`
	ClearColor string  `toml:"clear_color"`
	TimeScale  float64 `toml:"time_scale"`
	TPS        int     `toml:"tps"`
	Scene      string  `toml:"scene"`
	Debug      bool    `toml:"debug"`
	Watch      bool    `toml:"watch"`
}

func Default() Config {
	return Config{
		Window: Window{
			Title:  "spritelab",
			Width:  800,
			Height: 800,
		},
		ClearColor: "black",
		TimeScale:  1,
		TPS:        60,
		Scene:      "sprites",
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a TOML document over the defaults. Unknown keys are errors.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Default(), fmt.Errorf("config: %s", strict.String())
		}
		return Default(), fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.TimeScale < 0 {
		return fmt.Errorf("config: time_scale must not be negative, got %v", c.TimeScale)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("config: tps must be positive, got %d", c.TPS)
	}
	if _, err := ParseColor(c.ClearColor); err != nil {
		return err
	}
	return nil
}

// Encode renders the config as TOML.
func (c Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}

// Background returns the parsed clear colour.
func (c Config) Background() color.Color {
	col, err := ParseColor(c.ClearColor)
	if err != nil {
		return color.Black
	}
	return col
}

// ParseColor accepts an SVG colour name or "#rrggbb".
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return color.Black, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	if hex, ok := strings.CutPrefix(s, "#"); ok && len(hex) == 6 {
		var r, g, b uint8
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err == nil {
			return color.RGBA{R: r, G: g, B: b, A: 255}, nil
		}
	}
	return nil, fmt.Errorf("config: unknown colour %q", s)
}
