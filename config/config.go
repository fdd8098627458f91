// Package config loads the settings of the overview tools. Settings come from
// the defaults, then an optional YAML or TOML file, then OVERVIEW_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/sarchlab/overview/canvas"
	"github.com/sarchlab/overview/overview"
	"github.com/sarchlab/overview/timeline"
)

// Colors holds the palette as CSS colour strings.
type Colors struct {
	Background  string `yaml:"background" toml:"background"`
	Marker      string `yaml:"marker" toml:"marker"`
	RulerFill   string `yaml:"ruler_fill" toml:"ruler_fill"`
	RulerTick   string `yaml:"ruler_tick" toml:"ruler_tick"`
	RulerText   string `yaml:"ruler_text" toml:"ruler_text"`
	RulerBorder string `yaml:"ruler_border" toml:"ruler_border"`
}

// Config is the full set of settings.
type Config struct {
	Width       float64 `yaml:"width" toml:"width"`
	Height      float64 `yaml:"height" toml:"height"`
	BlockHeight float64 `yaml:"block_height" toml:"block_height"`
	RulerHeight float64 `yaml:"ruler_height" toml:"ruler_height"`
	Increment   int     `yaml:"increment" toml:"increment"`

	Colors       Colors  `yaml:"colors" toml:"colors"`
	RulerFont    string  `yaml:"ruler_font" toml:"ruler_font"`
	MarkerWidth  float64 `yaml:"marker_width" toml:"marker_width"`
	MarkerRadius float64 `yaml:"marker_radius" toml:"marker_radius"`

	NoteClamp  string `yaml:"note_clamp" toml:"note_clamp"`
	HeightMode string `yaml:"height_mode" toml:"height_mode"`

	HTTP        string `yaml:"http" toml:"http"`
	OpenBrowser bool   `yaml:"open_browser" toml:"open_browser"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Width:       1024,
		Height:      200,
		RulerHeight: overview.RulerHeight,
		Increment:   1,
		Colors: Colors{
			Background:  "#eaeaea",
			Marker:      "orange",
			RulerFill:   "#cccccc",
			RulerTick:   "#525252",
			RulerText:   "#000000",
			RulerBorder: "#808080",
		},
		RulerFont:    "6px sans-serif",
		MarkerWidth:  2,
		MarkerRadius: 1,
		NoteClamp:    "window",
		HeightMode:   "uniform",
	}
}

// Load overlays the file at path onto c. The format follows the file
// extension: .yaml, .yml or .toml.
func (c *Config) Load(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}

		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("parse config %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.DecodeFile(path, c); err != nil {
			return fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}

	return c.Validate()
}

// ApplyEnv overlays OVERVIEW_* environment variables onto c. A .env file in
// the working directory is loaded first; variables already set in the
// environment win over it.
func (c *Config) ApplyEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	floats := map[string]*float64{
		"OVERVIEW_WIDTH":        &c.Width,
		"OVERVIEW_HEIGHT":       &c.Height,
		"OVERVIEW_BLOCK_HEIGHT": &c.BlockHeight,
		"OVERVIEW_RULER_HEIGHT": &c.RulerHeight,
	}
	for name, dst := range floats {
		if v := os.Getenv(name); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			*dst = f
		}
	}

	if v := os.Getenv("OVERVIEW_INCREMENT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("OVERVIEW_INCREMENT: %w", err)
		}

		c.Increment = n
	}

	if v := os.Getenv("OVERVIEW_OPEN_BROWSER"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("OVERVIEW_OPEN_BROWSER: %w", err)
		}

		c.OpenBrowser = b
	}

	strs := map[string]*string{
		"OVERVIEW_NOTE_CLAMP":  &c.NoteClamp,
		"OVERVIEW_HEIGHT_MODE": &c.HeightMode,
		"OVERVIEW_HTTP":        &c.HTTP,
		"OVERVIEW_RULER_FONT":  &c.RulerFont,
	}
	for name, dst := range strs {
		if v := os.Getenv(name); v != "" {
			*dst = v
		}
	}

	return c.Validate()
}

// Validate checks the enumerated settings and the colours.
func (c Config) Validate() error {
	if _, err := c.NoteClampMode(); err != nil {
		return err
	}

	if _, err := c.TimelineHeightMode(); err != nil {
		return err
	}

	_, err := c.Palette()

	return err
}

// NoteClampMode converts the note_clamp setting.
func (c Config) NoteClampMode() (overview.NoteClamp, error) {
	switch c.NoteClamp {
	case "", "window":
		return overview.NoteClampWindow, nil
	case "legacy":
		return overview.NoteClampLegacy, nil
	}

	return 0, fmt.Errorf("invalid note_clamp %q, want window or legacy", c.NoteClamp)
}

// TimelineHeightMode converts the height_mode setting.
func (c Config) TimelineHeightMode() (timeline.HeightMode, error) {
	switch c.HeightMode {
	case "", "uniform":
		return timeline.HeightUniform, nil
	case "duration":
		return timeline.HeightByDuration, nil
	}

	return 0, fmt.Errorf("invalid height_mode %q, want uniform or duration", c.HeightMode)
}

// Palette converts the colour settings. Empty entries keep the default
// colour.
func (c Config) Palette() (overview.Palette, error) {
	p := overview.DefaultPalette()

	colors := []struct {
		value string
		dst   *color.Color
	}{
		{c.Colors.Background, &p.Background},
		{c.Colors.Marker, &p.Marker},
		{c.Colors.RulerFill, &p.RulerFill},
		{c.Colors.RulerTick, &p.RulerTick},
		{c.Colors.RulerText, &p.RulerText},
		{c.Colors.RulerBorder, &p.RulerBorder},
	}

	for _, e := range colors {
		if e.value == "" {
			continue
		}

		v, err := canvas.ParseColor(e.value)
		if err != nil {
			return overview.Palette{}, err
		}

		*e.dst = v
	}

	if c.RulerFont != "" {
		p.RulerFont = c.RulerFont
	}

	if c.MarkerWidth > 0 {
		p.MarkerWidth = c.MarkerWidth
	}

	if c.MarkerRadius > 0 {
		p.MarkerRadius = c.MarkerRadius
	}

	return p, nil
}

// Surface lays out one frame showing traceDuration nanoseconds over
// modelCount lanes. Without an explicit block height the lanes share the
// space below the ruler.
func (c Config) Surface(traceDuration int64, modelCount int) overview.Surface {
	s := overview.Surface{
		Width:       c.Width,
		Height:      c.Height,
		Increment:   max(c.Increment, 1),
		BlockHeight: c.BlockHeight,
		Bump:        c.RulerHeight,
	}

	if traceDuration > 0 {
		s.Spacing = c.Width / float64(traceDuration)
	}

	if s.BlockHeight <= 0 && modelCount > 0 {
		s.BlockHeight = (c.Height - c.RulerHeight) / float64(modelCount)
	}

	return s
}
