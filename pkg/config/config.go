// Package config loads the sunburst configuration file.
//
// The file is TOML with one table per concern:
//
//	[chart]
//	width = 600
//	height = 600
//	inner_radius = 0
//	outer_radius = 290
//	depth_low = 1
//	depth_high = 4
//	window = [0.0, 1.0]
//
//	[label]
//	base_font_size = 16
//	line_padding = 15
//	arc_padding = 10
//	min_text_height = 18.5
//	ellipsis = "..."
//
//	[font_scale]
//	domain = [1.0, 5.0]
//	range = [1.0, 0.7]
//
//	[cache]
//	backend = "file"        # file, redis or none
//	dir = ""                # defaults to $XDG_CACHE_HOME/sunburst
//	redis_url = "redis://localhost:6379/0"
//	ttl = "24h"
//
//	[server]
//	addr = ":8080"
//	max_body_bytes = 8388608
//
// Missing keys keep their [Default] values; unknown keys are rejected.
package config

import (
	"io"
	"os"
	"slices"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/sunburst/pkg/cache"
	"github.com/matzehuels/sunburst/pkg/errors"
	"github.com/matzehuels/sunburst/pkg/label"
	"github.com/matzehuels/sunburst/pkg/polar"
)

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config is the complete configuration.
type Config struct {
	Chart     Chart         `toml:"chart"`
	Label     label.Options `toml:"label"`
	FontScale FontScale     `toml:"font_scale"`
	Cache     Cache         `toml:"cache"`
	Server    Server        `toml:"server"`
}

// Chart describes the drawing surface and the displayed window.
type Chart struct {
	Width       int        `toml:"width" json:"width"`
	Height      int        `toml:"height" json:"height"`
	InnerRadius float64    `toml:"inner_radius" json:"inner_radius"`
	OuterRadius float64    `toml:"outer_radius" json:"outer_radius"`
	DepthLow    int        `toml:"depth_low" json:"depth_low"`
	DepthHigh   int        `toml:"depth_high" json:"depth_high"`
	Window      [2]float64 `toml:"window" json:"window"`
}

// FontScale maps the displayed depth span to a font-size multiplier.
type FontScale struct {
	Domain [2]float64 `toml:"domain" json:"domain"`
	Range  [2]float64 `toml:"range" json:"range"`
}

// Cache selects the artifact cache backend.
type Cache struct {
	Backend  string        `toml:"backend"`
	Dir      string        `toml:"dir"`
	RedisURL string        `toml:"redis_url"`
	TTL      time.Duration `toml:"ttl"`
}

// Server configures the HTTP surface.
type Server struct {
	Addr         string `toml:"addr"`
	MaxBodyBytes int64  `toml:"max_body_bytes"`
}

// Default returns the built-in configuration.
func Default() *Config {
	fs := label.DefaultFontScale()
	return &Config{
		Chart: Chart{
			Width:       600,
			Height:      600,
			InnerRadius: 0,
			OuterRadius: 290,
			DepthLow:    1,
			DepthHigh:   4,
			Window:      [2]float64{0, 1},
		},
		Label:     label.DefaultOptions(),
		FontScale: FontScale{Domain: fs.Domain, Range: fs.Range},
		Cache: Cache{
			Backend:  BackendFile,
			RedisURL: "redis://localhost:6379/0",
			TTL:      cache.DefaultTTL,
		},
		Server: Server{
			Addr:         ":8080",
			MaxBodyBytes: 8 << 20,
		},
	}
}

// Load reads the file at path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "config file not found: %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "open %s", path)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads TOML from r over the defaults and validates the result.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges and cross-field constraints.
func (c *Config) Validate() error {
	if err := c.Chart.Validate(); err != nil {
		return err
	}
	if err := c.FontScale.Validate(); err != nil {
		return err
	}
	if c.Label.BaseFontSize < 0 {
		return invalid("label base_font_size must not be negative")
	}

	backends := []string{BackendFile, BackendRedis, BackendNone}
	if !slices.Contains(backends, c.Cache.Backend) {
		return invalid("unknown cache backend %q", c.Cache.Backend)
	}
	if c.Cache.Backend == BackendRedis && c.Cache.RedisURL == "" {
		return invalid("cache backend redis needs redis_url")
	}
	if c.Cache.TTL < 0 {
		return invalid("cache ttl must not be negative")
	}

	if c.Server.MaxBodyBytes <= 0 {
		return invalid("server max_body_bytes must be positive")
	}
	return nil
}

// Validate checks the drawing size, radii, depth window and angular window.
func (ch Chart) Validate() error {
	switch {
	case ch.Width <= 0 || ch.Height <= 0:
		return invalid("chart size must be positive, got %dx%d", ch.Width, ch.Height)
	case ch.InnerRadius < 0 || ch.OuterRadius <= ch.InnerRadius:
		return invalid("chart radii must satisfy 0 <= inner < outer, got %g, %g", ch.InnerRadius, ch.OuterRadius)
	case ch.DepthLow < 0 || ch.DepthHigh <= ch.DepthLow:
		return invalid("depth window must satisfy 0 <= low < high, got %d, %d", ch.DepthLow, ch.DepthHigh)
	case ch.Window[0] < 0 || ch.Window[1] > 1 || ch.Window[0] >= ch.Window[1]:
		return invalid("angular window must satisfy 0 <= min < max <= 1, got %v", ch.Window)
	}
	return nil
}

// Validate rejects an empty font scale domain.
func (fs FontScale) Validate() error {
	if fs.Domain[0] == fs.Domain[1] {
		return invalid("font_scale domain must not be empty, got %v", fs.Domain)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidConfig, format, args...)
}

// View returns the label view described by the chart and font settings.
func (c *Config) View() label.View {
	return ViewOf(c.Chart, c.FontScale)
}

// ViewOf builds the label view for a chart, zooming when the angular
// window is narrower than the full circle.
func ViewOf(ch Chart, fs FontScale) label.View {
	v := label.NewView(ch.DepthLow, ch.DepthHigh, ch.InnerRadius, ch.OuterRadius)
	v.FontScale = polar.Linear{Domain: fs.Domain, Range: fs.Range, Clamp: true}
	if ch.Window != [2]float64{0, 1} {
		v = v.Zoom(ch.Window[0], ch.Window[1])
	}
	return v
}
