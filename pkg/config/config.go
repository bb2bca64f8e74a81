// Package config loads hexgrid settings from a TOML file.
//
// Every field has a default, so a missing file is not an error when no path
// was requested explicitly. A file only needs the keys it overrides:
//
//	[layout]
//	item_size = 48
//
//	[render]
//	fps = 24
//	background = "#000000"
//
//	[dataset]
//	paths = ["data/cities.csv", "https://example.com/cities.csv"]
//	cache_ttl = "1h"
package config

import (
	"os"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	hgerrors "github.com/matzehuels/hexgrid/pkg/errors"
	"github.com/matzehuels/hexgrid/pkg/layout"
	"github.com/matzehuels/hexgrid/pkg/render/sink"
	"github.com/matzehuels/hexgrid/pkg/scene"
)

// DefaultFile is read from the working directory when no path is given.
const DefaultFile = "hexgrid.toml"

// MaxFPS bounds the configurable tick rate.
const MaxFPS = 120

// DefaultPaths are the dataset locations tried in order.
var DefaultPaths = []string{"assets/dataset.csv", "dataset.csv"}

// Config is the full application configuration.
type Config struct {
	Layout  Layout  `toml:"layout"`
	Render  Render  `toml:"render"`
	Dataset Dataset `toml:"dataset"`
}

// Layout controls grid geometry, in pixels.
type Layout struct {
	ItemSize     float64 `toml:"item_size"`
	Padding      float64 `toml:"padding"`
	OuterPadding float64 `toml:"outer_padding"`
}

// Render controls the drawing surface.
type Render struct {
	Width       float64 `toml:"width"`
	FPS         int     `toml:"fps"`
	Background  string  `toml:"background"`
	StrokeWidth float64 `toml:"stroke_width"`
}

// Dataset controls where data comes from.
type Dataset struct {
	Paths       []string `toml:"paths"`
	CacheDir    string   `toml:"cache_dir"` // Empty selects the user cache directory
	CacheTTL    Duration `toml:"cache_ttl"`
	HTTPTimeout Duration `toml:"http_timeout"`
}

// Duration is a time.Duration written as a Go duration string ("90s", "24h").
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Layout: Layout{
			ItemSize:     layout.DefaultItemSize,
			Padding:      layout.DefaultPadding,
			OuterPadding: layout.DefaultOuterPadding,
		},
		Render: Render{
			Width:       800,
			FPS:         scene.DefaultFPS,
			Background:  "#0d0f12",
			StrokeWidth: 2,
		},
		Dataset: Dataset{
			Paths:       append([]string(nil), DefaultPaths...),
			CacheTTL:    Duration{24 * time.Hour},
			HTTPTimeout: Duration{30 * time.Second},
		},
	}
}

// Load reads path over the defaults and validates the result. An empty path
// reads [DefaultFile] if it exists and falls back to the defaults otherwise.
func Load(path string) (Config, error) {
	cfg := Defaults()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	if _, err := os.Stat(path); err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, hgerrors.Wrap(hgerrors.ErrCodeFileNotFound, err, "config file %s not found", path)
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, hgerrors.Wrap(hgerrors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return cfg, hgerrors.New(hgerrors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	checks := []error{
		hgerrors.ValidatePositive("layout.item_size", c.Layout.ItemSize),
		hgerrors.ValidateNonNegative("layout.padding", c.Layout.Padding),
		hgerrors.ValidateNonNegative("layout.outer_padding", c.Layout.OuterPadding),
		hgerrors.ValidatePositive("render.width", c.Render.Width),
		hgerrors.ValidatePositive("render.stroke_width", c.Render.StrokeWidth),
		hgerrors.ValidateNonNegative("dataset.cache_ttl", c.Dataset.CacheTTL.Seconds()),
		hgerrors.ValidatePositive("dataset.http_timeout", c.Dataset.HTTPTimeout.Seconds()),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}

	if c.Render.FPS < 1 || c.Render.FPS > MaxFPS {
		return hgerrors.New(hgerrors.ErrCodeInvalidConfig, "render.fps must be between 1 and %d, got %d", MaxFPS, c.Render.FPS)
	}
	if _, err := sink.ParseColor(c.Render.Background); err != nil {
		return hgerrors.Wrap(hgerrors.ErrCodeInvalidConfig, err, "render.background must be #rgb or #rrggbb, got %q", c.Render.Background)
	}
	if len(c.Dataset.Paths) == 0 {
		return hgerrors.New(hgerrors.ErrCodeInvalidConfig, "dataset.paths must not be empty")
	}
	for _, p := range c.Dataset.Paths {
		if err := hgerrors.ValidateDatasetPath(p); err != nil {
			return hgerrors.Wrap(hgerrors.ErrCodeInvalidConfig, err, "dataset.paths")
		}
	}
	return nil
}

// LayoutOptions converts the layout section to engine options.
func (c Config) LayoutOptions() []layout.Option {
	return []layout.Option{
		layout.WithItemSize(c.Layout.ItemSize),
		layout.WithPadding(c.Layout.Padding),
		layout.WithOuterPadding(c.Layout.OuterPadding),
	}
}
