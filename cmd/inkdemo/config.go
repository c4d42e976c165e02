package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/calligraphy"
	"github.com/gogpu/ink/freehand"
	"github.com/gogpu/ink/raster"
)

// Rendering modes.
const (
	ModeOutline     = "outline"
	ModeCalligraphy = "calligraphy"
)

var errConfigFormat = errors.New("inkdemo: config must be .toml, .yaml or .yml")

// easings names the pressure easings a config may select.
var easings = map[string]ink.Easing{
	"linear":    ink.EaseLinear,
	"outQuad":   ink.EaseOutQuad,
	"outCubic":  ink.EaseOutCubic,
	"outSine":   ink.EaseOutSine,
	"inOutSine": ink.EaseInOutSine,
}

// Config is the demo configuration. Fields missing from a config file keep
// their defaults.
type Config struct {
	Width       int               `toml:"width" yaml:"width"`
	Height      int               `toml:"height" yaml:"height"`
	Mode        string            `toml:"mode" yaml:"mode"`
	Ink         raster.Color      `toml:"ink" yaml:"ink"`
	Background  raster.Color      `toml:"background" yaml:"background"`
	Stroke      StrokeConfig      `toml:"stroke" yaml:"stroke"`
	Calligraphy CalligraphyConfig `toml:"calligraphy" yaml:"calligraphy"`
}

// StrokeConfig mirrors freehand.Options.
type StrokeConfig struct {
	Size             float64 `toml:"size" yaml:"size"`
	Thinning         float64 `toml:"thinning" yaml:"thinning"`
	Smoothing        float64 `toml:"smoothing" yaml:"smoothing"`
	Streamline       float64 `toml:"streamline" yaml:"streamline"`
	SimulatePressure bool    `toml:"simulate_pressure" yaml:"simulate_pressure"`
	Easing           string  `toml:"easing" yaml:"easing"`
	TaperStart       float64 `toml:"taper_start" yaml:"taper_start"`
	TaperEnd         float64 `toml:"taper_end" yaml:"taper_end"`
	CapStart         bool    `toml:"cap_start" yaml:"cap_start"`
	CapEnd           bool    `toml:"cap_end" yaml:"cap_end"`
	Last             bool    `toml:"last" yaml:"last"`
	DotStrokes       bool    `toml:"dot_strokes" yaml:"dot_strokes"`
}

// CalligraphyConfig controls the fit-and-decorate pipeline.
type CalligraphyConfig struct {
	Width          float64 `toml:"width" yaml:"width"`
	Resolution     float64 `toml:"resolution" yaml:"resolution"`
	SampleDistance float64 `toml:"sample_distance" yaml:"sample_distance"`
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() Config {
	o := freehand.DefaultOptions()
	return Config{
		Width:      800,
		Height:     600,
		Mode:       ModeOutline,
		Ink:        raster.Black,
		Background: raster.White,
		Stroke: StrokeConfig{
			Size:             o.Size,
			Thinning:         o.Thinning,
			Smoothing:        o.Smoothing,
			Streamline:       o.Streamline,
			SimulatePressure: o.SimulatePressure,
			Easing:           "linear",
			CapStart:         o.Start.Cap,
			CapEnd:           o.End.Cap,
			Last:             o.Last,
			DotStrokes:       o.DotStrokes,
		},
		Calligraphy: CalligraphyConfig{
			Width:          12,
			Resolution:     calligraphy.DefaultResolution,
			SampleDistance: 4,
		},
	}
}

// LoadConfig reads a TOML or YAML file over the defaults, choosing the
// decoder by extension. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return cfg, fmt.Errorf("inkdemo: read config: %w", err)
	}
	if err := decodeConfig(&cfg, filepath.Ext(path), data); err != nil {
		return cfg, fmt.Errorf("inkdemo: %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func decodeConfig(cfg *Config, ext string, data []byte) error {
	switch strings.ToLower(ext) {
	case ".toml":
		return toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	default:
		return errConfigFormat
	}
}

// Validate checks that the configuration can be rendered.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("inkdemo: invalid canvas size %dx%d", c.Width, c.Height)
	}
	switch c.Mode {
	case ModeOutline, ModeCalligraphy:
	default:
		return fmt.Errorf("inkdemo: unknown mode %q", c.Mode)
	}
	if _, ok := easings[c.Stroke.Easing]; !ok {
		return fmt.Errorf("inkdemo: unknown easing %q", c.Stroke.Easing)
	}
	return nil
}

// Options converts the stroke section to freehand options.
func (s StrokeConfig) Options() freehand.Options {
	o := freehand.DefaultOptions().
		WithSize(s.Size).
		WithThinning(s.Thinning).
		WithSmoothing(s.Smoothing).
		WithStreamline(s.Streamline).
		WithSimulatePressure(s.SimulatePressure).
		WithLast(s.Last).
		WithDotStrokes(s.DotStrokes)
	if e, ok := easings[s.Easing]; ok {
		o = o.WithEasing(e)
	}
	start, end := o.Start, o.End
	start.Cap, start.Taper = s.CapStart, s.TaperStart
	end.Cap, end.Taper = s.CapEnd, s.TaperEnd
	return o.WithStart(start).WithEnd(end)
}
