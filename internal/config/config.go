// Package config loads generation settings from defaults and an optional YAML or TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/demoreel/pkg/domain"
	"github.com/aretw0/demoreel/pkg/guide"
	"github.com/aretw0/demoreel/pkg/surface"
	"github.com/aretw0/demoreel/pkg/synth"
)

// Config drives a generation run. The zero-flag defaults render both topics at 150 frames.
type Config struct {
	// Frames per topic.
	Frames int `mapstructure:"frames"`
	// Width and Height of the figure in inches.
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
	// Seed for the synthetic series; 0 draws a random one.
	Seed uint64 `mapstructure:"seed"`
	// Topics to generate, in order.
	Topics []string `mapstructure:"topics"`

	GuidePath   string `mapstructure:"guide_path"`
	ExportDir   string `mapstructure:"export_dir"`
	PreviewDir  string `mapstructure:"preview_dir"`
	MetricsFile string `mapstructure:"metrics_file"`
	LogLevel    string `mapstructure:"log_level"`
}

var (
	minWidth  = float64(surface.MinWidth / vg.Inch)
	minHeight = float64(surface.MinHeight / vg.Inch)
)

// Default returns the settings used when no file or flag says otherwise.
func Default() Config {
	topics := make([]string, 0, len(domain.Topics))
	for _, t := range domain.Topics {
		topics = append(topics, string(t.ID))
	}
	return Config{
		Frames:    synth.DefaultFrames,
		Width:     16,
		Height:    9,
		Topics:    topics,
		GuidePath: guide.DefaultPath,
		LogLevel:  "warn",
	}
}

// Load reads path on top of Default. The format follows the extension: .yaml, .yml or .toml.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	raw := map[string]any{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &raw); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("%w: unsupported config format %q", domain.ErrInvalidConfig, ext)
	}

	if err := Apply(&cfg, raw); err != nil {
		return Config{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return cfg, nil
}

// Apply overlays loosely typed values (file contents, flag overrides) onto cfg.
// Unknown keys are rejected so typos do not pass silently.
func Apply(cfg *Config, values map[string]any) error {
	// A topic list replaces the default one instead of being merged into it.
	if _, ok := values["topics"]; ok {
		cfg.Topics = nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(values); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	return nil
}

// Validate reports the first setting that cannot drive a run.
func (c Config) Validate() error {
	switch {
	case c.Frames <= 0:
		return fmt.Errorf("%w: frames must be positive, got %d", domain.ErrInvalidConfig, c.Frames)
	case c.Width < minWidth || c.Height < minHeight:
		return fmt.Errorf("%w: size must be at least %gx%g inches, got %gx%g",
			domain.ErrInvalidConfig, minWidth, minHeight, c.Width, c.Height)
	case strings.TrimSpace(c.GuidePath) == "":
		return fmt.Errorf("%w: guide path is empty", domain.ErrInvalidConfig)
	case len(c.Topics) == 0:
		return fmt.Errorf("%w: no topics selected", domain.ErrInvalidConfig)
	}
	for _, id := range c.Topics {
		if _, err := domain.LookupTopic(domain.TopicID(id)); err != nil {
			return err
		}
	}
	return nil
}
