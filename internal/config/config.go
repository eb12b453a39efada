// Package config loads logger configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/philipp01105/synclog/core"
	"github.com/philipp01105/synclog/formatter"
	"github.com/philipp01105/synclog/logger"
)

// ErrUnknownColor is returned for a color that is neither a known name nor
// an escape sequence
var ErrUnknownColor = errors.New("unknown color")

var namedColors = map[string]string{
	"white":         formatter.ColorWhite,
	"green":         formatter.ColorGreen,
	"yellow":        formatter.ColorYellow,
	"red":           formatter.ColorRed,
	"cyan":          formatter.ColorCyan,
	"underline":     formatter.StyleUnderline,
	"underline-red": formatter.StyleUnderline + formatter.ColorRed,
}

// FileConfig is the layout of a configuration file. Unset fields keep the
// logger defaults.
//
//	level: WARN
//	console: false
//	files: [app.log, audit.log]
//	names: {error: FAIL}
//	colors: {trace: cyan}
type FileConfig struct {
	Level   string            `yaml:"level"`
	Console *bool             `yaml:"console"`
	Files   []string          `yaml:"files"`
	Names   map[string]string `yaml:"names"`
	Colors  map[string]string `yaml:"colors"`
}

// LoadFile reads a YAML configuration file
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &fc, nil
}

// Apply copies the file settings onto cfg
func (f *FileConfig) Apply(cfg *logger.Config) error {
	if f.Level != "" {
		level, err := core.ParseLevel(f.Level)
		if err != nil {
			return fmt.Errorf("invalid level: %w", err)
		}
		cfg.SetLevel(level)
	}
	if f.Console != nil {
		cfg.SetConsole(*f.Console)
	}
	for _, path := range f.Files {
		cfg.AddFile(path)
	}

	for key, name := range f.Names {
		level, err := core.ParseLevel(key)
		if err != nil {
			return fmt.Errorf("invalid names entry: %w", err)
		}
		cfg.SetLevelName(level, name)
	}
	for key, color := range f.Colors {
		level, err := core.ParseLevel(key)
		if err != nil {
			return fmt.Errorf("invalid colors entry: %w", err)
		}
		seq, err := resolveColor(color)
		if err != nil {
			return err
		}
		cfg.SetColor(level, seq)
	}

	return cfg.Validate()
}

// Load reads path and applies it on top of base. A nil base means
// logger.NewConfig().
func Load(path string, base *logger.Config) (*logger.Config, error) {
	fc, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	if base == nil {
		base = logger.NewConfig()
	}
	if err := fc.Apply(base); err != nil {
		return nil, err
	}
	return base, nil
}

func resolveColor(color string) (string, error) {
	if strings.HasPrefix(color, "\033[") {
		return color, nil
	}
	if seq, ok := namedColors[strings.ToLower(color)]; ok {
		return seq, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownColor, color)
}
