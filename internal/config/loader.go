package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds build parameters for one manifest run.
// Zero values mean "unspecified"; flags and defaults fill them in the CLI.
type Config struct {
	ProjectDir      string `json:"project_dir" yaml:"project_dir" toml:"project_dir"`
	OS              string `json:"os" yaml:"os" toml:"os"`
	DescriptionFile string `json:"description_file" yaml:"description_file" toml:"description_file"`
	Version         string `json:"version" yaml:"version" toml:"version"`
	Output          string `json:"output" yaml:"output" toml:"output"`
	Format          string `json:"format" yaml:"format" toml:"format"`
	MetricsFile     string `json:"metrics_file" yaml:"metrics_file" toml:"metrics_file"`
	StrictPlatform  bool   `json:"strict_platform" yaml:"strict_platform" toml:"strict_platform"`
	LogLevel        string `json:"log_level" yaml:"log_level" toml:"log_level"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}

// Merge returns base with every non-zero field of over applied on top.
func Merge(base, over Config) Config {
	out := base
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&out.ProjectDir, over.ProjectDir)
	set(&out.OS, over.OS)
	set(&out.DescriptionFile, over.DescriptionFile)
	set(&out.Version, over.Version)
	set(&out.Output, over.Output)
	set(&out.Format, over.Format)
	set(&out.MetricsFile, over.MetricsFile)
	set(&out.LogLevel, over.LogLevel)
	if over.StrictPlatform {
		out.StrictPlatform = true
	}
	return out
}
