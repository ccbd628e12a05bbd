package main

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"lambda/eval"
)

// Config holds the driver settings. Values come from an optional YAML
// file and are then overridden by command-line flags.
type Config struct {
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
	MaxDepth    int    `yaml:"max_depth"`
	CacheSize   int    `yaml:"cache_size"`
	NoColor     bool   `yaml:"no_color"`
	Verbose     bool   `yaml:"verbose"`
}

func DefaultConfig() Config {
	return Config{
		Prompt:    ">>> ",
		MaxDepth:  eval.DefaultMaxDepth,
		CacheSize: eval.DefaultCacheSize,
	}
}

// defaultConfigPath is ~/.lambdarc.yaml, or "" if there is no home.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lambdarc.yaml")
}

// LoadConfig reads path over the defaults. A missing file is only an
// error when required is set.
func LoadConfig(path string, required bool) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "failed to read config %s", path)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "failed to parse config %s", path)
	}
	if cfg.MaxDepth <= 0 || cfg.MaxDepth > eval.MaxDepthLimit {
		return cfg, errors.Errorf("config %s: max_depth must be between 1 and %d, got %d", path, eval.MaxDepthLimit, cfg.MaxDepth)
	}
	return cfg, nil
}
