package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config captures CLI options sourced from config files or flags.
type Config struct {
	Environment string `yaml:"environment"`
	Title       string `yaml:"title"`
	OutputDir   string `yaml:"output_dir"`
	Overwrite   bool   `yaml:"overwrite"`
	Verbose     bool   `yaml:"verbose"`
}

// DefaultTitle is used when neither the config file nor flags name a report.
const DefaultTitle = "Build & Test Report"

// Default returns the baseline configuration used when no flags or config file specify values.
func Default() Config {
	return Config{
		Title: DefaultTitle,
	}
}

// Load reads .buildreport.yml from root when present. Missing files are ignored.
func Load(root string) (Config, error) {
	cfg := Default()
	path := filepath.Join(root, ".buildreport.yml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}

	cfg = merge(cfg, fileCfg)
	return cfg, nil
}

func merge(base, override Config) Config {
	out := base

	if override.Environment != "" {
		out.Environment = override.Environment
	}
	if override.Title != "" {
		out.Title = override.Title
	}
	if override.OutputDir != "" {
		out.OutputDir = override.OutputDir
	}
	if override.Overwrite {
		out.Overwrite = true
	}
	if override.Verbose {
		out.Verbose = true
	}

	return out
}

// ApplyFlags mutates cfg by applying values from CLI flags when they are present.
func ApplyFlags(cfg *Config, flags FlagValues) {
	if flags.Environment.Set {
		cfg.Environment = flags.Environment.Value
	}
	if flags.Title.Set {
		cfg.Title = flags.Title.Value
	}
	if flags.OutputDir.Set {
		cfg.OutputDir = flags.OutputDir.Value
	}
	if flags.Overwrite.Set {
		cfg.Overwrite = flags.Overwrite.Value
	}
	if flags.Verbose.Set {
		cfg.Verbose = flags.Verbose.Value
	}
}

// FlagValues captures CLI flag state with knowledge of whether each flag was set explicitly.
type FlagValues struct {
	Environment StringFlag
	Title       StringFlag
	OutputDir   StringFlag
	Overwrite   BoolFlag
	Verbose     BoolFlag
}

// StringFlag represents a string flag and whether it was set.
type StringFlag struct {
	Value string
	Set   bool
}

// BoolFlag represents a bool flag and whether it was set.
type BoolFlag struct {
	Value bool
	Set   bool
}
