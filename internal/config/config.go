/*
PURPOSE:
  Defines the configuration structure and loading logic for the calculator.
  Adheres to "Config IS Code" philosophy.

REQUIREMENTS:
  User-specified:
  - Allow configuration of input path, output path, inline dimensions and worker count.

  Implementation-discovered:
  - Needs to support YAML parsing.
  - Inline dimensions stay textual until the validator judges them.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine
  - Dependencies: gopkg.in/yaml.v3 (standard for Go config)

ERROR HANDLING:
  - Returns explicit error if config file is invalid.
  - Missing default config files fall back to defaults silently.

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - Defaults should be sensible (2 workers, console mode).
  - Config is passed by value; nothing mutates it after Resolve.

USAGE:
  cfg, err := config.Load("rectcalc.yaml")

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add to Config struct and update DefaultConfig().

RELATED FILES:
  - internal/config/resolve.go
  - internal/cli/run.go

MAINTENANCE:
  - Update when adding new tuning parameters.
*/

package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultCores is the worker pool width when none is configured.
const DefaultCores = 2

// DefaultFiles are searched, in order, when no config path is given.
var DefaultFiles = []string{"rectcalc.yaml", "rectcalc.yml"}

// Config represents the full configuration for one calculator run.
type Config struct {
	// Input is a .json file, a directory of .json files, or empty for inline runs.
	Input string `yaml:"input"`
	// Output is a directory for result files; empty selects console mode.
	Output string `yaml:"output"`
	// Length and Width are inline dimensions, validated like file values.
	Length string `yaml:"length"`
	Width  string `yaml:"width"`
	Cores  int    `yaml:"cores"`
	// LogFile receives WARN and above, rotated at 1 MiB.
	LogFile string `yaml:"log_file"`
	// Summary is an optional CSV file with one row per processed input.
	Summary string `yaml:"summary"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Cores:   DefaultCores,
		LogFile: "logs/rectcalc.log",
	}
}

// HasInline reports whether either inline dimension was supplied.
func (c Config) HasInline() bool {
	return strings.TrimSpace(c.Length) != "" || strings.TrimSpace(c.Width) != ""
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches DefaultFiles in order.
// If no file found, returns default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
	} else {
		found := false
		for _, name := range DefaultFiles {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name
				found = true
				break
			}
		}
		if !found {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
