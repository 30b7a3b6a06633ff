package lint

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RuleConfig configures one rule: its severity and any rule-specific
// knobs (for example line-length's max).
type RuleConfig struct {
	Severity Severity       `yaml:"severity"`
	Options  map[string]any `yaml:"options,omitempty"`
}

// Config is the engine configuration loaded from a YAML file
// (conventionally .lintpipe.yaml).
type Config struct {
	Name  string                `yaml:"name,omitempty"`
	Rules map[string]RuleConfig `yaml:"rules,omitempty"`

	// Ignore lists glob patterns for paths the engine must not lint.
	Ignore []string `yaml:"ignore,omitempty"`
	// IgnoreFile names a file of additional patterns, one per line.
	IgnoreFile string `yaml:"ignore-file,omitempty"`
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	var config Config

	f, err := os.Open(path)
	if err != nil {
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil {
		return config, fmt.Errorf("parse %s: %w", path, err)
	}
	return config, nil
}

// WriteConfig marshals a configuration to path, replacing any existing
// file. Used by the init command to scaffold a project config.
func WriteConfig(path string, config Config) error {
	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(d); err != nil {
		return err
	}
	return nil
}

// Merge layers overrides on top of c: rule configs replace entries of
// the same name, ignore patterns append.
func (c Config) Merge(overrides Config) Config {
	out := c
	if overrides.Name != "" {
		out.Name = overrides.Name
	}
	if len(overrides.Rules) > 0 {
		merged := make(map[string]RuleConfig, len(c.Rules)+len(overrides.Rules))
		for name, rc := range c.Rules {
			merged[name] = rc
		}
		for name, rc := range overrides.Rules {
			merged[name] = rc
		}
		out.Rules = merged
	}
	out.Ignore = append(append([]string(nil), c.Ignore...), overrides.Ignore...)
	if overrides.IgnoreFile != "" {
		out.IgnoreFile = overrides.IgnoreFile
	}
	return out
}
