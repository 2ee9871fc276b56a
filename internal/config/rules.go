package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rules is an optional YAML rules file overriding the filter lists:
//
//	extensions:
//	  - .py
//	  - .sh
//	exclude:
//	  - node_modules
//	  - .git
type Rules struct {
	Extensions []string `yaml:"extensions"`
	Exclude    []string `yaml:"exclude"`
}

// LoadRules loads a rules file from path
func LoadRules(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}

	return &rules, nil
}

// Apply overrides the config filter lists with any non-empty list from rules.
func (c *Config) Apply(r *Rules) {
	if r == nil {
		return
	}
	if len(r.Extensions) > 0 {
		c.Extensions = r.Extensions
	}
	if len(r.Exclude) > 0 {
		c.Exclude = r.Exclude
	}
}
