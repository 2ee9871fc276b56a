package config

import (
	"github.com/spf13/viper"
)

// Config represents the sweeper configuration
type Config struct {
	// Filter settings
	Extensions []string `mapstructure:"extensions"` // target file extensions, with leading dot (".py")
	Exclude    []string `mapstructure:"exclude"`    // folder name substrings to skip

	// Policy settings
	OnlyInspect bool `mapstructure:"only_inspect"` // never rewrite, report only
	Verbose     bool `mapstructure:"verbose"`      // report every offending line
	SafeMode    bool `mapstructure:"safe_mode"`    // confirm each file before rewrite

	// Report settings
	ReportFormat string `mapstructure:"report_format"` // json, txt, md (empty = console)
	OutputFile   string `mapstructure:"output_file"`   // report output path
}

// LoadConfig loads configuration from environment variables and defaults
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("extensions", []string{".py"})
	v.SetDefault("exclude", []string{"site-packages", "node_modules", ".git", "venv", ".env", ".vscode", ".idea"})
	v.SetDefault("only_inspect", false)
	v.SetDefault("verbose", false)
	v.SetDefault("safe_mode", false)
	v.SetDefault("report_format", "")
	v.SetDefault("output_file", "")

	// Read environment variables
	v.SetEnvPrefix("CRSWEEP")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// IsTargetExtension reports whether ext (including the leading dot) is one
// of the configured target extensions. Comparison is exact and case-sensitive.
func (c *Config) IsTargetExtension(ext string) bool {
	for _, e := range c.Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Mode returns the run mode label used in summaries and reports.
func (c *Config) Mode() string {
	if c.OnlyInspect {
		return "inspect"
	}
	return "clean"
}
