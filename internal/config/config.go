// Package config resolves vendorsel settings from defaults, rc files,
// environment variables and bound command-line flags.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dotcommander/vendorsel/internal/cue"
	"github.com/dotcommander/vendorsel/internal/types"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to upper-cased keys for environment overrides,
// e.g. VENDORSEL_MODE.
const EnvPrefix = "VENDORSEL"

// ConfigFiles are the rc file names tried in the working directory, in order.
var ConfigFiles = []string{".vendorselrc.json", ".vendorselrc.yaml", ".vendorselrc.yml"}

// Config represents the vendorsel configuration
type Config struct {
	InputFormat string `mapstructure:"inputFormat" json:"inputFormat"`
	Format      string `mapstructure:"format" json:"format"`
	Output      string `mapstructure:"output" json:"output"`
	Mode        string `mapstructure:"mode" json:"mode"`
	Quiet       bool   `mapstructure:"quiet" json:"quiet"`
	Verbose     bool   `mapstructure:"verbose" json:"verbose"`
	Greet       bool   `mapstructure:"greet" json:"greet"`
	Urgent      bool   `mapstructure:"urgent" json:"urgent"`
	Name        string `mapstructure:"name" json:"name"`
	Time        string `mapstructure:"time" json:"time"`
}

// LoadConfig loads configuration from various sources
func LoadConfig() (*Config, error) {
	viper.SetDefault("inputFormat", "")
	viper.SetDefault("format", types.ReportMarkdown)
	viper.SetDefault("output", "")
	viper.SetDefault("mode", types.ModeStrict)
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("greet", false)
	viper.SetDefault("urgent", false)
	viper.SetDefault("name", "")
	viper.SetDefault("time", "")

	for _, path := range ConfigFiles {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
		break
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig checks the resolved values against the embedded CUE schema.
func validateConfig(config *Config) error {
	v := cue.NewValidator()
	if err := v.LoadSchemas(); err != nil {
		return err
	}

	errs, err := v.ValidateConfig(config.asMap())
	if err != nil {
		return err
	}
	if len(errs) == 0 {
		return nil
	}

	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}

func (c *Config) asMap() map[string]any {
	return map[string]any{
		"inputFormat": c.InputFormat,
		"format":      c.Format,
		"output":      c.Output,
		"mode":        c.Mode,
		"quiet":       c.Quiet,
		"verbose":     c.Verbose,
		"greet":       c.Greet,
		"urgent":      c.Urgent,
		"name":        c.Name,
		"time":        c.Time,
	}
}

// SaveConfig saves the configuration to a JSON rc file
func SaveConfig(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	jsonData, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}
