// Package config loads offprint configuration from file, environment, and
// defaults.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

// Load reads configuration from the given file (or the default search
// paths when cfgFile is empty), layered over defaults and OFFPRINT_
// environment variables. A missing config file is not an error; a present
// but unreadable one is.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("scan.header_lines", defaults.Scan.HeaderLines)
	v.SetDefault("scan.max_number", defaults.Scan.MaxNumber)
	v.SetDefault("interpolate.max_gap", defaults.Interpolate.MaxGap)
	v.SetDefault("interpolate.tolerance", defaults.Interpolate.Tolerance)
	v.SetDefault("output.suffix", defaults.Output.Suffix)

	v.SetEnvPrefix("OFFPRINT")
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.offprint")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			// An explicitly named file must exist.
			if cfgFile != "" || !os.IsNotExist(err) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// WriteDefault writes the default configuration to the specified path.
func WriteDefault(path string) error {
	cfg := DefaultConfig()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# offprint configuration
# Values here bound the printed-page-number heuristic; the defaults match
# the tuned behavior and rarely need changing.

`)
	return os.WriteFile(path, append(header, data...), 0o644)
}
