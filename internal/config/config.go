//Package config loads settings for the sdb front end.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

//Formats the front end can render a parsed expression in.
const (
	FormatSource = "source"
	FormatTree   = "tree"
)

//Config holds all settings for the sdb front end.
type Config struct {
	//Input is a source file path; empty means stdin.
	Input string `mapstructure:"input"`
	//Expr is an inline expression, mutually exclusive with Input.
	Expr string `mapstructure:"expr"`
	//Format is the output rendering: source or tree.
	Format string `mapstructure:"format"`
	//LogLevel names a zerolog level.
	LogLevel string `mapstructure:"log_level"`
}

//Load reads configuration from an optional file and the SDB_*
//environment. Callers overlaying flag values should Validate again.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("SDB")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("input", "")
	v.SetDefault("expr", "")
	v.SetDefault("format", FormatSource)
	v.SetDefault("log_level", "info")
}

//Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatSource, FormatTree:
	default:
		return fmt.Errorf("unknown format %q: want %s or %s", c.Format, FormatSource, FormatTree)
	}
	if c.Input != "" && c.Expr != "" {
		return fmt.Errorf("input and expr are mutually exclusive")
	}
	return nil
}
