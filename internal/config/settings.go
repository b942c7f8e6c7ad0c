package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. ROICALC_LOGGING_LEVEL.
const EnvPrefix = "ROICALC"

// Settings holds application settings, separate from analysis inputs.
type Settings struct {
	Logging    LoggingConfig `mapstructure:"logging"`
	Output     OutputConfig  `mapstructure:"output"`
	Server     ServerConfig  `mapstructure:"server"`
	Benchmarks string        `mapstructure:"benchmarks"` // optional override file
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console; empty picks by terminal
	OutputFile string `mapstructure:"output_file"` // optional file output
}

// OutputConfig holds report output options
type OutputConfig struct {
	Format    string `mapstructure:"format"`    // console, json, csv, html
	Directory string `mapstructure:"directory"` // where report files are written
}

// ServerConfig holds HTTP API options
type ServerConfig struct {
	Port           int   `mapstructure:"port"`
	MaxRequestBody int64 `mapstructure:"max_request_body"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.output_file", "")
	v.SetDefault("output.format", "console")
	v.SetDefault("output.directory", ".")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.max_request_body", 1<<20)
	v.SetDefault("benchmarks", "")
}

// LoadSettings reads settings from path (optional) with ROICALC_* environment
// overrides applied on top of the defaults.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading settings file %s: %w", path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %w", err)
	}
	if s.Server.Port <= 0 || s.Server.Port > 65535 {
		return nil, fmt.Errorf("server port must be between 1 and 65535, got %d", s.Server.Port)
	}
	return &s, nil
}
