package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Defaults for application settings.
const (
	DefaultServerAddress = ":8080"
	DefaultMaxBodyBytes  = 1 << 20
	DefaultOutputFormat  = "console"
	EnvPrefix            = "WONPAY"
)

// Settings are the application settings read from wonpay.yaml and WONPAY_* variables.
type Settings struct {
	Server    ServerSettings `mapstructure:"server"`
	Logging   LoggingConfig  `mapstructure:"logging"`
	Output    OutputSettings `mapstructure:"output"`
	RatesFile string         `mapstructure:"rates_file"`
}

// ServerSettings configure the HTTP server.
type ServerSettings struct {
	Address      string        `mapstructure:"address"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	MaxBodyBytes int64         `mapstructure:"max_body_bytes"`
}

// OutputSettings configure report rendering.
type OutputSettings struct {
	Format    string `mapstructure:"format"`
	Directory string `mapstructure:"directory"`
}

// LoadSettings reads settings from path, or from wonpay.yaml in the working
// directory when path is empty. A missing default file is not an error.
// Every key can be overridden by an environment variable such as WONPAY_SERVER_ADDRESS.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.address", DefaultServerAddress)
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.max_body_bytes", DefaultMaxBodyBytes)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output_file", "")
	v.SetDefault("output.format", DefaultOutputFormat)
	v.SetDefault("output.directory", ".")
	v.SetDefault("rates_file", "")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading settings file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("wonpay")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading settings: %w", err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %w", err)
	}
	if s.Server.MaxBodyBytes <= 0 {
		s.Server.MaxBodyBytes = DefaultMaxBodyBytes
	}
	return &s, nil
}
