package server

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type BaseServerConfig struct {
	ShutdownTimeout string `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`

	HTTP HTTPServerConfig `mapstructure:"http" yaml:"http"`
	Data DataServerConfig `mapstructure:"data" yaml:"data"`
	Log  LogServerConfig  `mapstructure:"log"  yaml:"log"`
}

func LoadServerConfig() (*BaseServerConfig, error) {
	cfg := &BaseServerConfig{}

	setDefaults()

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}

// duration parses value and falls back when it is empty or malformed.
func duration(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func (cfg *BaseServerConfig) GetShutdownTimeout() time.Duration {
	return duration(cfg.ShutdownTimeout, 60*time.Second)
}
