package server

import "time"

// HTTPServerConfig holds the dashboard listener configuration
type HTTPServerConfig struct {
	Address      string `mapstructure:"address"       yaml:"address"`
	ReadTimeout  string `mapstructure:"read_timeout"  yaml:"read_timeout"`
	WriteTimeout string `mapstructure:"write_timeout" yaml:"write_timeout"`
	SessionTTL   string `mapstructure:"session_ttl"   yaml:"session_ttl"`
	CookieName   string `mapstructure:"cookie_name"   yaml:"cookie_name"`
}

func (cfg HTTPServerConfig) GetReadTimeout() time.Duration {
	return duration(cfg.ReadTimeout, 15*time.Second)
}

func (cfg HTTPServerConfig) GetWriteTimeout() time.Duration {
	return duration(cfg.WriteTimeout, 30*time.Second)
}

func (cfg HTTPServerConfig) GetSessionTTL() time.Duration {
	return duration(cfg.SessionTTL, 12*time.Hour)
}
