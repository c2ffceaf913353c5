package server

import "time"

// DataServerConfig holds the locations of the tabular sources and assets
type DataServerConfig struct {
	HousingCSV string `mapstructure:"housing_csv" yaml:"housing_csv"`
	CoursesCSV string `mapstructure:"courses_csv" yaml:"courses_csv"`
	CacheTTL   string `mapstructure:"cache_ttl"   yaml:"cache_ttl"`

	SQLite DataSQLiteConfig `mapstructure:"sqlite" yaml:"sqlite"`
	Assets DataAssetsConfig `mapstructure:"assets" yaml:"assets"`
}

// DataSQLiteConfig holds the optional course database configuration.
// An empty path or a missing file disables the database read path.
type DataSQLiteConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

type DataAssetsConfig struct {
	Dir               string `mapstructure:"dir"                 yaml:"dir"`
	FallbackImage     string `mapstructure:"fallback_image"      yaml:"fallback_image"`
	RemoteFallbackURL string `mapstructure:"remote_fallback_url" yaml:"remote_fallback_url"`
}

func (cfg DataServerConfig) GetCacheTTL() time.Duration {
	return duration(cfg.CacheTTL, time.Hour)
}
