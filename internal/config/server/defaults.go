package server

import "github.com/spf13/viper"

func GetServerDefault() BaseServerConfig {
	return BaseServerConfig{
		ShutdownTimeout: "10s",

		HTTP: HTTPServerConfig{
			Address:      ":8501",
			ReadTimeout:  "15s",
			WriteTimeout: "30s",
			SessionTTL:   "12h",
			CookieName:   "gauchogo_session",
		},

		Data: DataServerConfig{
			HousingCSV: "housing_listings.csv",
			CoursesCSV: "major_courses_by_quarter.csv",
			CacheTTL:   "1h",
			SQLite: DataSQLiteConfig{
				Path: "gauchoGPT.db",
			},
			Assets: DataAssetsConfig{
				Dir:               "assets",
				FallbackImage:     "ucsb_fallback.jpg",
				RemoteFallbackURL: "",
			},
		},

		Log: LogServerConfig{
			Level:      "INFO",
			TimeFormat: "2006-01-02 15:04:05",
			File:       "",
			NoColor:    false,
			JSON:       false,
			NoTerminal: false,
			AddSource:  false,
			Rotation: LogServerRotationConfig{
				MaxSize:    128,
				MaxBackups: 5,
				MaxAge:     16,
				Compress:   false,
			},
		},
	}
}

func setDefaults() {
	defaults := GetServerDefault()

	viper.SetDefault("shutdown_timeout", defaults.ShutdownTimeout)

	viper.SetDefault("http.address", defaults.HTTP.Address)
	viper.SetDefault("http.read_timeout", defaults.HTTP.ReadTimeout)
	viper.SetDefault("http.write_timeout", defaults.HTTP.WriteTimeout)
	viper.SetDefault("http.session_ttl", defaults.HTTP.SessionTTL)
	viper.SetDefault("http.cookie_name", defaults.HTTP.CookieName)

	viper.SetDefault("data.housing_csv", defaults.Data.HousingCSV)
	viper.SetDefault("data.courses_csv", defaults.Data.CoursesCSV)
	viper.SetDefault("data.cache_ttl", defaults.Data.CacheTTL)
	viper.SetDefault("data.sqlite.path", defaults.Data.SQLite.Path)
	viper.SetDefault("data.assets.dir", defaults.Data.Assets.Dir)
	viper.SetDefault("data.assets.fallback_image", defaults.Data.Assets.FallbackImage)
	viper.SetDefault("data.assets.remote_fallback_url", defaults.Data.Assets.RemoteFallbackURL)

	viper.SetDefault("log.level", defaults.Log.Level)
	viper.SetDefault("log.time_format", defaults.Log.TimeFormat)
	viper.SetDefault("log.file", defaults.Log.File)
	viper.SetDefault("log.no_color", defaults.Log.NoColor)
	viper.SetDefault("log.json", defaults.Log.JSON)
	viper.SetDefault("log.no_terminal", defaults.Log.NoTerminal)
	viper.SetDefault("log.add_source", defaults.Log.AddSource)
	viper.SetDefault("log.rotation.max_size", defaults.Log.Rotation.MaxSize)
	viper.SetDefault("log.rotation.max_backups", defaults.Log.Rotation.MaxBackups)
	viper.SetDefault("log.rotation.max_age", defaults.Log.Rotation.MaxAge)
	viper.SetDefault("log.rotation.compress", defaults.Log.Rotation.Compress)
}
