package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// configPaths are searched for gauchogo.yaml and dotenv files when no
// explicit --config is given.
var configPaths = []string{".", "./config", "/etc/gauchogo", "$HOME/.gauchogo"}

var envFiles = []string{".env", ".env.local"}

// loadEnvFiles loads every dotenv file found in dir. Missing files are
// skipped; values already present in the environment win.
func loadEnvFiles(dir string) {
	for _, name := range envFiles {
		_ = godotenv.Load(filepath.Join(dir, name))
	}
}

func initConfig(path string) error {
	if path != "" {
		viper.SetConfigFile(path)
		loadEnvFiles(filepath.Dir(path))
	} else {
		viper.SetConfigName("gauchogo")
		viper.SetConfigType("yaml")
		for _, dir := range configPaths {
			viper.AddConfigPath(dir)
			loadEnvFiles(dir)
		}
	}

	viper.SetEnvPrefix("GAUCHOGO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return nil
}
