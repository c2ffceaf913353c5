package server

import (
	"context"
	"fmt"

	"github.com/mwantia/gauchogo/internal/agent"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	config "github.com/mwantia/gauchogo/internal/config/server"
)

func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the gauchogo dashboard",
		Long: `Start the gauchogo dashboard.

Housing and course data are read from the configured CSV files. When the
configured SQLite course database exists it is used for the Academics page
instead of the courses CSV.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadServerConfig()
			if err != nil {
				return fmt.Errorf("failed to load server configuration: %w", err)
			}

			agent := agent.NewAgent(cfg)
			return agent.Serve(context.Background())
		},
	}

	cmd.Flags().String("address", "", "listen address (default :8501)")
	cmd.Flags().String("housing-csv", "", "housing listings CSV")
	cmd.Flags().String("courses-csv", "", "courses CSV")
	cmd.Flags().String("sqlite", "", "course database file")

	viper.BindPFlag("http.address", cmd.Flags().Lookup("address"))
	viper.BindPFlag("data.housing_csv", cmd.Flags().Lookup("housing-csv"))
	viper.BindPFlag("data.courses_csv", cmd.Flags().Lookup("courses-csv"))
	viper.BindPFlag("data.sqlite.path", cmd.Flags().Lookup("sqlite"))

	return cmd
}
