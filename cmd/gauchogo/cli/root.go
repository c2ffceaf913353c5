package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewRootCommand(info VersionInfo) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:           "gauchogo",
		Short:         "UCSB student dashboard",
		Long:          "gauchogo serves a dashboard for UCSB students: Isla Vista housing listings, course catalogs and a quarter planner, professor lookups, financial aid links and a Q&A page.",
		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(path)
		},
	}

	cmd.PersistentFlags().StringVar(&path, "config", "", "config file (default is ./gauchogo.yaml)")
	cmd.PersistentFlags().Bool("no-color", false, "disable coloured log output")
	cmd.PersistentFlags().Bool("log-json", false, "write logs as JSON")
	cmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log-file", "", "also write logs to this file (rotated)")

	viper.BindPFlag("log.level", cmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.no_color", cmd.PersistentFlags().Lookup("no-color"))
	viper.BindPFlag("log.json", cmd.PersistentFlags().Lookup("log-json"))
	viper.BindPFlag("log.file", cmd.PersistentFlags().Lookup("log-file"))

	cmd.Version = info.String()

	return cmd
}
