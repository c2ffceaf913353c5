package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mwantia/gauchogo/pkg/db/migrations"
	"github.com/mwantia/gauchogo/pkg/db/store"
	"github.com/spf13/cobra"

	config "github.com/mwantia/gauchogo/internal/config/server"
)

func NewDatabaseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Manage the course database",
		Long: `Manage the optional SQLite course database.

The database holds the course catalog (courses and their per-quarter
offerings). When it exists, the Academics page reads from it instead of
the courses CSV.`,
	}

	cmd.PersistentFlags().String("sqlite", "", "course database file (default from configuration)")

	cmd.AddCommand(newMigrateCommand())
	cmd.AddCommand(newStatusCommand())
	cmd.AddCommand(newRollbackCommand())
	cmd.AddCommand(newImportCommand())

	return cmd
}

// openStore opens the course database named by --sqlite or the
// configuration. create allows a missing file to be created.
func openStore(cmd *cobra.Command, create bool) (*store.SQLiteStore, error) {
	path, _ := cmd.Flags().GetString("sqlite")
	if path == "" {
		cfg, err := config.LoadServerConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load server configuration: %w", err)
		}
		path = cfg.Data.SQLite.Path
	}
	if path == "" {
		return nil, fmt.Errorf("no course database configured")
	}

	if _, err := os.Stat(path); err != nil {
		if !create {
			return nil, fmt.Errorf("course database '%s' does not exist, run 'gauchogo db migrate' first", path)
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	}

	s, err := store.NewSQLiteStore(store.SQLiteConfig{Path: path})
	if err != nil {
		return nil, err
	}
	if err := s.Connect(cmd.Context()); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("failed to connect to %s: %w", path, err)
	}
	return s, nil
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending migrations",
		Long:  "Create the course database if needed and apply every pending schema migration.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(cmd, true)
			if err != nil {
				return err
			}
			defer s.Close()

			count, err := migrations.NewMigrator(s.DB()).Migrate(cmd.Context())
			if err != nil {
				return err
			}

			cmd.Printf("Applied %d migration(s) to %s\n", count, s.Path())
			return nil
		},
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(cmd, false)
			if err != nil {
				return err
			}
			defer s.Close()

			statuses, err := migrations.NewMigrator(s.DB()).Status(cmd.Context())
			if err != nil {
				return err
			}

			for _, st := range statuses {
				state := "pending"
				if st.Applied {
					state = "applied"
				}
				cmd.Printf("%3d  %-8s %s\n", st.Version, state, st.Description)
			}

			if count, err := s.CountCourses(cmd.Context()); err == nil {
				cmd.Printf("\n%d course(s) in %s\n", count, s.Path())
			}
			return nil
		},
	}
}

func newRollbackCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rollback",
		Short: "Roll back the last applied migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(cmd, false)
			if err != nil {
				return err
			}
			defer s.Close()

			st, err := migrations.NewMigrator(s.DB()).Rollback(cmd.Context())
			if err != nil {
				return err
			}

			cmd.Printf("Rolled back migration %d (%s)\n", st.Version, st.Description)
			return nil
		},
	}
}
