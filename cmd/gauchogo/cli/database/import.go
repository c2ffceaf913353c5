package database

import (
	"fmt"
	"io"

	"github.com/mwantia/gauchogo/internal/data"
	"github.com/mwantia/gauchogo/pkg/log"
	"github.com/spf13/cobra"

	config "github.com/mwantia/gauchogo/internal/config/server"
)

func newImportCommand() *cobra.Command {
	var year string

	cmd := &cobra.Command{
		Use:   "import <courses.csv>",
		Short: "Import a courses CSV into the database",
		Long: `Import a courses CSV (major, course_code, title, quarter, units, status,
notes, ...) into the course database. Existing courses are updated and
every row with a quarter is added as an offering.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(cmd, true)
			if err != nil {
				return err
			}
			defer s.Close()

			ctx := cmd.Context()
			if err := s.Migrate(ctx); err != nil {
				return fmt.Errorf("failed to migrate %s: %w", s.Path(), err)
			}

			logger := log.NewLoggerServiceWithWriter("import", config.LogServerConfig{Level: "WARN"}, io.Discard)
			res := data.NewLoader(data.LoaderConfig{}, logger).Courses(args[0])
			if res.Empty() {
				if res.Advisory != nil {
					return fmt.Errorf("%s", res.Advisory.Message)
				}
				return fmt.Errorf("%s contains no courses", args[0])
			}

			stats, err := data.ImportCourses(ctx, s, res.Rows, data.ImportOptions{Year: year})
			if err != nil {
				return err
			}

			cmd.Printf("Imported %d course(s) and %d offering(s) into %s\n", stats.Courses, stats.Offerings, s.Path())
			return nil
		},
	}

	cmd.Flags().StringVar(&year, "year", "", "year appended to season-only quarters (e.g. 2025)")

	return cmd
}
