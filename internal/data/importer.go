package data

import (
	"context"
	"fmt"
	"strings"

	"github.com/mwantia/gauchogo/pkg/db/models"
	"github.com/mwantia/gauchogo/pkg/db/store"
)

// ImportOptions controls how course rows are written to the database.
type ImportOptions struct {
	// Year is appended to season-only quarters ("Winter" -> "Winter 2025")
	// so the rows match the quarter labels offered by the dashboard.
	Year string
}

type ImportStats struct {
	Courses   int
	Offerings int
}

// ImportCourses writes course rows into the catalog. Each distinct course
// code is upserted once; every row with a quarter becomes an offering.
func ImportCourses(ctx context.Context, s store.CourseStore, rows []Course, opts ImportOptions) (ImportStats, error) {
	stats := ImportStats{}
	seen := make(map[string]bool, len(rows))

	for _, row := range rows {
		code := strings.TrimSpace(row.Code)
		if code == "" {
			continue
		}

		if !seen[code] {
			course := &models.Course{
				CourseCode:    code,
				Title:         row.Title,
				Units:         row.Units,
				Description:   firstNonEmpty(row.Description, row.Notes),
				Prerequisites: row.Prerequisites,
				Dept:          firstNonEmpty(row.Dept, department(code)),
			}
			if err := s.UpsertCourse(ctx, course); err != nil {
				return stats, fmt.Errorf("failed to import course '%s': %w", code, err)
			}
			seen[code] = true
			stats.Courses++
		}

		quarter := quarterLabel(row.Quarter, opts.Year)
		if quarter == "" {
			continue
		}

		offering := &models.CourseOffering{
			CourseCode: code,
			Quarter:    quarter,
			Instructor: row.Instructor,
			Days:       row.Days,
			Time:       row.Time,
			Location:   row.Location,
			Enrolled:   row.Enrolled,
			Capacity:   row.Capacity,
			Status:     row.Status,
		}
		if err := s.CreateOffering(ctx, offering); err != nil {
			return stats, fmt.Errorf("failed to import offering '%s' (%s): %w", code, quarter, err)
		}
		stats.Offerings++
	}

	return stats, nil
}

// department is the subject prefix of a course code ("PSTAT 120A" -> "PSTAT").
func department(code string) string {
	fields := strings.Fields(code)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToUpper(fields[0])
}

func quarterLabel(quarter, year string) string {
	quarter = TitleCase(quarter)
	year = strings.TrimSpace(year)
	if quarter == "" || year == "" || len(strings.Fields(quarter)) > 1 {
		return quarter
	}
	return quarter + " " + year
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
