package store

import (
	"context"

	"github.com/mwantia/gauchogo/pkg/db/models"
)

// CourseStore defines the interface for course catalog database operations
type CourseStore interface {
	// Lifecycle
	Connect(ctx context.Context) error
	Close() error
	Migrate(ctx context.Context) error
	Health(ctx context.Context) error
	Verify(ctx context.Context) error

	// Catalog reads
	CoursesByDepartments(ctx context.Context, departments []string, quarter string) ([]models.CourseRow, error)
	SearchCourses(ctx context.Context, query string, limit int) ([]models.Course, error)
	CountCourses(ctx context.Context) (int64, error)

	// Catalog writes, used by seeding and tests
	CreateCourse(ctx context.Context, course *models.Course) error
	UpsertCourse(ctx context.Context, course *models.Course) error
	CreateOffering(ctx context.Context, offering *models.CourseOffering) error
}
