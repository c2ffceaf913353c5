package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/mwantia/gauchogo/pkg/db/migrations"
	"github.com/mwantia/gauchogo/pkg/db/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// SQLiteStore implements CourseStore using SQLite
type SQLiteStore struct {
	db   *gorm.DB
	path string
}

// DB returns the underlying GORM database instance
func (s *SQLiteStore) DB() *gorm.DB {
	return s.db
}

// Path returns the database file the store was opened with
func (s *SQLiteStore) Path() string {
	return s.path
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	Path     string
	LogLevel logger.LogLevel
}

// NewSQLiteStore creates a new SQLite-backed course store
func NewSQLiteStore(cfg SQLiteConfig) (*SQLiteStore, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	// Default to silent logging
	if cfg.LogLevel == 0 {
		cfg.LogLevel = logger.Silent
	}

	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: logger.Default.LogMode(cfg.LogLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	return &SQLiteStore{
		db:   db,
		path: cfg.Path,
	}, nil
}

// Connect initializes the database connection
func (s *SQLiteStore) Connect(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(1) // SQLite only supports 1 writer
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return sqlDB.PingContext(ctx)
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.Close()
}

// Migrate runs all pending versioned migrations
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := migrations.NewMigrator(s.db).Migrate(ctx)
	return err
}

// Health checks database connectivity
func (s *SQLiteStore) Health(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// catalogColumns lists what the read path selects from each table. A
// database built by another tool only has to carry these.
var catalogColumns = map[string][]string{
	"courses":          {"course_code", "title", "units", "description", "prerequisites", "dept"},
	"course_offerings": {"course_code", "instructor", "days", "time", "location", "enrolled", "capacity", "status", "quarter"},
}

// Verify pings the database and checks that the catalog tables and columns
// the read path needs are present. It never changes the schema.
func (s *SQLiteStore) Verify(ctx context.Context) error {
	if err := s.Health(ctx); err != nil {
		return fmt.Errorf("failed to reach database: %w", err)
	}

	m := s.db.WithContext(ctx).Migrator()
	for _, table := range []string{"courses", "course_offerings"} {
		if !m.HasTable(table) {
			return fmt.Errorf("missing table '%s'", table)
		}
		for _, column := range catalogColumns[table] {
			if !m.HasColumn(table, column) {
				return fmt.Errorf("missing column '%s.%s'", table, column)
			}
		}
	}
	return nil
}

// Catalog reads

func (s *SQLiteStore) CoursesByDepartments(ctx context.Context, departments []string, quarter string) ([]models.CourseRow, error) {
	var rows []models.CourseRow
	if len(departments) == 0 {
		return rows, nil
	}

	err := s.db.WithContext(ctx).
		Table("courses AS c").
		Select(`c.course_code, c.title, c.units, c.description, c.prerequisites, c.dept,
			o.instructor, o.days, o.time, o.location, o.enrolled, o.capacity, o.status, o.quarter`).
		Joins("LEFT JOIN course_offerings AS o ON c.course_code = o.course_code").
		Where("c.dept IN ?", departments).
		Where("(o.quarter = ? OR o.quarter IS NULL)", quarter).
		Order("c.course_code").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}

	return rows, nil
}

func (s *SQLiteStore) SearchCourses(ctx context.Context, query string, limit int) ([]models.Course, error) {
	var courses []models.Course

	query = strings.TrimSpace(query)
	if query == "" {
		return courses, nil
	}

	pattern := "%" + query + "%"
	q := s.db.WithContext(ctx).
		Where("course_code LIKE ? OR title LIKE ? OR description LIKE ?", pattern, pattern, pattern).
		Order("course_code")

	if limit > 0 {
		q = q.Limit(limit)
	}

	if err := q.Find(&courses).Error; err != nil {
		return nil, fmt.Errorf("failed to search courses: %w", err)
	}
	return courses, nil
}

func (s *SQLiteStore) CountCourses(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Course{}).Count(&count).Error
	return count, err
}

// Catalog writes

func (s *SQLiteStore) CreateCourse(ctx context.Context, course *models.Course) error {
	return s.db.WithContext(ctx).Create(course).Error
}

// UpsertCourse inserts the course or refreshes its catalog columns when
// the course code already exists.
func (s *SQLiteStore) UpsertCourse(ctx context.Context, course *models.Course) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "course_code"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "units", "description", "prerequisites", "dept", "updated_at"}),
	}).Create(course).Error
}

func (s *SQLiteStore) CreateOffering(ctx context.Context, offering *models.CourseOffering) error {
	return s.db.WithContext(ctx).Create(offering).Error
}
