package data

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/mwantia/gauchogo/internal/reference"
	"github.com/mwantia/gauchogo/pkg/db/store"
	"github.com/mwantia/gauchogo/pkg/log"
	gocache "github.com/patrickmn/go-cache"
)

// SearchLimit caps database search results.
const SearchLimit = 50

type LoaderConfig struct {
	CacheTTL time.Duration
	// Store is nil when no course database is available.
	Store store.CourseStore
	// StoreAdvisory explains why a configured database is not in use.
	StoreAdvisory *Advisory
}

// Loader reads the housing and course sources. It never returns errors:
// every failure becomes an Advisory on an empty Result, and failures are
// not cached so the next interaction reads again.
type Loader struct {
	log   log.LoggerService
	cache *gocache.Cache
	store store.CourseStore

	storeAdvisory *Advisory
}

func NewLoader(cfg LoaderConfig, logger log.LoggerService) *Loader {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = time.Hour
	}

	return &Loader{
		log:   logger,
		cache: gocache.New(ttl, 2*ttl),
		store: cfg.Store,

		storeAdvisory: cfg.StoreAdvisory,
	}
}

// HasDatabase reports whether the course database read path is enabled.
func (l *Loader) HasDatabase() bool {
	return l.store != nil
}

// StoreAdvisory returns the diagnostic for a course database that was
// configured but could not be used, or nil.
func (l *Loader) StoreAdvisory() *Advisory {
	if l.storeAdvisory == nil {
		return nil
	}
	a := *l.storeAdvisory
	return &a
}

// Flush drops every cached table.
func (l *Loader) Flush() {
	l.cache.Flush()
}

// CourseSource decides which source the Academics page reads from: the
// database when configured, otherwise the CSV when it exists.
func (l *Loader) CourseSource(csvPath string) Source {
	if l.store != nil {
		return SourceDatabase
	}
	if fileExists(csvPath) {
		return SourceCSV
	}
	return SourceNone
}

func (l *Loader) Housing(path string) Result[Listing] {
	key := "housing|" + path
	if rows, ok := cached[Listing](l.cache, key); ok {
		return Result[Listing]{Rows: rows, Source: SourceCSV}
	}

	t, err := readTable(path)
	if err != nil {
		return failure[Listing](l.log, path, err, "Missing housing CSV: %s", "Could not read housing CSV: %s")
	}

	if missing := t.missing(housingRequired); len(missing) > 0 {
		l.log.Warn("Housing CSV '%s' is missing required columns %v", path, missing)
		return noData[Listing](AdvisoryError, fmt.Sprintf("%v: %s", ErrMissingColumns, strings.Join(missing, ", ")),
			"Housing CSV missing required columns: %s", strings.Join(missing, ", "))
	}

	rows := parseListings(t)
	l.log.Debug("Loaded %d listings from '%s'", len(rows), path)
	l.cache.Set(key, rows, gocache.DefaultExpiration)

	return Result[Listing]{Rows: slices.Clone(rows), Source: SourceCSV}
}

func (l *Loader) Courses(path string) Result[Course] {
	key := "courses|" + path
	if rows, ok := cached[Course](l.cache, key); ok {
		return Result[Course]{Rows: rows, Source: SourceCSV}
	}

	t, err := readTable(path)
	if err != nil {
		return failure[Course](l.log, path, err, "No course data found. Add %s or run your scraper.", "Could not read course CSV: %s")
	}

	if missing := t.missing(courseRequired); len(missing) > 0 {
		l.log.Warn("Course CSV '%s' is missing required columns %v", path, missing)
		return noData[Course](AdvisoryError, fmt.Sprintf("%v: %s", ErrMissingColumns, strings.Join(missing, ", ")),
			"CSV missing required columns: major, course_code, title, quarter")
	}

	rows := parseCourses(t)
	l.log.Debug("Loaded %d courses from '%s'", len(rows), path)
	l.cache.Set(key, rows, gocache.DefaultExpiration)

	return Result[Course]{Rows: slices.Clone(rows), Source: SourceCSV}
}

// CoursesFromDB reads the courses of every department belonging to major,
// joined with their offering in quarter. Courses without an offering row
// are kept.
func (l *Loader) CoursesFromDB(ctx context.Context, major, quarter string) Result[Course] {
	if l.store == nil {
		return Result[Course]{Source: SourceNone}
	}

	departments := reference.Departments(major)
	if len(departments) == 0 {
		return Result[Course]{Source: SourceNone}
	}

	key := "db|" + major + "|" + quarter
	if rows, ok := cached[Course](l.cache, key); ok {
		return Result[Course]{Rows: rows, Source: SourceDatabase}
	}

	dbRows, err := l.store.CoursesByDepartments(ctx, departments, quarter)
	if err != nil {
		l.log.Error("Course query for '%s' (%s) failed: %v", major, quarter, err)
		return noData[Course](AdvisoryError, err.Error(), "Database error: %v", err)
	}

	if len(dbRows) == 0 {
		return Result[Course]{Source: SourceDatabase}
	}

	rows := make([]Course, 0, len(dbRows))
	for _, r := range dbRows {
		rows = append(rows, courseFromRow(major, r))
	}

	l.cache.Set(key, rows, gocache.DefaultExpiration)
	return Result[Course]{Rows: slices.Clone(rows), Source: SourceDatabase}
}

// SearchDB runs a LIKE search across code, title and description.
func (l *Loader) SearchDB(ctx context.Context, query string) Result[Course] {
	if l.store == nil {
		return Result[Course]{Source: SourceNone}
	}

	found, err := l.store.SearchCourses(ctx, query, SearchLimit)
	if err != nil {
		l.log.Error("Course search for '%s' failed: %v", query, err)
		return noData[Course](AdvisoryError, err.Error(), "Database error: %v", err)
	}

	rows := make([]Course, 0, len(found))
	for _, m := range found {
		rows = append(rows, courseFromModel(m))
	}
	return Result[Course]{Rows: rows, Source: SourceDatabase}
}

func cached[T any](c *gocache.Cache, key string) ([]T, bool) {
	v, ok := c.Get(key)
	if !ok {
		return nil, false
	}
	rows, ok := v.([]T)
	if !ok {
		return nil, false
	}
	return slices.Clone(rows), true
}

func failure[T any](logger log.LoggerService, path string, err error, missingFormat, readFormat string) Result[T] {
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn("Source '%s' does not exist", path)
		return noData[T](AdvisoryWarning, err.Error(), missingFormat, path)
	}

	logger.Error("Failed to read '%s': %v", path, err)
	return noData[T](AdvisoryError, err.Error(), readFormat, path)
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
