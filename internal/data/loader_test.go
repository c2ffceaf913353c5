package data

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	config "github.com/mwantia/gauchogo/internal/config/server"
	"github.com/mwantia/gauchogo/pkg/db/models"
	"github.com/mwantia/gauchogo/pkg/db/store"
	"github.com/mwantia/gauchogo/pkg/log"
)

func newTestLogger() log.LoggerService {
	return log.NewLoggerServiceWithWriter("test", config.LogServerConfig{Level: "debug"}, io.Discard)
}

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

const housingCSV = ` Street ,Unit,Price,Bedrooms,Bathrooms,Max_Residents,Pet_Policy,Status,Utilities,Avail_Start,Avail_End,Listing_URL,Image_URL
6500 Del Playa Dr,A,"$2,000",2,1,4,Cats OK,available,Water,2025-09-01,2026-06-30,https://example.com/1,https://example.com/1.jpg
6600 Sabado Tarde Rd,,5000 installment,4.0,2,0,No pets,LEASED,,,,,
6700 Trigo Rd,B,call for price,Studio,,,,processing,,,,,
`

func TestHousingNormalization(t *testing.T) {
	l := NewLoader(LoaderConfig{}, newTestLogger())
	res := l.Housing(writeCSV(t, "housing.csv", housingCSV))

	if res.Advisory != nil {
		t.Fatalf("unexpected advisory: %+v", res.Advisory)
	}
	if len(res.Rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(res.Rows))
	}

	first := res.Rows[0]
	if first.Price == nil || *first.Price != 2000 {
		t.Errorf("price not coerced: %v", first.Price)
	}
	if first.Status != "Available" {
		t.Errorf("status not title-cased: %q", first.Status)
	}
	if first.MaxResidents == nil || *first.MaxResidents != 4 {
		t.Errorf("max residents: %v", first.MaxResidents)
	}
	if first.Availability != "2025-09-01 – 2026-06-30" {
		t.Errorf("availability not synthesized: %q", first.Availability)
	}
	if first.Address() != "6500 Del Playa Dr - A" {
		t.Errorf("address: %q", first.Address())
	}

	second := res.Rows[1]
	if second.Price == nil || *second.Price != 5000 {
		t.Errorf("installment suffix not stripped: %v", second.Price)
	}
	if second.Bedrooms != "4" {
		t.Errorf("bedroom count not canonical: %q", second.Bedrooms)
	}
	if second.Status != "Leased" {
		t.Errorf("status: %q", second.Status)
	}

	third := res.Rows[2]
	if third.Price != nil {
		t.Errorf("unparseable price should be missing, got %v", *third.Price)
	}
	if third.PriceText != "call for price" {
		t.Errorf("price text should be kept for display: %q", third.PriceText)
	}
	if third.Bedrooms != "Studio" {
		t.Errorf("non-numeric bedroom label lost: %q", third.Bedrooms)
	}
	if third.MaxResidents != nil {
		t.Errorf("missing max residents should be nil")
	}
}

func TestHousingColumnAliases(t *testing.T) {
	csv := "address,installment,beds,baths,included_utilities,link,availability\n" +
		"123 Embarcadero,$1500,1,1,All,https://example.com,Now\n"

	l := NewLoader(LoaderConfig{}, newTestLogger())
	res := l.Housing(writeCSV(t, "aliases.csv", csv))
	if len(res.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(res.Rows))
	}

	got := res.Rows[0]
	if got.Street != "123 Embarcadero" || got.Bedrooms != "1" || got.Bathrooms != "1" ||
		got.Utilities != "All" || got.ListingURL != "https://example.com" || got.Availability != "Now" {
		t.Errorf("aliases not mapped: %+v", got)
	}
	if got.Price == nil || *got.Price != 1500 {
		t.Errorf("installment alias not used for price: %v", got.Price)
	}
}

func TestHousingMissingFile(t *testing.T) {
	l := NewLoader(LoaderConfig{}, newTestLogger())
	res := l.Housing(filepath.Join(t.TempDir(), "nope.csv"))

	if !res.Empty() {
		t.Fatal("expected no data")
	}
	if res.Advisory == nil || res.Advisory.Level != AdvisoryWarning {
		t.Fatalf("expected warning advisory, got %+v", res.Advisory)
	}
}

func TestHousingMissingRequiredColumn(t *testing.T) {
	l := NewLoader(LoaderConfig{}, newTestLogger())
	res := l.Housing(writeCSV(t, "bad.csv", "price,beds\n100,1\n"))

	if !res.Empty() || res.Advisory == nil || res.Advisory.Level != AdvisoryError {
		t.Fatalf("expected error advisory and no rows, got %+v", res)
	}
}

func TestFailedLoadIsNotCached(t *testing.T) {
	l := NewLoader(LoaderConfig{}, newTestLogger())
	path := filepath.Join(t.TempDir(), "later.csv")

	if res := l.Housing(path); !res.Empty() {
		t.Fatal("expected no data before the file exists")
	}

	if err := os.WriteFile(path, []byte(housingCSV), 0644); err != nil {
		t.Fatal(err)
	}
	if res := l.Housing(path); len(res.Rows) != 3 {
		t.Errorf("expected retry to read the new file, got %d rows", len(res.Rows))
	}
}

func TestCacheHitMatchesFreshParse(t *testing.T) {
	path := writeCSV(t, "housing.csv", housingCSV)
	l := NewLoader(LoaderConfig{CacheTTL: time.Hour}, newTestLogger())

	fresh := l.Housing(path)
	fresh.Rows[0].Street = "mutated by caller"

	// Deleting the file proves the second read is served from the cache.
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}

	hit := l.Housing(path)
	if len(hit.Rows) != 3 {
		t.Fatalf("cache miss: got %d rows", len(hit.Rows))
	}
	if hit.Rows[0].Street != "6500 Del Playa Dr" {
		t.Errorf("cache returned caller-mutated data: %q", hit.Rows[0].Street)
	}

	uncached := NewLoader(LoaderConfig{}, newTestLogger())
	again := uncached.Housing(writeCSV(t, "housing.csv", housingCSV))
	if !reflect.DeepEqual(hit.Rows, again.Rows) {
		t.Error("cached rows differ from a fresh parse")
	}
}

const coursesCSV = `major,course_code,title,quarter,units
Statistics & Data Science,PSTAT 120A,Probability,winter,4
Statistics & Data Science,PSTAT 126,Regression,WINTER 2025,four
`

func TestCoursesSynthesizesOptionalColumns(t *testing.T) {
	l := NewLoader(LoaderConfig{}, newTestLogger())
	res := l.Courses(writeCSV(t, "courses.csv", coursesCSV))

	if len(res.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(res.Rows))
	}

	first := res.Rows[0]
	if first.Notes != "" || first.Status != "" {
		t.Errorf("optional columns should be empty: %+v", first)
	}
	if first.Quarter != "Winter" {
		t.Errorf("quarter not title-cased: %q", first.Quarter)
	}
	if first.Units == nil || *first.Units != 4 {
		t.Errorf("units: %v", first.Units)
	}
	if res.Rows[1].Quarter != "Winter 2025" {
		t.Errorf("quarter: %q", res.Rows[1].Quarter)
	}
	if res.Rows[1].Units != nil {
		t.Errorf("non-numeric units should be missing")
	}
}

func TestCoursesMissingRequiredColumns(t *testing.T) {
	l := NewLoader(LoaderConfig{}, newTestLogger())
	res := l.Courses(writeCSV(t, "courses.csv", "course_code,title\nPSTAT 120A,Probability\n"))

	if !res.Empty() || res.Advisory == nil {
		t.Fatalf("expected no data with advisory, got %+v", res)
	}
}

func TestCourseSource(t *testing.T) {
	l := NewLoader(LoaderConfig{}, newTestLogger())

	if got := l.CourseSource(filepath.Join(t.TempDir(), "missing.csv")); got != SourceNone {
		t.Errorf("CourseSource without files = %s", got)
	}
	if got := l.CourseSource(writeCSV(t, "c.csv", coursesCSV)); got != SourceCSV {
		t.Errorf("CourseSource with CSV = %s", got)
	}
}

func newSeededStore(t *testing.T) store.CourseStore {
	t.Helper()
	ctx := context.Background()

	s, err := store.NewSQLiteStore(store.SQLiteConfig{Path: filepath.Join(t.TempDir(), "gaucho.db")})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = s.Close() })
	if err := s.Connect(ctx); err != nil {
		t.Fatal(err)
	}
	if err := s.Migrate(ctx); err != nil {
		t.Fatal(err)
	}

	units := 4.0
	for _, c := range []*models.Course{
		{CourseCode: "PSTAT 120A", Title: "Probability", Units: &units, Description: "Random variables", Dept: "PSTAT"},
		{CourseCode: "PSTAT 126", Title: "Regression", Dept: "PSTAT"},
	} {
		if err := s.CreateCourse(ctx, c); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.CreateOffering(ctx, &models.CourseOffering{
		CourseCode: "PSTAT 120A", Quarter: "Winter 2025", Instructor: "Smith", Days: "MW", Time: "9:30", Location: "HSSB", Status: "open",
	}); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestCoursesFromDB(t *testing.T) {
	l := NewLoader(LoaderConfig{Store: newSeededStore(t)}, newTestLogger())
	ctx := context.Background()

	res := l.CoursesFromDB(ctx, "Statistics & Data Science", "Winter 2025")
	if res.Source != SourceDatabase || len(res.Rows) != 2 {
		t.Fatalf("unexpected result: %+v", res)
	}

	first := res.Rows[0]
	if first.Status != "Open" || first.Instructor != "Smith" || first.Schedule() != "MW · 9:30 · HSSB" {
		t.Errorf("offering not joined: %+v", first)
	}
	if first.Major != "Statistics & Data Science" || first.UnitsText != "4" {
		t.Errorf("course fields: %+v", first)
	}
	if res.Rows[1].Instructor != "" || res.Rows[1].Quarter != "" {
		t.Errorf("course without offering should have empty offering fields: %+v", res.Rows[1])
	}

	if res := l.CoursesFromDB(ctx, "Unknown Major", "Winter 2025"); !res.Empty() {
		t.Error("unknown major should produce no data")
	}
}

func TestCoursesFromDBWithoutStore(t *testing.T) {
	l := NewLoader(LoaderConfig{}, newTestLogger())
	if l.HasDatabase() {
		t.Fatal("loader without store should not report a database")
	}
	if res := l.CoursesFromDB(context.Background(), "Computer Science", "Winter 2025"); !res.Empty() {
		t.Error("expected no data")
	}
}

func TestSearchDB(t *testing.T) {
	l := NewLoader(LoaderConfig{Store: newSeededStore(t)}, newTestLogger())

	res := l.SearchDB(context.Background(), "random")
	if len(res.Rows) != 1 || res.Rows[0].Code != "PSTAT 120A" {
		t.Errorf("unexpected search result: %+v", res.Rows)
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		raw  string
		want *float64
	}{
		{"$2,450", ptr(2450)},
		{"1200.50/mo", ptr(1200.5)},
		{"4", ptr(4)},
		{"", nil},
		{"n/a", nil},
		{"1.2.3", nil},
	}

	for _, tt := range tests {
		got := ParseNumber(tt.raw)
		if (got == nil) != (tt.want == nil) || (got != nil && *got != *tt.want) {
			t.Errorf("ParseNumber(%q) = %v; want %v", tt.raw, got, tt.want)
		}
	}
}

func ptr(f float64) *float64 { return &f }
