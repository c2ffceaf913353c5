package data

// Listing is one housing unit as parsed from the housing CSV.
// Numeric fields are nil when the source value is missing or unparseable.
type Listing struct {
	Street       string
	Unit         string
	PriceText    string
	Price        *float64
	Bedrooms     string
	Bathrooms    string
	MaxResidents *int
	PetPolicy    string
	Status       string
	Utilities    string
	AvailStart   string
	AvailEnd     string
	Availability string
	ListingURL   string
	ImageURL     string
}

// Course is one course row, either from the courses CSV or from the
// catalog database joined with an offering for the selected quarter.
type Course struct {
	Major         string
	Code          string
	Title         string
	Quarter       string
	Units         *float64
	UnitsText     string
	Status        string
	Notes         string
	Description   string
	Prerequisites string
	Dept          string
	Instructor    string
	Days          string
	Time          string
	Location      string
	Enrolled      *int
	Capacity      *int
}

// Schedule joins the non-empty meeting fields of an offering.
func (c Course) Schedule() string {
	out := ""
	for _, part := range []string{c.Days, c.Time, c.Location} {
		if part == "" {
			continue
		}
		if out != "" {
			out += " · "
		}
		out += part
	}
	return out
}

type Source int

const (
	SourceNone Source = iota
	SourceCSV
	SourceDatabase
)

func (s Source) String() string {
	switch s {
	case SourceCSV:
		return "csv"
	case SourceDatabase:
		return "database"
	default:
		return "none"
	}
}

type AdvisoryLevel string

const (
	AdvisoryInfo    AdvisoryLevel = "info"
	AdvisorySuccess AdvisoryLevel = "success"
	AdvisoryWarning AdvisoryLevel = "warning"
	AdvisoryError   AdvisoryLevel = "error"
)

// Advisory is a short user-facing message describing why data is missing
// or where it came from.
type Advisory struct {
	Level   AdvisoryLevel
	Message string
	Detail  string
}

// Result is what every load returns. A result without rows is the
// "no data" sentinel; Advisory explains it when there is something to say.
type Result[T any] struct {
	Rows     []T
	Source   Source
	Advisory *Advisory
}

func (r Result[T]) Empty() bool {
	return len(r.Rows) == 0
}

func noData[T any](level AdvisoryLevel, detail, format string, args ...any) Result[T] {
	return Result[T]{
		Source: SourceNone,
		Advisory: &Advisory{
			Level:   level,
			Message: sprintf(format, args...),
			Detail:  detail,
		},
	}
}
