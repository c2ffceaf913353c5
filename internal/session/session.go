package session

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

var (
	ErrEmptyCourseCode = errors.New("course code is empty")
	ErrUnitsOutOfRange = errors.New("units out of range")
)

const (
	MinUnits = 1
	MaxUnits = 8
)

// PlannedCourse is one entry of the quarter planner.
type PlannedCourse struct {
	Code  string
	Units int
}

// Load classifies a quarter's total units.
type Load int

const (
	LoadBelowMinimum Load = iota
	LoadTypical
	LoadHeavy
)

// ClassifyLoad applies the registrar's thresholds: under 12 units is below
// the full-time minimum, up to 16 is typical, anything more is heavy.
func ClassifyLoad(units int) Load {
	switch {
	case units < 12:
		return LoadBelowMinimum
	case units <= 16:
		return LoadTypical
	default:
		return LoadHeavy
	}
}

func (l Load) String() string {
	switch l {
	case LoadBelowMinimum:
		return "Below minimum (12 units)"
	case LoadTypical:
		return "Typical load (12-16 units)"
	default:
		return "Heavy load (>16 units)"
	}
}

// Level maps the load onto an advisory level for display.
func (l Load) Level() string {
	switch l {
	case LoadBelowMinimum:
		return "warning"
	case LoadTypical:
		return "success"
	default:
		return "error"
	}
}

// Session is the per-visitor state: navigation and the planner. All
// methods are safe for concurrent use since a browser may issue several
// requests at once.
type Session struct {
	ID string

	mu          sync.Mutex
	page        Page
	sidebarOpen bool
	planned     []PlannedCourse
}

func newSession(id string) *Session {
	return &Session{ID: id, page: PageHome}
}

func (s *Session) Page() Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// Navigate switches the current page and closes the sidebar.
func (s *Session) Navigate(p Page) {
	if !p.valid() {
		p = PageHome
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.page = p
	s.sidebarOpen = false
}

func (s *Session) SidebarOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sidebarOpen
}

func (s *Session) ToggleSidebar() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sidebarOpen = !s.sidebarOpen
	return s.sidebarOpen
}

// AddCourse appends a course to the planner.
func (s *Session) AddCourse(code string, units int) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return ErrEmptyCourseCode
	}
	if units < MinUnits || units > MaxUnits {
		return fmt.Errorf("%w: %d is not within %d-%d", ErrUnitsOutOfRange, units, MinUnits, MaxUnits)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.planned = append(s.planned, PlannedCourse{Code: code, Units: units})
	return nil
}

func (s *Session) ClearCourses() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.planned = nil
}

// Planned returns a copy of the planner in insertion order.
func (s *Session) Planned() []PlannedCourse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]PlannedCourse(nil), s.planned...)
}

func (s *Session) TotalUnits() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, c := range s.planned {
		total += c.Units
	}
	return total
}

func (s *Session) Load() Load {
	return ClassifyLoad(s.TotalUnits())
}
