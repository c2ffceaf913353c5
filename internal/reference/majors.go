package reference

import (
	"slices"
	"sort"
)

// Major groups the departments whose courses count toward it and the
// official requirement sheet.
type Major struct {
	Name        string
	Departments []string
	SheetURL    string
}

var majors = []Major{
	{"Statistics & Data Science", []string{"PSTAT"}, "https://www.pstat.ucsb.edu/undergraduate/majors-minors/stats-and-data-science-major"},
	{"Computer Science", []string{"CMPSC"}, "https://cs.ucsb.edu/education/undergraduate/current-students"},
	{"Economics", []string{"ECON"}, "https://econ.ucsb.edu/programs/undergraduate/majors"},
	{"Mathematics", []string{"MATH"}, "https://www.math.ucsb.edu/undergraduate/proposed-courses-study-plans"},
	{"Biology", []string{"MCDB", "EEMB"}, "https://ucsbcatalog.coursedog.com/programs/BSBIOSC"},
	{"Psychology", []string{"PSY"}, "https://psych.ucsb.edu/undergraduate/major-requirements"},
	{"Chemistry", []string{"CHEM"}, "https://undergrad.chem.ucsb.edu/academic-programs/chemistry-bs"},
	{"Physics", []string{"PHYS"}, "https://www.physics.ucsb.edu/academics/undergraduate/majors"},
	{"Philosophy", []string{"PHIL"}, "https://www.philosophy.ucsb.edu/undergraduate/undergraduate-major-philosophy"},
	{"English", []string{"ENGL"}, "https://www.english.ucsb.edu/undergraduate/for-majors/requirements/"},
}

// Majors returns the majors in display order. Nothing in the result
// aliases the package table.
func Majors() []Major {
	out := make([]Major, len(majors))
	for i, m := range majors {
		out[i] = m.clone()
	}
	return out
}

func (m Major) clone() Major {
	m.Departments = slices.Clone(m.Departments)
	return m
}

func DefaultMajor() string {
	return majors[0].Name
}

func LookupMajor(name string) (Major, bool) {
	for _, m := range majors {
		if m.Name == name {
			return m.clone(), true
		}
	}
	return Major{}, false
}

// Departments returns nil for unknown majors.
func Departments(major string) []string {
	m, ok := LookupMajor(major)
	if !ok {
		return nil
	}
	return m.Departments
}

// Quarters are the labels offered by the quarter selector.
var quarters = []string{"Winter 2025", "Spring 2025", "Fall 2024"}

func Quarters() []string {
	out := make([]string, len(quarters))
	copy(out, quarters)
	return out
}

func DefaultQuarter() string {
	return quarters[0]
}

// Link is a labelled outbound URL.
type Link struct {
	Label string
	URL   string
}

func sortedLinks(m map[string]string) []Link {
	out := make([]Link, 0, len(m))
	for label, url := range m {
		out = append(out, Link{Label: label, URL: url})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}
