package filter

import (
	"sort"
	"strings"

	"github.com/mwantia/gauchogo/internal/data"
)

// CourseStatuses are the statuses offered by the Classes tab.
var CourseStatuses = []string{"Open", "Mixed", "Full"}

// CourseSelection filters the Classes tab. Empty fields do not filter.
type CourseSelection struct {
	Major    string
	Quarter  string
	Statuses []string
	MaxUnits *float64
}

func (s CourseSelection) IsEmpty() bool {
	return s.Major == "" && s.Quarter == "" && len(s.Statuses) == 0 && s.MaxUnits == nil
}

func Courses(rows []data.Course, sel CourseSelection) []data.Course {
	out := make([]data.Course, 0, len(rows))
	if sel.IsEmpty() {
		return append(out, rows...)
	}

	statuses := make(map[string]bool, len(sel.Statuses))
	for _, s := range sel.Statuses {
		statuses[data.Fold(s)] = true
	}

	for _, row := range rows {
		if sel.Major != "" && data.Fold(row.Major) != data.Fold(sel.Major) {
			continue
		}
		if sel.Quarter != "" && !QuarterMatches(row.Quarter, sel.Quarter) {
			continue
		}
		if len(statuses) > 0 && !statuses[data.Fold(row.Status)] {
			continue
		}
		if !WithinCeiling(row.Units, sel.MaxUnits) {
			continue
		}
		out = append(out, row)
	}

	return out
}

// QuarterMatches compares a row quarter with a "<Season> <Year>" label.
// Rows that carry a year must match the full label; season-only rows
// match on season.
func QuarterMatches(rowQuarter, label string) bool {
	row := strings.Fields(data.TitleCase(rowQuarter))
	want := strings.Fields(data.TitleCase(label))
	if len(row) == 0 || len(want) == 0 {
		return false
	}

	if len(row) == 1 {
		return row[0] == want[0]
	}
	return strings.Join(row, " ") == strings.Join(want, " ")
}

// Season returns the first word of a quarter label ("Winter 2025" -> "Winter").
func Season(label string) string {
	fields := strings.Fields(data.TitleCase(label))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Stats summarises a course table for the Classes tab header.
type Stats struct {
	Total    int
	Open     int
	Full     int
	Mixed    int
	AvgUnits float64
}

func CourseStats(rows []data.Course) Stats {
	stats := Stats{Total: len(rows)}

	var sum float64
	var counted int
	for _, row := range rows {
		switch data.Fold(row.Status) {
		case "open":
			stats.Open++
		case "full":
			stats.Full++
		case "mixed":
			stats.Mixed++
		}
		if row.Units != nil {
			sum += *row.Units
			counted++
		}
	}

	if counted > 0 {
		stats.AvgUnits = sum / float64(counted)
	}
	return stats
}

// StatusCount is one bar of the Analytics tab.
type StatusCount struct {
	Status string
	Count  int
}

// StatusCounts counts rows per status, most frequent first. Rows without
// a status are counted under "Unknown".
func StatusCounts(rows []data.Course) []StatusCount {
	counts := map[string]int{}
	var order []string
	for _, row := range rows {
		status := row.Status
		if status == "" {
			status = "Unknown"
		}
		if _, ok := counts[status]; !ok {
			order = append(order, status)
		}
		counts[status]++
	}

	out := make([]StatusCount, 0, len(order))
	for _, s := range order {
		out = append(out, StatusCount{Status: s, Count: counts[s]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Status < out[j].Status
	})
	return out
}
