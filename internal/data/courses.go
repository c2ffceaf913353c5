package data

import (
	"github.com/mwantia/gauchogo/pkg/db/models"
)

var courseRequired = [][]string{
	{"major"},
	{"course_code"},
	{"title"},
	{"quarter"},
}

func parseCourses(t *table) []Course {
	rows := make([]Course, 0, len(t.records))

	for _, rec := range t.records {
		unitsText := t.get(rec, "units")

		rows = append(rows, Course{
			Major:         t.get(rec, "major"),
			Code:          t.get(rec, "course_code"),
			Title:         t.get(rec, "title"),
			Quarter:       TitleCase(t.get(rec, "quarter")),
			Units:         ParseNumber(unitsText),
			UnitsText:     unitsText,
			Status:        TitleCase(t.get(rec, "status")),
			Notes:         t.get(rec, "notes"),
			Description:   t.get(rec, "description"),
			Prerequisites: t.get(rec, "prerequisites"),
			Dept:          t.get(rec, "dept", "department"),
			Instructor:    t.get(rec, "instructor"),
			Days:          t.get(rec, "days"),
			Time:          t.get(rec, "time"),
			Location:      t.get(rec, "location"),
			Enrolled:      ParseCount(t.get(rec, "enrolled")),
			Capacity:      ParseCount(t.get(rec, "capacity")),
		})
	}

	return rows
}

func courseFromRow(major string, row models.CourseRow) Course {
	c := Course{
		Major:         major,
		Code:          row.CourseCode,
		Title:         row.Title,
		Units:         row.Units,
		Description:   row.Description,
		Prerequisites: row.Prerequisites,
		Dept:          row.Dept,
		Instructor:    deref(row.Instructor),
		Days:          deref(row.Days),
		Time:          deref(row.Time),
		Location:      deref(row.Location),
		Enrolled:      row.Enrolled,
		Capacity:      row.Capacity,
		Status:        TitleCase(deref(row.Status)),
		Quarter:       TitleCase(deref(row.Quarter)),
		Notes:         row.Description,
	}
	if c.Units != nil {
		c.UnitsText = FormatNumber(*c.Units)
	}
	return c
}

func courseFromModel(m models.Course) Course {
	c := Course{
		Code:          m.CourseCode,
		Title:         m.Title,
		Units:         m.Units,
		Description:   m.Description,
		Prerequisites: m.Prerequisites,
		Dept:          m.Dept,
		Notes:         m.Description,
	}
	if c.Units != nil {
		c.UnitsText = FormatNumber(*c.Units)
	}
	return c
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return cleanCell(*s)
}
