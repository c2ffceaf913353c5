package models

import "time"

// CourseOffering is a per-quarter section of a Course
type CourseOffering struct {
	ID         uint   `gorm:"primaryKey"`
	CourseCode string `gorm:"column:course_code;type:text;not null;index:idx_offerings_course_quarter"`
	Quarter    string `gorm:"type:text;index:idx_offerings_course_quarter"` // e.g. "Winter 2025"

	Instructor string `gorm:"type:text"`
	Days       string `gorm:"type:text"`
	Time       string `gorm:"type:text"`
	Location   string `gorm:"type:text"`
	Enrolled   *int
	Capacity   *int
	Status     string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CourseOffering) TableName() string {
	return "course_offerings"
}

// CourseRow is the flattened result of joining courses with their offerings.
// Offering columns are nil when a course has no offering in the quarter.
type CourseRow struct {
	CourseCode    string
	Title         string
	Units         *float64
	Description   string
	Prerequisites string
	Dept          string
	Instructor    *string
	Days          *string
	Time          *string
	Location      *string
	Enrolled      *int
	Capacity      *int
	Status        *string
	Quarter       *string
}
