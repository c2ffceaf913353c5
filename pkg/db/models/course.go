package models

import "time"

// Course is one catalog entry, identified by its course code (e.g. "PSTAT 120A")
type Course struct {
	CourseCode    string `gorm:"column:course_code;primaryKey;type:text"`
	Title         string `gorm:"type:text;not null"`
	Units         *float64
	Description   string `gorm:"type:text"`
	Prerequisites string `gorm:"type:text"`
	Dept          string `gorm:"type:text;not null;index:idx_courses_dept"`

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships
	Offerings []CourseOffering `gorm:"foreignKey:CourseCode;references:CourseCode;constraint:OnDelete:CASCADE"`
}

func (Course) TableName() string {
	return "courses"
}
