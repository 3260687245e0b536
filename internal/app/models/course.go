package models

import "time"

// Course belongs to an academy and owns zero or more enrolls
type Course struct {
	ID          string     `json:"id" db:"id"`
	Name        string     `json:"name" db:"name"`
	Description string     `json:"description" db:"description"`
	EndDate     *time.Time `json:"endDate" db:"end_date"`
	Hours       int        `json:"hours" db:"hours"`
	AcademyID   string     `json:"academyId" db:"academy_id"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`

	Academy *AcademySummary `json:"academy,omitempty"`
	Count   *EnrollCount    `json:"_count,omitempty"`
}

// AcademySummary is the academy name nested inside a course
type AcademySummary struct {
	Name string `json:"name"`
}

// CourseSummary is the subset of course fields nested inside an enroll
type CourseSummary struct {
	ID          string          `json:"id,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Hours       int             `json:"hours,omitempty"`
	Academy     *AcademySummary `json:"academy,omitempty"`
}
