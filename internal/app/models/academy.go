package models

import "time"

// Academy owns zero or more courses
type Academy struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	Courses []Course     `json:"courses,omitempty"`
	Count   *CourseCount `json:"_count,omitempty"`
}
