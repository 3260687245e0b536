package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin   RoleType = "ADMIN"
	RoleStudent RoleType = "STUDENT"
)

// EnrollCount is the `_count` block of entities owning enrolls
type EnrollCount struct {
	Enrolls int `json:"enrolls"`
}

// CourseCount is the `_count` block of an academy
type CourseCount struct {
	Courses int `json:"courses"`
}
