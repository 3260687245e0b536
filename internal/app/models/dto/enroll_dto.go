package dto

import "time"

// EnrollInput is one course enrollment of a bulk enroll
type EnrollInput struct {
	CourseID   string     `json:"courseId" binding:"required,uuid" msg:"courseId must be a valid id"`
	EmittedAt  *time.Time `json:"emittedAt"`
	FinishedAt *time.Time `json:"finishedAt"`
	Bachelor   bool       `json:"bachelor"`
}

// BulkEnrollRequest enrolls one student into one or more courses
type BulkEnrollRequest struct {
	Enrolls []EnrollInput `json:"enrolls" binding:"required,min=1,dive" msg:"enrolls must contain at least one course"`
}

// CreateEnrollRequest creates a single enroll
type CreateEnrollRequest struct {
	StudentID  string     `json:"studentId" binding:"required,uuid" msg:"studentId must be a valid id"`
	CourseID   string     `json:"courseId" binding:"required,uuid" msg:"courseId must be a valid id"`
	EmittedAt  *time.Time `json:"emittedAt"`
	FinishedAt *time.Time `json:"finishedAt"`
	Bachelor   bool       `json:"bachelor"`
}

// UpdateEnrollRequest carries the mutable enroll fields; omitted fields are kept
type UpdateEnrollRequest struct {
	EmittedAt  *time.Time `json:"emittedAt"`
	FinishedAt *time.Time `json:"finishedAt"`
	Bachelor   *bool      `json:"bachelor"`
}
