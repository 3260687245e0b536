package dto

import "time"

// CourseRequest creates or updates a course
type CourseRequest struct {
	Name        string     `json:"name" binding:"required,notblank" msg:"name is required"`
	Description string     `json:"description"`
	EndDate     *time.Time `json:"endDate"`
	Hours       int        `json:"hours" binding:"gte=0" msg:"hours must be a positive number"`
	AcademyID   string     `json:"academyId" binding:"required,uuid" msg:"academyId must be a valid id"`
}
