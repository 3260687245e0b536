package models

import "time"

// Enroll links a student to a course
type Enroll struct {
	ID         string     `json:"id" db:"id"`
	StudentID  string     `json:"studentId" db:"student_id"`
	CourseID   string     `json:"courseId" db:"course_id"`
	EmittedAt  time.Time  `json:"emittedAt" db:"emitted_at"`
	FinishedAt *time.Time `json:"finishedAt" db:"finished_at"`
	Bachelor   bool       `json:"bachelor" db:"bachelor"`
	CreatedAt  time.Time  `json:"createdAt" db:"created_at"`

	Course  *CourseSummary  `json:"course,omitempty"`
	Student *StudentSummary `json:"student,omitempty"`
}

// StudentSummary is the student nested inside an enroll
type StudentSummary struct {
	ID      string       `json:"id,omitempty"`
	Partner bool         `json:"partner"`
	User    *UserSummary `json:"user,omitempty"`
}

// Certificate is an enroll as shown by the public search. It carries only
// the course description and the holder's name and dni.
type Certificate struct {
	ID         string     `json:"id"`
	StudentID  string     `json:"studentId"`
	CourseID   string     `json:"courseId"`
	EmittedAt  time.Time  `json:"emittedAt"`
	FinishedAt *time.Time `json:"finishedAt"`
	Bachelor   bool       `json:"bachelor"`
	CreatedAt  time.Time  `json:"createdAt"`

	Course  CertificateCourse  `json:"course"`
	Student CertificateStudent `json:"student"`
}

// CertificateCourse is the course part of a certificate
type CertificateCourse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Hours       int    `json:"hours"`
}

// CertificateStudent wraps the certificate holder
type CertificateStudent struct {
	User CertificateHolder `json:"user"`
}

// CertificateHolder is the public identity of a certificate's student
type CertificateHolder struct {
	Name     string  `json:"name"`
	LastName string  `json:"lastname"`
	DNI      *string `json:"dni"`
}

// EnrollSearch selects enrolls by the student's last name (case-insensitive)
// or, when no last name is given, by exact dni
type EnrollSearch struct {
	LastName string
	DNI      string
}

// IsEmpty reports whether no search key was supplied
func (s EnrollSearch) IsEmpty() bool {
	return s.LastName == "" && s.DNI == ""
}

// EnrollUpdate carries the mutable enroll fields; nil fields are left unchanged
type EnrollUpdate struct {
	EmittedAt  *time.Time
	FinishedAt *time.Time
	Bachelor   *bool
}
