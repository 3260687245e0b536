package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"userId" db:"user_id"`
	Partner   bool      `json:"partner" db:"partner"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	User    *User        `json:"user,omitempty"`
	Enrolls []Enroll     `json:"enrolls,omitempty"`
	Count   *EnrollCount `json:"_count,omitempty"`
}

// StudentSearch selects students by last name (case-insensitive) or exact dni
type StudentSearch struct {
	LastName string
	DNI      string
}

// IsEmpty reports whether no search key was supplied
func (s StudentSearch) IsEmpty() bool {
	return s.LastName == "" && s.DNI == ""
}
