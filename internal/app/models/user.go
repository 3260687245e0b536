package models

import (
	"time"
)

// User defines the user model based on the 'users' table.
// Admins and students share this lineage.
type User struct {
	ID        string    `json:"id" db:"id" example:"6f1c2b9e-6f0a-4b53-9d7e-0f4a3b2c1d00"`
	Email     string    `json:"email" db:"email" example:"admin@academy.com"`
	Password  string    `json:"-" db:"password"`
	Name      string    `json:"name" db:"name" example:"John"`
	LastName  string    `json:"lastname" db:"last_name" example:"Doe"`
	DNI       *string   `json:"dni,omitempty" db:"dni" example:"30111222"`
	Role      RoleType  `json:"role" db:"role" example:"ADMIN"`
	IsActive  bool      `json:"isActive" db:"is_active" example:"true"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// UserSummary is the subset of user fields nested inside other entities
type UserSummary struct {
	Name     string  `json:"name"`
	LastName string  `json:"lastname"`
	Email    string  `json:"email,omitempty"`
	DNI      *string `json:"dni,omitempty"`
}
