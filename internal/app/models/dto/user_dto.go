package dto

// CreateUserRequest is the admin signup body
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,notblank" msg:"you must be type a valid name"`
	LastName string `json:"lastname"`
	Email    string `json:"email" binding:"required,email" msg:"Please enter a valid email"`
	Password string `json:"password" binding:"required,min=8" msg:"Please enter a valid password"`
}

// UpdateUserRequest rewrites an admin's profile
type UpdateUserRequest struct {
	Name     string `json:"name" binding:"required,notblank" msg:"you must be type a valid name"`
	LastName string `json:"lastname"`
	Email    string `json:"email" binding:"required,email" msg:"Please enter a valid email"`
}
