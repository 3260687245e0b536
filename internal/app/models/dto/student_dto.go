package dto

// CreateStudentRequest creates a student and its user row
type CreateStudentRequest struct {
	DNI      string `json:"dni" binding:"required,notblank" msg:"dni is required"`
	Email    string `json:"email" binding:"required,email" msg:"Please enter a valid email"`
	Password string `json:"password" binding:"omitempty,min=8" msg:"Please enter a valid password"`
	Name     string `json:"name" binding:"required,notblank" msg:"you must be type a valid name"`
	LastName string `json:"lastname"`
	Partner  bool   `json:"partner"`
}

// UpdateStudentRequest rewrites a student and its user row
type UpdateStudentRequest struct {
	DNI      string `json:"dni" binding:"required,notblank" msg:"dni is required"`
	Email    string `json:"email" binding:"required,email" msg:"Please enter a valid email"`
	Name     string `json:"name" binding:"required,notblank" msg:"you must be type a valid name"`
	LastName string `json:"lastname"`
	Partner  bool   `json:"partner"`
}
