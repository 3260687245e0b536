package dto

import "github.com/academyadmin/academy-api/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" msg:"Please enter a valid email"`
	Password string `json:"password" binding:"required" msg:"Please enter a password"`
}

// LoginResponse is returned after a successful login
type LoginResponse struct {
	Name     string `json:"name" example:"John"`
	LastName string `json:"lastname" example:"Doe"`
	Email    string `json:"email" example:"admin@academy.com"`
	Token    string `json:"token"`
}

// MeResponse is the caller's admin summary
type MeResponse struct {
	ID       string          `json:"id"`
	Email    string          `json:"email"`
	IsActive bool            `json:"isActive"`
	Name     string          `json:"name"`
	LastName string          `json:"lastname"`
	Role     models.RoleType `json:"role"`
}

// NewMeResponse builds the summary of user
func NewMeResponse(user *models.User) *MeResponse {
	return &MeResponse{
		ID:       user.ID,
		Email:    user.Email,
		IsActive: user.IsActive,
		Name:     user.Name,
		LastName: user.LastName,
		Role:     user.Role,
	}
}
