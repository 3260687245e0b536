package dto

// AcademyRequest creates or updates an academy
type AcademyRequest struct {
	Name        string `json:"name" binding:"required,notblank" msg:"name is required"`
	Description string `json:"description"`
}
