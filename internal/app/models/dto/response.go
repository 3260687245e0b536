package dto

// MessageResponse represents a plain message body
type MessageResponse struct {
	Message string `json:"message" example:"Logout successful"`
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
