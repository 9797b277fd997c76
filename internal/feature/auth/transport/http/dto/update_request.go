package dto

// UpdateReq represents the request body for the /api/user/update endpoint.
// All fields are optional; nil fields are left unchanged by the update.
type UpdateReq struct {
	Name       *string `json:"name" binding:"omitempty,min=3"`
	Email      *string `json:"email" binding:"omitempty,email"`
	ProfilePic *string `json:"profilePic" binding:"omitempty"`
}
