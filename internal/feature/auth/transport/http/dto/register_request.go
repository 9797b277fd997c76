// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// RegisterReq represents the request body for the /api/auth/register endpoint.
// The confirmation password is length-checked on its own; it is not compared
// against Password, which mirrors the public contract of the API.
type RegisterReq struct {
	Name        string `json:"name" binding:"required,min=3"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	CnfPassword string `json:"cnfPassword" binding:"required,min=6"`
	ProfilePic  string `json:"profilePic" binding:"omitempty"`
}
