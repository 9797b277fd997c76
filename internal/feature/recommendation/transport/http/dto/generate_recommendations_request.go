// Package dto defines data transfer objects for the recommendation feature's HTTP transport layer.
package dto

// GenerateRecommendationsReq represents the request body for the
// /api/recommendations/generate-recommendations endpoint.
type GenerateRecommendationsReq struct {
	Topics     string `json:"topics" binding:"required"`
	Difficulty string `json:"difficulty" binding:"omitempty"`
}
