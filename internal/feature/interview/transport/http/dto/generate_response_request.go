package dto

// GenerateResponseReq represents the request body for the
// /api/interview/generate-response endpoint.
type GenerateResponseReq struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}
