// Package dto defines data transfer objects for the interview feature's HTTP transport layer.
package dto

// GenerateQuestionsReq represents the request body for the
// /api/interview/generate-questions endpoint.
type GenerateQuestionsReq struct {
	Topic string `json:"topic" binding:"required"`
}
