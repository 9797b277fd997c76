// Package handler provides the HTTP handlers for the interview feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"interview_backend/internal/api"
	"interview_backend/internal/feature/interview/domain/entity"
	"interview_backend/internal/feature/interview/transport/http/dto"
)

// InterviewUsecase defines the usecase contract for the interview feature.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type InterviewUsecase interface {
	GenerateQuestions(ctx context.Context, topic string) ([]entity.Question, error)
	GenerateFeedback(ctx context.Context, question, answer string) (string, error)
}

// InterviewHandler handles HTTP requests for question generation and answer feedback.
type InterviewHandler struct {
	uc InterviewUsecase
}

// NewInterviewHandler creates a new InterviewHandler instance.
func NewInterviewHandler(uc InterviewUsecase) *InterviewHandler {
	return &InterviewHandler{uc: uc}
}

// GenerateQuestions produces interview questions for a topic.
//
// Endpoint: POST /api/interview/generate-questions
func (h *InterviewHandler) GenerateQuestions(c *gin.Context) {
	var req dto.GenerateQuestionsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("generate-questions request missing topic", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Topic is required to generate relevant questions"})
		return
	}

	questions, err := h.uc.GenerateQuestions(c.Request.Context(), req.Topic)
	if err != nil {
		// Upstream failures never leak provider responses or keys to the caller.
		slog.Error("question generation failed", "error", err, "topic", req.Topic)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to generate AI questions"})
		return
	}

	out := make([]api.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, api.QuestionResponse{
			Category: q.Category,
			Question: q.Question,
		})
	}
	c.JSON(http.StatusOK, out)
}

// GenerateResponse produces AI feedback for a candidate's answer.
//
// Endpoint: POST /api/interview/generate-response
func (h *InterviewHandler) GenerateResponse(c *gin.Context) {
	var req dto.GenerateResponseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("generate-response request incomplete", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Question and answer are required"})
		return
	}

	feedback, err := h.uc.GenerateFeedback(c.Request.Context(), req.Question, req.Answer)
	if err != nil {
		slog.Error("feedback generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to generate response"})
		return
	}

	c.JSON(http.StatusOK, api.FeedbackResponse{Feedback: feedback})
}
