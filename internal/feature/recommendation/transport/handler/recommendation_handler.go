// Package handler provides the HTTP handlers for the recommendation feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"interview_backend/internal/api"
	"interview_backend/internal/feature/recommendation/transport/http/dto"
)

// RecommendationUsecase defines the usecase contract for the recommendation feature.
type RecommendationUsecase interface {
	GenerateRecommendations(ctx context.Context, topics, difficulty string) (string, error)
}

// RecommendationHandler handles HTTP requests for study recommendations.
type RecommendationHandler struct {
	uc RecommendationUsecase
}

// NewRecommendationHandler creates a new RecommendationHandler instance.
func NewRecommendationHandler(uc RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

// GenerateRecommendations produces study recommendations for the given topics.
//
// Endpoint: POST /api/recommendations/generate-recommendations
func (h *RecommendationHandler) GenerateRecommendations(c *gin.Context) {
	var req dto.GenerateRecommendationsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("generate-recommendations request missing topics", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Topics are required"})
		return
	}

	recommendations, err := h.uc.GenerateRecommendations(c.Request.Context(), req.Topics, req.Difficulty)
	if err != nil {
		slog.Error("recommendation generation failed", "error", err, "topics", req.Topics)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Error fetching recommendations"})
		return
	}

	c.JSON(http.StatusOK, api.RecommendationsResponse{Recommendations: recommendations})
}
