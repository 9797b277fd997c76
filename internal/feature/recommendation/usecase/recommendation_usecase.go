// Package usecase implements the business logic for the recommendation feature.
package usecase

import (
	"context"
	"fmt"
)

// recommendationsPromptTemplate asks the model for study material on the given topics.
const recommendationsPromptTemplate = "Give me study recommendations, resources, and practice questions for the following topics: %s. Difficulty level: %s. Provide links if possible."

// defaultDifficulty is used when the caller does not specify one.
const defaultDifficulty = "mixed"

// Completer generates a text completion for a prompt.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// recommendationUsecase produces study recommendations for interview topics.
type recommendationUsecase struct {
	ai Completer
}

// NewRecommendationUsecase creates a new recommendationUsecase instance.
func NewRecommendationUsecase(ai Completer) *recommendationUsecase {
	return &recommendationUsecase{ai: ai}
}

// GenerateRecommendations returns free-text study recommendations for the topics.
func (u *recommendationUsecase) GenerateRecommendations(ctx context.Context, topics, difficulty string) (string, error) {
	if topics == "" {
		return "", fmt.Errorf("topics are required")
	}
	if difficulty == "" {
		difficulty = defaultDifficulty
	}

	prompt := fmt.Sprintf(recommendationsPromptTemplate, topics, difficulty)
	recommendations, err := u.ai.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("recommendation generation failed for %q: %w", topics, err)
	}
	return recommendations, nil
}
