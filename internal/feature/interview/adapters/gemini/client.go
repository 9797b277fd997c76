// Package gemini provides a completion client backed by the Google Gemini API.
package gemini

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"

	"interview_backend/internal/feature/interview/usecase"
	"interview_backend/internal/shared/ratelimiter"
)

const (
	// DefaultModel is the Gemini model used when GEMINI_MODEL is not set.
	DefaultModel = "gemini-2.5-flash"
)

// GeminiCompleter generates text completions using the Google Gemini API.
type GeminiCompleter struct {
	client  *genai.Client
	model   string
	limiter ratelimiter.RateLimiterInterface
}

// Compile-time check that GeminiCompleter implements Completer.
var _ usecase.Completer = (*GeminiCompleter)(nil)

// NewGeminiCompleter creates a GeminiCompleter using application default credentials.
// Requires GOOGLE_GENAI_USE_VERTEXAI, GOOGLE_CLOUD_PROJECT and GOOGLE_CLOUD_LOCATION
// (or GEMINI_API_KEY) to be configured in the environment.
// The limiter, when non-nil, throttles calls to stay inside the upstream quota.
func NewGeminiCompleter(ctx context.Context, limiter ratelimiter.RateLimiterInterface) (*GeminiCompleter, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = DefaultModel
	}
	return &GeminiCompleter{client: client, model: model, limiter: limiter}, nil
}

// Complete sends the prompt to the model and returns the raw text response.
func (g *GeminiCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	if g.limiter != nil {
		g.limiter.WaitIfNeeded()
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}
	return resp.Text(), nil
}
