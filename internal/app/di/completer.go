// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"interview_backend/internal/feature/interview/adapters/gemini"
	interviewusecase "interview_backend/internal/feature/interview/usecase"
	"interview_backend/internal/platform/cache"
	"interview_backend/internal/shared/ratelimiter"
)

const (
	// completionRateLimit caps upstream model calls per minute.
	completionRateLimit = 30

	// completionCacheTTL is how long identical prompts are served from Redis.
	completionCacheTTL = time.Hour
)

// NewCompleter creates the completion client used by the AI proxy endpoints:
// a rate-limited Gemini client, wrapped in a Redis cache when rdb is non-nil.
func NewCompleter(ctx context.Context, rdb *redis.Client) (interviewusecase.Completer, error) {
	limiter := ratelimiter.NewRateLimiter(completionRateLimit, time.Minute)
	client, err := gemini.NewGeminiCompleter(ctx, limiter)
	if err != nil {
		return nil, err
	}
	if rdb == nil {
		return client, nil
	}
	return cache.NewCachingCompleter(rdb, completionCacheTTL, client, "completions"), nil
}
