// Package cache provides Redis-backed caching decorators.
package cache

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Completer generates a text completion for a prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// CachingCompleter decorates a Completer with Redis caching keyed by prompt.
// Identical prompts within the TTL are served from cache without an upstream
// call, which keeps repeated topic requests off the completion API quota.
type CachingCompleter struct {
	inner     Completer
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingCompleter decorates a Completer with Redis caching.
// If ttl is 0, it defaults to 1 hour. If namespace is empty, it uses "completions".
func NewCachingCompleter(rdb *redis.Client, ttl time.Duration, inner Completer, namespace string) *CachingCompleter {
	if ttl <= 0 {
		ttl = time.Hour
	}
	if namespace == "" {
		namespace = "completions"
	}
	return &CachingCompleter{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Complete retrieves a completion, checking cache first then falling back to
// the upstream model. Cache writes are best effort.
func (c *CachingCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Complete(ctx, prompt)
	}

	key := c.cacheKey(prompt)

	if cached, err := c.rdb.Get(ctx, key).Result(); err == nil && cached != "" {
		return cached, nil
	}

	out, err := c.inner.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}

	_ = c.rdb.Set(ctx, key, out, c.ttl).Err()
	return out, nil
}

// cacheKey derives a fixed-length Redis key from the prompt.
// Prompts carry user text, so they are hashed rather than escaped.
func (c *CachingCompleter) cacheKey(prompt string) string {
	return fmt.Sprintf("%s:%x", c.namespace, sha256.Sum256([]byte(prompt)))
}
