package service

import "context"

// RateLimiter is the capability interface for request throttling. It is an
// injected collaborator: the core never owns limiter state itself.
type RateLimiter interface {
	// Allow reports whether the caller identified by key may proceed.
	// Implementations fail open on infrastructure errors.
	Allow(ctx context.Context, key string) (bool, error)
}
