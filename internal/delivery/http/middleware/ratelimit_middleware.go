package middleware

import (
	"log/slog"

	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// RateLimitMiddleware throttles the anonymous auth endpoints per client IP.
// The limiter itself lives behind the service.RateLimiter capability; this
// middleware only derives the key and maps a denial to the HTTP error.
type RateLimitMiddleware struct {
	limiter service.RateLimiter
	logger  *slog.Logger
}

// NewRateLimitMiddleware creates a new rate limit middleware
func NewRateLimitMiddleware(limiter service.RateLimiter, logger *slog.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		logger:  logger,
	}
}

// Handle rejects the request with RATE_LIMITED when the client's budget is spent.
func (m *RateLimitMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		key := c.RealIP() + ":" + c.Path()

		allowed, err := m.limiter.Allow(c.Request().Context(), key)
		if err != nil {
			// The limiter fails open; an error here is purely informational.
			m.logger.Warn("Rate limiter unavailable", slog.Any("error", err))
		}
		if !allowed {
			return domainerrors.ErrRateLimited
		}

		return next(c)
	}
}
