package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/ehr/fhirquery/internal/platform/fhir"
)

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond float64
	BurstSize         int
}

// DefaultRateLimitConfig returns default rate limiting settings.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 50,
		BurstSize:         100,
	}
}

// limiterStore holds one limiter per client key.
type limiterStore struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	config   RateLimitConfig
}

func newLimiterStore(cfg RateLimitConfig) *limiterStore {
	return &limiterStore{
		limiters: make(map[string]*rate.Limiter),
		config:   cfg,
	}
}

func (s *limiterStore) get(key string) *rate.Limiter {
	s.mu.RLock()
	lim, ok := s.limiters[key]
	s.mu.RUnlock()
	if ok {
		return lim
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Another request may have created it between the locks.
	if lim, ok := s.limiters[key]; ok {
		return lim
	}
	lim = rate.NewLimiter(rate.Limit(s.config.RequestsPerSecond), s.config.BurstSize)
	s.limiters[key] = lim
	return lim
}

// retryAfter returns the whole seconds until lim regains a token at now, at
// least 1. It reads the token count without reserving.
func retryAfter(lim *rate.Limiter, now time.Time) int {
	limit := lim.Limit()
	if limit == rate.Inf || limit <= 0 {
		return 1
	}
	missing := 1 - lim.TokensAt(now)
	if missing <= 0 {
		return 1
	}
	secs := int(math.Ceil(missing / float64(limit)))
	if secs < 1 {
		secs = 1
	}
	return secs
}

// RateLimit limits requests per client IP and answers excess requests with
// 429 and a throttled OperationOutcome.
func RateLimit(cfg RateLimitConfig) echo.MiddlewareFunc {
	store := newLimiterStore(cfg)
	limitHeader := strconv.FormatFloat(cfg.RequestsPerSecond, 'f', -1, 64)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			lim := store.get(c.RealIP())
			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", limitHeader)

			now := time.Now()
			if !lim.AllowN(now, 1) {
				h.Set("Retry-After", strconv.Itoa(retryAfter(lim, now)))
				h.Set("X-RateLimit-Remaining", "0")
				return c.JSON(http.StatusTooManyRequests, fhir.NewOperationOutcome(
					fhir.IssueSeverityError,
					fhir.IssueTypeThrottled,
					"rate limit exceeded",
				))
			}
			return next(c)
		}
	}
}
