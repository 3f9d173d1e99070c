package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

type bucket struct {
	count int
	start time.Time
}

// limiter counts requests per key in fixed windows. Expired buckets are
// swept at most once per window so idle clients do not accumulate.
type limiter struct {
	mu        sync.Mutex
	limit     int
	window    time.Duration
	buckets   map[string]*bucket
	lastSweep time.Time
}

func newLimiter(limit int, window time.Duration) *limiter {
	return &limiter{
		limit:     limit,
		window:    window,
		buckets:   make(map[string]*bucket),
		lastSweep: time.Now(),
	}
}

// allow records a request for key. It returns the remaining budget, or
// ok=false with the time left until the window resets.
func (l *limiter) allow(key string, now time.Time) (remaining int, retryAfter time.Duration, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) > l.window {
		l.sweep(now)
	}

	b, found := l.buckets[key]
	if !found || now.Sub(b.start) > l.window {
		b = &bucket{start: now}
		l.buckets[key] = b
	}
	if b.count >= l.limit {
		return 0, b.start.Add(l.window).Sub(now), false
	}
	b.count++
	return l.limit - b.count, 0, true
}

func (l *limiter) sweep(now time.Time) {
	for key, b := range l.buckets {
		if now.Sub(b.start) > l.window {
			delete(l.buckets, key)
		}
	}
	l.lastSweep = now
}

// RateLimiter allows limit requests per client IP in each fixed window and
// reports the remaining budget in X-RateLimit-Remaining.
func RateLimiter(limit int, window time.Duration) echo.MiddlewareFunc {
	l := newLimiter(limit, window)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			remaining, retryAfter, ok := l.allow(c.RealIP(), time.Now())
			if !ok {
				c.Response().Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())+1))
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			return next(c)
		}
	}
}
