package middleware

import (
	"sync"
	"time"

	"eyesonplants/internal/errors"
	"eyesonplants/internal/handlers"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// Per-IP token buckets. Entries for quiet clients are dropped by a
// background sweep so the map does not grow without bound.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

const (
	sweepInterval = time.Minute
	staleAfter    = 3 * time.Minute
)

var (
	visitors = make(map[string]*visitor)
	mu       sync.RWMutex

	// Defaults suit a small deployment behind a single proxy; production
	// values come from SecurityConfig via RateLimiterWithConfig.
	requestsPerSecond = 10
	burstSize         = 20
)

// RateLimiter throttles requests per client IP using a token bucket. Over
// the limit the client gets the standard rate-limit error envelope.
func RateLimiter() echo.MiddlewareFunc {
	go sweepVisitors()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			limiter := getVisitor(getIP(c))
			if !limiter.Allow() {
				return handlers.SendError(c, errors.SystemRateLimitExceeded)
			}

			return next(c)
		}
	}
}

// RateLimiterWithConfig overrides the per-IP rate and burst before starting
// the limiter.
func RateLimiterWithConfig(rps int, burst int) echo.MiddlewareFunc {
	requestsPerSecond = rps
	burstSize = burst

	return RateLimiter()
}

func getVisitor(ip string) *rate.Limiter {
	mu.Lock()
	defer mu.Unlock()

	v, exists := visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(rate.Limit(requestsPerSecond), burstSize)
		visitors[ip] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// getIP prefers proxy-supplied headers over the connection address, so
// clients behind the load balancer are limited individually.
func getIP(c echo.Context) string {
	if xff := c.Request().Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}

	if xri := c.Request().Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	return c.RealIP()
}

func sweepVisitors() {
	for {
		time.Sleep(sweepInterval)
		dropStaleVisitors(time.Now())
	}
}

func dropStaleVisitors(now time.Time) {
	mu.Lock()
	defer mu.Unlock()

	for ip, v := range visitors {
		if now.Sub(v.lastSeen) > staleAfter {
			delete(visitors, ip)
		}
	}
}
