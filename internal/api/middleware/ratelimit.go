package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

// ipLimiter applies a token bucket per client IP and periodically evicts
// idle entries so the map does not grow without bound.
type ipLimiter struct {
	limit rate.Limit
	burst int
	mu    sync.Mutex
	byIP  map[string]*limiterEntry
	hits  uint64
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newIPLimiter(rps float64, burst int) *ipLimiter {
	if rps <= 0 || burst <= 0 {
		return nil
	}
	return &ipLimiter{
		limit: rate.Limit(rps),
		burst: burst,
		byIP:  make(map[string]*limiterEntry),
	}
}

func (l *ipLimiter) allow(ip string, now time.Time) bool {
	if l == nil || ip == "" {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.byIP[ip]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.byIP[ip] = e
	}
	e.lastSeen = now
	allowed := e.limiter.AllowN(now, 1)

	l.hits++
	if l.hits%512 == 0 {
		cutoff := now.Add(-limiterIdleTTL)
		for ip, e := range l.byIP {
			if e.lastSeen.Before(cutoff) {
				delete(l.byIP, ip)
			}
		}
	}

	return allowed
}

// LoginRateLimit throttles requests per client IP. It guards the login
// endpoint against credential stuffing; guarded routes do not need it.
func LoginRateLimit(rps float64, burst int) echo.MiddlewareFunc {
	limiter := newIPLimiter(rps, burst)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.allow(c.RealIP(), time.Now()) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many login attempts")
			}
			return next(c)
		}
	}
}
