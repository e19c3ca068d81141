package middleware

import (
	"math/rand"
	"time"

	"github.com/labstack/echo/v4"
)

// Latency injects a uniform random delay in [min, max] before every request,
// simulating network jitter. The delay is unconditional and not cancelable by
// the client; it carries no correctness obligation.
func Latency(min, max time.Duration) echo.MiddlewareFunc {
	if max < min {
		max = min
	}
	spread := max - min
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			delay := min
			if spread > 0 {
				delay += time.Duration(rand.Int63n(int64(spread) + 1))
			}
			time.Sleep(delay)
			return next(c)
		}
	}
}
