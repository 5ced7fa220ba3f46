package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// CreateRateLimiters builds the two per-IP limiters: a sliding-window one
// for read traffic, and the blocking RateLimiter for schema commits, which
// hold a distributed lock while they run and get a tighter budget.
func (m *Middlewares) CreateRateLimiters() (generalLimiter, commitLimiter func(next http.Handler) http.Handler) {
	generalLimiter = httprate.LimitByIP(m.InternalConfig.App.MaxRequests, time.Second)
	commitLimiter = NewRateLimiter(m.InternalConfig.App.CommitRateLimit, time.Second, time.Minute).Limit
	return generalLimiter, commitLimiter
}
