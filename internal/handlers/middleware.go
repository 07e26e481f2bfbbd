package handlers

import (
	"log"
	"net/http"
	"time"

	"spellbound/internal/security"
)

// Middleware holds dependencies for middleware functions
type Middleware struct {
	limiter *security.RateLimiter
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(limiter *security.RateLimiter) *Middleware {
	return &Middleware{limiter: limiter}
}

// RateLimit rejects clients that exceed the per-IP request budget.
func (m *Middleware) RateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !m.limiter.Allow(security.GetClientIP(r)) {
			respondWithError(w, http.StatusTooManyRequests, "Too many requests", "", nil)
			return
		}
		next(w, r)
	}
}

// Logging middleware logs HTTP requests
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}
