package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"proxypool-server/internal/interfaces/httpserver/responses"
)

// RateLimiter enforces a per-client request ceiling using one token
// bucket per client IP. Requests over the ceiling are rejected, never
// queued. Idle client entries are evicted after staleAfter.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientBucket

	limit rate.Limit
	burst int

	staleAfter time.Duration
	lastSweep  time.Time
}

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter builds a limiter allowing perMinute requests per client
// per minute with the given burst.
func NewRateLimiter(perMinute, burst int) *RateLimiter {
	return &RateLimiter{
		clients:    make(map[string]*clientBucket),
		limit:      rate.Limit(float64(perMinute) / 60.0),
		burst:      burst,
		staleAfter: 10 * time.Minute,
		lastSweep:  time.Now(),
	}
}

// Allow reports whether the given client may proceed right now.
func (r *RateLimiter) Allow(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if now.Sub(r.lastSweep) > r.staleAfter {
		for k, b := range r.clients {
			if now.Sub(b.lastSeen) > r.staleAfter {
				delete(r.clients, k)
			}
		}
		r.lastSweep = now
	}

	bucket, ok := r.clients[key]
	if !ok {
		bucket = &clientBucket{limiter: rate.NewLimiter(r.limit, r.burst)}
		r.clients[key] = bucket
	}
	bucket.lastSeen = now
	return bucket.limiter.Allow()
}

// Middleware rejects over-limit requests with 429 before they reach the
// handler.
func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !r.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				responses.Error("rate limit exceeded, try again later"))
			return
		}
		c.Next()
	}
}
