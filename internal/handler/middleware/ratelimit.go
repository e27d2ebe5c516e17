package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"numberpool/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter applies a per-client token bucket keyed by client IP. A janitor
// goroutine sweeps entries for idle clients so the map does not grow without
// bound.
type RateLimiter struct {
	mu           sync.Mutex
	entries      map[string]*limiterEntry
	rps          rate.Limit
	burst        int
	idleTTL      time.Duration
	cleanupEvery time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

type limiterEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

type Option func(*RateLimiter)

func WithIdleTTL(d time.Duration) Option {
	return func(r *RateLimiter) { r.idleTTL = d }
}

func WithCleanupEvery(d time.Duration) Option {
	return func(r *RateLimiter) { r.cleanupEvery = d }
}

func NewRateLimiter(cfg config.RateLimitConfig, opts ...Option) *RateLimiter {
	r := &RateLimiter{
		entries:      make(map[string]*limiterEntry),
		rps:          rate.Limit(cfg.RPS),
		burst:        cfg.Burst,
		idleTTL:      15 * time.Minute,
		cleanupEvery: 2 * time.Minute,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !r.get(c.ClientIP()).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func (r *RateLimiter) get(key string) *rate.Limiter {
	now := time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	if ent, ok := r.entries[key]; ok {
		ent.lastSeen = now
		return ent.lim
	}

	lim := rate.NewLimiter(r.rps, r.burst)
	r.entries[key] = &limiterEntry{lim: lim, lastSeen: now}
	return lim
}

// Start launches the janitor that evicts idle client entries.
func (r *RateLimiter) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.done = make(chan struct{})

	go r.run(ctx)
}

func (r *RateLimiter) Stop() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	<-r.done
}

func (r *RateLimiter) run(ctx context.Context) {
	defer close(r.done)

	ticker := time.NewTicker(r.cleanupEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Cleanup()
		}
	}
}

func (r *RateLimiter) Cleanup() {
	cutoff := time.Now().Add(-r.idleTTL)

	r.mu.Lock()
	defer r.mu.Unlock()

	for k, ent := range r.entries {
		if ent.lastSeen.Before(cutoff) {
			delete(r.entries, k)
		}
	}
}
