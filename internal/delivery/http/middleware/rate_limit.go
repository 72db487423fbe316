package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"rajaprint-backend/pkg/logger"
	"rajaprint-backend/pkg/utils"
)

// RateLimitOptions configures the per-IP token buckets.
type RateLimitOptions struct {
	RPS           float64       // sustained requests per second per IP
	Burst         int           // bucket size
	CleanupPeriod time.Duration // how often idle visitors are swept
	VisitorTTL    time.Duration // idle time before a visitor is forgotten
	ExemptPaths   []string      // e.g. load balancer health checks
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles each client IP independently. Its sweeper goroutine
// lives until Shutdown or until the parent context ends.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	opts     RateLimitOptions
	exempt   map[string]struct{}
	cancel   context.CancelFunc
}

func NewRateLimiter(ctx context.Context, opts RateLimitOptions) *RateLimiter {
	if opts.CleanupPeriod <= 0 {
		opts.CleanupPeriod = time.Minute
	}
	if opts.VisitorTTL <= 0 {
		opts.VisitorTTL = 3 * time.Minute
	}

	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		opts:     opts,
		exempt:   make(map[string]struct{}, len(opts.ExemptPaths)),
	}
	for _, p := range opts.ExemptPaths {
		rl.exempt[p] = struct{}{}
	}

	ctx, rl.cancel = context.WithCancel(ctx)
	go rl.sweep(ctx)
	return rl
}

// Middleware rejects requests over the caller's budget with 429 and a
// Retry-After hint.
func (rl *RateLimiter) Middleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := rl.exempt[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			ip := getClientIP(r)
			if wait, ok := rl.allow(ip); !ok {
				logger.WithContext(r.Context()).Warn().
					Str("ip", ip).
					Str("path", r.URL.Path).
					Msg("Rate limit exceeded")
				w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(wait)))
				utils.WriteError(w, http.StatusTooManyRequests, "Too many requests, please slow down")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// allow takes a token for ip. When none is available it returns how long
// the caller should wait.
func (rl *RateLimiter) allow(ip string) (time.Duration, bool) {
	limiter := rl.limiterFor(ip)

	now := time.Now()
	res := limiter.ReserveN(now, 1)
	if !res.OK() {
		return time.Second, false
	}
	if delay := res.DelayFrom(now); delay > 0 {
		res.CancelAt(now)
		return delay, false
	}
	return 0, true
}

func (rl *RateLimiter) limiterFor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rate.Limit(rl.opts.RPS), rl.opts.Burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	return v.limiter
}

func (rl *RateLimiter) sweep(ctx context.Context) {
	ticker := time.NewTicker(rl.opts.CleanupPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.forgetIdle(time.Now())
		case <-ctx.Done():
			return
		}
	}
}

func (rl *RateLimiter) forgetIdle(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, v := range rl.visitors {
		if now.Sub(v.lastSeen) > rl.opts.VisitorTTL {
			delete(rl.visitors, ip)
		}
	}
}

// Visitors is the number of client IPs currently tracked.
func (rl *RateLimiter) Visitors() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.visitors)
}

// Shutdown stops the sweeper goroutine.
func (rl *RateLimiter) Shutdown() {
	rl.cancel()
}

func retryAfterSeconds(wait time.Duration) int {
	s := int(math.Ceil(wait.Seconds()))
	if s < 1 {
		return 1
	}
	return s
}
