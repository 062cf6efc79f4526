package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/httprate"
	"github.com/rs/zerolog"

	"github.com/veggierescue/veggierescue/internal/api/models"
)

// RateLimitConfig holds configuration for rate limiting.
type RateLimitConfig struct {
	// Requests per window
	RequestLimit int
	// Window duration
	WindowLength time.Duration
}

// Defaults when the environment provides nothing.
const (
	DefaultRequestLimit = 100
	DefaultWindowLength = 15 * time.Minute

	// sweepInterval throttles the stale-record sweep to once per 15 minutes
	// of wall-clock time.
	sweepInterval = 15 * time.Minute
)

// rateLimitRecord tracks one client address within the current window.
// Replaced, not incremented, once the window expires.
type rateLimitRecord struct {
	windowExpiry time.Time
	count        int
}

// RateLimiter is a per-client-address fixed-window request counter. The
// window resets on the first request after expiry, so it is approximate
// rather than strictly sliding. Stale records are purged opportunistically
// during request handling; there is no dedicated timer.
type RateLimiter struct {
	mu        sync.Mutex
	records   map[string]*rateLimitRecord
	limit     int
	window    time.Duration
	lastSweep time.Time
	log       zerolog.Logger

	now func() time.Time
}

// NewRateLimiter creates a rate limiter with the given configuration,
// falling back to 100 requests per 15 minutes.
func NewRateLimiter(cfg RateLimitConfig, log zerolog.Logger) *RateLimiter {
	limit := cfg.RequestLimit
	if limit <= 0 {
		limit = DefaultRequestLimit
	}
	window := cfg.WindowLength
	if window <= 0 {
		window = DefaultWindowLength
	}

	return &RateLimiter{
		records:   make(map[string]*rateLimitRecord),
		limit:     limit,
		window:    window,
		lastSweep: time.Now(),
		log:       log,
		now:       time.Now,
	}
}

// Middleware returns the gate handler. Allowed requests always carry the
// informative X-RateLimit-* headers; rejected requests additionally carry
// Retry-After with the remaining window time in seconds.
func (rl *RateLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			addr := clientAddr(r)
			allowed, remaining, expiry, retryAfter := rl.take(addr)

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(expiry.Unix(), 10))

			if !allowed {
				secs := int(math.Ceil(retryAfter.Seconds()))
				if secs < 1 {
					secs = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(secs))

				rl.log.Warn().
					Str("request_id", GetRequestID(r.Context())).
					Str("code", models.CodeRateLimit).
					Str("client_addr", addr).
					Int("retry_after_seconds", secs).
					Msg("rate limit exceeded")

				models.NewRateLimit(secs).Write(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// take records one request for the given address and reports whether it is
// allowed, the remaining budget, the window expiry, and the time until
// reset when rejected.
func (rl *RateLimiter) take(addr string) (allowed bool, remaining int, expiry time.Time, retryAfter time.Duration) {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	defer rl.sweepLocked(now)

	rec, ok := rl.records[addr]
	if !ok || now.After(rec.windowExpiry) {
		// First request from this address in the current epoch.
		rec = &rateLimitRecord{windowExpiry: now.Add(rl.window), count: 1}
		rl.records[addr] = rec
		return true, rl.limit - rec.count, rec.windowExpiry, 0
	}

	if rec.count >= rl.limit {
		return false, 0, rec.windowExpiry, rec.windowExpiry.Sub(now)
	}

	rec.count++
	return true, rl.limit - rec.count, rec.windowExpiry, 0
}

// sweepLocked purges records whose window expired more than one window
// length ago. Throttled to at most once per sweepInterval. Caller holds mu.
func (rl *RateLimiter) sweepLocked(now time.Time) {
	if now.Sub(rl.lastSweep) < sweepInterval {
		return
	}

	for addr, rec := range rl.records {
		if now.Sub(rec.windowExpiry) > rl.window {
			delete(rl.records, addr)
		}
	}
	rl.lastSweep = now
}

// Size returns the number of tracked client addresses. Test and metrics hook.
func (rl *RateLimiter) Size() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.records)
}

// clientAddr returns the client address without the port. RealIP middleware
// runs earlier in the chain and rewrites RemoteAddr from forwarding headers.
func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimitByIP creates an httprate limiter keyed by client IP. Layered on
// selected route groups (the sheets pass-through) on top of the global gate.
func RateLimitByIP(cfg RateLimitConfig) func(http.Handler) http.Handler {
	return httprate.Limit(
		cfg.RequestLimit,
		cfg.WindowLength,
		httprate.WithKeyFuncs(httprate.KeyByRealIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			secs := int(cfg.WindowLength.Seconds())
			if secs < 1 {
				secs = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(secs))
			models.NewRateLimit(secs).Write(w)
		}),
	)
}
