package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"hrcalc/internal/transport/http/api"
)

func BodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if maxBytes > 0 && (r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch) {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}

type RateLimitKeyFunc func(r *http.Request) string

type RateLimitOption func(*rateLimiter)

func WithKeyFunc(fn RateLimitKeyFunc) RateLimitOption {
	return func(rl *rateLimiter) {
		if fn != nil {
			rl.keyFn = fn
		}
	}
}

func WithLogger(logger *zap.Logger) RateLimitOption {
	return func(rl *rateLimiter) {
		if logger != nil {
			rl.logger = logger
		}
	}
}

// rateLimiter keeps one token bucket per client key. Each bucket refills at
// perMinute tokens per minute and bursts up to perMinute.
type rateLimiter struct {
	mu        sync.Mutex
	perMinute int
	keyFn     RateLimitKeyFunc
	logger    *zap.Logger
	clients   map[string]*rate.Limiter
}

func RateLimit(perMinute int, opts ...RateLimitOption) func(http.Handler) http.Handler {
	rl := &rateLimiter{
		perMinute: perMinute,
		keyFn:     actorOrIPKey,
		logger:    zap.NewNop(),
		clients:   map[string]*rate.Limiter{},
	}
	for _, opt := range opts {
		opt(rl)
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.enforce(w, r) {
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *rateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	limiter, ok := rl.clients[key]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(rl.perMinute)), rl.perMinute)
		rl.clients[key] = limiter
	}
	return limiter
}

func (rl *rateLimiter) enforce(w http.ResponseWriter, r *http.Request) bool {
	if rl.perMinute <= 0 {
		return true
	}

	key := rl.keyFn(r)
	if key == "" {
		key = clientIPKey(r)
	}
	limiter := rl.limiter(key)

	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.perMinute))
	if limiter.Allow() {
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(int(limiter.Tokens()), 0)))
		return true
	}

	w.Header().Set("X-RateLimit-Remaining", "0")
	retryAfter := max(int(time.Minute/time.Duration(rl.perMinute)/time.Second), 1)
	w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
	rl.logger.Warn("rate limit exceeded",
		zap.String("key", key),
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
		zap.Int("perMinute", rl.perMinute),
		zap.String("requestId", api.RequestID(r.Context())),
	)
	api.Fail(w, r, http.StatusTooManyRequests, api.CodeRateLimited, "too many requests")
	return false
}

func actorOrIPKey(r *http.Request) string {
	if user, ok := GetUser(r.Context()); ok && user.Subject != "" {
		return "user:" + user.Subject
	}
	return clientIPKey(r)
}

func clientIPKey(r *http.Request) string {
	if fwd := strings.TrimSpace(r.Header.Get("X-Forwarded-For")); fwd != "" {
		parts := strings.Split(fwd, ",")
		if value := strings.TrimSpace(parts[0]); value != "" {
			return value
		}
	}
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}
	return strings.TrimSpace(r.RemoteAddr)
}
