package handler

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SecurityHeaders adds security response headers (CSP, X-Frame-Options, etc.)
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'self'; style-src 'self' 'unsafe-inline'; form-action 'self' https:; frame-ancestors 'none'")
		next.ServeHTTP(w, r)
	})
}

type requestIDKey struct{}

// RequestID tags each request with an id, reusing X-Request-Id when the
// client sent one.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext returns the id set by RequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RateLimiter limits contact submissions per client IP over a sliding minute.
type RateLimiter struct {
	maxPerMinute int
	now          func() time.Time
	mu           sync.Mutex
	clients      map[string][]time.Time
}

// NewRateLimiter creates a rate limiter with the given requests-per-minute limit.
func NewRateLimiter(maxPerMinute int) *RateLimiter {
	return &RateLimiter{
		maxPerMinute: maxPerMinute,
		now:          time.Now,
		clients:      make(map[string][]time.Time),
	}
}

// allow records a hit for ip and reports whether it is within the limit.
// When it is not, the returned duration is how long until the next slot frees.
func (rl *RateLimiter) allow(ip string) (bool, time.Duration) {
	now := rl.now()
	windowStart := now.Add(-time.Minute)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	// Drop idle clients so the map does not grow without bound.
	for key, hits := range rl.clients {
		if len(hits) == 0 || !hits[len(hits)-1].After(windowStart) {
			delete(rl.clients, key)
		}
	}

	hits := rl.clients[ip]
	valid := hits[:0]
	for _, ts := range hits {
		if ts.After(windowStart) {
			valid = append(valid, ts)
		}
	}
	if len(valid) >= rl.maxPerMinute {
		rl.clients[ip] = valid
		return false, valid[0].Add(time.Minute).Sub(now)
	}
	rl.clients[ip] = append(valid, now)
	return true, 0
}

// Middleware returns an http.Handler that enforces the limit.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		ok, retry := rl.allow(ip)
		if !ok {
			slog.WarnContext(r.Context(), "submission rate limited", "ip", ip)
			secs := int(retry.Seconds()) + 1
			w.Header().Set("Retry-After", strconv.Itoa(secs))
			writeError(w, http.StatusTooManyRequests, "rate_limited")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP takes the rightmost X-Forwarded-For entry (added by our proxy),
// falling back to the connection address.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[len(parts)-1])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
