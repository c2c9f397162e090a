package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/kirvedev/ilan-backend/pkg/clientip"
)

// SecurityHeaders sets security-related response headers.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("Content-Security-Policy", "default-src 'self'")
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		next.ServeHTTP(w, r)
	})
}

// HostCheck returns 403 when r.Host does not match allowedHost.
// allowedHost should be the bare hostname without scheme or port.
func HostCheck(allowedHost string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if allowedHost == "" {
				next.ServeHTTP(w, r)
				return
			}
			reqHost := r.Host
			if host, _, err := net.SplitHostPort(reqHost); err == nil {
				reqHost = host
			}
			if !strings.EqualFold(strings.TrimSpace(reqHost), allowedHost) {
				w.WriteHeader(http.StatusForbidden)
				w.Write([]byte("Forbidden"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// limiterTable keeps one token-bucket limiter per IP, evicting idle entries.
type limiterTable struct {
	mu      sync.Mutex
	entries map[string]*limiterEntry
	newFn   func() *rate.Limiter
	started bool
}

type limiterEntry struct {
	limiter *rate.Limiter
	lastUse time.Time
}

const (
	limiterCleanupInterval = 5 * time.Minute
	limiterTTL             = 30 * time.Minute
)

func newLimiterTable(newFn func() *rate.Limiter) *limiterTable {
	return &limiterTable{entries: make(map[string]*limiterEntry), newFn: newFn}
}

func (t *limiterTable) get(ip string) *rate.Limiter {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.startCleanupOnce()
	e, ok := t.entries[ip]
	if !ok {
		e = &limiterEntry{limiter: t.newFn(), lastUse: time.Now()}
		t.entries[ip] = e
	}
	e.lastUse = time.Now()
	return e.limiter
}

func (t *limiterTable) startCleanupOnce() {
	if t.started {
		return
	}
	t.started = true
	go func() {
		ticker := time.NewTicker(limiterCleanupInterval)
		defer ticker.Stop()
		for range ticker.C {
			t.mu.Lock()
			now := time.Now()
			for ip, e := range t.entries {
				if now.Sub(e.lastUse) > limiterTTL {
					delete(t.entries, ip)
				}
			}
			t.mu.Unlock()
		}
	}()
}

var (
	// 1 req/s, burst 10, per IP.
	globalLimiters = newLimiterTable(func() *rate.Limiter {
		return rate.NewLimiter(rate.Limit(1), 10)
	})
	// Login attempts: 1 per 5s, burst 2, per IP.
	loginLimiters = newLimiterTable(func() *rate.Limiter {
		return rate.NewLimiter(rate.Every(5*time.Second), 2)
	})
)

// GlobalRateLimit limits each IP to 1 req/s, burst 10. Returns 429 when exceeded.
func GlobalRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientip.RealClientIP(r)
		if !globalLimiters.get(ip).Allow() {
			writeRateLimited(w, "Too many requests. Please slow down.", 0)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// LoginRateLimit applies a stricter limit to the admin login route only.
// Use after GlobalRateLimit.
func LoginRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/admin/login" {
			next.ServeHTTP(w, r)
			return
		}
		ip := clientip.RealClientIP(r)
		if !loginLimiters.get(ip).Allow() {
			writeRateLimited(w, "Too many login attempts. Please try again later.", 0)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ProductionSecurity returns the production middleware chain:
// SecurityHeaders → HostCheck → GlobalRateLimit → LoginRateLimit.
func ProductionSecurity(allowedHost string) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		SecurityHeaders,
		HostCheck(allowedHost),
		GlobalRateLimit,
		LoginRateLimit,
	}
}
