package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/kirvedev/ilan-backend/internal/database"
	"github.com/kirvedev/ilan-backend/pkg/clientip"
)

const (
	// RateLimitWindow is 120 seconds
	RateLimitWindow = 120 * time.Second
	// RateLimitMaxRequests is the maximum number of requests allowed in the window
	RateLimitMaxRequests = 60
	// RateLimitKeyPrefix is the Redis key prefix for rate limiting
	RateLimitKeyPrefix = "ratelimit:"
	// BlockedIPKeyPrefix is the Redis key prefix for blocked IPs
	BlockedIPKeyPrefix = "blocked_ip:"
	// BlockedIPDuration is how long an IP stays blocked
	BlockedIPDuration = 24 * time.Hour
)

// RateLimitMiddleware provides Redis-backed per-IP rate limiting with
// temporary IP blocking. Fails open when Redis is unavailable.
func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientip.RealClientIP(r)
		ctx := context.Background()

		blockedKey := BlockedIPKeyPrefix + ip
		if blocked, err := database.RedisClient.Exists(ctx, blockedKey).Result(); err == nil && blocked > 0 {
			writeRateLimited(w, "Your IP has been temporarily blocked due to excessive requests. Please try again later.", 0)
			return
		}

		rateLimitKey := RateLimitKeyPrefix + ip
		count, err := database.RedisClient.Incr(ctx, rateLimitKey).Result()
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		if count == 1 {
			database.RedisClient.Expire(ctx, rateLimitKey, RateLimitWindow)
		}

		if count > RateLimitMaxRequests {
			database.RedisClient.Set(ctx, blockedKey, "1", BlockedIPDuration)
			writeRateLimited(w, "Rate limit exceeded. Your IP has been temporarily blocked. Please try again later.", int(RateLimitWindow.Seconds()))
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(RateLimitMaxRequests))
		w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(RateLimitMaxRequests-count, 10))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(RateLimitWindow).Unix(), 10))

		next.ServeHTTP(w, r)
	})
}

func writeRateLimited(w http.ResponseWriter, message string, retryAfter int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusTooManyRequests)
	if retryAfter > 0 {
		fmt.Fprintf(w, `{"success":false,"message":"%s","retry_after":%d}`, message, retryAfter)
		return
	}
	fmt.Fprintf(w, `{"success":false,"message":"%s"}`, message)
}

// UnblockIP removes an IP from the blocked list (admin function)
func UnblockIP(ip string) error {
	return database.RedisClient.Del(context.Background(), BlockedIPKeyPrefix+ip).Err()
}
