package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/kirvedev/ilan-backend/internal/database"
)

const (
	// AdminSessionDuration is 7 days
	AdminSessionDuration = 7 * 24 * time.Hour
	// AdminSessionKeyPrefix is the Redis key prefix for admin sessions
	AdminSessionKeyPrefix = "admin_session:"
)

// RedisSessionStore keeps admin session tokens in Redis. There is a single
// admin identity, so there is no user-to-session mapping; any number of
// concurrent dashboard sessions may exist and each expires independently.
type RedisSessionStore struct{}

func NewRedisSessionStore() *RedisSessionStore {
	return &RedisSessionStore{}
}

// Create mints a secure token and stores it with a 7-day expiration.
func (s *RedisSessionStore) Create() (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	token := base64.URLEncoding.EncodeToString(tokenBytes)

	ctx := context.Background()
	if err := database.RedisClient.Set(ctx, AdminSessionKeyPrefix+token, "1", AdminSessionDuration).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Validate reports whether a token names a live session.
func (s *RedisSessionStore) Validate(token string) bool {
	if token == "" {
		return false
	}
	ctx := context.Background()
	count, err := database.RedisClient.Exists(ctx, AdminSessionKeyPrefix+token).Result()
	return err == nil && count > 0
}

// Invalidate removes a session from Redis.
func (s *RedisSessionStore) Invalidate(token string) error {
	if token == "" {
		return nil
	}
	ctx := context.Background()
	return database.RedisClient.Del(ctx, AdminSessionKeyPrefix+token).Err()
}
