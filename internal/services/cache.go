package services

import (
	"context"

	"github.com/kirvedev/ilan-backend/internal/database"
)

// settingsLinkKey mirrors the browser app's localStorage key for the cached
// contact link.
const settingsLinkKey = "cache:site_settings_telegram"

// RedisLinkCache is the Redis-backed mirror of the last known-good settings
// link. No TTL: like the localStorage value it replaces, it persists until
// overwritten.
type RedisLinkCache struct{}

func NewRedisLinkCache() *RedisLinkCache {
	return &RedisLinkCache{}
}

func (c *RedisLinkCache) GetLink(ctx context.Context) (string, bool) {
	val, err := database.RedisClient.Get(ctx, settingsLinkKey).Result()
	if err != nil || val == "" {
		return "", false
	}
	return val, true
}

func (c *RedisLinkCache) SetLink(ctx context.Context, link string) error {
	return database.RedisClient.Set(ctx, settingsLinkKey, link, 0).Err()
}
