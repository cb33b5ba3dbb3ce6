package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

const (
	// rateLimitPrefix is the Redis key prefix for per-IP counters.
	rateLimitPrefix = "ratelimit:ip:"
	// rateLimitWindow is the length of one counting window.
	rateLimitWindow = time.Second
)

// AllowRequest checks a fixed-window per-IP rate limit of limit requests
// per second. The counter key expires with the window, so idle clients
// cost nothing. IPs are hashed before use as keys.
func (c *Cache) AllowRequest(ctx context.Context, ip string, limit int) (bool, error) {
	if limit <= 0 {
		return true, nil
	}

	window := time.Now().Unix()
	key := fmt.Sprintf("%s%s:%d", rateLimitPrefix, hashIP(ip), window)

	count, err := c.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}

	if count == 1 {
		// First hit in this window; bound the key's lifetime.
		if err := c.client.Expire(ctx, key, 2*rateLimitWindow).Err(); err != nil {
			return false, fmt.Errorf("failed to set rate limit TTL: %w", err)
		}
	}

	return count <= int64(limit), nil
}

// hashIP hashes an IP address so raw addresses never land in Redis.
func hashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip))
	return hex.EncodeToString(sum[:8])
}
