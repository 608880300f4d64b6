package youtube

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/Laky-64/gologging"
	"github.com/redis/go-redis/v9"
)

// LookupCache remembers positive video matches. Implementations must not
// fail requests: misses and backend errors both report ok=false.
type LookupCache interface {
	Get(ctx context.Context, title, artist string) (videoID string, ok bool)
	Set(ctx context.Context, title, artist, videoID string)
}

type NopCache struct{}

func (NopCache) Get(context.Context, string, string) (string, bool) { return "", false }
func (NopCache) Set(context.Context, string, string, string)        {}

type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCache(rdb *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{rdb: rdb, ttl: ttl}
}

// CacheKey is stable across case and surrounding whitespace.
func CacheKey(title, artist string) string {
	norm := strings.ToLower(strings.TrimSpace(title)) + "|" + strings.ToLower(strings.TrimSpace(artist))
	sum := sha256.Sum256([]byte(norm))
	return "yt:video:" + hex.EncodeToString(sum[:])
}

func (c *RedisCache) Get(ctx context.Context, title, artist string) (string, bool) {
	id, err := c.rdb.Get(ctx, CacheKey(title, artist)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false
	}
	if err != nil {
		gologging.WarnF("youtube: cache get: %v", err)
		return "", false
	}
	return id, id != ""
}

func (c *RedisCache) Set(ctx context.Context, title, artist, videoID string) {
	if err := c.rdb.Set(ctx, CacheKey(title, artist), videoID, c.ttl).Err(); err != nil {
		gologging.WarnF("youtube: cache set: %v", err)
	}
}
