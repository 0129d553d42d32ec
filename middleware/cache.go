package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// cacheVersionKey holds a counter folded into every cache key. Bumping
// it orphans all cached entries at once, so invalidation does not need
// to enumerate paths and query strings.
const cacheVersionKey = "cache:version"

// bodyCapture duplicates the response body while it is written so a
// successful response can be stored after the handler returns.
type bodyCapture struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bodyCapture) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// ResponseCache caches successful GET responses in Redis for ttl.
// Intended for the public listing endpoints only; a nil client turns
// the middleware into a pass-through.
func ResponseCache(rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	if rdb == nil {
		return func(c *gin.Context) { c.Next() }
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := cacheKey(c, cacheVersion(ctx, rdb))

		if body, err := rdb.Get(ctx, key).Bytes(); err == nil {
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			c.Abort()
			return
		}

		capture := &bodyCapture{ResponseWriter: c.Writer}
		c.Writer = capture
		c.Header("X-Cache", "MISS")

		c.Next()

		if capture.Status() == http.StatusOK {
			_ = rdb.SetEx(ctx, key, capture.buf.Bytes(), ttl).Err()
		}
	}
}

// CacheInvalidator bumps the cache version after any successful
// non-GET request, so cached listings never outlive a content change
// (an approval must be publicly visible right away, not after the TTL).
func CacheInvalidator(rdb *redis.Client) gin.HandlerFunc {
	if rdb == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			c.Next()
			return
		}

		c.Next()

		if status := c.Writer.Status(); status >= 200 && status < 300 {
			_ = rdb.Incr(c.Request.Context(), cacheVersionKey).Err()
		}
	}
}

func cacheVersion(ctx context.Context, rdb *redis.Client) string {
	version, err := rdb.Get(ctx, cacheVersionKey).Result()
	if err != nil {
		return "0"
	}
	return version
}

func cacheKey(c *gin.Context, version string) string {
	sum := sha1.Sum([]byte(version + "|" + c.Request.URL.Path + "?" + c.Request.URL.RawQuery))
	return fmt.Sprintf("cache:%x", sum)
}
