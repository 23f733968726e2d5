package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vesteevolta/backend/internal/service"
)

// captureWriter copies the response body while forwarding it to the client.
type captureWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	cw.buf.Write(b)
	return cw.ResponseWriter.Write(b)
}

func (cw *captureWriter) WriteString(s string) (int, error) {
	cw.buf.WriteString(s)
	return cw.ResponseWriter.WriteString(s)
}

// cacheKey hashes the concrete request path and query under prefix so one
// prefix sweep drops every cached page of a resource.
func cacheKey(prefix string, c *gin.Context) string {
	sum := sha1.Sum([]byte(c.Request.URL.Path + "?" + c.Request.URL.RawQuery))
	return fmt.Sprintf("%s%x", prefix, sum[:])
}

// ResponseCache serves successful GET JSON responses from cache.
func ResponseCache(cache *service.CacheService, prefix string, ttl time.Duration) gin.HandlerFunc {
	if cache == nil {
		return func(c *gin.Context) { c.Next() }
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := cacheKey(prefix, c)

		if body, ok := cache.Get(ctx, key); ok {
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			c.Abort()
			return
		}

		cw := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = cw
		c.Header("X-Cache", "MISS")

		c.Next()

		if cw.Status() == http.StatusOK && cw.buf.Len() > 0 {
			cache.Set(context.Background(), key, cw.buf.Bytes(), ttl)
		}
	}
}

// InvalidateCache drops every key under prefix after a successful write.
func InvalidateCache(cache *service.CacheService, prefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if cache == nil || c.Request.Method == http.MethodGet {
			return
		}
		if status := c.Writer.Status(); status >= 200 && status < 300 {
			cache.InvalidateByPrefix(context.Background(), prefix)
		}
	}
}
