package httpmiddleware

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RedisWindow is a fixed-window per-IP rate limiter backed by Redis, shared
// across replicas. Counters live under prefix:<ip> and expire with the window.
type RedisWindow struct {
	client *redis.Client
	prefix string
	perMin int
	window time.Duration
}

// NewRedisWindow creates a limiter allowing perMinute requests per IP per minute.
func NewRedisWindow(client *redis.Client, prefix string, perMinute int) *RedisWindow {
	if prefix == "" {
		prefix = "ratelimit"
	}
	return &RedisWindow{
		client: client,
		prefix: prefix,
		perMin: perMinute,
		window: time.Minute,
	}
}

// GinMiddleware returns a gin handler enforcing the limit. Redis outages fail
// open so the API stays up when the limiter store is down.
func (l *RedisWindow) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown"
		}
		ok, err := l.allow(c.Request.Context(), ip)
		if err != nil {
			log.Printf("rate limiter unavailable: %v", err)
			c.Next()
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit"})
			return
		}
		c.Next()
	}
}

func (l *RedisWindow) allow(ctx context.Context, key string) (bool, error) {
	full := l.prefix + ":" + key
	count, err := l.client.Incr(ctx, full).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := l.client.Expire(ctx, full, l.window).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(l.perMin), nil
}
