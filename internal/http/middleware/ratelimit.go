package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"todo_api/internal/logger"

	"github.com/gin-gonic/gin"
	redis "github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

// InitRedisRateLimiter sets the shared Redis client used by the limiters.
// With a nil client the limiters count in process memory.
func InitRedisRateLimiter(client *redis.Client) {
	redisClient = client
}

// fixed-window counters for the in-process fallback
type windowCounter struct {
	start time.Time
	count int64
}

type memoryLimiter struct {
	mu      sync.Mutex
	windows map[string]*windowCounter
	now     func() time.Time
}

func newMemoryLimiter() *memoryLimiter {
	return &memoryLimiter{windows: make(map[string]*windowCounter), now: time.Now}
}

func (l *memoryLimiter) incr(key string, window time.Duration) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.windows[key]
	if !ok || now.Sub(w.start) >= window {
		if len(l.windows) > 10000 {
			for k, old := range l.windows {
				if now.Sub(old.start) >= window {
					delete(l.windows, k)
				}
			}
		}
		w = &windowCounter{start: now}
		l.windows[key] = w
	}
	w.count++
	return w.count
}

var localLimiter = newMemoryLimiter()

// incr bumps the counter for key, returning the count inside the current window.
// Redis errors fail open.
func incr(ctx context.Context, key string, window time.Duration) (int64, bool) {
	if redisClient == nil {
		return localLimiter.incr(key, window), true
	}

	val, err := redisClient.Incr(ctx, key).Result()
	if err != nil {
		logger.FromContext(ctx).Warn("rate limiter redis error", "error", err)
		return 0, false
	}
	if val == 1 {
		if err := redisClient.Expire(ctx, key, window).Err(); err != nil {
			// a counter without TTL would block the key for good
			logger.FromContext(ctx).Warn("rate limiter expire failed", "error", err, "key", key)
			redisClient.Del(ctx, key)
			return 0, false
		}
	}
	return val, true
}

func ipKey(scope string, window time.Duration, ip string) string {
	return "rl:" + scope + ":" + strconv.FormatInt(int64(window.Seconds()), 10) + ":" + ip
}

// IPRateLimit implements a fixed-window limiter keyed by client IP.
// key format: rl:<scope>:<window_seconds>:<ip>
func IPRateLimit(scope string, maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit(c, scope, ipKey(scope, window, c.ClientIP()), maxRequests, window)
	}
}

// UserRateLimit limits per authenticated user. Requires JWT middleware to run before this.
func UserRateLimit(scope string, maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := UserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}
		key := "user_rl:" + scope + ":" + strconv.FormatInt(userID, 10) + ":" + strconv.FormatInt(int64(window.Seconds()), 10)
		limit(c, scope, key, maxRequests, window)
	}
}

func limit(c *gin.Context, scope, key string, maxRequests int, window time.Duration) {
	val, ok := incr(c.Request.Context(), key, window)
	if !ok {
		c.Header("X-RateLimit-Error", "redis-error")
		c.Next()
		return
	}

	c.Header("X-RateLimit-Limit", strconv.Itoa(maxRequests))
	c.Header("X-RateLimit-Remaining", strconv.FormatInt(max(0, int64(maxRequests)-val), 10))

	if val > int64(maxRequests) {
		RLBlocked.WithLabelValues(scope).Inc()
		c.Header("Retry-After", strconv.Itoa(int(window.Seconds())))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"success":     false,
			"message":     "rate limit exceeded",
			"retry_after": int(window.Seconds()),
		})
		return
	}

	RLRequests.WithLabelValues(scope).Inc()
	c.Next()
}
