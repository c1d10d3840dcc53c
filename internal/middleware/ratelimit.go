package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/campuslab/printbooth/internal/pkg/response"
)

// rateWindow anchors the count at the first request of the current
// window. The window boundary is checked against this anchor, not the
// cache entry's TTL, because the cache renews its TTL on every write.
type rateWindow struct {
	start time.Time
	count int
}

type rateLimiter struct {
	mu     sync.Mutex
	seen   *expirable.LRU[string, rateWindow]
	limit  int
	window time.Duration
}

// RateLimit allows at most limit requests per client IP within each
// fixed window. A client staying under the limit is never throttled, no
// matter how long it keeps sending. Idle entries age out of the cache
// on their own.
func RateLimit(limit int, window time.Duration) gin.HandlerFunc {
	limiter := &rateLimiter{
		seen:   expirable.NewLRU[string, rateWindow](4096, nil, window),
		limit:  limit,
		window: window,
	}
	return limiter.handle
}

func (l *rateLimiter) handle(c *gin.Context) {
	key := c.ClientIP()
	now := time.Now()
	l.mu.Lock()
	win, ok := l.seen.Get(key)
	if !ok || now.Sub(win.start) >= l.window {
		win = rateWindow{start: now}
	}
	win.count++
	l.seen.Add(key, win)
	l.mu.Unlock()
	if win.count > l.limit {
		response.Error(c, http.StatusTooManyRequests, "too many requests", nil)
		c.Abort()
		return
	}
	c.Next()
}
