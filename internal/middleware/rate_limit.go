package middleware

import (
	"hash/fnv"
	"net/http"
	"sync"
	"time"

	"github.com/castlemill/tms-proxy/internal/domain/dto"
	"github.com/gin-gonic/gin"
)

// defaultNumShards spreads visitors over multiple locks to reduce contention.
const defaultNumShards = 16

// visitor tracks rate limit state for a single client IP.
type visitor struct {
	remaining int
	windowEnd time.Time
}

type rateLimiterShard struct {
	mu       sync.Mutex
	visitors map[string]*visitor
}

// RateLimiter is a sharded fixed-window rate limiter keyed by client IP.
type RateLimiter struct {
	shards []*rateLimiterShard
	rate   int
	window time.Duration
	stopCh chan struct{}
}

// NewRateLimiter creates a rate limiter allowing rate requests per window.
func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	shards := make([]*rateLimiterShard, defaultNumShards)
	for i := range shards {
		shards[i] = &rateLimiterShard{visitors: make(map[string]*visitor)}
	}

	rl := &RateLimiter{
		shards: shards,
		rate:   rate,
		window: window,
		stopCh: make(chan struct{}),
	}
	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) shardFor(key string) *rateLimiterShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return rl.shards[h.Sum32()%uint32(len(rl.shards))]
}

// Allow reports whether the given key may proceed within the current window.
func (rl *RateLimiter) Allow(key string) bool {
	shard := rl.shardFor(key)
	shard.mu.Lock()
	defer shard.mu.Unlock()

	now := time.Now()
	v, ok := shard.visitors[key]
	if !ok || now.After(v.windowEnd) {
		shard.visitors[key] = &visitor{remaining: rl.rate - 1, windowEnd: now.Add(rl.window)}
		return true
	}
	if v.remaining <= 0 {
		return false
	}
	v.remaining--
	return true
}

// cleanup periodically drops expired visitors so memory stays bounded.
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			now := time.Now()
			for _, shard := range rl.shards {
				shard.mu.Lock()
				for key, v := range shard.visitors {
					if now.After(v.windowEnd) {
						delete(shard.visitors, key)
					}
				}
				shard.mu.Unlock()
			}
		case <-rl.stopCh:
			return
		}
	}
}

// Stop terminates the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stopCh)
}

// RateLimit returns the gin middleware enforcing the limiter.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				dto.NewFailure("rate limit exceeded").WithRequestID(GetRequestID(c)))
			return
		}
		c.Next()
	}
}
