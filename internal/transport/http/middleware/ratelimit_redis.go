package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/hlog"
)

// RedisRateLimiter is a fixed-window per-IP limiter shared by every
// instance that points at the same Redis.
type RedisRateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	prefix string
}

func NewRedisRateLimiter(client *redis.Client, limit int, window time.Duration, prefix string) *RedisRateLimiter {
	return &RedisRateLimiter{client: client, limit: limit, window: window, prefix: prefix}
}

// Limit counts requests per client IP and window. Redis failures let the
// request through.
func (rl *RedisRateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		key := fmt.Sprintf("%s:%s:%d", rl.prefix, realIP(r), time.Now().UnixNano()/int64(rl.window))

		// INCR and EXPIRE run in one MULTI so a counter never outlives its window.
		var incr *redis.IntCmd
		_, err := rl.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			incr = pipe.Incr(ctx, key)
			pipe.Expire(ctx, key, rl.window)
			return nil
		})
		if err != nil {
			hlog.FromRequest(r).Warn().Err(err).Msg("rate limiter unavailable")
			next.ServeHTTP(w, r)
			return
		}
		count := incr.Val()

		remaining := rl.limit - int(count)
		if remaining < 0 {
			remaining = 0
		}
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if count > int64(rl.limit) {
			w.Header().Set("Retry-After", strconv.Itoa(int(rl.window.Seconds()+0.5)))
			writeJSONError(w, http.StatusTooManyRequests, tooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
