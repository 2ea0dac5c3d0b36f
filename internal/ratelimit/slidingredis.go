package ratelimit

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Limiter throttles report submissions with a Redis sorted-set sliding
// window. One member per request, scored by arrival time; entries older than
// the window are pruned on each call. A nil client disables limiting, which
// lets the service run without Redis.
type Limiter struct {
	Client *redis.Client
	Prefix string
}

// ClientRouteKey derives a limit key from the caller address and request
// path, so separate report routes get separate budgets.
func ClientRouteKey(r *http.Request) string {
	return r.RemoteAddr + "|" + r.URL.Path
}

// Allow records one request under key and reports whether the caller stays
// within max requests per window.
func (l Limiter) Allow(ctx context.Context, key string, window time.Duration, max int) (allowed bool, remaining int, reset time.Time, err error) {
	reset = time.Now().Add(window)
	if l.Client == nil || max <= 0 || window <= 0 {
		return true, max, reset, nil
	}

	now := time.Now()
	bucket := l.Prefix + key
	oldest := strconv.FormatInt(now.Add(-window).UnixNano(), 10)

	pipe := l.Client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, bucket, "0", oldest)
	pipe.ZAdd(ctx, bucket, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: uuid.NewString(),
	})
	inWindow := pipe.ZCard(ctx, bucket)
	pipe.Expire(ctx, bucket, window)
	if _, err = pipe.Exec(ctx); err != nil {
		return false, 0, reset, err
	}

	used := int(inWindow.Val())
	remaining = max - used
	if remaining < 0 {
		remaining = 0
	}
	return used <= max, remaining, reset, nil
}
