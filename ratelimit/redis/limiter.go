// Package redislimiter is a Redis-backed sliding-window rate limiter shared
// across server replicas.
package redislimiter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limit defines window and max count for a bucket.
type Limit struct {
	Limit  int
	Window time.Duration
}

// Limiter implements a sliding window over Redis ZSETs.
type Limiter struct {
	rdb    *redis.Client
	limits map[string]Limit
}

func New(rdb *redis.Client, limits map[string]Limit) *Limiter {
	if limits == nil {
		limits = map[string]Limit{}
	}
	return &Limiter{rdb: rdb, limits: limits}
}

func (l *Limiter) limitFor(bucket string) Limit {
	if v, ok := l.limits[bucket]; ok {
		return v
	}
	if v, ok := l.limits["default"]; ok {
		return v
	}
	return Limit{Limit: 100, Window: time.Minute}
}

// AllowNamed reports whether one more request is allowed for key within
// bucket. The attempt is recorded first and removed again when over the
// limit, so concurrent callers cannot slip past the window.
func (l *Limiter) AllowNamed(ctx context.Context, bucket, key string) (bool, error) {
	if l == nil || l.rdb == nil {
		return true, nil
	}
	if bucket == "" || key == "" {
		return false, fmt.Errorf("bucket and key required")
	}

	lim := l.limitFor(bucket)
	now := time.Now().UnixMilli()
	windowStart := now - lim.Window.Milliseconds()
	windowKey := fmt.Sprintf("%s:%s", key, bucket)

	pipe := l.rdb.TxPipeline()
	pipe.ZAdd(ctx, windowKey, redis.Z{Score: float64(now), Member: now})
	pipe.ZRemRangeByScore(ctx, windowKey, "0", fmt.Sprintf("%d", windowStart))
	countCmd := pipe.ZCard(ctx, windowKey)
	pipe.Expire(ctx, windowKey, lim.Window+time.Second)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	count, err := countCmd.Result()
	if err != nil {
		return false, err
	}
	if count > int64(lim.Limit) {
		l.rdb.ZRem(ctx, windowKey, now)
		return false, nil
	}
	return true, nil
}
