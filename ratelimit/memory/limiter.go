// Package memorylimiter is a single-node sliding-window rate limiter used
// when no Redis address is configured.
package memorylimiter

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Limit defines window and max count for a bucket.
type Limit struct {
	Limit  int
	Window time.Duration
}

// Limiter is an in-memory sliding-window rate limiter.
type Limiter struct {
	mu      sync.Mutex
	limits  map[string]Limit
	windows map[string][]int64 // request times in Unix ms, oldest first
}

// New constructs an in-memory limiter with the provided per-bucket limits.
// Unknown buckets fall back to the "default" entry, then to 100/minute.
func New(limits map[string]Limit) *Limiter {
	if limits == nil {
		limits = map[string]Limit{}
	}
	return &Limiter{limits: limits, windows: make(map[string][]int64)}
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
// bucket, recording it when allowed. Expired entries are pruned on each
// call so idle keys do not grow memory without bound.
func (l *Limiter) AllowNamed(ctx context.Context, bucket, key string) (bool, error) {
	if l == nil {
		return true, nil
	}
	if bucket == "" || key == "" {
		return false, fmt.Errorf("bucket and key required")
	}

	lim := l.limitFor(bucket)
	nowMs := time.Now().UnixMilli()
	windowStart := nowMs - lim.Window.Milliseconds()
	windowKey := key + ":" + bucket

	l.mu.Lock()
	defer l.mu.Unlock()

	ts := l.windows[windowKey]
	prune := 0
	for prune < len(ts) && ts[prune] < windowStart {
		prune++
	}
	ts = ts[prune:]

	if len(ts) >= lim.Limit {
		l.windows[windowKey] = ts
		return false, nil
	}

	ts = append(ts, nowMs)
	l.windows[windowKey] = ts
	return true, nil
}
