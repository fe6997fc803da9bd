package ratelimiter

import (
	"context"
	"fmt"
	"sync"
	"time"

	"dentalbridge-service/internal/app/config"
	"dentalbridge-service/internal/app/contracts"
	"dentalbridge-service/internal/pkg/constvars"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ToolRateLimiter enforces a per-tool-per-minute budget. With redis it keeps
// fixed-window counters keyed by tool and minute so multiple instances share
// the budget; without redis it falls back to an in-process token bucket.
type ToolRateLimiter struct {
	redis     contracts.RedisRepository
	log       *zap.Logger
	perMinute int

	mu      sync.Mutex
	buckets map[string]*rate.Limiter
}

func NewToolRateLimiter(redisRepository contracts.RedisRepository, log *zap.Logger, cfg *config.InternalConfig) *ToolRateLimiter {
	return &ToolRateLimiter{
		redis:     redisRepository,
		log:       log,
		perMinute: cfg.RateLimit.PerToolPerMinute,
		buckets:   make(map[string]*rate.Limiter),
	}
}

func (l *ToolRateLimiter) Evaluate(ctx context.Context, in *contracts.RateLimitInput) (*contracts.RateLimitOutput, error) {
	if l.perMinute <= 0 {
		return &contracts.RateLimitOutput{Allowed: true}, nil
	}

	now := in.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	if l.redis == nil {
		return l.evaluateLocal(in.ToolName), nil
	}

	// Window key: TOOL:RATE:<YYYYMMDDHHMM>:<tool>
	windowKey := fmt.Sprintf("TOOL:RATE:%s:%s", now.Format("200601021504"), in.ToolName)
	count, err := l.redis.Increment(ctx, windowKey)
	if err != nil {
		// A broken limiter backend must not take the tools down with it.
		l.log.Warn("ToolRateLimiter falling back to local bucket",
			zap.String(constvars.LoggingToolKey, in.ToolName),
			zap.Error(err),
		)
		return l.evaluateLocal(in.ToolName), nil
	}
	if count == 1 {
		if err := l.redis.Expire(ctx, windowKey, time.Minute); err != nil {
			l.log.Warn("ToolRateLimiter failed to set window TTL",
				zap.String(constvars.LoggingToolKey, in.ToolName),
				zap.Error(err),
			)
		}
	}

	if count > int64(l.perMinute) {
		retryAfter := 60 - now.Second()
		if retryAfter <= 0 {
			retryAfter = 1
		}
		return &contracts.RateLimitOutput{Allowed: false, RetryAfterSecs: retryAfter}, nil
	}
	return &contracts.RateLimitOutput{Allowed: true}, nil
}

func (l *ToolRateLimiter) evaluateLocal(toolName string) *contracts.RateLimitOutput {
	l.mu.Lock()
	bucket, ok := l.buckets[toolName]
	if !ok {
		bucket = rate.NewLimiter(rate.Limit(float64(l.perMinute)/60.0), l.perMinute)
		l.buckets[toolName] = bucket
	}
	l.mu.Unlock()

	if bucket.Allow() {
		return &contracts.RateLimitOutput{Allowed: true}
	}
	return &contracts.RateLimitOutput{Allowed: false, RetryAfterSecs: 1}
}
