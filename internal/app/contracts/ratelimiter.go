package contracts

import (
	"context"
	"time"
)

type RateLimitInput struct {
	ToolName string
	Now      time.Time
}

type RateLimitOutput struct {
	Allowed        bool
	RetryAfterSecs int
}

type ToolRateLimiter interface {
	Evaluate(ctx context.Context, in *RateLimitInput) (*RateLimitOutput, error)
}
