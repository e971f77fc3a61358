package llm

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitProvider spaces out requests with a token bucket. NewProvider
// places it inside the retry layer so every attempt takes a token.
type RateLimitProvider struct {
	inner   Provider
	limiter *rate.Limiter
}

// WithRateLimit wraps p. A zero PerMinute returns p unchanged.
func WithRateLimit(p Provider, cfg RateLimitConfig) Provider {
	if cfg.PerMinute <= 0 {
		return p
	}
	burst := max(cfg.Burst, 1)
	every := rate.Every(time.Minute / time.Duration(cfg.PerMinute))
	return &RateLimitProvider{inner: p, limiter: rate.NewLimiter(every, burst)}
}

func (l *RateLimitProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return l.inner.Generate(ctx, req)
}

func (l *RateLimitProvider) ModelID() string {
	return l.inner.ModelID()
}
