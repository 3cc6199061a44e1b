package middleware

import (
	"time"

	"tutorial-api/pkg/log"
)

// Config holds middleware settings.
type Config struct {
	RateLimitEnabled    bool
	RateLimitPerMin     int
	RateLimitBurst      int
	RateLimitMaxClients int
	RateLimitTTL        time.Duration
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
	metrics *Metrics
}

// New builds the middleware set. metrics may be nil to disable instrumentation.
func New(l log.Logger, cfg Config, metrics *Metrics) Middleware {
	mw := Middleware{
		l:       l,
		metrics: metrics,
	}
	if cfg.RateLimitEnabled {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin, cfg.RateLimitBurst, cfg.RateLimitMaxClients, cfg.RateLimitTTL)
	}
	return mw
}
