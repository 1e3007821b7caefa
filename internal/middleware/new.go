package middleware

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"interview-scheduler/config"
	"interview-scheduler/pkg/log"
)

// limiterCacheSize bounds the number of tracked client IPs.
const limiterCacheSize = 4096

type Middleware struct {
	l        log.Logger
	cfg      config.RateLimitConfig
	limiters *lru.Cache[string, *rate.Limiter]
}

func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	cache, err := lru.New[string, *rate.Limiter](limiterCacheSize)
	if err != nil {
		// lru.New only fails on a non-positive size.
		panic(err)
	}
	return Middleware{
		l:        l,
		cfg:      cfg,
		limiters: cache,
	}
}
