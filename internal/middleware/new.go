package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"smart-planner/config"
	"smart-planner/pkg/log"
)

// Middleware bundles the HTTP middlewares the chat surface uses.
type Middleware struct {
	l        log.Logger
	cfg      config.RateLimitConfig
	limiters *expirable.LRU[string, *rate.Limiter]
}

func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:   l,
		cfg: cfg,
		// Max 1000 unique clients, idle limiters expire after 5 minutes.
		limiters: expirable.NewLRU[string, *rate.Limiter](1000, nil, time.Minute*5),
	}
}
