package ratelimiter

import (
	"sync"
	"time"

	"github.com/phuchoang/InteriorHub/internal/config"
	"github.com/phuchoang/InteriorHub/internal/util"
	"go.uber.org/zap"
)

func NewRateLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *FixedWindowRateLimiter {
	// For unit test
	if logger == nil {
		logger = util.NewLogger("development")
	}

	return NewFixedWindowLimiter(cfg, logger)
}

type FixedWindowRateLimiter struct {
	sync.RWMutex
	clients map[string]int
	limit   int
	window  time.Duration
	enabled bool
	logger  *zap.SugaredLogger
}

func NewFixedWindowLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		clients: make(map[string]int),
		limit:   cfg.RequestsPerTimeFrame,
		window:  cfg.TimeFrame,
		enabled: cfg.Enabled,
		logger:  logger,
	}
}

func (rl *FixedWindowRateLimiter) Enabled() bool {
	return rl.enabled
}

// Allow reports whether the client may proceed, and when denied, how long
// until the current window resets.
func (rl *FixedWindowRateLimiter) Allow(ip string) (bool, time.Duration) {
	if !rl.enabled {
		return true, 0
	}

	// A single critical section, so concurrent first requests cannot both
	// insert the client and spawn duplicate reset goroutines.
	rl.Lock()
	defer rl.Unlock()

	count, exists := rl.clients[ip]
	if !exists {
		rl.clients[ip] = 1
		go rl.resetCount(ip)
		return true, 0
	}

	if count >= rl.limit {
		return false, rl.window
	}

	rl.clients[ip]++
	return true, 0
}

func (rl *FixedWindowRateLimiter) resetCount(ip string) {
	time.Sleep(rl.window)
	rl.Lock()
	delete(rl.clients, ip)
	rl.Unlock()
}
