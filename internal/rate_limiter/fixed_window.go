package ratelimiter

import (
	"sync"
	"time"

	"github.com/Sovanra/DesignDeck/internal/config"
	"go.uber.org/zap"
)

// FixedWindowRateLimiter counts requests per client key in a fixed time
// window. In-memory and per process, which matches the single-store
// deployment model.
type FixedWindowRateLimiter struct {
	mu      sync.Mutex
	clients map[string]*windowEntry
	limit   int
	window  time.Duration
	enabled bool
	logger  *zap.SugaredLogger
}

type windowEntry struct {
	count      int
	windowSlot int64
}

func NewFixedWindowLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		clients: make(map[string]*windowEntry),
		limit:   cfg.RequestsPerTimeFrame,
		window:  cfg.TimeFrame,
		enabled: cfg.Enabled,
		logger:  logger,
	}
}

// Allow reports whether key is within quota, along with the remaining
// window duration when it is not.
func (rl *FixedWindowRateLimiter) Allow(key string) (bool, time.Duration) {
	if !rl.enabled || rl.limit <= 0 || rl.window <= 0 {
		return true, 0
	}

	now := time.Now()
	slot := now.UnixNano() / int64(rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, ok := rl.clients[key]
	if !ok || entry.windowSlot != slot {
		rl.clients[key] = &windowEntry{count: 1, windowSlot: slot}
		return true, 0
	}

	entry.count++
	if entry.count > rl.limit {
		retryAfter := time.Duration((slot+1)*int64(rl.window) - now.UnixNano())
		rl.logger.Debugf("Rate limit exceeded for key: %s", key)
		return false, retryAfter
	}

	return true, 0
}
