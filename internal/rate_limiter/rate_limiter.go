package ratelimiter

import (
	"github.com/Sovanra/DesignDeck/internal/config"
	"github.com/Sovanra/DesignDeck/internal/util"
	"go.uber.org/zap"
)

func NewRateLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *FixedWindowRateLimiter {
	// For unit test
	if logger == nil {
		logger = util.NewLogger("development")
	}

	return NewFixedWindowLimiter(cfg, logger)
}
