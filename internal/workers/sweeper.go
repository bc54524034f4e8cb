// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"vaultguard/internal/logger"
	"vaultguard/internal/ratelimit"
)

// limiterSweeper periodically purges expired entries from the rate limiter
// so that one-shot callers do not accumulate in its key map.
type limiterSweeper struct {
	limiter  *ratelimit.Limiter
	interval time.Duration
	logger   *logger.Logger
}

// NewLimiterSweeper returns a Worker that drives the limiter's background
// sweep at the given interval. The sweep goroutine runs until the limiter's
// StopSweeping is called.
func NewLimiterSweeper(limiter *ratelimit.Limiter, interval time.Duration, logger *logger.Logger) Worker {
	return &limiterSweeper{
		limiter:  limiter,
		interval: interval,
		logger:   logger,
	}
}

func (w *limiterSweeper) Run() {
	w.logger.Info().Dur("interval", w.interval).Msg("starting rate limiter sweep worker")
	w.limiter.StartSweeping(context.Background(), w.interval)
}
