// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
)

// RefreshJob delta-fetches the active store on a ticker. Ticks that arrive
// while a refresh is still running are dropped by the ticker.
type RefreshJob struct {
	refresher Refresher
	interval  time.Duration
	logger    *logger.Logger
}

// NewRefreshJob returns a job refreshing every interval.
func NewRefreshJob(refresher Refresher, interval time.Duration, log *logger.Logger) *RefreshJob {
	return &RefreshJob{
		refresher: refresher,
		interval:  interval,
		logger:    log.WithStr("worker", "refresh"),
	}
}

// Run implements [Worker].
func (j *RefreshJob) Run(ctx context.Context) {
	t := time.NewTicker(j.interval)
	defer t.Stop()

	j.logger.Debug().Dur("interval", j.interval).Msg("refresh job started")
	for {
		select {
		case <-ctx.Done():
			j.logger.Debug().Msg("refresh job stopped")
			return
		case <-t.C:
			j.tick(ctx)
		}
	}
}

func (j *RefreshJob) tick(ctx context.Context) {
	storeID := j.refresher.ActiveStore()
	if storeID == "" {
		return
	}

	if err := j.refresher.RefreshAll(ctx); err != nil && ctx.Err() == nil {
		// the syncer already raised an alert for fetch failures
		j.logger.Warn().Err(err).Str("store_id", storeID).Msg("background refresh failed")
	}
}
