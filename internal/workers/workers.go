// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
)

// Workers runs a fixed set of workers side by side.
type Workers struct {
	workers []Worker
}

// NewWorkers builds the workers enabled by cfg. The refresh job is left out
// when cfg.RefreshInterval is zero.
func NewWorkers(cfg config.Workers, refresher Refresher, log *logger.Logger) *Workers {
	w := &Workers{}
	if cfg.RefreshInterval > 0 {
		w.workers = append(w.workers, NewRefreshJob(refresher, cfg.RefreshInterval, log))
	}
	return w
}

// Len returns the number of configured workers.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker and blocks until all of them have returned, which
// happens once ctx is cancelled.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			worker.Run(ctx)
		})
	}
	wg.Wait()
}
