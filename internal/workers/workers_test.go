// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
)

// mockWorker is a test implementation of the Worker interface
// that counts runs and blocks until cancelled.
type mockWorker struct {
	runCount atomic.Int32
}

func (m *mockWorker) Run(ctx context.Context) {
	m.runCount.Add(1)
	<-ctx.Done()
}

// fakeRefresher считает вызовы RefreshAll.
type fakeRefresher struct {
	store string
	err   error
	calls atomic.Int32
}

func (f *fakeRefresher) ActiveStore() string { return f.store }

func (f *fakeRefresher) RefreshAll(context.Context) error {
	f.calls.Add(1)
	return f.err
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &mockWorker{}, &mockWorker{}, &mockWorker{}
	ws := &Workers{workers: []Worker{w1, w2, w3}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return w1.runCount.Load() == 1 && w2.runCount.Load() == 1 && w3.runCount.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{}

	// Should return immediately when there is nothing to run
	ws.Run(context.Background())
}

func TestNewWorkers(t *testing.T) {
	r := &fakeRefresher{}

	assert.Equal(t, 0, NewWorkers(config.Workers{}, r, logger.Nop()).Len())
	assert.Equal(t, 1, NewWorkers(config.Workers{RefreshInterval: time.Minute}, r, logger.Nop()).Len())
}

func TestRefreshJob_RefreshesActiveStore(t *testing.T) {
	r := &fakeRefresher{store: "s1", err: errors.New("flaky")}
	job := NewRefreshJob(r, 5*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go job.Run(ctx)

	require.Eventually(t, func() bool { return r.calls.Load() >= 2 }, time.Second, 5*time.Millisecond,
		"errors must not stop the job")
}

func TestRefreshJob_SkipsWithoutStore(t *testing.T) {
	r := &fakeRefresher{}
	job := NewRefreshJob(r, 2*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	job.Run(ctx)

	assert.Equal(t, int32(0), r.calls.Load())
}
