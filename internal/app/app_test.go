// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/state"
	"github.com/MKhiriev/go-stock-keeper/internal/store"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// newRemote serves one page of each collection.
func newRemote(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/items/allItems", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[{"_id":"i1","storeId":"s1","itemName":"Green tea"}],"hasMoreRecords":false,"totalRecords":1,"now":"1700000000000"}`))
	})
	mux.HandleFunc("/api/suppliers", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"suppliers":[],"hasMoreRecords":false,"totalRecords":0,"now":"1700000000000"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestConfig(remote string) *config.StructuredConfig {
	return &config.StructuredConfig{
		App:     config.App{StoreID: "s1", Version: "1.0.0"},
		Storage: config.Storage{DB: config.DB{DSN: ":memory:"}},
		Adapter: config.Adapter{HTTPAddress: remote, RequestTimeout: 5 * time.Second, PageSize: 50},
	}
}

func newTestStorages(t *testing.T) *store.Storages {
	t.Helper()
	storages, err := store.NewStorages(context.Background(), config.DB{DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })
	return storages
}

func TestNewApp_InvalidAdapterAddress(t *testing.T) {
	cfg := newTestConfig("")

	a, err := NewApp(context.Background(), cfg, models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "create adapter")
	assert.Nil(t, a)
}

func TestAssemble_OptionalParts(t *testing.T) {
	remote := newRemote(t)

	tests := []struct {
		name           string
		mutate         func(cfg *config.StructuredConfig)
		wantBackground int
		wantForeground bool
	}{
		{
			name:           "headless without workers",
			mutate:         func(*config.StructuredConfig) {},
			wantBackground: 0,
		},
		{
			name: "refresh job and view api",
			mutate: func(cfg *config.StructuredConfig) {
				cfg.Workers.RefreshInterval = time.Minute
				cfg.Server.HTTPAddress = "127.0.0.1:0"
			},
			wantBackground: 2,
		},
		{
			name: "terminal monitor",
			mutate: func(cfg *config.StructuredConfig) {
				cfg.UI.Enabled = true
			},
			wantForeground: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newTestConfig(remote.URL)
			tt.mutate(cfg)

			a, err := assemble(cfg, models.NewAppBuildInfo("1.0.0", "", ""), newTestStorages(t), logger.Nop())
			require.NoError(t, err)

			assert.Len(t, a.background, tt.wantBackground)
			assert.Equal(t, tt.wantForeground, a.foreground != nil)
			require.NotNil(t, a.Services())
		})
	}
}

func TestApp_RunSelectsStartStore(t *testing.T) {
	remote := newRemote(t)
	storages := newTestStorages(t)

	a, err := assemble(newTestConfig(remote.URL), models.NewAppBuildInfo("1.0.0", "", ""), storages, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	require.Eventually(t, func() bool {
		st := a.Services().Session.State()
		return st.ActiveStore == "s1" && state.CollectionOf[models.Item](st, "s1").Len() == 1
	}, 5*time.Second, 10*time.Millisecond)

	// the fetched page is written through to the snapshot
	require.Eventually(t, func() bool {
		snap, err := storages.Items.Load(context.Background(), "s1")
		return err == nil && len(snap.Records) == 1
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
}

func TestApp_ForegroundStopsBackground(t *testing.T) {
	stopped := make(chan struct{})
	a := &App{
		logger: logger.Nop(),
		background: []Runner{runnerFunc(func(ctx context.Context) error {
			<-ctx.Done()
			close(stopped)
			return nil
		})},
		foreground: runnerFunc(func(context.Context) error { return nil }),
	}

	require.NoError(t, a.Run(context.Background()))

	select {
	case <-stopped:
	default:
		t.Fatal("background runner still running")
	}
}

func TestApp_RunReturnsBackgroundError(t *testing.T) {
	boom := errors.New("listen: address already in use")
	a := &App{
		logger:     logger.Nop(),
		background: []Runner{runnerFunc(func(context.Context) error { return boom })},
	}

	err := a.Run(context.Background())

	require.ErrorIs(t, err, boom)
}

func TestApp_CloseWithoutParts(t *testing.T) {
	assert.NoError(t, (&App{}).Close())
}
