// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-stock-keeper/internal/adapter"
	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/deltasync"
	"github.com/MKhiriev/go-stock-keeper/internal/handler"
	handlerhttp "github.com/MKhiriev/go-stock-keeper/internal/handler/http"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/metrics"
	"github.com/MKhiriev/go-stock-keeper/internal/server"
	"github.com/MKhiriev/go-stock-keeper/internal/service"
	"github.com/MKhiriev/go-stock-keeper/internal/state"
	"github.com/MKhiriev/go-stock-keeper/internal/store"
	"github.com/MKhiriev/go-stock-keeper/internal/telemetry"
	"github.com/MKhiriev/go-stock-keeper/internal/tui"
	"github.com/MKhiriev/go-stock-keeper/internal/workers"
	"github.com/MKhiriev/go-stock-keeper/models"
)

const shutdownTimeout = 5 * time.Second

// runnerFunc adapts a plain function to [Runner].
type runnerFunc func(ctx context.Context) error

func (f runnerFunc) Run(ctx context.Context) error {
	return f(ctx)
}

// App is the assembled process.
type App struct {
	services *service.Services
	storages *store.Storages

	startStore string

	// background parts run until ctx is cancelled
	background []Runner
	// foreground part; its return stops the whole process
	foreground Runner

	shutdownTracing func(context.Context) error
	logger          *logger.Logger
}

// NewApp builds every component of the process from cfg.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	shutdownTracing, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    cfg.Telemetry.ServiceName,
		ServiceVersion: buildInfo.BuildVersion(),
		UseStdout:      cfg.Telemetry.Stdout,
	})
	if err != nil {
		return nil, fmt.Errorf("init telemetry: %w", err)
	}

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		_ = shutdownTracing(ctx)
		return nil, fmt.Errorf("create storages: %w", err)
	}

	a, err := assemble(cfg, buildInfo, storages, log)
	if err != nil {
		_ = storages.Close()
		_ = shutdownTracing(ctx)
		return nil, err
	}
	a.shutdownTracing = shutdownTracing
	return a, nil
}

// assemble builds everything on top of already opened storages.
func assemble(cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, storages *store.Storages, log *logger.Logger) (*App, error) {
	client, err := adapter.NewClient(cfg.Adapter, cfg.App, log)
	if err != nil {
		return nil, fmt.Errorf("create adapter: %w", err)
	}
	itemAdapter := adapter.NewItemAdapter(client)
	supplierAdapter := adapter.NewSupplierAdapter(client)

	st := state.NewStore()
	m := metrics.New()
	syncOpts := deltasync.Options{
		Metrics:  m,
		Logger:   log,
		PageSize: cfg.Adapter.PageSize,
	}

	services, err := service.NewServices(service.Dependencies{
		Store:           st,
		ItemAdapter:     itemAdapter,
		SupplierAdapter: supplierAdapter,
		ItemSyncer:      deltasync.New[models.Item](st, itemAdapter, storages.Items, syncOpts),
		SupplierSyncer:  deltasync.New[models.Supplier](st, supplierAdapter, storages.Suppliers, syncOpts),
		Storages:        storages,
		BuildInfo:       buildInfo,
	}, *cfg, log)
	if err != nil {
		return nil, fmt.Errorf("create services: %w", err)
	}

	a := &App{
		services:   services,
		storages:   storages,
		startStore: cfg.App.StoreID,
		logger:     log,
	}

	w := workers.NewWorkers(cfg.Workers, services.Session, log)
	if w.Len() > 0 {
		a.background = append(a.background, runnerFunc(func(ctx context.Context) error {
			w.Run(ctx)
			return nil
		}))
	}

	if cfg.Server.HTTPAddress != "" {
		handlers, err := handler.NewHandlers(services, cfg.Server, log,
			handlerhttp.WithMetrics(m.Handler()),
			handlerhttp.WithHashKey(cfg.App.HashKey),
		)
		if err != nil {
			return nil, fmt.Errorf("create handlers: %w", err)
		}
		srv, err := server.NewServer(handlers, cfg.Server, log)
		if err != nil {
			return nil, fmt.Errorf("create server: %w", err)
		}
		a.background = append(a.background, runnerFunc(srv.RunServer))
	}

	if cfg.UI.Enabled {
		ui, err := tui.New(services, log)
		if err != nil {
			return nil, fmt.Errorf("create terminal monitor: %w", err)
		}
		a.foreground = ui
	}

	return a, nil
}

// Services returns the use cases of the process.
func (a *App) Services() *service.Services {
	return a.services
}

// Run selects the configured store and runs every part until ctx is
// cancelled. Closing the terminal monitor cancels the rest.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	if a.startStore != "" {
		g.Go(func() error {
			a.selectStartStore(gctx)
			return nil
		})
	}

	for _, r := range a.background {
		g.Go(func() error {
			return r.Run(gctx)
		})
	}

	if a.foreground != nil {
		g.Go(func() error {
			defer cancel()
			return a.foreground.Run(gctx)
		})
	} else {
		// nothing to quit from; wait for a signal
		g.Go(func() error {
			<-gctx.Done()
			return nil
		})
	}

	a.logger.Info().
		Int("background", len(a.background)).
		Bool("monitor", a.foreground != nil).
		Msg("stock keeper started")

	err := g.Wait()
	a.logger.Info().Msg("stock keeper stopped")
	return err
}

func (a *App) selectStartStore(ctx context.Context) {
	err := a.services.Session.SelectStore(ctx, a.startStore)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	if a.services.Session.State().ActiveStore == a.startStore {
		a.logger.Warn().Err(err).Str("store_id", a.startStore).Msg("store selected with sync errors")
		return
	}
	a.logger.Err(err).Str("store_id", a.startStore).Msg("error selecting store on startup")
}

// Close releases the snapshot database and flushes pending spans.
func (a *App) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	if a.storages != nil {
		if err := a.storages.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close storages: %w", err))
		}
	}
	if a.shutdownTracing != nil {
		if err := a.shutdownTracing(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown telemetry: %w", err))
		}
	}
	return errors.Join(errs...)
}
