// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
)

const (
	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 5 * time.Second
)

type httpServer struct {
	server   *http.Server
	listener net.Listener

	logger *logger.Logger
}

func newHTTPServer(router http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	handler := router
	if cfg.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, cfg.RequestTimeout, `{"error":"request timeout"}`)
	}
	handler = otelhttp.NewHandler(handler, "view-api",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)

	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		logger: logger,
	}
}

// listen binds the address, so callers learn about a busy port before
// serving starts.
func (h *httpServer) listen() error {
	ln, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", h.server.Addr, err)
	}
	h.listener = ln
	return nil
}

// Addr is the bound address, available after listen.
func (h *httpServer) Addr() string {
	if h.listener == nil {
		return h.server.Addr
	}
	return h.listener.Addr().String()
}

func (h *httpServer) RunServer(ctx context.Context) error {
	if h.listener == nil {
		if err := h.listen(); err != nil {
			return err
		}
	}

	serveErr := make(chan error, 1)
	go func() {
		h.logger.Info().Str("addr", h.Addr()).Msg("HTTP server listening")
		if err := h.server.Serve(h.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	h.logger.Info().Msg("HTTP server Shutdown")
	if err := h.server.Shutdown(shutdownCtx); err != nil {
		// ошибки закрытия Listener
		return fmt.Errorf("HTTP server Shutdown: %w", err)
	}
	return <-serveErr
}
