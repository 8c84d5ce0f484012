// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"

	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/handler"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if handlers != nil && handlers.HTTP != nil && cfg.HTTPAddress != "" {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}

	if servers.httpServer == nil {
		return nil, errNoServersAreCreated
	}

	servers.logger = logger

	return servers, nil
}

func (s *server) RunServer(ctx context.Context) error {
	s.logger.Info().Msg("Launching HTTP server")
	if err := s.httpServer.RunServer(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
