// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler groups the transport handlers of the process.
package handler

import (
	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/handler/http"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the handlers enabled by cfg. opts tune the view API.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger, opts ...http.Option) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger, opts...)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
