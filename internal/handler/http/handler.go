// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/service"
	"github.com/MKhiriev/go-stock-keeper/internal/utils"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// Handler serves the local view API.
type Handler struct {
	services *service.Services

	items     *recordHandler[models.Item]
	suppliers *recordHandler[models.Supplier]

	// metrics serves GET /metrics; nil disables the route.
	metrics http.Handler
	// hashKey enables HMAC verification of request bodies.
	hashKey string

	logger *logger.Logger
}

// Option tunes a [Handler].
type Option func(*Handler)

// WithMetrics mounts h under GET /metrics.
func WithMetrics(h http.Handler) Option {
	return func(handler *Handler) {
		handler.metrics = h
	}
}

// WithHashKey makes write routes verify the [utils.HashHeader] of request
// bodies that carry one.
func WithHashKey(key string) Option {
	return func(handler *Handler) {
		handler.hashKey = key
	}
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services: services,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.hashKey != "" {
		utils.InitHasherPool(h.hashKey)
	}
	if services != nil {
		h.items = newRecordHandler(services.Items, models.CollectionItems)
		h.suppliers = newRecordHandler(services.Suppliers, models.CollectionSuppliers)
	}

	logger.Info().Msg("http handler created")
	return h
}
