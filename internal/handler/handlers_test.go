// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/handler/http"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/service"
)

// newTestServices returns a nil *service.Services. http.NewHandler only
// stores the pointer, so nil is safe for construction-time tests.
func newTestServices() *service.Services {
	return nil
}

func TestNewHandlers_HTTP(t *testing.T) {
	h, err := NewHandlers(newTestServices(), config.Server{HTTPAddress: ":8080"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
}

func TestNewHandlers_WithOptions(t *testing.T) {
	h, err := NewHandlers(newTestServices(), config.Server{HTTPAddress: ":8080"}, logger.Nop(),
		http.WithHashKey("secret"))

	require.NoError(t, err)
	assert.NotNil(t, h.HTTP)
}

// TestNewHandlers_NoAddress verifies that without a listen address
// NewHandlers returns errNoHandlersAreCreated and a nil *Handlers.
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(newTestServices(), config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":8080"}

	h1, err1 := NewHandlers(newTestServices(), cfg, logger.Nop())
	h2, err2 := NewHandlers(newTestServices(), cfg, logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}
