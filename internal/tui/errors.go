// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-stock-keeper/internal/adapter"
	"github.com/MKhiriev/go-stock-keeper/internal/service"
)

// humanizeError turns sync and network failures into a short status line.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrNoStoreSelected):
		return "No store selected"
	case errors.Is(err, adapter.ErrUnauthorized):
		return "API token rejected"
	case errors.Is(err, adapter.ErrServiceUnavailable), errors.Is(err, adapter.ErrBadGateway):
		return "Server unavailable"
	case errors.Is(err, context.DeadlineExceeded):
		return "Server did not answer in time"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") {
		return "Network down or server unreachable"
	}

	return err.Error()
}
