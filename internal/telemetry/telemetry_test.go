// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_NoExporter(t *testing.T) {
	shutdown, err := Init(t.Context(), Config{ServiceName: "stock-keeper-test"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	_, span := Tracer().Start(t.Context(), "test")
	defer span.End()

	assert.True(t, span.SpanContext().IsValid())
}

func TestInit_DefaultServiceName(t *testing.T) {
	shutdown, err := Init(t.Context(), Config{})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}
