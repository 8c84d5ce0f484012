// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the view API listener.
//
// It wraps the router with OpenTelemetry instrumentation and a per-request
// timeout, serves until the context is cancelled and then shuts down
// gracefully.
package server
