// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the local view API of the stock keeper.
//
// It exposes the cached state of the active store, record reads and writes
// per collection, store selection and refresh controls, and the Prometheus
// endpoint. Request tracing, access logging, response compression and
// body integrity checks are handled here before requests reach the service
// layer.
package http
