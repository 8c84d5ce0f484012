// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app wires the stock keeper process together: snapshot storage,
// remote API adapter, state store, delta syncers, services, background
// workers, the local view API and the optional terminal monitor.
//
// [NewApp] builds every component from a [config.StructuredConfig]; [App.Run]
// runs them side by side until the context is cancelled or the terminal
// monitor is closed.
package app
