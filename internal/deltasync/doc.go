// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package deltasync keeps a store-scoped collection mirror in step with the
// remote inventory API.
//
// Every remote write returns the collection stamp the server held before the
// write (lastAction) and the stamp after it (now). When lastAction equals
// the stamp held locally the written record is merged directly. Otherwise
// another device wrote in between and the collection is reconciled with a
// paginated delta fetch from the stale local stamp before the stamp is
// advanced.
//
// Delta fetches are all-or-nothing: pages are buffered and committed to the
// state store only after the last page arrives. A failed fetch raises an
// alert and leaves the cached records and stamp untouched.
//
// Concurrent reconciliations from the same stale stamp share one fetch
// (singleflight). A caller joins a shared fetch only when its own write is
// covered by it; otherwise it runs a fetch of its own.
//
// Deletes carry a separate delete-activity stamp. A mismatch there is
// recorded and counted but never reconciled.
package deltasync
