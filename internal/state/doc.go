// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package state holds the application state of the stock keeper client:
// the active store, one store-scoped shelf of collections per record kind,
// the global progress counter and the alert list.
//
// State is an immutable value. It changes only through [Reduce], a pure
// function of (State, Event), and is owned at runtime by a [Store], which
// serialises dispatches and fans out post-reducer snapshots to subscribers.
package state
