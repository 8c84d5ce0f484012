// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the use cases of the stock keeper: record writes
// that keep the delta sync cache consistent, store sessions with warm start
// from the local snapshot, and build information.
package service

import (
	"context"

	"github.com/MKhiriev/go-stock-keeper/internal/state"
	"github.com/MKhiriev/go-stock-keeper/internal/store"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// RecordService manages one record collection of the active store.
type RecordService[T models.Record] interface {
	// Create writes record remotely and folds the result into the cache.
	Create(ctx context.Context, record T) (T, error)
	// Update writes record remotely and folds the result into the cache.
	Update(ctx context.Context, record T) (T, error)
	// Delete removes the record remotely and from the cache.
	Delete(ctx context.Context, storeID, id string) error

	// List returns the cached records of storeID whose searchable text
	// contains search, ignoring case. An empty search returns everything.
	List(ctx context.Context, storeID, search string) ([]T, error)
	// Get returns one cached record.
	Get(ctx context.Context, storeID, id string) (T, error)
	// Collection returns the cached collection with its status and stamps.
	Collection(storeID string) state.Collection[T]
	// Refresh delta-fetches storeID from the cached stamp.
	Refresh(ctx context.Context, storeID string) error

	// Browse reads one page of the server-side filtered list.
	Browse(ctx context.Context, q models.ListQuery) (models.Page[T], error)
}

// RecordServiceWrapper defines middleware composition for RecordService.
// Implementations wrap an existing RecordService to add behavior such as
// validation.
type RecordServiceWrapper[T models.Record] interface {
	Wrap(RecordService[T]) RecordService[T]
}

// SessionService tracks the selected store and the sync of all its
// collections.
type SessionService interface {
	// SelectStore resets the in-memory state to storeID and brings every
	// collection up to date, starting from the local snapshot when one
	// exists.
	SelectStore(ctx context.Context, storeID string) error
	// Reset clears the in-memory state and the persisted snapshot of the
	// active store.
	Reset(ctx context.Context) error
	ActiveStore() string
	State() state.State
	Subscribe() (<-chan state.State, func())
	DismissAlert(id string)
	// RefreshAll refreshes every collection of the active store.
	RefreshAll(ctx context.Context) error
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	BuildInfo() models.AppBuildInfo
}

// SnapshotLoader restores a persisted collection.
type SnapshotLoader[T models.Record] interface {
	Load(ctx context.Context, storeID string) (store.Snapshot[T], error)
}

// SnapshotPurger drops everything persisted for a store.
type SnapshotPurger interface {
	ClearStore(ctx context.Context, storeID string) error
}
