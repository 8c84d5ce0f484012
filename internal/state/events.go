// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"github.com/MKhiriev/go-stock-keeper/models"
)

// Event is a state transition understood by [Reduce].
type Event interface {
	reduce(State) State
}

// StoreSelected switches the active store. Every cached collection is
// dropped back to empty; progress and alerts survive.
type StoreSelected struct {
	StoreID string
}

// Reset returns the application to the zero state.
type Reset struct{}

// RecordsMerged inserts records or replaces them by id.
type RecordsMerged[T models.Record] struct {
	StoreID string
	Records []T
}

// CollectionCleared drops every record and stamp of one collection. A full
// reload dispatches it ahead of the fetched records so that records deleted
// elsewhere do not survive.
type CollectionCleared[T models.Record] struct {
	StoreID string
}

// LoadCompleted finishes an initial full load.
type LoadCompleted[T models.Record] struct {
	StoreID        string
	Stamp          models.Stamp
	DeleteActivity models.Stamp
	// Total is the server-reported record count; zero keeps the local count.
	Total int
}

// ReconcileStarted marks the start of a delta fetch.
type ReconcileStarted[T models.Record] struct {
	StoreID string
}

// ReconcileFinished marks a successful delta fetch.
type ReconcileFinished[T models.Record] struct {
	StoreID string
}

// ReconcileFailed marks a failed delta fetch. The cached records are not
// touched.
type ReconcileFailed[T models.Record] struct {
	StoreID string
	Err     error
}

// StampAdvanced moves the collection stamp forward. Older stamps are ignored.
type StampAdvanced[T models.Record] struct {
	StoreID string
	Stamp   models.Stamp
}

// RecordDeleted removes exactly one record.
type RecordDeleted[T models.Record] struct {
	StoreID string
	ID      string
}

// DeleteActivityRecorded stores the delete-activity stamp returned by a
// delete. Drift marks that the previous server value did not match ours.
type DeleteActivityRecorded[T models.Record] struct {
	StoreID  string
	Activity models.Stamp
	Drift    bool
}

// ProgressStarted is dispatched before a network call.
type ProgressStarted struct{}

// ProgressFinished is dispatched after a network call, whatever its outcome.
type ProgressFinished struct{}

// AlertRaised appends a user-facing alert.
type AlertRaised struct {
	Alert models.Alert
}

// AlertDismissed removes the alert with the given id.
type AlertDismissed struct {
	ID string
}
