// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-stock-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SnapshotRecord is one cached record in its stored form.
type SnapshotRecord struct {
	ID      string
	Payload []byte
}

// SnapshotRepository persists per-store collection snapshots so that a
// restart can warm-start from the last synced state.
type SnapshotRepository interface {
	// UpsertRecords replaces records with the same id in place and appends
	// new ones after the existing rows.
	UpsertRecords(ctx context.Context, storeID string, collection models.Collection, records []SnapshotRecord) error
	// ReplaceRecords drops every record of the collection and stores records
	// in their order.
	ReplaceRecords(ctx context.Context, storeID string, collection models.Collection, records []SnapshotRecord) error
	DeleteRecord(ctx context.Context, storeID string, collection models.Collection, id string) error
	SaveStamps(ctx context.Context, storeID string, collection models.Collection, stamp, deleteActivity models.Stamp) error
	// LoadRecords returns the records in insertion order.
	LoadRecords(ctx context.Context, storeID string, collection models.Collection) ([]SnapshotRecord, error)
	// LoadStamps returns [ErrSnapshotNotFound] when the collection was never
	// synced for storeID.
	LoadStamps(ctx context.Context, storeID string, collection models.Collection) (stamp, deleteActivity models.Stamp, err error)
	ClearStore(ctx context.Context, storeID string) error
}
