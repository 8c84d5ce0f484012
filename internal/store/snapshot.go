// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-stock-keeper/models"
)

// Snapshot is a collection restored from the local database.
type Snapshot[T models.Record] struct {
	Records        []T
	Stamp          models.Stamp
	DeleteActivity models.Stamp
}

// CollectionSnapshot stores one record collection as JSON payloads in a
// [SnapshotRepository]. It satisfies the delta sync persistence hook.
type CollectionSnapshot[T models.Record] struct {
	repo       SnapshotRepository
	collection models.Collection
}

// NewCollectionSnapshot returns the snapshot of collection kept in repo.
func NewCollectionSnapshot[T models.Record](repo SnapshotRepository, collection models.Collection) *CollectionSnapshot[T] {
	return &CollectionSnapshot[T]{repo: repo, collection: collection}
}

// Save upserts records by id.
func (s *CollectionSnapshot[T]) Save(ctx context.Context, storeID string, records []T) error {
	rows, err := s.encode(records)
	if err != nil {
		return err
	}
	return s.repo.UpsertRecords(ctx, storeID, s.collection, rows)
}

// Replace drops the stored records of this collection for storeID and saves
// records in their place. Other collections and the stamps are kept.
func (s *CollectionSnapshot[T]) Replace(ctx context.Context, storeID string, records []T) error {
	rows, err := s.encode(records)
	if err != nil {
		return err
	}
	return s.repo.ReplaceRecords(ctx, storeID, s.collection, rows)
}

func (s *CollectionSnapshot[T]) encode(records []T) ([]SnapshotRecord, error) {
	rows := make([]SnapshotRecord, 0, len(records))
	for _, rec := range records {
		payload, err := json.Marshal(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: %s %q: %w", ErrEncodingRecord, s.collection, rec.RecordID(), err)
		}
		rows = append(rows, SnapshotRecord{ID: rec.RecordID(), Payload: payload})
	}
	return rows, nil
}

// Delete removes one record.
func (s *CollectionSnapshot[T]) Delete(ctx context.Context, storeID, id string) error {
	return s.repo.DeleteRecord(ctx, storeID, s.collection, id)
}

// SaveStamps records the collection and delete-activity stamps.
func (s *CollectionSnapshot[T]) SaveStamps(ctx context.Context, storeID string, stamp, deleteActivity models.Stamp) error {
	return s.repo.SaveStamps(ctx, storeID, s.collection, stamp, deleteActivity)
}

// Load restores the collection of storeID. A collection whose stamps were
// never saved yields [ErrSnapshotNotFound] even when rows exist, since such
// rows cannot be delta-fetched from a known point.
func (s *CollectionSnapshot[T]) Load(ctx context.Context, storeID string) (Snapshot[T], error) {
	stamp, deleteActivity, err := s.repo.LoadStamps(ctx, storeID, s.collection)
	if err != nil {
		return Snapshot[T]{}, err
	}

	rows, err := s.repo.LoadRecords(ctx, storeID, s.collection)
	if err != nil {
		return Snapshot[T]{}, err
	}

	records := make([]T, 0, len(rows))
	for _, row := range rows {
		var rec T
		if err = json.Unmarshal(row.Payload, &rec); err != nil {
			return Snapshot[T]{}, fmt.Errorf("%w: %s %q: %w", ErrEncodingRecord, s.collection, row.ID, err)
		}
		records = append(records, rec)
	}

	return Snapshot[T]{Records: records, Stamp: stamp, DeleteActivity: deleteActivity}, nil
}

// Clear drops everything persisted for storeID, across all collections.
func (s *CollectionSnapshot[T]) Clear(ctx context.Context, storeID string) error {
	return s.repo.ClearStore(ctx, storeID)
}
