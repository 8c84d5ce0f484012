// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// Storages bundles the snapshot database and the per-collection snapshots
// built on it.
type Storages struct {
	DB        *DB
	Snapshots SnapshotRepository
	Items     *CollectionSnapshot[models.Item]
	Suppliers *CollectionSnapshot[models.Supplier]
}

// NewStorages connects to the snapshot database, applies migrations and
// builds the collection snapshots.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("migrate snapshot database: %w", err)
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	repo := NewSnapshotRepository(db, log)
	return &Storages{
		DB:        db,
		Snapshots: repo,
		Items:     NewCollectionSnapshot[models.Item](repo, models.CollectionItems),
		Suppliers: NewCollectionSnapshot[models.Supplier](repo, models.CollectionSuppliers),
	}
}

// Close releases the database connection.
func (s *Storages) Close() error {
	return s.DB.Close()
}
