// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package deltasync

//go:generate mockgen -source=interfaces.go -destination=../mock/deltasync_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-stock-keeper/models"
)

// Fetcher reads one page of a collection. A zero PageRequest.After means a
// full read.
type Fetcher[T models.Record] interface {
	Fetch(ctx context.Context, req models.PageRequest) (models.Page[T], error)
}

// Persister writes committed cache changes through to durable storage.
type Persister[T models.Record] interface {
	Save(ctx context.Context, storeID string, records []T) error
	// Replace swaps every stored record of storeID for records. Used after a
	// full load.
	Replace(ctx context.Context, storeID string, records []T) error
	Delete(ctx context.Context, storeID, id string) error
	SaveStamps(ctx context.Context, storeID string, stamp, deleteActivity models.Stamp) error
}
