// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client of the remote inventory REST API.
//
// [RecordAdapter] reads and writes one record collection (items or
// suppliers). Every call goes through a shared [Client] that attaches the
// bearer token, signs request bodies with HMAC-SHA256 when a hash key is
// configured and traces the call with OpenTelemetry.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrConflict] for
// 409, [ErrUnauthorized] for 401) and [errors.As] with *models.FieldError for
// validation failures reported by the server.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-stock-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/record_adapter_mock.go -package=mock

// RecordAdapter is the remote API of one record collection.
type RecordAdapter[T models.Record] interface {
	// Fetch reads one page of the full collection, or of the records changed
	// after req.After when it is set. Used by the delta sync cache.
	Fetch(ctx context.Context, req models.PageRequest) (models.Page[T], error)

	// List reads one page of a server-side filtered list view.
	List(ctx context.Context, q models.ListQuery) (models.Page[T], error)

	// Create stores a new record and returns it with the collection stamps.
	Create(ctx context.Context, record T) (models.WriteResult[T], error)

	// Update replaces a record and returns it with the collection stamps.
	Update(ctx context.Context, record T) (models.WriteResult[T], error)

	// Delete removes a record and returns the delete-activity stamps.
	Delete(ctx context.Context, storeID, id string) (models.DeleteResult, error)
}
