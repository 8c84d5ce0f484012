// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// WriteResult is the outcome of a successful create or update call.
//
// The remote API nests the record under an entity key ("item", "supplier"),
// next to the stamps:
//
//	{ "item": {...}, "now": <stamp>, "lastAction": <stamp> }
type WriteResult[T Record] struct {
	// Record is the record as persisted by the server.
	Record T
	// Now is the new collection stamp after this write.
	Now Stamp
	// LastAction is the collection stamp the server held right before it
	// processed this write.
	LastAction Stamp
}

// DeleteResult is the outcome of a successful delete call. Deletions carry a
// separate "delete activity" stamp pair.
type DeleteResult struct {
	// ID is the identifier of the removed record.
	ID string `json:"id"`
	// Now is the new delete-activity stamp.
	Now Stamp `json:"now"`
	// LastAction is the delete-activity stamp before this delete.
	LastAction Stamp `json:"lastAction"`
}

// Page is one page of a paginated read.
//
//	{ "<list key>": [...], "hasMoreRecords": true, "totalRecords": 120, "now": <stamp> }
type Page[T Record] struct {
	Records        []T
	HasMoreRecords bool
	// TotalRecords is optional; zero when the endpoint does not report it.
	TotalRecords int
	// Now is the server stamp at read time; optional.
	Now Stamp
	// DeleteActivity is the server delete-activity stamp; optional.
	DeleteActivity Stamp
}

// PageRequest selects one page of a full or delta read.
type PageRequest struct {
	StoreID string
	Skip    int
	// After limits the read to records changed after this stamp. Zero means
	// a full read.
	After Stamp
	Limit int
}

// ListQuery selects one page of a filtered list view.
type ListQuery struct {
	StoreID string
	Search  string
	Skip    int
	Limit   int
}
