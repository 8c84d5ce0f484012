// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Record is implemented by every master-data entity kept in the delta sync
// cache. Records are unique by RecordID within a store.
type Record interface {
	RecordID() string
}

// Collection names a cached server collection.
type Collection string

const (
	// CollectionItems is the item catalog collection.
	CollectionItems Collection = "items"
	// CollectionSuppliers is the supplier collection.
	CollectionSuppliers Collection = "suppliers"
)

// String implements fmt.Stringer.
func (c Collection) String() string {
	return string(c)
}
