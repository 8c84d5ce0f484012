// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"github.com/MKhiriev/go-stock-keeper/models"
)

// State is the whole client state. Values are treated as immutable: reducers
// copy maps and slices before changing them, so a State obtained from
// [Store.Snapshot] may be read concurrently without locking.
type State struct {
	ActiveStore string                 `json:"activeStore"`
	Items       Shelf[models.Item]     `json:"items"`
	Suppliers   Shelf[models.Supplier] `json:"suppliers"`
	// Progress counts outstanding network calls.
	Progress int            `json:"progress"`
	Alerts   []models.Alert `json:"alerts"`
}

// Busy reports whether any network call is outstanding.
func (s State) Busy() bool {
	return s.Progress > 0
}

// CollectionOf returns the collection of record kind T cached for storeID.
// A store that was never loaded yields an empty collection.
func CollectionOf[T models.Record](s State, storeID string) Collection[T] {
	return shelfOf[T](s)[storeID]
}

// KindOf returns the collection name used for record kind T.
func KindOf[T models.Record]() models.Collection {
	var zero T
	switch any(zero).(type) {
	case models.Item:
		return models.CollectionItems
	case models.Supplier:
		return models.CollectionSuppliers
	}
	return ""
}

func shelfOf[T models.Record](s State) Shelf[T] {
	var zero T
	switch any(zero).(type) {
	case models.Item:
		return any(s.Items).(Shelf[T])
	case models.Supplier:
		return any(s.Suppliers).(Shelf[T])
	}
	return nil
}

func withShelf[T models.Record](s State, shelf Shelf[T]) State {
	switch v := any(shelf).(type) {
	case Shelf[models.Item]:
		s.Items = v
	case Shelf[models.Supplier]:
		s.Suppliers = v
	}
	return s
}

// updateCollection applies fn to the collection of kind T for storeID and
// returns the new state. fn must not mutate its argument in place.
func updateCollection[T models.Record](s State, storeID string, fn func(Collection[T]) Collection[T]) State {
	shelf := shelfOf[T](s)
	return withShelf(s, shelf.with(storeID, fn(shelf[storeID])))
}
