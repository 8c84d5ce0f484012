// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"github.com/MKhiriev/go-stock-keeper/models"
)

// Status is the load status of a cached collection.
type Status int

const (
	// StatusEmpty means nothing was loaded for the store yet.
	StatusEmpty Status = iota
	// StatusLoaded means the collection mirrors the server up to Stamp.
	StatusLoaded
	// StatusReconciling means a delta fetch is in flight.
	StatusReconciling
)

func (s Status) String() string {
	switch s {
	case StatusLoaded:
		return "loaded"
	case StatusReconciling:
		return "reconciling"
	default:
		return "empty"
	}
}

// MarshalText renders the status by name in JSON views.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Collection is the cached mirror of one server collection for one store.
//
// Records are unique by id and ordered as the server paginated them; a record
// replaced by id keeps its position.
type Collection[T models.Record] struct {
	Status         Status       `json:"status"`
	Stamp          models.Stamp `json:"stamp"`
	DeleteActivity models.Stamp `json:"deleteActivity"`
	// DeleteDrift is set once a delete observed a delete-activity stamp other
	// than the one held locally. A delta fetch never clears it; the next
	// refresh replaces the collection with a full reload.
	DeleteDrift bool `json:"deleteDrift"`
	Records     []T  `json:"records"`
	Total       int  `json:"total"`
}

// Index returns the position of the record with the given id, or -1.
func (c Collection[T]) Index(id string) int {
	for i, r := range c.Records {
		if r.RecordID() == id {
			return i
		}
	}
	return -1
}

// Get returns the record with the given id.
func (c Collection[T]) Get(id string) (T, bool) {
	if i := c.Index(id); i >= 0 {
		return c.Records[i], true
	}
	var zero T
	return zero, false
}

// Len returns the number of cached records.
func (c Collection[T]) Len() int {
	return len(c.Records)
}

// merge returns a copy of c with records inserted or replaced by id.
// Duplicates inside records collapse onto the last occurrence.
func (c Collection[T]) merge(records []T) Collection[T] {
	if len(records) == 0 {
		return c
	}

	out := make([]T, len(c.Records), len(c.Records)+len(records))
	copy(out, c.Records)

	pos := make(map[string]int, len(out)+len(records))
	for i, r := range out {
		pos[r.RecordID()] = i
	}

	added := 0
	for _, r := range records {
		id := r.RecordID()
		if i, ok := pos[id]; ok {
			out[i] = r
			continue
		}
		pos[id] = len(out)
		out = append(out, r)
		added++
	}

	c.Records = out
	c.Total += added
	if c.Total < len(out) {
		c.Total = len(out)
	}
	return c
}

// remove returns a copy of c without the record with the given id. The
// second result is false when no such record is cached.
func (c Collection[T]) remove(id string) (Collection[T], bool) {
	i := c.Index(id)
	if i < 0 {
		return c, false
	}

	out := make([]T, 0, len(c.Records)-1)
	out = append(out, c.Records[:i]...)
	out = append(out, c.Records[i+1:]...)

	c.Records = out
	if c.Total > 0 {
		c.Total--
	}
	return c, true
}

// Shelf maps a store id to its collection of one record kind.
type Shelf[T models.Record] map[string]Collection[T]

// with returns a copy of the shelf with storeID set to c.
func (s Shelf[T]) with(storeID string, c Collection[T]) Shelf[T] {
	out := make(Shelf[T], len(s)+1)
	for k, v := range s {
		out[k] = v
	}
	out[storeID] = c
	return out
}
