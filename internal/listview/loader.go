// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package listview backs paginated, server-filtered list views. Starting a
// new load cancels the one in flight, and a response that is no longer the
// latest is discarded instead of being applied.
package listview

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-stock-keeper/models"
)

// ErrSuperseded is returned by a load whose result was discarded because a
// newer load started or the loader was closed.
var ErrSuperseded = errors.New("list load superseded")

// ListFunc reads one page of a filtered list.
type ListFunc[T models.Record] func(ctx context.Context, q models.ListQuery) (models.Page[T], error)

// View is what a list screen renders.
type View[T models.Record] struct {
	Query   models.ListQuery
	Records []T
	Total   int
	HasMore bool
	Loading bool
}

// Loader owns one list view.
type Loader[T models.Record] struct {
	list ListFunc[T]

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	view   View[T]
}

// NewLoader returns a loader over list.
func NewLoader[T models.Record](list ListFunc[T]) *Loader[T] {
	return &Loader[T]{list: list}
}

// Load replaces the view with the first page of q.
func (l *Loader[T]) Load(ctx context.Context, q models.ListQuery) (View[T], error) {
	q.Skip = 0
	return l.run(ctx, q, false)
}

// LoadMore appends the next page of the current query.
func (l *Loader[T]) LoadMore(ctx context.Context) (View[T], error) {
	l.mu.Lock()
	q := l.view.Query
	q.Skip = len(l.view.Records)
	l.mu.Unlock()

	return l.run(ctx, q, true)
}

func (l *Loader[T]) run(ctx context.Context, q models.ListQuery, appendPage bool) (View[T], error) {
	ctx, cancel := context.WithCancel(ctx)

	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.gen++
	gen := l.gen
	l.cancel = cancel
	l.view.Loading = true
	l.mu.Unlock()

	page, err := l.list(ctx, q)

	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.gen {
		cancel()
		return l.snapshot(), ErrSuperseded
	}
	cancel()
	l.cancel = nil
	l.view.Loading = false

	if err != nil {
		return l.snapshot(), err
	}

	records := page.Records
	if appendPage {
		records = make([]T, 0, len(l.view.Records)+len(page.Records))
		records = append(records, l.view.Records...)
		records = append(records, page.Records...)
	}

	total := page.TotalRecords
	if total < len(records) {
		total = len(records)
	}

	l.view = View[T]{
		Query:   q,
		Records: records,
		Total:   total,
		HasMore: page.HasMoreRecords,
	}
	return l.snapshot(), nil
}

// Remove drops the row with the given id and decrements the total by one.
// It reports whether a row was removed.
func (l *Loader[T]) Remove(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, r := range l.view.Records {
		if r.RecordID() != id {
			continue
		}
		records := make([]T, 0, len(l.view.Records)-1)
		records = append(records, l.view.Records[:i]...)
		records = append(records, l.view.Records[i+1:]...)
		l.view.Records = records
		if l.view.Total > 0 {
			l.view.Total--
		}
		return true
	}
	return false
}

// Replace swaps the row with the same id in place. Rows not on screen are
// ignored.
func (l *Loader[T]) Replace(record T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, r := range l.view.Records {
		if r.RecordID() == record.RecordID() {
			records := make([]T, len(l.view.Records))
			copy(records, l.view.Records)
			records[i] = record
			l.view.Records = records
			return true
		}
	}
	return false
}

// View returns the current view.
func (l *Loader[T]) View() View[T] {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.snapshot()
}

// Close cancels the load in flight, if any. Its result will be discarded.
func (l *Loader[T]) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.gen++
	l.view.Loading = false
}

func (l *Loader[T]) snapshot() View[T] {
	v := l.view
	v.Records = append([]T(nil), l.view.Records...)
	return v
}
