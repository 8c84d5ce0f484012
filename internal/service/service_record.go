// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-stock-keeper/internal/adapter"
	"github.com/MKhiriev/go-stock-keeper/internal/deltasync"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/state"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// recordService performs remote writes and hands their results to the delta
// sync cache. Nothing is applied to the cache before the server accepted the
// write.
type recordService[T models.Record] struct {
	adapter adapter.RecordAdapter[T]
	syncer  *deltasync.Syncer[T]
	store   *state.Store

	storeOf func(T) string
	text    func(T) []string
	kind    string

	logger *logger.Logger
}

// NewItemService returns the item catalog service.
func NewItemService(a adapter.RecordAdapter[models.Item], syncer *deltasync.Syncer[models.Item], st *state.Store, log *logger.Logger) RecordService[models.Item] {
	return newRecordService(a, syncer, st, itemStoreID, itemText, log)
}

// NewSupplierService returns the supplier service.
func NewSupplierService(a adapter.RecordAdapter[models.Supplier], syncer *deltasync.Syncer[models.Supplier], st *state.Store, log *logger.Logger) RecordService[models.Supplier] {
	return newRecordService(a, syncer, st, supplierStoreID, supplierText, log)
}

func newRecordService[T models.Record](
	a adapter.RecordAdapter[T],
	syncer *deltasync.Syncer[T],
	st *state.Store,
	storeOf func(T) string,
	text func(T) []string,
	log *logger.Logger,
) *recordService[T] {
	kind := state.KindOf[T]().String()
	return &recordService[T]{
		adapter: a,
		syncer:  syncer,
		store:   st,
		storeOf: storeOf,
		text:    text,
		kind:    kind,
		logger:  log.WithStr("collection", kind),
	}
}

func (s *recordService[T]) Create(ctx context.Context, record T) (T, error) {
	var zero T

	storeID := s.storeOf(record)
	if err := s.requireActive(storeID); err != nil {
		return zero, err
	}

	res, err := s.adapter.Create(ctx, record)
	if err != nil {
		s.logger.Debug().Err(err).Str("store_id", storeID).Msg("create rejected")
		return zero, fmt.Errorf("create %s: %w", s.kind, err)
	}

	s.applyWrite(ctx, storeID, res)
	return res.Record, nil
}

func (s *recordService[T]) Update(ctx context.Context, record T) (T, error) {
	var zero T

	storeID := s.storeOf(record)
	if err := s.requireActive(storeID); err != nil {
		return zero, err
	}

	res, err := s.adapter.Update(ctx, record)
	if err != nil {
		s.logger.Debug().Err(err).Str("store_id", storeID).Str("id", record.RecordID()).Msg("update rejected")
		return zero, fmt.Errorf("update %s: %w", s.kind, err)
	}

	s.applyWrite(ctx, storeID, res)
	return res.Record, nil
}

// applyWrite never fails the caller: the server already accepted the write,
// and a failed reconciliation is surfaced as an alert by the syncer.
func (s *recordService[T]) applyWrite(ctx context.Context, storeID string, res models.WriteResult[T]) {
	err := s.syncer.ApplyLocalWrite(ctx, storeID, res)
	switch {
	case err == nil:
	case errors.Is(err, deltasync.ErrStoreSwitched):
		s.logger.Debug().Str("store_id", storeID).Msg("store switched during write, result discarded")
	default:
		s.logger.Warn().Err(err).
			Str("store_id", storeID).
			Str("id", res.Record.RecordID()).
			Msg("write accepted remotely but local cache not reconciled")
	}
}

func (s *recordService[T]) Delete(ctx context.Context, storeID, id string) error {
	if err := s.requireActive(storeID); err != nil {
		return err
	}

	res, err := s.adapter.Delete(ctx, storeID, id)
	if err != nil {
		s.logger.Debug().Err(err).Str("store_id", storeID).Str("id", id).Msg("delete rejected")
		return fmt.Errorf("delete %s: %w", s.kind, err)
	}

	s.syncer.ApplyLocalDelete(ctx, storeID, res)
	return nil
}

func (s *recordService[T]) List(_ context.Context, storeID, search string) ([]T, error) {
	c := s.syncer.Collection(storeID)

	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]T, 0, len(c.Records))
	for _, rec := range c.Records {
		if search == "" || s.matches(rec, search) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *recordService[T]) matches(rec T, search string) bool {
	for _, field := range s.text(rec) {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

func (s *recordService[T]) Get(_ context.Context, storeID, id string) (T, error) {
	rec, ok := s.syncer.Collection(storeID).Get(id)
	if !ok {
		return rec, fmt.Errorf("%s %q: %w", s.kind, id, ErrRecordNotFound)
	}
	return rec, nil
}

func (s *recordService[T]) Collection(storeID string) state.Collection[T] {
	return s.syncer.Collection(storeID)
}

func (s *recordService[T]) Refresh(ctx context.Context, storeID string) error {
	if err := s.requireActive(storeID); err != nil {
		return err
	}
	return s.syncer.Refresh(ctx, storeID)
}

func (s *recordService[T]) Browse(ctx context.Context, q models.ListQuery) (models.Page[T], error) {
	if q.StoreID == "" {
		q.StoreID = s.store.Snapshot().ActiveStore
	}
	if q.StoreID == "" {
		return models.Page[T]{}, ErrNoStoreSelected
	}
	return s.adapter.List(ctx, q)
}

// requireActive rejects writes for any store but the selected one, since
// their results could not be committed to the cache.
func (s *recordService[T]) requireActive(storeID string) error {
	active := s.store.Snapshot().ActiveStore
	if active == "" {
		return ErrNoStoreSelected
	}
	if storeID != active {
		return fmt.Errorf("%w: %q (active %q)", ErrStoreNotActive, storeID, active)
	}
	return nil
}

func itemStoreID(i models.Item) string { return i.StoreID }

func supplierStoreID(s models.Supplier) string { return s.StoreID }

// itemText is the text an item list search looks at.
func itemText(i models.Item) []string {
	out := []string{i.Name, i.Code}
	for _, v := range i.Variants {
		out = append(out, v.Name, v.Barcode)
	}
	for _, p := range i.Packings {
		out = append(out, p.Barcode)
	}
	return out
}

func supplierText(s models.Supplier) []string {
	return []string{s.Name, s.Phone, s.Email, s.Address}
}
