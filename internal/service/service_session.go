// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-stock-keeper/internal/deltasync"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/state"
	"github.com/MKhiriev/go-stock-keeper/internal/store"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// CollectionSync brings one collection of a store up to date.
type CollectionSync interface {
	Kind() models.Collection
	// WarmStart seeds the collection from the local snapshot and
	// delta-fetches from its stamp, or fully loads it when there is none.
	WarmStart(ctx context.Context, storeID string) error
	Refresh(ctx context.Context, storeID string) error
}

type syncedCollection[T models.Record] struct {
	syncer    *deltasync.Syncer[T]
	snapshots SnapshotLoader[T]
	logger    *logger.Logger
}

// NewCollectionSync pairs a syncer with its snapshot. snapshots may be nil,
// in which case every warm start is a full load.
func NewCollectionSync[T models.Record](syncer *deltasync.Syncer[T], snapshots SnapshotLoader[T], log *logger.Logger) CollectionSync {
	return &syncedCollection[T]{syncer: syncer, snapshots: snapshots, logger: log}
}

func (c *syncedCollection[T]) Kind() models.Collection {
	return state.KindOf[T]()
}

func (c *syncedCollection[T]) WarmStart(ctx context.Context, storeID string) error {
	if c.snapshots == nil {
		return c.syncer.LoadAll(ctx, storeID)
	}

	snap, err := c.snapshots.Load(ctx, storeID)
	switch {
	case errors.Is(err, store.ErrSnapshotNotFound):
		return c.syncer.LoadAll(ctx, storeID)
	case err != nil:
		c.logger.Warn().Err(err).
			Str("store_id", storeID).
			Str("collection", c.Kind().String()).
			Msg("local snapshot unreadable, loading from server")
		return c.syncer.LoadAll(ctx, storeID)
	}

	c.syncer.Restore(storeID, snap.Records, snap.Stamp, snap.DeleteActivity)
	c.logger.Debug().
		Str("store_id", storeID).
		Str("collection", c.Kind().String()).
		Int("records", len(snap.Records)).
		Str("stamp", snap.Stamp.String()).
		Msg("restored local snapshot")

	return c.syncer.DeltaFetch(ctx, storeID, snap.Stamp)
}

func (c *syncedCollection[T]) Refresh(ctx context.Context, storeID string) error {
	return c.syncer.Refresh(ctx, storeID)
}

type sessionService struct {
	store       *state.Store
	collections []CollectionSync
	purger      SnapshotPurger

	logger *logger.Logger
}

// NewSessionService returns the session over the given collections. purger
// may be nil.
func NewSessionService(st *state.Store, purger SnapshotPurger, log *logger.Logger, collections ...CollectionSync) SessionService {
	return &sessionService{
		store:       st,
		collections: collections,
		purger:      purger,
		logger:      log,
	}
}

func (s *sessionService) SelectStore(ctx context.Context, storeID string) error {
	if storeID == "" {
		return ErrNoStoreSelected
	}

	s.store.Dispatch(state.StoreSelected{StoreID: storeID})
	s.logger.Info().Str("store_id", storeID).Msg("store selected")

	return s.each(ctx, func(ctx context.Context, c CollectionSync) error {
		return c.WarmStart(ctx, storeID)
	})
}

func (s *sessionService) Reset(ctx context.Context) error {
	active := s.store.Snapshot().ActiveStore
	s.store.Dispatch(state.Reset{})

	if s.purger == nil || active == "" {
		return nil
	}
	if err := s.purger.ClearStore(ctx, active); err != nil {
		s.logger.Err(err).Str("store_id", active).Msg("failed to clear local snapshot")
		return fmt.Errorf("clear snapshot of %q: %w", active, err)
	}
	return nil
}

func (s *sessionService) ActiveStore() string {
	return s.store.Snapshot().ActiveStore
}

func (s *sessionService) State() state.State {
	return s.store.Snapshot()
}

func (s *sessionService) Subscribe() (<-chan state.State, func()) {
	return s.store.Subscribe()
}

func (s *sessionService) DismissAlert(id string) {
	s.store.Dispatch(state.AlertDismissed{ID: id})
}

func (s *sessionService) RefreshAll(ctx context.Context) error {
	storeID := s.ActiveStore()
	if storeID == "" {
		return ErrNoStoreSelected
	}

	return s.each(ctx, func(ctx context.Context, c CollectionSync) error {
		return c.Refresh(ctx, storeID)
	})
}

// each runs fn for every collection concurrently. A failing collection does
// not cancel the others; all errors are joined.
func (s *sessionService) each(ctx context.Context, fn func(context.Context, CollectionSync) error) error {
	errs := make([]error, len(s.collections))

	var g errgroup.Group
	for i, c := range s.collections {
		g.Go(func() error {
			if err := fn(ctx, c); err != nil {
				errs[i] = fmt.Errorf("%s: %w", c.Kind(), err)
			}
			return nil
		})
	}
	_ = g.Wait()

	return errors.Join(errs...)
}
