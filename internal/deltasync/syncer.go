// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package deltasync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/metrics"
	"github.com/MKhiriev/go-stock-keeper/internal/state"
	"github.com/MKhiriev/go-stock-keeper/internal/telemetry"
	"github.com/MKhiriev/go-stock-keeper/internal/utils"
	"github.com/MKhiriev/go-stock-keeper/models"
)

const defaultPageSize = 100

// Options carries the optional collaborators of a [Syncer].
type Options struct {
	Metrics  *metrics.Metrics
	Logger   *logger.Logger
	Tracer   trace.Tracer
	PageSize int
}

// Syncer keeps the collection of record kind T in the state store in step
// with the remote API.
type Syncer[T models.Record] struct {
	store     *state.Store
	fetcher   Fetcher[T]
	persister Persister[T]

	metrics  *metrics.Metrics
	log      *logger.Logger
	tracer   trace.Tracer
	pageSize int
	kind     string

	group singleflight.Group
}

// New builds a Syncer. persister may be nil.
func New[T models.Record](st *state.Store, fetcher Fetcher[T], persister Persister[T], opts Options) *Syncer[T] {
	kind := state.KindOf[T]().String()

	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Tracer == nil {
		opts.Tracer = telemetry.Tracer()
	}
	if opts.PageSize <= 0 {
		opts.PageSize = defaultPageSize
	}

	return &Syncer[T]{
		store:     st,
		fetcher:   fetcher,
		persister: persister,
		metrics:   opts.Metrics,
		log:       opts.Logger.WithStr("collection", kind),
		tracer:    opts.Tracer,
		pageSize:  opts.PageSize,
		kind:      kind,
	}
}

// Collection returns the cached collection of storeID.
func (s *Syncer[T]) Collection(storeID string) state.Collection[T] {
	return state.CollectionOf[T](s.store.Snapshot(), storeID)
}

// LoadAll performs a full load of storeID and replaces whatever was cached
// for it, in memory and in the persister. The collection stamp is taken from
// the first page, so writes landing while later pages are read are caught by
// the next reconciliation.
func (s *Syncer[T]) LoadAll(ctx context.Context, storeID string) error {
	if storeID == "" {
		return ErrNoStore
	}

	ctx, span := s.tracer.Start(ctx, "deltasync.LoadAll", trace.WithAttributes(
		attribute.String("store.id", storeID),
		attribute.String("collection", s.kind),
	))
	defer span.End()

	res, err := s.fetchPages(ctx, storeID, "")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.metrics.DeltaFetch(s.kind, metrics.ResultError)
		s.alert(fmt.Sprintf("Could not load %s: %v", s.kind, err))
		s.log.Err(err).Str("store_id", storeID).Msg("full load failed")
		return fmt.Errorf("%w: load %s: %w", ErrFetchFailed, s.kind, err)
	}
	s.metrics.DeltaFetch(s.kind, metrics.ResultOK)
	span.SetAttributes(attribute.Int("records", len(res.records)))

	if !s.isActive(storeID) {
		return ErrStoreSwitched
	}

	s.store.Dispatch(
		state.CollectionCleared[T]{StoreID: storeID},
		state.RecordsMerged[T]{StoreID: storeID, Records: res.records},
		state.LoadCompleted[T]{
			StoreID:        storeID,
			Stamp:          res.now,
			DeleteActivity: res.deleteActivity,
			Total:          res.total,
		},
	)
	s.persistReplace(ctx, storeID, res.records)

	s.log.Debug().
		Str("store_id", storeID).
		Int("records", len(res.records)).
		Str("stamp", res.now.String()).
		Msg("collection loaded")

	return nil
}

// Restore seeds storeID from a persisted snapshot without touching the
// network or the persister.
func (s *Syncer[T]) Restore(storeID string, records []T, stamp, deleteActivity models.Stamp) {
	s.store.Dispatch(
		state.RecordsMerged[T]{StoreID: storeID, Records: records},
		state.LoadCompleted[T]{StoreID: storeID, Stamp: stamp, DeleteActivity: deleteActivity},
	)
}

// ApplyLocalWrite folds the result of a successful create or update into
// the cache.
//
// When the write's lastAction matches the local stamp the record is merged
// and the stamp advanced to res.Now without a network call. Otherwise a delta
// fetch from the local stamp runs first and the written record, the fetched
// records and the new stamp are committed together. A failed fetch raises an
// alert and commits nothing.
func (s *Syncer[T]) ApplyLocalWrite(ctx context.Context, storeID string, res models.WriteResult[T]) error {
	if storeID == "" {
		return ErrNoStore
	}

	local := s.Collection(storeID).Stamp
	d := ApplyOrReconcile(local, res)

	if d.Action == ApplyLocal {
		s.store.Dispatch(
			state.RecordsMerged[T]{StoreID: storeID, Records: []T{res.Record}},
			state.StampAdvanced[T]{StoreID: storeID, Stamp: d.Now},
		)
		s.metrics.LocalWrite(s.kind, metrics.OutcomeApplied)
		s.persist(ctx, storeID, []T{res.Record})
		return nil
	}

	s.log.Debug().
		Str("store_id", storeID).
		Str("local_stamp", local.String()).
		Str("last_action", res.LastAction.String()).
		Msg("stamp mismatch, reconciling")

	fetched, err := s.reconcile(ctx, storeID, d.Since, res.LastAction, d.Now)
	if err != nil {
		s.metrics.LocalWrite(s.kind, metrics.OutcomeFailed)
		return err
	}

	// the written record goes first so that a newer copy from the fetch wins
	records := make([]T, 0, len(fetched.records)+1)
	records = append(records, res.Record)
	records = append(records, fetched.records...)

	if !s.isActive(storeID) {
		return ErrStoreSwitched
	}

	events := []state.Event{
		state.RecordsMerged[T]{StoreID: storeID, Records: records},
		state.StampAdvanced[T]{StoreID: storeID, Stamp: d.Now},
		state.ReconcileFinished[T]{StoreID: storeID},
	}
	// no reload on the write path; the next refresh picks it up
	if s.deletedElsewhere(storeID, fetched.deleteActivity) {
		events = append(events, state.DeleteActivityRecorded[T]{StoreID: storeID, Drift: true})
	}
	s.store.Dispatch(events...)
	s.metrics.LocalWrite(s.kind, metrics.OutcomeReconciled)
	s.persist(ctx, storeID, records)

	return nil
}

// DeltaFetch reads every record of storeID changed after since and merges
// them by id. The stamp advances to the server stamp of the first page when
// the endpoint reports one.
//
// Deleted records never show up in a delta. When the server reports delete
// activity newer than the one held locally, records were deleted elsewhere
// and the collection is fully reloaded instead.
func (s *Syncer[T]) DeltaFetch(ctx context.Context, storeID string, since models.Stamp) error {
	if storeID == "" {
		return ErrNoStore
	}

	fetched, err := s.reconcile(ctx, storeID, since, "", "")
	if err != nil {
		return err
	}

	if !s.isActive(storeID) {
		return ErrStoreSwitched
	}

	if s.deletedElsewhere(storeID, fetched.deleteActivity) {
		s.store.Dispatch(state.ReconcileFinished[T]{StoreID: storeID})
		s.log.Info().
			Str("store_id", storeID).
			Str("local_activity", s.Collection(storeID).DeleteActivity.String()).
			Str("server_activity", fetched.deleteActivity.String()).
			Msg("records deleted elsewhere, reloading collection")
		return s.LoadAll(ctx, storeID)
	}

	s.store.Dispatch(
		state.RecordsMerged[T]{StoreID: storeID, Records: fetched.records},
		state.StampAdvanced[T]{StoreID: storeID, Stamp: fetched.now},
		state.ReconcileFinished[T]{StoreID: storeID},
	)
	s.persist(ctx, storeID, fetched.records)

	return nil
}

// Refresh brings storeID up to date: a full load when nothing is cached yet
// or a delete drifted, a delta fetch from the local stamp otherwise.
func (s *Syncer[T]) Refresh(ctx context.Context, storeID string) error {
	c := s.Collection(storeID)
	if c.Status == state.StatusEmpty || c.DeleteDrift {
		return s.LoadAll(ctx, storeID)
	}
	return s.DeltaFetch(ctx, storeID, c.Stamp)
}

// ApplyLocalDelete removes the deleted record and records the new delete
// activity stamp. A mismatch between res.LastAction and the local delete
// activity sets the drift flag; it never triggers a fetch.
func (s *Syncer[T]) ApplyLocalDelete(ctx context.Context, storeID string, res models.DeleteResult) {
	held := s.Collection(storeID).DeleteActivity
	drift := !res.LastAction.Equal(held)

	s.store.Dispatch(
		state.RecordDeleted[T]{StoreID: storeID, ID: res.ID},
		state.DeleteActivityRecorded[T]{StoreID: storeID, Activity: res.Now, Drift: drift},
	)
	s.metrics.Delete(s.kind, drift)

	if drift {
		s.log.Info().
			Str("store_id", storeID).
			Str("local_activity", held.String()).
			Str("last_action", res.LastAction.String()).
			Msg("delete activity drift recorded")
	}

	if s.persister == nil {
		return
	}
	if err := s.persister.Delete(ctx, storeID, res.ID); err != nil {
		s.log.Err(err).Str("store_id", storeID).Str("id", res.ID).Msg("persist delete failed")
		return
	}
	s.persistStamps(ctx, storeID)
}

// deletedElsewhere reports whether the server's delete activity is ahead of
// the one held for storeID.
func (s *Syncer[T]) deletedElsewhere(storeID string, serverActivity models.Stamp) bool {
	return serverActivity.Compare(s.Collection(storeID).DeleteActivity) > 0
}

// flight is the buffered outcome of one delta fetch.
type flight[T models.Record] struct {
	records        []T
	now            models.Stamp
	deleteActivity models.Stamp
	total          int
	// covered is the newest server stamp known to precede the fetch.
	covered models.Stamp
}

// reconcile runs a delta fetch from since, sharing it with concurrent callers
// reconciling from the same stamp. A caller whose write (lastAction) is newer
// than what a shared fetch covers runs its own fetch.
func (s *Syncer[T]) reconcile(ctx context.Context, storeID string, since, lastAction, now models.Stamp) (flight[T], error) {
	s.store.Dispatch(state.ReconcileStarted[T]{StoreID: storeID})

	key := storeID + "\x00" + since.String()
	leader := false
	v, err, _ := s.group.Do(key, func() (any, error) {
		leader = true
		return s.deltaFetch(ctx, storeID, since, now)
	})

	var res flight[T]
	switch {
	case err == nil:
		res = v.(flight[T])
		if !leader && lastAction.Compare(res.covered) > 0 {
			res, err = s.deltaFetch(ctx, storeID, since, now)
		}
	case !leader && ctx.Err() == nil && isCancellation(err):
		// the shared fetch ran on the leader's context, which is gone
		res, err = s.deltaFetch(ctx, storeID, since, now)
	}

	if err != nil {
		s.store.Dispatch(state.ReconcileFailed[T]{StoreID: storeID, Err: err})
		s.alert(fmt.Sprintf("Could not refresh %s: %v", s.kind, err))
		s.log.Err(err).
			Str("store_id", storeID).
			Str("since", since.String()).
			Msg("delta fetch failed")
		return flight[T]{}, fmt.Errorf("%w: delta %s after %q: %w", ErrFetchFailed, s.kind, since, err)
	}

	return res, nil
}

func (s *Syncer[T]) deltaFetch(ctx context.Context, storeID string, since, now models.Stamp) (flight[T], error) {
	ctx, span := s.tracer.Start(ctx, "deltasync.DeltaFetch", trace.WithAttributes(
		attribute.String("store.id", storeID),
		attribute.String("collection", s.kind),
		attribute.String("since", since.String()),
	))
	defer span.End()

	done := s.metrics.ReconcileStarted(s.kind)
	defer done()

	res, err := s.fetchPages(ctx, storeID, since)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.metrics.DeltaFetch(s.kind, metrics.ResultError)
		return flight[T]{}, err
	}
	s.metrics.DeltaFetch(s.kind, metrics.ResultOK)
	span.SetAttributes(attribute.Int("records", len(res.records)))

	res.covered = now.Max(res.now)
	return res, nil
}

// fetchPages reads pages until the server reports no more records. Nothing
// is committed here.
func (s *Syncer[T]) fetchPages(ctx context.Context, storeID string, after models.Stamp) (flight[T], error) {
	var res flight[T]

	skip := 0
	for first := true; ; first = false {
		if err := ctx.Err(); err != nil {
			return flight[T]{}, err
		}

		page, err := s.fetchPage(ctx, models.PageRequest{
			StoreID: storeID,
			Skip:    skip,
			After:   after,
			Limit:   s.pageSize,
		})
		if err != nil {
			return flight[T]{}, err
		}
		s.metrics.PageFetched(s.kind)

		if first {
			res.now = page.Now
			res.deleteActivity = page.DeleteActivity
			res.total = page.TotalRecords
		}
		res.records = append(res.records, page.Records...)

		if !page.HasMoreRecords {
			break
		}
		if len(page.Records) == 0 {
			s.log.Warn().
				Str("store_id", storeID).
				Int("skip", skip).
				Msg("empty page reported more records, stopping")
			break
		}
		skip += len(page.Records)
	}

	return res, nil
}

// fetchPage wraps a single network call in the progress counter.
func (s *Syncer[T]) fetchPage(ctx context.Context, req models.PageRequest) (models.Page[T], error) {
	s.store.Dispatch(state.ProgressStarted{})
	defer s.store.Dispatch(state.ProgressFinished{})

	return s.fetcher.Fetch(ctx, req)
}

// isActive reports whether results for storeID may still be committed.
func (s *Syncer[T]) isActive(storeID string) bool {
	active := s.store.Snapshot().ActiveStore
	if active == "" || active == storeID {
		return true
	}
	s.log.Debug().
		Str("store_id", storeID).
		Str("active_store", active).
		Msg("discarding fetch for inactive store")
	return false
}

func (s *Syncer[T]) alert(msg string) {
	s.store.Dispatch(state.AlertRaised{Alert: models.Alert{
		ID:      utils.NewID(),
		Level:   models.AlertError,
		Message: msg,
		At:      time.Now().UTC(),
	}})
}

// persist writes records through, then the stamps. Stamps are saved only
// once the records they cover are stored.
func (s *Syncer[T]) persist(ctx context.Context, storeID string, records []T) {
	if s.persister == nil {
		return
	}
	if len(records) > 0 {
		if err := s.persister.Save(ctx, storeID, records); err != nil {
			s.log.Err(err).Str("store_id", storeID).Int("records", len(records)).Msg("persist records failed")
			return
		}
	}
	s.persistStamps(ctx, storeID)
}

func (s *Syncer[T]) persistReplace(ctx context.Context, storeID string, records []T) {
	if s.persister == nil {
		return
	}
	if err := s.persister.Replace(ctx, storeID, records); err != nil {
		s.log.Err(err).Str("store_id", storeID).Int("records", len(records)).Msg("replace persisted records failed")
		return
	}
	s.persistStamps(ctx, storeID)
}

func (s *Syncer[T]) persistStamps(ctx context.Context, storeID string) {
	c := s.Collection(storeID)
	if err := s.persister.SaveStamps(ctx, storeID, c.Stamp, c.DeleteActivity); err != nil {
		s.log.Err(err).Str("store_id", storeID).Msg("persist stamps failed")
	}
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// IsFetchError reports whether err came from a failed fetch.
func IsFetchError(err error) bool {
	return errors.Is(err, ErrFetchFailed)
}
