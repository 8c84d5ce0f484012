// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/service"
	"github.com/MKhiriev/go-stock-keeper/internal/utils"
	"github.com/MKhiriev/go-stock-keeper/internal/validators"
	"github.com/MKhiriev/go-stock-keeper/models"
)

const (
	querySearch = "search"
	queryRemote = "remote"
	querySkip   = "skip"
	queryLimit  = "limit"

	defaultBrowseLimit = 50
)

// recordHandler serves one record collection of a store.
type recordHandler[T models.Record] struct {
	records service.RecordService[T]
	kind    models.Collection
}

func newRecordHandler[T models.Record](records service.RecordService[T], kind models.Collection) *recordHandler[T] {
	return &recordHandler[T]{records: records, kind: kind}
}

// cachedList is the response of a list served from the delta sync cache.
type cachedList[T models.Record] struct {
	Records        []T          `json:"records"`
	Status         string       `json:"status"`
	Stamp          models.Stamp `json:"stamp"`
	DeleteActivity models.Stamp `json:"deleteActivity"`
	DeleteDrift    bool         `json:"deleteDrift"`
	Total          int          `json:"total"`
}

// remoteList is one page of the server-side filtered list.
type remoteList[T models.Record] struct {
	Records        []T  `json:"records"`
	HasMoreRecords bool `json:"hasMoreRecords"`
	TotalRecords   int  `json:"totalRecords"`
	Skip           int  `json:"skip"`
}

func (rh *recordHandler[T]) routes(verify func(http.Handler) http.Handler) func(chi.Router) {
	return func(r chi.Router) {
		r.Get("/", rh.list)
		r.With(verify).Post("/", rh.create)
		r.Get("/{id}", rh.get)
		r.With(verify).Put("/{id}", rh.update)
		r.Delete("/{id}", rh.delete)
	}
}

func (rh *recordHandler[T]) list(w http.ResponseWriter, r *http.Request) {
	storeID := storeIDFrom(r)
	query := r.URL.Query()

	if remote, _ := strconv.ParseBool(query.Get(queryRemote)); remote {
		rh.browse(w, r, storeID)
		return
	}

	records, err := rh.records.List(r.Context(), storeID, query.Get(querySearch))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	c := rh.records.Collection(storeID)
	utils.WriteJSON(w, cachedList[T]{
		Records:        records,
		Status:         c.Status.String(),
		Stamp:          c.Stamp,
		DeleteActivity: c.DeleteActivity,
		DeleteDrift:    c.DeleteDrift,
		Total:          c.Total,
	}, http.StatusOK)
}

func (rh *recordHandler[T]) browse(w http.ResponseWriter, r *http.Request, storeID string) {
	query := r.URL.Query()

	skip, err := intParam(query.Get(querySkip), 0)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error(), querySkip)
		return
	}
	limit, err := intParam(query.Get(queryLimit), defaultBrowseLimit)
	if err != nil || limit <= 0 {
		utils.WriteError(w, http.StatusBadRequest, "limit must be a positive integer", queryLimit)
		return
	}

	page, err := rh.records.Browse(r.Context(), models.ListQuery{
		StoreID: storeID,
		Search:  query.Get(querySearch),
		Skip:    skip,
		Limit:   limit,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	records := page.Records
	if records == nil {
		records = []T{}
	}
	utils.WriteJSON(w, remoteList[T]{
		Records:        records,
		HasMoreRecords: page.HasMoreRecords,
		TotalRecords:   page.TotalRecords,
		Skip:           skip,
	}, http.StatusOK)
}

func (rh *recordHandler[T]) get(w http.ResponseWriter, r *http.Request) {
	rec, err := rh.records.Get(r.Context(), storeIDFrom(r), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, rec, http.StatusOK)
}

func (rh *recordHandler[T]) create(w http.ResponseWriter, r *http.Request) {
	rec, err := decodeRecord[T](r, map[string]string{
		validators.FieldStoreID: storeIDFrom(r),
	})
	if err != nil {
		logger.FromRequest(r).Err(err).Str("collection", rh.kind.String()).Msg("invalid record body")
		utils.WriteError(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	created, err := rh.records.Create(r.Context(), rec)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (rh *recordHandler[T]) update(w http.ResponseWriter, r *http.Request) {
	rec, err := decodeRecord[T](r, map[string]string{
		validators.FieldStoreID: storeIDFrom(r),
		validators.FieldID:      chi.URLParam(r, "id"),
	})
	if err != nil {
		logger.FromRequest(r).Err(err).Str("collection", rh.kind.String()).Msg("invalid record body")
		utils.WriteError(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	updated, err := rh.records.Update(r.Context(), rec)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, updated, http.StatusOK)
}

func (rh *recordHandler[T]) delete(w http.ResponseWriter, r *http.Request) {
	if err := rh.records.Delete(r.Context(), storeIDFrom(r), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decodeRecord reads a JSON object from the body and forces the given keys
// to the path values, so a body cannot address another store or record.
func decodeRecord[T models.Record](r *http.Request, forced map[string]string) (T, error) {
	var rec T

	fields := map[string]json.RawMessage{}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		return rec, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if fields == nil {
		return rec, fmt.Errorf("%w: body must be an object", ErrInvalidJSON)
	}

	for key, value := range forced {
		if raw, ok := fields[key]; ok {
			var given string
			if err := json.Unmarshal(raw, &given); err != nil || (given != "" && given != value) {
				return rec, fmt.Errorf("%w: %s does not match the path", ErrPathMismatch, key)
			}
		}
		encoded, _ := json.Marshal(value)
		fields[key] = encoded
	}

	body, err := json.Marshal(fields)
	if err != nil {
		return rec, err
	}
	if err := json.Unmarshal(body, &rec); err != nil {
		return rec, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return rec, nil
}

func intParam(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, errors.New("must be a non-negative integer")
	}
	return n, nil
}
