// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-stock-keeper/models"
)

type httpRecordAdapter[T models.Record] struct {
	c  *Client
	ep Endpoints
}

// NewRecordAdapter returns the REST adapter of the collection described by
// ep.
func NewRecordAdapter[T models.Record](c *Client, ep Endpoints) RecordAdapter[T] {
	return &httpRecordAdapter[T]{c: c, ep: ep}
}

// NewItemAdapter returns the item catalog adapter.
func NewItemAdapter(c *Client) RecordAdapter[models.Item] {
	return NewRecordAdapter[models.Item](c, ItemEndpoints)
}

// NewSupplierAdapter returns the supplier adapter.
func NewSupplierAdapter(c *Client) RecordAdapter[models.Supplier] {
	return NewRecordAdapter[models.Supplier](c, SupplierEndpoints)
}

// Fetch implements [RecordAdapter]. It GETs ep.Fetch with storeId, skip,
// limit and, for delta reads, after.
func (a *httpRecordAdapter[T]) Fetch(ctx context.Context, req models.PageRequest) (models.Page[T], error) {
	q := url.Values{}
	q.Set("storeId", req.StoreID)
	q.Set("skip", strconv.Itoa(req.Skip))
	if req.Limit > 0 {
		q.Set("limit", strconv.Itoa(req.Limit))
	}
	if !req.After.IsZero() {
		q.Set("after", req.After.String())
	}

	resp, err := a.c.get(ctx, a.ep.Fetch, q)
	if err != nil {
		return models.Page[T]{}, fmt.Errorf("fetch %s: %w", a.ep.ListKey, err)
	}

	return decodePage[T](resp.Body(), a.ep.ListKey)
}

// List implements [RecordAdapter]. It GETs ep.List with storeId, skip,
// limit and search.
func (a *httpRecordAdapter[T]) List(ctx context.Context, lq models.ListQuery) (models.Page[T], error) {
	q := url.Values{}
	q.Set("storeId", lq.StoreID)
	q.Set("skip", strconv.Itoa(lq.Skip))
	if lq.Limit > 0 {
		q.Set("limit", strconv.Itoa(lq.Limit))
	}
	if lq.Search != "" {
		q.Set("search", lq.Search)
	}

	resp, err := a.c.get(ctx, a.ep.List, q)
	if err != nil {
		return models.Page[T]{}, fmt.Errorf("list %s: %w", a.ep.ListKey, err)
	}

	return decodePage[T](resp.Body(), a.ep.ListKey)
}

// Create implements [RecordAdapter]. It POSTs the record to ep.Create.
func (a *httpRecordAdapter[T]) Create(ctx context.Context, record T) (models.WriteResult[T], error) {
	resp, err := a.c.post(ctx, a.ep.Create, record)
	if err != nil {
		return models.WriteResult[T]{}, fmt.Errorf("create %s: %w", a.ep.EntityKey, err)
	}
	return decodeWrite[T](resp.Body(), a.ep.EntityKey)
}

// Update implements [RecordAdapter]. It POSTs the record to ep.Update.
func (a *httpRecordAdapter[T]) Update(ctx context.Context, record T) (models.WriteResult[T], error) {
	resp, err := a.c.post(ctx, a.ep.Update, record)
	if err != nil {
		return models.WriteResult[T]{}, fmt.Errorf("update %s: %w", a.ep.EntityKey, err)
	}
	return decodeWrite[T](resp.Body(), a.ep.EntityKey)
}

type deleteRequest struct {
	StoreID string `json:"storeId"`
	ID      string `json:"id"`
}

// Delete implements [RecordAdapter]. It POSTs {storeId, id} to ep.Delete.
func (a *httpRecordAdapter[T]) Delete(ctx context.Context, storeID, id string) (models.DeleteResult, error) {
	resp, err := a.c.post(ctx, a.ep.Delete, deleteRequest{StoreID: storeID, ID: id})
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("delete %s: %w", a.ep.EntityKey, err)
	}

	var res models.DeleteResult
	if err = json.Unmarshal(resp.Body(), &res); err != nil {
		return models.DeleteResult{}, fmt.Errorf("%w: delete %s: %w", ErrDecode, a.ep.EntityKey, err)
	}
	if res.ID == "" {
		res.ID = id
	}
	return res, nil
}

type pageEnvelope struct {
	HasMoreRecords bool         `json:"hasMoreRecords"`
	TotalRecords   int          `json:"totalRecords"`
	Now            models.Stamp `json:"now"`
	DeleteActivity models.Stamp `json:"deleteActivity"`
}

// decodePage decodes { "<listKey>": [...], "hasMoreRecords": ..., ... }.
func decodePage[T models.Record](body []byte, listKey string) (models.Page[T], error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return models.Page[T]{}, fmt.Errorf("%w: page: %w", ErrDecode, err)
	}

	list, ok := raw[listKey]
	if !ok {
		return models.Page[T]{}, fmt.Errorf("%w: page has no %q key", ErrDecode, listKey)
	}

	var env pageEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return models.Page[T]{}, fmt.Errorf("%w: page: %w", ErrDecode, err)
	}

	var records []T
	if err := json.Unmarshal(list, &records); err != nil {
		return models.Page[T]{}, fmt.Errorf("%w: %s: %w", ErrDecode, listKey, err)
	}

	return models.Page[T]{
		Records:        records,
		HasMoreRecords: env.HasMoreRecords,
		TotalRecords:   env.TotalRecords,
		Now:            env.Now,
		DeleteActivity: env.DeleteActivity,
	}, nil
}

type writeEnvelope struct {
	Now        models.Stamp `json:"now"`
	LastAction models.Stamp `json:"lastAction"`
}

// decodeWrite decodes { "<entityKey>": {...}, "now": ..., "lastAction": ... }.
func decodeWrite[T models.Record](body []byte, entityKey string) (models.WriteResult[T], error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return models.WriteResult[T]{}, fmt.Errorf("%w: write: %w", ErrDecode, err)
	}

	entity, ok := raw[entityKey]
	if !ok {
		return models.WriteResult[T]{}, fmt.Errorf("%w: write has no %q key", ErrDecode, entityKey)
	}

	var env writeEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return models.WriteResult[T]{}, fmt.Errorf("%w: write: %w", ErrDecode, err)
	}
	if env.Now.IsZero() {
		return models.WriteResult[T]{}, fmt.Errorf("%w: write has no stamp", ErrDecode)
	}

	var record T
	if err := json.Unmarshal(entity, &record); err != nil {
		return models.WriteResult[T]{}, fmt.Errorf("%w: %s: %w", ErrDecode, entityKey, err)
	}

	return models.WriteResult[T]{Record: record, Now: env.Now, LastAction: env.LastAction}, nil
}
