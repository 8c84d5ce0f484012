// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package listview

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-stock-keeper/models"
)

func suppliers(names ...string) []models.Supplier {
	out := make([]models.Supplier, 0, len(names))
	for _, n := range names {
		out = append(out, models.Supplier{ID: n, Name: n})
	}
	return out
}

func TestLoader_Load(t *testing.T) {
	var got models.ListQuery
	l := NewLoader[models.Supplier](func(_ context.Context, q models.ListQuery) (models.Page[models.Supplier], error) {
		got = q
		return models.Page[models.Supplier]{Records: suppliers("a", "b"), HasMoreRecords: true, TotalRecords: 10}, nil
	})

	v, err := l.Load(t.Context(), models.ListQuery{StoreID: "s1", Search: "ac", Skip: 40, Limit: 2})

	require.NoError(t, err)
	assert.Equal(t, 0, got.Skip, "a new query always starts from the first page")
	assert.Equal(t, "ac", got.Search)
	assert.Len(t, v.Records, 2)
	assert.Equal(t, 10, v.Total)
	assert.True(t, v.HasMore)
	assert.False(t, v.Loading)
}

func TestLoader_LoadMoreAppends(t *testing.T) {
	pages := map[int][]models.Supplier{0: suppliers("a", "b"), 2: suppliers("c")}
	l := NewLoader[models.Supplier](func(_ context.Context, q models.ListQuery) (models.Page[models.Supplier], error) {
		return models.Page[models.Supplier]{Records: pages[q.Skip], HasMoreRecords: q.Skip == 0}, nil
	})

	_, err := l.Load(t.Context(), models.ListQuery{StoreID: "s1", Limit: 2})
	require.NoError(t, err)

	v, err := l.LoadMore(t.Context())
	require.NoError(t, err)
	assert.Len(t, v.Records, 3)
	assert.Equal(t, 3, v.Total)
	assert.False(t, v.HasMore)
	assert.Equal(t, 2, v.Query.Skip)
}

func TestLoader_SupersededResponseDiscarded(t *testing.T) {
	firstStarted := make(chan struct{})
	firstCtxDone := make(chan struct{})
	releaseFirst := make(chan struct{})

	l := NewLoader[models.Supplier](func(ctx context.Context, q models.ListQuery) (models.Page[models.Supplier], error) {
		if q.Search == "old" {
			close(firstStarted)
			<-ctx.Done()
			close(firstCtxDone)
			<-releaseFirst
			// ответ приходит уже после смены фильтра
			return models.Page[models.Supplier]{Records: suppliers("stale")}, nil
		}
		return models.Page[models.Supplier]{Records: suppliers("fresh")}, nil
	})

	errCh := make(chan error, 1)
	go func() {
		_, err := l.Load(context.Background(), models.ListQuery{Search: "old"})
		errCh <- err
	}()
	<-firstStarted

	v, err := l.Load(t.Context(), models.ListQuery{Search: "new"})
	require.NoError(t, err)
	assert.Equal(t, "fresh", v.Records[0].ID)

	<-firstCtxDone
	close(releaseFirst)
	assert.ErrorIs(t, <-errCh, ErrSuperseded)

	final := l.View()
	require.Len(t, final.Records, 1)
	assert.Equal(t, "fresh", final.Records[0].ID)
	assert.Equal(t, "new", final.Query.Search)
}

func TestLoader_ErrorKeepsPreviousRows(t *testing.T) {
	fail := false
	l := NewLoader[models.Supplier](func(context.Context, models.ListQuery) (models.Page[models.Supplier], error) {
		if fail {
			return models.Page[models.Supplier]{}, errors.New("boom")
		}
		return models.Page[models.Supplier]{Records: suppliers("a")}, nil
	})

	_, err := l.Load(t.Context(), models.ListQuery{})
	require.NoError(t, err)

	fail = true
	v, err := l.Load(t.Context(), models.ListQuery{Search: "x"})
	require.Error(t, err)
	assert.Len(t, v.Records, 1)
	assert.False(t, v.Loading)
}

func TestLoader_RemoveDecrementsTotal(t *testing.T) {
	l := NewLoader[models.Supplier](func(context.Context, models.ListQuery) (models.Page[models.Supplier], error) {
		return models.Page[models.Supplier]{Records: suppliers("a", "b", "c"), TotalRecords: 30}, nil
	})
	_, err := l.Load(t.Context(), models.ListQuery{})
	require.NoError(t, err)

	assert.True(t, l.Remove("b"))
	assert.False(t, l.Remove("b"))

	v := l.View()
	assert.Equal(t, []models.Supplier{{ID: "a", Name: "a"}, {ID: "c", Name: "c"}}, v.Records)
	assert.Equal(t, 29, v.Total)
}

func TestLoader_Replace(t *testing.T) {
	l := NewLoader[models.Supplier](func(context.Context, models.ListQuery) (models.Page[models.Supplier], error) {
		return models.Page[models.Supplier]{Records: suppliers("a", "b")}, nil
	})
	_, err := l.Load(t.Context(), models.ListQuery{})
	require.NoError(t, err)

	assert.True(t, l.Replace(models.Supplier{ID: "b", Name: "B!"}))
	assert.False(t, l.Replace(models.Supplier{ID: "zz"}))
	assert.Equal(t, "B!", l.View().Records[1].Name)
}

func TestLoader_CloseCancelsInFlight(t *testing.T) {
	started := make(chan struct{})
	l := NewLoader[models.Supplier](func(ctx context.Context, _ models.ListQuery) (models.Page[models.Supplier], error) {
		close(started)
		<-ctx.Done()
		return models.Page[models.Supplier]{}, ctx.Err()
	})

	errCh := make(chan error, 1)
	go func() {
		_, err := l.Load(context.Background(), models.ListQuery{})
		errCh <- err
	}()
	<-started

	l.Close()
	assert.ErrorIs(t, <-errCh, ErrSuperseded)
	assert.Empty(t, l.View().Records)
}
