// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-stock-keeper/models"
)

func items(ids ...string) []models.Item {
	out := make([]models.Item, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.Item{ID: id, Name: "item " + id})
	}
	return out
}

func ids[T models.Record](records []T) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.RecordID())
	}
	return out
}

func TestCollection_MergeAppendsAndReplaces(t *testing.T) {
	c := Collection[models.Item]{}.merge(items("a", "b"))
	require.Equal(t, []string{"a", "b"}, ids(c.Records))
	assert.Equal(t, 2, c.Total)

	replaced := models.Item{ID: "a", Name: "renamed"}
	c2 := c.merge([]models.Item{replaced, {ID: "c"}})

	assert.Equal(t, []string{"a", "b", "c"}, ids(c2.Records))
	assert.Equal(t, "renamed", c2.Records[0].Name)
	assert.Equal(t, 3, c2.Total)

	// исходная коллекция не изменилась
	assert.Equal(t, "item a", c.Records[0].Name)
	assert.Len(t, c.Records, 2)
}

func TestCollection_MergeCollapsesDuplicatesInBatch(t *testing.T) {
	c := Collection[models.Item]{}.merge([]models.Item{{ID: "x", Name: "1"}, {ID: "x", Name: "2"}})

	require.Len(t, c.Records, 1)
	assert.Equal(t, "2", c.Records[0].Name)
	assert.Equal(t, 1, c.Total)
}

func TestCollection_Remove(t *testing.T) {
	c := Collection[models.Item]{}.merge(items("a", "b", "c"))

	out, ok := c.remove("b")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "c"}, ids(out.Records))
	assert.Equal(t, 2, out.Total)
	assert.Len(t, c.Records, 3)

	same, ok := out.remove("missing")
	assert.False(t, ok)
	assert.Equal(t, out.Total, same.Total)
}

func TestCollection_Get(t *testing.T) {
	c := Collection[models.Item]{}.merge(items("a", "b"))

	got, ok := c.Get("b")
	require.True(t, ok)
	assert.Equal(t, "b", got.ID)

	_, ok = c.Get("z")
	assert.False(t, ok)
	assert.Equal(t, -1, c.Index("z"))
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "empty", StatusEmpty.String())
	assert.Equal(t, "loaded", StatusLoaded.String())
	assert.Equal(t, "reconciling", StatusReconciling.String())

	b, err := StatusLoaded.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "loaded", string(b))
}
