// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package deltasync

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-stock-keeper/models"
)

func TestApplyOrReconcile(t *testing.T) {
	tests := []struct {
		name       string
		local      models.Stamp
		lastAction models.Stamp
		now        models.Stamp
		want       Action
	}{
		{name: "equal stamps", local: "T1", lastAction: "T1", now: "T2", want: ApplyLocal},
		{name: "other device wrote", local: "T1", lastAction: "T3", now: "T4", want: Reconcile},
		{name: "never synced, server empty", local: "", lastAction: "", now: "1", want: ApplyLocal},
		{name: "never synced, server has data", local: "", lastAction: "5", now: "6", want: Reconcile},
		{name: "numeric equality", local: "0010", lastAction: "10", now: "11", want: ApplyLocal},
		{
			name:       "same instant in different zones",
			local:      "2026-01-01T10:00:00Z",
			lastAction: "2026-01-01T12:00:00+02:00",
			now:        "2026-01-01T10:00:01Z",
			want:       ApplyLocal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ApplyOrReconcile(tt.local, models.WriteResult[models.Item]{
				Record:     models.Item{ID: "a"},
				Now:        tt.now,
				LastAction: tt.lastAction,
			})

			assert.Equal(t, tt.want, d.Action)
			assert.Equal(t, tt.local, d.Since)
			assert.Equal(t, tt.now, d.Now)
		})
	}
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "apply_local", ApplyLocal.String())
	assert.Equal(t, "reconcile", Reconcile.String())
}
