// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package deltasync

import (
	"github.com/MKhiriev/go-stock-keeper/models"
)

// Action tells the caller how to fold a write result into the cache.
type Action int

const (
	// ApplyLocal merges the written record and advances the stamp. No
	// network call is needed.
	ApplyLocal Action = iota
	// Reconcile requires a delta fetch from Decision.Since first.
	Reconcile
)

func (a Action) String() string {
	if a == Reconcile {
		return "reconcile"
	}
	return "apply_local"
}

// Decision is the outcome of [ApplyOrReconcile].
type Decision struct {
	Action Action
	// Since is the stale local stamp a delta fetch must start after.
	Since models.Stamp
	// Now is the stamp to advance to once the write is folded in.
	Now models.Stamp
}

// ApplyOrReconcile compares the stamp held locally with the stamp the server
// held right before it processed the write. Equal stamps mean nobody else
// wrote in between.
func ApplyOrReconcile[T models.Record](local models.Stamp, res models.WriteResult[T]) Decision {
	d := Decision{Action: ApplyLocal, Since: local, Now: res.Now}
	if !res.LastAction.Equal(local) {
		d.Action = Reconcile
	}
	return d
}
