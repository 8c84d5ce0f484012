// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"github.com/MKhiriev/go-stock-keeper/models"
)

// Reduce returns the state that results from applying e to s. It never
// mutates s. A nil event returns s unchanged.
func Reduce(s State, e Event) State {
	if e == nil {
		return s
	}
	return e.reduce(s)
}

func (e StoreSelected) reduce(s State) State {
	return State{
		ActiveStore: e.StoreID,
		Progress:    s.Progress,
		Alerts:      s.Alerts,
	}
}

func (Reset) reduce(State) State {
	return State{}
}

func (e RecordsMerged[T]) reduce(s State) State {
	if len(e.Records) == 0 {
		return s
	}
	return updateCollection(s, e.StoreID, func(c Collection[T]) Collection[T] {
		return c.merge(e.Records)
	})
}

func (e CollectionCleared[T]) reduce(s State) State {
	return updateCollection(s, e.StoreID, func(Collection[T]) Collection[T] {
		return Collection[T]{}
	})
}

func (e LoadCompleted[T]) reduce(s State) State {
	return updateCollection(s, e.StoreID, func(c Collection[T]) Collection[T] {
		c.Status = StatusLoaded
		c.Stamp = c.Stamp.Max(e.Stamp)
		c.DeleteActivity = c.DeleteActivity.Max(e.DeleteActivity)
		if e.Total > 0 {
			c.Total = e.Total
		}
		if c.Total < len(c.Records) {
			c.Total = len(c.Records)
		}
		return c
	})
}

func (e ReconcileStarted[T]) reduce(s State) State {
	return updateCollection(s, e.StoreID, func(c Collection[T]) Collection[T] {
		if c.Status == StatusLoaded {
			c.Status = StatusReconciling
		}
		return c
	})
}

func (e ReconcileFinished[T]) reduce(s State) State {
	return updateCollection(s, e.StoreID, endReconcile[T])
}

func (e ReconcileFailed[T]) reduce(s State) State {
	return updateCollection(s, e.StoreID, endReconcile[T])
}

func endReconcile[T models.Record](c Collection[T]) Collection[T] {
	if c.Status == StatusReconciling {
		c.Status = StatusLoaded
	}
	return c
}

func (e StampAdvanced[T]) reduce(s State) State {
	return updateCollection(s, e.StoreID, func(c Collection[T]) Collection[T] {
		c.Stamp = c.Stamp.Max(e.Stamp)
		return c
	})
}

func (e RecordDeleted[T]) reduce(s State) State {
	shelf := shelfOf[T](s)
	c, ok := shelf[e.StoreID].remove(e.ID)
	if !ok {
		return s
	}
	return withShelf(s, shelf.with(e.StoreID, c))
}

func (e DeleteActivityRecorded[T]) reduce(s State) State {
	return updateCollection(s, e.StoreID, func(c Collection[T]) Collection[T] {
		c.DeleteActivity = c.DeleteActivity.Max(e.Activity)
		c.DeleteDrift = c.DeleteDrift || e.Drift
		return c
	})
}

func (ProgressStarted) reduce(s State) State {
	s.Progress++
	return s
}

func (ProgressFinished) reduce(s State) State {
	if s.Progress > 0 {
		s.Progress--
	}
	return s
}

func (e AlertRaised) reduce(s State) State {
	alerts := make([]models.Alert, 0, len(s.Alerts)+1)
	alerts = append(alerts, s.Alerts...)
	s.Alerts = append(alerts, e.Alert)
	return s
}

func (e AlertDismissed) reduce(s State) State {
	alerts := make([]models.Alert, 0, len(s.Alerts))
	for _, a := range s.Alerts {
		if a.ID != e.ID {
			alerts = append(alerts, a)
		}
	}
	s.Alerts = alerts
	return s
}
