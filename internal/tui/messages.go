// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-stock-keeper/internal/listview"
	"github.com/MKhiriev/go-stock-keeper/internal/state"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// stateMsg carries a state published by the session.
type stateMsg struct {
	state state.State
}

// subscriptionClosedMsg is sent once the state channel is closed.
type subscriptionClosedMsg struct{}

type itemsLoadedMsg struct {
	view listview.View[models.Item]
	err  error
}

type suppliersLoadedMsg struct {
	view listview.View[models.Supplier]
	err  error
}

type refreshDoneMsg struct {
	err error
}

type resetDoneMsg struct {
	err error
}

type copiedMsg struct {
	id  string
	err error
}

type clearStatusMsg struct{}
