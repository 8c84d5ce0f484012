// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/state"
	"github.com/MKhiriev/go-stock-keeper/internal/utils"
)

// stateResponse is the whole client state plus derived flags.
type stateResponse struct {
	state.State
	Busy bool `json:"busy"`
}

func newStateResponse(s state.State) stateResponse {
	return stateResponse{State: s, Busy: s.Busy()}
}

func (h *Handler) getState(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, newStateResponse(h.services.Session.State()), http.StatusOK)
}

// selectStore switches the session to the store in the path and waits for
// the warm start of every collection. The warm start outlives the request: a
// client hanging up must not leave the store half loaded. The state is
// returned even when some collection failed to sync, since the failure is
// already raised as an alert.
func (h *Handler) selectStore(w http.ResponseWriter, r *http.Request) {
	storeID := storeIDFrom(r)

	if err := h.services.Session.SelectStore(context.WithoutCancel(r.Context()), storeID); err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("store selected with sync errors")
		if h.services.Session.ActiveStore() != storeID {
			writeServiceError(w, r, err)
			return
		}
	}

	utils.WriteJSON(w, newStateResponse(h.services.Session.State()), http.StatusOK)
}

func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Session.Reset(r.Context()); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Session.RefreshAll(r.Context()); err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, newStateResponse(h.services.Session.State()), http.StatusOK)
}

func (h *Handler) dismissAlert(w http.ResponseWriter, r *http.Request) {
	h.services.Session.DismissAlert(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}
