// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-stock-keeper/internal/adapter"
	"github.com/MKhiriev/go-stock-keeper/internal/deltasync"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/service"
	"github.com/MKhiriev/go-stock-keeper/internal/store"
	"github.com/MKhiriev/go-stock-keeper/internal/utils"
	"github.com/MKhiriev/go-stock-keeper/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusUnprocessableEntity,
	service.ErrNoStoreSelected:     http.StatusConflict,
	service.ErrStoreNotActive:      http.StatusConflict,
	service.ErrRecordNotFound:      http.StatusNotFound,

	deltasync.ErrStoreSwitched: http.StatusConflict,
	deltasync.ErrNoStore:       http.StatusConflict,

	adapter.ErrBadRequest:          http.StatusBadRequest,
	adapter.ErrUnprocessable:       http.StatusUnprocessableEntity,
	adapter.ErrNotFound:            http.StatusNotFound,
	adapter.ErrConflict:            http.StatusConflict,
	adapter.ErrUnauthorized:        http.StatusBadGateway,
	adapter.ErrForbidden:           http.StatusBadGateway,
	adapter.ErrTooManyRequests:     http.StatusTooManyRequests,
	adapter.ErrInternalServerError: http.StatusBadGateway,
	adapter.ErrBadGateway:          http.StatusBadGateway,
	adapter.ErrServiceUnavailable:  http.StatusServiceUnavailable,
	adapter.ErrUnexpectedStatus:    http.StatusBadGateway,
	adapter.ErrDecode:              http.StatusBadGateway,

	store.ErrSnapshotNotFound:     http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError logs err and answers with the mapped status. A
// *models.FieldError in the chain is reported with its field.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	var fe *models.FieldError
	if errors.As(err, &fe) {
		utils.WriteError(w, status, fe.Message, fe.Field)
		return
	}
	utils.WriteError(w, status, err.Error(), "")
}
