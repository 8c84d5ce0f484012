// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/utils"
)

// withStoreID stores the {storeID} path segment in the request context under
// [utils.StoreIDCtxKey] and tags the request logger with it. A blank segment
// is rejected with 400.
func (h *Handler) withStoreID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		storeID := strings.TrimSpace(chi.URLParam(r, "storeID"))
		if storeID == "" {
			logger.FromRequest(r).Debug().Msg(ErrEmptyStoreID.Error())
			utils.WriteError(w, http.StatusBadRequest, ErrEmptyStoreID.Error(), "storeId")
			return
		}

		log := logger.FromRequest(r)
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("store_id", storeID)
		})

		ctx := utils.WithStoreID(log.WithContext(r.Context()), storeID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// storeIDFrom returns the store id put in the context by withStoreID.
func storeIDFrom(r *http.Request) string {
	storeID, _ := utils.GetStoreIDFromContext(r.Context())
	return storeID
}
