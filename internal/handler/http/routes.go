// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-stock-keeper/internal/utils"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)

	router.Route("/api", func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/version", h.getAppVersion)
		r.Get("/state", h.getState)
		r.Post("/reset", h.reset)
		r.Post("/refresh", h.refresh)
		r.Delete("/alerts/{id}", h.dismissAlert)

		r.Route("/stores/{storeID}", func(r chi.Router) {
			r.Use(h.withStoreID)

			r.Post("/select", h.selectStore)
			r.Route("/items", h.items.routes(h.verifyBodyHash))
			r.Route("/suppliers", h.suppliers.routes(h.verifyBodyHash))
		})
	})

	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics)
	}

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, http.StatusNotFound, "", "")
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
