// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-stock-keeper/internal/utils"
)

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// chi answers 405 when a path matches a route but the method does not. The
// view API answers 404 instead, so unsupported methods look exactly like
// unknown routes. If the router does match the method (a mounted subrouter
// can report 405 for a path its parent resolves), the request is served
// normally.
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}
		utils.WriteError(w, http.StatusNotFound, "", "")
	}
}
