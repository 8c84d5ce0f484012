// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"crypto/hmac"
	"io"
	"net/http"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/utils"
)

// verifyBodyHash checks the [utils.HashHeader] of a write request against an
// HMAC-SHA256 of its body. Requests without the header pass, as do all
// requests when no hash key is configured.
func (h *Handler) verifyBodyHash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received := r.Header.Get(utils.HashHeader)
		if h.hashKey == "" || received == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.verifyBodyHash").Msg("failed to read request body")
			utils.WriteError(w, http.StatusBadRequest, "unreadable body", "")
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		expected := utils.HashHex(body)
		if !hmac.Equal([]byte(expected), []byte(received)) {
			log.Error().Str("func", "*Handler.verifyBodyHash").
				Str("hash from request", received).
				Str("hashed body", expected).
				Msg("hashes are not equal")
			utils.WriteError(w, http.StatusBadRequest, ErrIntegrityCheck.Error(), "")
			return
		}

		next.ServeHTTP(w, r)
	})
}
