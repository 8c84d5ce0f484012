// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/utils"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// newBufferedHandler создаёт Handler, пишущий логи в buf.
func newBufferedHandler(buf *bytes.Buffer) *Handler {
	return &Handler{logger: &logger.Logger{Logger: zerolog.New(buf)}}
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		lines = append(lines, entry)
	}
	return lines
}

// ---- withTraceID ----

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantReuse bool
	}{
		{name: "header is reused", header: "my-custom-trace-id", wantReuse: true},
		{name: "generated when missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newBufferedHandler(&buf)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logger.FromRequest(r).Info().Msg("inside")
			})

			req := httptest.NewRequest(http.MethodGet, "/api/state", nil)
			if tt.header != "" {
				req.Header.Set(traceIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rec, req)

			got := rec.Header().Get(traceIDHeader)
			if tt.wantReuse {
				assert.Equal(t, tt.header, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}

			lines := logLines(t, &buf)
			require.Len(t, lines, 1)
			assert.Equal(t, got, lines[0]["trace_id"])
		})
	}
}

// ---- withLogging ----

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	h := newBufferedHandler(&buf)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("hello"))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/stores/s1/items", nil)
	rec := httptest.NewRecorder()
	h.withTraceID(h.withLogging(next)).ServeHTTP(rec, req)

	lines := logLines(t, &buf)
	require.Len(t, lines, 1)
	entry := lines[0]
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "/api/stores/s1/items", entry["uri"])
	assert.Equal(t, http.MethodPost, entry["method"])
	assert.EqualValues(t, http.StatusCreated, entry["status"])
	assert.EqualValues(t, 5, entry["size"])
	assert.Contains(t, entry, "duration")
	assert.NotEmpty(t, entry["trace_id"])
}

func TestWithLogging_ImplicitStatusAndServerErrors(t *testing.T) {
	tests := []struct {
		name      string
		handler   http.HandlerFunc
		wantCode  float64
		wantLevel string
	}{
		{
			name:      "nothing written",
			handler:   func(http.ResponseWriter, *http.Request) {},
			wantCode:  http.StatusOK,
			wantLevel: "info",
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			wantCode:  http.StatusBadGateway,
			wantLevel: "warn",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newBufferedHandler(&buf)

			req := httptest.NewRequest(http.MethodGet, "/api/state", nil)
			h.withTraceID(h.withLogging(tt.handler)).ServeHTTP(httptest.NewRecorder(), req)

			lines := logLines(t, &buf)
			require.Len(t, lines, 1)
			assert.Equal(t, tt.wantCode, lines[0]["status"])
			assert.Equal(t, tt.wantLevel, lines[0]["level"])
		})
	}
}

func TestRouter_RecoversPanics(t *testing.T) {
	var buf bytes.Buffer
	h := newBufferedHandler(&buf)

	router := http.Handler(h.withTraceID(h.withLogging(
		middleware.Recoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") })),
	)))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/state", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	lines := logLines(t, &buf)
	require.NotEmpty(t, lines)
	assert.EqualValues(t, http.StatusInternalServerError, lines[len(lines)-1]["status"])
}

// ---- responseWriter ----

func TestResponseWriter(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	assert.Zero(t, w.status)
	assert.False(t, w.wroteHeader)

	w.Write([]byte("first"))
	w.WriteHeader(http.StatusInternalServerError) // ignored
	w.Write([]byte("second"))

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, len("firstsecond"), w.size)
	assert.Equal(t, "firstsecond", rr.Body.String())
	assert.Same(t, rr, w.Unwrap())
}

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusBadRequest)

	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Zero(t, w.size)
}

// ---- withGZip ----

func TestWithGZip_CompressesJSON(t *testing.T) {
	api := newTestAPI(t)
	api.session.st.ActiveStore = "s1"

	req := httptest.NewRequest(http.MethodGet, "/api/state", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	raw, err := io.ReadAll(zr)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "s1", body["activeStore"])
}

func TestWithGZip_SkipsBodilessResponses(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/alerts/a1", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Zero(t, rec.Body.Len())
}

func TestWithGZip_DecompressesRequest(t *testing.T) {
	api := newTestAPI(t)

	var compressed bytes.Buffer
	zw := gzip.NewWriter(&compressed)
	zw.Write([]byte(`{"itemName":"Tea"}`))
	require.NoError(t, zw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/stores/s1/items", &compressed)
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.Len(t, api.items.created, 1)
	assert.Equal(t, "Tea", api.items.created[0].Name)
}

func TestWithGZip_InvalidRequest(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodPost, "/api/stores/s1/items", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ---- verifyBodyHash ----

func TestVerifyBodyHash(t *testing.T) {
	const key = "test-secret-key"
	body := `{"itemName":"Tea"}`

	tests := []struct {
		name     string
		hashKey  string
		header   string
		wantCode int
	}{
		{name: "valid hash", hashKey: key, header: utils.HashString(body, key), wantCode: http.StatusCreated},
		{name: "no header", hashKey: key, wantCode: http.StatusCreated},
		{name: "wrong hash", hashKey: key, header: utils.HashString(body, "other"), wantCode: http.StatusBadRequest},
		{name: "no key configured", header: "garbage", wantCode: http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []Option
			if tt.hashKey != "" {
				opts = append(opts, WithHashKey(tt.hashKey))
			}
			api := newTestAPI(t, opts...)

			req := httptest.NewRequest(http.MethodPost, "/api/stores/s1/items", strings.NewReader(body))
			if tt.header != "" {
				req.Header.Set(utils.HashHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			api.router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			if tt.wantCode == http.StatusCreated {
				require.Len(t, api.items.created, 1)
				assert.Equal(t, "Tea", api.items.created[0].Name)
			} else {
				assert.Empty(t, api.items.created)
			}
		})
	}
}

// ---- withStoreID ----

func TestWithStoreID_PutsStoreInContext(t *testing.T) {
	api := newTestAPI(t)
	api.items.records = []models.Item{{ID: "i1", StoreID: "shop-7"}}

	rec := api.do(t, http.MethodGet, "/api/stores/shop-7/items/i1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	h := &Handler{logger: logger.Nop()}
	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = storeIDFrom(r)
	})
	router := newTestRouterWith(h.withStoreID, "/stores/{storeID}", next)
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/stores/shop-7", nil))

	assert.Equal(t, "shop-7", got)
}

func newTestRouterWith(mw func(http.Handler) http.Handler, pattern string, next http.Handler) http.Handler {
	r := chi.NewRouter()
	r.With(mw).Method(http.MethodGet, pattern, next)
	return r
}
