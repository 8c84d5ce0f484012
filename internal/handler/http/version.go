// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

const (
	headerBuildDate   = "X-Build-Date"
	headerBuildCommit = "X-Build-Commit"
)

func (h *Handler) getAppVersion(w http.ResponseWriter, r *http.Request) {
	appVersion := h.services.AppInfo.GetAppVersion(r.Context())
	info := h.services.AppInfo.BuildInfo()

	w.Header().Set(headerBuildDate, info.BuildDate())
	w.Header().Set(headerBuildCommit, info.BuildCommit())
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(appVersion))
}
