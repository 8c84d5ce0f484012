// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package deltasync

import "errors"

var (
	// ErrFetchFailed wraps any error from a full or delta fetch.
	ErrFetchFailed = errors.New("fetch failed")
	// ErrStoreSwitched is returned when the active store changed while a
	// fetch was running. The fetched pages are discarded.
	ErrStoreSwitched = errors.New("active store switched during fetch")
	// ErrNoStore is returned when an operation needs a store id and got none.
	ErrNoStore = errors.New("no store selected")
)
