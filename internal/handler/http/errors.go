// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of request decoding. Callers can match against them with
// [errors.Is].
var (
	// ErrInvalidJSON is returned when a request body is not a JSON object
	// of the expected shape.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrPathMismatch is returned when a body names a store or record other
	// than the one in the request path.
	ErrPathMismatch = errors.New("body does not match path")

	// ErrEmptyStoreID is returned by the store middleware when the path
	// segment is blank.
	ErrEmptyStoreID = errors.New("empty store id in path")

	// ErrIntegrityCheck is returned when the body hash header does not match
	// the body.
	ErrIntegrityCheck = errors.New("integrity check failed")
)
