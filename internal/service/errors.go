// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrNoStoreSelected = errors.New("no store selected")
	ErrStoreNotActive  = errors.New("store is not the active store")
	ErrRecordNotFound  = errors.New("record not found")
)
