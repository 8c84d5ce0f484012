// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"

	"github.com/MKhiriev/go-stock-keeper/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyStoreID       = errors.New("store is required")
	ErrEmptyID            = errors.New("id is required")
	ErrEmptyName          = errors.New("name is required")
	ErrNameTooLong        = errors.New("name is too long")
	ErrInvalidCode        = errors.New("code must not contain spaces")
	ErrCodeTooLong        = errors.New("code is too long")
	ErrNegativePrice      = errors.New("price must not be negative")
	ErrNegativeStock      = errors.New("stock bounds must not be negative")
	ErrStockBounds        = errors.New("minimum stock exceeds maximum stock")
	ErrDuplicateVariant   = errors.New("duplicate variant id")
	ErrEmptyVariantName   = errors.New("variant name is required")
	ErrDuplicatePacking   = errors.New("duplicate packing id")
	ErrEmptyPackingName   = errors.New("packing name is required")
	ErrInvalidPackingSize = errors.New("packing quantity must be greater than zero")
	ErrInvalidEmail       = errors.New("invalid email address")
)

// fieldError ties a validation sentinel to the JSON field it concerns. It
// matches the sentinel with errors.Is and converts to *models.FieldError with
// errors.As, so forms can highlight the offending input.
type fieldError struct {
	field string
	err   error
}

func invalid(field string, err error) error {
	return &fieldError{field: field, err: err}
}

func (e *fieldError) Error() string {
	return e.field + ": " + e.err.Error()
}

func (e *fieldError) Unwrap() error {
	return e.err
}

// As implements the errors.As conversion to *models.FieldError.
func (e *fieldError) As(target any) bool {
	fe, ok := target.(**models.FieldError)
	if !ok {
		return false
	}
	*fe = &models.FieldError{Field: e.field, Message: e.err.Error()}
	return true
}
