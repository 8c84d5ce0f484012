// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-stock-keeper/internal/state"
	"github.com/MKhiriev/go-stock-keeper/internal/validators"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// RecordValidationService rejects invalid records before they reach the
// remote API.
type RecordValidationService[T models.Record] struct {
	inner     RecordService[T]
	validator validators.Validator
}

// NewRecordValidationService returns a wrapper validating with the record
// validator.
func NewRecordValidationService[T models.Record]() RecordServiceWrapper[T] {
	return &RecordValidationService[T]{
		validator: validators.NewRecordValidator(),
	}
}

func (v *RecordValidationService[T]) Wrap(inner RecordService[T]) RecordService[T] {
	v.inner = inner
	return v
}

func (v *RecordValidationService[T]) Create(ctx context.Context, record T) (T, error) {
	if err := v.validator.Validate(ctx, record); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Create(ctx, record)
}

func (v *RecordValidationService[T]) Update(ctx context.Context, record T) (T, error) {
	var zero T
	if err := v.validator.Validate(ctx, record, validators.FieldID); err != nil {
		return zero, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := v.validator.Validate(ctx, record); err != nil {
		return zero, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Update(ctx, record)
}

func (v *RecordValidationService[T]) Delete(ctx context.Context, storeID, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, &models.FieldError{Field: validators.FieldID, Message: validators.ErrEmptyID.Error()})
	}
	return v.inner.Delete(ctx, storeID, id)
}

func (v *RecordValidationService[T]) List(ctx context.Context, storeID, search string) ([]T, error) {
	return v.inner.List(ctx, storeID, search)
}

func (v *RecordValidationService[T]) Get(ctx context.Context, storeID, id string) (T, error) {
	return v.inner.Get(ctx, storeID, id)
}

func (v *RecordValidationService[T]) Collection(storeID string) state.Collection[T] {
	return v.inner.Collection(storeID)
}

func (v *RecordValidationService[T]) Refresh(ctx context.Context, storeID string) error {
	return v.inner.Refresh(ctx, storeID)
}

func (v *RecordValidationService[T]) Browse(ctx context.Context, q models.ListQuery) (models.Page[T], error) {
	return v.inner.Browse(ctx, q)
}
