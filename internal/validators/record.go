// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-stock-keeper/models"
)

// Field name constants used to specify which fields should be validated.
// They are the JSON names of the record fields, so a failure can be shown
// next to the matching form input.
const (
	FieldID       = "_id"
	FieldStoreID  = "storeId"
	FieldItemName = "itemName"
	FieldItemCode = "itemCode"
	FieldPrices   = "prices"
	FieldStock    = "stock"
	FieldVariants = "variants"
	FieldPackings = "packings"

	FieldSupplierName = "name"
	FieldEmail        = "email"
	FieldBalance      = "openingBalance"
)

const (
	maxNameLength = 200
	maxCodeLength = 64
)

var (
	defaultItemFields     = []string{FieldStoreID, FieldItemName, FieldItemCode, FieldPrices, FieldStock, FieldVariants, FieldPackings}
	defaultSupplierFields = []string{FieldStoreID, FieldSupplierName, FieldEmail, FieldBalance}
)

// RecordValidator implements [Validator] for items and suppliers. Both
// value and pointer forms are accepted.
type RecordValidator struct{}

// NewRecordValidator returns the item and supplier validator.
func NewRecordValidator() Validator {
	return &RecordValidator{}
}

// Validate dispatches on the record type. When fields is empty every field
// of a create is checked; updates pass FieldID in addition.
func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Item:
		return v.validateItem(ctx, value, fields...)
	case *models.Item:
		return v.validateItem(ctx, *value, fields...)

	case models.Supplier:
		return v.validateSupplier(ctx, value, fields...)
	case *models.Supplier:
		return v.validateSupplier(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateItem(_ context.Context, item models.Item, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultItemFields
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(item.ID) == "" {
				return invalid(FieldID, ErrEmptyID)
			}
		case FieldStoreID:
			if strings.TrimSpace(item.StoreID) == "" {
				return invalid(FieldStoreID, ErrEmptyStoreID)
			}
		case FieldItemName:
			if err := checkName(item.Name); err != nil {
				return invalid(FieldItemName, err)
			}
		case FieldItemCode:
			if err := checkCode(item.Code); err != nil {
				return invalid(FieldItemCode, err)
			}
		case FieldPrices:
			if item.Cost < 0 || item.SalePrice < 0 {
				return invalid(FieldPrices, ErrNegativePrice)
			}
		case FieldStock:
			if item.MinStock < 0 || item.MaxStock < 0 {
				return invalid(FieldStock, ErrNegativeStock)
			}
			if item.MaxStock > 0 && item.MinStock > item.MaxStock {
				return invalid(FieldStock, ErrStockBounds)
			}
		case FieldVariants:
			if err := checkVariants(item.Variants); err != nil {
				return err
			}
		case FieldPackings:
			if err := checkPackings(item.Packings); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func checkVariants(variants []models.Variant) error {
	seen := make(map[string]struct{}, len(variants))
	for i, variant := range variants {
		field := fmt.Sprintf("%s[%d]", FieldVariants, i)
		if strings.TrimSpace(variant.Name) == "" {
			return invalid(field, ErrEmptyVariantName)
		}
		if variant.Cost < 0 || variant.SalePrice < 0 {
			return invalid(field, ErrNegativePrice)
		}
		// new variants have no id yet
		if variant.ID == "" {
			continue
		}
		if _, dup := seen[variant.ID]; dup {
			return invalid(field, ErrDuplicateVariant)
		}
		seen[variant.ID] = struct{}{}
	}
	return nil
}

func checkPackings(packings []models.Packing) error {
	seen := make(map[string]struct{}, len(packings))
	for i, packing := range packings {
		field := fmt.Sprintf("%s[%d]", FieldPackings, i)
		if strings.TrimSpace(packing.Name) == "" {
			return invalid(field, ErrEmptyPackingName)
		}
		if packing.Quantity <= 0 {
			return invalid(field, ErrInvalidPackingSize)
		}
		if packing.SalePrice < 0 {
			return invalid(field, ErrNegativePrice)
		}
		if packing.ID == "" {
			continue
		}
		if _, dup := seen[packing.ID]; dup {
			return invalid(field, ErrDuplicatePacking)
		}
		seen[packing.ID] = struct{}{}
	}
	return nil
}

func (v *RecordValidator) validateSupplier(_ context.Context, supplier models.Supplier, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultSupplierFields
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(supplier.ID) == "" {
				return invalid(FieldID, ErrEmptyID)
			}
		case FieldStoreID:
			if strings.TrimSpace(supplier.StoreID) == "" {
				return invalid(FieldStoreID, ErrEmptyStoreID)
			}
		case FieldSupplierName:
			if err := checkName(supplier.Name); err != nil {
				return invalid(FieldSupplierName, err)
			}
		case FieldEmail:
			if err := checkEmail(supplier.Email); err != nil {
				return invalid(FieldEmail, err)
			}
		case FieldBalance:
			if supplier.OpeningBalance < 0 {
				return invalid(FieldBalance, ErrNegativePrice)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func checkName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return ErrNameTooLong
	}
	return nil
}

// checkCode accepts an empty code; the server assigns one.
func checkCode(code string) error {
	if code == "" {
		return nil
	}
	if strings.IndexFunc(code, unicode.IsSpace) >= 0 {
		return ErrInvalidCode
	}
	if utf8.RuneCountInString(code) > maxCodeLength {
		return ErrCodeTooLong
	}
	return nil
}

// checkEmail accepts an empty address or a bare "local@domain" address.
func checkEmail(email string) error {
	if email == "" {
		return nil
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return ErrInvalidEmail
	}
	if !strings.Contains(email[strings.LastIndex(email, "@")+1:], ".") {
		return ErrInvalidEmail
	}
	return nil
}
