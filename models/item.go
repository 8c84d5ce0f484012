// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Item is a catalog record of a single store.
//
// Variants, packings and batches are explicit nested arrays; the remote API
// returns them embedded in the item document.
type Item struct {
	// ID is the server-assigned identifier.
	ID string `json:"_id"`
	// StoreID is the store the item belongs to.
	StoreID string `json:"storeId"`
	// CategoryID references the item category, may be empty.
	CategoryID string `json:"categoryId,omitempty"`
	// Name is the display name.
	Name string `json:"itemName"`
	// Code is the store-level item code (SKU).
	Code string `json:"itemCode,omitempty"`
	// Cost is the unit purchase cost.
	Cost float64 `json:"costPrice"`
	// SalePrice is the unit sale price.
	SalePrice float64 `json:"salePrice"`
	// MinStock and MaxStock bound the reorder window.
	MinStock float64 `json:"minStock,omitempty"`
	MaxStock float64 `json:"maxStock,omitempty"`
	// CurrentStock is the server-computed on-hand quantity.
	CurrentStock float64 `json:"currentStock"`
	// Active is false for items hidden from sale screens.
	Active bool `json:"active"`

	Variants []Variant `json:"variants,omitempty"`
	Packings []Packing `json:"packings,omitempty"`
	Batches  []Batch   `json:"batches,omitempty"`

	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// RecordID implements [Record].
func (i Item) RecordID() string {
	return i.ID
}

// Variant is a sellable variation of an item (size, colour, ...).
type Variant struct {
	ID        string  `json:"_id"`
	Name      string  `json:"name"`
	Barcode   string  `json:"barcode,omitempty"`
	Cost      float64 `json:"costPrice"`
	SalePrice float64 `json:"salePrice"`
}

// Packing is a pack size an item is purchased or sold in.
type Packing struct {
	ID        string  `json:"_id"`
	Name      string  `json:"packingName"`
	Barcode   string  `json:"barcode,omitempty"`
	Quantity  float64 `json:"packingQuantity"`
	SalePrice float64 `json:"salePrice"`
}

// Batch is a received lot of an item.
type Batch struct {
	Number   string     `json:"batchNumber"`
	Expiry   *time.Time `json:"batchExpiryDate,omitempty"`
	Quantity float64    `json:"stock"`
}
