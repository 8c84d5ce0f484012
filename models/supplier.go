// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Supplier is a vendor of a single store together with its ledger balance.
type Supplier struct {
	ID             string     `json:"_id"`
	StoreID        string     `json:"storeId"`
	Name           string     `json:"name"`
	Address        string     `json:"address,omitempty"`
	Phone          string     `json:"phone,omitempty"`
	Email          string     `json:"email,omitempty"`
	OpeningBalance float64    `json:"openingBalance"`
	CurrentBalance float64    `json:"currentBalance"`
	Active         bool       `json:"active"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
}

// RecordID implements [Record].
func (s Supplier) RecordID() string {
	return s.ID
}
