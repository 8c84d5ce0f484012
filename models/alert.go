// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AlertLevel classifies a user-visible alert.
type AlertLevel string

const (
	AlertInfo    AlertLevel = "info"
	AlertWarning AlertLevel = "warning"
	AlertError   AlertLevel = "error"
)

// Alert is a non-fatal, user-visible notification, e.g. a failed background
// delta fetch.
type Alert struct {
	ID      string     `json:"id"`
	Level   AlertLevel `json:"level"`
	Message string     `json:"message"`
	At      time.Time  `json:"at"`
}
