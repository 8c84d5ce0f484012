// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()

	if a == b {
		t.Fatal("expected unique ids")
	}

	parsed, err := uuid.Parse(a)
	if err != nil {
		t.Fatalf("expected a valid uuid, got %q: %v", a, err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected version 7, got %d", parsed.Version())
	}
}
