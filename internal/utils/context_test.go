// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestStoreIDCtxKey(t *testing.T) {
	if StoreIDCtxKey.String() != "storeID" {
		t.Errorf("expected 'storeID', got '%s'", StoreIDCtxKey.String())
	}
}

func TestGetStoreIDFromContext_Success(t *testing.T) {
	ctx := WithStoreID(context.Background(), "store-42")

	storeID, ok := GetStoreIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if storeID != "store-42" {
		t.Errorf("expected storeID=store-42, got %s", storeID)
	}
}

func TestGetStoreIDFromContext_Missing(t *testing.T) {
	storeID, ok := GetStoreIDFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if storeID != "" {
		t.Errorf("expected empty storeID, got %s", storeID)
	}
}

func TestGetStoreIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), StoreIDCtxKey, 42)

	if _, ok := GetStoreIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetStoreIDFromContext_Empty(t *testing.T) {
	ctx := WithStoreID(context.Background(), "")

	if _, ok := GetStoreIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for empty store id, got true")
	}
}

func TestGetStoreIDFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("otherKey"), "store-1")

	if _, ok := GetStoreIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for different key, got true")
	}
}
