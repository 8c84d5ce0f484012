// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-stock-keeper/models"
)

const testHashKey = "test-secret-key"

func TestInitHasherPoolAndHash(t *testing.T) {
	key := "secret-key"
	InitHasherPool(key)

	data := []byte("test-data")

	sum1 := Hash(data)
	sum2 := Hash(data)

	if len(sum1) == 0 {
		t.Fatal("hash result is empty")
	}
	if !bytes.Equal(sum1, sum2) {
		t.Fatal("hash must be deterministic for the same input")
	}

	h := hmac.New(sha256.New, []byte(key))
	h.Write(data)
	if expected := h.Sum(nil); !bytes.Equal(sum1, expected) {
		t.Fatalf("unexpected hash value\nwant: %x\ngot:  %x", expected, sum1)
	}
}

func TestHashHex_WithItemBody(t *testing.T) {
	InitHasherPool(testHashKey)

	body, err := json.Marshal(models.Item{ID: "i-1", StoreID: "s-1", Name: "Cola 330ml", SalePrice: 1.2})
	if err != nil {
		t.Fatalf("failed to marshal item: %v", err)
	}

	got := HashHex(body)

	// эталон считаем напрямую через crypto/hmac
	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write(body)
	want := hex.EncodeToString(mac.Sum(nil))

	if got != want {
		t.Errorf("HashHex mismatch:\n  got:  %s\n  want: %s", got, want)
	}
	if got != HashString(string(body), testHashKey) {
		t.Error("HashHex and HashString must agree for the same key")
	}
}

func TestHash_DifferentBodies(t *testing.T) {
	InitHasherPool(testHashKey)

	b1, _ := json.Marshal(models.Supplier{ID: "1", Name: "Acme"})
	b2, _ := json.Marshal(models.Supplier{ID: "2", Name: "Globex"})

	if HashHex(b1) == HashHex(b2) {
		t.Error("different bodies must produce different hashes")
	}
}

func TestHash_DifferentKeys(t *testing.T) {
	body := []byte(`{"id":"i-1"}`)

	InitHasherPool("key-one")
	hash1 := HashHex(body)

	InitHasherPool("key-two")
	hash2 := HashHex(body)

	if hash1 == hash2 {
		t.Error("different keys must produce different hashes for the same body")
	}
}

func TestHashString_KnownVector(t *testing.T) {
	// RFC 4231 test case 2
	got := HashString("what do ya want for nothing?", "Jefe")
	want := "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843"

	if got != want {
		t.Errorf("HashString mismatch:\n  got:  %s\n  want: %s", got, want)
	}
}
