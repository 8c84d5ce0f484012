package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// HashHeader is the request header carrying the hex HMAC-SHA256 of the body.
const HashHeader = "HashSHA256"

// hasherPool is a package-level pool of reusable HMAC-SHA256 hash instances.
// Must be initialized via InitHasherPool before use.
var hasherPool sync.Pool

// InitHasherPool initializes a sync.Pool of HMAC-SHA256 hashers keyed with
// hashKey. The adapter calls it once at construction.
//
//	utils.InitHasherPool("my-secret-key")
func InitHasherPool(hashKey string) {
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, []byte(hashKey))
		},
	}
}

// Hash computes an HMAC-SHA256 digest over data using a hasher pulled from
// the global pool. The pool must be initialized.
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// HashHex is Hash encoded as lowercase hex, the form sent in [HashHeader].
func HashHex(data []byte) string {
	return hex.EncodeToString(Hash(data))
}

// HashString computes a hex HMAC-SHA256 of data with hashKey without
// touching the pool. Suitable for one-off checks such as verifying a received
// signature in tests.
func HashString(data string, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write([]byte(data))
	return hex.EncodeToString(hasher.Sum(nil))
}
