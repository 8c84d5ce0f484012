// Package utils provides general-purpose helpers used across the
// application: request-scoped context keys, HMAC body hashing, JSON response
// writing, the instrumented HTTP client, bearer token inspection and id
// generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// StoreIDCtxKey is the key under which the view API stores the store id
// taken from the request path.
//
//	ctx := context.WithValue(ctx, utils.StoreIDCtxKey, "store-1")
var StoreIDCtxKey = contextKey("storeID")

// WithStoreID returns a copy of ctx carrying storeID.
func WithStoreID(ctx context.Context, storeID string) context.Context {
	return context.WithValue(ctx, StoreIDCtxKey, storeID)
}

// GetStoreIDFromContext retrieves the store id from the context.
//
// Returns the store id and an ok flag:
//   - ok == true  — value is found, is a string and is not empty
//   - ok == false — value is missing, empty or has an unexpected type
func GetStoreIDFromContext(ctx context.Context) (string, bool) {
	storeID, ok := ctx.Value(StoreIDCtxKey).(string)
	return storeID, ok && storeID != ""
}
