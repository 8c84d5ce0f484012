package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenExpired is returned for a bearer token whose exp claim has passed.
var ErrTokenExpired = errors.New("api token expired")

// ParseBearerToken extracts the token from an "Authorization: Bearer <t>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// TokenExpiry reads the exp claim of a JWT without verifying its signature;
// the client never holds the signing key. ok is false when the token carries
// no exp claim.
func TokenExpiry(tokenString string) (exp time.Time, ok bool, err error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, &jwt.RegisteredClaims{})
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parse token: %w", err)
	}

	expiresAt, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, false, fmt.Errorf("read exp claim: %w", err)
	}
	if expiresAt == nil {
		return time.Time{}, false, nil
	}

	return expiresAt.Time, true, nil
}

// CheckTokenExpiry returns [ErrTokenExpired] when tokenString is a JWT whose
// exp lies before now. Opaque (non-JWT) tokens and tokens without exp pass;
// the server stays the authority on them.
func CheckTokenExpiry(tokenString string, now time.Time) error {
	if strings.Count(tokenString, ".") != 2 {
		return nil
	}

	exp, ok, err := TokenExpiry(tokenString)
	if err != nil || !ok {
		return nil
	}
	if now.After(exp) {
		return fmt.Errorf("%w at %s", ErrTokenExpired, exp.UTC().Format(time.RFC3339))
	}
	return nil
}
