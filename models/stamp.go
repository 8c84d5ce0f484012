// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Stamp is an opaque, server-issued token marking the point up to which a
// cached collection reflects all writes. The remote API emits it either as a
// JSON string (ISO timestamp) or as a JSON number (epoch milliseconds), so
// Stamp keeps the raw textual form and only interprets it for ordering.
//
// The zero value means "never synced".
type Stamp string

// IsZero reports whether the stamp is empty.
func (s Stamp) IsZero() bool {
	return strings.TrimSpace(string(s)) == ""
}

// String implements fmt.Stringer.
func (s Stamp) String() string {
	return string(s)
}

// Equal reports whether both stamps denote the same server point.
func (s Stamp) Equal(other Stamp) bool {
	return s.Compare(other) == 0
}

// Compare returns -1 if s is before other, 0 if equal, 1 if after.
//
// Ordering is numeric when both stamps are integers, chronological when both
// are RFC 3339 timestamps, and lexical otherwise. The zero stamp sorts before
// everything else.
func (s Stamp) Compare(other Stamp) int {
	a := strings.TrimSpace(string(s))
	b := strings.TrimSpace(string(other))

	switch {
	case a == b:
		return 0
	case a == "":
		return -1
	case b == "":
		return 1
	}

	if ai, errA := strconv.ParseInt(a, 10, 64); errA == nil {
		if bi, errB := strconv.ParseInt(b, 10, 64); errB == nil {
			return compareInt(ai, bi)
		}
	}

	if at, errA := time.Parse(time.RFC3339Nano, a); errA == nil {
		if bt, errB := time.Parse(time.RFC3339Nano, b); errB == nil {
			return at.Compare(bt)
		}
	}

	return strings.Compare(a, b)
}

// Max returns the later of s and other.
func (s Stamp) Max(other Stamp) Stamp {
	if s.Compare(other) >= 0 {
		return s
	}
	return other
}

// UnmarshalJSON accepts a JSON string, a JSON number or null.
func (s *Stamp) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}

	if b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = Stamp(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return err
	}
	*s = Stamp(num.String())
	return nil
}

// MarshalJSON writes numeric stamps as numbers and everything else as strings,
// so the value round-trips in the shape the server produced it.
func (s Stamp) MarshalJSON() ([]byte, error) {
	if s.IsZero() {
		return []byte("null"), nil
	}
	if _, err := strconv.ParseInt(string(s), 10, 64); err == nil {
		return []byte(s), nil
	}
	return json.Marshal(string(s))
}

func compareInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
