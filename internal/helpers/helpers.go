// Copyright (c) 2023 Yawning Angel
//
// SPDX-License-Identifier: BSD-3-Clause

// Package helpers provides small constant-time and test-only utility
// routines shared by the field, scalar, and point packages.
package helpers

import "encoding/hex"

// Uint64IsZero returns 1 iff v == 0, 0 otherwise.
func Uint64IsZero(v uint64) uint64 {
	return ((^v & (v - 1)) >> 63) & 1
}

// Uint64IsNonzero returns 1 iff v != 0, 0 otherwise.
func Uint64IsNonzero(v uint64) uint64 {
	return 1 - Uint64IsZero(v)
}

// MustBytesFromHex decodes a hex string, and panics on failure.  It is
// intended for use with test vectors only.
func MustBytesFromHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("helpers: invalid hex: " + err.Error())
	}
	return b
}
