// Copyright (c) 2023 Yawning Angel
//
// SPDX-License-Identifier: BSD-3-Clause

package eddsa

import "errors"

// Error sentinels for key and signature parsing/verification failures.
// Exported so callers can use errors.Is rather than string matching.
var (
	ErrWrongSecretKeyLength = errors.New("ed448/eddsa: invalid secret key length")
	ErrWrongPublicKeyLength = errors.New("ed448/eddsa: invalid public key length")
	ErrWrongSignatureLength = errors.New("ed448/eddsa: invalid signature length")
	ErrContextTooLong       = errors.New("ed448/eddsa: context exceeds 255 bytes")
	ErrInvalidSignature     = errors.New("ed448/eddsa: invalid signature")
)
