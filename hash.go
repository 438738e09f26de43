// Copyright (c) 2023 Yawning Angel
//
// SPDX-License-Identifier: BSD-3-Clause

package ed448

import (
	"golang.org/x/crypto/sha3"
)

// MaxContextSize is the maximum length, in bytes, of an Ed448 signing
// context, per RFC 8032.
const MaxContextSize = 255

// dom4Prefix builds the `dom4(phflag, context)` prefix defined by
// RFC 8032: the literal "SigEd448", one octet selecting the pure or
// pre-hashed variant, one octet giving the context length, and the
// context itself.
func dom4Prefix(phflag byte, ctx []byte) []byte {
	dst := make([]byte, 0, 10+len(ctx))
	dst = append(dst, "SigEd448"...)
	dst = append(dst, phflag, byte(len(ctx)))
	dst = append(dst, ctx...)
	return dst
}

// ExpandSeed expands a 57-byte private seed into a 114-byte digest via
// SHAKE256, per RFC 8032's key generation procedure.  The first 57
// bytes (clamped via NewScalarFromClampedSeed) become the private
// scalar; the remaining 57 bytes are the per-key nonce prefix.
func ExpandSeed(seed []byte) []byte {
	h := sha3.NewShake256()
	_, _ = h.Write(seed)
	digest := make([]byte, 114)
	_, _ = h.Read(digest)
	return digest
}

// Dom4Hash computes `SHAKE256(dom4(phflag, ctx) || parts..., 114)`, the
// construction used for both the per-message nonce `r` and the
// challenge `k` in the pure and pre-hashed Ed448 signing/verification
// state machines.  `phflag` is 0 for pure Ed448, 1 for Ed448ph.
func Dom4Hash(phflag byte, ctx []byte, parts ...[]byte) []byte {
	h := sha3.NewShake256()
	_, _ = h.Write(dom4Prefix(phflag, ctx))
	for _, part := range parts {
		_, _ = h.Write(part)
	}
	digest := make([]byte, 114)
	_, _ = h.Read(digest)
	return digest
}

// PreHash computes the SHAKE256-based pre-hash used by Ed448ph: a
// 64-byte digest of the message, substituted for the message itself
// in the dom4-prefixed hashes.
func PreHash(message []byte) []byte {
	h := sha3.NewShake256()
	_, _ = h.Write(message)
	digest := make([]byte, 64)
	_, _ = h.Read(digest)
	return digest
}
