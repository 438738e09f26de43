// Copyright (c) 2023 Yawning Angel
//
// SPDX-License-Identifier: BSD-3-Clause

package eddsa

import (
	"crypto"
	"crypto/subtle"

	"github.com/WinLinux1028/ed448"
	"github.com/WinLinux1028/ed448/internal/disalloweq"
)

// PublicKey is an Ed448 public key.
//
// Construction trusts the caller and does not decode the point: an
// undecodable PublicKey can be constructed, and only fails (as
// ErrInvalidSignature, never distinguished from any other verification
// failure) the first time it is used to Verify.
type PublicKey struct {
	_ disalloweq.DisallowEqual

	bytes []byte // 57-byte encoding, not yet known to decode
}

// Bytes returns a copy of the 57-byte encoding of `k`, exactly as it
// was given to NewPublicKey or derived by NewPublicKeyFromScalar.
func (k *PublicKey) Bytes() []byte {
	return append([]byte{}, k.bytes...)
}

// Equal returns whether `x` represents the same encoded public key as
// `k`.  This check is performed in constant time as long as the key
// types match.
func (k *PublicKey) Equal(x crypto.PublicKey) bool {
	other, ok := x.(*PublicKey)
	if !ok {
		return false
	}

	return subtle.ConstantTimeCompare(other.bytes, k.bytes) == 1
}

// Verify verifies the pure Ed448 `sig` of `message`, using `ctx` as
// the (possibly empty) signing context.  It returns nil if the
// signature is valid, or a typed error otherwise.
func (k *PublicKey) Verify(message, sig, ctx []byte) error {
	return k.verify(phPure, message, sig, ctx)
}

// VerifyPh verifies the pre-hashed Ed448ph `sig` of `message`, using
// `ctx` as the (possibly empty) signing context.  It returns nil if
// the signature is valid, or a typed error otherwise.
func (k *PublicKey) VerifyPh(message, sig, ctx []byte) error {
	return k.verify(phHashed, ed448.PreHash(message), sig, ctx)
}

func (k *PublicKey) verify(phflag byte, message, sig, ctx []byte) error {
	if len(ctx) > ed448.MaxContextSize {
		return ErrContextTooLong
	}
	if len(sig) != SignatureSize {
		return ErrWrongSignatureLength
	}

	// Every failure from this point on - a bad R or A encoding, an
	// out-of-range S, or a failed group equation - collapses into
	// ErrInvalidSignature, so the caller can never distinguish "R did
	// not decode" from "the equation did not hold".
	R, err := ed448.NewPointFromBytes(sig[:ed448.KeySize])
	if err != nil {
		return ErrInvalidSignature
	}

	S, err := ed448.NewScalarFromCanonicalBytes((*[ed448.ScalarSize]byte)(sig[ed448.KeySize:]))
	if err != nil {
		return ErrInvalidSignature
	}

	A, err := ed448.NewPointFromBytes(k.bytes)
	if err != nil {
		return ErrInvalidSignature
	}

	kDigest := ed448.Dom4Hash(phflag, ctx, sig[:ed448.KeySize], k.bytes, message)
	kScalar := ed448.NewScalarFromWideBytes(kDigest)

	// [S]B == R + [k]A, checked cofactored: both sides are doubled
	// twice (the Edwards448 cofactor is 4) before comparison, so a
	// signature that only differs from the canonical one by a
	// small-subgroup component still verifies, per RFC 8032 §5.2.
	sb := ed448.NewIdentityPoint().ScalarBaseMult(S)
	kA := ed448.NewIdentityPoint().ScalarMult(kScalar, A)
	rPlusKA := ed448.NewIdentityPoint().Add(R, kA)

	lhs := ed448.NewIdentityPoint().Double(sb)
	lhs.Double(lhs)
	rhs := ed448.NewIdentityPoint().Double(rPlusKA)
	rhs.Double(rhs)

	if lhs.Equal(rhs) != 1 {
		return ErrInvalidSignature
	}
	return nil
}

// NewPublicKeyFromScalar derives the PublicKey corresponding to the
// scalar `s`, by computing and encoding `[s]B`.
func NewPublicKeyFromScalar(s *ed448.Scalar) *PublicKey {
	return &PublicKey{
		bytes: ed448.NewIdentityPoint().ScalarBaseMult(s).Bytes(),
	}
}

// NewPublicKey returns a PublicKey wrapping the given 57-byte encoding.
//
// `key` is trusted as-is and not decoded here: a byte string that does
// not encode a point on the curve is accepted by NewPublicKey and only
// surfaces as ErrInvalidSignature the first time it is used to Verify.
// Callers that need to know up front whether `key` decodes can call
// ed448.NewPointFromBytes themselves.
func NewPublicKey(key []byte) (*PublicKey, error) {
	if len(key) != PublicKeySize {
		return nil, ErrWrongPublicKeyLength
	}

	return &PublicKey{
		bytes: append([]byte{}, key...),
	}, nil
}
