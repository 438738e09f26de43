// Copyright (c) 2023 Yawning Angel
//
// SPDX-License-Identifier: BSD-3-Clause

// Package eddsa implements the Ed448 and Ed448ph signature schemes
// defined by RFC 8032, on top of the Edwards448 group arithmetic in
// the parent package.
package eddsa

import (
	"crypto"
	"crypto/rand"
	"io"

	"github.com/WinLinux1028/ed448"
	"github.com/WinLinux1028/ed448/internal/disalloweq"
)

const (
	// SeedSize is the size, in bytes, of an Ed448 private key seed.
	SeedSize = ed448.ScalarSize

	// PublicKeySize is the size, in bytes, of an Ed448 public key.
	PublicKeySize = ed448.KeySize

	// SignatureSize is the size, in bytes, of an Ed448 or Ed448ph
	// signature.
	SignatureSize = ed448.ScalarSize + ed448.KeySize

	phPure   = 0
	phHashed = 1
)

// PrivateKey is an Ed448 private key.
type PrivateKey struct {
	_ disalloweq.DisallowEqual

	seed      []byte // 57-byte seed, as passed to NewPrivateKeyFromSeed
	scalar    *ed448.Scalar
	prefix    []byte // 57-byte nonce-derivation prefix
	publicKey *PublicKey
}

// Seed returns a copy of the 57-byte seed that `k` was derived from.
func (k *PrivateKey) Seed() []byte {
	return append([]byte{}, k.seed...)
}

// Public returns the PublicKey corresponding to `k`.
func (k *PrivateKey) Public() crypto.PublicKey {
	return k.publicKey
}

// PublicKey returns the PublicKey corresponding to `k`.
func (k *PrivateKey) PublicKey() *PublicKey {
	return k.publicKey
}

// Equal returns whether `x` represents the same private key as `k`.
// This check is performed in constant time as long as the key types
// match.
func (k *PrivateKey) Equal(x crypto.PrivateKey) bool {
	other, ok := x.(*PrivateKey)
	if !ok {
		return false
	}

	return other.scalar.Equal(k.scalar) == 1
}

// Sign signs `message` with the pure Ed448 scheme, using `ctx` as the
// (possibly empty) signing context.  `ctx` MUST NOT exceed
// ed448.MaxContextSize bytes.
func (k *PrivateKey) Sign(message, ctx []byte) ([]byte, error) {
	return k.sign(phPure, message, ctx)
}

// SignPh signs `message` with the pre-hashed Ed448ph scheme, using
// `ctx` as the (possibly empty) signing context.  `ctx` MUST NOT
// exceed ed448.MaxContextSize bytes.
func (k *PrivateKey) SignPh(message, ctx []byte) ([]byte, error) {
	return k.sign(phHashed, ed448.PreHash(message), ctx)
}

func (k *PrivateKey) sign(phflag byte, message, ctx []byte) ([]byte, error) {
	if len(ctx) > ed448.MaxContextSize {
		return nil, ErrContextTooLong
	}

	rDigest := ed448.Dom4Hash(phflag, ctx, k.prefix, message)
	r := ed448.NewScalarFromWideBytes(rDigest)

	R := ed448.NewIdentityPoint().ScalarBaseMult(r)
	RBytes := R.Bytes()

	kDigest := ed448.Dom4Hash(phflag, ctx, RBytes, k.publicKey.Bytes(), message)
	kScalar := ed448.NewScalarFromWideBytes(kDigest)

	S := ed448.NewScalar().Multiply(kScalar, k.scalar)
	S.Add(S, r)

	sig := make([]byte, 0, SignatureSize)
	sig = append(sig, RBytes...)
	sig = append(sig, S.Bytes()...)

	return sig, nil
}

// NewPrivateKeyFromSeed constructs a PrivateKey from a 57-byte seed,
// as specified by RFC 8032's key generation procedure.
func NewPrivateKeyFromSeed(seed []byte) (*PrivateKey, error) {
	if len(seed) != SeedSize {
		return nil, ErrWrongSecretKeyLength
	}

	digest := ed448.ExpandSeed(seed)
	scalar := ed448.NewScalarFromClampedSeed(digest)
	prefix := append([]byte{}, digest[ed448.ScalarSize:]...)

	k := &PrivateKey{
		seed:      append([]byte{}, seed...),
		scalar:    scalar,
		prefix:    prefix,
		publicKey: NewPublicKeyFromScalar(scalar),
	}

	return k, nil
}

// GenerateKey generates a new PrivateKey using entropy from `rnd`.  If
// `rnd` is nil, crypto/rand.Reader is used.
func GenerateKey(rnd io.Reader) (*PrivateKey, error) {
	if rnd == nil {
		rnd = rand.Reader
	}

	seed := make([]byte, SeedSize)
	if _, err := io.ReadFull(rnd, seed); err != nil {
		return nil, err
	}

	return NewPrivateKeyFromSeed(seed)
}
