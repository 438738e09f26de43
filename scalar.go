// Copyright (c) 2023 Yawning Angel
//
// SPDX-License-Identifier: BSD-3-Clause

package ed448

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"math/big"

	"github.com/WinLinux1028/ed448/internal/disalloweq"
	"github.com/WinLinux1028/ed448/internal/helpers"
)

// ScalarSize is the size of a scalar in bytes.  Edwards448's group
// order `L` only needs 446 bits, but scalars are encoded the same
// width as a compressed point (57 bytes, little-endian) so that the
// encoded point `R` and the scalar `S` pack into a 114-byte signature
// without a separate length.
const ScalarSize = 57

var (
	// order is L = 2^446 - 13818066809895115352007386748515426880336692474882178609894547503885,
	// the order of the prime-order subgroup generated by the base point.
	order = mustBigFromHex("3fffffffffffffffffffffffffffffffffffffffffffffffffffffff" +
		"7cca23e9c44edb49aed63690216cc2728dc58f552378c292ab5844f3")

	orderMinus2 = new(big.Int).Sub(order, big.NewInt(2))
)

// GroupOrder returns a freshly-allocated Scalar set to `L`, the order
// of the prime-order subgroup generated by the base point.
func GroupOrder() *Scalar {
	var s Scalar
	s.n.Set(order)
	return &s
}

// Scalar is an integer modulo `L = 2^446 - 13818066809895115352007386748515426880336692474882178609894547503885`.
// All arguments and receivers are allowed to alias.  The zero value is
// a valid zero element.
type Scalar struct {
	_ disalloweq.DisallowEqual
	n big.Int
}

// Zero sets `s = 0` and returns `s`.
func (s *Scalar) Zero() *Scalar {
	s.n.SetInt64(0)
	return s
}

// One sets `s = 1` and returns `s`.
func (s *Scalar) One() *Scalar {
	s.n.SetInt64(1)
	return s
}

// Add sets `s = a + b` and returns `s`.
func (s *Scalar) Add(a, b *Scalar) *Scalar {
	s.n.Add(&a.n, &b.n)
	s.n.Mod(&s.n, order)
	return s
}

// Subtract sets `s = a - b` and returns `s`.
func (s *Scalar) Subtract(a, b *Scalar) *Scalar {
	s.n.Sub(&a.n, &b.n)
	s.n.Mod(&s.n, order)
	return s
}

// Negate sets `s = -a` and returns `s`.
func (s *Scalar) Negate(a *Scalar) *Scalar {
	s.n.Neg(&a.n)
	s.n.Mod(&s.n, order)
	return s
}

// Multiply sets `s = a * b` and returns `s`.
func (s *Scalar) Multiply(a, b *Scalar) *Scalar {
	s.n.Mul(&a.n, &b.n)
	s.n.Mod(&s.n, order)
	return s
}

// Square sets `s = a * a` and returns `s`.
func (s *Scalar) Square(a *Scalar) *Scalar {
	return s.Multiply(a, a)
}

// Set sets `s = a` and returns `s`.
func (s *Scalar) Set(a *Scalar) *Scalar {
	s.n.Set(&a.n)
	return s
}

// Invert sets `s = 1/a` and returns `s`.  The inverse of zero is zero.
//
// This uses Fermat's little theorem (`a^(L-2)`) rather than a fixed
// addition chain, since no constant-time Montgomery package exists for
// this group order in this module (see DESIGN.md).
func (s *Scalar) Invert(a *Scalar) *Scalar {
	s.n.Exp(&a.n, orderMinus2, order)
	return s
}

// SetBytes sets `s = src`, where `src` is a 57-byte little-endian
// encoding of `s`, and returns `s, 0`.  If `src` is not a canonical
// encoding of `s`, `src` is reduced modulo `L`, and SetBytes returns
// `s, 1`.
func (s *Scalar) SetBytes(src *[ScalarSize]byte) (*Scalar, uint64) {
	n := bigFromLittleEndian(src[:])

	var didReduce uint64
	if n.Cmp(order) >= 0 {
		didReduce = 1
	}
	n.Mod(n, order)

	s.n.Set(n)
	return s, didReduce
}

// SetCanonicalBytes sets `s = src`, where `src` is a 57-byte
// little-endian encoding of `s`, and returns `s`.  If `src` is not a
// canonical encoding of `s`, SetCanonicalBytes returns nil and an
// error, and the receiver is unchanged.
func (s *Scalar) SetCanonicalBytes(src *[ScalarSize]byte) (*Scalar, error) {
	n := bigFromLittleEndian(src[:])
	if n.Cmp(order) >= 0 {
		return nil, errors.New("ed448: scalar value out of range")
	}

	s.n.Set(n)
	return s, nil
}

// Bytes returns the canonical little-endian encoding of `s`.
func (s *Scalar) Bytes() []byte {
	var dst [ScalarSize]byte
	return s.getBytes(&dst)
}

func (s *Scalar) getBytes(dst *[ScalarSize]byte) []byte {
	be := s.n.FillBytes(make([]byte, ScalarSize))
	reverseInto(dst[:], be)
	return dst[:]
}

// ConditionalNegate sets `s = a` iff `ctrl == 0`, `s = -a` otherwise,
// and returns `s`.
func (s *Scalar) ConditionalNegate(a *Scalar, ctrl uint64) *Scalar {
	sNeg := NewScalar().Negate(a)

	return s.ConditionalSelect(a, sNeg, ctrl)
}

// ConditionalSelect sets `s = a` iff `ctrl == 0`, `s = b` otherwise,
// and returns `s`.
func (s *Scalar) ConditionalSelect(a, b *Scalar, ctrl uint64) *Scalar {
	var aBytes, bBytes [ScalarSize]byte
	a.getBytes(&aBytes)
	b.getBytes(&bBytes)

	out := aBytes
	subtle.ConstantTimeCopy(int(helpers.Uint64IsNonzero(ctrl)), out[:], bBytes[:])

	s.n.Set(bigFromLittleEndian(out[:]))
	return s
}

// Equal returns 1 iff `s == a`, 0 otherwise.
func (s *Scalar) Equal(a *Scalar) uint64 {
	var x, y [ScalarSize]byte
	s.getBytes(&x)
	a.getBytes(&y)
	return uint64(subtle.ConstantTimeCompare(x[:], y[:]))
}

// IsZero returns 1 iff `s == 0`, 0 otherwise.
func (s *Scalar) IsZero() uint64 {
	var x [ScalarSize]byte
	s.getBytes(&x)
	return uint64(subtle.ConstantTimeCompare(x[:], make([]byte, ScalarSize)))
}

// String returns the little-endian hex representation of `s`.
func (s *Scalar) String() string {
	return hex.EncodeToString(s.Bytes())
}

// MustRandomize randomizes and returns `s`, or panics.
func (s *Scalar) MustRandomize() *Scalar {
	var b [ScalarSize]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic("ed448: entropy source failure")
	}
	s.n.Set(bigFromLittleEndian(b[:]))
	s.n.Mod(&s.n, order)
	return s
}

// NewScalar returns a new zero Scalar.
func NewScalar() *Scalar {
	return &Scalar{}
}

// NewScalarFrom creates a new Scalar from another.
func NewScalarFrom(other *Scalar) *Scalar {
	return NewScalar().Set(other)
}

// NewScalarFromCanonicalBytes creates a new Scalar from the canonical
// little-endian byte representation.
func NewScalarFromCanonicalBytes(src *[ScalarSize]byte) (*Scalar, error) {
	return NewScalar().SetCanonicalBytes(src)
}

// NewScalarFromWideBytes reduces an arbitrary-length little-endian
// byte string (e.g. a 114-byte SHAKE256 digest used for nonce/challenge
// derivation) modulo `L`, without requiring the input be exactly
// ScalarSize.
func NewScalarFromWideBytes(src []byte) *Scalar {
	n := bigFromLittleEndian(src)
	n.Mod(n, order)

	var s Scalar
	s.n.Set(n)
	return &s
}

// NewScalarFromClampedSeed applies RFC 8032's Ed448 scalar pruning to
// the first 57 bytes of an expanded seed (see ExpandSeed), and reduces
// the result modulo `L`.  The clamping clears the low 2 bits (cofactor
// 4), clears the top byte entirely, and sets the top remaining bit.
func NewScalarFromClampedSeed(h []byte) *Scalar {
	var clamped [ScalarSize]byte
	copy(clamped[:], h[:ScalarSize])

	clamped[0] &= 0xfc
	clamped[ScalarSize-2] |= 0x80
	clamped[ScalarSize-1] = 0

	s, _ := NewScalar().SetBytes(&clamped)
	return s
}

func mustBigFromHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("ed448: invalid hex constant")
	}
	return n
}

func bigFromLittleEndian(src []byte) *big.Int {
	rev := make([]byte, len(src))
	reverseInto(rev, src)
	return new(big.Int).SetBytes(rev)
}

func reverseInto(dst, src []byte) {
	n := len(src)
	for i := 0; i < n; i++ {
		dst[i] = src[n-1-i]
	}
}
