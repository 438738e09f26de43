// Copyright (c) 2023 Yawning Angel
//
// SPDX-License-Identifier: BSD-3-Clause

// Package field implements arithmetic modulo p = 2^448 - 2^224 - 1, the
// field underlying the Edwards448 curve.
package field

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"math/big"

	"github.com/WinLinux1028/ed448/internal/disalloweq"
	"github.com/WinLinux1028/ed448/internal/helpers"
)

// ElementSize is the size of a field element in bytes.  p fits exactly
// in 448 bits, so no padding bit is needed the way KeySize needs one
// for the sign bit.
const ElementSize = 56

var (
	// modulus is p = 2^448 - 2^224 - 1.
	modulus = mustBigFromHex("fffffffffffffffffffffffffffffffffffffffffffffffffffffffe" +
		"ffffffffffffffffffffffffffffffffffffffffffffffffffffffff")

	pMinus2    = new(big.Int).Sub(modulus, big.NewInt(2))
	pPlus1Div4 = func() *big.Int {
		t := new(big.Int).Add(modulus, big.NewInt(1))
		return t.Rsh(t, 2)
	}()

	zeroElement = NewElement()
)

// Element is a field element.  All arguments and receivers are allowed
// to alias.  The zero value is a valid zero element.
type Element struct {
	_ disalloweq.DisallowEqual
	n big.Int
}

// Zero sets `fe = 0` and returns `fe`.
func (fe *Element) Zero() *Element {
	fe.n.SetInt64(0)
	return fe
}

// One sets `fe = 1` and returns `fe`.
func (fe *Element) One() *Element {
	fe.n.SetInt64(1)
	return fe
}

// Add sets `fe = a + b` and returns `fe`.
func (fe *Element) Add(a, b *Element) *Element {
	fe.n.Add(&a.n, &b.n)
	fe.n.Mod(&fe.n, modulus)
	return fe
}

// Subtract sets `fe = a - b` and returns `fe`.
func (fe *Element) Subtract(a, b *Element) *Element {
	fe.n.Sub(&a.n, &b.n)
	fe.n.Mod(&fe.n, modulus)
	return fe
}

// Negate sets `fe = -a` and returns `fe`.
func (fe *Element) Negate(a *Element) *Element {
	fe.n.Neg(&a.n)
	fe.n.Mod(&fe.n, modulus)
	return fe
}

// Multiply sets `fe = a * b` and returns `fe`.
func (fe *Element) Multiply(a, b *Element) *Element {
	fe.n.Mul(&a.n, &b.n)
	fe.n.Mod(&fe.n, modulus)
	return fe
}

// Square sets `fe = a * a` and returns `fe`.
func (fe *Element) Square(a *Element) *Element {
	return fe.Multiply(a, a)
}

// Pow2k sets `fe = a ^ (2 ^ k)` and returns `fe`.  k MUST be non-zero.
func (fe *Element) Pow2k(a *Element, k uint) *Element {
	if k == 0 {
		panic("internal/field: k out of bounds")
	}

	fe.Square(a)
	for i := uint(1); i < k; i++ {
		fe.Square(fe)
	}
	return fe
}

// Set sets `fe = a` and returns `fe`.
func (fe *Element) Set(a *Element) *Element {
	fe.n.Set(&a.n)
	return fe
}

// Invert sets `fe = 1/a` and returns `fe`.  The inverse of zero is zero.
//
// This uses Fermat's little theorem (`a^(p-2)`) rather than a fixed
// addition chain, since no constant-time Montgomery package exists for
// this prime in this module (see DESIGN.md).
func (fe *Element) Invert(a *Element) *Element {
	fe.n.Exp(&a.n, pMinus2, modulus)
	return fe
}

// Sqrt sets `fe = Sqrt(a)`, and returns 1 iff the square root exists.
// In all other cases, `fe = 0`, and 0 is returned.
//
// p is congruent to 3 mod 4, so the square root of a, if it exists, is
// `a^((p+1)/4)`; existence is verified by squaring the candidate and
// comparing against the input.
func (fe *Element) Sqrt(a *Element) (*Element, uint64) {
	var candidate Element
	candidate.n.Exp(&a.n, pPlus1Div4, modulus)

	check := NewElement().Square(&candidate)
	isSqrt := check.Equal(a)

	fe.ConditionalSelect(zeroElement, &candidate, isSqrt)
	return fe, isSqrt
}

// SetCanonicalBytes sets `fe = src`, where `src` is a 56-byte little-endian
// encoding of `fe`, and returns `fe`.  If `src` is not a canonical
// encoding of `fe`, SetCanonicalBytes returns nil and an error, and the
// receiver is unchanged.
func (fe *Element) SetCanonicalBytes(src *[ElementSize]byte) (*Element, error) {
	var rev [ElementSize]byte
	reverse(rev[:], src[:])

	n := new(big.Int).SetBytes(rev[:])
	if n.Cmp(modulus) >= 0 {
		return nil, errors.New("internal/field: value out of range")
	}

	fe.n.Set(n)
	return fe, nil
}

// Bytes returns the canonical little-endian encoding of `fe`.
func (fe *Element) Bytes() []byte {
	var dst [ElementSize]byte
	return fe.getBytes(&dst)
}

func (fe *Element) getBytes(dst *[ElementSize]byte) []byte {
	be := fe.n.FillBytes(make([]byte, ElementSize))
	reverse(dst[:], be)
	return dst[:]
}

// ConditionalSelect sets `fe = a` iff `ctrl == 0`, `fe = b` otherwise,
// and returns `fe`.
func (fe *Element) ConditionalSelect(a, b *Element, ctrl uint64) *Element {
	var aBytes, bBytes [ElementSize]byte
	a.getBytes(&aBytes)
	b.getBytes(&bBytes)

	out := aBytes
	subtle.ConstantTimeCopy(int(helpers.Uint64IsNonzero(ctrl)), out[:], bBytes[:])

	fe.n.SetBytes(reverseCopy(out[:]))
	return fe
}

// Equal returns 1 iff `fe == a`, 0 otherwise.
func (fe *Element) Equal(a *Element) uint64 {
	var x, y [ElementSize]byte
	fe.getBytes(&x)
	a.getBytes(&y)
	return uint64(subtle.ConstantTimeCompare(x[:], y[:]))
}

// IsZero returns 1 iff `fe == 0`, 0 otherwise.
func (fe *Element) IsZero() uint64 {
	var x [ElementSize]byte
	fe.getBytes(&x)
	return uint64(subtle.ConstantTimeCompare(x[:], make([]byte, ElementSize)))
}

// IsOdd returns 1 iff `fe % 2 == 1`, 0 otherwise.
func (fe *Element) IsOdd() uint64 {
	return uint64(fe.n.Bit(0))
}

// String returns the little-endian hex representation of `fe`.
func (fe *Element) String() string {
	return hex.EncodeToString(fe.Bytes())
}

// MustRandomize randomizes and returns `fe`, or panics.
func (fe *Element) MustRandomize() *Element {
	var b [ElementSize]byte
	for {
		if _, err := rand.Read(b[:]); err != nil {
			panic("internal/field: entropy source failure")
		}
		if _, err := fe.SetCanonicalBytes(&b); err == nil {
			return fe
		}
	}
}

// NewElement returns a new zero Element.
func NewElement() *Element {
	return &Element{}
}

// NewElementFrom creates a new Element from another.
func NewElementFrom(other *Element) *Element {
	return NewElement().Set(other)
}

// NewElementFromCanonicalBytes creates a new Element from the canonical
// little-endian byte representation.
func NewElementFromCanonicalBytes(src *[ElementSize]byte) (*Element, error) {
	return NewElement().SetCanonicalBytes(src)
}

// MustNewElementFromHex creates a new Element from a big-endian hex
// string, for defining compile-time curve constants.  It panics on
// malformed input or an out-of-range value.
func MustNewElementFromHex(s string) *Element {
	n := mustBigFromHex(s)
	if n.Cmp(modulus) >= 0 || n.Sign() < 0 {
		panic("internal/field: constant out of range")
	}

	var fe Element
	fe.n.Set(n)
	return &fe
}

func mustBigFromHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("internal/field: invalid hex constant")
	}
	return n
}

func reverse(dst, src []byte) {
	n := len(src)
	for i := 0; i < n; i++ {
		dst[i] = src[n-1-i]
	}
}

func reverseCopy(src []byte) []byte {
	dst := make([]byte, len(src))
	reverse(dst, src)
	return dst
}
