// Copyright (c) 2023 Yawning Angel
//
// SPDX-License-Identifier: BSD-3-Clause

package ed448

import (
	"errors"

	"github.com/WinLinux1028/ed448/internal/field"
)

// KeySize is the size, in bytes, of an encoded Edwards448 point, as used
// for public keys, per RFC 8032.
const KeySize = field.ElementSize + 1

// Bytes returns the canonical 57-byte encoding of `v`: the little-endian
// encoding of `y`, with the least-significant bit of `x` placed in the
// most-significant bit of the final byte.
func (v *Point) Bytes() []byte {
	assertPointsValid(v)

	scaled := newRcvr().rescale(v)

	dst := make([]byte, KeySize)
	copy(dst, scaled.y.Bytes())
	if scaled.x.IsOdd() == 1 {
		dst[KeySize-1] |= 0x80
	}

	return dst
}

// SetBytes sets `v = src`, where `src` is the canonical 57-byte encoding
// of a point.  If `src` does not decode to a point on the curve,
// SetBytes returns nil and an error, and the receiver is unchanged.
//
// This accepts `(0, 1)`, the identity point, as RFC 8032 verification
// does not exclude it; callers that require a public key never be the
// identity must check IsIdentity() themselves.
func (v *Point) SetBytes(src []byte) (*Point, error) {
	if len(src) != KeySize {
		return nil, errors.New("ed448: malformed point encoding")
	}

	// p fits exactly in 448 bits, so y occupies all of the first 56
	// bytes; the 57th byte carries only the sign of x in its top bit,
	// and must otherwise be zero for the encoding to be canonical.
	if src[KeySize-1]&0x7f != 0 {
		return nil, errors.New("ed448: malformed point encoding")
	}
	xSign := uint64(src[KeySize-1] >> 7)

	var yBytes [field.ElementSize]byte
	copy(yBytes[:], src[:field.ElementSize])

	y, err := field.NewElementFromCanonicalBytes(&yBytes)
	if err != nil {
		return nil, errors.New("ed448: malformed point encoding")
	}

	x, err := recoverX(y, xSign)
	if err != nil {
		return nil, err
	}

	v.x.Set(x)
	v.y.Set(y)
	v.z.One()
	v.t.Multiply(x, y)
	v.isValid = true

	return v, nil
}

// NewPointFromBytes creates a new Point from its canonical 57-byte
// encoding.
func NewPointFromBytes(src []byte) (*Point, error) {
	return newRcvr().SetBytes(src)
}

// recoverX solves `x^2 = (y^2 - 1) / (d*y^2 - 1)` for `x`, and selects
// the root whose least-significant bit matches `xSign`.
func recoverX(y *field.Element, xSign uint64) (*field.Element, error) {
	yy := field.NewElement().Square(y)

	num := field.NewElement().Subtract(yy, field.NewElement().One())

	den := field.NewElement().Multiply(curveD, yy)
	den.Subtract(den, field.NewElement().One())

	denInv := field.NewElement().Invert(den)
	xx := field.NewElement().Multiply(num, denInv)

	x, hasSqrt := field.NewElement().Sqrt(xx)
	if hasSqrt != 1 {
		return nil, errors.New("ed448: point is not on the curve")
	}

	if x.IsZero() == 1 && xSign == 1 {
		return nil, errors.New("ed448: malformed point encoding")
	}

	xNeg := field.NewElement().Negate(x)
	x.ConditionalSelect(xNeg, x, x.IsOdd()^xSign^1)

	return x, nil
}

// rescale returns `p` rescaled so that `z = 1`.
func (v *Point) rescale(p *Point) *Point {
	assertPointsValid(p)

	zInv := field.NewElement().Invert(&p.z)

	v.x.Multiply(&p.x, zInv)
	v.y.Multiply(&p.y, zInv)
	v.z.One()
	v.t.Multiply(&v.x, &v.y)
	v.isValid = true

	return v
}
