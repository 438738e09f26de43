// Copyright (c) 2023 Yawning Angel
//
// SPDX-License-Identifier: BSD-3-Clause

// Package ed448 implements the Edwards448 elliptic curve and the Ed448
// digital signature scheme defined by RFC 8032.
package ed448

import (
	"github.com/WinLinux1028/ed448/internal/disalloweq"
	"github.com/WinLinux1028/ed448/internal/field"
)

// curveD is the twisted-Edwards curve parameter `d = -39081 mod p`, where
// `p = 2^448 - 2^224 - 1`.  Edwards448 uses `a = 1`, so it does not need
// a stored constant the way `d` does.
var curveD = field.MustNewElementFromHex("fffffffffffffffffffffffffffffffffffffffffffffffffffffffeffffffffffffffffffffffffffffffffffffffffffffffffffff6756")

var (
	// gX is the x-coordinate of the generator.
	gX = field.MustNewElementFromHex("4f1970c66bed0ded221d15a622bf36da9e146570470f1767ea6de324a3d3a46412ae1af72ab66511433b80e18b00938e2626a82bc70cc05e")

	// gY is the y-coordinate of the generator.
	gY = field.MustNewElementFromHex("693f46716eb6bc248876203756c9c7624bea73736ca3984087789c1e05a0c2d73ad3ff1ce67c39c4fdbd132c4ed7c8ad9808795bf230fa14")

	// gT is the generator's `T = X*Y/Z` extended coordinate, with `Z = 1`.
	gT = field.MustNewElementFromHex("c75eb58aee221c6ccec39d2d508d91c9c5056a183f8451d260d71667e2356d58f179de90b5b27da1f78fa07d85662d1deb06624e82af95f3")
)

// Point represents a point on the Edwards448 curve.  All arguments and
// receivers are allowed to alias.  The zero value is NOT valid, and
// may only be used as a receiver.
type Point struct {
	_ disalloweq.DisallowEqual

	// The point is represented internally in extended twisted-Edwards
	// coordinates (X, Y, Z, T), where x = X/Z, y = Y/Z, and x*y = T/Z.
	x, y, z, t field.Element

	isValid bool
}

// Identity sets `v = id`, and returns `v`.
func (v *Point) Identity() *Point {
	v.x.Zero()
	v.y.One()
	v.z.One()
	v.t.Zero()

	v.isValid = true
	return v
}

// Generator sets `v = B`, the canonical base point, and returns `v`.
func (v *Point) Generator() *Point {
	v.x.Set(gX)
	v.y.Set(gY)
	v.z.One()
	v.t.Set(gT)

	v.isValid = true
	return v
}

// Add sets `v = p + q`, and returns `v`.
//
// This uses the "add-2008-hwcd" formulas (Hisil, Wong, Carter, Dawson,
// "Twisted Edwards Curves Revisited"), which are complete (exception-free
// for all inputs, including the identity) for `a = 1` curves with
// non-square `d`, as is the case for Edwards448.
func (v *Point) Add(p, q *Point) *Point {
	assertPointsValid(p, q)

	var a, b, c, d, e, f, g, h field.Element
	a.Multiply(&p.x, &q.x)
	b.Multiply(&p.y, &q.y)
	c.Multiply(curveD, field.NewElement().Multiply(&p.t, &q.t))
	d.Multiply(&p.z, &q.z)

	e.Add(&p.x, &p.y)
	e.Multiply(&e, field.NewElement().Add(&q.x, &q.y))
	e.Subtract(&e, &a)
	e.Subtract(&e, &b)

	f.Subtract(&d, &c)
	g.Add(&d, &c)
	h.Subtract(&b, &a)

	v.x.Multiply(&e, &f)
	v.y.Multiply(&g, &h)
	v.t.Multiply(&e, &h)
	v.z.Multiply(&f, &g)

	v.isValid = p.isValid && q.isValid
	return v
}

// Double sets `v = p + p`, and returns `v`.  Calling `Add(p, p)` will
// also return correct results, however this method is faster.
//
// This uses the "dbl-2008-hwcd" doubling formulas, likewise complete
// for `a = 1`.
func (v *Point) Double(p *Point) *Point {
	assertPointsValid(p)

	var a, b, c, e, g, f, h field.Element
	a.Square(&p.x)
	b.Square(&p.y)
	c.Add(field.NewElement().Square(&p.z), field.NewElement().Square(&p.z))

	e.Add(&p.x, &p.y)
	e.Square(&e)
	e.Subtract(&e, &a)
	e.Subtract(&e, &b)

	g.Add(&a, &b)
	f.Subtract(&g, &c)
	h.Subtract(&a, &b)

	v.x.Multiply(&e, &f)
	v.y.Multiply(&g, &h)
	v.t.Multiply(&e, &h)
	v.z.Multiply(&f, &g)

	v.isValid = p.isValid
	return v
}

// Subtract sets `v = p - q`, and returns `v`.
func (v *Point) Subtract(p, q *Point) *Point {
	assertPointsValid(p, q)
	return v.Add(p, newRcvr().Negate(q))
}

// Negate sets `v = -p`, and returns `v`.
func (v *Point) Negate(p *Point) *Point {
	assertPointsValid(p)

	// Affine negation: -(x, y) = (-x, y), so T = x*y also negates.
	v.x.Negate(&p.x)
	v.y.Set(&p.y)
	v.z.Set(&p.z)
	v.t.Negate(&p.t)

	v.isValid = p.isValid
	return v
}

// ConditionalSelect sets `v = a` iff `ctrl == 0`, `v = b` otherwise,
// and returns `v`.
func (v *Point) ConditionalSelect(a, b *Point, ctrl uint64) *Point {
	assertPointsValid(a, b)

	v.uncheckedConditionalSelect(a, b, ctrl)
	v.isValid = a.isValid && b.isValid

	return v
}

func (v *Point) uncheckedConditionalSelect(a, b *Point, ctrl uint64) *Point {
	v.x.ConditionalSelect(&a.x, &b.x, ctrl)
	v.y.ConditionalSelect(&a.y, &b.y, ctrl)
	v.z.ConditionalSelect(&a.z, &b.z, ctrl)
	v.t.ConditionalSelect(&a.t, &b.t, ctrl)
	return v
}

// Equal returns 1 iff `v == p`, 0 otherwise.
func (v *Point) Equal(p *Point) uint64 {
	assertPointsValid(v, p)

	// Check X1*Z2 == X2*Z1 and Y1*Z2 == Y2*Z1.
	x1z2 := field.NewElement().Multiply(&v.x, &p.z)
	x2z1 := field.NewElement().Multiply(&p.x, &v.z)

	y1z2 := field.NewElement().Multiply(&v.y, &p.z)
	y2z1 := field.NewElement().Multiply(&p.y, &v.z)

	return x1z2.Equal(x2z1) & y1z2.Equal(y2z1)
}

// IsIdentity returns 1 iff v is the identity point, 0 otherwise.
func (v *Point) IsIdentity() uint64 {
	assertPointsValid(v)

	// x == 0 alone does not suffice: (0, -1), the unique point of order
	// 2, also has x = 0.  Require y == z (affine y == 1) as well.
	return v.x.IsZero() & v.y.Equal(&v.z)
}

// Set sets `v = p`, and returns `v`.
func (v *Point) Set(p *Point) *Point {
	assertPointsValid(p)

	v.x.Set(&p.x)
	v.y.Set(&p.y)
	v.z.Set(&p.z)
	v.t.Set(&p.t)
	v.isValid = p.isValid

	return v
}

// NewGeneratorPoint returns a new Point set to the canonical base point.
func NewGeneratorPoint() *Point {
	return newRcvr().Generator()
}

// NewIdentityPoint returns a new Point set to the identity element.
func NewIdentityPoint() *Point {
	p := newRcvr()
	p.y.One()
	p.z.One()
	p.isValid = true

	return p
}

// NewPointFrom creates a new Point from another.
func NewPointFrom(p *Point) *Point {
	assertPointsValid(p)

	return newRcvr().Set(p)
}

// assertPointsValid ensures that the points have been initialized.
func assertPointsValid(points ...*Point) {
	for _, p := range points {
		if !p.isValid {
			panic("ed448: use of uninitialized Point")
		}
	}
}

func newRcvr() *Point {
	// This is explicitly for nicely creating receivers.
	return &Point{}
}
