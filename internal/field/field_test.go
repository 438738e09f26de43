// Copyright (c) 2023 Yawning Angel
//
// SPDX-License-Identifier: BSD-3-Clause

package field

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/WinLinux1028/ed448/internal/helpers"
)

// pBytes is p = 2^448 - 2^224 - 1, little-endian encoded.
var pBytes = helpers.MustBytesFromHex("fffffffffffffffffffffffffffffffffffffffffffffffffffffffffeffffffffffffffffffffffffffffffffffffffffffffffffffffff")

func TestFieldSetCanonicalBytes(t *testing.T) {
	t.Run("Zero", func(t *testing.T) {
		var b [ElementSize]byte
		fe, err := NewElementFromCanonicalBytes(&b)
		require.NoError(t, err)
		require.EqualValues(t, 1, fe.IsZero())
	})
	t.Run("RejectsEqualToP", func(t *testing.T) {
		fe, err := NewElementFromCanonicalBytes((*[ElementSize]byte)(pBytes))
		require.Error(t, err)
		require.Nil(t, fe)
	})
	t.Run("RejectsGreaterThanP", func(t *testing.T) {
		pPlus1 := helpers.MustBytesFromHex("00000000000000000000000000000000000000000000000000000000ffffffffffffffffffffffffffffffffffffffffffffffffffffffff")
		fe, err := NewElementFromCanonicalBytes((*[ElementSize]byte)(pPlus1))
		require.Error(t, err)
		require.Nil(t, fe)
	})
	t.Run("RoundTrip", func(t *testing.T) {
		fe := NewElement().MustRandomize()
		b := fe.Bytes()
		fe2, err := NewElementFromCanonicalBytes((*[ElementSize]byte)(b))
		require.NoError(t, err)
		require.EqualValues(t, 1, fe.Equal(fe2))
	})
}

func TestFieldArithmetic(t *testing.T) {
	one := NewElement().One()
	zero := NewElement().Zero()

	t.Run("AddZero", func(t *testing.T) {
		fe := NewElement().MustRandomize()
		sum := NewElement().Add(fe, zero)
		require.EqualValues(t, 1, fe.Equal(sum))
	})
	t.Run("SubtractSelf", func(t *testing.T) {
		fe := NewElement().MustRandomize()
		diff := NewElement().Subtract(fe, fe)
		require.EqualValues(t, 1, diff.IsZero())
	})
	t.Run("MultiplyOne", func(t *testing.T) {
		fe := NewElement().MustRandomize()
		prod := NewElement().Multiply(fe, one)
		require.EqualValues(t, 1, fe.Equal(prod))
	})
	t.Run("Invert", func(t *testing.T) {
		fe := NewElement().MustRandomize()
		inv := NewElement().Invert(fe)
		prod := NewElement().Multiply(fe, inv)
		require.EqualValues(t, 1, prod.Equal(one))
	})
	t.Run("InvertZero", func(t *testing.T) {
		inv := NewElement().Invert(zero)
		require.EqualValues(t, 1, inv.IsZero())
	})
	t.Run("SquareAndSqrt", func(t *testing.T) {
		fe := NewElement().MustRandomize()
		sq := NewElement().Square(fe)
		root, isSquare := NewElement().Sqrt(sq)
		require.EqualValues(t, 1, isSquare)
		rootSq := NewElement().Square(root)
		require.EqualValues(t, 1, rootSq.Equal(sq))
	})
	t.Run("Negate", func(t *testing.T) {
		fe := NewElement().MustRandomize()
		neg := NewElement().Negate(fe)
		sum := NewElement().Add(fe, neg)
		require.EqualValues(t, 1, sum.IsZero())
	})
	t.Run("ConditionalSelect", func(t *testing.T) {
		a := NewElement().MustRandomize()
		b := NewElement().MustRandomize()

		sel := NewElement().ConditionalSelect(a, b, 0)
		require.EqualValues(t, 1, sel.Equal(a))

		sel = NewElement().ConditionalSelect(a, b, 1)
		require.EqualValues(t, 1, sel.Equal(b))
	})
	t.Run("IsOdd", func(t *testing.T) {
		require.EqualValues(t, 1, one.IsOdd())
		require.EqualValues(t, 0, zero.IsOdd())
	})
}

func BenchmarkField(b *testing.B) {
	b.Run("Invert/fermat", func(b *testing.B) {
		fe := NewElement().MustRandomize()
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			fe.Invert(fe)
		}
	})
}
