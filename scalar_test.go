// Copyright (c) 2023 Yawning Angel
//
// SPDX-License-Identifier: BSD-3-Clause

package ed448

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/WinLinux1028/ed448/internal/helpers"
)

func TestScalar(t *testing.T) {
	// L = 3fffffffffffffffffffffffffffffffffffffffffffffffffffffff7cca23e9c44edb49aed63690216cc2728dc58f552378c292ab5844f3,
	// little-endian encoded below.
	geqL := [][]byte{
		helpers.MustBytesFromHex("f34458ab92c27823558fc58d72c26c219036d6ae49db4ec4e923ca7cffffffffffffffffffffffffffffffffffffffffffffffffffffff3f00"), // L
		helpers.MustBytesFromHex("f44458ab92c27823558fc58d72c26c219036d6ae49db4ec4e923ca7cffffffffffffffffffffffffffffffffffffffffffffffffffffff3f00"), // L+1
	}
	t.Run("SetBytes", func(t *testing.T) {
		for i, raw := range geqL {
			s, didReduce := NewScalar().SetBytes((*[ScalarSize]byte)(raw))
			require.EqualValues(t, 1, didReduce, "[%d]: didReduce SetBytes(geL)", i)
			require.NotNil(t, s, "[%d]: SetBytes(geL)", i)
		}
	})
	t.Run("SetCanonicalBytes", func(t *testing.T) {
		for i, raw := range geqL {
			s, err := NewScalar().SetCanonicalBytes((*[ScalarSize]byte)(raw))
			require.Error(t, err, "[%d]: SetCanonicalBytes(geL)", i)
			require.Nil(t, s, "[%d]: SetCanonicalBytes(geL)", i)
		}
	})
	t.Run("RoundTrip", func(t *testing.T) {
		s := NewScalar().MustRandomize()
		b := s.Bytes()
		s2, err := NewScalar().SetCanonicalBytes((*[ScalarSize]byte)(b))
		require.NoError(t, err)
		require.EqualValues(t, 1, s.Equal(s2))
	})
	t.Run("Arithmetic", func(t *testing.T) {
		one := NewScalar().One()
		zero := NewScalar().Zero()

		s := NewScalar().MustRandomize()

		sum := NewScalar().Add(s, zero)
		require.EqualValues(t, 1, s.Equal(sum))

		diff := NewScalar().Subtract(s, s)
		require.EqualValues(t, 1, diff.IsZero())

		prod := NewScalar().Multiply(s, one)
		require.EqualValues(t, 1, s.Equal(prod))

		inv := NewScalar().Invert(s)
		prod = NewScalar().Multiply(s, inv)
		require.EqualValues(t, 1, prod.Equal(one))

		neg := NewScalar().Negate(s)
		sum = NewScalar().Add(s, neg)
		require.EqualValues(t, 1, sum.IsZero())
	})
	t.Run("ConditionalSelect", func(t *testing.T) {
		a := NewScalar().MustRandomize()
		b := NewScalar().MustRandomize()

		sel := NewScalar().ConditionalSelect(a, b, 0)
		require.EqualValues(t, 1, sel.Equal(a))

		sel = NewScalar().ConditionalSelect(a, b, 1)
		require.EqualValues(t, 1, sel.Equal(b))
	})
	t.Run("GroupOrder", func(t *testing.T) {
		L := GroupOrder()
		require.EqualValues(t, 0, L.IsZero())
	})
}

func BenchmarkScalar(b *testing.B) {
	b.Run("Invert/fermat", func(b *testing.B) {
		s := NewScalar().MustRandomize()
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			s.Invert(s)
		}
	})
}
