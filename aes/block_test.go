/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package aes

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func stateOf(t *testing.T, s string) state {
	var st state
	require.Len(t, s, 2*BlockSize)
	copy(st[:], mustHex(t, s))
	return st
}

// Round 1 of the FIPS-197 Appendix B cipher example.
func TestRoundStepsAppendixB(t *testing.T) {
	t.Parallel()

	ks, err := ExpandKey(mustHex(t, "2b7e151628aed2a6abf7158809cf4f3c"))
	require.NoError(t, err)

	s := stateOf(t, "3243f6a8885a308d313198a2e0370734")
	s.addRoundKey(ks.w[0:4])
	require.Equal(t, stateOf(t, "193de3bea0f4e22b9ac68d2ae9f84808"), s)

	s.subBytes()
	require.Equal(t, stateOf(t, "d42711aee0bf98f1b8b45de51e415230"), s)

	s.shiftRows()
	require.Equal(t, stateOf(t, "d4bf5d30e0b452aeb84111f11e2798e5"), s)

	s.mixColumns()
	require.Equal(t, stateOf(t, "046681e5e0cb199a48f8d37a2806264c"), s)

	s.invMixColumns()
	require.Equal(t, stateOf(t, "d4bf5d30e0b452aeb84111f11e2798e5"), s)

	s.invShiftRows()
	require.Equal(t, stateOf(t, "d42711aee0bf98f1b8b45de51e415230"), s)

	s.invSubBytes()
	require.Equal(t, stateOf(t, "193de3bea0f4e22b9ac68d2ae9f84808"), s)
}

func TestShiftRowsLayout(t *testing.T) {
	t.Parallel()

	var s state
	for i := range s {
		s[i] = byte(i)
	}
	s.shiftRows()
	require.Equal(t, state{0, 5, 10, 15, 4, 9, 14, 3, 8, 13, 2, 7, 12, 1, 6, 11}, s)

	s.invShiftRows()
	for i := range s {
		require.Equal(t, byte(i), s[i])
	}
}

// Column examples from FIPS-197 Appendix B, round 1.
func TestMixColumnsColumn(t *testing.T) {
	t.Parallel()

	s := stateOf(t, "d4bf5d30"+"00000000"+"01010101"+"c6c6c6c6")
	s.mixColumns()
	require.Equal(t, stateOf(t, "046681e5"+"00000000"+"01010101"+"c6c6c6c6"), s)
}

func TestInverseStepsUndoForwardSteps(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(197))
	for i := 0; i < 500; i++ {
		var orig state
		r.Read(orig[:])

		s := orig
		s.subBytes()
		s.invSubBytes()
		require.Equal(t, orig, s)

		s.shiftRows()
		s.invShiftRows()
		require.Equal(t, orig, s)

		s.mixColumns()
		s.invMixColumns()
		require.Equal(t, orig, s)

		rk := []Word{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}, {13, 14, 15, 16}}
		s.addRoundKey(rk)
		s.addRoundKey(rk)
		require.Equal(t, orig, s)
	}
}
