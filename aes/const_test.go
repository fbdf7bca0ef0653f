/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package aes

import (
	"testing"

	"github.com/hyperledger/fabric-aes/aes/gf"
	"github.com/stretchr/testify/require"
)

func TestSboxInverse(t *testing.T) {
	t.Parallel()

	for x := 0; x < 256; x++ {
		require.Equal(t, byte(x), invSbox[sbox[x]])
		require.Equal(t, byte(x), sbox[invSbox[x]])
	}
}

// affine is the S-box affine transform of FIPS-197 equation 5.1.
func affine(b byte) byte {
	var r byte
	for i := uint(0); i < 8; i++ {
		bit := (b >> i) ^ (b >> ((i + 4) % 8)) ^ (b >> ((i + 5) % 8)) ^ (b >> ((i + 6) % 8)) ^ (b >> ((i + 7) % 8))
		r |= (bit & 1) << i
	}
	return r ^ 0x63
}

func TestSboxConstruction(t *testing.T) {
	t.Parallel()

	for x := 0; x < 256; x++ {
		require.Equalf(t, affine(gf.Inverse(byte(x))), sbox[x], "sbox[%#02x]", x)
	}
}

func TestRcon(t *testing.T) {
	t.Parallel()

	require.Equal(t, byte(0x01), rcon[0])
	for i := 1; i < len(rcon); i++ {
		require.Equal(t, gf.Xtime(rcon[i-1]), rcon[i])
	}
}
