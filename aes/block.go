/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package aes

import "github.com/hyperledger/fabric-aes/aes/gf"

// state is a block held as a 4x4 byte matrix in column-major order: the
// byte at row r, column c lives at index r+4*c.
type state [BlockSize]byte

func (s *state) subBytes() {
	for i := range s {
		s[i] = sbox[s[i]]
	}
}

func (s *state) invSubBytes() {
	for i := range s {
		s[i] = invSbox[s[i]]
	}
}

// shiftRows rotates row r left by r columns.
func (s *state) shiftRows() {
	t := *s
	for r := 1; r < 4; r++ {
		for c := 0; c < nb; c++ {
			s[r+4*c] = t[r+4*((c+r)%nb)]
		}
	}
}

// invShiftRows rotates row r right by r columns.
func (s *state) invShiftRows() {
	t := *s
	for r := 1; r < 4; r++ {
		for c := 0; c < nb; c++ {
			s[r+4*((c+r)%nb)] = t[r+4*c]
		}
	}
}

// mixColumns multiplies every column by
//
//	[02 03 01 01]
//	[01 02 03 01]
//	[01 01 02 03]
//	[03 01 01 02]
func (s *state) mixColumns() {
	for c := 0; c < nb; c++ {
		a0, a1, a2, a3 := s[4*c], s[4*c+1], s[4*c+2], s[4*c+3]
		s[4*c] = gf.Mul(a0, 0x02) ^ gf.Mul(a1, 0x03) ^ a2 ^ a3
		s[4*c+1] = a0 ^ gf.Mul(a1, 0x02) ^ gf.Mul(a2, 0x03) ^ a3
		s[4*c+2] = a0 ^ a1 ^ gf.Mul(a2, 0x02) ^ gf.Mul(a3, 0x03)
		s[4*c+3] = gf.Mul(a0, 0x03) ^ a1 ^ a2 ^ gf.Mul(a3, 0x02)
	}
}

// invMixColumns multiplies every column by
//
//	[0e 0b 0d 09]
//	[09 0e 0b 0d]
//	[0d 09 0e 0b]
//	[0b 0d 09 0e]
func (s *state) invMixColumns() {
	for c := 0; c < nb; c++ {
		a0, a1, a2, a3 := s[4*c], s[4*c+1], s[4*c+2], s[4*c+3]
		s[4*c] = gf.Mul(a0, 0x0e) ^ gf.Mul(a1, 0x0b) ^ gf.Mul(a2, 0x0d) ^ gf.Mul(a3, 0x09)
		s[4*c+1] = gf.Mul(a0, 0x09) ^ gf.Mul(a1, 0x0e) ^ gf.Mul(a2, 0x0b) ^ gf.Mul(a3, 0x0d)
		s[4*c+2] = gf.Mul(a0, 0x0d) ^ gf.Mul(a1, 0x09) ^ gf.Mul(a2, 0x0e) ^ gf.Mul(a3, 0x0b)
		s[4*c+3] = gf.Mul(a0, 0x0b) ^ gf.Mul(a1, 0x0d) ^ gf.Mul(a2, 0x09) ^ gf.Mul(a3, 0x0e)
	}
}

// addRoundKey XORs column c of the state with word c of the round key.
func (s *state) addRoundKey(rk []Word) {
	for c := 0; c < nb; c++ {
		for r := 0; r < 4; r++ {
			s[r+4*c] ^= rk[c][r]
		}
	}
}

// encryptBlock applies the forward cipher of FIPS-197 section 5.1 to src
// and writes the result to dst. dst and src may overlap entirely.
func encryptBlock(ks *Schedule, dst, src []byte) {
	var s state
	copy(s[:], src[:BlockSize])
	nr := ks.Rounds()

	s.addRoundKey(ks.w[0:nb])
	for round := 1; round < nr; round++ {
		s.subBytes()
		s.shiftRows()
		s.mixColumns()
		s.addRoundKey(ks.w[nb*round : nb*round+nb])
	}
	s.subBytes()
	s.shiftRows()
	s.addRoundKey(ks.w[nb*nr : nb*nr+nb])

	copy(dst[:BlockSize], s[:])
}

// decryptBlock applies the inverse cipher of FIPS-197 section 5.3 using
// the same schedule as encryptBlock, walked in reverse round order.
func decryptBlock(ks *Schedule, dst, src []byte) {
	var s state
	copy(s[:], src[:BlockSize])
	nr := ks.Rounds()

	s.addRoundKey(ks.w[nb*nr : nb*nr+nb])
	for round := nr - 1; round > 0; round-- {
		s.invShiftRows()
		s.invSubBytes()
		s.addRoundKey(ks.w[nb*round : nb*round+nb])
		s.invMixColumns()
	}
	s.invShiftRows()
	s.invSubBytes()
	s.addRoundKey(ks.w[0:nb])

	copy(dst[:BlockSize], s[:])
}
