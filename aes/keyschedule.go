/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package aes

import (
	"fmt"
	"strconv"
)

const (
	// BlockSize is the AES block size in bytes.
	BlockSize = 16

	// nb is the number of 32-bit columns in the state. It is fixed for AES.
	nb = 4
)

// KeySizeError is returned when a key is not 16, 24 or 32 bytes long.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "aes: invalid key size " + strconv.Itoa(int(k)) + ", must be 16, 24 or 32 bytes"
}

// Variant selects one of the three AES parameter sets. Its value is the
// key length in bytes.
type Variant int

const (
	AES128 Variant = 16
	AES192 Variant = 24
	AES256 Variant = 32
)

// VariantForKeySize returns the variant selected by a key of keyLen bytes.
func VariantForKeySize(keyLen int) (Variant, error) {
	switch v := Variant(keyLen); v {
	case AES128, AES192, AES256:
		return v, nil
	default:
		return 0, KeySizeError(keyLen)
	}
}

// KeySize returns the key length in bytes.
func (v Variant) KeySize() int { return int(v) }

// Nk returns the key length in 32-bit words.
func (v Variant) Nk() int { return int(v) / 4 }

// Nr returns the number of rounds: 10, 12 or 14.
func (v Variant) Nr() int { return v.Nk() + 6 }

// ScheduleLen returns the number of words in the expanded key, Nb*(Nr+1).
func (v Variant) ScheduleLen() int { return nb * (v.Nr() + 1) }

func (v Variant) String() string {
	return fmt.Sprintf("AES-%d", 8*int(v))
}

// Word is four consecutive bytes of the key schedule.
type Word [4]byte

func rotWord(w Word) Word {
	return Word{w[1], w[2], w[3], w[0]}
}

func subWord(w Word) Word {
	return Word{sbox[w[0]], sbox[w[1]], sbox[w[2]], sbox[w[3]]}
}

func xorWord(a, b Word) Word {
	return Word{a[0] ^ b[0], a[1] ^ b[1], a[2] ^ b[2], a[3] ^ b[3]}
}

// Schedule is the expanded round-key sequence for a single key. It is
// immutable once built and safe for concurrent use by the forward and
// inverse ciphers.
type Schedule struct {
	variant Variant
	w       []Word
}

// ExpandKey derives the round-key schedule for key, as described in
// FIPS-197 section 5.2. The key length selects the variant.
func ExpandKey(key []byte) (*Schedule, error) {
	v, err := VariantForKeySize(len(key))
	if err != nil {
		return nil, err
	}

	nk := v.Nk()
	w := make([]Word, v.ScheduleLen())
	for i := 0; i < nk; i++ {
		copy(w[i][:], key[4*i:4*i+4])
	}

	for i := nk; i < len(w); i++ {
		temp := w[i-1]
		switch {
		case i%nk == 0:
			temp = subWord(rotWord(temp))
			temp[0] ^= rcon[i/nk-1]
		case nk > 6 && i%nk == 4:
			temp = subWord(temp)
		}
		w[i] = xorWord(w[i-nk], temp)
	}

	return &Schedule{variant: v, w: w}, nil
}

// Variant returns the parameter set the schedule was expanded for.
func (s *Schedule) Variant() Variant { return s.variant }

// Rounds returns Nr.
func (s *Schedule) Rounds() int { return s.variant.Nr() }

// Words returns a copy of the expanded key words.
func (s *Schedule) Words() []Word {
	return append([]Word(nil), s.w...)
}

// RoundKey returns the four words consumed by AddRoundKey in the given
// round, 0 <= round <= Nr.
func (s *Schedule) RoundKey(round int) [nb]Word {
	var rk [nb]Word
	copy(rk[:], s.w[nb*round:nb*round+nb])
	return rk
}
