/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package gf implements the byte arithmetic of the finite field GF(2^8)
// used by AES, with elements reduced modulo x^8 + x^4 + x^3 + x + 1.
//
// A byte b7...b0 is the polynomial b7*x^7 + ... + b1*x + b0 with
// coefficients in GF(2).
package gf

// Reduction is the low byte of the AES reduction polynomial
// x^8 + x^4 + x^3 + x + 1. The x^8 term is implicit.
const Reduction = 0x1b

// Add returns a + b in GF(2^8). Addition and subtraction are both XOR.
func Add(a, b byte) byte {
	return a ^ b
}

// Xtime multiplies b by the polynomial x, reducing the result when the
// shifted-out high bit was set.
func Xtime(b byte) byte {
	if b&0x80 == 0 {
		return b << 1
	}
	return (b << 1) ^ Reduction
}

// Mul returns b * c in GF(2^8). For every bit i set in c, b doubled i
// times is added into the product.
func Mul(b, c byte) byte {
	var p byte
	for ; c != 0; c >>= 1 {
		if c&1 != 0 {
			p = Add(p, b)
		}
		b = Xtime(b)
	}
	return p
}

// Inverse returns the multiplicative inverse of b, computed as b^254.
// The inverse of 0 is defined to be 0, as in the S-box construction.
func Inverse(b byte) byte {
	// b^254 = b^(2+4+8+16+32+64+128)
	var r byte = 1
	sq := b
	for e := 254; e != 0; e >>= 1 {
		if e&1 != 0 {
			r = Mul(r, sq)
		}
		sq = Mul(sq, sq)
	}
	return r
}
