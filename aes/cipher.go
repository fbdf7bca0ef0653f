/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package aes implements the AES block cipher of FIPS PUB 197 for 128, 192
// and 256 bit keys.
//
// The key schedule is expanded once per Cipher and shared, read-only, by
// the forward and inverse ciphers. No inverse key schedule is derived.
//
// Table lookups are indexed by key- and data-dependent bytes; this package
// makes no constant-time guarantees.
package aes

import (
	"crypto/cipher"

	"github.com/pkg/errors"
)

// Cipher is an AES instance bound to one key. It implements
// crypto/cipher.Block and is safe for concurrent use.
type Cipher struct {
	ks *Schedule
}

var _ cipher.Block = (*Cipher)(nil)

// NewCipher expands key and returns a Cipher. The key must be 16, 24 or 32
// bytes long to select AES-128, AES-192 or AES-256.
func NewCipher(key []byte) (*Cipher, error) {
	ks, err := ExpandKey(key)
	if err != nil {
		return nil, err
	}
	return &Cipher{ks: ks}, nil
}

// BlockSize returns the AES block size, 16 bytes.
func (c *Cipher) BlockSize() int { return BlockSize }

// Variant returns the parameter set selected by the key.
func (c *Cipher) Variant() Variant { return c.ks.Variant() }

// Schedule returns the expanded key.
func (c *Cipher) Schedule() *Schedule { return c.ks }

// Encrypt encrypts the first block of src into dst. It panics if either
// buffer is shorter than a block. dst and src must overlap entirely or not
// at all.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aes: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aes: output not full block")
	}
	encryptBlock(c.ks, dst, src)
}

// Decrypt decrypts the first block of src into dst. It panics if either
// buffer is shorter than a block.
func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aes: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aes: output not full block")
	}
	decryptBlock(c.ks, dst, src)
}

// EncryptBlock encrypts exactly one block under key and returns the
// ciphertext in a new slice.
func EncryptBlock(key, block []byte) ([]byte, error) {
	return transformBlock(key, block, true)
}

// DecryptBlock decrypts exactly one block under key and returns the
// plaintext in a new slice.
func DecryptBlock(key, block []byte) ([]byte, error) {
	return transformBlock(key, block, false)
}

func transformBlock(key, block []byte, encrypt bool) ([]byte, error) {
	if len(block) != BlockSize {
		return nil, errors.Errorf("invalid block length [%d], must be [%d]", len(block), BlockSize)
	}
	c, err := NewCipher(key)
	if err != nil {
		return nil, err
	}

	out := make([]byte, BlockSize)
	if encrypt {
		c.Encrypt(out, block)
	} else {
		c.Decrypt(out, block)
	}
	return out, nil
}
