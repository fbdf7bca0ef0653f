/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package modes

import (
	"crypto/cipher"
	"crypto/subtle"
	"time"

	"github.com/hyperledger/fabric-aes/aes"
)

// CBC expands key and runs CBCWith.
func (p *Processor) CBC(key, data, iv []byte, encrypt bool) ([]byte, error) {
	c, err := aes.NewCipher(key)
	if err != nil {
		return nil, p.fail(ModeCBC, reasonKeySize, err)
	}
	return p.CBCWith(c, data, iv, encrypt)
}

// CBCWith encrypts or decrypts data with b in cipher block chaining mode.
//
// Encryption of block i needs ciphertext block i-1 and runs serially.
// Decryption of block i needs only ciphertext blocks i and i-1, both part
// of the input, so it is split across workers.
func (p *Processor) CBCWith(b cipher.Block, data, iv []byte, encrypt bool) ([]byte, error) {
	if err := checkBlockCipher(b); err != nil {
		return nil, p.fail(ModeCBC, reasonBlockSize, err)
	}
	if reason, err := checkAligned(data); err != nil {
		return nil, p.fail(ModeCBC, reason, err)
	}
	if err := checkIV(iv); err != nil {
		return nil, p.fail(ModeCBC, reasonIV, err)
	}

	start := time.Now()
	out := make([]byte, len(data))
	blocks := len(data) / BlockSize

	workers := 1
	if encrypt {
		cbcEncrypt(b, out, data, iv)
	} else {
		workers = p.run(len(data), blocks, func(lo, hi int) {
			cbcDecrypt(b, out, data, iv, lo, hi)
		})
	}

	p.record(ModeCBC, direction(encrypt), blocks, workers, start)
	return out, nil
}

func cbcEncrypt(b cipher.Block, dst, src, iv []byte) {
	prev := iv
	for i := 0; i < len(src); i += BlockSize {
		block := dst[i : i+BlockSize]
		subtle.XORBytes(block, src[i:i+BlockSize], prev)
		b.Encrypt(block, block)
		prev = block
	}
}

// cbcDecrypt decrypts blocks [lo, hi) of src into dst.
func cbcDecrypt(b cipher.Block, dst, src, iv []byte, lo, hi int) {
	prev := iv
	if lo > 0 {
		prev = src[(lo-1)*BlockSize : lo*BlockSize]
	}
	for i := lo * BlockSize; i < hi*BlockSize; i += BlockSize {
		block := dst[i : i+BlockSize]
		b.Decrypt(block, src[i:i+BlockSize])
		subtle.XORBytes(block, block, prev)
		prev = src[i : i+BlockSize]
	}
}
