/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package modes

import (
	"crypto/cipher"
	"crypto/subtle"
	"encoding/binary"
	"time"

	"github.com/hyperledger/fabric-aes/aes"
)

// CTR expands key and runs CTRWith from counter 0.
func (p *Processor) CTR(key, nonce, data []byte) ([]byte, error) {
	return p.CTRWithCounter(key, nonce, 0, data)
}

// CTRWithCounter expands key and runs CTRWith.
func (p *Processor) CTRWithCounter(key, nonce []byte, initialCounter uint64, data []byte) ([]byte, error) {
	c, err := aes.NewCipher(key)
	if err != nil {
		return nil, p.fail(ModeCTR, reasonKeySize, err)
	}
	return p.CTRWith(c, nonce, initialCounter, data)
}

// CTRWith xors data with the keystream E(b, nonce || counter), where the
// counter is a big-endian uint64 starting at initialCounter. A trailing
// partial block uses a prefix of its keystream block. The counter block is
// always encrypted, so the call is its own inverse.
func (p *Processor) CTRWith(b cipher.Block, nonce []byte, initialCounter uint64, data []byte) ([]byte, error) {
	if err := checkBlockCipher(b); err != nil {
		return nil, p.fail(ModeCTR, reasonBlockSize, err)
	}
	if err := checkNonce(nonce); err != nil {
		return nil, p.fail(ModeCTR, reasonNonce, err)
	}

	start := time.Now()
	out := make([]byte, len(data))
	blocks := blockCount(len(data))
	workers := p.run(len(data), blocks, func(lo, hi int) {
		ctrXOR(b, out, data, nonce, initialCounter, lo, hi)
	})

	p.record(ModeCTR, DirectionKeystream, blocks, workers, start)
	return out, nil
}

// CounterBlock returns nonce || big-endian counter.
func CounterBlock(nonce []byte, counter uint64) [BlockSize]byte {
	var cb [BlockSize]byte
	copy(cb[:NonceSize], nonce)
	binary.BigEndian.PutUint64(cb[NonceSize:], counter)
	return cb
}

// ctrXOR processes blocks [lo, hi) of src into dst.
func ctrXOR(b cipher.Block, dst, src, nonce []byte, initialCounter uint64, lo, hi int) {
	var keystream [BlockSize]byte
	for i := lo; i < hi; i++ {
		cb := CounterBlock(nonce, initialCounter+uint64(i))
		b.Encrypt(keystream[:], cb[:])

		off := i * BlockSize
		end := min(off+BlockSize, len(src))
		subtle.XORBytes(dst[off:end], src[off:end], keystream[:end-off])
	}
}
