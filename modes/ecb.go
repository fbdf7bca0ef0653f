/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package modes

import (
	"crypto/cipher"
	"time"

	"github.com/hyperledger/fabric-aes/aes"
)

// ECB expands key and runs ECBWith.
func (p *Processor) ECB(key, data []byte, encrypt bool) ([]byte, error) {
	c, err := aes.NewCipher(key)
	if err != nil {
		return nil, p.fail(ModeECB, reasonKeySize, err)
	}
	return p.ECBWith(c, data, encrypt)
}

// ECBWith encrypts or decrypts every block of data independently with b.
func (p *Processor) ECBWith(b cipher.Block, data []byte, encrypt bool) ([]byte, error) {
	if err := checkBlockCipher(b); err != nil {
		return nil, p.fail(ModeECB, reasonBlockSize, err)
	}
	if reason, err := checkAligned(data); err != nil {
		return nil, p.fail(ModeECB, reason, err)
	}

	start := time.Now()
	transform := b.Encrypt
	if !encrypt {
		transform = b.Decrypt
	}

	out := make([]byte, len(data))
	blocks := len(data) / BlockSize
	workers := p.run(len(data), blocks, func(lo, hi int) {
		for i := lo * BlockSize; i < hi*BlockSize; i += BlockSize {
			transform(out[i:i+BlockSize], data[i:i+BlockSize])
		}
	})

	p.record(ModeECB, direction(encrypt), blocks, workers, start)
	return out, nil
}
