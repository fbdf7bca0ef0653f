/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package modes implements the ECB, CBC and CTR modes of operation of NIST
// SP 800-38A on top of the aes block engine.
//
// Every function validates its whole input before transforming anything and
// returns a freshly allocated output; inputs are never modified. ECB and CBC
// require a non-empty input that is a multiple of the block size. CTR accepts
// any length and the same call both encrypts and decrypts.
package modes

import (
	"crypto/cipher"

	"github.com/hyperledger/fabric-aes/aes"
	"github.com/pkg/errors"
)

const (
	// BlockSize is the size of the blocks combined by every mode.
	BlockSize = aes.BlockSize

	// NonceSize is the length of a CTR nonce, the upper half of each
	// counter block.
	NonceSize = 8
)

// Mode label values used in metrics and log fields.
const (
	ModeECB = "ecb"
	ModeCBC = "cbc"
	ModeCTR = "ctr"
)

// Direction label values used in metrics and log fields. CTR operations are
// labelled DirectionKeystream since one call serves both directions.
const (
	DirectionEncrypt   = "encrypt"
	DirectionDecrypt   = "decrypt"
	DirectionKeystream = "keystream"
)

// reasons reported through the operations_failed counter
const (
	reasonKeySize   = "key_size"
	reasonBlockSize = "block_size"
	reasonEmpty     = "empty"
	reasonAlignment = "alignment"
	reasonIV        = "iv_size"
	reasonNonce     = "nonce_size"
)

var defaultProcessor = NewProcessor(Config{}, nil)

// ECB encrypts (encrypt true) or decrypts every block of data independently
// under key. Identical input blocks yield identical output blocks.
func ECB(key, data []byte, encrypt bool) ([]byte, error) {
	return defaultProcessor.ECB(key, data, encrypt)
}

// CBC encrypts or decrypts data under key chained from iv, which must be
// one block long.
func CBC(key, data, iv []byte, encrypt bool) ([]byte, error) {
	return defaultProcessor.CBC(key, data, iv, encrypt)
}

// CTR xors data with the keystream derived from key and the 8 byte nonce,
// starting at counter 0.
func CTR(key, nonce, data []byte) ([]byte, error) {
	return defaultProcessor.CTR(key, nonce, data)
}

// CTRWithCounter is CTR starting at initialCounter. The counter wraps
// modulo 2^64 and never carries into the nonce.
func CTRWithCounter(key, nonce []byte, initialCounter uint64, data []byte) ([]byte, error) {
	return defaultProcessor.CTRWithCounter(key, nonce, initialCounter, data)
}

func checkBlockCipher(b cipher.Block) error {
	if b.BlockSize() != BlockSize {
		return errors.Errorf("invalid cipher block size [%d], must be [%d]", b.BlockSize(), BlockSize)
	}
	return nil
}

func checkAligned(data []byte) (string, error) {
	if len(data) == 0 {
		return reasonEmpty, errors.Errorf("invalid input length [0], must be a non-empty multiple of [%d]", BlockSize)
	}
	if len(data)%BlockSize != 0 {
		return reasonAlignment, errors.Errorf("invalid input length [%d], must be a multiple of [%d]", len(data), BlockSize)
	}
	return "", nil
}

func checkIV(iv []byte) error {
	if len(iv) != BlockSize {
		return errors.Errorf("invalid IV length [%d], must be [%d]", len(iv), BlockSize)
	}
	return nil
}

func checkNonce(nonce []byte) error {
	if len(nonce) != NonceSize {
		return errors.Errorf("invalid nonce length [%d], must be [%d]", len(nonce), NonceSize)
	}
	return nil
}

func blockCount(n int) int {
	return (n + BlockSize - 1) / BlockSize
}
