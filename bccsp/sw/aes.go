/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package sw

import (
	"github.com/hyperledger/fabric-aes/bccsp"
	"github.com/hyperledger/fabric-aes/modes"
	"github.com/pkg/errors"
)

type aesEncryptor struct {
	processor *modes.Processor
}

func (e *aesEncryptor) Encrypt(k bccsp.Key, plaintext []byte, opts bccsp.EncrypterOpts) ([]byte, error) {
	key, ok := k.(*aesPrivateKey)
	if !ok {
		return nil, errors.Errorf("invalid key type [%T]", k)
	}

	switch o := opts.(type) {
	case *bccsp.AESECBModeOpts, bccsp.AESECBModeOpts:
		return e.processor.ECBWith(key.cipher, plaintext, true)
	case *bccsp.AESCBCModeOpts:
		return e.processor.CBCWith(key.cipher, plaintext, o.IV, true)
	case bccsp.AESCBCModeOpts:
		return e.processor.CBCWith(key.cipher, plaintext, o.IV, true)
	case *bccsp.AESCTRModeOpts:
		return e.processor.CTRWith(key.cipher, o.Nonce, o.InitialCounter, plaintext)
	case bccsp.AESCTRModeOpts:
		return e.processor.CTRWith(key.cipher, o.Nonce, o.InitialCounter, plaintext)
	default:
		return nil, errors.Errorf("mode not recognized [%T]", opts)
	}
}

type aesDecryptor struct {
	processor *modes.Processor
}

func (d *aesDecryptor) Decrypt(k bccsp.Key, ciphertext []byte, opts bccsp.DecrypterOpts) ([]byte, error) {
	key, ok := k.(*aesPrivateKey)
	if !ok {
		return nil, errors.Errorf("invalid key type [%T]", k)
	}

	switch o := opts.(type) {
	case *bccsp.AESECBModeOpts, bccsp.AESECBModeOpts:
		return d.processor.ECBWith(key.cipher, ciphertext, false)
	case *bccsp.AESCBCModeOpts:
		return d.processor.CBCWith(key.cipher, ciphertext, o.IV, false)
	case bccsp.AESCBCModeOpts:
		return d.processor.CBCWith(key.cipher, ciphertext, o.IV, false)
	case *bccsp.AESCTRModeOpts:
		return d.processor.CTRWith(key.cipher, o.Nonce, o.InitialCounter, ciphertext)
	case bccsp.AESCTRModeOpts:
		return d.processor.CTRWith(key.cipher, o.Nonce, o.InitialCounter, ciphertext)
	default:
		return nil, errors.Errorf("mode not recognized [%T]", opts)
	}
}
