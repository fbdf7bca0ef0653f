/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package sw

import (
	"github.com/hyperledger/fabric-aes/aes"
	"github.com/hyperledger/fabric-aes/bccsp"
	"github.com/pkg/errors"
)

// aesPrivateKey is an imported AES key. The key schedule is expanded once
// at import and shared by every operation on the key.
type aesPrivateKey struct {
	privKey    []byte
	exportable bool
	cipher     *aes.Cipher
	ski        []byte
}

// Bytes converts this key to its byte representation,
// if this operation is allowed.
func (k *aesPrivateKey) Bytes() (raw []byte, err error) {
	if k.exportable {
		return append([]byte(nil), k.privKey...), nil
	}

	return nil, errors.New("not supported")
}

// SKI returns the subject key identifier of this key.
func (k *aesPrivateKey) SKI() (ski []byte) {
	return append([]byte(nil), k.ski...)
}

// Symmetric returns true if this key is a symmetric key,
// false if this key is asymmetric
func (k *aesPrivateKey) Symmetric() bool {
	return true
}

// Private returns true if this key is a private key,
// false otherwise.
func (k *aesPrivateKey) Private() bool {
	return true
}

// PublicKey returns the corresponding public key part of an asymmetric public/private key pair.
// This method returns an error in symmetric key schemes.
func (k *aesPrivateKey) PublicKey() (bccsp.Key, error) {
	return nil, errors.New("cannot call this method on a symmetric key")
}

// Variant reports the AES parameter set selected by the key length.
func (k *aesPrivateKey) Variant() aes.Variant {
	return k.cipher.Variant()
}
