/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package sw

import (
	"hash"

	"github.com/hyperledger/fabric-aes/aes"
	"github.com/hyperledger/fabric-aes/bccsp"
	"github.com/pkg/errors"
)

type aesImportKeyOptsKeyImporter struct {
	minKeyLength int
	hash         func() hash.Hash
}

func (ki *aesImportKeyOptsKeyImporter) KeyImport(raw interface{}, opts bccsp.KeyImportOpts) (bccsp.Key, error) {
	aesRaw, ok := raw.([]byte)
	if !ok {
		return nil, errors.New("invalid raw material, expected byte array")
	}

	if aesRaw == nil {
		return nil, errors.New("invalid raw material, it must not be nil")
	}

	if len(aesRaw) < ki.minKeyLength {
		return nil, errors.Errorf("invalid key length [%d], must be at least [%d] bytes for the configured security level", len(aesRaw), ki.minKeyLength)
	}

	c, err := aes.NewCipher(aesRaw)
	if err != nil {
		return nil, errors.WithMessage(err, "failed importing AES key")
	}

	o, ok := opts.(*bccsp.AESImportKeyOpts)

	return &aesPrivateKey{
		privKey:    append([]byte(nil), aesRaw...),
		exportable: ok && o != nil && o.Exportable,
		cipher:     c,
		ski:        keyIdentifier(ki.hash, aesRaw),
	}, nil
}

// keyIdentifier hashes a domain separation byte followed by the raw key.
func keyIdentifier(h func() hash.Hash, raw []byte) []byte {
	hash := h()
	hash.Write([]byte{0x01})
	hash.Write(raw)
	return hash.Sum(nil)
}
