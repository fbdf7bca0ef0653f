/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mocks

import (
	"errors"

	"github.com/hyperledger/fabric-aes/bccsp"
)

type MockKey struct {
	BytesValue []byte
	BytesErr   error
	Symm       bool
	PK         bccsp.Key
	PKErr      error
	Pvt        bool
}

func (m *MockKey) Bytes() ([]byte, error) {
	return m.BytesValue, m.BytesErr
}

func (*MockKey) SKI() []byte {
	return []byte("mock ski")
}

func (m *MockKey) Symmetric() bool {
	return m.Symm
}

func (m *MockKey) Private() bool {
	return m.Pvt
}

func (m *MockKey) PublicKey() (bccsp.Key, error) {
	return m.PK, m.PKErr
}

type KeyImportOpts struct{}

func (*KeyImportOpts) Algorithm() string {
	return "Mock KeyImportOpts"
}

func (*KeyImportOpts) Ephemeral() bool {
	panic("Not yet implemented")
}

type EncrypterOpts struct{}

type DecrypterOpts struct{}

type HashOpts struct{}

func (*HashOpts) Algorithm() string {
	return "Mock HashOpts"
}

// KeyStore is an in-memory bccsp.KeyStore whose failures can be forced.
type KeyStore struct {
	GetKeyValue bccsp.Key
	GetKeyErr   error
	StoreKeyErr error
	ReadOnlyVal bool
	Stored      []bccsp.Key
}

func (ks *KeyStore) ReadOnly() bool {
	return ks.ReadOnlyVal
}

func (ks *KeyStore) GetKey(ski []byte) (bccsp.Key, error) {
	if ks.GetKeyValue == nil && ks.GetKeyErr == nil {
		return nil, errors.New("key not found")
	}
	return ks.GetKeyValue, ks.GetKeyErr
}

func (ks *KeyStore) StoreKey(k bccsp.Key) error {
	if ks.StoreKeyErr != nil {
		return ks.StoreKeyErr
	}
	ks.Stored = append(ks.Stored, k)
	return nil
}
