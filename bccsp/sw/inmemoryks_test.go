/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package sw

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidStore(t *testing.T) {
	t.Parallel()

	ks := NewInMemoryKeyStore()

	err := ks.StoreKey(nil)
	assert.EqualError(t, err, "key is nil")
}

func TestInvalidLoad(t *testing.T) {
	t.Parallel()

	ks := NewInMemoryKeyStore()

	_, err := ks.GetKey(nil)
	assert.EqualError(t, err, "ski is nil or empty")
}

func TestNoKeyFound(t *testing.T) {
	t.Parallel()

	ks := NewInMemoryKeyStore()

	ski := []byte("foo")
	_, err := ks.GetKey(ski)
	assert.EqualError(t, err, fmt.Sprintf("no key found for ski %x", ski))
}

func TestStoreLoad(t *testing.T) {
	t.Parallel()

	ks := NewInMemoryKeyStore()
	cspKey := randomKey(t, 16)

	err := ks.StoreKey(cspKey)
	assert.NoError(t, err)

	key, err := ks.GetKey(cspKey.SKI())
	assert.NoError(t, err)
	assert.Equal(t, cspKey, key)
}

func TestReadOnly(t *testing.T) {
	t.Parallel()
	assert.False(t, NewInMemoryKeyStore().ReadOnly())
	assert.True(t, NewDummyKeyStore().ReadOnly())
}

func TestStoreExisting(t *testing.T) {
	t.Parallel()

	ks := NewInMemoryKeyStore()
	cspKey := randomKey(t, 32)

	err := ks.StoreKey(cspKey)
	assert.NoError(t, err)

	err = ks.StoreKey(cspKey)
	assert.EqualError(t, err, fmt.Sprintf("ski %x already exists in the keystore", cspKey.SKI()))
}

func TestDummyKeyStore(t *testing.T) {
	t.Parallel()

	ks := NewDummyKeyStore()
	_, err := ks.GetKey([]byte("ski"))
	assert.EqualError(t, err, "key not found, this is a dummy KeyStore")
	assert.EqualError(t, ks.StoreKey(randomKey(t, 16)), "cannot store key, this is a dummy read-only KeyStore")
}
