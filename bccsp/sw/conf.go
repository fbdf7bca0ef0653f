/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package sw

import (
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"
)

type config struct {
	hashFunction  func() hash.Hash
	aesByteLength int
}

// setSecurityLevel selects the smallest AES key accepted on import and the
// hash used for key identifiers and the default Hash.
func (conf *config) setSecurityLevel(securityLevel int, hashFamily string) (err error) {
	switch hashFamily {
	case "SHA2":
		err = conf.setSecurityLevelSHA2(securityLevel)
	case "SHA3":
		err = conf.setSecurityLevelSHA3(securityLevel)
	default:
		err = errors.Errorf("hash family not supported [%s]", hashFamily)
	}
	return
}

func (conf *config) setSecurityLevelSHA2(level int) (err error) {
	switch level {
	case 128:
		conf.hashFunction = sha256.New
	case 192, 256:
		conf.hashFunction = sha512.New384
	default:
		return errors.Errorf("security level not supported [%d]", level)
	}
	conf.aesByteLength = level / 8
	return nil
}

func (conf *config) setSecurityLevelSHA3(level int) (err error) {
	switch level {
	case 128:
		conf.hashFunction = sha3.New256
	case 192, 256:
		conf.hashFunction = sha3.New384
	default:
		return errors.Errorf("security level not supported [%d]", level)
	}
	conf.aesByteLength = level / 8
	return nil
}
