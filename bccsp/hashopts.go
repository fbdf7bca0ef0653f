/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bccsp

import (
	"sort"

	"github.com/pkg/errors"
)

// SHA256Opts selects SHA-256.
type SHA256Opts struct{}

func (opts *SHA256Opts) Algorithm() string { return SHA256 }

// SHA384Opts selects SHA-384.
type SHA384Opts struct{}

func (opts *SHA384Opts) Algorithm() string { return SHA384 }

// SHA3_256Opts selects SHA3-256.
type SHA3_256Opts struct{}

func (opts *SHA3_256Opts) Algorithm() string { return SHA3_256 }

// SHA3_384Opts selects SHA3-384.
type SHA3_384Opts struct{}

func (opts *SHA3_384Opts) Algorithm() string { return SHA3_384 }

var hashOpts = map[string]func() HashOpts{
	SHA256:   func() HashOpts { return &SHA256Opts{} },
	SHA384:   func() HashOpts { return &SHA384Opts{} },
	SHA3_256: func() HashOpts { return &SHA3_256Opts{} },
	SHA3_384: func() HashOpts { return &SHA3_384Opts{} },
}

// GetHashOpt returns the HashOpts for the named hash function.
func GetHashOpt(hashFunction string) (HashOpts, error) {
	newOpts, ok := hashOpts[hashFunction]
	if !ok {
		return nil, errors.Errorf("hash function not recognized [%s], must be one of %v", hashFunction, HashFunctions())
	}
	return newOpts(), nil
}

// HashFunctions lists the names accepted by GetHashOpt.
func HashFunctions() []string {
	names := make([]string, 0, len(hashOpts))
	for name := range hashOpts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
