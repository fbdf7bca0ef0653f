/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bccsp

const (
	// AES Advanced Encryption Standard at the default security level.
	// Each BCCSP may or may not support default security level. If not supported than
	// an error will be returned.
	AES = "AES"
	// AES128 Advanced Encryption Standard at 128 bit security level
	AES128 = "AES128"
	// AES192 Advanced Encryption Standard at 192 bit security level
	AES192 = "AES192"
	// AES256 Advanced Encryption Standard at 256 bit security level
	AES256 = "AES256"

	// SHA Secure Hash Algorithm using default family.
	// Each BCCSP may or may not support default security level. If not supported than
	// an error will be returned.
	SHA = "SHA"

	// SHA2 is an identifier for SHA2 hash family
	SHA2 = "SHA2"
	// SHA3 is an identifier for SHA3 hash family
	SHA3 = "SHA3"

	// SHA256
	SHA256 = "SHA256"
	// SHA384
	SHA384 = "SHA384"
	// SHA3_256
	SHA3_256 = "SHA3_256"
	// SHA3_384
	SHA3_384 = "SHA3_384"
)

// AESImportKeyOpts contains options for importing AES keys.
type AESImportKeyOpts struct {
	Temporary bool
	// Exportable lets Bytes return the raw key material of the imported key.
	Exportable bool
}

// Algorithm returns the key importation algorithm identifier (to be used).
func (opts *AESImportKeyOpts) Algorithm() string {
	return AES
}

// Ephemeral returns true if the key to generate has to be ephemeral,
// false otherwise.
func (opts *AESImportKeyOpts) Ephemeral() bool {
	return opts.Temporary
}

// AESECBModeOpts contains options for AES encryption in ECB mode.
// Every block is transformed independently, so equal plaintext blocks
// produce equal ciphertext blocks.
type AESECBModeOpts struct{}

// AESCBCModeOpts contains options for AES encryption in CBC mode.
// Plaintexts and ciphertexts must be a non-empty multiple of the block
// size. No padding is applied and the IV is not prepended to the
// ciphertext.
type AESCBCModeOpts struct {
	// IV is the initialization vector used by the underlying cipher.
	// It must be one block long.
	IV []byte
}

// AESCTRModeOpts contains options for AES encryption in CTR mode. The
// same options decrypt.
type AESCTRModeOpts struct {
	// Nonce is the 8 byte upper half of every counter block.
	Nonce []byte
	// InitialCounter is the lower half of the first counter block.
	InitialCounter uint64
}
