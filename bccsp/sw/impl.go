/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package sw

import (
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"reflect"

	"github.com/hyperledger/fabric-aes/bccsp"
	"github.com/hyperledger/fabric-aes/common/flogging"
	"github.com/hyperledger/fabric-aes/modes"
	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"
)

var logger = flogging.MustGetLogger("bccsp_sw")

// CSP provides a generic implementation of the BCCSP interface based
// on wrappers. It can be customized by providing implementations for the
// following algorithm-based wrappers: KeyImporter, Encryptor, Decryptor,
// Hasher. Each wrapper is bound to a type representing either an option
// or a key.
type CSP struct {
	ks bccsp.KeyStore

	KeyImporters map[reflect.Type]KeyImporter
	Encryptors   map[reflect.Type]Encryptor
	Decryptors   map[reflect.Type]Decryptor
	Hashers      map[reflect.Type]Hasher

	defaultHash func() hash.Hash
}

// New returns a software CSP for the given security level and hash family.
// Imported keys shorter than securityLevel bits are rejected. The processor
// runs the modes of operation; a nil processor is serial.
func New(securityLevel int, hashFamily string, keyStore bccsp.KeyStore, processor *modes.Processor) (*CSP, error) {
	if keyStore == nil {
		return nil, errors.New("invalid bccsp.KeyStore instance, it must be different from nil")
	}
	if processor == nil {
		processor = modes.NewProcessor(modes.Config{}, nil)
	}

	conf := &config{}
	err := conf.setSecurityLevel(securityLevel, hashFamily)
	if err != nil {
		return nil, errors.Wrapf(err, "failed initializing configuration at [%v,%v]", securityLevel, hashFamily)
	}

	csp := &CSP{
		ks:           keyStore,
		KeyImporters: make(map[reflect.Type]KeyImporter),
		Encryptors:   make(map[reflect.Type]Encryptor),
		Decryptors:   make(map[reflect.Type]Decryptor),
		Hashers:      make(map[reflect.Type]Hasher),
	}

	csp.AddWrapper(reflect.TypeOf(&aesPrivateKey{}), &aesEncryptor{processor: processor})
	csp.AddWrapper(reflect.TypeOf(&aesPrivateKey{}), &aesDecryptor{processor: processor})

	csp.AddWrapper(reflect.TypeOf(&bccsp.AESImportKeyOpts{}), &aesImportKeyOptsKeyImporter{
		minKeyLength: conf.aesByteLength,
		hash:         conf.hashFunction,
	})

	csp.AddWrapper(reflect.TypeOf(&bccsp.SHA256Opts{}), &hasher{hash: sha256.New})
	csp.AddWrapper(reflect.TypeOf(&bccsp.SHA384Opts{}), &hasher{hash: sha512.New384})
	csp.AddWrapper(reflect.TypeOf(&bccsp.SHA3_256Opts{}), &hasher{hash: sha3.New256})
	csp.AddWrapper(reflect.TypeOf(&bccsp.SHA3_384Opts{}), &hasher{hash: sha3.New384})
	csp.defaultHash = conf.hashFunction

	return csp, nil
}

// KeyImport imports a key from its raw representation using opts.
// The opts argument should be appropriate for the primitive used.
func (csp *CSP) KeyImport(raw interface{}, opts bccsp.KeyImportOpts) (k bccsp.Key, err error) {
	// Validate arguments
	if raw == nil {
		return nil, errors.New("invalid raw, it must not be nil")
	}
	if opts == nil {
		return nil, errors.New("invalid opts, it must not be nil")
	}

	keyImporter, found := csp.KeyImporters[reflect.TypeOf(opts)]
	if !found {
		logger.Debugw("rejected key import options", "opts", reflect.TypeOf(opts).String())
		return nil, errors.Errorf("unsupported 'KeyImportOpts' provided [%v]", opts)
	}

	k, err = keyImporter.KeyImport(raw, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "failed importing key with opts [%v]", opts)
	}

	// If the key is not Ephemeral, store it.
	if !opts.Ephemeral() {
		// Store the key
		err = csp.ks.StoreKey(k)
		if err != nil {
			return nil, errors.Wrapf(err, "failed storing imported key with opts [%v]", opts)
		}
	}

	logger.Debugw("imported key", "algorithm", opts.Algorithm(), "ephemeral", opts.Ephemeral())
	return k, nil
}

// GetKey returns the key this CSP associates to
// the Subject Key Identifier ski.
func (csp *CSP) GetKey(ski []byte) (k bccsp.Key, err error) {
	k, err = csp.ks.GetKey(ski)
	if err != nil {
		return nil, errors.Wrapf(err, "failed getting key for SKI [%v]", ski)
	}

	return
}

// Hash hashes messages msg using options opts.
// A nil opts selects the hash of the configured family.
func (csp *CSP) Hash(msg []byte, opts bccsp.HashOpts) (digest []byte, err error) {
	h, err := csp.GetHash(opts)
	if err != nil {
		return nil, err
	}
	h.Write(msg)
	return h.Sum(nil), nil
}

// GetHash returns and instance of hash.Hash using options opts.
// A nil opts selects the hash of the configured family.
func (csp *CSP) GetHash(opts bccsp.HashOpts) (h hash.Hash, err error) {
	if opts == nil {
		return csp.defaultHash(), nil
	}

	hasher, found := csp.Hashers[reflect.TypeOf(opts)]
	if !found {
		return nil, errors.Errorf("unsupported 'HashOpt' provided [%v]", opts)
	}

	h, err = hasher.GetHash(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "failed getting hash function with opts [%v]", opts)
	}

	return
}

// Encrypt encrypts plaintext using key k.
// The opts argument should be appropriate for the algorithm used.
func (csp *CSP) Encrypt(k bccsp.Key, plaintext []byte, opts bccsp.EncrypterOpts) ([]byte, error) {
	// Validate arguments
	if k == nil {
		return nil, errors.New("invalid Key, it must not be nil")
	}

	encryptor, found := csp.Encryptors[reflect.TypeOf(k)]
	if !found {
		return nil, errors.Errorf("unsupported 'EncryptKey' provided [%v]", k)
	}

	return encryptor.Encrypt(k, plaintext, opts)
}

// Decrypt decrypts ciphertext using key k.
// The opts argument should be appropriate for the algorithm used.
func (csp *CSP) Decrypt(k bccsp.Key, ciphertext []byte, opts bccsp.DecrypterOpts) (plaintext []byte, err error) {
	// Validate arguments
	if k == nil {
		return nil, errors.New("invalid Key, it must not be nil")
	}

	decryptor, found := csp.Decryptors[reflect.TypeOf(k)]
	if !found {
		return nil, errors.Errorf("unsupported 'DecryptKey' provided [%v]", k)
	}

	plaintext, err = decryptor.Decrypt(k, ciphertext, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "failed decrypting with opts [%v]", opts)
	}

	return
}

// AddWrapper binds the passed type to the passed wrapper.
// Notice that that wrapper must be an instance of one of the following interfaces:
// KeyImporter, Encryptor, Decryptor, Hasher.
func (csp *CSP) AddWrapper(t reflect.Type, w interface{}) error {
	if t == nil {
		return errors.New("type cannot be nil")
	}
	if w == nil {
		return errors.New("wrapper cannot be nil")
	}
	switch dt := w.(type) {
	case KeyImporter:
		csp.KeyImporters[t] = dt
	case Encryptor:
		csp.Encryptors[t] = dt
	case Decryptor:
		csp.Decryptors[t] = dt
	case Hasher:
		csp.Hashers[t] = dt
	default:
		return errors.Errorf("wrapper type not valid, must be one of: KeyImporter, Encryptor, Decryptor, Hasher")
	}
	return nil
}
