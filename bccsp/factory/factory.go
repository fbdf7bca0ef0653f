/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package factory

import (
	"github.com/hyperledger/fabric-aes/bccsp"
	"github.com/hyperledger/fabric-aes/common/flogging"
	"github.com/pkg/errors"
)

var logger = flogging.MustGetLogger("bccsp")

// BCCSPFactory is used to get instances of the BCCSP interface.
// A Factory has name used to address it.
type BCCSPFactory interface {
	// Name returns the name of this factory
	Name() string

	// Get returns an instance of BCCSP using opts.
	Get(opts *FactoryOpts) (bccsp.BCCSP, error)
}

// GetBCCSPFromOpts returns a BCCSP created according to the options passed in input.
// A nil config, or one without a provider name, selects the defaults.
func GetBCCSPFromOpts(config *FactoryOpts) (bccsp.BCCSP, error) {
	return GetBCCSPFromOptsWithFactories(config, &SWFactory{})
}

// GetBCCSPFromOptsWithFactories is GetBCCSPFromOpts restricted to the
// supplied factories.
func GetBCCSPFromOptsWithFactories(config *FactoryOpts, factories ...BCCSPFactory) (bccsp.BCCSP, error) {
	if config == nil || config.ProviderName == "" {
		config = GetDefaultOpts()
	}
	if config.ProviderName == SoftwareBasedFactoryName && config.SwOpts == nil {
		withDefaults := *config
		withDefaults.SwOpts = GetDefaultOpts().SwOpts
		config = &withDefaults
	}

	for _, f := range factories {
		if f.Name() != config.ProviderName {
			continue
		}
		csp, err := f.Get(config)
		if err != nil {
			return nil, errors.Wrapf(err, "could not initialize BCCSP %s", f.Name())
		}
		logger.Debugf("initialized BCCSP %s", f.Name())
		return csp, nil
	}

	return nil, errors.Errorf("could not find BCCSP, no '%s' provider", config.ProviderName)
}
