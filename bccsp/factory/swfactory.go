/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package factory

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hyperledger/fabric-aes/bccsp"
	"github.com/hyperledger/fabric-aes/bccsp/sw"
	"github.com/hyperledger/fabric-aes/common/metrics"
	"github.com/hyperledger/fabric-aes/common/metrics/disabled"
	"github.com/hyperledger/fabric-aes/modes"
	"github.com/pkg/errors"
)

const (
	// SoftwareBasedFactoryName is the name of the factory of the software-based BCCSP implementation
	SoftwareBasedFactoryName = "SW"
)

// SWFactory is the factory of the software-based BCCSP.
type SWFactory struct {
	// MetricsProvider receives the mode metrics. Nil disables them.
	MetricsProvider metrics.Provider
}

// Name returns the name of this factory
func (f *SWFactory) Name() string {
	return SoftwareBasedFactoryName
}

// Get returns an instance of BCCSP using Opts.
func (f *SWFactory) Get(config *FactoryOpts) (bccsp.BCCSP, error) {
	// Validate arguments
	if config == nil || config.SwOpts == nil {
		return nil, errors.New("invalid config, it must not be nil")
	}

	swOpts := config.SwOpts
	if err := swOpts.Validate(); err != nil {
		return nil, err
	}

	var ks bccsp.KeyStore
	switch {
	case swOpts.Ephemeral:
		ks = sw.NewDummyKeyStore()
	default:
		ks = sw.NewInMemoryKeyStore()
	}

	provider := f.MetricsProvider
	if provider == nil {
		provider = &disabled.Provider{}
	}
	processor := modes.NewProcessor(modes.Config{
		Workers:           swOpts.Workers,
		ParallelThreshold: int(swOpts.ParallelThreshold),
	}, modes.NewMetrics(provider))

	csp, err := sw.New(swOpts.SecLevel, swOpts.HashFamily, ks, processor)
	if err != nil {
		return nil, err
	}
	return csp, nil
}

// SwOpts contains options for the SWFactory
type SwOpts struct {
	// SecLevel is the smallest accepted key size in bits, HashFamily the
	// family used for key identifiers.
	SecLevel   int    `mapstructure:"security" json:"security" yaml:"Security" validate:"oneof=128 192 256"`
	HashFamily string `mapstructure:"hash" json:"hash" yaml:"Hash" validate:"oneof=SHA2 SHA3"`

	// Ephemeral keys are not retained and cannot be looked up by SKI.
	Ephemeral bool `mapstructure:"ephemeral" json:"ephemeral" yaml:"Ephemeral"`

	// Workers bounds the goroutines used by the parallel modes.
	Workers int `mapstructure:"workers" json:"workers" yaml:"Workers" validate:"gte=0"`

	// ParallelThreshold is the smallest input, in bytes, split across workers.
	ParallelThreshold uint32 `mapstructure:"parallelthreshold" json:"parallelthreshold" yaml:"ParallelThreshold"`
}

var validate = validator.New()

// Validate reports every option outside its accepted range.
func (o *SwOpts) Validate() error {
	err := validate.Struct(o)
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s failed '%s' with [%v]", fe.Field(), fe.Tag(), fe.Value()))
	}
	return errors.Errorf("invalid software options: %s", strings.Join(msgs, ", "))
}
