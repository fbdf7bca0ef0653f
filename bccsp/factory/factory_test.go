/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package factory_test

import (
	"bytes"
	"encoding/hex"
	"encoding/json"

	"github.com/hyperledger/fabric-aes/bccsp"
	"github.com/hyperledger/fabric-aes/bccsp/factory"
	"github.com/hyperledger/fabric-aes/common/metrics"
	"github.com/hyperledger/fabric-aes/common/metrics/metricsfakes"
	"github.com/hyperledger/fabric-aes/common/viperutil"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	Expect(err).NotTo(HaveOccurred())
	return b
}

type fakeFactory struct {
	name string
	csp  bccsp.BCCSP
	err  error
	got  *factory.FactoryOpts
}

func (f *fakeFactory) Name() string { return f.name }

func (f *fakeFactory) Get(opts *factory.FactoryOpts) (bccsp.BCCSP, error) {
	f.got = opts
	return f.csp, f.err
}

type fakeProvider struct {
	counter   metrics.Counter
	gauge     metrics.Gauge
	histogram metrics.Histogram
}

func (p *fakeProvider) NewCounter(metrics.CounterOpts) metrics.Counter { return p.counter }
func (p *fakeProvider) NewGauge(metrics.GaugeOpts) metrics.Gauge { return p.gauge }
func (p *fakeProvider) NewHistogram(metrics.HistogramOpts) metrics.Histogram { return p.histogram }

type config struct {
	BCCSP *factory.FactoryOpts
}

func decodeYAML(data []byte) *factory.FactoryOpts {
	parser := viperutil.New("FACTORYTEST")
	Expect(parser.ReadConfig(bytes.NewReader(data))).To(Succeed())

	var conf config
	Expect(parser.EnhancedExactUnmarshal("", &conf)).To(Succeed())
	return conf.BCCSP
}

var _ = Describe("Factory", func() {
	// NIST SP 800-38A F.5.1
	var (
		key   = mustHex("2b7e151628aed2a6abf7158809cf4f3c")
		nonce = mustHex("f0f1f2f3f4f5f6f7")
		pt    = mustHex("6bc1bee22e409f96e93d7e117393172aae2d8a571e03ac9c9eb76fac45af8e5130c81c46a35ce411e5fbc1191a0a52eff69f2445df4f9b17ad2b417be66c3710")
		ct    = mustHex("874d6191b620e3261bef6864990db6ce9806f66b7970fdff8617187bb9fffdff5ae4df3edbd5d35e5b4f09020db03eab1e031dda2fbe03d1792170a0f3009cee")
	)

	Describe("GetDefaultOpts", func() {
		It("selects an ephemeral SHA2 software provider at security level 128", func() {
			opts := factory.GetDefaultOpts()
			Expect(opts.FactoryName()).To(Equal(factory.SoftwareBasedFactoryName))
			Expect(opts.SwOpts).To(Equal(&factory.SwOpts{HashFamily: "SHA2", SecLevel: 128, Ephemeral: true}))
		})

		It("returns a new instance every time", func() {
			opts := factory.GetDefaultOpts()
			opts.SwOpts.Workers = 8
			Expect(factory.GetDefaultOpts().SwOpts.Workers).To(Equal(0))
		})
	})

	Describe("GetBCCSPFromOpts", func() {
		It("uses the defaults when no config is supplied", func() {
			csp, err := factory.GetBCCSPFromOpts(nil)
			Expect(err).NotTo(HaveOccurred())

			k, err := csp.KeyImport(key, &bccsp.AESImportKeyOpts{Temporary: true})
			Expect(err).NotTo(HaveOccurred())

			out, err := csp.Encrypt(k, pt, &bccsp.AESCTRModeOpts{Nonce: nonce, InitialCounter: 0xf8f9fafbfcfdfeff})
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal(ct))
		})

		It("fills in missing software options", func() {
			csp, err := factory.GetBCCSPFromOpts(&factory.FactoryOpts{ProviderName: "SW"})
			Expect(err).NotTo(HaveOccurred())
			Expect(csp).NotTo(BeNil())
		})

		It("does not modify the supplied config", func() {
			opts := &factory.FactoryOpts{ProviderName: "SW"}
			_, err := factory.GetBCCSPFromOpts(opts)
			Expect(err).NotTo(HaveOccurred())
			Expect(opts.SwOpts).To(BeNil())
		})

		It("rejects unknown providers", func() {
			_, err := factory.GetBCCSPFromOpts(&factory.FactoryOpts{ProviderName: "PKCS11"})
			Expect(err).To(MatchError("could not find BCCSP, no 'PKCS11' provider"))
		})

		It("wraps provider failures", func() {
			_, err := factory.GetBCCSPFromOpts(&factory.FactoryOpts{
				ProviderName: "SW",
				SwOpts:       &factory.SwOpts{SecLevel: 384, HashFamily: "SHA2"},
			})
			Expect(err).To(MatchError("could not initialize BCCSP SW: invalid software options: SecLevel failed 'oneof' with [384]"))
		})

		It("dispatches to the named factory", func() {
			other := &fakeFactory{name: "OTHER", err: errors.New("boom")}
			sw := &fakeFactory{name: "SW"}

			_, err := factory.GetBCCSPFromOptsWithFactories(&factory.FactoryOpts{ProviderName: "OTHER"}, sw, other)
			Expect(err).To(MatchError("could not initialize BCCSP OTHER: boom"))
			Expect(other.got).NotTo(BeNil())
			Expect(sw.got).To(BeNil())
		})
	})

	Describe("SWFactory", func() {
		var swFactory *factory.SWFactory

		BeforeEach(func() {
			swFactory = &factory.SWFactory{}
		})

		It("is named SW", func() {
			Expect(swFactory.Name()).To(Equal("SW"))
		})

		It("requires software options", func() {
			_, err := swFactory.Get(nil)
			Expect(err).To(MatchError("invalid config, it must not be nil"))

			_, err = swFactory.Get(&factory.FactoryOpts{})
			Expect(err).To(MatchError("invalid config, it must not be nil"))
		})

		It("rejects a negative worker count", func() {
			_, err := swFactory.Get(&factory.FactoryOpts{
				SwOpts: &factory.SwOpts{SecLevel: 128, HashFamily: "SHA2", Workers: -1},
			})
			Expect(err).To(MatchError("invalid software options: Workers failed 'gte' with [-1]"))
		})

		It("reports every invalid option", func() {
			err := (&factory.SwOpts{SecLevel: 64, HashFamily: "MD5"}).Validate()
			Expect(err).To(MatchError("invalid software options: SecLevel failed 'oneof' with [64], HashFamily failed 'oneof' with [MD5]"))

			Expect(factory.GetDefaultOpts().SwOpts.Validate()).To(Succeed())
		})

		It("does not retain ephemeral keys", func() {
			csp, err := swFactory.Get(factory.GetDefaultOpts())
			Expect(err).NotTo(HaveOccurred())

			k, err := csp.KeyImport(key, &bccsp.AESImportKeyOpts{})
			Expect(err).To(MatchError(ContainSubstring("cannot store key, this is a dummy read-only KeyStore")))
			Expect(k).To(BeNil())
		})

		It("retains keys in memory when not ephemeral", func() {
			csp, err := swFactory.Get(&factory.FactoryOpts{
				SwOpts: &factory.SwOpts{SecLevel: 128, HashFamily: "SHA3"},
			})
			Expect(err).NotTo(HaveOccurred())

			k, err := csp.KeyImport(key, &bccsp.AESImportKeyOpts{})
			Expect(err).NotTo(HaveOccurred())

			found, err := csp.GetKey(k.SKI())
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(Equal(k))
		})

		It("reports mode metrics to the configured provider", func() {
			counter := &metricsfakes.FakeCounter{}
			counter.WithReturns(counter)
			gauge := &metricsfakes.FakeGauge{}
			gauge.WithReturns(gauge)
			histogram := &metricsfakes.FakeHistogram{}
			histogram.WithReturns(histogram)

			provider := &fakeProvider{counter: counter, gauge: gauge, histogram: histogram}
			swFactory.MetricsProvider = provider

			csp, err := swFactory.Get(&factory.FactoryOpts{
				SwOpts: &factory.SwOpts{SecLevel: 128, HashFamily: "SHA2", Ephemeral: true, Workers: 4, ParallelThreshold: 16},
			})
			Expect(err).NotTo(HaveOccurred())

			k, err := csp.KeyImport(key, &bccsp.AESImportKeyOpts{Temporary: true})
			Expect(err).NotTo(HaveOccurred())
			_, err = csp.Encrypt(k, pt, &bccsp.AESECBModeOpts{})
			Expect(err).NotTo(HaveOccurred())

			Expect(counter.AddCallCount()).To(Equal(1))
			Expect(counter.AddArgsForCall(0)).To(Equal(4.0))
			Expect(counter.WithArgsForCall(0)).To(Equal([]string{"mode", "ecb", "direction", "encrypt"}))
			Expect(gauge.SetCallCount()).To(Equal(1))
			Expect(gauge.SetArgsForCall(0)).To(Equal(4.0))
			Expect(histogram.ObserveCallCount()).To(Equal(1))
		})
	})

	Describe("configuration", func() {
		It("decodes JSON", func() {
			var opts *factory.FactoryOpts
			err := json.Unmarshal([]byte(`{ "default": "SW", "SW":{ "security": 256, "hash": "SHA3", "workers": 2 } }`), &opts)
			Expect(err).NotTo(HaveOccurred())
			Expect(opts.ProviderName).To(Equal("SW"))
			Expect(opts.SwOpts).To(Equal(&factory.SwOpts{SecLevel: 256, HashFamily: "SHA3", Workers: 2}))

			_, err = factory.GetBCCSPFromOpts(opts)
			Expect(err).NotTo(HaveOccurred())
		})

		It("decodes YAML through the config parser", func() {
			opts := decodeYAML([]byte(`
BCCSP:
    Default: SW
    SW:
        Hash: SHA3
        Security: 256
        Workers: 3
        ParallelThreshold: 1k
`))
			Expect(opts.SwOpts).To(Equal(&factory.SwOpts{
				SecLevel:          256,
				HashFamily:        "SHA3",
				Ephemeral:         true,
				Workers:           3,
				ParallelThreshold: 1024,
			}))

			csp, err := factory.GetBCCSPFromOpts(opts)
			Expect(err).NotTo(HaveOccurred())

			_, err = csp.KeyImport(key, &bccsp.AESImportKeyOpts{Temporary: true})
			Expect(err).To(MatchError(ContainSubstring("invalid key length [16], must be at least [32] bytes")))
		})

		It("round trips rendered YAML", func() {
			original := &factory.FactoryOpts{
				ProviderName: "SW",
				SwOpts: &factory.SwOpts{
					SecLevel:          192,
					HashFamily:        "SHA2",
					Workers:           6,
					ParallelThreshold: 4096,
				},
			}
			rendered, err := yaml.Marshal(config{BCCSP: original})
			Expect(err).NotTo(HaveOccurred())

			Expect(decodeYAML(rendered)).To(Equal(original))
		})
	})
})
