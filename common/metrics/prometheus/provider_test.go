/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus_test

import (
	"github.com/hyperledger/fabric-aes/common/metrics"
	"github.com/hyperledger/fabric-aes/common/metrics/prometheus"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	prom "github.com/prometheus/client_golang/prometheus"
)

var _ = Describe("Provider", func() {
	var (
		registry *prom.Registry
		p        *prometheus.Provider
	)

	BeforeEach(func() {
		registry = prom.NewRegistry()
		p = &prometheus.Provider{Registerer: registry}
	})

	It("registers labeled counters", func() {
		c := p.NewCounter(metrics.CounterOpts{
			Namespace:  "aes",
			Subsystem:  "modes",
			Name:       "blocks_processed",
			Help:       "The number of blocks processed.",
			LabelNames: []string{"mode", "direction"},
		})
		c.With("mode", "ecb", "direction", "encrypt").Add(4)
		c.With("mode", "ecb", "direction", "encrypt").Add(2)

		mfs, err := registry.Gather()
		Expect(err).NotTo(HaveOccurred())
		Expect(mfs).To(HaveLen(1))
		Expect(mfs[0].GetName()).To(Equal("aes_modes_blocks_processed"))
		Expect(mfs[0].GetHelp()).To(Equal("The number of blocks processed."))
		Expect(mfs[0].GetMetric()).To(HaveLen(1))

		m := mfs[0].GetMetric()[0]
		Expect(m.GetCounter().GetValue()).To(Equal(6.0))
		Expect(m.GetLabel()).To(HaveLen(2))
		Expect(m.GetLabel()[0].GetName()).To(Equal("direction"))
		Expect(m.GetLabel()[0].GetValue()).To(Equal("encrypt"))
		Expect(m.GetLabel()[1].GetName()).To(Equal("mode"))
		Expect(m.GetLabel()[1].GetValue()).To(Equal("ecb"))
	})

	It("registers gauges", func() {
		g := p.NewGauge(metrics.GaugeOpts{
			Namespace: "aes",
			Subsystem: "modes",
			Name:      "workers",
			Help:      "The configured number of workers.",
		})
		g.Set(8)
		g.Add(-2)

		mfs, err := registry.Gather()
		Expect(err).NotTo(HaveOccurred())
		Expect(mfs).To(HaveLen(1))
		Expect(mfs[0].GetName()).To(Equal("aes_modes_workers"))
		Expect(mfs[0].GetMetric()[0].GetGauge().GetValue()).To(Equal(6.0))
	})

	It("registers histograms with the requested buckets", func() {
		h := p.NewHistogram(metrics.HistogramOpts{
			Namespace:  "aes",
			Subsystem:  "modes",
			Name:       "operation_duration",
			Help:       "The time taken by an operation.",
			Buckets:    []float64{0.5, 1},
			LabelNames: []string{"mode"},
		})
		h.With("mode", "ctr").Observe(0.25)
		h.With("mode", "ctr").Observe(0.75)

		mfs, err := registry.Gather()
		Expect(err).NotTo(HaveOccurred())
		Expect(mfs).To(HaveLen(1))

		hist := mfs[0].GetMetric()[0].GetHistogram()
		Expect(hist.GetSampleCount()).To(Equal(uint64(2)))
		Expect(hist.GetSampleSum()).To(Equal(1.0))
		Expect(hist.GetBucket()).To(HaveLen(2))
		Expect(hist.GetBucket()[0].GetCumulativeCount()).To(Equal(uint64(1)))
		Expect(hist.GetBucket()[1].GetCumulativeCount()).To(Equal(uint64(2)))
	})

	It("panics when the same metric is registered twice", func() {
		opts := metrics.CounterOpts{Namespace: "aes", Name: "duplicate"}
		p.NewCounter(opts)
		Expect(func() { p.NewCounter(opts) }).To(Panic())
	})
})
