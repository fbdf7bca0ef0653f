/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package disabled_test

import (
	"github.com/hyperledger/fabric-aes/common/metrics"
	"github.com/hyperledger/fabric-aes/common/metrics/disabled"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Provider", func() {
	var p metrics.Provider

	BeforeEach(func() {
		p = &disabled.Provider{}
	})

	It("hands out counters that accept labels and increments", func() {
		c := p.NewCounter(metrics.CounterOpts{
			Namespace:  "aes",
			Name:       "blocks_processed",
			LabelNames: []string{"mode", "direction"},
		})
		Expect(c).NotTo(BeNil())

		c.Add(1)
		labeled := c.With("mode", "cbc", "direction", "decrypt")
		Expect(labeled).To(BeIdenticalTo(c))
		labeled.Add(4)
	})

	It("hands out gauges that can be set and adjusted", func() {
		g := p.NewGauge(metrics.GaugeOpts{Name: "workers"})
		Expect(g).NotTo(BeNil())

		g.Set(8)
		g.Add(-1)
		Expect(g.With("mode", "ctr")).To(BeIdenticalTo(g))
	})

	It("hands out histograms that drop observations", func() {
		h := p.NewHistogram(metrics.HistogramOpts{Name: "duration", Buckets: []float64{0.1, 1}})
		Expect(h).NotTo(BeNil())

		h.Observe(0.5)
		Expect(h.With("mode", "ecb")).To(BeIdenticalTo(h))
	})
})
