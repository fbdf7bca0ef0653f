/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package modes

import "github.com/hyperledger/fabric-aes/common/metrics"

var (
	BlocksProcessedOpts = metrics.CounterOpts{
		Namespace:  "aes",
		Subsystem:  "modes",
		Name:       "blocks_processed",
		Help:       "Number of 16 byte blocks transformed, including a trailing partial CTR block.",
		LabelNames: []string{"mode", "direction"},
	}

	OperationsFailedOpts = metrics.CounterOpts{
		Namespace:  "aes",
		Subsystem:  "modes",
		Name:       "operations_failed",
		Help:       "Number of operations rejected before any block was transformed.",
		LabelNames: []string{"mode", "reason"},
	}

	OperationDurationOpts = metrics.HistogramOpts{
		Namespace:  "aes",
		Subsystem:  "modes",
		Name:       "operation_duration",
		Help:       "Time taken to transform one input, in seconds.",
		LabelNames: []string{"mode", "direction"},
	}

	WorkersOpts = metrics.GaugeOpts{
		Namespace:  "aes",
		Subsystem:  "modes",
		Name:       "workers",
		Help:       "Number of workers used by the most recent operation.",
		LabelNames: []string{"mode"},
	}
)

// Metrics holds the meters updated by a Processor.
type Metrics struct {
	BlocksProcessed   metrics.Counter
	OperationsFailed  metrics.Counter
	OperationDuration metrics.Histogram
	Workers           metrics.Gauge
}

// NewMetrics creates the Processor meters on p.
func NewMetrics(p metrics.Provider) *Metrics {
	return &Metrics{
		BlocksProcessed:   p.NewCounter(BlocksProcessedOpts),
		OperationsFailed:  p.NewCounter(OperationsFailedOpts),
		OperationDuration: p.NewHistogram(OperationDurationOpts),
		Workers:           p.NewGauge(WorkersOpts),
	}
}
