/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package modes

import (
	"time"

	"github.com/hyperledger/fabric-aes/common/flogging"
	"github.com/hyperledger/fabric-aes/common/metrics/disabled"
	"golang.org/x/sync/errgroup"
)

var (
	logger          = flogging.MustGetLogger("modes")
	disabledMetrics = NewMetrics(&disabled.Provider{})
)

// DefaultParallelThreshold is the input size, in bytes, below which a
// Processor stays serial when Config.ParallelThreshold is unset.
const DefaultParallelThreshold = 64 * 1024

// Config controls how a Processor spreads work.
type Config struct {
	// Workers bounds the goroutines used by the parallel directions (ECB,
	// CBC decryption and CTR). Values below 2 keep every operation serial.
	Workers int

	// ParallelThreshold is the smallest input, in bytes, that is split
	// across workers. Zero selects DefaultParallelThreshold.
	ParallelThreshold int
}

// Processor runs the modes of operation. Blocks are split into contiguous
// ranges, one per worker, and every worker writes only its own range of the
// output. CBC encryption is always serial. A Processor holds no per-call
// state and is safe for concurrent use. The zero value is a serial
// Processor that records to a disabled provider.
type Processor struct {
	workers   int
	threshold int
	metrics   *Metrics
}

// NewProcessor creates a Processor. A nil m records to a disabled provider.
func NewProcessor(c Config, m *Metrics) *Processor {
	if m == nil {
		m = disabledMetrics
	}
	threshold := c.ParallelThreshold
	if threshold <= 0 {
		threshold = DefaultParallelThreshold
	}
	return &Processor{
		workers:   c.Workers,
		threshold: threshold,
		metrics:   m,
	}
}

// workersFor returns the number of workers used for an input of size bytes
// holding blocks blocks.
func (p *Processor) workersFor(size, blocks int) int {
	if p.workers < 2 || size < p.threshold {
		return 1
	}
	return min(p.workers, blocks)
}

// run calls fn over disjoint ranges [lo, hi) that cover [0, blocks) and
// returns the number of workers used.
func (p *Processor) run(size, blocks int, fn func(lo, hi int)) int {
	workers := p.workersFor(size, blocks)
	if workers <= 1 {
		fn(0, blocks)
		return 1
	}

	chunk := (blocks + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < blocks; lo += chunk {
		lo, hi := lo, min(lo+chunk, blocks)
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	_ = g.Wait()

	return workers
}

func (p *Processor) meters() *Metrics {
	if p.metrics == nil {
		return disabledMetrics
	}
	return p.metrics
}

func (p *Processor) fail(mode, reason string, err error) error {
	p.meters().OperationsFailed.With("mode", mode, "reason", reason).Add(1)
	logger.Debugw("rejected input", "mode", mode, "reason", reason, "error", err)
	return err
}

func (p *Processor) record(mode, direction string, blocks, workers int, start time.Time) {
	elapsed := time.Since(start)
	m := p.meters()
	m.BlocksProcessed.With("mode", mode, "direction", direction).Add(float64(blocks))
	m.OperationDuration.With("mode", mode, "direction", direction).Observe(elapsed.Seconds())
	m.Workers.With("mode", mode).Set(float64(workers))
	logger.Debugw("processed input", "mode", mode, "direction", direction, "blocks", blocks, "workers", workers, "elapsed", elapsed)
}

func direction(encrypt bool) string {
	if encrypt {
		return DirectionEncrypt
	}
	return DirectionDecrypt
}
