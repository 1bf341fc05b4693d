// Package parallel provides the master/slave thread-pool orchestrator
// that drives the radix package's bit-partition primitives across
// multiple goroutines: a shared chunk queue, a block-merge step that
// stitches independently partitioned portions back into one split, and
// a worker loop that alternates between slave duty and master duty.
package parallel

import "sync"

// QueueMode selects how the shared chunk queue orders pending work.
type QueueMode int

const (
	// FIFO processes chunks in the order they were queued, favoring
	// breadth-first exploration of the recursion tree.
	FIFO QueueMode = iota
	// LIFO processes the most recently queued chunk first, favoring
	// depth-first exploration and better cache locality between a
	// worker's successive chunks.
	LIFO
)

// RadixThreadConfig configures the parallel sorter. The zero value is
// not ready to use; call NewRadixThreadConfig for sane defaults.
type RadixThreadConfig struct {
	// NumThreads is the number of worker goroutines. Must be >= 1.
	NumThreads int
	// QueueMode selects FIFO or LIFO chunk ordering.
	QueueMode QueueMode
	// UseSlaves enables master/slave sub-partitioning of large chunks
	// across multiple workers. If false, every chunk is partitioned
	// entirely by the worker that dequeues it.
	UseSlaves bool
	// SlaveFac defaults to 1.0 and is not read by the pool: how many
	// portions a master splits a chunk into is set by Portions alone,
	// and a chunk is split across slaves once it holds at least
	// Portions*2*radix.CmpSortThresh elements.
	SlaveFac float64
	// Portions is how many portions a single master split splits a
	// chunk into. It is clamped to the range [1, NumThreads]; with 1,
	// no chunk is split across slaves.
	Portions int
	// Stats, if non-nil, receives per-run counters. Optional.
	Stats *Stats
}

// NewRadixThreadConfig returns a config for numThreads workers with the
// same defaults the original implementation uses: FIFO ordering,
// slaves enabled, and a slave factor of 1.0.
func NewRadixThreadConfig(numThreads int) *RadixThreadConfig {
	return &RadixThreadConfig{
		NumThreads: numThreads,
		QueueMode:  FIFO,
		UseSlaves:  true,
		SlaveFac:   1.0,
		Portions:   numThreads,
	}
}

func (c *RadixThreadConfig) validate() {
	if c.NumThreads < 1 {
		invariantViolation("radix/parallel: NumThreads must be >= 1")
	}
	if c.QueueMode != FIFO && c.QueueMode != LIFO {
		invariantViolation("radix/parallel: unknown QueueMode")
	}
	if c.Portions < 1 {
		c.Portions = 1
	}
	if c.Portions > c.NumThreads {
		c.Portions = c.NumThreads
	}
}

// Stats accumulates counters across a parallel sort run. All fields are
// safe to read only after the sort has returned; updates happen under
// the Stats value's own mutex during the run. The counts are totals
// across all workers.
type Stats struct {
	mu sync.Mutex

	ChunksProcessed  int
	ElementsSorted   int
	MasterSplits     int
	SlaveSplits      int
	MaxQueueLength   int
}

func (s *Stats) recordChunk(elements int) {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.ChunksProcessed++
	s.ElementsSorted += elements
	s.mu.Unlock()
}

func (s *Stats) recordMasterSplit() {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.MasterSplits++
	s.mu.Unlock()
}

func (s *Stats) recordSlaveSplit() {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.SlaveSplits++
	s.mu.Unlock()
}

func (s *Stats) recordQueueLength(n int) {
	if s == nil {
		return
	}
	s.mu.Lock()
	if n > s.MaxQueueLength {
		s.MaxQueueLength = n
	}
	s.mu.Unlock()
}
