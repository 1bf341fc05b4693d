package parallel

import (
	"sync"

	"github.com/flowsort/simdradix/radix"
)

// pool drives a fixed set of worker goroutines over a shared element
// slice: each worker alternates between slave duty (partitioning one
// portion of a master's chunk and reporting the result back) and
// either full local recursion of a small chunk or master-role
// partition-with-slaves of a large one.
type pool[T radix.Bits, P any] struct {
	data      []radix.Elem[T, P]
	cfg       *RadixThreadConfig
	queue     *chunkQueue
	lowestBit int
	useSIMD   bool
	up        bool
	wg        sync.WaitGroup
}

func newPool[T radix.Bits, P any](data []radix.Elem[T, P], cfg *RadixThreadConfig, lowestBit int, useSIMD, up bool) *pool[T, P] {
	cfg.validate()
	return &pool[T, P]{
		data:      data,
		cfg:       cfg,
		queue:     newChunkQueue(cfg.QueueMode, cfg.NumThreads, cfg.Stats),
		lowestBit: lowestBit,
		useSIMD:   useSIMD,
		up:        up,
	}
}

// run partitions and sorts the whole slice, blocking until every
// worker has drained the queue and exited.
func (p *pool[T, P]) run() {
	if len(p.data) < 2 {
		return
	}
	topBit := radix.BitWidth[T]() - 1
	p.queue.addChunk(chunk{lo: 0, hi: len(p.data), bit: topBit, kind: kindWork})

	p.wg.Add(p.cfg.NumThreads)
	for i := 0; i < p.cfg.NumThreads; i++ {
		go func() {
			defer p.wg.Done()
			p.workerLoop()
		}()
	}
	p.wg.Wait()
}

func (p *pool[T, P]) workerLoop() {
	for {
		c, ok := p.queue.pop()
		if !ok {
			return
		}
		switch c.kind {
		case kindSlavePartition:
			p.runSlavePartition(c)
		case kindWork:
			p.runChunk(c.lo, c.hi, c.bit)
		default:
			invariantViolation("radix/parallel: unknown chunk kind")
		}
	}
}

// runSlavePartition partitions one portion of a master's chunk on a
// single bit and reports the local split back through c.result, waking
// the master blocked in runMasterChunk.
func (p *pool[T, P]) runSlavePartition(c chunk) {
	split := p.partitionOneBit(c.lo, c.hi, c.bit)
	c.result.split = split
	c.result.wg.Done()
	p.cfg.Stats.recordSlaveSplit()
}

func (p *pool[T, P]) partitionOneBit(lo, hi, bit int) int {
	if p.useSIMD {
		return radix.PartitionBitSIMD(p.data, lo, hi, bit, p.up)
	}
	return radix.PartitionBit(p.data, lo, hi, bit, p.up)
}

// runChunk sorts data[lo:hi] starting at bit level `bit`, tail-calling
// into the larger half and enqueuing the smaller half so other idle
// workers can pick it up, exactly like the single-threaded recursion
// except the "recursive call" for one side becomes a queue push.
func (p *pool[T, P]) runChunk(lo, hi, bit int) {
	for {
		n := hi - lo
		if n <= 1 {
			return
		}
		if n <= radix.CmpSortThresh || bit < p.lowestBit {
			radix.InsertionSort(p.data, lo, hi, p.up)
			p.cfg.Stats.recordChunk(n)
			return
		}

		var split int
		if p.cfg.UseSlaves && n >= p.cfg.minMasterSize() {
			split = p.runMasterChunk(lo, hi, bit)
			p.cfg.Stats.recordMasterSplit()
		} else {
			split = p.partitionOneBit(lo, hi, bit)
		}
		p.cfg.Stats.recordChunk(n)

		leftSize, rightSize := split-lo, hi-split
		if leftSize <= rightSize {
			if leftSize > 1 {
				p.queue.addFirstChunk(chunk{lo: lo, hi: split, bit: bit - 1, kind: kindWork})
			}
			lo, bit = split, bit-1
		} else {
			if rightSize > 1 {
				p.queue.addFirstChunk(chunk{lo: split, hi: hi, bit: bit - 1, kind: kindWork})
			}
			hi, bit = split, bit-1
		}
	}
}

// runMasterChunk splits [lo,hi) into portions, partitions the first
// portion itself, hands the rest to the shared queue as slave
// sub-chunks, blocks until every slave reports back, and merges the
// resulting per-portion splits into one global split via sortRegions.
//
// Slave sub-chunks are ordinary entries on the same queue every worker
// pulls from. After its own portion the master removes any of its slave
// sub-chunks still queued and partitions them itself, so it waits only
// for portions another worker is already partitioning; a run where
// every worker becomes a master at once still completes.
func (p *pool[T, P]) runMasterChunk(lo, hi, bit int) int {
	portions := p.cfg.Portions
	if portions < 1 {
		portions = 1
	}
	n := hi - lo
	if portions > n {
		portions = n
	}

	bounds := make([]int, portions+1)
	bounds[0] = lo
	for i := 1; i < portions; i++ {
		bounds[i] = lo + (n*i)/portions
	}
	bounds[portions] = hi

	slaveResults := make([]*slaveResult, portions)
	var wg sync.WaitGroup
	wg.Add(portions - 1)
	for i := 1; i < portions; i++ {
		res := &slaveResult{wg: &wg}
		slaveResults[i] = res
		p.queue.addChunk(chunk{lo: bounds[i], hi: bounds[i+1], bit: bit, kind: kindSlavePartition, result: res})
	}

	firstSplit := p.partitionOneBit(bounds[0], bounds[1], bit)

	// Take back this master's slave chunks that no worker has popped yet
	// and partition them here, so the wait only covers running slaves.
	p.queue.mu.Lock()
	var mine []chunk
	kept := p.queue.items[:0]
	for _, qc := range p.queue.items {
		if qc.kind == kindSlavePartition && qc.result.wg == &wg {
			mine = append(mine, qc)
			continue
		}
		kept = append(kept, qc)
	}
	p.queue.items = kept
	p.queue.mu.Unlock()
	for _, qc := range mine {
		p.runSlavePartition(qc)
	}
	wg.Wait()

	blocks := make([]regionBlock, 0, 2*portions)
	blocks = append(blocks,
		regionBlock{lo: bounds[0], hi: firstSplit, left: true},
		regionBlock{lo: firstSplit, hi: bounds[1], left: false},
	)
	for i := 1; i < portions; i++ {
		split := slaveResults[i].split
		blocks = append(blocks,
			regionBlock{lo: bounds[i], hi: split, left: true},
			regionBlock{lo: split, hi: bounds[i+1], left: false},
		)
	}
	return sortRegions(p.data, blocks)
}

func (c *RadixThreadConfig) minMasterSize() int {
	if c.Portions <= 1 {
		return 1 << 62
	}
	return c.Portions * radix.CmpSortThresh * 2
}
