package parallel

import "github.com/flowsort/simdradix/radix"

// SortParallelSequential sorts data in place by key, ascending if up is
// true and descending if it is false, across cfg.NumThreads worker
// goroutines, using only the sequential bit partition (spec component C)
// within each chunk and slave sub-partition.
func SortParallelSequential[T radix.Bits, P any](data []radix.Elem[T, P], cfg *RadixThreadConfig, up bool) {
	newPool(data, cfg, 0, false, up).run()
}

// SortParallelSIMD is SortParallelSequential but partitions each chunk
// with the SIMD bit partition (spec component D) whenever the chunk is
// wide enough to benefit.
func SortParallelSIMD[T radix.Bits, P any](data []radix.Elem[T, P], cfg *RadixThreadConfig, up bool) {
	newPool(data, cfg, 0, true, up).run()
}
