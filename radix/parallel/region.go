package parallel

import "github.com/flowsort/simdradix/radix"

// regionBlock names a contiguous span of the shared array that a
// portion's independent bit-partition has already fully resolved to
// one side of the bit being split on.
type regionBlock struct {
	lo, hi int
	left   bool
}

// sortRegions merges the per-portion local splits produced by
// independently bit-partitioning P contiguous portions of data into a
// single global split: every element before the returned index is on
// the low side of the bit, every element at or after it is on the high
// side.
//
// blocks lists the portions' low ("left") and high ("right") sub-ranges
// in array order — left_0, right_0, left_1, right_1, ... — covering
// [blocks[0].lo, blocks[len(blocks)-1].hi) contiguously. The merge
// walks the blocks left to right, and every time it reaches a left
// block that has right blocks in front of it, rotates the span back to
// the last settled boundary so the left block lands at the front of
// that span, displacing the intervening right blocks rightward without
// an O(n) auxiliary buffer — the in-place analogue of the original's
// block-swap merge.
func sortRegions[T radix.Bits, P any](data []radix.Elem[T, P], blocks []regionBlock) int {
	if len(blocks) == 0 {
		return 0
	}
	pos := blocks[0].lo
	for _, b := range blocks {
		if !b.left {
			continue
		}
		length := b.hi - b.lo
		if b.lo != pos {
			rotateLeft(data, pos, b.hi, b.lo-pos)
		}
		pos += length
	}
	return pos
}

// rotateLeft rotates data[lo:hi) left by k positions using the
// classic three-reversal algorithm: reverse each half, then the whole.
func rotateLeft[T radix.Bits, P any](data []radix.Elem[T, P], lo, hi, k int) {
	if k <= 0 || k >= hi-lo {
		return
	}
	reverseSpan(data, lo, lo+k)
	reverseSpan(data, lo+k, hi)
	reverseSpan(data, lo, hi)
}

func reverseSpan[T radix.Bits, P any](data []radix.Elem[T, P], lo, hi int) {
	for lo < hi-1 {
		data[lo], data[hi-1] = data[hi-1], data[lo]
		lo++
		hi--
	}
}
