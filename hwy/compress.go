package hwy

// Compress packs lanes where mask is true to the front of the result,
// leaving the tail zero-valued. The second return is the number of
// lanes packed.
func Compress[T Lanes](v Vec[T], mask Mask[T]) (Vec[T], int) {
	n := min(len(v.data), len(mask.bits))
	out := make([]T, len(v.data))
	count := 0
	for i := 0; i < n; i++ {
		if mask.bits[i] {
			out[count] = v.data[i]
			count++
		}
	}
	return Vec[T]{data: out}, count
}

// CompressStore compresses v's true-masked lanes directly into dst and
// returns the number of true-masked lanes. Lanes that do not fit in dst
// are dropped, so the result can exceed len(dst).
func CompressStore[T Lanes](v Vec[T], mask Mask[T], dst []T) int {
	n := min(len(v.data), len(mask.bits))
	count := 0
	for i := 0; i < n; i++ {
		if mask.bits[i] {
			if count < len(dst) {
				dst[count] = v.data[i]
			}
			count++
		}
	}
	return count
}

// CompressIndices returns, in order, the lane indices where mask is
// true followed by the lane indices where mask is false. It is the
// permutation a caller needs to move whole records (not bare lane
// values) alongside a key vector's compress-store: apply the same
// permutation to a parallel record slice to keep keys and payloads
// together without reinterpreting the payload as vector lanes.
func CompressIndices[T Lanes](mask Mask[T]) []int {
	n := len(mask.bits)
	idx := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if mask.bits[i] {
			idx = append(idx, i)
		}
	}
	for i := 0; i < n; i++ {
		if !mask.bits[i] {
			idx = append(idx, i)
		}
	}
	return idx
}

// CountTrueBits counts the set lanes in mask; equivalent to mask.CountTrue.
func CountTrueBits[T Lanes](mask Mask[T]) int {
	return mask.CountTrue()
}
