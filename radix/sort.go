package radix

// SortSequential sorts data in place by key, ascending if up is true and
// descending if it is false, using the sequential bit-partition path
// only (spec component C), never touching the SIMD path. Useful on its
// own and as the baseline the SIMD and parallel paths are checked
// against.
func SortSequential[T Bits, P any](data []Elem[T, P], up bool) {
	if len(data) < 2 {
		return
	}
	radixRecurse(data, 0, len(data), BitWidth[T]()-1, 0, false, up)
}

// SortSIMD sorts data in place by key, ascending if up is true and
// descending if it is false, using the SIMD bit partition (spec
// component D) whenever a range is wide enough to fill at least two
// vectors, and falling back to the sequential partition otherwise (and
// always for 8- and 16-bit keys when hwy.HasNativeCompress is false).
func SortSIMD[T Bits, P any](data []Elem[T, P], up bool) {
	if len(data) < 2 {
		return
	}
	radixRecurse(data, 0, len(data), BitWidth[T]()-1, 0, true, up)
}

// Keys sorts a plain slice of keys ascending, with no payload — a
// convenience wrapper for callers that have no associated data to carry
// along.
func Keys[T Bits](keys []T) {
	elems := make([]Elem[T, struct{}], len(keys))
	for i, k := range keys {
		elems[i] = Elem[T, struct{}]{Key: k}
	}
	SortSequential(elems, true)
	for i, e := range elems {
		keys[i] = e.Key
	}
}
