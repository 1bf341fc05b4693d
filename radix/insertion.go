package radix

// InsertionSortThresh is the range size at or below which the radix
// recursion hands off to insertion sort instead of descending another
// bit level. Below this size the constant overhead of a partition pass
// outweighs its benefit.
const InsertionSortThresh = 24

// InsertionSort sorts data[lo:hi] in place by key, ascending if up is
// true and descending if it is false. It is the leaf of the radix
// recursion (spec component B) and is also safe to call directly on
// small slices.
func InsertionSort[T Bits, P any](data []Elem[T, P], lo, hi int, up bool) {
	for i := lo + 1; i < hi; i++ {
		cur := data[i]
		j := i - 1
		for j >= lo && outOfOrder(data[j].Key, cur.Key, up) {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = cur
	}
}

// outOfOrder reports whether a must move after b to keep the range
// ordered: a > b when sorting ascending, a < b when sorting descending.
func outOfOrder[T Bits](a, b T, up bool) bool {
	if up {
		return a > b
	}
	return a < b
}
