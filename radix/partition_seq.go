package radix

// PartitionBit performs a two-pointer Hoare-style partition of
// data[lo:hi] on a single bit of the key's ordered view: elements whose
// bit is on the "low" side of the split end up in [lo, split), the rest
// in [split, hi). up selects which bit value is the low side: "0" when
// up is true, "1" when it is false. The radix recursion passes the same
// up at every bit level.
func PartitionBit[T Bits, P any](data []Elem[T, P], lo, hi, bit int, up bool) int {
	isLowSide := func(key T) bool {
		set := testOrderedBit(key, bit)
		if up {
			return !set
		}
		return set
	}

	l, r := lo, hi-1
	for {
		for l <= r && isLowSide(data[l].Key) {
			l++
		}
		for l <= r && !isLowSide(data[r].Key) {
			r--
		}
		if l > r {
			break
		}
		data[l], data[r] = data[r], data[l]
		l++
		r--
	}
	return l
}

// PartitionBoundedBit is PartitionBit's right-bounded sibling: the scan
// from the right stops once it drops below minRight, so only [minRight,
// hi) is searched for low-side elements to swap leftward; the part below
// minRight past the left scan's low-side run is taken to be high side
// already. PartitionBitSIMD calls it with minRight equal to lo, which
// makes it a full two-pointer partition of the residue.
//
// The termination condition mirrors the original implementation's
// right-limited variant exactly, including its documented quirk: l can
// walk past minRight when the residue is homogeneous (every remaining
// element is already on the low side), which is why the loop must check
// both l > r and minRight > r rather than folding them into one bound.
func PartitionBoundedBit[T Bits, P any](data []Elem[T, P], lo, hi, minRight, bit int, up bool) int {
	isLowSide := func(key T) bool {
		set := testOrderedBit(key, bit)
		if up {
			return !set
		}
		return set
	}

	l, r := lo, hi-1
	for {
		for l <= r && isLowSide(data[l].Key) {
			l++
		}
		for r >= minRight && !isLowSide(data[r].Key) {
			r--
		}
		// NOTE: l can go above minRight if the part left of it is
		// homogeneous; the loop must still stop on l > r as well as
		// minRight > r.
		if l > r || minRight > r {
			break
		}
		data[l], data[r] = data[r], data[l]
		l++
		r--
	}
	return l
}
