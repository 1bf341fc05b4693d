package radix

import "github.com/flowsort/simdradix/hwy"

// PartitionBitSIMD partitions data[lo:hi] on one bit the same way
// PartitionBit does, but tests a whole vector's worth of keys at once.
// It keeps two vectors of scratch space: the first and last blocks read
// from the range are stashed before the main loop (and the sub-vector
// middle residue before the final stores) so every compress-store below
// only ever writes into territory that has already been read, the same
// preamble/postamble shape a masked
// compress-store partition needs regardless of which concrete
// instruction set backs it.
//
// Any residue too small for another full vector is handed to
// PartitionBoundedBit, which finishes it with the exact bounded
// sequential algorithm spec component C requires. Ranges shorter than
// two vectors, and 8- or 16-bit keys when hwy.HasNativeCompress is
// false, go to PartitionBit instead.
func PartitionBitSIMD[T Bits, P any](data []Elem[T, P], lo, hi, bit int, up bool) int {
	// Keys are tested through their 64-bit ordered view, so one vector
	// holds MaxLanes[uint64] of them.
	lanes := hwy.MaxLanes[uint64]()
	if lanes < 2 || hi-lo < 2*lanes || (BitWidth[T]() <= 16 && !hwy.HasNativeCompress()) {
		return PartitionBit(data, lo, hi, bit, up)
	}

	writeL, writeR := lo, hi
	readL, readR := lo+lanes, hi-lanes

	firstBlock := make([]Elem[T, P], lanes)
	copy(firstBlock, data[lo:lo+lanes])
	lastBlock := make([]Elem[T, P], lanes)
	copy(lastBlock, data[hi-lanes:hi])

	store := func(block []Elem[T, P]) {
		views := make([]uint64, len(block))
		for i, e := range block {
			views[i] = orderedView(e.Key)
		}
		vec := hwy.Load(views)
		bitMask := hwy.TestBit(vec, bit)
		lowMask := bitMask
		if up {
			lowMask = hwy.MaskNot(bitMask)
		}
		idx := hwy.CompressIndices(lowMask)
		lowCount := lowMask.CountTrue()
		for i := 0; i < lowCount; i++ {
			data[writeL] = block[idx[i]]
			writeL++
		}
		for i := len(block) - 1; i >= lowCount; i-- {
			writeR--
			data[writeR] = block[idx[i]]
		}
	}

	for readR-readL >= lanes {
		// leftSpace/rightSpace is the free, already-read buffer room on
		// each side (readPos - writePos). Reading from the side with the
		// smaller gap replenishes it before writeL/writeR can catch up to
		// readL/readR and start clobbering data that hasn't been read
		// into a block yet; comparing cumulative write counts instead (as
		// opposed to this per-side gap) lets the write pointer on a
		// homogeneous side overtake its own read pointer.
		leftSpace := readL - writeL
		rightSpace := writeR - readR
		var block []Elem[T, P]
		if leftSpace <= rightSpace {
			block = make([]Elem[T, P], lanes)
			copy(block, data[readL:readL+lanes])
			readL += lanes
		} else {
			readR -= lanes
			block = make([]Elem[T, P], lanes)
			copy(block, data[readR:readR+lanes])
		}
		store(block)
	}

	// The unread middle [readL, readR) is shorter than one vector; stash
	// it too so the two final stores cannot overwrite it, then put it
	// back into the gap they leave for the bounded sequential pass.
	residue := make([]Elem[T, P], readR-readL)
	copy(residue, data[readL:readR])
	store(firstBlock)
	store(lastBlock)
	copy(data[writeL:writeR], residue)

	return PartitionBoundedBit(data, writeL, writeR, writeL, bit, up)
}
