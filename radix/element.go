// Package radix implements an in-place most-significant-bit radix sort
// over fixed-width keys, optionally carrying an opaque payload, with
// both a sequential bit-partition path and a SIMD-assisted one built on
// the sibling hwy package.
package radix

import (
	"math"

	"github.com/flowsort/simdradix/hwy"
)

// Bits is the constraint on key types this package can sort: any
// integer width radix partitioning can mask and shift, plus the two
// IEEE float widths via their bit-pattern view.
type Bits interface {
	hwy.Integers | hwy.Floats
}

// Elem is one record moved by the sorter: a sort key of type T plus an
// arbitrary payload of type P that must follow the key wherever it
// goes. Because Go moves a struct as a single value, no extra step is
// needed to keep key and payload together during a swap or compress.
type Elem[T Bits, P any] struct {
	Key     T
	Payload P
}

// orderedView maps a key of type T onto a same-width unsigned integer
// such that the unsigned ordering of the view matches T's natural
// ordering. Unsigned keys map to themselves; signed keys flip the sign
// bit; floats flip the sign bit when non-negative and invert every bit
// when negative (sign-magnitude to monotonic-unsigned).
//
// This mirrors the first-level direction special case in a classic
// binary MSB radix sort over signed/float keys: rather than special-
// casing the top bit throughout the recursion, the key is remapped once
// so every level below operates on a plain unsigned compare.
func orderedView[T Bits](key T) uint64 {
	switch k := any(key).(type) {
	case int8:
		return uint64(uint8(k) ^ 0x80)
	case int16:
		return uint64(uint16(k) ^ 0x8000)
	case int32:
		return uint64(uint32(k) ^ 0x80000000)
	case int64:
		return uint64(k) ^ 0x8000000000000000
	case uint8:
		return uint64(k)
	case uint16:
		return uint64(k)
	case uint32:
		return uint64(k)
	case uint64:
		return k
	case float32:
		bits := math.Float32bits(k)
		if bits&0x80000000 != 0 {
			return uint64(^bits)
		}
		return uint64(bits | 0x80000000)
	case float64:
		bits := math.Float64bits(k)
		if bits&0x8000000000000000 != 0 {
			return ^bits
		}
		return bits | 0x8000000000000000
	default:
		invariantViolation("radix: unsupported key type")
		return 0
	}
}

// BitWidth returns the number of significant bits in the ordered view
// of T: the top bit index a radix descent over T must start from.
func BitWidth[T Bits]() int {
	var z T
	switch any(z).(type) {
	case int8, uint8:
		return 8
	case int16, uint16:
		return 16
	case int32, uint32, float32:
		return 32
	case int64, uint64, float64:
		return 64
	default:
		invariantViolation("radix: unsupported key type")
		return 0
	}
}

// testOrderedBit reports whether bit `bit` (0 = least significant) of
// key's ordered view is set.
func testOrderedBit[T Bits](key T, bit int) bool {
	return orderedView(key)&(uint64(1)<<uint(bit)) != 0
}
