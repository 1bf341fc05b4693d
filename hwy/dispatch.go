package hwy

import (
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel names the instruction set backing the current build.
type DispatchLevel int

const (
	// DispatchScalar means no SIMD; every operation is a plain Go loop.
	DispatchScalar DispatchLevel = iota
	// DispatchAVX2 means the CPU has AVX2 (256-bit vectors).
	DispatchAVX2
	// DispatchAVX512 means the CPU has AVX-512 (512-bit vectors) with
	// the masked compress-store extensions bit partitioning needs.
	DispatchAVX512
	// DispatchNEON means the CPU has ARM NEON (128-bit vectors).
	DispatchNEON
)

func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel, currentWidth and hasNativeCompress are set by init() in
// the architecture-specific dispatch_*.go files.
var (
	currentLevel      DispatchLevel
	currentWidth      int
	hasNativeCompress bool
)

// CurrentLevel returns the SIMD instruction set selected for this run.
func CurrentLevel() DispatchLevel { return currentLevel }

// CurrentWidth returns the vector register width in bytes.
func CurrentWidth() int { return currentWidth }

// HasNativeCompress reports whether the detected instruction set has a
// hardware masked-compress-store, which spec's Feature gate requires
// before the SIMD bit-partition entry points are exposed for 8/16-bit
// lanes; callers without it still get the portable SIMD path for wider
// lanes and the sequential path always.
func HasNativeCompress() bool { return hasNativeCompress }

// NoSimdEnv reports whether HWY_NO_SIMD is set, forcing the scalar path
// regardless of detected CPU features, for runs that need
// deterministic, portable behavior.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MaxLanes returns how many lanes of T fit in the current vector width.
func MaxLanes[T Lanes]() int {
	var dummy T
	size := int(unsafe.Sizeof(dummy))
	if size == 0 || currentWidth == 0 {
		return 1
	}
	n := currentWidth / size
	if n < 1 {
		return 1
	}
	return n
}
