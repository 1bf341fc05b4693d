package parallel

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/flowsort/simdradix/radix"
)

func randomElems(n int, seed int64) []radix.Elem[int32, int32] {
	r := rand.New(rand.NewSource(seed))
	data := make([]radix.Elem[int32, int32], n)
	for i := range data {
		k := int32(r.Intn(1 << 20)) - (1 << 19)
		data[i] = radix.Elem[int32, int32]{Key: k, Payload: k * 7}
	}
	return data
}

func keysOf(data []radix.Elem[int32, int32]) []int32 {
	out := make([]int32, len(data))
	for i, e := range data {
		out[i] = e.Key
	}
	return out
}

func TestSortParallelSequentialOrder(t *testing.T) {
	for _, n := range []int{0, 1, 2, 100, 5000, 20000} {
		for _, threads := range []int{1, 2, 4, 8} {
			data := randomElems(n, int64(n*31+threads))
			cfg := NewRadixThreadConfig(threads)
			SortParallelSequential(data, cfg, true)
			if !slices.IsSorted(keysOf(data)) {
				t.Fatalf("n=%d threads=%d: not sorted", n, threads)
			}
		}
	}
}

func TestSortParallelSIMDOrder(t *testing.T) {
	for _, n := range []int{0, 1, 257, 20000} {
		for _, threads := range []int{1, 4} {
			data := randomElems(n, int64(n*17+threads))
			cfg := NewRadixThreadConfig(threads)
			SortParallelSIMD(data, cfg, true)
			if !slices.IsSorted(keysOf(data)) {
				t.Fatalf("n=%d threads=%d: not sorted", n, threads)
			}
		}
	}
}

func TestSortParallelPayloadCoherence(t *testing.T) {
	data := randomElems(10000, 7)
	cfg := NewRadixThreadConfig(6)
	SortParallelSequential(data, cfg, true)
	for _, e := range data {
		if e.Payload != e.Key*7 {
			t.Fatalf("payload %d does not match key %d", e.Payload, e.Key)
		}
	}
}

func TestSortParallelPermutation(t *testing.T) {
	orig := randomElems(6000, 13)
	want := make(map[int32]int)
	for _, e := range orig {
		want[e.Key]++
	}
	data := append([]radix.Elem[int32, int32]{}, orig...)
	cfg := NewRadixThreadConfig(4)
	SortParallelSequential(data, cfg, true)
	got := make(map[int32]int)
	for _, e := range data {
		got[e.Key]++
	}
	for k, c := range want {
		if got[k] != c {
			t.Fatalf("key %d: count changed from %d to %d", k, c, got[k])
		}
	}
}

func TestSortParallelMatchesSequential(t *testing.T) {
	a := randomElems(15000, 21)
	b := append([]radix.Elem[int32, int32]{}, a...)
	radix.SortSequential(a, true)
	cfg := NewRadixThreadConfig(8)
	SortParallelSequential(b, cfg, true)
	if !slices.EqualFunc(a, b, func(x, y radix.Elem[int32, int32]) bool { return x.Key == y.Key }) {
		t.Fatal("parallel sort disagrees with sequential sort")
	}
}

func TestSortParallelDescendingMatchesSequential(t *testing.T) {
	a := randomElems(12000, 45)
	b := append([]radix.Elem[int32, int32]{}, a...)
	radix.SortSequential(a, false)
	cfg := NewRadixThreadConfig(6)
	SortParallelSIMD(b, cfg, false)
	if !slices.EqualFunc(a, b, func(x, y radix.Elem[int32, int32]) bool { return x.Key == y.Key }) {
		t.Fatal("descending parallel sort disagrees with sequential sort")
	}
}

func TestSortParallelLIFOMode(t *testing.T) {
	data := randomElems(8000, 31)
	cfg := NewRadixThreadConfig(4)
	cfg.QueueMode = LIFO
	SortParallelSequential(data, cfg, true)
	if !slices.IsSorted(keysOf(data)) {
		t.Fatal("LIFO queue mode did not produce a sorted result")
	}
}

func TestSortParallelStats(t *testing.T) {
	data := randomElems(50000, 42)
	cfg := NewRadixThreadConfig(8)
	cfg.Stats = &Stats{}
	SortParallelSequential(data, cfg, true)
	if cfg.Stats.ElementsSorted == 0 {
		t.Fatal("stats did not record any elements sorted")
	}
	if cfg.Stats.MaxQueueLength == 0 {
		t.Fatal("stats did not record a queue length")
	}
}

func TestSortParallelNoSlaves(t *testing.T) {
	data := randomElems(20000, 55)
	cfg := NewRadixThreadConfig(6)
	cfg.UseSlaves = false
	SortParallelSequential(data, cfg, true)
	if !slices.IsSorted(keysOf(data)) {
		t.Fatal("not sorted with UseSlaves disabled")
	}
}

func TestInvalidThreadCountPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for NumThreads < 1")
		}
	}()
	cfg := &RadixThreadConfig{NumThreads: 0, QueueMode: FIFO, Portions: 1}
	SortParallelSequential(randomElems(10, 1), cfg, true)
}

func TestSortRegionsMerge(t *testing.T) {
	data := []radix.Elem[int32, int32]{
		{Key: 9}, {Key: 1}, // portion 0: right, left
		{Key: 8}, {Key: 2}, {Key: 3}, // portion 1: right, left, left
	}
	blocks := []regionBlock{
		{lo: 0, hi: 1, left: false},
		{lo: 1, hi: 2, left: true},
		{lo: 2, hi: 3, left: false},
		{lo: 3, hi: 5, left: true},
	}
	split := sortRegions(data, blocks)
	if split != 3 {
		t.Fatalf("split = %d, want 3", split)
	}
	for i := 0; i < split; i++ {
		if data[i].Key >= 8 {
			t.Fatalf("low side contains a high-side key at %d: %v", i, data[i])
		}
	}
	for i := split; i < len(data); i++ {
		if data[i].Key < 8 {
			t.Fatalf("high side contains a low-side key at %d: %v", i, data[i])
		}
	}
}
