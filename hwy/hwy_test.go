package hwy

import "testing"

func TestTestBit(t *testing.T) {
	v := Load([]uint32{0b1010, 0b0101, 0b1111, 0b0000})
	mask := TestBit(v, 0)
	want := []bool{false, true, true, false}
	for i, w := range want {
		if got := mask.GetBit(i); got != w {
			t.Errorf("lane %d: got %v, want %v", i, got, w)
		}
	}
}

func TestCompress(t *testing.T) {
	v := Load([]int32{1, 2, 3, 4})
	mask := TestBit(v, 0) // odd lanes
	out, n := Compress(v, mask)
	if n != 2 {
		t.Fatalf("count = %d, want 2", n)
	}
	if out.Data()[0] != 1 || out.Data()[1] != 3 {
		t.Errorf("compressed = %v, want [1 3 ...]", out.Data())
	}
}

func TestCompressIndices(t *testing.T) {
	v := Load([]int32{1, 2, 3, 4})
	mask := TestBit(v, 0)
	idx := CompressIndices(mask)
	if len(idx) != v.NumLanes() {
		t.Fatalf("len(idx) = %d, want %d", len(idx), v.NumLanes())
	}
	trueCount := mask.CountTrue()
	for i := 0; i < trueCount; i++ {
		if !mask.GetBit(idx[i]) {
			t.Errorf("index %d at front position %d should be true-masked", idx[i], i)
		}
	}
	for i := trueCount; i < len(idx); i++ {
		if mask.GetBit(idx[i]) {
			t.Errorf("index %d at back position %d should be false-masked", idx[i], i)
		}
	}
}

func TestMaxLanesPositive(t *testing.T) {
	if MaxLanes[uint8]() < 1 {
		t.Fatal("MaxLanes[uint8]() must be at least 1")
	}
}
