package freelist

import "testing"

func TestGetBestFitAndSplit(t *testing.T) {
	fl := New(1024, 32)

	a, ok := fl.Get(200)
	if !ok || a.Offset != 0 || a.Size != 200 {
		t.Fatalf("first Get: got %+v ok=%v", a, ok)
	}
	b, ok := fl.Get(400)
	if !ok || b.Offset != 200 || b.Size != 400 {
		t.Fatalf("second Get: got %+v ok=%v", b, ok)
	}
	c, ok := fl.Get(100)
	if !ok || c.Offset != 600 || c.Size != 100 {
		t.Fatalf("third Get: got %+v ok=%v", c, ok)
	}
	if fl.UsedSpace() != 700 {
		t.Fatalf("UsedSpace = %d, want 700", fl.UsedSpace())
	}
}

func TestReturnCoalescesBothNeighbors(t *testing.T) {
	fl := New(1024, 32)
	a, _ := fl.Get(200)
	b, _ := fl.Get(400)
	c, _ := fl.Get(100)

	fl.Return(b)
	if fl.UsedSpace() != 300 {
		t.Fatalf("UsedSpace after returning b = %d, want 300", fl.UsedSpace())
	}
	regions := fl.FreeRegions()
	if len(regions) != 2 || regions[0].Offset != 200 || regions[0].Size != 400 || regions[1].Offset != 700 {
		t.Fatalf("unexpected free regions after returning b: %+v", regions)
	}

	fl.Return(a)
	regions = fl.FreeRegions()
	if len(regions) != 2 || regions[0].Offset != 0 || regions[0].Size != 600 {
		t.Fatalf("unexpected free regions after returning a: %+v", regions)
	}

	fl.Return(c)
	regions = fl.FreeRegions()
	if len(regions) != 1 || regions[0].Offset != 0 || regions[0].Size != 1024 {
		t.Fatalf("expected fully coalesced single region, got %+v", regions)
	}
	if fl.UsedSpace() != 0 {
		t.Fatalf("UsedSpace after all returns = %d, want 0", fl.UsedSpace())
	}
}

// After any balanced sequence of Get/Return: used + Σfree == total, the
// free list is offset-ordered, and no two adjacent free nodes touch.
func checkInvariants(t *testing.T, fl *Freelist) {
	t.Helper()
	var free uint64
	regions := fl.FreeRegions()
	for i, r := range regions {
		free += r.Size
		if i > 0 {
			prev := regions[i-1]
			if prev.Offset >= r.Offset {
				t.Fatalf("free list out of order: %+v", regions)
			}
			if prev.Offset+prev.Size == r.Offset {
				t.Fatalf("uncoalesced adjacent free nodes: %+v", regions)
			}
		}
	}
	if fl.UsedSpace()+free != fl.TotalSize() {
		t.Fatalf("used %d + free %d != total %d", fl.UsedSpace(), free, fl.TotalSize())
	}
}

func TestInvariantsUnderMixedTraffic(t *testing.T) {
	fl := New(4096, 32)

	var live []Node
	for _, s := range []uint64{100, 300, 50, 700, 40, 260} {
		n, ok := fl.Get(s)
		if !ok {
			t.Fatalf("Get(%d) failed", s)
		}
		live = append(live, n)
		checkInvariants(t, fl)
	}

	// Return every other allocation, punching holes.
	for i := 0; i < len(live); i += 2 {
		fl.Return(live[i])
		checkInvariants(t, fl)
	}

	// Fill some holes again, then return the remaining originals.
	for _, s := range []uint64{90, 40} {
		if _, ok := fl.Get(s); !ok {
			t.Fatalf("re-Get(%d) failed", s)
		}
		checkInvariants(t, fl)
	}
	for i := 1; i < len(live); i += 2 {
		fl.Return(live[i])
		checkInvariants(t, fl)
	}
}

func TestGetExhaustion(t *testing.T) {
	fl := New(256, 32)
	if _, ok := fl.Get(300); ok {
		t.Fatal("expected Get to fail when requested size exceeds total size")
	}
	fl.Get(256)
	if _, ok := fl.Get(1); ok {
		t.Fatal("expected Get to fail once the arena is fully allocated")
	}
}

func TestNewPanicsOnInvalidMinNodeSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for zero minNodeSize")
		}
	}()
	New(1024, 0)
}
