package arena_test

import (
	"testing"

	"github.com/veld-lang/veld-lang/internal/arena"
)

func TestAllocPointerStability(t *testing.T) {
	a := arena.New()

	first := arena.Alloc(a, 7)

	// Allocate well past one slab so fresh slabs are created along the way.
	ptrs := make([]*int, 0, 1000)
	for i := 0; i < 1000; i++ {
		ptrs = append(ptrs, arena.Alloc(a, i))
	}

	if *first != 7 {
		t.Fatalf("first allocation lost its value: got %d", *first)
	}

	for i, p := range ptrs {
		if *p != i {
			t.Fatalf("allocation %d has value %d", i, *p)
		}
	}

	if got := a.Count(); got != 1001 {
		t.Fatalf("expected count 1001, got %d", got)
	}
}

func TestSliceCopiesAndCaps(t *testing.T) {
	a := arena.New()

	src := []string{"x", "y", "z"}
	out := arena.Slice(a, src)

	src[0] = "mutated"

	if out[0] != "x" || out[1] != "y" || out[2] != "z" {
		t.Fatalf("slice was not copied: %v", out)
	}

	if cap(out) != len(out) {
		t.Fatalf("expected full slice, cap %d len %d", cap(out), len(out))
	}

	other := arena.Slice(a, []string{"a"})
	if other[0] != "a" {
		t.Fatalf("second slice corrupted: %v", other)
	}
	if out[2] != "z" {
		t.Fatalf("first slice clobbered by second: %v", out)
	}
}

func TestSliceEmpty(t *testing.T) {
	a := arena.New()

	if got := arena.Slice(a, []int(nil)); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
	if a.Count() != 0 {
		t.Fatalf("empty slice should not allocate, count %d", a.Count())
	}
}

func TestReset(t *testing.T) {
	a := arena.New()

	arena.Alloc(a, "keep")
	arena.Slice(a, []int{1, 2, 3})

	if a.Count() != 4 {
		t.Fatalf("expected count 4 before reset, got %d", a.Count())
	}

	a.Reset()

	if a.Count() != 0 {
		t.Fatalf("expected count 0 after reset, got %d", a.Count())
	}

	p := arena.Alloc(a, 42)
	if *p != 42 {
		t.Fatalf("allocation after reset failed: %d", *p)
	}
}
