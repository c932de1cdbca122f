package stats

import (
	"testing"
)

func TestRingEviction(t *testing.T) {
	r := NewRing[int](3)

	for i := 1; i <= 5; i++ {
		r.Push(i)
	}

	if r.Len() != 3 {
		t.Fatalf("Len = %d, want 3", r.Len())
	}
	got := r.Items()
	want := []int{3, 4, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Items = %v, want %v", got, want)
		}
	}
}

func TestRingBelowCapacity(t *testing.T) {
	r := NewRing[string](10)
	r.Push("a")
	r.Push("b")

	if r.Len() != 2 {
		t.Fatalf("Len = %d, want 2", r.Len())
	}
	got := r.Items()
	if got[0] != "a" || got[1] != "b" {
		t.Fatalf("Items = %v, want [a b]", got)
	}
}

func TestRingItemsIsCopy(t *testing.T) {
	r := NewRing[int](4)
	r.Push(1)

	snap := r.Items()
	snap[0] = 99

	if r.Items()[0] != 1 {
		t.Fatal("Items must return a copy, not the backing slice")
	}
}

func TestRingClear(t *testing.T) {
	r := NewRing[int](4)
	r.Push(1)
	r.Push(2)
	r.Clear()

	if r.Len() != 0 {
		t.Fatalf("Len after Clear = %d, want 0", r.Len())
	}
	if r.Cap() != 4 {
		t.Fatalf("Cap after Clear = %d, want 4", r.Cap())
	}
}
