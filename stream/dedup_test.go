package stream

import (
	"testing"
)

func TestDuplicateDetectorObserve(t *testing.T) {
	d := NewDuplicateDetector()

	sigs := []string{"a", "b", "a", "c", "a"}
	want := []bool{false, false, true, false, true}

	dups := 0
	for i, sig := range sigs {
		got := d.Observe(sig)
		if got != want[i] {
			t.Fatalf("Observe(%q) at %d = %v, want %v", sig, i, got, want[i])
		}
		if got {
			dups++
		}
	}

	if dups != 2 {
		t.Fatalf("duplicate count = %d, want 2", dups)
	}
	if d.Len() != 3 {
		t.Fatalf("Len = %d, want 3 distinct signatures", d.Len())
	}
}

func TestDuplicateDetectorFreshInstancesIndependent(t *testing.T) {
	d1 := NewDuplicateDetector()
	d1.Observe("x")

	d2 := NewDuplicateDetector()
	if d2.Observe("x") {
		t.Fatal("fresh detector must not remember another session's signatures")
	}
}
