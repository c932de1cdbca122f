package stats

import (
	"testing"
)

func TestLeaderTrackerSkipRate(t *testing.T) {
	tr := NewLeaderTracker()

	if got := tr.SkipRate("unseen"); got != 0 {
		t.Fatalf("SkipRate(unseen) = %v, want 0", got)
	}

	tr.RecordSlot("L1", 100, 50)
	tr.RecordSlot("L1", 101, 30)
	tr.RecordSlot("L1", 102, 20)
	tr.RecordSlot("L1", 103, 10)
	tr.RecordSkipped("L1", 104)

	if got := tr.SkipRate("L1"); got != 25.0 {
		t.Fatalf("SkipRate(L1) = %v, want 25", got)
	}
}

func TestLeaderTrackerStats(t *testing.T) {
	tr := NewLeaderTracker()
	tr.RecordSlot("L1", 100, 40)
	tr.RecordSlot("L1", 101, 60)
	tr.ObserveLatency("L1", 1000)
	tr.ObserveLatency("L1", 3000)

	st := tr.Stats()["L1"]
	if st.SlotsSeen != 2 {
		t.Fatalf("SlotsSeen = %d, want 2", st.SlotsSeen)
	}
	if st.Txns != 100 {
		t.Fatalf("Txns = %d, want 100", st.Txns)
	}
	if st.AvgLatencyMs != 2.0 {
		t.Fatalf("AvgLatencyMs = %v, want 2", st.AvgLatencyMs)
	}
}

func TestLeaderTrackerHistory(t *testing.T) {
	tr := NewLeaderTracker()
	tr.RecordSlot("L1", 100, 5)
	tr.RecordSkipped("L2", 101)

	hist := tr.History()
	if len(hist) != 2 {
		t.Fatalf("History len = %d, want 2", len(hist))
	}
	if hist[0].Slot != 100 || hist[0].Skipped {
		t.Fatalf("unexpected first entry: %+v", hist[0])
	}
	if hist[1].Slot != 101 || !hist[1].Skipped || hist[1].Leader != "L2" {
		t.Fatalf("unexpected second entry: %+v", hist[1])
	}
}
