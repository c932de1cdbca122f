package state

import (
	"testing"

	"github.com/zionmelson/shredstream-tui/config"
	"github.com/zionmelson/shredstream-tui/types"
)

func TestSetConnectionStateIdempotent(t *testing.T) {
	st := New("ws://localhost:50051")

	st.SetConnectionState(types.Connecting())
	before := len(st.Logs())

	// Same state again must not log a second transition.
	st.SetConnectionState(types.Connecting())
	if got := len(st.Logs()); got != before {
		t.Fatalf("log count after duplicate transition = %d, want %d", got, before)
	}

	st.SetConnectionState(types.Connected())
	if got := len(st.Logs()); got != before+1 {
		t.Fatalf("log count after real transition = %d, want %d", got, before+1)
	}
	if st.ConnectionState() != types.Connected() {
		t.Fatalf("state = %v, want Connected", st.ConnectionState())
	}
	if _, ok := st.ConnectionDuration(); !ok {
		t.Fatal("ConnectionDuration must report true once connected")
	}
}

func TestCurrentSlotNeverRegresses(t *testing.T) {
	st := New("ws://localhost:50051")

	st.AddSlot(types.SlotInfo{Slot: 200, EntryCount: 1, TxnCount: 5})
	st.AddSlot(types.SlotInfo{Slot: 150, EntryCount: 1, TxnCount: 5})

	if got := st.CurrentSlot(); got != 200 {
		t.Fatalf("CurrentSlot = %d, want 200", got)
	}
	if got := st.SlotHistory.Len(); got != 2 {
		t.Fatalf("SlotHistory len = %d, want 2 (out-of-order slots still recorded)", got)
	}
	if got := st.Metrics.TxnCount(); got != 10 {
		t.Fatalf("Metrics.TxnCount = %d, want 10", got)
	}
}

func TestResetMetricsWindowScope(t *testing.T) {
	st := New("ws://localhost:50051")

	st.AddSlot(types.SlotInfo{Slot: 1, EntryCount: 2, TxnCount: 8})
	st.Latency.Observe(types.LatencySample{LatencyUs: 500})
	st.Competition.AddDuplicate()

	st.ResetMetricsWindow()

	if st.Metrics.TxnCount() != 0 {
		t.Fatalf("window TxnCount = %d, want 0", st.Metrics.TxnCount())
	}
	if st.Metrics.TotalTxns() != 8 {
		t.Fatalf("TotalTxns = %d, want 8", st.Metrics.TotalTxns())
	}
	// Everything outside ShredMetrics survives.
	if st.Latency.Count() != 1 {
		t.Fatalf("Latency.Count = %d, want 1", st.Latency.Count())
	}
	if st.Competition.DuplicateCount() != 1 {
		t.Fatalf("DuplicateCount = %d, want 1", st.Competition.DuplicateCount())
	}
	if st.SlotHistory.Len() != 1 {
		t.Fatalf("SlotHistory len = %d, want 1", st.SlotHistory.Len())
	}
	if st.CurrentSlot() != 1 {
		t.Fatalf("CurrentSlot = %d, want 1", st.CurrentSlot())
	}
}

func TestLogRingBounded(t *testing.T) {
	st := New("ws://localhost:50051")

	for i := 0; i < config.MaxLogEntries+25; i++ {
		st.LogInfo("entry %d", i)
	}

	logs := st.Logs()
	if len(logs) != config.MaxLogEntries {
		t.Fatalf("log ring len = %d, want %d", len(logs), config.MaxLogEntries)
	}
	if logs[len(logs)-1].Message != "entry 124" {
		t.Fatalf("newest entry = %q, want %q", logs[len(logs)-1].Message, "entry 124")
	}
}

func TestTabNavigationWraps(t *testing.T) {
	st := New("ws://localhost:50051")

	st.PrevTab()
	if got := st.SelectedTab(); got != config.TabCount-1 {
		t.Fatalf("PrevTab from 0 = %d, want %d", got, config.TabCount-1)
	}
	st.NextTab()
	if got := st.SelectedTab(); got != 0 {
		t.Fatalf("NextTab wrap = %d, want 0", got)
	}

	st.ScrollDown()
	st.ScrollDown()
	st.ScrollUp()
	if got := st.ScrollOffset(); got != 1 {
		t.Fatalf("ScrollOffset = %d, want 1", got)
	}
	st.ScrollUp()
	st.ScrollUp()
	if got := st.ScrollOffset(); got != 0 {
		t.Fatalf("ScrollOffset must saturate at 0, got %d", got)
	}

	st.NextTab()
	st.ScrollDown()
	st.NextTab()
	if got := st.ScrollOffset(); got != 0 {
		t.Fatalf("tab switch must reset scroll, got %d", got)
	}
}
