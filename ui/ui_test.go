package ui

import (
	"strings"
	"testing"

	"github.com/zionmelson/shredstream-tui/state"
	"github.com/zionmelson/shredstream-tui/types"
)

func TestApplyCommands(t *testing.T) {
	st := state.New("ws://test")

	Apply(st, CmdNextTab)
	if got := st.SelectedTab(); got != 1 {
		t.Fatalf("tab after CmdNextTab = %d, want 1", got)
	}
	Apply(st, CmdPrevTab)
	if got := st.SelectedTab(); got != 0 {
		t.Fatalf("tab after CmdPrevTab = %d, want 0", got)
	}

	Apply(st, CmdScrollDown)
	Apply(st, CmdScrollDown)
	Apply(st, CmdScrollUp)
	if got := st.ScrollOffset(); got != 1 {
		t.Fatalf("scroll offset = %d, want 1", got)
	}

	Apply(st, CmdToggleHelp)
	if !st.ShowHelp() {
		t.Fatal("help not toggled on")
	}

	st.AddSlot(types.SlotInfo{Slot: 1, EntryCount: 1, TxnCount: 4})
	Apply(st, CmdResetMetrics)
	if st.Metrics.TxnCount() != 0 {
		t.Fatal("CmdResetMetrics must zero the window counters")
	}

	// CmdNone and CmdQuit are the caller's concern; state untouched.
	before := st.SelectedTab()
	Apply(st, CmdNone)
	Apply(st, CmdQuit)
	if st.SelectedTab() != before {
		t.Fatal("no-op commands must not mutate state")
	}
}

func TestRenderEveryTab(t *testing.T) {
	st := state.New("ws://test")
	st.SetConnectionState(types.Connected())
	st.AddSlot(types.SlotInfo{Slot: 123, EntryCount: 2, TxnCount: 9, Leader: "L1"})
	st.LogInfo("hello")

	for i, name := range TabNames {
		out := Render(st)
		if !strings.Contains(out, "["+name+"]") {
			t.Fatalf("tab %d: selected marker for %q missing in output", i, name)
		}
		if !strings.Contains(out, "slot 123") {
			t.Fatalf("tab %d: header slot missing", i)
		}
		st.NextTab()
	}

	st.NextTab() // back past overview, exercise the slots tab content
	if !strings.Contains(Render(st), "leader=L1") {
		t.Fatal("slots tab must list the recorded slot")
	}
}
