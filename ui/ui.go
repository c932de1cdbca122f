// Package ui is the read-only presentation boundary: it turns AppState
// snapshots into text and maps the closed set of UI commands onto the
// UI-only AppState fields. It never touches ingestion state.
package ui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/zionmelson/shredstream-tui/state"
)

// Command is the closed set of UI commands produced by input decoding.
type Command int

const (
	CmdNone Command = iota
	CmdQuit
	CmdNextTab
	CmdPrevTab
	CmdScrollUp
	CmdScrollDown
	CmdResetMetrics
	CmdToggleHelp
)

// TabNames indexes the selected-tab field.
var TabNames = [...]string{"Overview", "Slots", "Programs", "Competition", "Wallet", "Logs"}

// Apply mutates the UI-only AppState fields for one command. CmdQuit is the
// caller's concern.
func Apply(st *state.AppState, cmd Command) {
	switch cmd {
	case CmdNextTab:
		st.NextTab()
	case CmdPrevTab:
		st.PrevTab()
	case CmdScrollUp:
		st.ScrollUp()
	case CmdScrollDown:
		st.ScrollDown()
	case CmdResetMetrics:
		st.ResetMetricsWindow()
		st.LogInfo("Metrics window reset")
	case CmdToggleHelp:
		st.ToggleHelp()
	}
}

// Render builds a text snapshot of the selected tab.
func Render(st *state.AppState) string {
	var b strings.Builder

	fmt.Fprintf(&b, "shredstream %s | slot %d | %s | reconnects %d | up %s\n",
		st.ProxyURL,
		st.CurrentSlot(),
		st.ConnectionState(),
		st.ReconnectCount(),
		st.Uptime().Truncate(time.Second),
	)

	tab := st.SelectedTab()
	for i, name := range TabNames {
		if i == tab {
			fmt.Fprintf(&b, "[%s] ", name)
		} else {
			fmt.Fprintf(&b, " %s  ", name)
		}
	}
	b.WriteByte('\n')

	switch tab {
	case 1:
		renderSlots(&b, st)
	case 2:
		renderPrograms(&b, st)
	case 3:
		renderCompetition(&b, st)
	case 4:
		renderWallet(&b, st)
	case 5:
		renderLogs(&b, st)
	default:
		renderOverview(&b, st)
	}

	return b.String()
}

func renderOverview(b *strings.Builder, st *state.AppState) {
	secs := st.MetricsWindowSecs()
	fmt.Fprintf(b, "rates: %.1f msg/s  %.1f entries/s  %.1f txns/s (window %.0fs)\n",
		st.Metrics.ShredsPerSec(secs),
		st.Metrics.EntriesPerSec(secs),
		st.Metrics.TxnsPerSec(secs),
		secs,
	)
	fmt.Fprintf(b, "totals: %d entries  %d txns\n",
		st.Metrics.TotalEntries(), st.Metrics.TotalTxns())
	fmt.Fprintf(b, "latency: avg %.2fms  min %dµs  max %dµs (%d samples)\n",
		st.Latency.AvgMs(), st.Latency.MinUs(), st.Latency.MaxUs(), st.Latency.Count())
	layers := st.Turbine.LayerCounts()
	fmt.Fprintf(b, "turbine layers: L0=%d L1=%d L2=%d L3+=%d  avg idx %.1f\n",
		layers[0], layers[1], layers[2], layers[3], st.Turbine.AvgIndex())
	fmt.Fprintf(b, "health: recovery %.1f%%  heartbeat %.1f%%\n",
		st.Health.RecoveryRate(), st.Health.HeartbeatRate())
}

func renderSlots(b *strings.Builder, st *state.AppState) {
	slots := st.SlotHistory.Items()
	for i := len(slots) - 1; i >= 0; i-- {
		s := slots[i]
		fmt.Fprintf(b, "%d  entries=%d txns=%d dex=%d bundle=%d leader=%s\n",
			s.Slot, s.EntryCount, s.TxnCount, s.DexTxnCount, s.BundleTxnCount, s.Leader)
	}
}

func renderPrograms(b *strings.Builder, st *state.AppState) {
	fmt.Fprintf(b, "categories: dex=%d lending=%d mev=%d staking=%d\n",
		st.Programs.DexTxns(), st.Programs.LendingTxns(),
		st.Programs.MevTxns(), st.Programs.StakingTxns())

	activity := st.Programs.Activity()
	sort.Slice(activity, func(i, j int) bool {
		return activity[i].TxnCount > activity[j].TxnCount
	})
	for _, a := range activity {
		fmt.Fprintf(b, "%-18s %-8s %8d txns  last %s\n",
			a.Name, a.Category, a.TxnCount, a.LastSeen.Format("15:04:05"))
	}
}

func renderCompetition(b *strings.Builder, st *state.AppState) {
	fmt.Fprintf(b, "bundles=%d tips=%d lamports  duplicates=%d sandwiches=%d\n",
		st.Competition.BundleCount(), st.Competition.TipLamports(),
		st.Competition.DuplicateCount(), st.Competition.SandwichCount())
	for _, bundle := range st.Competition.RecentBundles() {
		fmt.Fprintf(b, "slot %d: %d txns via %s\n",
			bundle.Slot, bundle.TxnCount, bundle.TipAccount)
	}
}

func renderWallet(b *strings.Builder, st *state.AppState) {
	wallet, ok := st.Wallet.Wallet()
	if !ok {
		b.WriteString("no wallet monitored\n")
		return
	}
	fmt.Fprintf(b, "wallet %s: %d txns (%d ok, %d failed)\n",
		wallet, st.Wallet.TxnCount(), st.Wallet.SuccessCount(), st.Wallet.FailCount())
	for _, t := range st.Wallet.Txns() {
		fmt.Fprintf(b, "slot %d  %s  %v\n", t.Slot, t.Signature, t.Programs)
	}
}

func renderLogs(b *strings.Builder, st *state.AppState) {
	logs := st.Logs()
	for i := len(logs) - 1; i >= 0; i-- {
		e := logs[i]
		fmt.Fprintf(b, "%s [%s] %s\n", e.Timestamp.Format("15:04:05"), e.Level, e.Message)
	}
}
