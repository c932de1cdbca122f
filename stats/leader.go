package stats

import (
	"sync"
	"time"

	"github.com/zionmelson/shredstream-tui/config"
	"github.com/zionmelson/shredstream-tui/types"
)

// LeaderStats is a snapshot of one leader's running totals.
type LeaderStats struct {
	SlotsSeen    uint64
	SlotsSkipped uint64
	Txns         uint64
	AvgLatencyMs float64
}

// LeaderTracker keeps per-leader performance totals plus a bounded recent
// slot history. Totals never shrink; only the history ring evicts.
type LeaderTracker struct {
	mu      sync.RWMutex
	leaders map[string]*leaderTotals

	history *Ring[types.LeaderSlotInfo]
}

type leaderTotals struct {
	slotsSeen    uint64
	slotsSkipped uint64
	txns         uint64
	latCount     uint64
	latSumUs     uint64
}

func NewLeaderTracker() *LeaderTracker {
	return &LeaderTracker{
		leaders: make(map[string]*leaderTotals),
		history: NewRing[types.LeaderSlotInfo](config.MaxLeaderHistory),
	}
}

func (t *LeaderTracker) totals(leader string) *leaderTotals {
	lt := t.leaders[leader]
	if lt == nil {
		lt = &leaderTotals{}
		t.leaders[leader] = lt
	}
	return lt
}

// RecordSlot credits one produced slot to leader.
func (t *LeaderTracker) RecordSlot(leader string, slot, txns uint64) {
	t.mu.Lock()
	lt := t.totals(leader)
	lt.slotsSeen++
	lt.txns += txns
	t.mu.Unlock()

	t.history.Push(types.LeaderSlotInfo{
		Slot:      slot,
		Leader:    leader,
		TxnCount:  txns,
		Timestamp: time.Now(),
	})
}

// RecordSkipped credits one skipped slot to leader.
func (t *LeaderTracker) RecordSkipped(leader string, slot uint64) {
	t.mu.Lock()
	t.totals(leader).slotsSkipped++
	t.mu.Unlock()

	t.history.Push(types.LeaderSlotInfo{
		Slot:      slot,
		Leader:    leader,
		Skipped:   true,
		Timestamp: time.Now(),
	})
}

// ObserveLatency folds one latency sample into the leader's running average.
func (t *LeaderTracker) ObserveLatency(leader string, latencyUs uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	lt := t.totals(leader)
	lt.latCount++
	lt.latSumUs += latencyUs
}

// SkipRate returns skipped/seen as a percentage, 0 for an unseen leader.
func (t *LeaderTracker) SkipRate(leader string) float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	lt := t.leaders[leader]
	if lt == nil || lt.slotsSeen == 0 {
		return 0
	}
	return float64(lt.slotsSkipped) / float64(lt.slotsSeen) * 100
}

// Stats snapshots every leader's totals.
func (t *LeaderTracker) Stats() map[string]LeaderStats {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[string]LeaderStats, len(t.leaders))
	for leader, lt := range t.leaders {
		st := LeaderStats{
			SlotsSeen:    lt.slotsSeen,
			SlotsSkipped: lt.slotsSkipped,
			Txns:         lt.txns,
		}
		if lt.latCount > 0 {
			st.AvgLatencyMs = float64(lt.latSumUs) / float64(lt.latCount) / 1000
		}
		out[leader] = st
	}
	return out
}

func (t *LeaderTracker) History() []types.LeaderSlotInfo {
	return t.history.Items()
}
